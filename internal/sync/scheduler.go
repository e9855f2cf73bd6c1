// Package sync runs the two periodic background tasks: account-list refresh
// while the dashboard is visible and the service is online, and connectivity
// probing regardless of view.
package sync

import (
	"context"
	"log/slog"
	stdsync "sync"
	"time"

	"ledger-console/internal/state"
)

// Refresher refetches the account list into the state store.
type Refresher interface {
	RefreshAccounts(ctx context.Context) error
}

type Scheduler struct {
	refresher    Refresher
	monitor      *Monitor
	store        *state.Store
	refreshEvery time.Duration
	probeEvery   time.Duration
	logger       *slog.Logger

	cancel context.CancelFunc
	wg     stdsync.WaitGroup
}

func NewScheduler(refresher Refresher, monitor *Monitor, store *state.Store, refreshEvery, probeEvery time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		refresher:    refresher,
		monitor:      monitor,
		store:        store,
		refreshEvery: refreshEvery,
		probeEvery:   probeEvery,
		logger:       logger,
	}
}

// Start launches both loops. They run until Stop or until ctx is cancelled.
// Errors inside a tick are logged and never stop the loop; a skipped refresh
// tick is skipped for good, there is no catch-up.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(2)
	go s.refreshLoop(ctx)
	go s.probeLoop(ctx)

	s.logger.Info("scheduler started",
		"refresh_interval", s.refreshEvery,
		"probe_interval", s.probeEvery,
	)
}

// Stop cancels both loops and waits for them to exit.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) refreshLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.refreshEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.store.CurrentView() != state.ViewDashboard || !s.store.Online() {
				continue
			}
			if err := s.refresher.RefreshAccounts(ctx); err != nil {
				s.logger.Warn("scheduled refresh failed", "error", err)
			}
		}
	}
}

func (s *Scheduler) probeLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.probeEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.monitor.Probe(ctx)
		}
	}
}
