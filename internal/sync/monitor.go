package sync

import (
	"context"
	"log/slog"

	"ledger-console/internal/api"
	"ledger-console/internal/state"
)

// Monitor tracks connectivity to the remote service. The account-list
// endpoint doubles as the liveness check; any failure means offline, never
// a propagated error.
type Monitor struct {
	client *api.Client
	store  *state.Store
	logger *slog.Logger
}

func NewMonitor(client *api.Client, store *state.Store, logger *slog.Logger) *Monitor {
	return &Monitor{
		client: client,
		store:  store,
		logger: logger,
	}
}

// Probe checks the service and updates the store's online flag.
func (m *Monitor) Probe(ctx context.Context) bool {
	_, err := m.client.ListAccounts(ctx)
	online := err == nil

	if !online && m.store.Online() {
		m.logger.Warn("service unreachable, going offline", "error", err)
	}
	if online && !m.store.Online() {
		m.logger.Info("service reachable, going online")
	}

	m.store.SetOnline(online)
	return online
}
