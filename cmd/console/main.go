package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ledger-console/internal/api"
	"ledger-console/internal/app"
	"ledger-console/internal/config"
	"ledger-console/internal/notify"
	"ledger-console/internal/state"
	"ledger-console/internal/sync"
)

func main() {
	// Initialize logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	client := api.NewClient(cfg.BaseURL, cfg.HTTPTimeout, logger)
	store := state.NewStore()
	notifier := notify.New(cfg.NotificationTTL, cfg.NotificationFade)
	orchestrator := app.New(client, store, notifier, logger)
	monitor := sync.NewMonitor(client, store, logger)
	scheduler := sync.NewScheduler(orchestrator, monitor, store, cfg.RefreshInterval, cfg.ProbeInterval, logger)

	notifier.OnRaise(func(n notify.Notification) {
		logger.Info("notification", "severity", n.Severity, "message", n.Message)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initial probe and, if reachable, a first account load before the
	// periodic tasks take over.
	if monitor.Probe(ctx) {
		if err := orchestrator.RefreshAccounts(ctx); err != nil {
			logger.Warn("initial account load failed", "error", err)
		}
	}

	scheduler.Start(ctx)
	logger.Info("console started", "base_url", cfg.BaseURL)

	<-ctx.Done()

	scheduler.Stop()
	notifier.Close()
	logger.Info("console stopped")
}
