package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/pricelist-monitor/internal/api"
	"github.com/donaldgifford/pricelist-monitor/internal/engine"
	"github.com/donaldgifford/pricelist-monitor/internal/tracing"
)

const shutdownTimeout = 30 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the scheduler and the operations server",
		Long: "serve migrates the database, loads the stored credential, snapshots the\n" +
			"catalog on first start, then polls it on schedule.interval until SIGINT\n" +
			"or SIGTERM. Health, readiness and metrics are served on server.port.",
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, &cfg.Tracing, Version)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer func() {
		tctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(tctx); err != nil {
			log.Warn("flushing traces failed", "error", err)
		}
	}()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	if n, err := a.store.DeleteExpiredTokens(ctx, time.Now()); err != nil {
		log.Warn("expired token cleanup failed", "error", err)
	} else if n > 0 {
		log.Info("deleted expired tokens", "count", n)
	}

	if err := a.tokens.Load(ctx); err != nil {
		log.Warn("no usable stored token, logging in on first use", "error", err)
	}

	if ran, err := a.engine.Bootstrap(ctx); err != nil {
		log.Error("initial snapshot failed, the first cycle will report everything as added", "error", err)
	} else if ran {
		log.Info("initial snapshot stored")
	}

	sched, err := engine.NewScheduler(
		a.engine,
		cfg.Schedule.Interval,
		log,
		engine.WithRunOnStart(*cfg.Schedule.RunOnStart),
	)
	if err != nil {
		return err
	}

	srv := api.NewServer(&cfg.Server, api.Dependencies{
		DB:     a.store,
		Runs:   a.store,
		Tokens: a.tokens,
	}, log)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.Start()
	}()

	sched.Start(ctx)
	log.Info("pricelist monitor started", "interval", cfg.Schedule.Interval, "version", Version)

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case serveErr = <-srvErr:
		log.Error("operations server stopped", "error", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn("cycle still running at shutdown deadline")
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("operations server shutdown", "error", err)
	}

	log.Info("pricelist monitor stopped")
	return serveErr
}
