package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/donaldgifford/pricelist-monitor/internal/catalog"
	"github.com/donaldgifford/pricelist-monitor/internal/config"
	"github.com/donaldgifford/pricelist-monitor/internal/credential"
	"github.com/donaldgifford/pricelist-monitor/internal/engine"
	"github.com/donaldgifford/pricelist-monitor/internal/notify"
	"github.com/donaldgifford/pricelist-monitor/internal/store"
)

// app holds the wired components shared by the commands.
type app struct {
	pg     *store.PostgresStore
	rdb    *redis.Client
	store  store.Store
	tokens *credential.Manager
	engine *engine.Engine
}

func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	a := &app{pg: pg, store: pg}

	if cfg.Redis.Enabled() {
		a.rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.store = store.NewBrandCache(pg, a.rdb, cfg.Redis.BrandTTL, log)
		log.Info("brand cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.BrandTTL)
	}

	auth := catalog.NewAuthenticator(
		cfg.Catalog.Login,
		cfg.Catalog.Password,
		catalog.WithLoginURL(cfg.Catalog.BaseURL),
		catalog.WithAppAccess(cfg.Catalog.AppAccess),
		catalog.WithAuthUserAgent(cfg.Catalog.UserAgent),
		catalog.WithAuthHTTPClient(&http.Client{Timeout: cfg.Catalog.LoginTimeout}),
	)

	a.tokens = credential.NewManager(
		cfg.Catalog.ServiceID,
		auth,
		a.store,
		credential.WithTTL(cfg.Catalog.TokenTTL),
		credential.WithLoginTimeout(cfg.Catalog.LoginTimeout),
		credential.WithLogger(log),
	)

	client := catalog.NewClient(
		a.tokens,
		catalog.WithBaseURL(cfg.Catalog.BaseURL),
		catalog.WithUserAgent(cfg.Catalog.UserAgent),
		catalog.WithHTTPClient(&http.Client{Timeout: cfg.Catalog.RequestTimeout}),
		catalog.WithRateLimiter(
			catalog.NewRateLimiter(cfg.Catalog.RateLimit.PerSecond, cfg.Catalog.RateLimit.Burst),
		),
	)

	a.engine = engine.NewEngine(
		a.store,
		client,
		a.tokens,
		newNotifier(&cfg.Notifications.Telegram, log),
		engine.WithLogger(log),
		engine.WithBrandDelay(cfg.Schedule.BrandDelay),
		engine.WithMessageDelay(cfg.Schedule.MessageDelay),
		engine.WithBootstrapDelay(cfg.Schedule.BootstrapDelay),
		engine.WithMessageFormat(
			cfg.Messages.MaxLength,
			notify.WithCurrency(cfg.Messages.Currency),
			notify.WithLocation(cfg.Messages.Location()),
		),
	)

	return a, nil
}

func newNotifier(cfg *config.TelegramConfig, log *slog.Logger) notify.Notifier {
	if !cfg.Enabled {
		log.Warn("telegram disabled, notifications are only logged")
		return notify.NewNoOpNotifier(log)
	}
	return notify.NewTelegramNotifier(
		cfg.BotToken,
		notify.WithAPIURL(cfg.APIURL),
		notify.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)
}

func (a *app) Close() {
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	a.pg.Close()
}
