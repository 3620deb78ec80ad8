// Package api wires the operations HTTP server: probes, metrics and status.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/pricelist-monitor/internal/api/handlers"
	mw "github.com/donaldgifford/pricelist-monitor/internal/api/middleware"
	"github.com/donaldgifford/pricelist-monitor/internal/config"
)

// Dependencies are the backends the endpoints read from.
type Dependencies struct {
	DB     handlers.Pinger
	Runs   handlers.RunLister
	Tokens handlers.TokenStatuser
}

// Server is the operations HTTP server.
type Server struct {
	echo *echo.Echo
	addr string
	log  *slog.Logger
}

// NewServer builds the echo instance and registers the routes.
func NewServer(cfg *config.ServerConfig, deps Dependencies, log *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	e.Use(mw.Recovery(log))
	e.Use(mw.RequestLog(log))
	e.Use(mw.Metrics())

	health := handlers.NewHealthHandler(deps.DB)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if deps.Runs != nil && deps.Tokens != nil {
		e.GET("/status", handlers.NewStatusHandler(deps.Tokens, deps.Runs).Status)
	}

	return &Server{
		echo: e,
		addr: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		log:  log,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until Shutdown. It never returns http.ErrServerClosed.
func (s *Server) Start() error {
	s.log.Info("starting operations server", "addr", s.addr)
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("operations server: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down operations server: %w", err)
	}
	return nil
}
