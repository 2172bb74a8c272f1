// Package api is the HTTP surface: alert submission, session history,
// cancellation, health, and the dashboard WebSocket.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/tarsy-bot/tarsy/pkg/config"
	"github.com/tarsy-bot/tarsy/pkg/database"
	"github.com/tarsy-bot/tarsy/pkg/events"
	"github.com/tarsy-bot/tarsy/pkg/hooks"
	"github.com/tarsy-bot/tarsy/pkg/queue"
	"github.com/tarsy-bot/tarsy/pkg/services"
)

// Server wires the HTTP handlers to the services behind them.
type Server struct {
	cfg         *config.Config
	db          *database.Client
	sessions    *services.SessionService
	pool        *queue.WorkerPool
	bus         *hooks.Bus
	connManager *events.ConnectionManager

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the server and registers all routes.
func NewServer(cfg *config.Config, db *database.Client, sessions *services.SessionService, pool *queue.WorkerPool, bus *hooks.Bus, connManager *events.ConnectionManager) *Server {
	s := &Server{
		cfg:         cfg,
		db:          db,
		sessions:    sessions,
		pool:        pool,
		bus:         bus,
		connManager: connManager,
		echo:        echo.New(),
	}

	s.echo.Use(middleware.Recover())
	s.echo.Use(securityHeaders())
	if len(cfg.Settings.CORSOrigins) > 0 {
		s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.Settings.CORSOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		}))
	}

	s.echo.GET("/health", s.healthHandler)

	v1 := s.echo.Group("/api/v1")
	v1.POST("/alerts", s.submitAlertHandler)
	v1.GET("/alert-types", s.alertTypesHandler)
	v1.GET("/sessions", s.listSessionsHandler)
	v1.GET("/sessions/:id", s.getSessionHandler)
	v1.POST("/sessions/:id/cancel", s.cancelSessionHandler)
	v1.GET("/ws", s.wsHandler)

	return s
}

// Start serves HTTP on addr. Blocks until the listener fails or Shutdown is
// called.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.echo }
