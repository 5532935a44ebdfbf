package server

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Hfear/job-registry/internal/config"
	"github.com/Hfear/job-registry/internal/domain"
	apperrors "github.com/Hfear/job-registry/internal/errors"
)

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	registry  domain.Registry
	clock     clockwork.Clock
	startTime time.Time
}

func NewServer(cfg *config.Config, registry domain.Registry, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:      e,
		config:    cfg,
		registry:  registry,
		clock:     clock,
		startTime: clock.Now(),
	}

	// Middleware
	e.Use(srv.correlationMiddleware)
	e.Use(srv.requestLoggerMiddleware())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())
	if cfg.RateLimitRPS > 0 {
		e.Use(rateLimiterMiddleware(cfg.RateLimitRPS))
	}

	// Register routes
	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
