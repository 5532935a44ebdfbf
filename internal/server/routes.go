package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	// Root - welcome string
	s.echo.GET("/", s.handleWelcome)

	// Job registry CRUD
	s.echo.GET("/jobs", s.handleListJobs)
	s.echo.GET("/jobs/:id", s.handleGetJob)
	s.echo.POST("/jobs", s.handleCreateJob)
	s.echo.PATCH("/jobs/:id", s.handleUpdateJob)
	s.echo.DELETE("/jobs/:id", s.handleDeleteJob)
}
