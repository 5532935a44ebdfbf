package server

import (
	"github.com/labstack/echo/v4"

	"github.com/Hfear/job-registry/internal/version"
)

func (s *Server) handleLiveness(c echo.Context) error {
	uptime := s.clock.Since(s.startTime).Seconds()
	return c.JSON(200, map[string]any{
		"status": "ok",
		"uptime": uptime,
	})
}

func (s *Server) handleReadiness(c echo.Context) error {
	// The registry is process-local memory; if it answers, the service can
	// take traffic.
	return c.JSON(200, map[string]any{
		"status": "ready",
		"jobs":   s.registry.Len(),
	})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(200, version.Get())
}
