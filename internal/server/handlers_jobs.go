package server

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Hfear/job-registry/internal/domain"
	apperrors "github.com/Hfear/job-registry/internal/errors"
)

const msgJobNotFound = "Job not found"

func (s *Server) handleWelcome(c echo.Context) error {
	return c.String(200, "Welcome to the Job Registry API")
}

func (s *Server) handleListJobs(c echo.Context) error {
	if err := c.JSON(200, s.registry.List()); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleGetJob(c echo.Context) error {
	id, ok := parseJobID(c)
	if !ok {
		// Malformed ids behave like ids that match nothing.
		return apperrors.NotFoundError(msgJobNotFound).WithField("id", c.Param("id"))
	}

	job, err := s.registry.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return apperrors.NotFoundError(msgJobNotFound).WithField("job_id", id)
		}
		return apperrors.InternalError("failed to load job", err).WithField("job_id", id)
	}

	if err := c.JSON(200, job); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleCreateJob(c echo.Context) error {
	payload := bindJobPayload(c)

	// The payload is appended verbatim: no server-side id assignment and no
	// schema checks. Clients own the record shape.
	created := s.registry.Create(payload)

	if err := c.JSON(201, created); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleUpdateJob(c echo.Context) error {
	id, ok := parseJobID(c)
	if !ok {
		return apperrors.NotFoundError(msgJobNotFound).WithField("id", c.Param("id"))
	}

	patch := bindJobPayload(c)

	merged, err := s.registry.Update(id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return apperrors.NotFoundError(msgJobNotFound).WithField("job_id", id)
		}
		return apperrors.InternalError("failed to update job", err).WithField("job_id", id)
	}

	if err := c.JSON(200, merged); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleDeleteJob(c echo.Context) error {
	id, ok := parseJobID(c)
	if !ok {
		return apperrors.NotFoundError(msgJobNotFound).WithField("id", c.Param("id"))
	}

	if err := s.registry.Delete(id); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return apperrors.NotFoundError(msgJobNotFound).WithField("job_id", id)
		}
		return apperrors.InternalError("failed to delete job", err).WithField("job_id", id)
	}

	if err := c.JSON(200, map[string]string{"message": "Job deleted successfully"}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// parseJobID reads the :id path parameter. A value that does not parse as an
// integer is not an error of its own kind; it simply cannot match any record.
func parseJobID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// bindJobPayload decodes the request body into a Job. Malformed or empty
// bodies degrade to an empty record rather than a 400; the service accepts
// payloads uncritically.
func bindJobPayload(c echo.Context) domain.Job {
	job := domain.Job{}
	if err := c.Bind(&job); err != nil {
		return domain.Job{}
	}
	if job == nil {
		return domain.Job{}
	}
	return job
}
