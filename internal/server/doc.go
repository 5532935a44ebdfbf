// Package server implements the HTTP server using Echo framework.
//
// Routes: jobs CRUD (/jobs), health (/health/live, /health/ready), metrics,
// version, and the root welcome string. Handlers split by concern:
// handlers_jobs.go and handlers_health.go. Middleware (correlation IDs,
// request logging, rate limiting) lives in middleware.go.
package server
