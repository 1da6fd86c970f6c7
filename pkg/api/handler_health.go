package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/agentfabric/bridge/pkg/database"
	"github.com/agentfabric/bridge/pkg/version"
)

// healthResponse is the GET /health body.
type healthResponse struct {
	OK      bool      `json:"ok"`
	Service string    `json:"service"`
	Version string    `json:"version"`
	Now     time.Time `json:"now"`
}

// readyResponse is the GET /ready body.
type readyResponse struct {
	OK       bool                   `json:"ok"`
	Service  string                 `json:"service"`
	Now      time.Time              `json:"now"`
	Database *database.HealthStatus `json:"database,omitempty"`
	Workers  *workerSummary         `json:"workers,omitempty"`
}

type workerSummary struct {
	Active     int `json:"active"`
	Total      int `json:"total"`
	QueueDepth int `json:"queue_depth"`
}

// healthHandler handles GET /health. Liveness only; no dependency checks, so
// an orchestrator never restarts the bridge because the database blinked.
func (s *Server) healthHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, &healthResponse{
		OK:      true,
		Service: version.AppName,
		Version: version.GitCommit,
		Now:     time.Now().UTC(),
	})
}

// readyHandler handles GET /ready. Fails when the database is unreachable.
func (s *Server) readyHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp := &readyResponse{
		OK:      true,
		Service: version.AppName,
		Now:     time.Now().UTC(),
	}

	dbStatus, err := database.Health(reqCtx, s.dbClient.DB())
	resp.Database = dbStatus
	if err != nil {
		resp.OK = false
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		resp.Workers = &workerSummary{
			Active:     poolHealth.ActiveWorkers,
			Total:      poolHealth.TotalWorkers,
			QueueDepth: poolHealth.QueueDepth,
		}
	}

	if !resp.OK {
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}
