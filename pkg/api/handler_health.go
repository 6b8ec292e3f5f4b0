package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gearbox-dev/gearbox/pkg/database"
	"github.com/gearbox-dev/gearbox/pkg/queue"
	"github.com/gearbox-dev/gearbox/pkg/version"
)

// healthResponse aggregates the runtime's component health.
type healthResponse struct {
	Status         string                 `json:"status"`
	Version        string                 `json:"version"`
	Database       *database.HealthStatus `json:"database,omitempty"`
	Queue          *queue.PoolHealth      `json:"queue,omitempty"`
	MemoryPressure string                 `json:"memoryPressure,omitempty"`
	CostAlert      string                 `json:"costAlert,omitempty"`
	SandboxActive  int                    `json:"sandboxActive"`
	WsConnections  int                    `json:"wsConnections"`
	VaultUnlocked  bool                   `json:"vaultUnlocked"`
}

// healthHandler handles GET /api/v1/health.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := healthResponse{Status: "healthy", Version: version.Full()}
	status := http.StatusOK

	if s.deps.DB != nil {
		dbHealth, err := s.deps.DB.Health(ctx)
		resp.Database = dbHealth
		if err != nil {
			resp.Status = "unhealthy"
			status = http.StatusServiceUnavailable
		}
	}

	if s.deps.Pool != nil {
		resp.Queue = s.deps.Pool.Health()
		if !resp.Queue.IsHealthy {
			resp.Status = "degraded"
		}
	}
	if s.deps.Watchdog != nil {
		resp.MemoryPressure = string(s.deps.Watchdog.Level())
	}
	if s.deps.Cost != nil {
		if level, err := s.deps.Cost.GetAlertLevel(ctx); err == nil {
			resp.CostAlert = string(level)
		}
	}
	if s.deps.Sandbox != nil {
		resp.SandboxActive = s.deps.Sandbox.ActiveCount()
	}
	if s.deps.Manager != nil {
		resp.WsConnections = s.deps.Manager.ActiveConnections()
	}
	if s.deps.Vault != nil {
		resp.VaultUnlocked = s.deps.Vault.Unlocked()
	}

	c.JSON(status, resp)
}
