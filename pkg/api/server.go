// Package api exposes the HTTP surface of the runtime: job submission
// and lifecycle, approval decisions, gear administration, vault
// administration, standing rules, health, and the WebSocket event
// stream.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gearbox-dev/gearbox/ent"
	"github.com/gearbox-dev/gearbox/pkg/config"
	"github.com/gearbox-dev/gearbox/pkg/cost"
	"github.com/gearbox-dev/gearbox/pkg/database"
	"github.com/gearbox-dev/gearbox/pkg/events"
	"github.com/gearbox-dev/gearbox/pkg/gear"
	"github.com/gearbox-dev/gearbox/pkg/queue"
	"github.com/gearbox-dev/gearbox/pkg/rules"
	"github.com/gearbox-dev/gearbox/pkg/sandbox"
	"github.com/gearbox-dev/gearbox/pkg/vault"
	"github.com/gearbox-dev/gearbox/pkg/watchdog"
)

// Deps wires the server. Pool, Watchdog, Cost, Sandbox, and Manager may
// be nil; the corresponding health fields and endpoints degrade
// gracefully.
type Deps struct {
	Client   *ent.Client
	DB       *database.Client
	Queue    *queue.Service
	Pool     *queue.WorkerPool
	Gears    *gear.Registry
	Vault    *vault.Vault
	Rules    *rules.Engine
	Watchdog *watchdog.Watchdog
	Cost     *cost.Tracker
	Sandbox  *sandbox.Host
	Manager  *events.ConnectionManager
	Config   *config.ServerConfig
}

// Server is the HTTP API server.
type Server struct {
	deps Deps
	http *http.Server
}

// NewServer creates an API server over the given dependencies.
func NewServer(deps Deps) *Server {
	return &Server{deps: deps}
}

// Router builds the gin engine with all routes bound.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", s.healthHandler)

		v1.POST("/jobs", s.createJobHandler)
		v1.GET("/jobs", s.listJobsHandler)
		v1.GET("/jobs/:id", s.getJobHandler)
		v1.POST("/jobs/:id/approve", s.approveJobHandler)
		v1.POST("/jobs/:id/deny", s.denyJobHandler)
		v1.POST("/jobs/:id/cancel", s.cancelJobHandler)

		v1.GET("/gears", s.listGearsHandler)
		v1.POST("/gears", s.installGearHandler)
		v1.GET("/gears/:id", s.getGearHandler)
		v1.DELETE("/gears/:id", s.uninstallGearHandler)
		v1.POST("/gears/:id/enable", s.enableGearHandler)
		v1.POST("/gears/:id/disable", s.disableGearHandler)
		v1.GET("/gears/:id/config", s.getGearConfigHandler)
		v1.PUT("/gears/:id/config", s.setGearConfigHandler)

		v1.POST("/vault/init", s.vaultInitHandler)
		v1.POST("/vault/unlock", s.vaultUnlockHandler)
		v1.POST("/vault/lock", s.vaultLockHandler)
		v1.GET("/vault/secrets", s.listSecretsHandler)
		v1.PUT("/vault/secrets/:name", s.storeSecretHandler)
		v1.DELETE("/vault/secrets/:name", s.deleteSecretHandler)

		v1.GET("/rules", s.listRulesHandler)
		v1.POST("/rules", s.createRuleHandler)
		v1.DELETE("/rules/:id", s.deleteRuleHandler)
	}

	r.GET("/ws", s.websocketHandler)
	return r
}

// Start begins serving on the configured address. Blocks until the
// listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              s.deps.Config.ListenAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("API server listening", "addr", s.deps.Config.ListenAddr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, bounded by the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.deps.Config.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}

// requestLogger logs one line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
