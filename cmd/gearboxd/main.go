// Gearbox orchestration daemon: runs the signed message bus, the job
// queue and worker pool, the planner/validator/sandbox components, and
// the HTTP API on a single node.
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/gearbox-dev/gearbox/pkg/api"
	"github.com/gearbox-dev/gearbox/pkg/bus"
	"github.com/gearbox-dev/gearbox/pkg/config"
	"github.com/gearbox-dev/gearbox/pkg/cost"
	"github.com/gearbox-dev/gearbox/pkg/database"
	"github.com/gearbox-dev/gearbox/pkg/envelope"
	"github.com/gearbox-dev/gearbox/pkg/events"
	"github.com/gearbox-dev/gearbox/pkg/gear"
	"github.com/gearbox-dev/gearbox/pkg/llm"
	"github.com/gearbox-dev/gearbox/pkg/models"
	"github.com/gearbox-dev/gearbox/pkg/pipeline"
	"github.com/gearbox-dev/gearbox/pkg/queue"
	"github.com/gearbox-dev/gearbox/pkg/retention"
	"github.com/gearbox-dev/gearbox/pkg/rules"
	"github.com/gearbox-dev/gearbox/pkg/sandbox"
	"github.com/gearbox-dev/gearbox/pkg/scout"
	"github.com/gearbox-dev/gearbox/pkg/sentinel"
	"github.com/gearbox-dev/gearbox/pkg/vault"
	"github.com/gearbox-dev/gearbox/pkg/version"
	"github.com/gearbox-dev/gearbox/pkg/watchdog"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolveNodeID determines the lease-owner identifier for this process.
// Priority: NODE_ID env > HOSTNAME env > "local"
func resolveNodeID() string {
	if id := os.Getenv("NODE_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// newSigner generates a per-boot ed25519 keypair, registers the public
// key, and returns the signer. Components live in this process, so keys
// never leave it and need no persistence.
func newSigner(keyring *envelope.Keyring, componentID string) *envelope.Signer {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		slog.Error("Failed to generate component key", "component", componentID, "error", err)
		os.Exit(1)
	}
	if err := keyring.Register(componentID, pub); err != nil {
		slog.Error("Failed to register component key", "component", componentID, "error", err)
		os.Exit(1)
	}
	return envelope.NewSigner(componentID, priv)
}

func main() {
	configPath := flag.String("config",
		getEnv("GEARBOX_CONFIG", "gearbox.yaml"),
		"Path to the YAML configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	nodeID := resolveNodeID()
	slog.Info("Starting gearbox",
		"version", version.Full(),
		"node_id", nodeID,
		"config", *configPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 1. Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Event streaming
	broker := events.NewBroker()
	publisher := events.NewPublisher(broker)
	connManager := events.NewConnectionManager(broker, cfg.Server.WsWriteTimeout)

	// 4. Queue service and one-time startup lease recovery
	queueService := queue.NewService(dbClient.Client, cfg.Queue, publisher)
	if err := queue.RecoverStartupLeases(ctx, queueService, nodeID); err != nil {
		slog.Error("Failed to recover startup leases", "error", err)
		// Non-fatal, the periodic recovery loop will retry.
	}

	// 5. Message bus: keyring, per-component signers, router
	keyring := envelope.NewKeyring()
	routerSigner := newSigner(keyring, "router")
	pipelineSigner := newSigner(keyring, pipeline.ComponentID)
	plannerSigner := newSigner(keyring, scout.ComponentID)
	validatorSigner := newSigner(keyring, sentinel.ComponentID)
	sandboxSigner := newSigner(keyring, sandbox.ComponentID)

	registry := bus.NewRegistry()
	router := bus.NewRouter(registry, keyring, routerSigner, bus.Config{
		MaxMessageSizeBytes: cfg.Router.MaxMessageSizeBytes,
		WarnThresholdBytes:  cfg.Router.WarnThresholdBytes,
		ValidatorID:         sentinel.ComponentID,
		ReplayWindow:        cfg.Router.ReplayWindow,
	})

	// 6. Gear registry and vault
	gearRegistry := gear.NewRegistry(dbClient.Client)
	if err := gearRegistry.LoadCache(ctx); err != nil {
		slog.Error("Failed to load gear cache", "error", err)
		os.Exit(1)
	}
	secretVault := vault.New(getEnv("GEARBOX_VAULT_PATH", "data/vault.json"))

	// 7. Planner
	llmConfig, err := llm.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load LLM config", "error", err)
		os.Exit(1)
	}
	llmClient := llm.NewClient(llmConfig)
	planner := scout.New(plannerSigner, llmClient, gearRegistry, scout.DefaultConfig())
	if err := planner.Register(registry); err != nil {
		slog.Error("Failed to register planner", "error", err)
		os.Exit(1)
	}

	// 8. Validator with its standing-rule engine
	ruleEngine := rules.NewEngine(dbClient.Client, cfg.Policy.SuggestionCount)
	validator := sentinel.New(validatorSigner, &sentinel.Policy{
		WorkspaceRoot:           cfg.Policy.WorkspaceRoot,
		AllowedDomains:          cfg.Policy.AllowedDomains,
		MaxTransactionAmountUsd: cfg.Policy.MaxTransactionAmountUsd,
	}, ruleEngine)
	if err := validator.Register(registry); err != nil {
		slog.Error("Failed to register validator", "error", err)
		os.Exit(1)
	}

	// 9. Sandbox host
	if err := os.MkdirAll(cfg.Sandbox.WorkspaceRoot, 0o755); err != nil {
		slog.Error("Failed to create workspace root",
			"path", cfg.Sandbox.WorkspaceRoot, "error", err)
		os.Exit(1)
	}
	host := sandbox.New(gearRegistry, secretVault, sandboxSigner, cfg.Sandbox, publisher, queueService)
	if err := host.Register(registry); err != nil {
		slog.Error("Failed to register sandbox host", "error", err)
		os.Exit(1)
	}

	// 10. Cost tracker
	costTracker := cost.NewTracker(dbClient.Client, cfg.Cost, nil)

	// 11. Pipeline processor and worker pool
	processor := pipeline.NewProcessor(pipeline.Options{
		Signer:          pipelineSigner,
		Router:          router,
		Queue:           queueService,
		Client:          dbClient.Client,
		Config:          cfg.Pipeline,
		MaxStepAttempts: 3,
		IsCircuitOpen:   host.IsCircuitOpen,
		Publisher:       publisher,
		Cost:            costTracker,
	})
	workerPool := queue.NewWorkerPool(nodeID, queueService, cfg.Queue, cfg.Pipeline.JobTimeout, processor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 12. Retention sweep
	retentionService := retention.NewService(cfg.Retention, dbClient.Client)
	retentionService.Start(ctx)

	// 13. Memory watchdog: the pool sheds load, retention backs off
	memWatchdog := watchdog.New(cfg.Memory)
	memWatchdog.Subscribe(workerPool.SetPressure)
	memWatchdog.Subscribe(func(level models.MemoryPressureLevel) {
		retentionService.SetPaused(level.Severity() >= models.PressurePause.Severity())
	})
	go memWatchdog.Start(ctx)

	// 14. HTTP API
	httpServer := api.NewServer(api.Deps{
		Client:   dbClient.Client,
		DB:       dbClient,
		Queue:    queueService,
		Pool:     workerPool,
		Gears:    gearRegistry,
		Vault:    secretVault,
		Rules:    ruleEngine,
		Watchdog: memWatchdog,
		Cost:     costTracker,
		Sandbox:  host,
		Manager:  connManager,
		Config:   cfg.Server,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Gearbox started",
		"node_id", nodeID,
		"listen_addr", cfg.Server.ListenAddr,
		"workers", cfg.Queue.WorkerCount)

	// 15. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 16. Graceful shutdown: stop intake first, then drain workers.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Queue.GracefulShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, leased jobs will be recovered on next boot")
	}

	retentionService.Stop()
	cancel()
	secretVault.Lock()

	slog.Info("Shutdown complete")
}
