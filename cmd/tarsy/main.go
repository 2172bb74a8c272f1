// Tarsy server: accepts alerts over HTTP, runs them through agent chains,
// and records the full audit trail.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tarsy-bot/tarsy/pkg/api"
	"github.com/tarsy-bot/tarsy/pkg/cleanup"
	"github.com/tarsy-bot/tarsy/pkg/config"
	"github.com/tarsy-bot/tarsy/pkg/database"
	"github.com/tarsy-bot/tarsy/pkg/events"
	"github.com/tarsy-bot/tarsy/pkg/hooks"
	"github.com/tarsy-bot/tarsy/pkg/llm"
	"github.com/tarsy-bot/tarsy/pkg/masking"
	"github.com/tarsy-bot/tarsy/pkg/mcp"
	"github.com/tarsy-bot/tarsy/pkg/queue"
	"github.com/tarsy-bot/tarsy/pkg/runbook"
	"github.com/tarsy-bot/tarsy/pkg/services"
	"github.com/tarsy-bot/tarsy/pkg/version"
)

const gracefulShutdownTimeout = 30 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local".
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	podID := resolvePodID()
	ctx := context.Background()

	cfg, err := config.Initialize(ctx, filepath.Join(*configDir, "tarsy.yaml"))
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting tarsy",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir,
		"listen_addr", cfg.Settings.ListenAddr)

	dbClient, err := database.NewClient(ctx, cfg.Settings.DatabaseURL)
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

	clocks := services.NewClocks()
	sessionService := services.NewSessionService(dbClient.Client, clocks)
	stageService := services.NewStageService(dbClient.Client, clocks)
	interactionService := services.NewInteractionService(dbClient.Client, clocks)

	// Sessions this pod left processing in a previous run can never finish.
	if err := queue.RecoverStartupOrphans(ctx, dbClient.Client, sessionService, podID); err != nil {
		slog.Error("Failed to recover startup orphans", "error", err)
		// Non-fatal: the stale-heartbeat sweep covers anything missed here.
	}

	connManager := events.NewConnectionManager(5 * time.Second)

	bus := hooks.NewBus()
	bus.Subscribe(hooks.NewAuditSubscriber(interactionService))
	bus.Subscribe(hooks.NewDashboardSubscriber(connManager))
	defer bus.Close()

	llmClient, err := llm.NewFromSettings(cfg.Settings)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	slog.Info("LLM client initialized", "provider", cfg.Settings.DefaultLLMProvider)

	// Eager MCP validation: a misconfigured server should fail the process at
	// startup, not the first session that needs it.
	mcpFactory := mcp.NewClientFactory(cfg.MCPServerRegistry, cfg.Settings.MCPTimeout)
	if err := mcpFactory.ValidateServers(ctx); err != nil {
		slog.Error("MCP startup validation failed", "error", err)
		os.Exit(1)
	}

	maskingService := masking.NewService(cfg.MCPServerRegistry, cfg.MaskingPatterns, cfg.PatternGroups)
	runbookService := runbook.NewService(cfg.Settings.RunbookTimeout)

	executor := queue.NewChainExecutor(cfg, sessionService, stageService, llmClient, mcpFactory,
		maskingService, runbookService, bus)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, sessionService, bus,
		queue.DefaultOptions(cfg.Settings), executor)
	workerPool.Start(ctx)

	retention := cleanup.NewService(sessionService, cfg.Settings.HistoryRetentionDays, cleanup.DefaultInterval)
	retention.Start(ctx)

	httpServer := api.NewServer(cfg, dbClient, sessionService, workerPool, bus, connManager)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Settings.ListenAddr)
		if err := httpServer.Start(cfg.Settings.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	slog.Info("Tarsy started",
		"pod_id", podID,
		"workers", cfg.Settings.MaxConcurrentAlerts)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	retention.Stop()

	// Wait for active sessions, but not forever: anything still running when
	// the timeout fires is orphan-recovered on the next start.
	shutdownCtx, cancel := context.WithTimeout(ctx, gracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete sessions will be orphan-recovered")
	}

	// Audit events published during shutdown must reach the database.
	bus.Flush()

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
