// Bridge coordination server. Serves the agent protocol over HTTP, runs the
// trigger queue workers, and reconciles sessions and fallback runs.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/agentfabric/bridge/pkg/api"
	"github.com/agentfabric/bridge/pkg/auth"
	"github.com/agentfabric/bridge/pkg/config"
	"github.com/agentfabric/bridge/pkg/database"
	"github.com/agentfabric/bridge/pkg/queue"
	"github.com/agentfabric/bridge/pkg/runtime"
	"github.com/agentfabric/bridge/pkg/services"
	"github.com/agentfabric/bridge/pkg/version"
)

// resolveInstanceID determines the instance identifier for multi-replica
// coordination. Priority: INSTANCE_ID env > HOSTNAME env > "local".
func resolveInstanceID() string {
	if id := os.Getenv("INSTANCE_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	envFile := flag.String("env-file", ".env", "Path to an optional .env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envFile, "error", err)
	}

	instanceID := resolveInstanceID()
	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting bridge",
		"version", version.Full(),
		"instance_id", instanceID,
		"workspace_id", cfg.WorkspaceID,
		"api_port", cfg.APIPort)

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

	// 3. Token verifier
	verifier, err := auth.NewJWKSVerifier(ctx, auth.Config{
		Issuer:   cfg.Auth.Issuer,
		Audience: cfg.Auth.Audience,
		JWKSURL:  cfg.Auth.JWKSURL,
	})
	if err != nil {
		slog.Error("Failed to initialize token verifier", "error", err)
		os.Exit(1)
	}

	// 4. Domain services
	threads := services.NewThreadService(dbClient.Client)
	messages := services.NewMessageService(dbClient.Client, cfg.PostMessageMaxAttempts)
	registry := services.NewRegistryService(dbClient.Client, cfg.SessionStaleAfter)
	triggers := services.NewTriggerService(dbClient.Client)
	audit := services.NewAuditService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. PTY host client and delivery executor
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on
	// first RPC call.
	ptyClient, err := runtime.NewGRPCPTYClient(cfg.PTYHostAddr)
	if err != nil {
		slog.Error("Failed to initialize PTY host client", "addr", cfg.PTYHostAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := ptyClient.Close(); err != nil {
			slog.Error("Error closing PTY host client", "error", err)
		}
	}()
	slog.Info("PTY host client initialized", "addr", cfg.PTYHostAddr)

	executor := runtime.NewDeliveryExecutor(ptyClient, registry, cfg.RuntimeExec)
	fallback := queue.NewFallbackExecutor(dbClient.Client, ptyClient, registry, threads, cfg.Fallback)
	callback := queue.NewThreadCallbackSender(messages)

	// 6. Queue processing and supervision
	processor := queue.NewProcessor(cfg.WorkspaceID, cfg.Trigger, triggers, threads, executor, fallback, callback)
	scheduler := queue.NewUnreadScheduler(dbClient.Client, cfg.WorkspaceID, cfg.Scheduler, cfg.Trigger.MaxRetries, threads, messages, registry, triggers)
	reconciler := queue.NewFallbackReconciler(dbClient.Client, cfg.WorkspaceID, cfg.Fallback, triggers)

	pool := queue.NewSupervisorPool(instanceID, cfg.WorkspaceID, cfg.Supervisor, cfg.Trigger.LeaseTimeout, triggers, registry, scheduler, reconciler, processor)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start supervisor pool", "error", err)
		os.Exit(1)
	}

	// 7. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, verifier, threads, messages, registry, triggers, audit, pool)

	errCh := make(chan error, 1)
	go func() {
		addr := cfg.APIHost + ":" + cfg.APIPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Bridge started successfully",
		"instance_id", instanceID,
		"workers", cfg.Supervisor.WorkerCount)

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: workers first so in-flight jobs finish, then the
	// HTTP listener.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Supervisor.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Supervisor pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, in-flight jobs will be lease-reclaimed on restart")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
