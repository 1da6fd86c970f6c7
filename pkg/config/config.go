// Package config holds the bridge service configuration.
// Values come from environment variables (optionally via a .env file loaded in
// main); each tunable group has a Default*Config constructor with the built-in
// defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the root configuration for the bridge service.
type Config struct {
	// APIHost / APIPort control the HTTP bind address.
	APIHost string
	APIPort string

	// WorkspaceID is the single workspace this instance serves.
	WorkspaceID string

	// Auth holds the access-token verifier inputs.
	Auth AuthConfig

	// PTYHostAddr is the gRPC address of the pty-host delivery daemon.
	PTYHostAddr string

	// SessionStaleAfter is the runtime-registry staleness threshold.
	SessionStaleAfter time.Duration

	// PostMessageMaxAttempts bounds the post_message sequence CAS loop.
	PostMessageMaxAttempts int

	Supervisor  *SupervisorConfig
	Trigger     *TriggerConfig
	Scheduler   *SchedulerConfig
	RuntimeExec *RuntimeExecConfig
	Fallback    *FallbackConfig
}

// AuthConfig holds the token verifier inputs.
type AuthConfig struct {
	Issuer   string
	Audience string
	JWKSURL  string
}

// LoadFromEnv builds the full configuration from environment variables,
// validating the required ones.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		APIHost:     getEnv("API_HOST", "0.0.0.0"),
		APIPort:     getEnv("API_PORT", "8080"),
		WorkspaceID: os.Getenv("WORKSPACE_ID"),
		Auth: AuthConfig{
			Issuer:   os.Getenv("AUTH_ISSUER"),
			Audience: os.Getenv("AUTH_AUDIENCE"),
			JWKSURL:  os.Getenv("AUTH_JWKS_URL"),
		},
		PTYHostAddr:            getEnv("PTYHOST_ADDR", "localhost:50061"),
		SessionStaleAfter:      time.Duration(getEnvInt("SESSION_STALE_AFTER_HOURS", 12)) * time.Hour,
		PostMessageMaxAttempts: getEnvInt("POST_MESSAGE_MAX_ATTEMPTS", 3),
		Supervisor:             DefaultSupervisorConfig(),
		Trigger:                DefaultTriggerConfig(),
		Scheduler:              DefaultSchedulerConfig(),
		RuntimeExec:            DefaultRuntimeExecConfig(),
		Fallback:               DefaultFallbackConfig(),
	}

	if cfg.WorkspaceID == "" {
		return nil, fmt.Errorf("WORKSPACE_ID is required")
	}
	if cfg.Auth.Issuer == "" || cfg.Auth.Audience == "" || cfg.Auth.JWKSURL == "" {
		return nil, fmt.Errorf("AUTH_ISSUER, AUTH_AUDIENCE and AUTH_JWKS_URL are required")
	}

	cfg.Trigger.MaxRetries = getEnvInt("TRIGGER_MAX_RETRIES", cfg.Trigger.MaxRetries)
	cfg.Trigger.LeaseTimeout = getEnvDuration("TRIGGER_LEASE_TIMEOUT", cfg.Trigger.LeaseTimeout)
	cfg.Trigger.RateLimitPerMinute = getEnvInt("TRIGGER_RATE_LIMIT_PER_MINUTE", cfg.Trigger.RateLimitPerMinute)
	cfg.Trigger.LoopMaxTurns = getEnvInt("TRIGGER_LOOP_MAX_TURNS", cfg.Trigger.LoopMaxTurns)
	cfg.Trigger.LoopMaxRepeatedFindings = getEnvInt("TRIGGER_LOOP_MAX_REPEATED_FINDINGS", cfg.Trigger.LoopMaxRepeatedFindings)
	cfg.Trigger.CallbackMaxAttempts = getEnvInt("TRIGGER_CALLBACK_MAX_ATTEMPTS", cfg.Trigger.CallbackMaxAttempts)

	cfg.Supervisor.TickInterval = getEnvDuration("SUPERVISOR_TICK_INTERVAL", cfg.Supervisor.TickInterval)
	cfg.Supervisor.MaxJobsPerTick = getEnvInt("SUPERVISOR_MAX_JOBS_PER_TICK", cfg.Supervisor.MaxJobsPerTick)
	cfg.Supervisor.WorkerCount = getEnvInt("SUPERVISOR_WORKER_COUNT", cfg.Supervisor.WorkerCount)

	cfg.Scheduler.MaxTriggersPerWindow = getEnvInt("SCHEDULER_MAX_TRIGGERS_PER_WINDOW", cfg.Scheduler.MaxTriggersPerWindow)
	cfg.Scheduler.Window = getEnvDuration("SCHEDULER_WINDOW", cfg.Scheduler.Window)
	cfg.Scheduler.MinInterval = getEnvDuration("SCHEDULER_MIN_INTERVAL", cfg.Scheduler.MinInterval)
	cfg.Scheduler.BreakerBacklogThreshold = getEnvInt("SCHEDULER_BREAKER_BACKLOG_THRESHOLD", cfg.Scheduler.BreakerBacklogThreshold)
	cfg.Scheduler.BreakerCooldown = getEnvDuration("SCHEDULER_BREAKER_COOLDOWN", cfg.Scheduler.BreakerCooldown)

	cfg.RuntimeExec.QuietWindow = getEnvDuration("RUNTIME_QUIET_WINDOW", cfg.RuntimeExec.QuietWindow)
	cfg.RuntimeExec.Recheck = getEnvDuration("RUNTIME_DEFER_RECHECK", cfg.RuntimeExec.Recheck)
	cfg.RuntimeExec.MaxDefer = getEnvDuration("RUNTIME_MAX_DEFER", cfg.RuntimeExec.MaxDefer)
	cfg.RuntimeExec.MaxPayloadBytes = getEnvInt("RUNTIME_MAX_PAYLOAD_BYTES", cfg.RuntimeExec.MaxPayloadBytes)

	cfg.Fallback.ResumeMaxAttempts = getEnvInt("FALLBACK_RESUME_MAX_ATTEMPTS", cfg.Fallback.ResumeMaxAttempts)
	cfg.Fallback.CrashLoopThreshold = getEnvInt("FALLBACK_CRASH_LOOP_THRESHOLD", cfg.Fallback.CrashLoopThreshold)
	cfg.Fallback.CrashLoopWindow = getEnvDuration("FALLBACK_CRASH_LOOP_WINDOW", cfg.Fallback.CrashLoopWindow)
	cfg.Fallback.Deadline = getEnvDuration("FALLBACK_DEADLINE", cfg.Fallback.Deadline)
	cfg.Fallback.Grace = getEnvDuration("FALLBACK_GRACE", cfg.Fallback.Grace)
	cfg.Fallback.OrphanGrace = getEnvDuration("FALLBACK_ORPHAN_GRACE", cfg.Fallback.OrphanGrace)

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
