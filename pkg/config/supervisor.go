package config

import "time"

// SupervisorConfig controls the supervisor worker pool cadence.
// Each tick runs: unread reconciliation → auto-trigger scheduling → runtime
// reconciliation → fallback-run reconciliation → trigger queue processing.
type SupervisorConfig struct {
	// WorkerCount is the number of supervisor workers per replica/pod.
	WorkerCount int

	// TickInterval is the base interval between supervisor ticks.
	TickInterval time.Duration

	// TickJitter is the random jitter added to TickInterval.
	// Actual interval: TickInterval ± TickJitter.
	TickJitter time.Duration

	// MaxJobsPerTick caps how many due trigger jobs a single tick claims.
	MaxJobsPerTick int

	// GracefulShutdownTimeout is the max time to wait for in-flight ticks
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration
}

// DefaultSupervisorConfig returns the built-in supervisor defaults.
func DefaultSupervisorConfig() *SupervisorConfig {
	return &SupervisorConfig{
		WorkerCount:             2,
		TickInterval:            2 * time.Second,
		TickJitter:              500 * time.Millisecond,
		MaxJobsPerTick:          10,
		GracefulShutdownTimeout: 2 * time.Minute,
	}
}

// TriggerConfig controls trigger job execution, retry, and callback behavior.
type TriggerConfig struct {
	// MaxRetries is the per-job retry cap before the fallback chain.
	MaxRetries int

	// LeaseTimeout is how long a `triggering` claim may go without an
	// update before another worker reclaims it.
	LeaseTimeout time.Duration

	// ExecutorTimeout bounds a single runtime delivery call.
	ExecutorTimeout time.Duration

	// BackoffBase and MaxBackoff shape the exponential retry backoff:
	// base * 2^(attempts-1), clamped to MaxBackoff.
	BackoffBase time.Duration
	MaxBackoff  time.Duration

	// RateLimitPerMinute caps per-(thread, agent) executions within a tick.
	RateLimitPerMinute int

	// LoopMaxTurns and LoopMaxRepeatedFindings control loop detection:
	// LoopMaxTurns identical error codes, or LoopMaxRepeatedFindings
	// consecutive identical non-progressing attempts, auto-block the thread.
	LoopMaxTurns            int
	LoopMaxRepeatedFindings int

	// CallbackMaxAttempts bounds completion-callback delivery retries.
	CallbackMaxAttempts int
}

// DefaultTriggerConfig returns the built-in trigger processing defaults.
func DefaultTriggerConfig() *TriggerConfig {
	return &TriggerConfig{
		MaxRetries:              2,
		LeaseTimeout:            45 * time.Second,
		ExecutorTimeout:         60 * time.Second,
		BackoffBase:             2 * time.Second,
		MaxBackoff:              5 * time.Minute,
		RateLimitPerMinute:      10,
		LoopMaxTurns:            20,
		LoopMaxRepeatedFindings: 3,
		CallbackMaxAttempts:     3,
	}
}
