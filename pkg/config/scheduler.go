package config

import "time"

// SchedulerConfig controls the unread reconciler and auto-trigger scheduler
// guards: the per-participant leaky bucket and the workspace circuit breaker.
type SchedulerConfig struct {
	// MaxTriggersPerWindow is the per-(thread, agent) auto-trigger budget
	// within the trailing Window.
	MaxTriggersPerWindow int

	// Window is the trailing budget window.
	Window time.Duration

	// MinInterval is the minimum spacing between consecutive auto-triggers
	// for the same (thread, agent).
	MinInterval time.Duration

	// BreakerBacklogThreshold opens the circuit breaker when the workspace
	// pending-job backlog reaches it.
	BreakerBacklogThreshold int

	// BreakerCooldown is how long the breaker stays open once tripped.
	BreakerCooldown time.Duration
}

// DefaultSchedulerConfig returns the built-in auto-trigger guard defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		MaxTriggersPerWindow:    3,
		Window:                  5 * time.Minute,
		MinInterval:             30 * time.Second,
		BreakerBacklogThreshold: 50,
		BreakerCooldown:         60 * time.Second,
	}
}

// RuntimeExecConfig controls the managed runtime delivery collision gate.
type RuntimeExecConfig struct {
	// QuietWindow is how long after a busy signal the runtime is considered
	// still busy.
	QuietWindow time.Duration

	// Recheck is the defer interval suggested when the gate defers a job.
	Recheck time.Duration

	// MaxDefer is the total time a job may be deferred by the gate before
	// escalating to a non-retryable timeout.
	MaxDefer time.Duration

	// MaxPayloadBytes caps the encoded prompt payload.
	MaxPayloadBytes int
}

// DefaultRuntimeExecConfig returns the built-in collision gate defaults.
func DefaultRuntimeExecConfig() *RuntimeExecConfig {
	return &RuntimeExecConfig{
		QuietWindow:     20 * time.Second,
		Recheck:         5 * time.Second,
		MaxDefer:        60 * time.Second,
		MaxPayloadBytes: 8 * 1024,
	}
}

// FallbackConfig controls the fallback executor and run reconciler.
type FallbackConfig struct {
	// ResumeMaxAttempts bounds resume tries before falling through to spawn.
	ResumeMaxAttempts int

	// CrashLoopThreshold / CrashLoopWindow: skip resume when this many resume
	// failures happened for the (workspace, agent) within the window.
	CrashLoopThreshold int
	CrashLoopWindow    time.Duration

	// Deadline is the max lifetime of a detached fallback process.
	Deadline time.Duration

	// Grace is the SIGTERM→SIGKILL grace period.
	Grace time.Duration

	// OrphanGrace is how long a dead pid may linger unreported before the
	// run is marked orphaned.
	OrphanGrace time.Duration
}

// DefaultFallbackConfig returns the built-in fallback defaults.
func DefaultFallbackConfig() *FallbackConfig {
	return &FallbackConfig{
		ResumeMaxAttempts:  2,
		CrashLoopThreshold: 3,
		CrashLoopWindow:    15 * time.Minute,
		Deadline:           10 * time.Minute,
		Grace:              5 * time.Second,
		OrphanGrace:        30 * time.Second,
	}
}
