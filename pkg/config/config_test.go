package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("WORKSPACE_ID", "ws-test")
	t.Setenv("AUTH_ISSUER", "https://issuer.test")
	t.Setenv("AUTH_AUDIENCE", "bridge")
	t.Setenv("AUTH_JWKS_URL", "https://issuer.test/jwks")
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("requires workspace and auth settings", func(t *testing.T) {
		t.Setenv("WORKSPACE_ID", "")
		_, err := LoadFromEnv()
		require.Error(t, err)

		t.Setenv("WORKSPACE_ID", "ws-test")
		t.Setenv("AUTH_ISSUER", "")
		_, err = LoadFromEnv()
		require.Error(t, err)
	})

	t.Run("applies defaults", func(t *testing.T) {
		setRequiredEnv(t)
		cfg, err := LoadFromEnv()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.APIPort)
		assert.Equal(t, 12*time.Hour, cfg.SessionStaleAfter)
		assert.Equal(t, DefaultTriggerConfig().LoopMaxTurns, cfg.Trigger.LoopMaxTurns)
		assert.Equal(t, DefaultSchedulerConfig().MinInterval, cfg.Scheduler.MinInterval)
		assert.Equal(t, DefaultRuntimeExecConfig().MaxDefer, cfg.RuntimeExec.MaxDefer)
		assert.Equal(t, DefaultFallbackConfig().CrashLoopThreshold, cfg.Fallback.CrashLoopThreshold)
	})

	t.Run("binds queue and guard knobs from env", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TRIGGER_LOOP_MAX_TURNS", "5")
		t.Setenv("TRIGGER_RATE_LIMIT_PER_MINUTE", "2")
		t.Setenv("SCHEDULER_MIN_INTERVAL", "90s")
		t.Setenv("SCHEDULER_BREAKER_BACKLOG_THRESHOLD", "7")
		t.Setenv("RUNTIME_MAX_DEFER", "3m")
		t.Setenv("FALLBACK_CRASH_LOOP_WINDOW", "45m")

		cfg, err := LoadFromEnv()
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Trigger.LoopMaxTurns)
		assert.Equal(t, 2, cfg.Trigger.RateLimitPerMinute)
		assert.Equal(t, 90*time.Second, cfg.Scheduler.MinInterval)
		assert.Equal(t, 7, cfg.Scheduler.BreakerBacklogThreshold)
		assert.Equal(t, 3*time.Minute, cfg.RuntimeExec.MaxDefer)
		assert.Equal(t, 45*time.Minute, cfg.Fallback.CrashLoopWindow)
	})
}
