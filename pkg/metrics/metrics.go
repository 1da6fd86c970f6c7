// Package metrics exposes the bridge's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts protocol operations by name.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bridge_requests_total",
		Help: "Protocol operations received, by operation.",
	}, []string{"operation"})

	// RequestErrorsTotal counts failed operations by error code.
	RequestErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bridge_request_errors_total",
		Help: "Failed protocol operations, by operation and error code.",
	}, []string{"operation", "code"})

	// RequestDuration observes end-to-end operation latency.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bridge_request_duration_seconds",
		Help:    "Protocol operation latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// TriggerOutcomesTotal counts trigger attempt results.
	TriggerOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bridge_trigger_outcomes_total",
		Help: "Trigger attempt outcomes, by attempt result.",
	}, []string{"result"})

	// SchedulerSuppressionsTotal counts auto-trigger candidates suppressed by
	// a scheduler guard.
	SchedulerSuppressionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bridge_scheduler_suppressions_total",
		Help: "Auto-trigger candidates suppressed, by guard.",
	}, []string{"guard"})

	// SchedulerScheduledTotal counts auto-trigger jobs actually enqueued.
	SchedulerScheduledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bridge_scheduler_scheduled_total",
		Help: "Auto-trigger jobs enqueued by the unread reconciler.",
	})

	// QueueClaimedTotal counts jobs claimed by queue workers.
	QueueClaimedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bridge_queue_claimed_total",
		Help: "Trigger jobs claimed by queue workers.",
	})

	// FallbackRunsTotal counts fallback runs by terminal outcome.
	FallbackRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bridge_fallback_runs_total",
		Help: "Fallback runs, by terminal status.",
	}, []string{"status"})

	// SessionsMarkedOffline counts sessions flipped offline by reconciliation.
	SessionsMarkedOffline = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bridge_sessions_marked_offline_total",
		Help: "Sessions marked offline by staleness reconciliation.",
	})
)
