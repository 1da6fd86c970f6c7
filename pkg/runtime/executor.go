package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/agentfabric/bridge/ent"
	"github.com/agentfabric/bridge/pkg/config"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/services"
)

// Attempt results produced by executors.
const (
	ResultDelivered = "delivered"
	ResultTimeout   = "timeout"
	ResultDeferred  = "deferred"
	ResultFailed    = "failed"
)

// Validation and gate error codes.
const (
	ErrCodeRuntimeNotFound        = "RUNTIME_NOT_FOUND"
	ErrCodeRuntimeSessionMismatch = "RUNTIME_SESSION_MISMATCH"
	ErrCodeRuntimeUnmanaged       = "RUNTIME_UNMANAGED"
	ErrCodeRuntimeOffline         = "RUNTIME_OFFLINE"
	ErrCodeDeferTimeout           = "DEFER_TIMEOUT"
)

// Outcome is the result of one delivery attempt. Retryable timeouts and
// defers go back to the queue with a retry time; everything else either
// completes the job or sends it down the fallback chain.
type Outcome struct {
	Result     string
	ErrorCode  string
	Retryable  bool
	RetryAfter time.Duration
	Details    map[string]interface{}
}

// DeliveryExecutor pushes a claimed trigger job into the target's live
// runtime. It keeps a per-(workspace, agent, runtime) last-busy map in
// memory; losing it on restart only weakens the collision gate for one
// quiet window.
type DeliveryExecutor struct {
	adapter  PTYAdapter
	registry *services.RegistryService
	cfg      *config.RuntimeExecConfig

	mu         sync.Mutex
	lastBusyAt map[string]time.Time
}

// NewDeliveryExecutor creates a delivery executor.
func NewDeliveryExecutor(adapter PTYAdapter, registry *services.RegistryService, cfg *config.RuntimeExecConfig) *DeliveryExecutor {
	if cfg == nil {
		cfg = config.DefaultRuntimeExecConfig()
	}
	return &DeliveryExecutor{
		adapter:    adapter,
		registry:   registry,
		cfg:        cfg,
		lastBusyAt: make(map[string]time.Time),
	}
}

// Execute validates the target session, applies the collision gate, and
// delivers the framed payload. A transport error is returned as err; the
// caller records it as an executor exception.
func (e *DeliveryExecutor) Execute(ctx context.Context, job *ent.TriggerJob) (Outcome, error) {
	override := models.HasOverridePrefix(job.Reason)
	gateState := "not_evaluated"
	finish := func(o Outcome) Outcome {
		if override {
			o.Details = withOverrideAudit(o.Details, job.Reason, gateState)
		}
		return o
	}

	session, err := e.registry.GetSession(ctx, job.WorkspaceID, job.TargetAgentID)
	if err != nil {
		return Outcome{}, err
	}
	if session == nil {
		return finish(Outcome{Result: ResultFailed, ErrorCode: ErrCodeRuntimeNotFound}), nil
	}
	if job.TargetSessionID != nil && *job.TargetSessionID != "" && *job.TargetSessionID != session.SessionID {
		return finish(Outcome{
			Result:    ResultFailed,
			ErrorCode: ErrCodeRuntimeSessionMismatch,
			Details: map[string]interface{}{
				"expected_session_id": *job.TargetSessionID,
				"current_session_id":  session.SessionID,
			},
		}), nil
	}
	if session.ManagementMode != models.ManagementModeManaged {
		return finish(Outcome{Result: ResultFailed, ErrorCode: ErrCodeRuntimeUnmanaged}), nil
	}
	if session.Status == models.SessionStatusOffline {
		return finish(Outcome{Result: ResultTimeout, ErrorCode: ErrCodeRuntimeOffline, Retryable: true}), nil
	}

	now := time.Now()
	busyKey := fmt.Sprintf("%s|%s|%s", job.WorkspaceID, job.TargetAgentID, session.Runtime)

	if override {
		gateState = "bypassed"
	} else {
		gateState = "enforced"
		if busy, since := e.busySince(busyKey, now); busy {
			outcome, _ := e.deferOrEscalate(job, now, since)
			return finish(outcome), nil
		}
	}

	payload, err := EncodePayload(job.ID, job.ThreadID, job.Reason, job.Prompt, e.cfg.MaxPayloadBytes)
	if err != nil {
		code := ErrCodePayloadEmpty
		var perr *PayloadError
		if errors.As(err, &perr) {
			code = perr.Code
		}
		return finish(Outcome{Result: ResultFailed, ErrorCode: code, Details: map[string]interface{}{"error": err.Error()}}), nil
	}

	result, err := e.adapter.Deliver(ctx, DeliverInput{
		Runtime:       session.Runtime,
		TriggerID:     job.ID,
		ThreadID:      job.ThreadID,
		Reason:        job.Reason,
		Payload:       payload,
		ForceOverride: override,
	})
	if err != nil {
		return Outcome{}, err
	}

	if result.Delivered {
		e.clearBusy(busyKey)
		return finish(Outcome{Result: ResultDelivered, Details: detailsFromAdapter(result.Details)}), nil
	}

	switch result.ErrorCode {
	case ErrCodeOperatorBusy:
		e.markBusy(busyKey, now)
		outcome, _ := e.deferOrEscalate(job, now, now)
		outcome.Details = detailsFromAdapter(result.Details)
		return finish(outcome), nil
	case ErrCodeTargetNotFound, ErrCodePaneDead, ErrCodeSendKeysError:
		return finish(Outcome{
			Result:    ResultTimeout,
			ErrorCode: result.ErrorCode,
			Retryable: true,
			Details:   detailsFromAdapter(result.Details),
		}), nil
	default:
		return finish(Outcome{
			Result:    ResultFailed,
			ErrorCode: result.ErrorCode,
			Details:   detailsFromAdapter(result.Details),
		}), nil
	}
}

// deferOrEscalate defers the job for a recheck, unless it has been deferred
// past MaxDefer since creation, in which case it escalates to a
// non-retryable timeout.
func (e *DeliveryExecutor) deferOrEscalate(job *ent.TriggerJob, now, busySince time.Time) (Outcome, bool) {
	if now.Sub(job.CreatedAt) >= e.cfg.MaxDefer {
		slog.Warn("Collision gate defer exceeded max window",
			"trigger_id", job.ID,
			"thread_id", job.ThreadID,
			"deferred_for", now.Sub(job.CreatedAt).String())
		return Outcome{Result: ResultTimeout, ErrorCode: ErrCodeDeferTimeout}, true
	}
	return Outcome{
		Result:     ResultDeferred,
		ErrorCode:  ErrCodeOperatorBusy,
		Retryable:  true,
		RetryAfter: e.cfg.Recheck,
		Details: map[string]interface{}{
			"busy_since": busySince.Format(time.RFC3339),
		},
	}, false
}

func (e *DeliveryExecutor) busySince(key string, now time.Time) (bool, time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	since, ok := e.lastBusyAt[key]
	if !ok {
		return false, time.Time{}
	}
	if now.Sub(since) >= e.cfg.QuietWindow {
		delete(e.lastBusyAt, key)
		return false, time.Time{}
	}
	return true, since
}

func (e *DeliveryExecutor) markBusy(key string, at time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastBusyAt[key] = at
}

func (e *DeliveryExecutor) clearBusy(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.lastBusyAt, key)
}

func withOverrideAudit(details map[string]interface{}, reason, gateState string) map[string]interface{} {
	if details == nil {
		details = make(map[string]interface{}, 1)
	}
	prefix := models.ReasonPrefixHumanOverride
	if !strings.HasPrefix(reason, prefix) {
		prefix = models.ReasonPrefixCoordinatorOverride
	}
	details["force_override_audit"] = map[string]interface{}{
		"requested":      true,
		"applied":        gateState == "bypassed",
		"intent":         "collision_gate_bypass",
		"reason_prefix":  prefix,
		"collision_gate": gateState,
	}
	return details
}

func detailsFromAdapter(in map[string]string) map[string]interface{} {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
