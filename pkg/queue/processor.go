package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agentfabric/bridge/ent"
	"github.com/agentfabric/bridge/pkg/config"
	"github.com/agentfabric/bridge/pkg/metrics"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/runtime"
	"github.com/agentfabric/bridge/pkg/services"
)

// Processor error codes it stamps on attempts.
const (
	ErrCodeExecutorException  = "TRIGGER_EXECUTOR_EXCEPTION"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeThreadAutoBlocked  = "THREAD_AUTO_BLOCKED"
	ErrCodeFallbackSpawnFail  = "FALLBACK_SPAWN_FAILED"
	ErrCodeCallbackExhausted  = "CALLBACK_MAX_ATTEMPTS"
	ErrCodeCallbackSendFailed = "CALLBACK_SEND_FAILED"
)

// Callback event types posted on job completion.
const (
	EventTriggerDispatched = "trigger.dispatched"
	EventTriggerCompleted  = "trigger.completed"
)

// Processor drains due trigger jobs for one workspace: reclaim, claim,
// rate-limit, loop-guard, then dispatch to the execution or callback path.
type Processor struct {
	workspaceID string
	cfg         *config.TriggerConfig

	triggers *services.TriggerService
	threads  *services.ThreadService
	executor Executor
	fallback FallbackRunner
	callback CallbackSender
}

// NewProcessor creates a job processor.
func NewProcessor(workspaceID string, cfg *config.TriggerConfig, triggers *services.TriggerService, threads *services.ThreadService, executor Executor, fallback FallbackRunner, callback CallbackSender) *Processor {
	if cfg == nil {
		cfg = config.DefaultTriggerConfig()
	}
	return &Processor{
		workspaceID: workspaceID,
		cfg:         cfg,
		triggers:    triggers,
		threads:     threads,
		executor:    executor,
		fallback:    fallback,
		callback:    callback,
	}
}

// Tick processes up to limit due jobs. Returns the number of jobs handled.
func (p *Processor) Tick(ctx context.Context, limit int) (int, error) {
	if _, err := p.triggers.ReclaimStaleLeases(ctx, p.workspaceID, p.cfg.LeaseTimeout); err != nil {
		return 0, err
	}

	claimed, err := p.triggers.ClaimDue(ctx, p.workspaceID, limit, time.Now())
	if err != nil {
		return 0, err
	}
	if len(claimed) == 0 {
		return 0, ErrNoJobsDue
	}
	metrics.QueueClaimedTotal.Add(float64(len(claimed)))

	// Within-tick rate limit bucket keyed by (thread, agent).
	bucket := make(map[string]int, len(claimed))

	processed := 0
	for _, cj := range claimed {
		if err := p.processOne(ctx, cj, bucket); err != nil {
			slog.Error("Failed to process trigger job",
				"trigger_id", cj.Job.ID,
				"thread_id", cj.Job.ThreadID,
				"error", err)
			continue
		}
		processed++
	}
	return processed, nil
}

func (p *Processor) processOne(ctx context.Context, cj services.ClaimedJob, bucket map[string]int) error {
	job := cj.Job
	log := slog.With("trigger_id", job.ID, "thread_id", job.ThreadID, "target_agent_id", job.TargetAgentID)

	key := job.ThreadID + "|" + job.TargetAgentID
	bucket[key]++
	if bucket[key] > p.cfg.RateLimitPerMinute {
		retryAt := time.Now().Add(60 * time.Second)
		_, err := p.triggers.Transition(ctx, job.ID,
			[]string{models.TriggerStatusTriggering},
			models.TriggerStatusDeferred, &retryAt,
			services.AttemptRecord{Result: runtime.ResultDeferred, ErrorCode: ErrCodeRateLimited})
		return err
	}

	tripped, prior, err := p.loopGuardTripped(ctx, job)
	if err != nil {
		return err
	}
	if tripped {
		return p.autoBlock(ctx, job, prior, log)
	}

	switch cj.PriorStatus {
	case models.TriggerStatusCallbackPending, models.TriggerStatusCallbackRetry:
		return p.runCallbackPath(ctx, job, log)
	case models.TriggerStatusFallbackResume, models.TriggerStatusFallbackSpawn:
		return p.runFallbackChain(ctx, job, log)
	default:
		return p.runExecutionPath(ctx, job, log)
	}
}

// loopGuardTripped checks recent attempts for the (thread, agent) pair:
// LoopMaxTurns identical error codes across the window, or
// LoopMaxRepeatedFindings consecutive identical non-progressing attempts.
// On a trip it returns the prior outcome as a details object so the
// dead-letter attempt preserves what kept repeating.
func (p *Processor) loopGuardTripped(ctx context.Context, job *ent.TriggerJob) (bool, map[string]interface{}, error) {
	attempts, err := p.triggers.RecentAttemptsForThread(ctx, job.ThreadID, job.TargetAgentID, p.cfg.LoopMaxTurns)
	if err != nil {
		return false, nil, err
	}
	if len(attempts) == 0 {
		return false, nil, nil
	}

	sameCode := func(rows []*ent.TriggerAttempt) (string, bool) {
		first := ""
		if rows[0].ErrorCode != nil {
			first = *rows[0].ErrorCode
		}
		// Rate-limit and collision defers are expected churn, not findings.
		if first == "" || first == ErrCodeRateLimited || first == runtime.ErrCodeOperatorBusy {
			return "", false
		}
		for _, a := range rows[1:] {
			code := ""
			if a.ErrorCode != nil {
				code = *a.ErrorCode
			}
			if code != first {
				return "", false
			}
		}
		return first, true
	}

	if len(attempts) >= p.cfg.LoopMaxTurns {
		if code, ok := sameCode(attempts); ok {
			return true, priorOutcome(attempts[0], code, len(attempts)), nil
		}
	}
	if len(attempts) >= p.cfg.LoopMaxRepeatedFindings {
		if code, ok := sameCode(attempts[:p.cfg.LoopMaxRepeatedFindings]); ok {
			return true, priorOutcome(attempts[0], code, p.cfg.LoopMaxRepeatedFindings), nil
		}
	}
	return false, nil, nil
}

// priorOutcome captures the repeating attempt outcome for the dead-letter
// attempt's details.
func priorOutcome(last *ent.TriggerAttempt, code string, repeats int) map[string]interface{} {
	return map[string]interface{}{
		"error_code": code,
		"result":     last.AttemptResult,
		"repeats":    repeats,
	}
}

// autoBlock blocks the thread and dead-letters the job.
func (p *Processor) autoBlock(ctx context.Context, job *ent.TriggerJob, prior map[string]interface{}, log *slog.Logger) error {
	priorCode, _ := prior["error_code"].(string)
	actor := services.Actor{
		AgentID: "bridge-supervisor",
		Role:    "coordinator",
		Reason:  fmt.Sprintf("coordinator_override: repeated non-progressing trigger attempts (%s)", priorCode),
	}
	if _, err := p.threads.UpdateThreadStatus(ctx, job.ThreadID, models.ThreadStatusBlocked, actor); err != nil {
		// Already blocked is fine; anything else is reported but does not
		// stop the dead-lettering.
		if !services.IsCode(err, services.CodeInvalidThreadTransition) {
			log.Error("Failed to auto-block thread", "error", err)
		}
	}

	retryAt := (*time.Time)(nil)
	_, err := p.triggers.Transition(ctx, job.ID,
		[]string{models.TriggerStatusTriggering},
		models.TriggerStatusFailed, retryAt,
		services.AttemptRecord{
			Result:    runtime.ResultFailed,
			ErrorCode: ErrCodeThreadAutoBlocked,
			Details:   map[string]interface{}{"prior_outcome": prior},
		})
	if err != nil {
		return err
	}
	metrics.TriggerOutcomesTotal.WithLabelValues(ErrCodeThreadAutoBlocked).Inc()
	log.Warn("Loop guard tripped, thread auto-blocked", "prior_error_code", priorCode)
	return nil
}

// runExecutionPath delivers to the live runtime and maps the outcome.
func (p *Processor) runExecutionPath(ctx context.Context, job *ent.TriggerJob, log *slog.Logger) error {
	execCtx, cancel := context.WithTimeout(ctx, p.cfg.ExecutorTimeout)
	defer cancel()

	outcome, err := p.executor.Execute(execCtx, job)
	if err != nil {
		log.Error("Runtime executor raised", "error", err)
		_, terr := p.triggers.Transition(ctx, job.ID,
			[]string{models.TriggerStatusTriggering},
			models.TriggerStatusFailed, nil,
			services.AttemptRecord{
				Result:    runtime.ResultFailed,
				ErrorCode: ErrCodeExecutorException,
				Details:   map[string]interface{}{"error": err.Error()},
			})
		metrics.TriggerOutcomesTotal.WithLabelValues(runtime.ResultFailed).Inc()
		return terr
	}

	metrics.TriggerOutcomesTotal.WithLabelValues(outcome.Result).Inc()

	switch outcome.Result {
	case runtime.ResultDelivered:
		_, err := p.triggers.Transition(ctx, job.ID,
			[]string{models.TriggerStatusTriggering},
			models.TriggerStatusCallbackPending, nil,
			services.AttemptRecord{Result: runtime.ResultDelivered, Details: outcome.Details})
		if err != nil {
			return err
		}
		log.Info("Trigger delivered to runtime")
		return nil

	case runtime.ResultTimeout, runtime.ResultDeferred:
		if outcome.Retryable {
			execAttempts, err := p.executionAttemptCount(ctx, job.ID)
			if err != nil {
				return err
			}
			if execAttempts < p.cfg.MaxRetries {
				next := models.TriggerStatusTimeout
				if outcome.Result == runtime.ResultDeferred {
					next = models.TriggerStatusDeferred
				}
				delay := outcome.RetryAfter
				if delay <= 0 {
					delay = RetryBackoff(p.cfg.BackoffBase, p.cfg.MaxBackoff, execAttempts+1)
				}
				retryAt := time.Now().Add(delay)
				_, terr := p.triggers.Transition(ctx, job.ID,
					[]string{models.TriggerStatusTriggering},
					next, &retryAt,
					services.AttemptRecord{Result: outcome.Result, ErrorCode: outcome.ErrorCode, Details: outcome.Details})
				return terr
			}
		}
		// Retries exhausted or non-retryable timeout: fallback chain.
		if _, err := p.triggers.Transition(ctx, job.ID,
			[]string{models.TriggerStatusTriggering},
			models.TriggerStatusFallbackSpawn, nil,
			services.AttemptRecord{Result: outcome.Result, ErrorCode: outcome.ErrorCode, Details: outcome.Details}); err != nil {
			return err
		}
		return nil

	default: // failed, non-retryable
		if _, err := p.triggers.Transition(ctx, job.ID,
			[]string{models.TriggerStatusTriggering},
			models.TriggerStatusFallbackSpawn, nil,
			services.AttemptRecord{Result: runtime.ResultFailed, ErrorCode: outcome.ErrorCode, Details: outcome.Details}); err != nil {
			return err
		}
		return nil
	}
}

// runFallbackChain resumes or spawns a session for the job.
func (p *Processor) runFallbackChain(ctx context.Context, job *ent.TriggerJob, log *slog.Logger) error {
	execCtx, cancel := context.WithTimeout(ctx, p.cfg.ExecutorTimeout)
	defer cancel()

	outcome, err := p.fallback.Run(execCtx, job)
	if err != nil {
		log.Error("Fallback executor raised", "error", err)
		_, terr := p.triggers.Transition(ctx, job.ID,
			[]string{models.TriggerStatusTriggering},
			models.TriggerStatusFailed, nil,
			services.AttemptRecord{
				Result:    runtime.ResultFailed,
				ErrorCode: ErrCodeExecutorException,
				Details:   map[string]interface{}{"error": err.Error()},
			})
		return terr
	}

	metrics.TriggerOutcomesTotal.WithLabelValues(outcome.Kind).Inc()

	switch outcome.Kind {
	case FallbackResumeSucceeded, FallbackSpawned:
		_, err := p.triggers.Transition(ctx, job.ID,
			[]string{models.TriggerStatusTriggering},
			models.TriggerStatusCallbackPending, nil,
			services.AttemptRecord{Result: outcome.Kind, Details: outcome.Details})
		if err != nil {
			return err
		}
		log.Info("Fallback completed", "kind", outcome.Kind)
		return nil

	case FallbackRunning:
		_, err := p.triggers.Transition(ctx, job.ID,
			[]string{models.TriggerStatusTriggering},
			models.TriggerStatusFallbackRunning, nil,
			services.AttemptRecord{Result: outcome.Kind, Details: outcome.Details})
		if err != nil {
			return err
		}
		log.Info("Fallback running detached", "pid", outcome.PID)
		return nil

	default: // FallbackResumeFailed
		_, err := p.triggers.Transition(ctx, job.ID,
			[]string{models.TriggerStatusTriggering},
			models.TriggerStatusFailed, nil,
			services.AttemptRecord{Result: outcome.Kind, ErrorCode: outcome.ErrorCode, Details: outcome.Details})
		if err != nil {
			return err
		}
		log.Warn("Fallback chain exhausted", "error_code", outcome.ErrorCode)
		return nil
	}
}

// runCallbackPath posts the completion event on the job's thread.
func (p *Processor) runCallbackPath(ctx context.Context, job *ent.TriggerJob, log *slog.Logger) error {
	count, err := p.triggers.CallbackAttemptCount(ctx, job.ID)
	if err != nil {
		return err
	}
	if count >= p.cfg.CallbackMaxAttempts {
		_, terr := p.triggers.Transition(ctx, job.ID,
			[]string{models.TriggerStatusTriggering},
			models.TriggerStatusCallbackFailed, nil,
			services.AttemptRecord{Result: models.TriggerStatusCallbackFailed, ErrorCode: ErrCodeCallbackExhausted})
		return terr
	}

	err = p.callback.Send(ctx, job, EventTriggerCompleted)
	if err == nil {
		_, terr := p.triggers.Transition(ctx, job.ID,
			[]string{models.TriggerStatusTriggering},
			models.TriggerStatusCallbackDelivered, nil,
			services.AttemptRecord{Result: models.TriggerStatusCallbackDelivered})
		if terr != nil {
			return terr
		}
		log.Info("Completion callback delivered")
		return nil
	}

	if retryableCallbackError(err) {
		retryAt := time.Now().Add(RetryBackoff(p.cfg.BackoffBase, p.cfg.MaxBackoff, count+1))
		_, terr := p.triggers.Transition(ctx, job.ID,
			[]string{models.TriggerStatusTriggering},
			models.TriggerStatusCallbackRetry, &retryAt,
			services.AttemptRecord{
				Result:    models.TriggerStatusCallbackRetry,
				ErrorCode: ErrCodeCallbackSendFailed,
				Details:   map[string]interface{}{"error": err.Error()},
			})
		return terr
	}

	_, terr := p.triggers.Transition(ctx, job.ID,
		[]string{models.TriggerStatusTriggering},
		models.TriggerStatusCallbackFailed, nil,
		services.AttemptRecord{
			Result:    models.TriggerStatusCallbackFailed,
			ErrorCode: ErrCodeCallbackSendFailed,
			Details:   map[string]interface{}{"error": err.Error()},
		})
	return terr
}

// executionAttemptCount counts execution-phase attempts (delivered, timeout,
// deferred, failed); callback attempts do not consume delivery retries.
func (p *Processor) executionAttemptCount(ctx context.Context, triggerID string) (int, error) {
	attempts, err := p.triggers.AttemptsForJob(ctx, triggerID)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, a := range attempts {
		switch a.AttemptResult {
		case runtime.ResultDelivered, runtime.ResultTimeout, runtime.ResultDeferred, runtime.ResultFailed:
			n++
		}
	}
	return n, nil
}

// retryableCallbackError: conflicts and internal/store failures get retried;
// validation-class rejections are permanent.
func retryableCallbackError(err error) bool {
	switch services.CodeOf(err) {
	case services.CodeConflict, services.CodeInternal:
		return true
	default:
		return false
	}
}
