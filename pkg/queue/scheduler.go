package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agentfabric/bridge/ent"
	"github.com/agentfabric/bridge/ent/thread"
	"github.com/agentfabric/bridge/pkg/config"
	"github.com/agentfabric/bridge/pkg/metrics"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/services"
	"github.com/sony/gobreaker"
)

// Suppression guard labels.
const (
	guardBreaker = "suppressed_by_breaker"
	guardPending = "skipped_pending"
	guardBudget  = "suppressed_by_budget"
)

// candidate is one dormant participant with unread messages.
type candidate struct {
	threadID    string
	agentID     string
	latestSeq   int
	unreadCount int
}

// UnreadScheduler scans active threads for dormant participants with unread
// messages and enqueues auto-trigger jobs for them, guarded by a workspace
// circuit breaker and a per-participant leaky bucket.
type UnreadScheduler struct {
	client      *ent.Client
	workspaceID string
	cfg         *config.SchedulerConfig

	threads    *services.ThreadService
	messages   *services.MessageService
	registry   *services.RegistryService
	triggers   *services.TriggerService
	maxRetries int

	breaker *gobreaker.CircuitBreaker
}

// NewUnreadScheduler creates the scheduler with its breaker primed.
// maxRetries seeds new jobs' retry cap.
func NewUnreadScheduler(client *ent.Client, workspaceID string, cfg *config.SchedulerConfig, maxRetries int, threads *services.ThreadService, messages *services.MessageService, registry *services.RegistryService, triggers *services.TriggerService) *UnreadScheduler {
	if cfg == nil {
		cfg = config.DefaultSchedulerConfig()
	}
	s := &UnreadScheduler{
		client:      client,
		workspaceID: workspaceID,
		cfg:         cfg,
		threads:     threads,
		messages:    messages,
		registry:    registry,
		triggers:    triggers,
		maxRetries:  maxRetries,
	}
	s.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "auto-trigger-backlog",
		Timeout: cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 1
		},
	})
	return s
}

// Tick runs one reconciliation + scheduling pass. Returns the number of jobs
// enqueued.
func (s *UnreadScheduler) Tick(ctx context.Context) (int, error) {
	candidates, err := s.reconcile(ctx)
	if err != nil {
		return 0, err
	}
	if len(candidates) == 0 {
		return 0, nil
	}

	// Workspace backlog breaker: a backlog past the threshold counts as a
	// breaker failure, which opens it for the cooldown window.
	_, err = s.breaker.Execute(func() (interface{}, error) {
		backlog, cerr := s.triggers.PendingCount(ctx, s.workspaceID)
		if cerr != nil {
			return nil, cerr
		}
		if backlog >= s.cfg.BreakerBacklogThreshold {
			return nil, fmt.Errorf("trigger backlog %d at threshold %d", backlog, s.cfg.BreakerBacklogThreshold)
		}
		return nil, nil
	})
	if err != nil {
		metrics.SchedulerSuppressionsTotal.WithLabelValues(guardBreaker).Add(float64(len(candidates)))
		slog.Warn("Auto-trigger breaker open, suppressing all candidates",
			"workspace_id", s.workspaceID,
			"candidates", len(candidates),
			"error", err)
		return 0, nil
	}

	scheduled := 0
	now := time.Now()
	for _, c := range candidates {
		ok, gerr := s.passesGuards(ctx, c, now)
		if gerr != nil {
			return scheduled, gerr
		}
		if !ok {
			continue
		}
		if serr := s.schedule(ctx, c, now); serr != nil {
			slog.Error("Failed to schedule auto-trigger",
				"thread_id", c.threadID,
				"agent_id", c.agentID,
				"error", serr)
			continue
		}
		scheduled++
	}

	if scheduled > 0 {
		metrics.SchedulerScheduledTotal.Add(float64(scheduled))
		slog.Info("Auto-trigger scheduling pass complete",
			"workspace_id", s.workspaceID,
			"candidates", len(candidates),
			"scheduled", scheduled)
	}
	return scheduled, nil
}

// reconcile computes the candidate set: participants of active threads with
// unread messages who did not post the latest message and have no live
// managed session.
func (s *UnreadScheduler) reconcile(ctx context.Context) ([]candidate, error) {
	threads, err := s.client.Thread.Query().
		Where(
			thread.WorkspaceIDEQ(s.workspaceID),
			thread.StatusEQ(thread.StatusActive),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query active threads: %w", err)
	}

	now := time.Now()
	var out []candidate
	for _, th := range threads {
		latest, err := s.messages.LatestMessage(ctx, th.ID)
		if err != nil {
			return nil, err
		}
		if latest == nil {
			continue
		}
		if suppressed, _ := latest.Metadata[models.MetadataSuppressAutoTrig].(bool); suppressed {
			continue
		}

		participants, err := s.threads.Participants(ctx, th.ID)
		if err != nil {
			return nil, err
		}
		for _, agentID := range participants {
			if agentID == latest.SenderAgentID {
				continue
			}
			lastRead, err := s.messages.Cursor(ctx, th.ID, agentID)
			if err != nil {
				return nil, err
			}
			unread := latest.Seq - lastRead
			if unread <= 0 {
				continue
			}
			if dormant, err := s.isDormant(ctx, agentID, now); err != nil {
				return nil, err
			} else if !dormant {
				continue
			}
			out = append(out, candidate{
				threadID:    th.ID,
				agentID:     agentID,
				latestSeq:   latest.Seq,
				unreadCount: unread,
			})
		}
	}
	return dedupeCandidates(out), nil
}

// isDormant: session missing, idle, offline, or stale.
func (s *UnreadScheduler) isDormant(ctx context.Context, agentID string, now time.Time) (bool, error) {
	session, err := s.registry.GetSession(ctx, s.workspaceID, agentID)
	if err != nil {
		return false, err
	}
	if session == nil {
		return true, nil
	}
	if session.Status == models.SessionStatusIdle || session.Status == models.SessionStatusOffline {
		return true, nil
	}
	return session.Stale(now, s.registry.StaleAfter()), nil
}

// passesGuards applies pending dedupe and the per-participant leaky bucket.
func (s *UnreadScheduler) passesGuards(ctx context.Context, c candidate, now time.Time) (bool, error) {
	pending, err := s.triggers.PendingExists(ctx, s.workspaceID, c.threadID, c.agentID, models.ReasonNewUnreadDormantParticipant)
	if err != nil {
		return false, err
	}
	if pending {
		metrics.SchedulerSuppressionsTotal.WithLabelValues(guardPending).Inc()
		return false, nil
	}

	recent, err := s.triggers.RecentAutoTriggers(ctx, c.threadID, c.agentID, now.Add(-s.cfg.Window))
	if err != nil {
		return false, err
	}
	if len(recent) >= s.cfg.MaxTriggersPerWindow {
		metrics.SchedulerSuppressionsTotal.WithLabelValues(guardBudget).Inc()
		return false, nil
	}
	if len(recent) > 0 && now.Sub(recent[0].CreatedAt) < s.cfg.MinInterval {
		metrics.SchedulerSuppressionsTotal.WithLabelValues(guardBudget).Inc()
		return false, nil
	}
	return true, nil
}

func (s *UnreadScheduler) schedule(ctx context.Context, c candidate, now time.Time) error {
	session, err := s.registry.GetSession(ctx, s.workspaceID, c.agentID)
	if err != nil {
		return err
	}
	decision := services.ResolveTriggerDecision(session, now, s.registry.StaleAfter())

	in := services.IngestInput{
		TriggerID:     services.BuildTriggerID(services.AutoTriggerSeed(s.workspaceID, c.threadID, c.agentID, c.latestSeq)),
		ThreadID:      c.threadID,
		WorkspaceID:   s.workspaceID,
		TargetAgentID: c.agentID,
		Reason:        models.ReasonNewUnreadDormantParticipant,
		Prompt: fmt.Sprintf("You have %d unread message(s) in thread %s (latest seq %d). Read them and respond.",
			c.unreadCount, c.threadID, c.latestSeq),
		InitialStatus: decision.InitialStatus,
		MaxRetries:    s.maxRetries,
	}
	if session != nil {
		in.TargetSessionID = session.SessionID
	}

	_, created, err := s.triggers.Ingest(ctx, in)
	if err != nil {
		if services.IsCode(err, services.CodeIdempotencyConflict) {
			// Same fingerprint scheduled by a concurrent replica.
			return nil
		}
		return err
	}
	if created {
		slog.Debug("Scheduled auto-trigger",
			"trigger_id", in.TriggerID,
			"thread_id", c.threadID,
			"agent_id", c.agentID,
			"initial_status", decision.InitialStatus)
	}
	return nil
}

// dedupeCandidates keeps the entry with the highest latest seq per
// (thread, agent).
func dedupeCandidates(in []candidate) []candidate {
	best := make(map[string]candidate, len(in))
	order := make([]string, 0, len(in))
	for _, c := range in {
		key := c.threadID + "|" + c.agentID
		prev, ok := best[key]
		if !ok {
			order = append(order, key)
			best[key] = c
			continue
		}
		if c.latestSeq > prev.latestSeq {
			best[key] = c
		}
	}
	out := make([]candidate, 0, len(order))
	for _, key := range order {
		out = append(out, best[key])
	}
	return out
}
