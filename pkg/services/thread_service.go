package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agentfabric/bridge/ent"
	"github.com/agentfabric/bridge/ent/message"
	"github.com/agentfabric/bridge/ent/thread"
	"github.com/agentfabric/bridge/ent/threadparticipant"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/google/uuid"
)

// allowedTransitions is the thread status graph. active is initial, closed is
// terminal; every edge not listed fails with INVALID_THREAD_TRANSITION.
var allowedTransitions = map[string][]string{
	models.ThreadStatusActive:   {models.ThreadStatusBlocked, models.ThreadStatusResolved},
	models.ThreadStatusBlocked:  {models.ThreadStatusActive, models.ThreadStatusResolved, models.ThreadStatusClosed},
	models.ThreadStatusResolved: {models.ThreadStatusActive, models.ThreadStatusClosed},
	models.ThreadStatusClosed:   {},
}

// Actor identifies who is performing a state change and with what authority.
type Actor struct {
	AgentID string
	Role    string
	Reason  string
}

// ThreadService manages thread lifecycle, participants, and escalation ownership.
type ThreadService struct {
	client *ent.Client
}

// NewThreadService creates a new ThreadService.
func NewThreadService(client *ent.Client) *ThreadService {
	return &ThreadService{client: client}
}

// CreateThread creates a thread with its participant set in one transaction.
// Participants are deduplicated preserving first-occurrence order; an empty
// participant set is allowed.
func (s *ThreadService) CreateThread(ctx context.Context, req models.CreateThreadRequest) (*models.ThreadDetail, error) {
	if req.WorkspaceID == "" {
		return nil, InvalidArgument("workspace_id is required")
	}
	if req.Title == "" {
		return nil, InvalidArgument("title is required")
	}
	switch req.Type {
	case models.ThreadTypeConversation, models.ThreadTypeWorkflow, models.ThreadTypeIncident:
	default:
		return nil, InvalidArgument("invalid thread type %q", req.Type)
	}

	participants := dedupePreservingOrder(req.Participants)
	threadID := "th_" + uuid.New().String()
	now := time.Now()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	builder := tx.Thread.Create().
		SetID(threadID).
		SetWorkspaceID(req.WorkspaceID).
		SetTitle(req.Title).
		SetType(thread.Type(req.Type)).
		SetStatus(thread.StatusActive).
		SetCreatedAt(now).
		SetUpdatedAt(now)
	if req.CreatedBy != "" {
		builder.SetCreatedBy(req.CreatedBy)
	}

	th, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}

	for i, agentID := range participants {
		_, err := tx.ThreadParticipant.Create().
			SetID(uuid.New().String()).
			SetThreadID(th.ID).
			SetAgentID(agentID).
			SetPosition(i).
			SetCreatedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to add participant %s: %w", agentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit thread creation: %w", err)
	}

	return threadDetail(th, participants), nil
}

// GetThread returns the thread with its participants in insertion order,
// or NOT_FOUND.
func (s *ThreadService) GetThread(ctx context.Context, threadID string) (*models.ThreadDetail, error) {
	th, err := s.client.Thread.Query().
		Where(thread.IDEQ(threadID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NotFound("thread", threadID)
		}
		return nil, fmt.Errorf("failed to query thread: %w", err)
	}

	participants, err := s.Participants(ctx, threadID)
	if err != nil {
		return nil, err
	}

	return threadDetail(th, participants), nil
}

// Participants returns the thread's participant agent ids in insertion order.
func (s *ThreadService) Participants(ctx context.Context, threadID string) ([]string, error) {
	rows, err := s.client.ThreadParticipant.Query().
		Where(threadparticipant.ThreadIDEQ(threadID)).
		Order(ent.Asc(threadparticipant.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}

	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.AgentID
	}
	return out, nil
}

// IsParticipant reports whether agentID belongs to the thread's participant set.
func (s *ThreadService) IsParticipant(ctx context.Context, threadID, agentID string) (bool, error) {
	n, err := s.client.ThreadParticipant.Query().
		Where(
			threadparticipant.ThreadIDEQ(threadID),
			threadparticipant.AgentIDEQ(agentID),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check participant: %w", err)
	}
	return n > 0, nil
}

// UpdateThreadStatus transitions a thread through the status graph with a
// compare-and-set on the current status. A request whose target equals the
// current status is an idempotent no-op. Transitioning out of blocked clears
// the escalation fields.
//
// Authority rules:
//   - participant roles may never transition to closed;
//   - leaving blocked (to active or closed) requires an override-prefixed
//     reason unless the actor is the current escalation owner.
func (s *ThreadService) UpdateThreadStatus(ctx context.Context, threadID, next string, actor Actor) (*models.ThreadDetail, error) {
	if _, ok := allowedTransitions[next]; !ok {
		return nil, InvalidArgument("invalid thread status %q", next)
	}

	th, err := s.client.Thread.Query().
		Where(thread.IDEQ(threadID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NotFound("thread", threadID)
		}
		return nil, fmt.Errorf("failed to query thread: %w", err)
	}

	current := string(th.Status)
	if current == next {
		// Idempotent no-op; the dispatcher still audits and returns success.
		participants, perr := s.Participants(ctx, threadID)
		if perr != nil {
			return nil, perr
		}
		return threadDetail(th, participants), nil
	}

	if !transitionAllowed(current, next) {
		return nil, E(CodeInvalidThreadTransition, "cannot transition thread from %s to %s", current, next)
	}

	if err := s.checkTransitionAuthority(th, current, next, actor); err != nil {
		return nil, err
	}

	now := time.Now()
	update := s.client.Thread.Update().
		Where(
			thread.IDEQ(threadID),
			thread.StatusEQ(thread.Status(current)),
		).
		SetStatus(thread.Status(next)).
		SetUpdatedAt(now)

	if current == models.ThreadStatusBlocked {
		update.
			ClearEscalationOwnerAgentID().
			ClearEscalationAssignedByAgentID().
			ClearEscalationAssignedAt()
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update thread status: %w", err)
	}
	if n == 0 {
		return nil, Conflict("thread %s was modified concurrently", threadID)
	}

	return s.GetThread(ctx, threadID)
}

// checkTransitionAuthority enforces the role and override-prefix rules for a
// transition that is already known to be a legal edge.
func (s *ThreadService) checkTransitionAuthority(th *ent.Thread, current, next string, actor Actor) error {
	isOwner := th.EscalationOwnerAgentID != nil && *th.EscalationOwnerAgentID == actor.AgentID

	if next == models.ThreadStatusClosed && actor.Role == "participant" {
		return Forbidden("participants cannot close threads")
	}

	leavingBlocked := current == models.ThreadStatusBlocked &&
		(next == models.ThreadStatusActive || next == models.ThreadStatusClosed)
	if leavingBlocked && !isOwner && !models.HasOverridePrefix(actor.Reason) {
		return Forbidden("transition from blocked requires an override-prefixed reason").
			WithDetails(map[string]interface{}{
				"required_prefixes": []string{
					models.ReasonPrefixHumanOverride,
					models.ReasonPrefixCoordinatorOverride,
				},
			})
	}

	return nil
}

// AssignEscalationOwner designates an escalation owner on a blocked thread.
// Fails with CONFLICT if an owner is already set.
func (s *ThreadService) AssignEscalationOwner(ctx context.Context, threadID, ownerAgentID, assignedBy string) (*models.ThreadDetail, error) {
	return s.setEscalationOwner(ctx, threadID, ownerAgentID, assignedBy, false)
}

// ReassignEscalationOwner replaces the current escalation owner. Fails with
// CONFLICT when no owner is set.
func (s *ThreadService) ReassignEscalationOwner(ctx context.Context, threadID, ownerAgentID, assignedBy string) (*models.ThreadDetail, error) {
	return s.setEscalationOwner(ctx, threadID, ownerAgentID, assignedBy, true)
}

func (s *ThreadService) setEscalationOwner(ctx context.Context, threadID, ownerAgentID, assignedBy string, reassign bool) (*models.ThreadDetail, error) {
	th, err := s.client.Thread.Query().
		Where(thread.IDEQ(threadID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NotFound("thread", threadID)
		}
		return nil, fmt.Errorf("failed to query thread: %w", err)
	}

	if th.Status != thread.StatusBlocked {
		return nil, Conflict("escalation owner can only be set while the thread is blocked")
	}

	hasOwner := th.EscalationOwnerAgentID != nil && *th.EscalationOwnerAgentID != ""
	if !reassign && hasOwner {
		return nil, Conflict("escalation owner already assigned: %s", *th.EscalationOwnerAgentID)
	}
	if reassign && !hasOwner {
		return nil, Conflict("no escalation owner assigned; use assign instead")
	}

	isMember, err := s.IsParticipant(ctx, threadID, ownerAgentID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, InvalidArgument("agent %s is not a participant of thread %s", ownerAgentID, threadID)
	}

	now := time.Now()
	n, err := s.client.Thread.Update().
		Where(
			thread.IDEQ(threadID),
			thread.StatusEQ(thread.StatusBlocked),
		).
		SetEscalationOwnerAgentID(ownerAgentID).
		SetEscalationAssignedByAgentID(assignedBy).
		SetEscalationAssignedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set escalation owner: %w", err)
	}
	if n == 0 {
		return nil, Conflict("thread %s was modified concurrently", threadID)
	}

	return s.GetThread(ctx, threadID)
}

// SummarizeThread produces a short textual summary of the most recent
// messages. maxMessages ≤ 0 falls back to 20.
func (s *ThreadService) SummarizeThread(ctx context.Context, threadID string, maxMessages int) (*models.ThreadSummary, error) {
	th, err := s.client.Thread.Query().
		Where(thread.IDEQ(threadID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NotFound("thread", threadID)
		}
		return nil, fmt.Errorf("failed to query thread: %w", err)
	}

	if maxMessages <= 0 {
		maxMessages = 20
	}

	total, err := s.client.Message.Query().
		Where(message.ThreadIDEQ(threadID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	recent, err := s.client.Message.Query().
		Where(message.ThreadIDEQ(threadID)).
		Order(ent.Desc(message.FieldSeq)).
		Limit(maxMessages).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent messages: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Thread %q (%s, %s) with %d message(s).", th.Title, th.Type, th.Status, total)
	// recent is newest-first; render oldest-first.
	for i := len(recent) - 1; i >= 0; i-- {
		m := recent[i]
		body := m.Body
		if len(body) > 120 {
			body = body[:120] + "…"
		}
		fmt.Fprintf(&b, "\n#%d [%s] %s: %s", m.Seq, m.Kind, m.SenderAgentID, body)
	}

	return &models.ThreadSummary{
		ThreadID:     th.ID,
		Status:       string(th.Status),
		MessageCount: total,
		Summary:      b.String(),
	}, nil
}

func transitionAllowed(current, next string) bool {
	for _, allowed := range allowedTransitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}

func threadDetail(th *ent.Thread, participants []string) *models.ThreadDetail {
	detail := &models.ThreadDetail{
		ThreadID:     th.ID,
		WorkspaceID:  th.WorkspaceID,
		Title:        th.Title,
		Type:         string(th.Type),
		Status:       string(th.Status),
		Participants: participants,
		CreatedAt:    th.CreatedAt,
		UpdatedAt:    th.UpdatedAt,
	}
	if th.EscalationOwnerAgentID != nil {
		detail.EscalationOwner = *th.EscalationOwnerAgentID
	}
	if th.EscalationAssignedByAgentID != nil {
		detail.EscalationAssignedBy = *th.EscalationAssignedByAgentID
	}
	if th.EscalationAssignedAt != nil {
		detail.EscalationAssignedAt = th.EscalationAssignedAt
	}
	return detail
}

func dedupePreservingOrder(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
