package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/agentfabric/bridge/ent"
	"github.com/agentfabric/bridge/ent/message"
	"github.com/agentfabric/bridge/ent/participantcursor"
	"github.com/agentfabric/bridge/ent/thread"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/google/uuid"
)

const (
	defaultReadLimit = 50
	maxReadLimit     = 200
)

// MessageService persists messages with dense per-thread sequencing and
// maintains participant read cursors.
type MessageService struct {
	client      *ent.Client
	maxAttempts int
}

// NewMessageService creates a new MessageService. maxAttempts bounds the
// sequence assignment retry loop; values < 1 fall back to 3.
func NewMessageService(client *ent.Client, maxAttempts int) *MessageService {
	if maxAttempts < 1 {
		maxAttempts = 3
	}
	return &MessageService{client: client, maxAttempts: maxAttempts}
}

// PostMessage appends a message to a thread, assigning the next dense seq
// under a bounded compare-and-swap loop. A replayed idempotency key with an
// identical payload returns the originally stored message; the same key with
// a different payload fails with IDEMPOTENCY_CONFLICT.
func (s *MessageService) PostMessage(ctx context.Context, req models.PostMessageRequest) (*models.PostMessageResponse, error) {
	if req.ThreadID == "" {
		return nil, InvalidArgument("thread_id is required")
	}
	if req.SchemaVersion < 1 {
		return nil, InvalidArgument("schema_version must be >= 1")
	}
	switch req.Kind {
	case models.MessageKindChat, models.MessageKindEvent, models.MessageKindSystem:
	default:
		return nil, InvalidArgument("invalid message kind %q", req.Kind)
	}
	if req.SenderAgentID == "" {
		return nil, InvalidArgument("sender_agent_id is required")
	}

	th, err := s.client.Thread.Query().
		Where(thread.IDEQ(req.ThreadID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NotFound("thread", req.ThreadID)
		}
		return nil, fmt.Errorf("failed to query thread: %w", err)
	}

	metadata, err := normalizeMetadata(req.Kind, req.Metadata)
	if err != nil {
		return nil, err
	}

	if req.InReplyTo != "" {
		n, err := s.client.Message.Query().
			Where(
				message.IDEQ(req.InReplyTo),
				message.ThreadIDEQ(req.ThreadID),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve in_reply_to: %w", err)
		}
		if n == 0 {
			return nil, InvalidArgument("in_reply_to %q does not reference a message in thread %s", req.InReplyTo, req.ThreadID)
		}
	}

	if req.IdempotencyKey != "" {
		stored, err := s.findByIdempotencyKey(ctx, req.ThreadID, req.SenderAgentID, req.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if stored != nil {
			return s.replayOrConflict(stored, req, metadata, th)
		}
	}

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		latest, err := s.LatestSeq(ctx, req.ThreadID)
		if err != nil {
			return nil, err
		}

		builder := s.client.Message.Create().
			SetID("msg_" + uuid.New().String()).
			SetThreadID(req.ThreadID).
			SetSchemaVersion(req.SchemaVersion).
			SetSeq(latest + 1).
			SetSenderAgentID(req.SenderAgentID).
			SetSenderSessionID(req.SenderSessionID).
			SetKind(message.Kind(req.Kind)).
			SetBody(req.Body).
			SetCreatedAt(time.Now())
		if metadata != nil {
			builder.SetMetadata(metadata)
		}
		if req.InReplyTo != "" {
			builder.SetInReplyTo(req.InReplyTo)
		}
		if req.IdempotencyKey != "" {
			builder.SetIdempotencyKey(req.IdempotencyKey)
		}

		msg, err := builder.Save(ctx)
		if err == nil {
			return &models.PostMessageResponse{
				MessageID:    msg.ID,
				Seq:          msg.Seq,
				ThreadStatus: string(th.Status),
				CreatedAt:    msg.CreatedAt,
			}, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to insert message: %w", err)
		}

		// Lost the seq race, or a concurrent replay with our idempotency key
		// landed first. Re-check the idempotent path before retrying.
		if req.IdempotencyKey != "" {
			stored, lerr := s.findByIdempotencyKey(ctx, req.ThreadID, req.SenderAgentID, req.IdempotencyKey)
			if lerr != nil {
				return nil, lerr
			}
			if stored != nil {
				return s.replayOrConflict(stored, req, metadata, th)
			}
		}
	}

	return nil, Conflict("could not assign message sequence for thread %s after %d attempts", req.ThreadID, s.maxAttempts)
}

// ReadMessages returns messages with seq > since_seq in ascending order.
func (s *MessageService) ReadMessages(ctx context.Context, req models.ReadMessagesRequest) (*models.ReadMessagesResponse, error) {
	if req.SinceSeq < 0 {
		return nil, InvalidArgument("since_seq must be >= 0")
	}

	exists, err := s.client.Thread.Query().
		Where(thread.IDEQ(req.ThreadID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query thread: %w", err)
	}
	if !exists {
		return nil, NotFound("thread", req.ThreadID)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultReadLimit
	}
	if limit > maxReadLimit {
		limit = maxReadLimit
	}

	rows, err := s.client.Message.Query().
		Where(
			message.ThreadIDEQ(req.ThreadID),
			message.SeqGT(req.SinceSeq),
		).
		Order(ent.Asc(message.FieldSeq)).
		Limit(limit + 1).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}

	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}

	resp := &models.ReadMessagesResponse{
		Messages: make([]models.MessageView, len(rows)),
		NextSeq:  req.SinceSeq,
		HasMore:  hasMore,
	}
	for i, row := range rows {
		resp.Messages[i] = messageView(row)
		resp.NextSeq = row.Seq
	}
	return resp, nil
}

// AckRead advances the participant's read cursor. Regressions fail with
// CONFLICT; acknowledging beyond the latest seq fails with INVALID_ARGUMENT.
// Re-acknowledging the current position is an idempotent success.
func (s *MessageService) AckRead(ctx context.Context, req models.AckReadRequest) (*models.AckReadResponse, error) {
	if req.LastReadSeq < 0 {
		return nil, InvalidArgument("last_read_seq must be >= 0")
	}

	exists, err := s.client.Thread.Query().
		Where(thread.IDEQ(req.ThreadID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query thread: %w", err)
	}
	if !exists {
		return nil, NotFound("thread", req.ThreadID)
	}

	latest, err := s.LatestSeq(ctx, req.ThreadID)
	if err != nil {
		return nil, err
	}
	if req.LastReadSeq > latest {
		return nil, InvalidArgument("last_read_seq %d exceeds latest seq %d", req.LastReadSeq, latest)
	}

	now := time.Now()
	cur, err := s.client.ParticipantCursor.Query().
		Where(
			participantcursor.ThreadIDEQ(req.ThreadID),
			participantcursor.AgentIDEQ(req.AgentID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query cursor: %w", err)
	}

	if ent.IsNotFound(err) {
		_, cerr := s.client.ParticipantCursor.Create().
			SetID("cur_" + uuid.New().String()).
			SetThreadID(req.ThreadID).
			SetAgentID(req.AgentID).
			SetLastReadSeq(req.LastReadSeq).
			SetUpdatedAt(now).
			Save(ctx)
		if cerr == nil {
			return &models.AckReadResponse{OK: true, UpdatedAt: now}, nil
		}
		if !ent.IsConstraintError(cerr) {
			return nil, fmt.Errorf("failed to create cursor: %w", cerr)
		}
		// A concurrent ack created the row first; fall through to the
		// compare-and-set update.
		cur, err = s.client.ParticipantCursor.Query().
			Where(
				participantcursor.ThreadIDEQ(req.ThreadID),
				participantcursor.AgentIDEQ(req.AgentID),
			).
			Only(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to re-query cursor: %w", err)
		}
	}

	if cur.LastReadSeq > req.LastReadSeq {
		return nil, Conflict("cursor regression: stored last_read_seq %d > requested %d", cur.LastReadSeq, req.LastReadSeq)
	}

	n, err := s.client.ParticipantCursor.Update().
		Where(
			participantcursor.IDEQ(cur.ID),
			participantcursor.LastReadSeqLTE(req.LastReadSeq),
		).
		SetLastReadSeq(req.LastReadSeq).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update cursor: %w", err)
	}
	if n == 0 {
		return nil, Conflict("cursor for agent %s advanced concurrently", req.AgentID)
	}

	return &models.AckReadResponse{OK: true, UpdatedAt: now}, nil
}

// LatestSeq returns the highest seq in the thread, or 0 when it has no
// messages.
func (s *MessageService) LatestSeq(ctx context.Context, threadID string) (int, error) {
	last, err := s.client.Message.Query().
		Where(message.ThreadIDEQ(threadID)).
		Order(ent.Desc(message.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to query latest seq: %w", err)
	}
	return last.Seq, nil
}

// LatestMessage returns the newest message in the thread, or nil when empty.
func (s *MessageService) LatestMessage(ctx context.Context, threadID string) (*models.MessageView, error) {
	last, err := s.client.Message.Query().
		Where(message.ThreadIDEQ(threadID)).
		Order(ent.Desc(message.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query latest message: %w", err)
	}
	view := messageView(last)
	return &view, nil
}

// Cursor returns the participant's last_read_seq, 0 when no cursor exists.
func (s *MessageService) Cursor(ctx context.Context, threadID, agentID string) (int, error) {
	cur, err := s.client.ParticipantCursor.Query().
		Where(
			participantcursor.ThreadIDEQ(threadID),
			participantcursor.AgentIDEQ(agentID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to query cursor: %w", err)
	}
	return cur.LastReadSeq, nil
}

func (s *MessageService) findByIdempotencyKey(ctx context.Context, threadID, senderAgentID, key string) (*ent.Message, error) {
	msg, err := s.client.Message.Query().
		Where(
			message.ThreadIDEQ(threadID),
			message.SenderAgentIDEQ(senderAgentID),
			message.IdempotencyKeyEQ(key),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed idempotency lookup: %w", err)
	}
	return msg, nil
}

func (s *MessageService) replayOrConflict(stored *ent.Message, req models.PostMessageRequest, metadata map[string]interface{}, th *ent.Thread) (*models.PostMessageResponse, error) {
	if !replayMatches(stored, req, metadata) {
		return nil, E(CodeIdempotencyConflict, "idempotency key %q was used with a different payload", req.IdempotencyKey)
	}
	return &models.PostMessageResponse{
		MessageID:    stored.ID,
		Seq:          stored.Seq,
		ThreadStatus: string(th.Status),
		CreatedAt:    stored.CreatedAt,
	}, nil
}

// replayMatches checks the replayed payload against the stored message:
// schema_version, kind, body, normalized metadata, and in_reply_to must all
// match.
func replayMatches(stored *ent.Message, req models.PostMessageRequest, metadata map[string]interface{}) bool {
	if stored.SchemaVersion != req.SchemaVersion ||
		string(stored.Kind) != req.Kind ||
		stored.Body != req.Body {
		return false
	}
	storedReply := ""
	if stored.InReplyTo != nil {
		storedReply = *stored.InReplyTo
	}
	if storedReply != req.InReplyTo {
		return false
	}
	return jsonEqual(stored.Metadata, metadata)
}

// jsonEqual compares two metadata maps by canonical JSON encoding, so that
// int/float representations of the same number compare equal.
func jsonEqual(a, b map[string]interface{}) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	ab, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return string(ab) == string(bb)
}

// normalizeMetadata applies kind-specific metadata rules. Event messages get
// event_version = 1 injected when absent; a present event_version must be a
// positive integer.
func normalizeMetadata(kind string, metadata map[string]interface{}) (map[string]interface{}, error) {
	if kind != models.MessageKindEvent {
		return metadata, nil
	}

	out := make(map[string]interface{}, len(metadata)+1)
	for k, v := range metadata {
		out[k] = v
	}

	raw, ok := out[models.MetadataEventVersion]
	if !ok {
		out[models.MetadataEventVersion] = float64(1)
		return out, nil
	}

	switch v := raw.(type) {
	case float64:
		if v < 1 || v != float64(int(v)) {
			return nil, InvalidArgument("event_version must be a positive integer")
		}
	case int:
		if v < 1 {
			return nil, InvalidArgument("event_version must be a positive integer")
		}
		out[models.MetadataEventVersion] = float64(v)
	default:
		return nil, InvalidArgument("event_version must be a positive integer")
	}
	return out, nil
}

func messageView(m *ent.Message) models.MessageView {
	view := models.MessageView{
		MessageID:       m.ID,
		ThreadID:        m.ThreadID,
		Seq:             m.Seq,
		SchemaVersion:   m.SchemaVersion,
		SenderAgentID:   m.SenderAgentID,
		SenderSessionID: m.SenderSessionID,
		Kind:            string(m.Kind),
		Body:            m.Body,
		Metadata:        m.Metadata,
	}
	if m.InReplyTo != nil {
		view.InReplyTo = *m.InReplyTo
	}
	view.CreatedAt = m.CreatedAt
	return view
}
