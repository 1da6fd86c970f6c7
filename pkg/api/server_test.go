package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfabric/bridge/pkg/auth"
	"github.com/agentfabric/bridge/pkg/config"
	"github.com/agentfabric/bridge/pkg/database"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/services"
	"github.com/agentfabric/bridge/test/util"
)

// stubVerifier resolves static tokens to claims without touching a JWKS.
type stubVerifier struct {
	tokens map[string]*auth.Claims
}

func (v *stubVerifier) Verify(_ context.Context, token string) (*auth.Claims, error) {
	claims, ok := v.tokens[token]
	if !ok {
		return nil, services.E(services.CodeUnauthorized, "token rejected")
	}
	return claims, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	dbClient := database.NewClientFromEnt(client, db)

	cfg := &config.Config{
		WorkspaceID:            "ws-test",
		SessionStaleAfter:      12 * time.Hour,
		PostMessageMaxAttempts: 3,
		Trigger:                config.DefaultTriggerConfig(),
	}

	verifier := &stubVerifier{tokens: map[string]*auth.Claims{
		"tok-participant": {AgentID: "agent-a", WorkspaceID: "ws-test", Role: auth.RoleParticipant, SessionID: "sess-a"},
		"tok-peer":        {AgentID: "agent-b", WorkspaceID: "ws-test", Role: auth.RoleParticipant, SessionID: "sess-b"},
		"tok-coordinator": {AgentID: "coordinator-1", WorkspaceID: "ws-test", Role: auth.RoleCoordinator},
		"tok-auditor":     {AgentID: "auditor-1", WorkspaceID: "ws-test", Role: auth.RoleAuditor},
		"tok-other-ws":    {AgentID: "agent-x", WorkspaceID: "ws-other", Role: auth.RoleParticipant},
	}}

	threads := services.NewThreadService(client)
	messages := services.NewMessageService(client, cfg.PostMessageMaxAttempts)
	registry := services.NewRegistryService(client, cfg.SessionStaleAfter)
	triggers := services.NewTriggerService(client)
	audit := services.NewAuditService(client)

	return NewServer(cfg, dbClient, verifier, threads, messages, registry, triggers, audit, nil)
}

type postOpts struct {
	token     string
	requestID string
}

func doPost(t *testing.T, s *Server, path string, body interface{}, opts postOpts) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if opts.token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.token)
	}
	if opts.requestID != "" {
		req.Header.Set(HeaderRequestID, opts.requestID)
	}

	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var envelope errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func createThread(t *testing.T, s *Server, participants ...string) string {
	t.Helper()
	rec := doPost(t, s, "/v1/mcp/create_thread", models.CreateThreadRequest{
		Title:        "incident follow-up",
		Type:         models.ThreadTypeConversation,
		Participants: participants,
	}, postOpts{token: "tok-coordinator"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.CreateThreadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.ThreadID
}

func TestServer_Authentication(t *testing.T) {
	s := newTestServer(t)
	body := models.GetThreadRequest{ThreadID: "th_x"}

	t.Run("missing token is 401", func(t *testing.T) {
		rec := doPost(t, s, "/v1/mcp/get_thread", body, postOpts{})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		envelope := decodeError(t, rec)
		assert.Equal(t, services.CodeUnauthorized, envelope.Error.Code)
		assert.NotEmpty(t, envelope.RequestID)
		assert.False(t, envelope.OccurredAt.IsZero())
	})

	t.Run("rejected token is 401", func(t *testing.T) {
		rec := doPost(t, s, "/v1/mcp/get_thread", body, postOpts{token: "tok-bogus"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token for another workspace is 403", func(t *testing.T) {
		rec := doPost(t, s, "/v1/mcp/get_thread", body, postOpts{token: "tok-other-ws"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		envelope := decodeError(t, rec)
		assert.Equal(t, services.CodeWorkspaceMismatch, envelope.Error.Code)
	})

	t.Run("role without the permission is 403", func(t *testing.T) {
		rec := doPost(t, s, "/v1/mcp/post_message", models.PostMessageRequest{
			ThreadID:      "th_x",
			SchemaVersion: 1,
			Kind:          models.MessageKindChat,
			Body:          "hello",
		}, postOpts{token: "tok-auditor"})
		assert.Equal(t, http.StatusForbidden, rec.Code)

		envelope := decodeError(t, rec)
		assert.Equal(t, services.CodeForbidden, envelope.Error.Code)
		assert.Equal(t, auth.PermMessageWrite, envelope.Error.Details["required_permission"])
	})

	t.Run("request id is echoed back", func(t *testing.T) {
		rec := doPost(t, s, "/v1/mcp/get_thread", body, postOpts{token: "tok-bogus", requestID: "req-echo-1"})
		assert.Equal(t, "req-echo-1", rec.Header().Get(HeaderRequestID))
		envelope := decodeError(t, rec)
		assert.Equal(t, "req-echo-1", envelope.RequestID)
	})
}

func TestServer_MessageFlow(t *testing.T) {
	s := newTestServer(t)
	threadID := createThread(t, s, "agent-a", "agent-b")

	t.Run("post read ack roundtrip", func(t *testing.T) {
		for _, body := range []string{"first", "second"} {
			rec := doPost(t, s, "/v1/mcp/post_message", models.PostMessageRequest{
				ThreadID:      threadID,
				SchemaVersion: 1,
				Kind:          models.MessageKindChat,
				Body:          body,
			}, postOpts{token: "tok-participant"})
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		}

		rec := doPost(t, s, "/v1/mcp/read_messages", models.ReadMessagesRequest{
			ThreadID: threadID,
		}, postOpts{token: "tok-peer"})
		require.Equal(t, http.StatusOK, rec.Code)

		var read models.ReadMessagesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &read))
		require.Len(t, read.Messages, 2)
		assert.Equal(t, "agent-a", read.Messages[0].SenderAgentID)
		assert.Equal(t, 2, read.NextSeq)

		rec = doPost(t, s, "/v1/mcp/ack_read", models.AckReadRequest{
			ThreadID:    threadID,
			LastReadSeq: read.NextSeq,
		}, postOpts{token: "tok-peer"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("sender hint contradicting the token is 403", func(t *testing.T) {
		rec := doPost(t, s, "/v1/mcp/post_message", models.PostMessageRequest{
			ThreadID:      threadID,
			SchemaVersion: 1,
			Kind:          models.MessageKindChat,
			Body:          "spoofed",
			SenderAgentID: "agent-b",
		}, postOpts{token: "tok-participant"})
		assert.Equal(t, http.StatusForbidden, rec.Code)

		envelope := decodeError(t, rec)
		assert.Equal(t, services.CodeForbidden, envelope.Error.Code)
		assert.Equal(t, "CLAIM_MISMATCH", envelope.Error.Details["subcode"])
	})

	t.Run("ack regression maps to 409", func(t *testing.T) {
		rec := doPost(t, s, "/v1/mcp/ack_read", models.AckReadRequest{
			ThreadID:    threadID,
			LastReadSeq: 1,
		}, postOpts{token: "tok-peer"})
		assert.Equal(t, http.StatusConflict, rec.Code)
		envelope := decodeError(t, rec)
		assert.Equal(t, services.CodeConflict, envelope.Error.Code)
	})

	t.Run("unknown thread maps to 404", func(t *testing.T) {
		rec := doPost(t, s, "/v1/mcp/read_messages", models.ReadMessagesRequest{
			ThreadID: "th_missing",
		}, postOpts{token: "tok-participant"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_ThreadStatus(t *testing.T) {
	s := newTestServer(t)
	threadID := createThread(t, s, "agent-a")

	rec := doPost(t, s, "/v1/mcp/update_thread_status", models.UpdateThreadStatusRequest{
		ThreadID: threadID,
		Status:   models.ThreadStatusBlocked,
		Reason:   "waiting on credentials",
	}, postOpts{token: "tok-participant"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.UpdateThreadStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.ThreadStatusBlocked, resp.Status)

	// Leaving blocked without override authority fails.
	rec = doPost(t, s, "/v1/mcp/update_thread_status", models.UpdateThreadStatusRequest{
		ThreadID: threadID,
		Status:   models.ThreadStatusActive,
	}, postOpts{token: "tok-participant"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Re-asserting the current status is an idempotent no-op.
	rec = doPost(t, s, "/v1/mcp/update_thread_status", models.UpdateThreadStatusRequest{
		ThreadID: threadID,
		Status:   models.ThreadStatusBlocked,
		Reason:   "again",
	}, postOpts{token: "tok-coordinator"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doPost(t, s, "/v1/mcp/summarize_thread", models.SummarizeThreadRequest{
		ThreadID: threadID,
	}, postOpts{token: "tok-auditor"})
	require.Equal(t, http.StatusOK, rec.Code)

	var summary models.ThreadSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, models.ThreadStatusBlocked, summary.Status)
}

func TestServer_Heartbeat(t *testing.T) {
	s := newTestServer(t)

	rec := doPost(t, s, "/v1/mcp/heartbeat_session", models.HeartbeatRequest{
		SessionID:      "sess-a",
		Runtime:        "tmux:main.0",
		ManagementMode: models.ManagementModeManaged,
		Status:         models.SessionStatusActive,
	}, postOpts{token: "tok-participant"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.HeartbeatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)

	// A session hint contradicting the token fails.
	rec = doPost(t, s, "/v1/mcp/heartbeat_session", models.HeartbeatRequest{
		SessionID:      "sess-hijack",
		Runtime:        "tmux:main.0",
		ManagementMode: models.ManagementModeManaged,
		Status:         models.SessionStatusActive,
	}, postOpts{token: "tok-peer"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	envelope := decodeError(t, rec)
	assert.Equal(t, "CLAIM_MISMATCH", envelope.Error.Details["subcode"])
}

func TestServer_TriggerParticipant(t *testing.T) {
	s := newTestServer(t)
	threadID := createThread(t, s, "agent-a", "agent-b")

	body := models.TriggerParticipantRequest{
		ThreadID:      threadID,
		TargetAgentID: "agent-b",
		Reason:        "manual_trigger",
		TriggerPrompt: "you have new messages",
	}

	t.Run("non-participant target is 400", func(t *testing.T) {
		bad := body
		bad.TargetAgentID = "outsider"
		rec := doPost(t, s, "/v1/mcp/trigger_participant", bad, postOpts{token: "tok-participant"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no session schedules a fallback spawn", func(t *testing.T) {
		rec := doPost(t, s, "/v1/mcp/trigger_participant", body,
			postOpts{token: "tok-participant", requestID: "req-trigger-1"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp models.TriggerParticipantResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "scheduled", resp.Result)
		assert.Equal(t, models.TriggerActionFallbackRequired, resp.Action)
		assert.Equal(t, models.FallbackActionSpawn, resp.FallbackAction)
		assert.Equal(t, services.BuildTriggerID("req-trigger-1"), resp.TriggerID)

		// Retrying the same request id replays the stored job.
		rec = doPost(t, s, "/v1/mcp/trigger_participant", body,
			postOpts{token: "tok-participant", requestID: "req-trigger-1"})
		require.Equal(t, http.StatusOK, rec.Code)

		var replay models.TriggerParticipantResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &replay))
		assert.Equal(t, "replayed", replay.Result)
		assert.Equal(t, resp.TriggerID, replay.TriggerID)
	})

	t.Run("live managed session routes to the runtime", func(t *testing.T) {
		rec := doPost(t, s, "/v1/mcp/heartbeat_session", models.HeartbeatRequest{
			SessionID:      "sess-b",
			Runtime:        "tmux:main.1",
			ManagementMode: models.ManagementModeManaged,
			Status:         models.SessionStatusActive,
		}, postOpts{token: "tok-peer"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doPost(t, s, "/v1/mcp/trigger_participant", body,
			postOpts{token: "tok-participant", requestID: "req-trigger-2"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp models.TriggerParticipantResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, models.TriggerActionRuntime, resp.Action)
		assert.Equal(t, models.TriggerStatusQueued, resp.JobStatus)
		assert.Equal(t, "sess-b", resp.TargetSessionID)
	})
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var health healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.True(t, health.OK)

	req = httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec = httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer(t)
	rec := doPost(t, s, "/v1/mcp/unknown_op", map[string]string{}, postOpts{token: "tok-participant"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeError(t, rec)
	assert.Equal(t, services.CodeNotFound, envelope.Error.Code)
}
