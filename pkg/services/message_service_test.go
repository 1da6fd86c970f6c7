package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postChat(t *testing.T, svc *MessageService, threadID, sender, body string) *models.PostMessageResponse {
	t.Helper()
	resp, err := svc.PostMessage(context.Background(), models.PostMessageRequest{
		ThreadID:      threadID,
		SchemaVersion: 1,
		Kind:          models.MessageKindChat,
		Body:          body,
		SenderAgentID: sender,
	})
	require.NoError(t, err)
	return resp
}

func TestMessageService_PostMessage(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	threads := NewThreadService(client)
	svc := NewMessageService(client, 3)
	ctx := context.Background()

	t.Run("assigns dense monotone seq", func(t *testing.T) {
		th := newTestThread(t, threads, "agent-a", "agent-b")
		for i := 1; i <= 4; i++ {
			resp := postChat(t, svc, th.ThreadID, "agent-a", fmt.Sprintf("m%d", i))
			assert.Equal(t, i, resp.Seq)
		}
	})

	t.Run("concurrent posters never skip or duplicate a seq", func(t *testing.T) {
		th := newTestThread(t, threads, "agent-a", "agent-b")
		// More retries than the default so no goroutine exhausts the CAS loop.
		concurrent := NewMessageService(client, 20)

		const posters = 8
		var wg sync.WaitGroup
		seqs := make(chan int, posters)
		for i := 0; i < posters; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				resp, err := concurrent.PostMessage(ctx, models.PostMessageRequest{
					ThreadID:      th.ThreadID,
					SchemaVersion: 1,
					Kind:          models.MessageKindChat,
					Body:          fmt.Sprintf("concurrent %d", i),
					SenderAgentID: "agent-a",
				})
				if err == nil {
					seqs <- resp.Seq
				}
			}(i)
		}
		wg.Wait()
		close(seqs)

		seen := make(map[int]bool)
		count := 0
		for seq := range seqs {
			assert.False(t, seen[seq], "duplicate seq %d", seq)
			seen[seq] = true
			count++
		}
		for i := 1; i <= count; i++ {
			assert.True(t, seen[i], "gap at seq %d", i)
		}
	})

	t.Run("idempotent replay returns the stored message", func(t *testing.T) {
		th := newTestThread(t, threads, "agent-a")
		req := models.PostMessageRequest{
			ThreadID:       th.ThreadID,
			SchemaVersion:  1,
			Kind:           models.MessageKindChat,
			Body:           "exactly once",
			SenderAgentID:  "agent-a",
			IdempotencyKey: "key-1",
		}
		first, err := svc.PostMessage(ctx, req)
		require.NoError(t, err)

		second, err := svc.PostMessage(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, first.MessageID, second.MessageID)
		assert.Equal(t, first.Seq, second.Seq)
	})

	t.Run("same key with different payload conflicts", func(t *testing.T) {
		th := newTestThread(t, threads, "agent-a")
		req := models.PostMessageRequest{
			ThreadID:       th.ThreadID,
			SchemaVersion:  1,
			Kind:           models.MessageKindChat,
			Body:           "original",
			SenderAgentID:  "agent-a",
			IdempotencyKey: "key-2",
		}
		_, err := svc.PostMessage(ctx, req)
		require.NoError(t, err)

		req.Body = "tampered"
		_, err = svc.PostMessage(ctx, req)
		assert.True(t, IsCode(err, CodeIdempotencyConflict), "got %v", err)
	})

	t.Run("same key by a different sender is independent", func(t *testing.T) {
		th := newTestThread(t, threads, "agent-a", "agent-b")
		for _, sender := range []string{"agent-a", "agent-b"} {
			_, err := svc.PostMessage(ctx, models.PostMessageRequest{
				ThreadID:       th.ThreadID,
				SchemaVersion:  1,
				Kind:           models.MessageKindChat,
				Body:           "from " + sender,
				SenderAgentID:  sender,
				IdempotencyKey: "shared-key",
			})
			require.NoError(t, err)
		}
	})

	t.Run("in_reply_to must reference the same thread", func(t *testing.T) {
		th1 := newTestThread(t, threads, "agent-a")
		th2 := newTestThread(t, threads, "agent-a")
		first := postChat(t, svc, th1.ThreadID, "agent-a", "root")

		_, err := svc.PostMessage(ctx, models.PostMessageRequest{
			ThreadID:      th2.ThreadID,
			SchemaVersion: 1,
			Kind:          models.MessageKindChat,
			Body:          "cross-thread reply",
			SenderAgentID: "agent-a",
			InReplyTo:     first.MessageID,
		})
		assert.True(t, IsCode(err, CodeInvalidArgument))
	})

	t.Run("event messages get event_version injected", func(t *testing.T) {
		th := newTestThread(t, threads, "agent-a")
		resp, err := svc.PostMessage(ctx, models.PostMessageRequest{
			ThreadID:      th.ThreadID,
			SchemaVersion: 1,
			Kind:          models.MessageKindEvent,
			Body:          "done",
			Metadata:      map[string]interface{}{models.MetadataEventType: "trigger.completed"},
			SenderAgentID: "agent-a",
		})
		require.NoError(t, err)

		read, err := svc.ReadMessages(ctx, models.ReadMessagesRequest{ThreadID: th.ThreadID})
		require.NoError(t, err)
		require.Len(t, read.Messages, 1)
		assert.Equal(t, resp.MessageID, read.Messages[0].MessageID)
		assert.EqualValues(t, 1, read.Messages[0].Metadata[models.MetadataEventVersion])
	})

	t.Run("rejects bad event_version", func(t *testing.T) {
		th := newTestThread(t, threads, "agent-a")
		_, err := svc.PostMessage(ctx, models.PostMessageRequest{
			ThreadID:      th.ThreadID,
			SchemaVersion: 1,
			Kind:          models.MessageKindEvent,
			Body:          "bad",
			Metadata:      map[string]interface{}{models.MetadataEventVersion: 1.5},
			SenderAgentID: "agent-a",
		})
		assert.True(t, IsCode(err, CodeInvalidArgument))
	})

	t.Run("unknown thread is NOT_FOUND", func(t *testing.T) {
		_, err := svc.PostMessage(ctx, models.PostMessageRequest{
			ThreadID:      "th_missing",
			SchemaVersion: 1,
			Kind:          models.MessageKindChat,
			Body:          "hello",
			SenderAgentID: "agent-a",
		})
		assert.True(t, IsCode(err, CodeNotFound))
	})
}

func TestMessageService_ReadMessages(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	threads := NewThreadService(client)
	svc := NewMessageService(client, 3)
	ctx := context.Background()

	th := newTestThread(t, threads, "agent-a", "agent-b")
	for i := 1; i <= 7; i++ {
		postChat(t, svc, th.ThreadID, "agent-a", fmt.Sprintf("m%d", i))
	}

	t.Run("pages ascending from since_seq", func(t *testing.T) {
		resp, err := svc.ReadMessages(ctx, models.ReadMessagesRequest{
			ThreadID: th.ThreadID,
			SinceSeq: 2,
			Limit:    3,
		})
		require.NoError(t, err)
		require.Len(t, resp.Messages, 3)
		assert.Equal(t, 3, resp.Messages[0].Seq)
		assert.Equal(t, 5, resp.Messages[2].Seq)
		assert.Equal(t, 5, resp.NextSeq)
		assert.True(t, resp.HasMore)

		resp, err = svc.ReadMessages(ctx, models.ReadMessagesRequest{
			ThreadID: th.ThreadID,
			SinceSeq: resp.NextSeq,
			Limit:    3,
		})
		require.NoError(t, err)
		require.Len(t, resp.Messages, 2)
		assert.Equal(t, 7, resp.NextSeq)
		assert.False(t, resp.HasMore)
	})

	t.Run("empty page keeps next_seq at since_seq", func(t *testing.T) {
		resp, err := svc.ReadMessages(ctx, models.ReadMessagesRequest{
			ThreadID: th.ThreadID,
			SinceSeq: 7,
		})
		require.NoError(t, err)
		assert.Empty(t, resp.Messages)
		assert.Equal(t, 7, resp.NextSeq)
		assert.False(t, resp.HasMore)
	})
}

func TestMessageService_AckRead(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	threads := NewThreadService(client)
	svc := NewMessageService(client, 3)
	ctx := context.Background()

	th := newTestThread(t, threads, "agent-a", "agent-b")
	for i := 1; i <= 3; i++ {
		postChat(t, svc, th.ThreadID, "agent-a", fmt.Sprintf("m%d", i))
	}

	ack := func(seq int) error {
		_, err := svc.AckRead(ctx, models.AckReadRequest{
			ThreadID:    th.ThreadID,
			LastReadSeq: seq,
			AgentID:     "agent-b",
		})
		return err
	}

	t.Run("advances and re-acks idempotently", func(t *testing.T) {
		require.NoError(t, ack(2))
		cur, err := svc.Cursor(ctx, th.ThreadID, "agent-b")
		require.NoError(t, err)
		assert.Equal(t, 2, cur)

		require.NoError(t, ack(2))
		require.NoError(t, ack(3))
	})

	t.Run("regression is CONFLICT", func(t *testing.T) {
		err := ack(1)
		assert.True(t, IsCode(err, CodeConflict), "got %v", err)
	})

	t.Run("beyond latest is INVALID_ARGUMENT", func(t *testing.T) {
		err := ack(99)
		assert.True(t, IsCode(err, CodeInvalidArgument))
	})
}
