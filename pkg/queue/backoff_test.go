package queue

import (
	"errors"
	"testing"
	"time"

	"github.com/agentfabric/bridge/pkg/services"
	"github.com/stretchr/testify/assert"
)

func TestRetryBackoff(t *testing.T) {
	base := 30 * time.Second
	max := 10 * time.Minute

	tests := []struct {
		attempts int
		want     time.Duration
	}{
		{attempts: 0, want: 30 * time.Second},
		{attempts: 1, want: 30 * time.Second},
		{attempts: 2, want: time.Minute},
		{attempts: 3, want: 2 * time.Minute},
		{attempts: 5, want: 8 * time.Minute},
		{attempts: 6, want: 10 * time.Minute},
		{attempts: 50, want: 10 * time.Minute},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, RetryBackoff(base, max, tc.attempts), "attempts=%d", tc.attempts)
	}
}

func TestDedupeCandidates(t *testing.T) {
	in := []candidate{
		{threadID: "th_1", agentID: "agent-a", latestSeq: 3, unreadCount: 1},
		{threadID: "th_1", agentID: "agent-a", latestSeq: 7, unreadCount: 5},
		{threadID: "th_1", agentID: "agent-b", latestSeq: 7, unreadCount: 7},
		{threadID: "th_2", agentID: "agent-a", latestSeq: 2, unreadCount: 2},
		{threadID: "th_1", agentID: "agent-a", latestSeq: 5, unreadCount: 3},
	}

	out := dedupeCandidates(in)
	assert.Len(t, out, 3)
	assert.Equal(t, candidate{threadID: "th_1", agentID: "agent-a", latestSeq: 7, unreadCount: 5}, out[0])
	assert.Equal(t, "agent-b", out[1].agentID)
	assert.Equal(t, "th_2", out[2].threadID)
}

func TestRetryableCallbackError(t *testing.T) {
	assert.True(t, retryableCallbackError(services.Conflict("seq race")))
	assert.True(t, retryableCallbackError(errors.New("database unreachable")))
	assert.False(t, retryableCallbackError(services.InvalidArgument("bad body")))
	assert.False(t, retryableCallbackError(services.NotFound("thread", "th_1")))
}
