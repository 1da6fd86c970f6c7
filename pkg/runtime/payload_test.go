package runtime

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePayload(t *testing.T) {
	t.Run("frames the prompt", func(t *testing.T) {
		framed, err := EncodePayload("trg_abc", "th_1", "manual_trigger", "check thread th_1", 0)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(framed, "[BRIDGE_TRIGGER id=trg_abc thread=th_1 reason=manual_trigger]\n"))
		assert.True(t, strings.HasSuffix(framed, "\n[/BRIDGE_TRIGGER]"))
		assert.Contains(t, framed, "check thread th_1")
	})

	t.Run("escapes control characters but keeps newline and tab", func(t *testing.T) {
		framed, err := EncodePayload("trg_abc", "th_1", "manual_trigger", "line1\nline2\tcol\x1b[31mred", 0)
		require.NoError(t, err)
		assert.Contains(t, framed, "line1\nline2\tcol")
		assert.Contains(t, framed, `\x1b`)
		assert.NotContains(t, framed, "\x1b")
	})

	t.Run("empty prompt is PAYLOAD_EMPTY", func(t *testing.T) {
		for _, prompt := range []string{"", "   ", "\n\t\n"} {
			_, err := EncodePayload("trg_abc", "th_1", "manual_trigger", prompt, 0)
			var perr *PayloadError
			require.ErrorAs(t, err, &perr, "prompt %q", prompt)
			assert.Equal(t, ErrCodePayloadEmpty, perr.Code)
		}
	})

	t.Run("oversized payload is PAYLOAD_TOO_LARGE", func(t *testing.T) {
		_, err := EncodePayload("trg_abc", "th_1", "manual_trigger", strings.Repeat("a", 200), 128)
		var perr *PayloadError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, ErrCodePayloadTooLarge, perr.Code)
	})
}
