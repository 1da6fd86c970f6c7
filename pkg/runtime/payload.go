// Package runtime delivers trigger payloads into live terminal runtimes via
// the PTY host daemon, and launches fallback sessions when no usable runtime
// exists.
package runtime

import (
	"fmt"
	"strings"
	"unicode"
)

// DefaultMaxPayloadBytes caps the framed payload size.
const DefaultMaxPayloadBytes = 8 * 1024

// Payload encoding error codes.
const (
	ErrCodePayloadEmpty    = "PAYLOAD_EMPTY"
	ErrCodePayloadTooLarge = "PAYLOAD_TOO_LARGE"
)

// PayloadError is a non-retryable payload encoding failure.
type PayloadError struct {
	Code    string
	Message string
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// EncodePayload sanitizes the prompt and wraps it in the trigger frame the
// runtime-side hooks recognize. Non-printable control characters are escaped
// so a hostile prompt cannot inject terminal control sequences.
func EncodePayload(triggerID, threadID, reason, prompt string, maxBytes int) (string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxPayloadBytes
	}

	sanitized := sanitizePrompt(prompt)
	if strings.TrimSpace(sanitized) == "" {
		return "", &PayloadError{Code: ErrCodePayloadEmpty, Message: "prompt is empty after sanitization"}
	}

	framed := fmt.Sprintf("[BRIDGE_TRIGGER id=%s thread=%s reason=%s]\n%s\n[/BRIDGE_TRIGGER]",
		triggerID, threadID, reason, sanitized)
	if len(framed) > maxBytes {
		return "", &PayloadError{
			Code:    ErrCodePayloadTooLarge,
			Message: fmt.Sprintf("framed payload is %d bytes, max %d", len(framed), maxBytes),
		}
	}
	return framed, nil
}

func sanitizePrompt(prompt string) string {
	var b strings.Builder
	b.Grow(len(prompt))
	for _, r := range prompt {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case unicode.IsControl(r):
			fmt.Fprintf(&b, "\\x%02x", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
