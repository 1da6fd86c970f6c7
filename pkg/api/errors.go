package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/agentfabric/bridge/pkg/metrics"
	"github.com/agentfabric/bridge/pkg/services"
)

// errorBody is the wire shape of a failed operation.
type errorBody struct {
	Code    services.Code          `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// errorEnvelope wraps every error response.
type errorEnvelope struct {
	Error      errorBody `json:"error"`
	RequestID  string    `json:"request_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// httpStatusFor maps wire codes to HTTP statuses.
func httpStatusFor(code services.Code) int {
	switch code {
	case services.CodeUnauthorized:
		return http.StatusUnauthorized
	case services.CodeForbidden, services.CodeWorkspaceMismatch:
		return http.StatusForbidden
	case services.CodeNotFound:
		return http.StatusNotFound
	case services.CodeInvalidArgument:
		return http.StatusBadRequest
	case services.CodeInvalidThreadTransition, services.CodeConflict, services.CodeIdempotencyConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorHandler renders every handler error as the error envelope.
func (s *Server) errorHandler(c *echo.Context, err error) {
	if r, _ := echo.UnwrapResponse(c.Response()); r != nil && r.Committed {
		return
	}

	code := services.CodeOf(err)
	message := "internal server error"
	var details map[string]interface{}

	var de *services.Error
	if errors.As(err, &de) {
		message = de.Message
		details = de.Details
	} else if he, ok := err.(*echo.HTTPError); ok {
		// Router-level errors (404s, method mismatches, body too large).
		code = services.CodeNotFound
		if he.Code == http.StatusMethodNotAllowed || he.Code == http.StatusBadRequest {
			code = services.CodeInvalidArgument
		}
		message = http.StatusText(he.Code)
	} else {
		slog.Error("Unexpected handler error",
			"path", c.Request().URL.Path,
			"error", err)
	}

	if op := operationFromPath(c.Request().URL.Path); op != "" {
		metrics.RequestErrorsTotal.WithLabelValues(op, string(code)).Inc()
	}

	envelope := &errorEnvelope{
		Error: errorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		RequestID:  requestIDFrom(c),
		OccurredAt: time.Now().UTC(),
	}
	if jsonErr := c.JSON(httpStatusFor(code), envelope); jsonErr != nil {
		slog.Error("Failed to write error response", "error", jsonErr)
	}
}
