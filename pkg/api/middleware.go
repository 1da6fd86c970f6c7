package api

import (
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/google/uuid"

	"github.com/agentfabric/bridge/pkg/auth"
	"github.com/agentfabric/bridge/pkg/metrics"
	"github.com/agentfabric/bridge/pkg/services"
)

// Context keys.
const (
	ctxKeyRequestID = "bridge_request_id"
	ctxKeyClaims    = "bridge_claims"
)

// HeaderRequestID is the request correlation header; it doubles as the
// idempotency seed for trigger_participant.
const HeaderRequestID = "X-Request-Id"

// requestID echoes the caller's request id or generates one.
func requestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			id := c.Request().Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.New().String()
			}
			c.Set(ctxKeyRequestID, id)
			c.Response().Header().Set(HeaderRequestID, id)
			return next(c)
		}
	}
}

// securityHeaders sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// instrument records per-operation request counts and latency.
func instrument() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			op := operationFromPath(c.Request().URL.Path)
			if op == "" {
				return next(c)
			}
			metrics.RequestsTotal.WithLabelValues(op).Inc()
			start := time.Now()
			err := next(c)
			metrics.RequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// authenticate resolves the bearer token to claims and enforces the
// workspace boundary against the instance's workspace.
func (s *Server) authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return services.E(services.CodeUnauthorized, "missing bearer token")
			}

			claims, err := s.verifier.Verify(c.Request().Context(), token)
			if err != nil {
				return services.E(services.CodeUnauthorized, "invalid token").
					WithDetails(map[string]interface{}{"reason": err.Error()})
			}

			if claims.WorkspaceID != s.cfg.WorkspaceID {
				s.auditRejection(c, claims, operationFromPath(c.Request().URL.Path), "workspace mismatch")
				return services.E(services.CodeWorkspaceMismatch,
					"token workspace %s does not match this instance", claims.WorkspaceID)
			}

			c.Set(ctxKeyClaims, claims)
			return next(c)
		}
	}
}

func requestIDFrom(c *echo.Context) string {
	if id, ok := c.Get(ctxKeyRequestID).(string); ok {
		return id
	}
	return ""
}

func claimsFrom(c *echo.Context) *auth.Claims {
	if claims, ok := c.Get(ctxKeyClaims).(*auth.Claims); ok {
		return claims
	}
	return nil
}

// operationFromPath maps /v1/mcp/<op> to <op>; other paths yield "".
func operationFromPath(path string) string {
	const prefix = "/v1/mcp/"
	if !strings.HasPrefix(path, prefix) {
		return ""
	}
	op := strings.TrimPrefix(path, prefix)
	if strings.Contains(op, "/") {
		return ""
	}
	return op
}
