package api

import (
	echo "github.com/labstack/echo/v5"

	"github.com/agentfabric/bridge/pkg/auth"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/services"
)

// bindRequest decodes the JSON body, mapping decode failures to
// INVALID_ARGUMENT.
func bindRequest(c *echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return services.InvalidArgument("malformed request body")
	}
	return nil
}

// requirePermission enforces the role table for one operation. Denials are
// audited.
func (s *Server) requirePermission(c *echo.Context, operation, permission string) (*auth.Claims, error) {
	claims := claimsFrom(c)
	if claims == nil {
		return nil, services.E(services.CodeUnauthorized, "missing authentication")
	}
	if !auth.Allowed(claims.Role, permission) {
		s.auditRejection(c, claims, operation, "role lacks permission")
		return nil, services.Forbidden("role %s may not perform %s", claims.Role, operation).
			WithDetails(map[string]interface{}{"required_permission": permission})
	}
	return claims, nil
}

// checkAgentHint rejects body-level agent identity hints that contradict the
// token.
func (s *Server) checkAgentHint(c *echo.Context, claims *auth.Claims, operation, hint string) error {
	if hint != "" && hint != claims.AgentID {
		s.auditRejection(c, claims, operation, "agent_id hint does not match token")
		return services.Forbidden("agent_id %q does not match authenticated agent", hint).
			WithDetails(map[string]interface{}{"subcode": "CLAIM_MISMATCH"})
	}
	return nil
}

// checkSessionHint rejects body-level session identity hints that contradict
// the token.
func (s *Server) checkSessionHint(c *echo.Context, claims *auth.Claims, operation, hint string) error {
	if hint != "" && claims.SessionID != "" && hint != claims.SessionID {
		s.auditRejection(c, claims, operation, "session_id hint does not match token")
		return services.Forbidden("session_id %q does not match authenticated session", hint).
			WithDetails(map[string]interface{}{"subcode": "CLAIM_MISMATCH"})
	}
	return nil
}

// loadThreadChecked loads a thread and enforces the workspace boundary.
func (s *Server) loadThreadChecked(c *echo.Context, claims *auth.Claims, operation, threadID string) (*models.ThreadDetail, error) {
	if threadID == "" {
		return nil, services.InvalidArgument("thread_id is required")
	}
	th, err := s.threads.GetThread(c.Request().Context(), threadID)
	if err != nil {
		return nil, err
	}
	if th.WorkspaceID != claims.WorkspaceID {
		s.auditRejection(c, claims, operation, "thread belongs to a different workspace")
		return nil, services.E(services.CodeWorkspaceMismatch,
			"thread %s belongs to a different workspace", threadID)
	}
	return th, nil
}

// auditSuccess records a successful state change.
func (s *Server) auditSuccess(c *echo.Context, claims *auth.Claims, operation, resourceType, resourceID, threadID string, payload map[string]interface{}) {
	s.audit.Record(c.Request().Context(), services.AuditEntry{
		WorkspaceID:  claims.WorkspaceID,
		ActorAgentID: claims.AgentID,
		ActorRole:    claims.Role,
		Operation:    operation,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		ThreadID:     threadID,
		RequestID:    requestIDFrom(c),
		Result:       services.AuditResultSuccess,
		Payload:      payload,
	})
}

// auditRejection records an auth or authority rejection.
func (s *Server) auditRejection(c *echo.Context, claims *auth.Claims, operation, reason string) {
	entry := services.AuditEntry{
		Operation:    operation,
		ResourceType: "request",
		ResourceID:   requestIDFrom(c),
		RequestID:    requestIDFrom(c),
		Result:       services.AuditResultRejected,
		Payload:      map[string]interface{}{"reason": reason},
	}
	if claims != nil {
		entry.WorkspaceID = claims.WorkspaceID
		entry.ActorAgentID = claims.AgentID
		entry.ActorRole = claims.Role
	} else {
		entry.WorkspaceID = s.cfg.WorkspaceID
	}
	s.audit.Record(c.Request().Context(), entry)
}
