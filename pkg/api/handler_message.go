package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/agentfabric/bridge/pkg/auth"
	"github.com/agentfabric/bridge/pkg/models"
)

// postMessageHandler handles POST /v1/mcp/post_message.
func (s *Server) postMessageHandler(c *echo.Context) error {
	const op = "post_message"
	claims, err := s.requirePermission(c, op, auth.PermMessageWrite)
	if err != nil {
		return err
	}

	var req models.PostMessageRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}
	if err := s.checkAgentHint(c, claims, op, req.SenderAgentID); err != nil {
		return err
	}
	if err := s.checkSessionHint(c, claims, op, req.SenderSessionID); err != nil {
		return err
	}
	if _, err := s.loadThreadChecked(c, claims, op, req.ThreadID); err != nil {
		return err
	}

	req.SenderAgentID = claims.AgentID
	if req.SenderSessionID == "" {
		req.SenderSessionID = claims.SessionID
	}

	resp, err := s.messages.PostMessage(c.Request().Context(), req)
	if err != nil {
		return err
	}

	s.auditSuccess(c, claims, op, "message", resp.MessageID, req.ThreadID, map[string]interface{}{
		"seq":  resp.Seq,
		"kind": req.Kind,
	})
	return c.JSON(http.StatusOK, resp)
}

// readMessagesHandler handles POST /v1/mcp/read_messages.
func (s *Server) readMessagesHandler(c *echo.Context) error {
	const op = "read_messages"
	claims, err := s.requirePermission(c, op, auth.PermMessageRead)
	if err != nil {
		return err
	}

	var req models.ReadMessagesRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}
	if err := s.checkAgentHint(c, claims, op, req.AgentID); err != nil {
		return err
	}
	if _, err := s.loadThreadChecked(c, claims, op, req.ThreadID); err != nil {
		return err
	}

	resp, err := s.messages.ReadMessages(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// ackReadHandler handles POST /v1/mcp/ack_read.
func (s *Server) ackReadHandler(c *echo.Context) error {
	const op = "ack_read"
	claims, err := s.requirePermission(c, op, auth.PermMessageWrite)
	if err != nil {
		return err
	}

	var req models.AckReadRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}
	if err := s.checkAgentHint(c, claims, op, req.AgentID); err != nil {
		return err
	}
	if _, err := s.loadThreadChecked(c, claims, op, req.ThreadID); err != nil {
		return err
	}
	req.AgentID = claims.AgentID

	resp, err := s.messages.AckRead(c.Request().Context(), req)
	if err != nil {
		return err
	}

	s.auditSuccess(c, claims, op, "cursor", req.ThreadID+"/"+claims.AgentID, req.ThreadID, map[string]interface{}{
		"last_read_seq": req.LastReadSeq,
	})
	return c.JSON(http.StatusOK, resp)
}
