// Package api serves the bridge protocol: every operation is a POST under
// /v1/mcp/, plus health, readiness, and metrics endpoints.
package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agentfabric/bridge/pkg/auth"
	"github.com/agentfabric/bridge/pkg/config"
	"github.com/agentfabric/bridge/pkg/database"
	"github.com/agentfabric/bridge/pkg/queue"
	"github.com/agentfabric/bridge/pkg/services"
)

// Server is the bridge HTTP server.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client
	verifier auth.Verifier

	threads  *services.ThreadService
	messages *services.MessageService
	registry *services.RegistryService
	triggers *services.TriggerService
	audit    *services.AuditService

	pool *queue.SupervisorPool

	echo *echo.Echo
	srv  *http.Server
}

// NewServer wires the HTTP server.
func NewServer(cfg *config.Config, dbClient *database.Client, verifier auth.Verifier, threads *services.ThreadService, messages *services.MessageService, registry *services.RegistryService, triggers *services.TriggerService, audit *services.AuditService, pool *queue.SupervisorPool) *Server {
	s := &Server{
		cfg:      cfg,
		dbClient: dbClient,
		verifier: verifier,
		threads:  threads,
		messages: messages,
		registry: registry,
		triggers: triggers,
		audit:    audit,
		pool:     pool,
	}
	s.echo = s.buildEcho()
	return s
}

func (s *Server) buildEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = s.errorHandler

	e.Use(requestID())
	e.Use(securityHeaders())
	e.Use(instrument())

	e.GET("/health", s.healthHandler)
	e.GET("/ready", s.readyHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	mcp := e.Group("/v1/mcp", s.authenticate())
	mcp.POST("/create_thread", s.createThreadHandler)
	mcp.POST("/get_thread", s.getThreadHandler)
	mcp.POST("/update_thread_status", s.updateThreadStatusHandler)
	mcp.POST("/summarize_thread", s.summarizeThreadHandler)
	mcp.POST("/post_message", s.postMessageHandler)
	mcp.POST("/read_messages", s.readMessagesHandler)
	mcp.POST("/ack_read", s.ackReadHandler)
	mcp.POST("/heartbeat_session", s.heartbeatHandler)
	mcp.POST("/trigger_participant", s.triggerParticipantHandler)

	return e
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.srv = &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
