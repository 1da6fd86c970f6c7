package runtime

import (
	"context"
	"fmt"

	ptyhostv1 "github.com/agentfabric/bridge/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCPTYClient implements PTYAdapter and Launcher by calling the host-local
// PTY daemon over gRPC.
type GRPCPTYClient struct {
	conn   *grpc.ClientConn
	client ptyhostv1.PTYHostServiceClient
}

// NewGRPCPTYClient creates a client for the PTY host daemon at addr.
func NewGRPCPTYClient(addr string) (*GRPCPTYClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to pty host at %s: %w", addr, err)
	}
	return &GRPCPTYClient{
		conn:   conn,
		client: ptyhostv1.NewPTYHostServiceClient(conn),
	}, nil
}

// Deliver injects the payload into a live runtime.
func (c *GRPCPTYClient) Deliver(ctx context.Context, in DeliverInput) (DeliverResult, error) {
	resp, err := c.client.Deliver(ctx, &ptyhostv1.DeliverRequest{
		Runtime:       in.Runtime,
		TriggerId:     in.TriggerID,
		ThreadId:      in.ThreadID,
		Reason:        in.Reason,
		Payload:       in.Payload,
		ForceOverride: in.ForceOverride,
	})
	if err != nil {
		return DeliverResult{}, fmt.Errorf("pty host Deliver call failed: %w", err)
	}
	return DeliverResult{
		Delivered: resp.Delivered,
		ErrorCode: resp.ErrorCode,
		Details:   resp.Details,
	}, nil
}

// Resume re-attaches a resumable session.
func (c *GRPCPTYClient) Resume(ctx context.Context, workspaceID, agentID, sessionID, runtime string) (bool, string, error) {
	resp, err := c.client.ResumeSession(ctx, &ptyhostv1.ResumeSessionRequest{
		WorkspaceId: workspaceID,
		AgentId:     agentID,
		SessionId:   sessionID,
		Runtime:     runtime,
	})
	if err != nil {
		return false, "", fmt.Errorf("pty host ResumeSession call failed: %w", err)
	}
	return resp.Ok, resp.ErrorCode, nil
}

// Spawn launches a fresh runtime with the given prompt.
func (c *GRPCPTYClient) Spawn(ctx context.Context, workspaceID, agentID, prompt string, detached bool) (SpawnResult, error) {
	resp, err := c.client.SpawnSession(ctx, &ptyhostv1.SpawnSessionRequest{
		WorkspaceId: workspaceID,
		AgentId:     agentID,
		Prompt:      prompt,
		Detached:    detached,
	})
	if err != nil {
		return SpawnResult{}, fmt.Errorf("pty host SpawnSession call failed: %w", err)
	}
	return SpawnResult{
		OK:        resp.Ok,
		PID:       int(resp.Pid),
		ExitCode:  int(resp.ExitCode),
		ErrorCode: resp.ErrorCode,
	}, nil
}

// Close releases the gRPC connection.
func (c *GRPCPTYClient) Close() error {
	return c.conn.Close()
}
