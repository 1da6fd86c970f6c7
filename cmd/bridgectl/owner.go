package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentfabric/bridge/pkg/auth"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/services"
)

var assignOwnerCmd = &cobra.Command{
	Use:   "assign-escalation-owner",
	Short: "Assign an escalation owner to a blocked thread",
	Long: `Designate a participant as the escalation owner of a blocked
thread. Fails if an owner is already set; use reassign-escalation-owner
to replace one.

Examples:
  bridgectl assign-escalation-owner --thread-id th_abc123 --owner-agent-id reviewer-2
`,
	RunE: func(cmd *cobra.Command, args []string) error { return setOwner(false) },
}

var reassignOwnerCmd = &cobra.Command{
	Use:   "reassign-escalation-owner",
	Short: "Replace the escalation owner of a blocked thread",
	Long: `Replace the current escalation owner with another participant.
Fails if no owner is set.

Examples:
  bridgectl reassign-escalation-owner --thread-id th_abc123 --owner-agent-id reviewer-3
`,
	RunE: func(cmd *cobra.Command, args []string) error { return setOwner(true) },
}

var getOwnerCmd = &cobra.Command{
	Use:   "get-escalation-owner",
	Short: "Show the escalation owner of a thread",
	RunE:  runGetOwner,
}

func init() {
	for _, cmd := range []*cobra.Command{assignOwnerCmd, reassignOwnerCmd, getOwnerCmd} {
		cmd.Flags().StringVar(&flagThreadID, "thread-id", "", "Thread id")
		_ = cmd.MarkFlagRequired("thread-id")
	}
	for _, cmd := range []*cobra.Command{assignOwnerCmd, reassignOwnerCmd} {
		cmd.Flags().StringVar(&flagOwnerAgentID, "owner-agent-id", "", "Participant to designate as owner")
		_ = cmd.MarkFlagRequired("owner-agent-id")
	}
}

// ownerResult is the get-escalation-owner output shape.
type ownerResult struct {
	ThreadID   string `json:"thread_id"`
	Owner      string `json:"escalation_owner_agent_id,omitempty"`
	AssignedBy string `json:"escalation_assigned_by_agent_id,omitempty"`
	AssignedAt string `json:"escalation_assigned_at,omitempty"`
}

func setOwner(reassign bool) error {
	return withEnv(func(ctx context.Context, env *cliEnv) error {
		var (
			th  *models.ThreadDetail
			err error
		)
		if reassign {
			th, err = env.threads.ReassignEscalationOwner(ctx, flagThreadID, flagOwnerAgentID, flagActorAgentID)
		} else {
			th, err = env.threads.AssignEscalationOwner(ctx, flagThreadID, flagOwnerAgentID, flagActorAgentID)
		}
		if err != nil {
			return err
		}

		operation := "bridgectl_assign_escalation_owner"
		if reassign {
			operation = "bridgectl_reassign_escalation_owner"
		}
		env.audit.Record(ctx, services.AuditEntry{
			WorkspaceID:  th.WorkspaceID,
			ActorAgentID: flagActorAgentID,
			ActorRole:    auth.RoleCoordinator,
			Operation:    operation,
			ResourceType: "thread",
			ResourceID:   th.ThreadID,
			ThreadID:     th.ThreadID,
			Result:       services.AuditResultSuccess,
			Payload: map[string]interface{}{
				"owner_agent_id": flagOwnerAgentID,
			},
		})

		printResult(th, func() {
			fmt.Printf("Thread %s escalation owner: %s\n", th.ThreadID, th.EscalationOwner)
		})
		return nil
	})
}

func runGetOwner(cmd *cobra.Command, args []string) error {
	return withEnv(func(ctx context.Context, env *cliEnv) error {
		th, err := env.threads.GetThread(ctx, flagThreadID)
		if err != nil {
			return err
		}

		result := &ownerResult{
			ThreadID:   th.ThreadID,
			Owner:      th.EscalationOwner,
			AssignedBy: th.EscalationAssignedBy,
		}
		if th.EscalationAssignedAt != nil {
			result.AssignedAt = th.EscalationAssignedAt.Format("2006-01-02T15:04:05Z07:00")
		}

		printResult(result, func() {
			if th.EscalationOwner == "" {
				fmt.Printf("Thread %s has no escalation owner\n", th.ThreadID)
				return
			}
			fmt.Printf("Thread %s escalation owner: %s (assigned by %s)\n",
				th.ThreadID, th.EscalationOwner, th.EscalationAssignedBy)
		})
		return nil
	})
}
