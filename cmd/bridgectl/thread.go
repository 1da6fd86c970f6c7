package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentfabric/bridge/pkg/auth"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/services"
)

var inspectMaxMessages int

var inspectThreadCmd = &cobra.Command{
	Use:   "inspect-thread",
	Short: "Show a thread's state, participants, and recent activity",
	Long: `Show a thread's status, participants, escalation ownership, and a
summary of its recent messages.

Examples:
  bridgectl inspect-thread --thread-id th_abc123
  bridgectl inspect-thread --thread-id th_abc123 --json
`,
	RunE: runInspectThread,
}

var escalateThreadCmd = &cobra.Command{
	Use:   "escalate-thread",
	Short: "Escalate an active thread to blocked",
	Long: `Transition an active thread to blocked so it can be assigned an
escalation owner.

Examples:
  bridgectl escalate-thread --thread-id th_abc123 --reason "agents stuck on schema dispute"
`,
	RunE: runEscalateThread,
}

var unblockThreadCmd = &cobra.Command{
	Use:   "unblock-thread",
	Short: "Return a blocked thread to active",
	Long: `Transition a blocked thread back to active. Unless the acting
operator is the escalation owner this carries human override authority;
the reason is prefixed with human_override: when it lacks one.

Examples:
  bridgectl unblock-thread --thread-id th_abc123 --reason "dispute settled out of band"
`,
	RunE: runUnblockThread,
}

var overrideCloseThreadCmd = &cobra.Command{
	Use:   "override-close-thread",
	Short: "Force-close a blocked thread",
	Long: `Transition a blocked thread to closed under human override
authority. The reason is prefixed with human_override: when it lacks one.

Examples:
  bridgectl override-close-thread --thread-id th_abc123 --reason "duplicate of th_def456"
`,
	RunE: runOverrideCloseThread,
}

func init() {
	for _, cmd := range []*cobra.Command{inspectThreadCmd, escalateThreadCmd, unblockThreadCmd, overrideCloseThreadCmd} {
		cmd.Flags().StringVar(&flagThreadID, "thread-id", "", "Thread id")
		_ = cmd.MarkFlagRequired("thread-id")
	}
	for _, cmd := range []*cobra.Command{escalateThreadCmd, unblockThreadCmd, overrideCloseThreadCmd} {
		cmd.Flags().StringVar(&flagReason, "reason", "", "Reason recorded with the transition")
	}
	inspectThreadCmd.Flags().IntVar(&inspectMaxMessages, "max-messages", 10, "Messages included in the summary")
	_ = overrideCloseThreadCmd.MarkFlagRequired("reason")
}

// inspectThreadResult is the inspect-thread output shape.
type inspectThreadResult struct {
	Thread  *models.ThreadDetail  `json:"thread"`
	Summary *models.ThreadSummary `json:"summary"`
}

func runInspectThread(cmd *cobra.Command, args []string) error {
	return withEnv(func(ctx context.Context, env *cliEnv) error {
		th, err := env.threads.GetThread(ctx, flagThreadID)
		if err != nil {
			return err
		}
		summary, err := env.threads.SummarizeThread(ctx, flagThreadID, inspectMaxMessages)
		if err != nil {
			return err
		}

		result := &inspectThreadResult{Thread: th, Summary: summary}
		printResult(result, func() {
			fmt.Printf("Thread: %s\n", th.ThreadID)
			fmt.Printf("Workspace: %s\n", th.WorkspaceID)
			fmt.Printf("Title: %s\n", th.Title)
			fmt.Printf("Type: %s\n", th.Type)
			fmt.Printf("Status: %s\n", th.Status)
			fmt.Printf("Participants: %v\n", th.Participants)
			if th.EscalationOwner != "" {
				fmt.Printf("Escalation owner: %s (assigned by %s)\n",
					th.EscalationOwner, th.EscalationAssignedBy)
			}
			fmt.Printf("Messages: %d\n\n%s\n", summary.MessageCount, summary.Summary)
		})
		return nil
	})
}

func runEscalateThread(cmd *cobra.Command, args []string) error {
	return transitionThread(models.ThreadStatusBlocked, flagReason)
}

func runUnblockThread(cmd *cobra.Command, args []string) error {
	return transitionThread(models.ThreadStatusActive, withOverridePrefix(flagReason))
}

func runOverrideCloseThread(cmd *cobra.Command, args []string) error {
	return transitionThread(models.ThreadStatusClosed, withOverridePrefix(flagReason))
}

// withOverridePrefix stamps human override authority onto a plain reason.
func withOverridePrefix(reason string) string {
	if models.HasOverridePrefix(reason) {
		return reason
	}
	return models.ReasonPrefixHumanOverride + " " + reason
}

func transitionThread(next, reason string) error {
	return withEnv(func(ctx context.Context, env *cliEnv) error {
		th, err := env.threads.UpdateThreadStatus(ctx, flagThreadID, next, operatorActor(reason))
		if err != nil {
			return err
		}

		env.audit.Record(ctx, services.AuditEntry{
			WorkspaceID:  th.WorkspaceID,
			ActorAgentID: flagActorAgentID,
			ActorRole:    auth.RoleCoordinator,
			Operation:    "bridgectl_update_thread_status",
			ResourceType: "thread",
			ResourceID:   th.ThreadID,
			ThreadID:     th.ThreadID,
			Result:       services.AuditResultSuccess,
			Payload: map[string]interface{}{
				"status": th.Status,
				"reason": reason,
			},
		})

		printResult(th, func() {
			fmt.Printf("Thread %s is now %s\n", th.ThreadID, th.Status)
		})
		return nil
	})
}
