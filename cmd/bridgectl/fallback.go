package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentfabric/bridge/ent"
	"github.com/agentfabric/bridge/ent/fallbackrun"
	"github.com/agentfabric/bridge/ent/triggerjob"
	"github.com/agentfabric/bridge/pkg/auth"
	"github.com/agentfabric/bridge/pkg/models"
	"github.com/agentfabric/bridge/pkg/queue"
	"github.com/agentfabric/bridge/pkg/services"
)

// Error code recorded on runs terminated by an operator.
const operatorTerminatedCode = "OPERATOR_TERMINATED_FALLBACK"

var (
	flagTriggerID      string
	flagFallbackStatus string
)

var fallbackListCmd = &cobra.Command{
	Use:   "fallback-list",
	Short: "List fallback runs",
	Long: `List detached fallback runs with their pid, status, and deadline.

Examples:
  bridgectl fallback-list
  bridgectl fallback-list --status running
  bridgectl fallback-list --thread-id th_abc123 --json
`,
	RunE: runFallbackList,
}

var fallbackKillCmd = &cobra.Command{
	Use:   "fallback-kill",
	Short: "Terminate running fallback processes",
	Long: `Terminate running fallback runs selected by trigger id or thread
id: SIGTERM, a grace wait, then SIGKILL. The corresponding trigger jobs
roll forward to callback_pending so completion callbacks still fire.

Examples:
  bridgectl fallback-kill --trigger-id trg_abc123
  bridgectl fallback-kill --thread-id th_abc123
`,
	RunE: runFallbackKill,
}

func init() {
	fallbackListCmd.Flags().StringVar(&flagThreadID, "thread-id", "", "Only runs belonging to this thread")
	fallbackListCmd.Flags().StringVar(&flagFallbackStatus, "status", "", "Only runs with this status")

	fallbackKillCmd.Flags().StringVar(&flagTriggerID, "trigger-id", "", "Run to terminate")
	fallbackKillCmd.Flags().StringVar(&flagThreadID, "thread-id", "", "Terminate all running runs of this thread")
}

func runFallbackList(cmd *cobra.Command, args []string) error {
	return withEnv(func(ctx context.Context, env *cliEnv) error {
		runs, err := selectRuns(ctx, env, "", flagThreadID, flagFallbackStatus)
		if err != nil {
			return err
		}

		views := make([]models.FallbackRunView, 0, len(runs))
		for _, run := range runs {
			view := models.FallbackRunView{
				TriggerID:  run.ID,
				PID:        run.Pid,
				LaunchMode: string(run.LaunchMode),
				Status:     string(run.Status),
				StartedAt:  run.StartedAt,
				DeadlineAt: run.DeadlineAt,
				EndedAt:    run.EndedAt,
			}
			if run.ErrorCode != nil {
				view.ErrorCode = *run.ErrorCode
			}
			// Run rows are keyed by trigger id; the thread comes from the job.
			if job, err := env.triggers.Get(ctx, run.ID); err == nil {
				view.ThreadID = job.ThreadID
			}
			views = append(views, view)
		}

		printResult(views, func() {
			if len(views) == 0 {
				fmt.Println("No fallback runs found.")
				return
			}
			fmt.Printf("%-38s %-22s %-8s %-10s %-10s %s\n",
				"TRIGGER ID", "THREAD", "PID", "MODE", "STATUS", "DEADLINE")
			for _, v := range views {
				fmt.Printf("%-38s %-22s %-8d %-10s %-10s %s\n",
					v.TriggerID, v.ThreadID, v.PID, v.LaunchMode, v.Status,
					v.DeadlineAt.Format("2006-01-02 15:04:05"))
			}
			fmt.Printf("\n%d run(s)\n", len(views))
		})
		return nil
	})
}

func runFallbackKill(cmd *cobra.Command, args []string) error {
	if flagTriggerID == "" && flagThreadID == "" {
		return services.InvalidArgument("one of --trigger-id or --thread-id is required")
	}
	return withEnv(func(ctx context.Context, env *cliEnv) error {
		runs, err := selectRuns(ctx, env, flagTriggerID, flagThreadID, string(fallbackrun.StatusRunning))
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			return services.NotFound("running fallback run", flagTriggerID+flagThreadID)
		}

		killed := make([]string, 0, len(runs))
		for _, run := range runs {
			reconciler := queue.NewFallbackReconciler(env.db.Client, run.WorkspaceID, loadFallbackConfig(), env.triggers)
			if err := reconciler.Terminate(ctx, run, operatorTerminatedCode); err != nil {
				return err
			}
			killed = append(killed, run.ID)

			env.audit.Record(ctx, services.AuditEntry{
				WorkspaceID:  run.WorkspaceID,
				ActorAgentID: flagActorAgentID,
				ActorRole:    auth.RoleCoordinator,
				Operation:    "bridgectl_fallback_kill",
				ResourceType: "fallback_run",
				ResourceID:   run.ID,
				Result:       services.AuditResultSuccess,
				Payload: map[string]interface{}{
					"pid":        run.Pid,
					"error_code": operatorTerminatedCode,
				},
			})
		}

		printResult(map[string]interface{}{"ok": true, "terminated": killed}, func() {
			for _, id := range killed {
				fmt.Printf("Terminated fallback run %s\n", id)
			}
		})
		return nil
	})
}

// selectRuns resolves fallback runs by trigger id, thread id, and status.
func selectRuns(ctx context.Context, env *cliEnv, triggerID, threadID, status string) ([]*ent.FallbackRun, error) {
	query := env.db.FallbackRun.Query()
	if triggerID != "" {
		query = query.Where(fallbackrun.IDEQ(triggerID))
	}
	if threadID != "" {
		jobs, err := env.db.TriggerJob.Query().
			Where(triggerjob.ThreadIDEQ(threadID)).
			Select(triggerjob.FieldID).
			Strings(ctx)
		if err != nil {
			return nil, err
		}
		if len(jobs) == 0 {
			return nil, nil
		}
		query = query.Where(fallbackrun.IDIn(jobs...))
	}
	if status != "" {
		query = query.Where(fallbackrun.StatusEQ(fallbackrun.Status(status)))
	}
	return query.Order(ent.Desc(fallbackrun.FieldStartedAt)).All(ctx)
}
