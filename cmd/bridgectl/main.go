// bridgectl is the operator control plane for the bridge: thread escalation,
// escalation ownership, override transitions, and fallback-run termination.
// It reads the same database as the server.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/agentfabric/bridge/pkg/auth"
	"github.com/agentfabric/bridge/pkg/config"
	"github.com/agentfabric/bridge/pkg/database"
	"github.com/agentfabric/bridge/pkg/services"
)

var (
	flagThreadID     string
	flagOwnerAgentID string
	flagReason       string
	flagActorAgentID string
	flagJSON         bool
	flagEnvFile      string
)

var rootCmd = &cobra.Command{
	Use:           "bridgectl",
	Short:         "Operator control plane for the bridge",
	Long:          `bridgectl inspects and manages bridge threads, escalation ownership, and fallback runs directly against the bridge database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagActorAgentID, "actor-agent-id", "operator", "Agent id recorded as the acting operator")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Path to an optional .env file")

	rootCmd.AddCommand(inspectThreadCmd)
	rootCmd.AddCommand(escalateThreadCmd)
	rootCmd.AddCommand(unblockThreadCmd)
	rootCmd.AddCommand(overrideCloseThreadCmd)
	rootCmd.AddCommand(assignOwnerCmd)
	rootCmd.AddCommand(reassignOwnerCmd)
	rootCmd.AddCommand(getOwnerCmd)
	rootCmd.AddCommand(fallbackListCmd)
	rootCmd.AddCommand(fallbackKillCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fail(err)
	}
}

// fail prints the error envelope on stderr and exits 1.
func fail(err error) {
	envelope := map[string]interface{}{
		"ok":      false,
		"code":    string(services.CodeOf(err)),
		"message": err.Error(),
	}
	var de *services.Error
	if errors.As(err, &de) {
		envelope["message"] = de.Message
		if de.Details != nil {
			envelope["details"] = de.Details
		}
	}
	out, _ := json.Marshal(envelope)
	fmt.Fprintln(os.Stderr, string(out))
	os.Exit(1)
}

// cliEnv is the shared toolbox every subcommand runs with.
type cliEnv struct {
	db       *database.Client
	threads  *services.ThreadService
	messages *services.MessageService
	triggers *services.TriggerService
	audit    *services.AuditService
}

// withEnv opens the database and runs fn with the services wired up.
func withEnv(fn func(ctx context.Context, env *cliEnv) error) error {
	if err := godotenv.Load(flagEnvFile); err != nil && flagEnvFile != ".env" {
		return fmt.Errorf("could not load env file %s: %w", flagEnvFile, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	db, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	env := &cliEnv{
		db:       db,
		threads:  services.NewThreadService(db.Client),
		messages: services.NewMessageService(db.Client, 3),
		triggers: services.NewTriggerService(db.Client),
		audit:    services.NewAuditService(db.Client),
	}
	return fn(ctx, env)
}

// operatorActor is the identity operator commands act under. The coordinator
// role carries thread:manage, so close transitions are permitted; override
// prefixes are still required where the state graph demands them.
func operatorActor(reason string) services.Actor {
	return services.Actor{
		AgentID: flagActorAgentID,
		Role:    auth.RoleCoordinator,
		Reason:  reason,
	}
}

// printResult renders v as JSON when --json is set, otherwise via fn.
func printResult(v interface{}, fn func()) {
	if flagJSON {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			fail(err)
		}
		fmt.Println(string(out))
		return
	}
	fn()
}

// loadFallbackConfig returns fallback tuning for commands that need it
// without requiring the full server environment.
func loadFallbackConfig() *config.FallbackConfig {
	return config.DefaultFallbackConfig()
}
