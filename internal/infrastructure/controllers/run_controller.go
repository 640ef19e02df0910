package controllers

import (
	"context"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/execkit/internal/domain/commands"
	"github.com/rios0rios0/execkit/internal/domain/entities"
)

// RunController handles the "run" subcommand (real execution mode).
type RunController struct {
	command commands.Run
}

// NewRunController creates a new RunController.
func NewRunController(command commands.Run) *RunController {
	return &RunController{command: command}
}

// GetBind returns the Cobra command metadata for the run controller.
func (it *RunController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "run -- <command> [args...]",
		Short: "Run a command through the local executor",
		Long: `Run a command through the local executor and relay its output.

Stdin content, extra environment variables, accepted exit codes, and
retry attempts can be set via flags. The command exits with an error
when the process finishes with an unaccepted exit code.`,
	}
}

// Execute runs the real execution mode.
func (it *RunController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	verbose, _ := cmd.Flags().GetBool("verbose")
	input, _ := cmd.Flags().GetString("input")
	envPairs, _ := cmd.Flags().GetStringArray("env")
	okExitCodes, _ := cmd.Flags().GetIntSlice("ok-exit-codes")
	attempts, _ := cmd.Flags().GetInt("attempts")
	delayOnRetry, _ := cmd.Flags().GetBool("delay-on-retry")

	if err := it.command.Execute(ctx, commands.RunOptions{
		Parts:        args,
		Input:        input,
		Env:          parseEnvPairs(envPairs),
		OKExitCodes:  okExitCodes,
		Attempts:     attempts,
		DelayOnRetry: delayOnRetry,
		Verbose:      verbose,
	}); err != nil {
		logger.Errorf("Run failed: %v", err)
	}
}

// AddFlags adds the run-specific flags to the given Cobra command.
func (it *RunController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("input", "", "Content fed to the process on stdin")
	cmd.Flags().StringArray("env", nil, "Extra environment variable (KEY=VALUE, repeatable)")
	cmd.Flags().IntSlice("ok-exit-codes", nil, "Exit codes treated as success (default: 0)")
	cmd.Flags().Int("attempts", 1, "Total number of tries")
	cmd.Flags().Bool("delay-on-retry", false, "Sleep a short randomized delay between tries")
}

// parseEnvPairs turns KEY=VALUE strings into a map, skipping malformed
// entries with a warning.
func parseEnvPairs(pairs []string) map[string]string {
	if len(pairs) == 0 {
		return nil
	}

	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			logger.Warnf("Ignoring malformed env entry %q (expected KEY=VALUE)", pair)
			continue
		}
		env[key] = value
	}
	return env
}
