package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/execkit/internal/domain/commands"
	"github.com/rios0rios0/execkit/internal/domain/entities"
)

// ReplayController handles the "replay" subcommand (scripted fake mode).
type ReplayController struct {
	command commands.Replay
}

// NewReplayController creates a new ReplayController.
func NewReplayController(command commands.Replay) *ReplayController {
	return &ReplayController{command: command}
}

// GetBind returns the Cobra command metadata for the replay controller.
func (it *ReplayController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "replay --script <file> -- <command> [args...]",
		Short: "Play a command against a scripted fake executor",
		Long: `Play a command against a fake executor loaded from a YAML
replier script, without spawning any process.

Use this to preview what a test fixture will reply for a given
command before wiring the script into a test.`,
	}
}

// Execute runs the scripted fake mode.
func (it *ReplayController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	verbose, _ := cmd.Flags().GetBool("verbose")
	script, _ := cmd.Flags().GetString("script")
	input, _ := cmd.Flags().GetString("input")

	if script == "" {
		logger.Error("No script given; set --script to a replier script file")
		return
	}

	if err := it.command.Execute(ctx, commands.ReplayOptions{
		ScriptPath: script,
		Parts:      args,
		Input:      input,
		Verbose:    verbose,
	}); err != nil {
		logger.Errorf("Replay failed: %v", err)
	}
}

// AddFlags adds the replay-specific flags to the given Cobra command.
func (it *ReplayController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("script", "s", "", "Path to the YAML replier script")
	cmd.Flags().String("input", "", "Content passed to handlers as stdin input")
}
