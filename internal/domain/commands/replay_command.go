package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/execkit/pkg/shell"
	"github.com/rios0rios0/execkit/pkg/shellfake"
)

// Replay is the interface for the replay command (scripted fake mode).
type Replay interface {
	Execute(ctx context.Context, opts ReplayOptions) error
}

// ReplayOptions holds runtime options for a replay.
type ReplayOptions struct {
	ScriptPath string
	Parts      []string
	Input      string
	Verbose    bool
}

// ReplayCommand runs a command against a fake executor loaded from a
// replier script, so users can preview what their test fixtures reply.
type ReplayCommand struct {
	out    io.Writer
	errOut io.Writer
}

// NewReplayCommand creates a new ReplayCommand writing to the process
// streams.
func NewReplayCommand() *ReplayCommand {
	return NewReplayCommandWithOutput(os.Stdout, os.Stderr)
}

// NewReplayCommandWithOutput creates a new ReplayCommand writing to the
// given streams.
func NewReplayCommandWithOutput(out, errOut io.Writer) *ReplayCommand {
	return &ReplayCommand{
		out:    out,
		errOut: errOut,
	}
}

// Execute loads the script, plays the command against a fresh fake, and
// reports the scripted reply plus the recorded log.
func (it *ReplayCommand) Execute(ctx context.Context, opts ReplayOptions) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if len(opts.Parts) == 0 {
		return errors.New("no command given")
	}

	rules, err := shellfake.LoadScript(opts.ScriptPath)
	if err != nil {
		return fmt.Errorf("failed to load script: %w", err)
	}

	fake := shellfake.New()
	if setErr := fake.SetRepliers(rules); setErr != nil {
		return fmt.Errorf("failed to configure repliers: %w", setErr)
	}

	stdout, stderr, execErr := fake.Execute(ctx, shell.Options{Input: opts.Input}, opts.Parts...)

	if stdout != "" {
		fmt.Fprint(it.out, stdout)
	}
	if stderr != "" {
		fmt.Fprint(it.errOut, stderr)
	}

	for _, entry := range fake.Log() {
		logger.Infof("Recorded command: %s", entry)
	}

	if execErr != nil {
		return fmt.Errorf("scripted failure: %w", execErr)
	}
	return nil
}
