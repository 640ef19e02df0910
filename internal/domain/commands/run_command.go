package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/execkit/pkg/shell"
)

// Run is the interface for the run command (real execution mode).
type Run interface {
	Execute(ctx context.Context, opts RunOptions) error
}

// RunOptions holds runtime options for a single execution.
type RunOptions struct {
	Parts        []string
	Input        string
	Env          map[string]string
	OKExitCodes  []int
	Attempts     int
	DelayOnRetry bool
	Verbose      bool
}

// RunCommand executes a command through the configured executor and relays
// its captured output.
type RunCommand struct {
	executor shell.Executor
	out      io.Writer
	errOut   io.Writer
}

// NewRunCommand creates a new RunCommand writing to the process streams.
func NewRunCommand(executor shell.Executor) *RunCommand {
	return NewRunCommandWithOutput(executor, os.Stdout, os.Stderr)
}

// NewRunCommandWithOutput creates a new RunCommand writing to the given
// streams.
func NewRunCommandWithOutput(executor shell.Executor, out, errOut io.Writer) *RunCommand {
	return &RunCommand{
		executor: executor,
		out:      out,
		errOut:   errOut,
	}
}

// Execute runs the command and writes its stdout and stderr through.
func (it *RunCommand) Execute(ctx context.Context, opts RunOptions) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if len(opts.Parts) == 0 {
		return errors.New("no command given")
	}

	stdout, stderr, err := it.executor.Execute(ctx, shell.Options{
		Input:        opts.Input,
		Env:          opts.Env,
		OKExitCodes:  opts.OKExitCodes,
		Attempts:     opts.Attempts,
		DelayOnRetry: opts.DelayOnRetry,
	}, opts.Parts...)

	if stdout != "" {
		fmt.Fprint(it.out, stdout)
	}
	if stderr != "" {
		fmt.Fprint(it.errOut, stderr)
	}

	if err != nil {
		var procErr *shell.ProcessExecutionError
		if errors.As(err, &procErr) {
			return fmt.Errorf("command exited with code %d: %w", procErr.ExitCode, err)
		}
		return fmt.Errorf("execution failed: %w", err)
	}
	return nil
}
