// Package shell runs external commands and exposes the substitution point
// used to swap the real executor for a fake in tests.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
)

// maxRetryDelay bounds the randomized sleep between retry attempts.
const maxRetryDelay = 500 * time.Millisecond

// Executor runs external commands. Implementations return the captured
// stdout and stderr of the command identified by parts.
type Executor interface {
	Execute(ctx context.Context, opts Options, parts ...string) (stdout, stderr string, err error)
}

// LocalExecutor runs commands on the local host via os/exec.
type LocalExecutor struct{}

var _ Executor = (*LocalExecutor)(nil)

// NewLocalExecutor creates a new LocalExecutor.
func NewLocalExecutor() *LocalExecutor {
	return &LocalExecutor{}
}

// Execute runs the command described by parts, honoring the retry and
// exit-code options. A command that ran but exited with an unaccepted code
// yields a *ProcessExecutionError.
func (it *LocalExecutor) Execute(
	ctx context.Context,
	opts Options,
	parts ...string,
) (string, string, error) {
	if len(parts) == 0 {
		return "", "", errors.New("no command given")
	}

	cmdStr := strings.Join(parts, " ")

	attempts := opts.Attempts
	if attempts < 1 {
		attempts = 1
	}

	for {
		attempts--

		stdout, stderr, err := runOnce(ctx, opts, parts)
		if err == nil {
			return stdout, stderr, nil
		}

		var procErr *ProcessExecutionError
		if !errors.As(err, &procErr) || attempts <= 0 {
			return stdout, stderr, err
		}

		logger.Debugf("Command %q failed, %d attempts left: %v", cmdStr, attempts, err)

		if opts.DelayOnRetry {
			select {
			case <-ctx.Done():
				return "", "", ctx.Err()
			case <-time.After(rand.N(maxRetryDelay)):
			}
		}
	}
}

// runOnce performs a single try of the command.
func runOnce(ctx context.Context, opts Options, parts []string) (string, string, error) {
	cmdStr := strings.Join(parts, " ")
	logger.Debugf("Running command: %s", cmdStr)

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)

	if opts.Input != "" {
		cmd.Stdin = strings.NewReader(opts.Input)
	}

	if len(opts.Env) > 0 {
		env := os.Environ()
		for key, value := range opts.Env {
			env = append(env, key+"="+value)
		}
		cmd.Env = env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return stdout.String(), stderr.String(),
				fmt.Errorf("failed to run command %q: %w", cmdStr, err)
		}
		exitCode = exitErr.ExitCode()
	}

	if !opts.exitCodeAccepted(exitCode) {
		return stdout.String(), stderr.String(), &ProcessExecutionError{
			Cmd:         cmdStr,
			ExitCode:    exitCode,
			Stdout:      stdout.String(),
			Stderr:      stderr.String(),
			Description: "unexpected exit code",
		}
	}

	logger.Debugf("Command %q finished with exit code %d", cmdStr, exitCode)
	return stdout.String(), stderr.String(), nil
}
