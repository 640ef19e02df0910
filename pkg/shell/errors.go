package shell

import "fmt"

// ProcessExecutionError reports a command that finished with an unexpected
// exit code. It is the only error kind executors raise for a command that
// actually ran; failures to start a command surface as wrapped plain errors.
type ProcessExecutionError struct {
	Cmd         string
	ExitCode    int
	Stdout      string
	Stderr      string
	Description string
}

func (e *ProcessExecutionError) Error() string {
	description := e.Description
	if description == "" {
		description = "unexpected error while running command"
	}
	return fmt.Sprintf(
		"%s\nCommand: %s\nExit code: %d\nStdout: %q\nStderr: %q",
		description, e.Cmd, e.ExitCode, e.Stdout, e.Stderr,
	)
}
