//go:build integration || unit || test

package executordoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"

	"github.com/rios0rios0/execkit/pkg/shell"
)

// SpyExecutor is a configurable spy implementation of shell.Executor.
// Configure the reply fields, then inspect the call-tracking fields to
// verify behavior. For pattern-based replies use shellfake.Executor instead.
type SpyExecutor struct {
	// --- reply ---
	Stdout string
	Stderr string
	Err    error

	// spy: space-joined commands received, in call order
	Commands []string
	// spy: options of the last call
	LastOpts shell.Options
}

var _ shell.Executor = (*SpyExecutor)(nil)

func (s *SpyExecutor) Execute(
	_ context.Context,
	opts shell.Options,
	parts ...string,
) (string, string, error) {
	s.Commands = append(s.Commands, strings.Join(parts, " "))
	s.LastOpts = opts
	return s.Stdout, s.Stderr, s.Err
}
