//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/execkit/internal/domain/commands"
)

// StubReplayCommand is a stub implementation of commands.Replay.
type StubReplayCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.ReplayOptions
}

var _ commands.Replay = (*StubReplayCommand)(nil)

func (s *StubReplayCommand) Execute(
	_ context.Context,
	opts commands.ReplayOptions,
) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
