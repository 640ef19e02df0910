package shell

import (
	"context"
	"sync"
)

// The default executor is the substitution point for tests: production code
// reaches external commands through Execute or Default, and a test swaps in
// a fake for its duration via SetDefault (usually through shellfake.Install).
//
//nolint:gochecknoglobals // package default with an explicit swap point
var (
	defaultMu       sync.RWMutex
	defaultExecutor Executor = NewLocalExecutor()
)

// Default returns the executor package-level calls run through.
func Default() Executor {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultExecutor
}

// SetDefault replaces the default executor and returns the previous one so
// callers can restore it.
func SetDefault(executor Executor) Executor {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	previous := defaultExecutor
	defaultExecutor = executor
	return previous
}

// Execute runs the command through the current default executor.
func Execute(ctx context.Context, opts Options, parts ...string) (string, string, error) {
	return Default().Execute(ctx, opts, parts...)
}
