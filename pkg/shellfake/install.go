package shellfake

import (
	"testing"

	"github.com/rios0rios0/execkit/pkg/shell"
)

// Install creates a fresh fake executor, substitutes it for the package
// default in shell, and restores the previous executor when the test
// finishes. The returned fixture starts with no repliers and an empty log.
func Install(t testing.TB) *Executor {
	t.Helper()

	fake := New()
	previous := shell.SetDefault(fake)
	t.Cleanup(func() {
		shell.SetDefault(previous)
	})
	return fake
}
