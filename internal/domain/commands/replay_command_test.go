//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/execkit/internal/domain/commands"
	"github.com/rios0rios0/execkit/pkg/shell"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReplayCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should reply from the script", func(t *testing.T) {
		t.Parallel()

		// given
		script := writeScript(t, "repliers:\n  - pattern: \"^ls\"\n    stdout: \"file1\\nfile2\"\n")
		var out, errOut bytes.Buffer
		cmd := commands.NewReplayCommandWithOutput(&out, &errOut)

		// when
		err := cmd.Execute(context.Background(), commands.ReplayOptions{
			ScriptPath: script,
			Parts:      []string{"ls", "-la"},
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "file1\nfile2", out.String())
		assert.Empty(t, errOut.String())
	})

	t.Run("should surface scripted failures", func(t *testing.T) {
		t.Parallel()

		// given
		script := writeScript(t,
			"repliers:\n  - pattern: \"^mount\"\n    stderr: \"denied\"\n    exit_code: 32\n")
		var out, errOut bytes.Buffer
		cmd := commands.NewReplayCommandWithOutput(&out, &errOut)

		// when
		err := cmd.Execute(context.Background(), commands.ReplayOptions{
			ScriptPath: script,
			Parts:      []string{"mount", "/dev/sda1"},
		})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scripted failure")

		var procErr *shell.ProcessExecutionError
		require.ErrorAs(t, err, &procErr)
		assert.Equal(t, 32, procErr.ExitCode)
	})

	t.Run("should error when the script file is missing", func(t *testing.T) {
		t.Parallel()

		// given
		var out, errOut bytes.Buffer
		cmd := commands.NewReplayCommandWithOutput(&out, &errOut)

		// when
		err := cmd.Execute(context.Background(), commands.ReplayOptions{
			ScriptPath: filepath.Join(t.TempDir(), "missing.yaml"),
			Parts:      []string{"ls"},
		})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load script")
	})

	t.Run("should error when no command is given", func(t *testing.T) {
		t.Parallel()

		// given
		script := writeScript(t, "repliers: []\n")
		var out, errOut bytes.Buffer
		cmd := commands.NewReplayCommandWithOutput(&out, &errOut)

		// when
		err := cmd.Execute(context.Background(), commands.ReplayOptions{
			ScriptPath: script,
		})

		// then
		require.Error(t, err)
	})
}
