//go:build unit

package controllers_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/execkit/internal/infrastructure/controllers"
	doubles "github.com/rios0rios0/execkit/test/domain/commanddoubles"
)

func newRunTestCommand(t *testing.T, ctrl *controllers.RunController) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "run"}
	cmd.Flags().BoolP("verbose", "v", false, "") // persistent flag on the real root
	ctrl.AddFlags(cmd)
	return cmd
}

func TestRunControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should forward parsed flags to the run command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubRunCommand{}
		ctrl := controllers.NewRunController(stub)
		cmd := newRunTestCommand(t, ctrl)
		require.NoError(t, cmd.Flags().Set("input", "piped"))
		require.NoError(t, cmd.Flags().Set("env", "FOO=bar"))
		require.NoError(t, cmd.Flags().Set("attempts", "2"))
		require.NoError(t, cmd.Flags().Set("ok-exit-codes", "0,3"))

		// when
		ctrl.Execute(cmd, []string{"git", "status"})

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, []string{"git", "status"}, stub.LastOpts.Parts)
		assert.Equal(t, "piped", stub.LastOpts.Input)
		assert.Equal(t, map[string]string{"FOO": "bar"}, stub.LastOpts.Env)
		assert.Equal(t, 2, stub.LastOpts.Attempts)
		assert.Equal(t, []int{0, 3}, stub.LastOpts.OKExitCodes)
	})

	t.Run("should not fail the controller when the command errors", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubRunCommand{ExecuteErr: assert.AnError}
		ctrl := controllers.NewRunController(stub)
		cmd := newRunTestCommand(t, ctrl)

		// when
		ctrl.Execute(cmd, []string{"ls"})

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
	})
}

func TestRunControllerGetBind(t *testing.T) {
	t.Parallel()

	t.Run("should describe the run subcommand", func(t *testing.T) {
		t.Parallel()

		// given
		ctrl := controllers.NewRunController(&doubles.StubRunCommand{})

		// when
		bind := ctrl.GetBind()

		// then
		assert.Contains(t, bind.Use, "run")
		assert.NotEmpty(t, bind.Short)
	})
}

func TestParseEnvPairs(t *testing.T) {
	t.Parallel()

	t.Run("should parse KEY=VALUE pairs", func(t *testing.T) {
		t.Parallel()

		// when
		env := controllers.ParseEnvPairs([]string{"FOO=bar", "EMPTY=", "PATH=/usr/bin:/bin"})

		// then
		assert.Equal(t, map[string]string{
			"FOO":   "bar",
			"EMPTY": "",
			"PATH":  "/usr/bin:/bin",
		}, env)
	})

	t.Run("should skip malformed entries", func(t *testing.T) {
		t.Parallel()

		// when
		env := controllers.ParseEnvPairs([]string{"FOO=bar", "malformed", "=novalue"})

		// then
		assert.Equal(t, map[string]string{"FOO": "bar"}, env)
	})

	t.Run("should return nil for no entries", func(t *testing.T) {
		t.Parallel()

		// when
		env := controllers.ParseEnvPairs(nil)

		// then
		assert.Nil(t, env)
	})
}
