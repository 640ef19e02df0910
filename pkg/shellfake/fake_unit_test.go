//go:build unit

package shellfake_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/execkit/pkg/shell"
	"github.com/rios0rios0/execkit/pkg/shellfake"
	"github.com/rios0rios0/execkit/test/domain/entitybuilders"
)

func TestExecutorHandlerArguments(t *testing.T) {
	t.Parallel()

	t.Run("should pass the original parts and options to the handler", func(t *testing.T) {
		t.Parallel()

		// given
		opts := entitybuilders.NewOptionsBuilder().
			WithInput("piped content").
			WithEnv("LC_ALL", "C").
			WithOKExitCodes(0, 2).
			BuildOptions()

		var gotParts []string
		var gotOpts shell.Options

		fake := shellfake.New()
		require.NoError(t, fake.SetRepliers([]shellfake.Replier{
			{Pattern: "^dd", Handler: func(parts []string, handlerOpts shell.Options) (string, string, error) {
				gotParts = parts
				gotOpts = handlerOpts
				return "4096 bytes copied", "", nil
			}},
		}))

		// when
		stdout, _, err := fake.Execute(context.Background(), opts, "dd", "if=/dev/zero", "of=/dev/null")

		// then
		require.NoError(t, err)
		assert.Equal(t, "4096 bytes copied", stdout)
		assert.Equal(t, []string{"dd", "if=/dev/zero", "of=/dev/null"}, gotParts)
		assert.Equal(t, opts, gotOpts)
	})
}
