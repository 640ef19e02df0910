//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/execkit/pkg/shell"
)

// OptionsBuilder helps create execution options with a fluent interface.
type OptionsBuilder struct {
	*testkit.BaseBuilder
	input        string
	env          map[string]string
	okExitCodes  []int
	attempts     int
	delayOnRetry bool
}

// NewOptionsBuilder creates a new options builder with sensible defaults.
func NewOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		input:       "",
		env:         nil,
		okExitCodes: nil,
		attempts:    1,
	}
}

// WithInput sets the stdin content.
func (b *OptionsBuilder) WithInput(input string) *OptionsBuilder {
	b.input = input
	return b
}

// WithEnv sets an extra environment variable.
func (b *OptionsBuilder) WithEnv(key, value string) *OptionsBuilder {
	if b.env == nil {
		b.env = make(map[string]string)
	}
	b.env[key] = value
	return b
}

// WithOKExitCodes sets the accepted exit codes.
func (b *OptionsBuilder) WithOKExitCodes(codes ...int) *OptionsBuilder {
	b.okExitCodes = codes
	return b
}

// WithAttempts sets the total number of tries.
func (b *OptionsBuilder) WithAttempts(attempts int) *OptionsBuilder {
	b.attempts = attempts
	return b
}

// WithDelayOnRetry enables the randomized delay between tries.
func (b *OptionsBuilder) WithDelayOnRetry() *OptionsBuilder {
	b.delayOnRetry = true
	return b
}

// Build creates the options (satisfies testkit.Builder interface).
func (b *OptionsBuilder) Build() interface{} {
	return b.BuildOptions()
}

// BuildOptions creates the options with a concrete return type.
func (b *OptionsBuilder) BuildOptions() shell.Options {
	return shell.Options{
		Input:        b.input,
		Env:          b.env,
		OKExitCodes:  b.okExitCodes,
		Attempts:     b.attempts,
		DelayOnRetry: b.delayOnRetry,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *OptionsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.input = ""
	b.env = nil
	b.okExitCodes = nil
	b.attempts = 1
	b.delayOnRetry = false
	return b
}

// Clone creates a deep copy of the OptionsBuilder.
func (b *OptionsBuilder) Clone() testkit.Builder {
	env := b.env
	if env != nil {
		env = make(map[string]string, len(b.env))
		for key, value := range b.env {
			env[key] = value
		}
	}
	codes := make([]int, len(b.okExitCodes))
	copy(codes, b.okExitCodes)

	return &OptionsBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		input:        b.input,
		env:          env,
		okExitCodes:  codes,
		attempts:     b.attempts,
		delayOnRetry: b.delayOnRetry,
	}
}
