package shellfake

import (
	"fmt"
	"regexp"

	"github.com/rios0rios0/execkit/pkg/shell"
)

// Handler produces the reply for a command matched by a replier. It receives
// the original command parts and the options the caller passed. Returning a
// *shell.ProcessExecutionError simulates a failing external command; the
// fake propagates it unchanged.
type Handler func(parts []string, opts shell.Options) (stdout, stderr string, err error)

// Replier is an ordered rule deciding how the fake executor responds to a
// command. Pattern is a regular expression matched from the start of the
// space-joined command string. When Handler is nil, Reply is returned
// verbatim as stdout with empty stderr; otherwise Handler is invoked.
type Replier struct {
	Pattern string
	Reply   string
	Handler Handler
}

// compiledReplier pairs a rule with its compiled pattern.
type compiledReplier struct {
	rx   *regexp.Regexp
	rule Replier
}

// compileRepliers compiles every pattern, anchored at the start of the
// command string.
func compileRepliers(rules []Replier) ([]compiledReplier, error) {
	compiled := make([]compiledReplier, 0, len(rules))
	for i, rule := range rules {
		rx, err := regexp.Compile("^(?:" + rule.Pattern + ")")
		if err != nil {
			return nil, fmt.Errorf("replier %d: invalid pattern %q: %w", i, rule.Pattern, err)
		}
		compiled = append(compiled, compiledReplier{rx: rx, rule: rule})
	}
	return compiled, nil
}
