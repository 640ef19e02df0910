// Package shellfake provides a controllable fake shell.Executor for tests:
// it records every command it is asked to run and answers from an ordered
// list of pattern rules instead of spawning processes.
package shellfake

import (
	"context"
	"runtime"
	"strings"
	"sync"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/execkit/pkg/shell"
)

// Executor is a fake shell.Executor. Each test owns its own fixture,
// constructed by New or Install; there is no package-level state.
type Executor struct {
	// SchedulePoint simulates the scheduling point the real executor hits
	// when it hands control to the process. It runs once per replied call
	// and defaults to runtime.Gosched. Tests may replace it to assert it
	// was reached.
	SchedulePoint func()

	mu             sync.Mutex
	repliers       []compiledReplier
	log            []string
	schedulePoints int
}

var _ shell.Executor = (*Executor)(nil)

// New creates a fake executor with no repliers and an empty log.
func New() *Executor {
	return &Executor{SchedulePoint: runtime.Gosched}
}

// SetRepliers replaces the replier registry wholesale. Rules are tried in
// the given order; the first matching pattern wins.
func (it *Executor) SetRepliers(rules []Replier) error {
	compiled, err := compileRepliers(rules)
	if err != nil {
		return err
	}

	it.mu.Lock()
	defer it.mu.Unlock()
	it.repliers = compiled
	return nil
}

// Execute records the command and answers it from the replier registry.
// Commands matching no rule get the default empty reply. A handler
// returning a *shell.ProcessExecutionError has it propagated unchanged.
func (it *Executor) Execute(
	_ context.Context,
	opts shell.Options,
	parts ...string,
) (string, string, error) {
	cmdStr := strings.Join(parts, " ")
	logger.Debugf("Faking execution of command: %s", cmdStr)

	it.mu.Lock()
	it.log = append(it.log, cmdStr)
	rules := it.repliers
	it.mu.Unlock()

	for _, candidate := range rules {
		if !candidate.rx.MatchString(cmdStr) {
			continue
		}

		if candidate.rule.Handler == nil {
			it.yield()
			return candidate.rule.Reply, "", nil
		}

		stdout, stderr, err := candidate.rule.Handler(parts, opts)
		if err != nil {
			logger.Debugf("Faked command %q raised an error: %v", cmdStr, err)
			return stdout, stderr, err
		}
		it.yield()
		return stdout, stderr, nil
	}

	it.yield()
	return "", "", nil
}

// Log returns the commands recorded so far, in call order.
func (it *Executor) Log() []string {
	it.mu.Lock()
	defer it.mu.Unlock()
	entries := make([]string, len(it.log))
	copy(entries, it.log)
	return entries
}

// ClearLog empties the execution log.
func (it *Executor) ClearLog() {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.log = nil
}

// Reset clears both the execution log and the replier registry.
func (it *Executor) Reset() {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.log = nil
	it.repliers = nil
}

// SchedulePoints returns how many times the scheduling point has run.
func (it *Executor) SchedulePoints() int {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.schedulePoints
}

// yield runs the scheduling point once, keeping the counter consistent.
func (it *Executor) yield() {
	it.mu.Lock()
	it.schedulePoints++
	hook := it.SchedulePoint
	it.mu.Unlock()

	if hook != nil {
		hook()
	}
}
