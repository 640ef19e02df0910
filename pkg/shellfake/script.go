package shellfake

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/execkit/pkg/shell"
)

// Script is the on-disk format for a scripted replier set.
type Script struct {
	Repliers []ScriptReplier `yaml:"repliers"`
}

// ScriptReplier describes a single scripted rule. An entry with a non-zero
// ExitCode simulates a failing command: matching it yields a
// *shell.ProcessExecutionError carrying the scripted output.
type ScriptReplier struct {
	Pattern  string `yaml:"pattern"`
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr"`
	ExitCode int    `yaml:"exit_code"`
}

// LoadScript reads and parses a replier script file.
func LoadScript(path string) ([]Replier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file %q: %w", path, err)
	}
	return ParseScript(data)
}

// ParseScript parses YAML script data into replier rules, validating every
// pattern.
func ParseScript(data []byte) ([]Replier, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	rules := make([]Replier, 0, len(script.Repliers))
	for i, entry := range script.Repliers {
		if entry.Pattern == "" {
			return nil, fmt.Errorf("repliers[%d].pattern is required", i)
		}
		if _, err := regexp.Compile(entry.Pattern); err != nil {
			return nil, fmt.Errorf("repliers[%d]: invalid pattern %q: %w", i, entry.Pattern, err)
		}

		switch {
		case entry.ExitCode != 0:
			rules = append(rules, Replier{
				Pattern: entry.Pattern,
				Handler: scriptedFailure(entry),
			})
		case entry.Stderr != "":
			rules = append(rules, Replier{
				Pattern: entry.Pattern,
				Handler: scriptedReply(entry),
			})
		default:
			rules = append(rules, Replier{
				Pattern: entry.Pattern,
				Reply:   entry.Stdout,
			})
		}
	}
	return rules, nil
}

// scriptedReply returns a handler replying with the scripted stdout and
// stderr.
func scriptedReply(entry ScriptReplier) Handler {
	return func(_ []string, _ shell.Options) (string, string, error) {
		return entry.Stdout, entry.Stderr, nil
	}
}

// scriptedFailure returns a handler simulating a failed external command.
func scriptedFailure(entry ScriptReplier) Handler {
	return func(parts []string, _ shell.Options) (string, string, error) {
		return "", "", &shell.ProcessExecutionError{
			Cmd:         strings.Join(parts, " "),
			ExitCode:    entry.ExitCode,
			Stdout:      entry.Stdout,
			Stderr:      entry.Stderr,
			Description: "scripted command failure",
		}
	}
}
