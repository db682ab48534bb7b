// Package diag builds the diagnostic logger shared by the CLI and the
// terminal driver.
package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// EnvLevel names the environment variable consulted when no level flag is set.
const EnvLevel = "MINDFOOL_LOG_LEVEL"

// DefaultLevel is used when neither the flag nor the environment sets one.
const DefaultLevel = "warn"

// Options configure a logger.
type Options struct {
	// Level is one of trace, debug, info, warn, error, off. Empty falls back
	// to EnvLevel, then DefaultLevel.
	Level string

	// Output defaults to os.Stderr.
	Output io.Writer

	// JSON switches to hclog's JSON format.
	JSON bool
}

// ResolveLevel picks the effective level string.
func ResolveLevel(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(EnvLevel); env != "" {
		return env
	}
	return DefaultLevel
}

// ParseLevel maps a level name to an hclog.Level.
func ParseLevel(s string) (hclog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "none" {
		s = "off"
	}
	lvl := hclog.LevelFromString(s)
	if lvl == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// New builds the root "mindfool" logger.
func New(opts Options) (hclog.Logger, error) {
	lvl, err := ParseLevel(ResolveLevel(opts.Level))
	if err != nil {
		return nil, err
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "mindfool",
		Level:      lvl,
		Output:     out,
		JSONFormat: opts.JSON,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.Off})
}
