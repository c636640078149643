// Package logging builds the diagnostic logger used by the converter.
//
// Diagnostics go to stderr through log/slog so that stdout only carries the
// "Converted: ..." confirmation lines. Records are rendered by a
// charmbracelet/log handler.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// Options describes logger construction parameters.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means warn.
	Level string

	// Writer receives log output. Nil means os.Stderr.
	Writer io.Writer

	// Prefix is printed before every message.
	Prefix string

	// Timestamps adds a time column.
	Timestamps bool
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		ReportTimestamp: opts.Timestamps,
		ReportCaller:    level <= charmlog.DebugLevel,
	})

	return slog.New(handler), nil
}

// ParseLevel maps a level name to a charmbracelet/log level.
func ParseLevel(level string) (charmlog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return charmlog.DebugLevel, nil
	case "info":
		return charmlog.InfoLevel, nil
	case "warn", "":
		return charmlog.WarnLevel, nil
	case "error":
		return charmlog.ErrorLevel, nil
	default:
		return charmlog.WarnLevel, fmt.Errorf("log level: unsupported value %q", level)
	}
}
