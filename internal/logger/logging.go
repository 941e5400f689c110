// Package logger provides modifications to charmbracelet/log's default logger to be used in various files/packages.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a new default charm log on stderr, leaving stdout to program output.
// Debug level adds timestamps and callers.
func New(prefix string) *log.Logger {
	debug := log.GetLevel() == log.DebugLevel
	return NewWithConfig(prefix, log.GetLevel(), debug, debug, log.TextFormatter)
}

// NewWithConfig creates a new charm log with custom config
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}
