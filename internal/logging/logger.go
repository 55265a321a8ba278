// Package logging configures the charmbracelet/log loggers used by spellint.
// Log output always goes to stderr so that reports on stdout stay clean.
package logging

import (
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // process-wide default logger
var defaultLogger atomic.Pointer[log.Logger]

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" (any case)
// to a level. Anything else is info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New returns a stderr logger at level, without timestamps.
func New(level string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: ParseLevel(level)})
}

// NewInteractive returns an info-level logger prefixed with the program
// name, for messages meant for a person at a terminal.
func NewInteractive() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel, Prefix: "spellint"})
}

// Default returns the process-wide logger, creating an info logger on first use.
func Default() *log.Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	defaultLogger.CompareAndSwap(nil, New("info"))
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *log.Logger) {
	defaultLogger.Store(logger)
}

// SetLevel changes the level of the process-wide logger.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}
