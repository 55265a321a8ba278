package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/lint"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for per-file errors (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowSummary prints a one-line summary after text output.
	ShowSummary bool

	// Compact uses minified output for JSON and SARIF.
	Compact bool

	// RuleFormat controls how rule identifiers appear in the summary.
	RuleFormat config.RuleFormat

	// Registry supplies rule names and descriptions.
	Registry *lint.Registry

	// ToolVersion is reported in JSON and SARIF output.
	ToolVersion string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      FormatText,
		Color:       "auto",
		RuleFormat:  config.RuleFormatName,
		Registry:    lint.DefaultRegistry,
		ToolVersion: "dev",
	}
}
