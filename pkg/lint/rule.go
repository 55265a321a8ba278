// Package lint runs structural Markdown rules over parsed documents and
// collects their diagnostics.
package lint

import (
	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/mdast"
)

// Diagnostic is one structural problem in one file. Lines and columns are
// 1-based; columns count runes.
type Diagnostic struct {
	RuleID          string
	RuleName        string // e.g. "no-trailing-spaces"
	RuleDescription string

	Message    string
	Detail     string // occurrence specifics, e.g. "Expected: h2; Actual: h3"
	Suggestion string
	Severity   config.Severity

	FilePath    string
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// SourcePosition returns the span the diagnostic covers.
func (d *Diagnostic) SourcePosition() mdast.SourcePosition {
	return mdast.SourcePosition{StartLine: d.StartLine, StartColumn: d.StartColumn, EndLine: d.EndLine, EndColumn: d.EndColumn}
}

// Rule is a structural check. Implementations embed BaseRule for the
// metadata methods and supply Apply.
type Rule interface {
	ID() string   // "MD001"
	Name() string // "heading-increment"
	Aliases() []string
	Description() string
	Tags() []string

	DefaultEnabled() bool
	DefaultSeverity() config.Severity

	// Apply reports violations found in ctx.File. An error means the rule
	// itself failed; it stops only this rule. Apply should return early
	// once ctx is cancelled.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}
