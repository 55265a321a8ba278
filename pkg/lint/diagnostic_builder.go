package lint

import (
	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/mdast"
)

// DiagnosticBuilder assembles a Diagnostic through chained setters.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnosticAt starts a diagnostic covering pos in the file at path.
func NewDiagnosticAt(ruleID, path string, pos mdast.SourcePosition, message string) *DiagnosticBuilder {
	b := &DiagnosticBuilder{diag: Diagnostic{RuleID: ruleID, Message: message, FilePath: path}}
	b.diag.StartLine, b.diag.StartColumn = pos.StartLine, pos.StartColumn
	b.diag.EndLine, b.diag.EndColumn = pos.EndLine, pos.EndColumn
	return b
}

// NewDiagnostic starts a diagnostic spanning node. A nil or detached node
// gives an unpositioned diagnostic.
func NewDiagnostic(ruleID string, node *mdast.Node, message string) *DiagnosticBuilder {
	if node == nil {
		return NewDiagnosticAt(ruleID, "", mdast.SourcePosition{}, message)
	}
	var path string
	if node.File != nil {
		path = node.File.Path
	}
	return NewDiagnosticAt(ruleID, path, node.SourcePosition(), message)
}

// NewDiagnosticAtLine starts a diagnostic running from col to the end of line.
func NewDiagnosticAtLine(ruleID string, file *mdast.FileSnapshot, line, col int, message string) *DiagnosticBuilder {
	pos := mdast.SourcePosition{StartLine: line, StartColumn: col, EndLine: line, EndColumn: col}
	var path string
	if file != nil {
		path = file.Path
		pos.EndColumn = max(col, file.LineWidth(line)+1)
	}
	return NewDiagnosticAt(ruleID, path, pos, message)
}

func (b *DiagnosticBuilder) WithSeverity(s config.Severity) *DiagnosticBuilder {
	b.diag.Severity = s
	return b
}

func (b *DiagnosticBuilder) WithDetail(detail string) *DiagnosticBuilder {
	b.diag.Detail = detail
	return b
}

func (b *DiagnosticBuilder) WithSuggestion(s string) *DiagnosticBuilder {
	b.diag.Suggestion = s
	return b
}

// Build returns a copy of the diagnostic assembled so far.
func (b *DiagnosticBuilder) Build() Diagnostic { return b.diag }
