package check

import (
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/spellint/internal/logging"
	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/lint"
	"github.com/yaklabco/spellint/pkg/mdast"
)

// defaultColumn is used when a rule reports no column.
const defaultColumn = 1

// LintPass runs the structural rules and maps their violations to findings.
type LintPass struct {
	Engine *lint.Engine
	Config *config.Config
}

// NewLintPass returns a LintPass over engine. A nil cfg uses the defaults.
func NewLintPass(engine *lint.Engine, cfg *config.Config) *LintPass {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &LintPass{Engine: engine, Config: cfg}
}

// LintMarkdown parses content and returns its structural findings.
func (p *LintPass) LintMarkdown(ctx context.Context, content []byte) ([]Finding, error) {
	if err := validateInput(content); err != nil {
		return nil, err
	}

	snapshot, err := p.Engine.Parser.Parse(ctx, "", content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	return p.CheckSnapshot(ctx, snapshot)
}

// CheckSnapshot lints an already parsed document. Any rule failure fails
// the whole pass for this document.
func (p *LintPass) CheckSnapshot(ctx context.Context, snapshot *mdast.FileSnapshot) ([]Finding, error) {
	result, err := p.Engine.LintSnapshot(ctx, snapshot, p.Config)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLintFailure, err)
	}
	if ruleErr := result.RuleError(); ruleErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrLintFailure, ruleErr)
	}

	findings := make([]Finding, 0, len(result.Diagnostics))
	for i := range result.Diagnostics {
		diag := &result.Diagnostics[i]
		finding := FromViolation(diag.Violation())
		finding.Severity = string(diag.Severity)
		findings = append(findings, finding)
	}

	logging.FromContext(ctx).Debug("lint pass finished",
		logging.FieldPath, snapshot.Path,
		logging.FieldLint, len(findings),
	)

	return findings, nil
}

// FromViolation maps one native lint violation to a Finding.
func FromViolation(v lint.Violation) Finding {
	column := v.Column
	if column <= 0 {
		column = defaultColumn
	}

	var ruleID string
	if len(v.RuleIDs) > 0 {
		ruleID = v.RuleIDs[0]
	}

	return Finding{
		Line:    v.Line,
		Column:  column,
		Message: lintMessage(v),
		Source:  SourceLint,
		RuleID:  ruleID,
	}
}

func lintMessage(v lint.Violation) string {
	var b strings.Builder
	b.WriteString("Linting error [")
	b.WriteString(strings.Join(v.RuleIDs, ", "))
	b.WriteString("]: ")
	b.WriteString(v.Description)
	if v.Detail != "" {
		b.WriteString(" [")
		b.WriteString(v.Detail)
		b.WriteString("]")
	}
	return b.String()
}
