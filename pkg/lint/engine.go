package lint

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/mdast"
)

// FileResult is the outcome of linting one document.
type FileResult struct {
	Snapshot *mdast.FileSnapshot

	// Diagnostics are ordered by line, column, then rule ID.
	Diagnostics []Diagnostic

	// RuleErrors maps a rule ID to the error or panic that stopped it.
	RuleErrors map[string]error
}

// RuleError joins the rule failures in rule ID order, or returns nil.
func (fr *FileResult) RuleError() error {
	var errs []error
	for _, id := range slices.Sorted(maps.Keys(fr.RuleErrors)) {
		errs = append(errs, fmt.Errorf("rule %s: %w", id, fr.RuleErrors[id]))
	}
	return errors.Join(errs...)
}

// Engine runs the enabled rules of a registry over parsed documents.
type Engine struct {
	Parser   Parser
	Registry *Registry
}

// NewEngine creates an Engine.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{Parser: parser, Registry: registry}
}

// LintFile parses content and lints the result.
func (e *Engine) LintFile(ctx context.Context, path string, content []byte, cfg *config.Config) (*FileResult, error) {
	snapshot, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return e.LintSnapshot(ctx, snapshot, cfg)
}

// LintSnapshot runs every rule enabled by cfg against snapshot. A rule that
// fails or panics is recorded in RuleErrors; the remaining rules still run.
func (e *Engine) LintSnapshot(ctx context.Context, snapshot *mdast.FileSnapshot, cfg *config.Config) (*FileResult, error) {
	result := &FileResult{Snapshot: snapshot, RuleErrors: make(map[string]error)}
	cache := NewNodeCache()

	for _, rr := range ResolveRules(e.Registry, cfg) {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("linting cancelled: %w", err)
		}

		diags, err := applyRule(rr.Rule, NewRuleContext(ctx, snapshot, cfg, rr.Config).WithCache(cache))
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for i := range diags {
			d := &diags[i]
			d.Severity = rr.Severity
			d.FilePath = cmp.Or(d.FilePath, snapshot.Path)
			d.RuleName = cmp.Or(d.RuleName, rr.Rule.Name())
			d.RuleDescription = cmp.Or(d.RuleDescription, rr.Rule.Description())
		}
		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	slices.SortStableFunc(result.Diagnostics, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.StartLine, b.StartLine),
			cmp.Compare(a.StartColumn, b.StartColumn),
			cmp.Compare(a.RuleID, b.RuleID),
		)
	})

	return result, nil
}

// applyRule runs rule and converts a panic into an error.
func applyRule(rule Rule, ruleCtx *RuleContext) (diags []Diagnostic, err error) {
	defer func() {
		if r := recover(); r != nil {
			diags, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return rule.Apply(ruleCtx)
}
