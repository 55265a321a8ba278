package check

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/spellint/internal/logging"
	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/lint"
	"github.com/yaklabco/spellint/pkg/parser/goldmark"
	"github.com/yaklabco/spellint/pkg/spell"

	// Register the built-in lint rules with the default registry.
	_ "github.com/yaklabco/spellint/pkg/lint/rules"
)

// Checker runs both passes over one document, parsing it once.
// A nil pass is skipped.
type Checker struct {
	Parser   lint.Parser
	Spelling *SpellPass
	Lint     *LintPass
}

// NewChecker builds a Checker from cfg. The spelling pass draws its oracle
// from provider; pass spell.Default() for the built-in dictionary.
func NewChecker(cfg *config.Config, provider *spell.Provider) *Checker {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	parser := goldmark.New(string(cfg.Flavor))
	checker := &Checker{Parser: parser}

	if cfg.SpellingEnabled() {
		checker.Spelling = NewSpellPassFromConfig(parser, provider, cfg)
	}
	if cfg.LintEnabled() {
		checker.Lint = NewLintPass(lint.NewEngine(parser, lint.DefaultRegistry), cfg)
	}

	return checker
}

// Check returns the aggregated report for content.
//
// When the dictionary cannot be loaded the lint findings are still returned
// alongside an error wrapping ErrDictionaryLoad. Every other failure returns
// a nil report.
func (c *Checker) Check(ctx context.Context, path string, content []byte) (Report, error) {
	if err := validateInput(content); err != nil {
		return nil, err
	}

	snapshot, err := c.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	var lintFindings []Finding
	if c.Lint != nil {
		lintFindings, err = c.Lint.CheckSnapshot(ctx, snapshot)
		if err != nil {
			return nil, err
		}
	}

	var spellFindings []Finding
	var dictErr error
	if c.Spelling != nil {
		spellFindings, err = c.Spelling.CheckSnapshot(ctx, snapshot)
		switch {
		case errors.Is(err, ErrDictionaryLoad):
			dictErr = err
		case err != nil:
			return nil, err
		}
	}

	report := Aggregate(spellFindings, lintFindings)

	logging.FromContext(ctx).Debug("document checked",
		logging.FieldPath, path,
		logging.FieldSpelling, len(spellFindings),
		logging.FieldLint, len(lintFindings),
	)

	return report, dictErr
}
