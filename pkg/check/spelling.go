package check

import (
	"context"
	"fmt"

	"github.com/yaklabco/spellint/internal/logging"
	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/lint"
	"github.com/yaklabco/spellint/pkg/mdast"
	"github.com/yaklabco/spellint/pkg/spell"
)

// SpellPass checks the prose of a document against the shared oracle.
// It is safe for concurrent use when its Parser is.
type SpellPass struct {
	// Parser turns content into a tree. Required for CheckSpelling.
	Parser lint.Parser

	// Provider supplies the oracle. Every document waits for the same load.
	Provider *spell.Provider

	// MaxSuggestions caps the suggestions on each finding. Zero attaches none.
	MaxSuggestions int

	// IgnoreNumbers skips tokens without letters.
	IgnoreNumbers bool

	// MinLength skips tokens shorter than this many runes.
	MinLength int

	// Extract controls segment extraction.
	Extract spell.ExtractOptions
}

// NewSpellPass returns a SpellPass with the default policy.
func NewSpellPass(parser lint.Parser, provider *spell.Provider) *SpellPass {
	return &SpellPass{
		Parser:         parser,
		Provider:       provider,
		MaxSuggestions: config.DefaultMaxSuggestions,
		IgnoreNumbers:  true,
		MinLength:      config.DefaultMinLength,
		Extract:        spell.DefaultExtractOptions(),
	}
}

// NewSpellPassFromConfig applies the spelling section of cfg.
func NewSpellPassFromConfig(parser lint.Parser, provider *spell.Provider, cfg *config.Config) *SpellPass {
	pass := NewSpellPass(parser, provider)
	if cfg == nil {
		return pass
	}
	pass.MaxSuggestions = cfg.Spelling.MaxSuggestionsOrDefault()
	pass.IgnoreNumbers = cfg.Spelling.IgnoreNumbersOrDefault()
	pass.MinLength = cfg.Spelling.MinLengthOrDefault()
	pass.Extract.SkipUnpositioned = cfg.Spelling.SkipUnpositionedOrDefault()
	return pass
}

// CheckSpelling parses content and returns one finding per misspelled word
// occurrence, in document order.
func (p *SpellPass) CheckSpelling(ctx context.Context, content []byte) ([]Finding, error) {
	if err := validateInput(content); err != nil {
		return nil, err
	}

	snapshot, err := p.Parser.Parse(ctx, "", content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	return p.CheckSnapshot(ctx, snapshot)
}

// CheckSnapshot runs the pass over an already parsed document.
func (p *SpellPass) CheckSnapshot(ctx context.Context, snapshot *mdast.FileSnapshot) ([]Finding, error) {
	if snapshot == nil || snapshot.Root == nil {
		return nil, fmt.Errorf("%w: document has no tree", ErrParseFailure)
	}

	segments, err := spell.ExtractTextSegments(snapshot.Root, p.Extract)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	oracle, err := p.Provider.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDictionaryLoad, err)
	}

	var findings []Finding
	words := 0

	for _, seg := range segments {
		for _, occ := range spell.LocateWords(seg) {
			if !p.checkable(occ.Word) {
				continue
			}
			words++
			if oracle.IsCorrect(occ.Word) {
				continue
			}
			findings = append(findings, Finding{
				Line:        occ.Position.Line,
				Column:      occ.Position.Column,
				Message:     fmt.Sprintf("Spelling error: %q", occ.Word),
				Source:      SourceSpelling,
				Word:        occ.Word,
				Suggestions: p.truncate(oracle.Suggest(occ.Word)),
			})
		}
	}

	logging.FromContext(ctx).Debug("spelling pass finished",
		logging.FieldPath, snapshot.Path,
		logging.FieldSegments, len(segments),
		logging.FieldWords, words,
		logging.FieldSpelling, len(findings),
	)

	return findings, nil
}

func (p *SpellPass) checkable(word string) bool {
	if p.IgnoreNumbers && spell.IsNumeric(word) {
		return false
	}
	return spell.RuneLen(word) >= p.MinLength
}

func (p *SpellPass) truncate(suggestions []string) []string {
	if p.MaxSuggestions <= 0 || len(suggestions) == 0 {
		return nil
	}
	if len(suggestions) > p.MaxSuggestions {
		suggestions = suggestions[:p.MaxSuggestions]
	}
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}
