package check_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/spellint/pkg/check"
	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/lint"
	"github.com/yaklabco/spellint/pkg/parser/goldmark"
	"github.com/yaklabco/spellint/pkg/spell"
)

// wordOracle accepts the listed words in any case and suggests from a fixed table.
type wordOracle struct {
	known       map[string]bool
	suggestions map[string][]string
}

func newWordOracle(words string, suggestions map[string][]string) *wordOracle {
	known := make(map[string]bool)
	for _, w := range strings.Fields(words) {
		known[strings.ToLower(w)] = true
	}
	return &wordOracle{known: known, suggestions: suggestions}
}

func (o *wordOracle) IsCorrect(word string) bool {
	return o.known[strings.ToLower(word)]
}

func (o *wordOracle) Suggest(word string) []string {
	return o.suggestions[strings.ToLower(word)]
}

func testOracle() *wordOracle {
	return newWordOracle(
		"title this is and a cat dog all good here the quick brown fox jumps over lazy",
		map[string][]string{
			"mispelled": {"misspelled", "dispelled", "spelled", "misapplied", "misspell", "respelled"},
			"wrod":      {"word", "rod", "trod"},
			"teh":       {"the", "ten"},
		},
	)
}

func spellOnly(oracle spell.Oracle) *check.Checker {
	cfg := config.NewConfig()
	cfg.Lint.Enabled = new(bool)
	return check.NewChecker(cfg, spell.NewStaticProvider(oracle))
}

func TestChecker_Scenario(t *testing.T) {
	t.Parallel()

	content := "# Title\n\nThis is `code` and a *mispelled* wrod.\n"

	report, err := spellOnly(testOracle()).Check(context.Background(), "doc.md", []byte(content))
	require.NoError(t, err)
	require.Len(t, report, 2)

	assert.Equal(t, "mispelled", report[0].Word)
	assert.Equal(t, 3, report[0].Line)
	assert.Equal(t, 23, report[0].Column)
	assert.Equal(t, `Spelling error: "mispelled"`, report[0].Message)
	assert.Equal(t, check.SourceSpelling, report[0].Source)
	assert.Len(t, report[0].Suggestions, config.DefaultMaxSuggestions)
	assert.Equal(t, "misspelled", report[0].Suggestions[0])

	assert.Equal(t, "wrod", report[1].Word)
	assert.Equal(t, 3, report[1].Line)
	assert.Equal(t, 34, report[1].Column)
	assert.Equal(t, []string{"word", "rod", "trod"}, report[1].Suggestions)

	for _, f := range report {
		assert.NotEqual(t, "code", f.Word)
	}
}

func TestSpellPass_RepeatedWordColumns(t *testing.T) {
	t.Parallel()

	pass := check.NewSpellPass(goldmark.New(goldmark.FlavorCommonMark), spell.NewStaticProvider(testOracle()))

	findings, err := pass.CheckSpelling(context.Background(), []byte("teh cat teh dog teh\n"))
	require.NoError(t, err)
	require.Len(t, findings, 3)

	cols := make([]int, 0, len(findings))
	for _, f := range findings {
		assert.Equal(t, "teh", f.Word)
		assert.Equal(t, 1, f.Line)
		cols = append(cols, f.Column)
	}
	assert.Equal(t, []int{1, 9, 17}, cols)
}

func TestSpellPass_Policy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		configure func(p *check.SpellPass)
		content   string
		wantWords []string
	}{
		{
			name:      "numbers ignored by default",
			content:   "The 2024 fox\n",
			wantWords: nil,
		},
		{
			name:      "numbers checked when enabled",
			configure: func(p *check.SpellPass) { p.IgnoreNumbers = false },
			content:   "The 2024 fox\n",
			wantWords: []string{"2024"},
		},
		{
			name:      "short tokens skipped",
			configure: func(p *check.SpellPass) { p.MinLength = 4 },
			content:   "The zq fox wrod\n",
			wantWords: []string{"wrod"},
		},
		{
			name:      "misspelling inside list item",
			content:   "- the wrod\n",
			wantWords: []string{"wrod"},
		},
		{
			name:      "fenced code is not checked",
			content:   "```\nwrod teh\n```\n",
			wantWords: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pass := check.NewSpellPass(goldmark.New(goldmark.FlavorCommonMark), spell.NewStaticProvider(testOracle()))
			if tt.configure != nil {
				tt.configure(pass)
			}

			findings, err := pass.CheckSpelling(context.Background(), []byte(tt.content))
			require.NoError(t, err)

			var words []string
			for _, f := range findings {
				words = append(words, f.Word)
			}
			assert.Equal(t, tt.wantWords, words)
		})
	}
}

func TestSpellPass_SuggestionCap(t *testing.T) {
	t.Parallel()

	pass := check.NewSpellPass(goldmark.New(goldmark.FlavorCommonMark), spell.NewStaticProvider(testOracle()))
	pass.MaxSuggestions = 2

	findings, err := pass.CheckSpelling(context.Background(), []byte("mispelled\n"))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, []string{"misspelled", "dispelled"}, findings[0].Suggestions)

	pass.MaxSuggestions = 0
	findings, err = pass.CheckSpelling(context.Background(), []byte("mispelled\n"))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Nil(t, findings[0].Suggestions)
}

func TestSpellPass_MultiLineParagraph(t *testing.T) {
	t.Parallel()

	pass := check.NewSpellPass(goldmark.New(goldmark.FlavorCommonMark), spell.NewStaticProvider(testOracle()))

	content := "# Title\n\nthe cat\nthe wrod\n"
	findings, err := pass.CheckSpelling(context.Background(), []byte(content))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, 4, findings[0].Line)
	assert.Equal(t, 5, findings[0].Column)
}

func TestChecker_CleanDocument(t *testing.T) {
	t.Parallel()

	checker := check.NewChecker(config.NewConfig(), spell.NewStaticProvider(testOracle()))

	report, err := checker.Check(context.Background(), "clean.md", []byte("# Title\n\nAll good here.\n"))
	require.NoError(t, err)
	assert.True(t, report.Clean())
	assert.Empty(t, report)
}

func TestChecker_EverydayProse(t *testing.T) {
	t.Parallel()

	content := `# Weekend plans

After dinner we talked about whether yesterday's weather would improve
tomorrow. My sister bought fresh bread, cheese and tea for breakfast before
her shift at the hospital.

She is reading a novel about a piano teacher who carries an old camera
everywhere. We booked a hotel near the airport, checked our emails online
and watched a movie on television. I don't think it's too late to visit
the museum, but we couldn't find the tickets.
`

	checker := check.NewChecker(config.NewConfig(), spell.Default())

	report, err := checker.Check(context.Background(), "plans.md", []byte(content))
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestChecker_Idempotent(t *testing.T) {
	t.Parallel()

	checker := check.NewChecker(config.NewConfig(), spell.NewStaticProvider(testOracle()))
	content := []byte("#Title\n\nteh   \n\n\n- wrod\n")

	first, err := checker.Check(context.Background(), "doc.md", content)
	require.NoError(t, err)
	second, err := checker.Check(context.Background(), "doc.md", content)
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestChecker_OrderingInvariant(t *testing.T) {
	t.Parallel()

	checker := check.NewChecker(config.NewConfig(), spell.NewStaticProvider(testOracle()))
	content := []byte("#Title\n\nteh cat teh   \n\n\n\nwrod <b>wrod</b>\n")

	report, err := checker.Check(context.Background(), "doc.md", content)
	require.NoError(t, err)
	require.NotEmpty(t, report)
	assert.Positive(t, report.Count(check.SourceLint))
	assert.Positive(t, report.Count(check.SourceSpelling))

	for i := 1; i < len(report); i++ {
		prev, cur := report[i-1], report[i]
		if prev.Line == cur.Line {
			assert.LessOrEqual(t, prev.Column, cur.Column)
			if prev.Column == cur.Column {
				assert.False(t, prev.Source == check.SourceSpelling && cur.Source == check.SourceLint)
			}
			continue
		}
		assert.Less(t, prev.Line, cur.Line)
	}
}

func TestChecker_Errors(t *testing.T) {
	t.Parallel()

	failing := spell.NewProvider(func(context.Context) (spell.Oracle, error) {
		return nil, errors.New("word list missing")
	})

	tests := []struct {
		name     string
		provider *spell.Provider
		content  string
		wantErr  error
	}{
		{name: "NUL byte", provider: spell.NewStaticProvider(testOracle()), content: "bad\x00input", wantErr: check.ErrInvalidInput},
		{name: "invalid UTF-8", provider: spell.NewStaticProvider(testOracle()), content: "bad \xff\xfe input\n", wantErr: check.ErrParseFailure},
		{name: "dictionary failure", provider: failing, content: "# Title\n\nthe cat\n", wantErr: check.ErrDictionaryLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			checker := check.NewChecker(config.NewConfig(), tt.provider)
			_, err := checker.Check(context.Background(), "doc.md", []byte(tt.content))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestChecker_DictionaryFailureKeepsLintFindings(t *testing.T) {
	t.Parallel()

	failing := spell.NewProvider(func(context.Context) (spell.Oracle, error) {
		return nil, errors.New("word list missing")
	})
	checker := check.NewChecker(config.NewConfig(), failing)

	report, err := checker.Check(context.Background(), "doc.md", []byte("#Title\n"))
	require.ErrorIs(t, err, check.ErrDictionaryLoad)
	require.NotEmpty(t, report)
	assert.Equal(t, "MD018", report[0].RuleID)
}

type brokenRule struct {
	lint.BaseRule
}

func (r *brokenRule) Apply(*lint.RuleContext) ([]lint.Diagnostic, error) {
	return nil, errors.New("boom")
}

func TestLintPass_RuleFailure(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(&brokenRule{BaseRule: lint.NewBaseRule("XX001", "broken", "Always fails", nil)})

	pass := check.NewLintPass(lint.NewEngine(goldmark.New(goldmark.FlavorCommonMark), registry), nil)

	_, err := pass.LintMarkdown(context.Background(), []byte("# Title\n"))
	require.ErrorIs(t, err, check.ErrLintFailure)
	assert.Contains(t, err.Error(), "XX001")
}

func TestLintPass_Message(t *testing.T) {
	t.Parallel()

	pass := check.NewLintPass(lint.NewEngine(goldmark.New(goldmark.FlavorCommonMark), lint.DefaultRegistry), nil)

	findings, err := pass.LintMarkdown(context.Background(), []byte("# Title\n\ntrailing   \n"))
	require.NoError(t, err)
	require.Len(t, findings, 1)

	f := findings[0]
	assert.Equal(t, check.SourceLint, f.Source)
	assert.Equal(t, "MD009", f.RuleID)
	assert.Equal(t, 3, f.Line)
	assert.Equal(t, 9, f.Column)
	assert.Equal(t, "Linting error [MD009, no-trailing-spaces]: Trailing spaces [Expected: 0 or 2; Actual: 3]", f.Message)
	assert.Empty(t, f.Suggestions)
}

func TestFromViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   lint.Violation
		want check.Finding
	}{
		{
			name: "column defaults to one",
			in:   lint.Violation{Line: 4, RuleIDs: []string{"MD047", "single-trailing-newline"}, Description: "Files should end with a single newline character"},
			want: check.Finding{
				Line:    4,
				Column:  1,
				Message: "Linting error [MD047, single-trailing-newline]: Files should end with a single newline character",
				Source:  check.SourceLint,
				RuleID:  "MD047",
			},
		},
		{
			name: "detail appended",
			in:   lint.Violation{Line: 2, Column: 7, RuleIDs: []string{"MD033", "no-inline-html"}, Description: "Inline HTML", Detail: "Element: b"},
			want: check.Finding{
				Line:    2,
				Column:  7,
				Message: "Linting error [MD033, no-inline-html]: Inline HTML [Element: b]",
				Source:  check.SourceLint,
				RuleID:  "MD033",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, check.FromViolation(tt.in))
		})
	}
}
