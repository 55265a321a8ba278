package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"

	"github.com/yaklabco/spellint/pkg/check"
	"github.com/yaklabco/spellint/pkg/runner"
)

// JSONOutput is the document the json format writes.
type JSONOutput struct {
	Version         string           `json:"version"`
	Files           []JSONFileResult `json:"files"`
	DictionaryError string           `json:"dictionaryError,omitempty"`
	Summary         JSONSummary      `json:"summary"`
}

// JSONFileResult is one file. Findings is never null, so consumers can
// iterate it without a check.
type JSONFileResult struct {
	Path     string          `json:"path"`
	Findings []check.Finding `json:"findings"`
	Error    string          `json:"error,omitempty"`
}

type JSONSummary struct {
	FilesChecked     int            `json:"filesChecked"`
	FilesWithIssues  int            `json:"filesWithIssues"`
	FilesErrored     int            `json:"filesErrored"`
	TotalIssues      int            `json:"totalIssues"`
	SpellingFindings int            `json:"spelling"`
	LintFindings     int            `json:"lint"`
	BySeverity       map[string]int `json:"bySeverity"`
}

// JSONReporter writes one JSONOutput document per run.
type JSONReporter struct {
	opts Options
}

func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	out := r.document(result)
	if err := encodeJSON(r.opts.Writer, out, r.opts.Compact); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}
	return out.Summary.TotalIssues, nil
}

func (r *JSONReporter) document(result *runner.Result) *JSONOutput {
	out := &JSONOutput{
		Version: r.opts.ToolVersion,
		Files:   []JSONFileResult{},
		Summary: JSONSummary{BySeverity: map[string]int{}},
	}
	if result == nil {
		return out
	}

	if result.DictionaryError != nil {
		out.DictionaryError = result.DictionaryError.Error()
	}
	for _, f := range result.Files {
		entry := JSONFileResult{Path: f.DisplayPath, Findings: append([]check.Finding{}, f.Report...)}
		if f.Error != nil {
			entry.Error = f.Error.Error()
		}
		out.Files = append(out.Files, entry)
	}

	s := result.Stats
	out.Summary = JSONSummary{
		FilesChecked:     s.FilesProcessed,
		FilesWithIssues:  s.FilesWithIssues,
		FilesErrored:     s.FilesErrored,
		TotalIssues:      s.FindingsTotal,
		SpellingFindings: s.SpellingFindings,
		LintFindings:     s.LintFindings,
		BySeverity:       map[string]int{},
	}
	maps.Copy(out.Summary.BySeverity, s.FindingsBySeverity)
	return out
}

// encodeJSON writes v through a buffer, indented unless compact.
func encodeJSON(w io.Writer, v any, compact bool) error {
	bw := bufio.NewWriterSize(w, bufWriterSize)
	enc := json.NewEncoder(bw)
	if !compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return err
	}
	return bw.Flush()
}
