package runner

import (
	"path/filepath"

	"github.com/yaklabco/spellint/pkg/check"
)

// FileOutcome is the result of checking one file.
type FileOutcome struct {
	// Path is the absolute file path.
	Path string

	// DisplayPath is Path relative to the working directory when it lies
	// inside it, otherwise Path.
	DisplayPath string

	// Report holds the findings. It is nil when Error is set.
	Report check.Report

	// Error is set if the file could not be checked.
	Error error
}

// Failed reports whether the file has an error or any finding.
func (o FileOutcome) Failed() bool {
	return o.Error != nil || !o.Report.Clean()
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered  int
	FilesProcessed   int
	FilesErrored     int
	FilesWithIssues  int
	FindingsTotal    int
	SpellingFindings int
	LintFindings     int

	// FindingsBySeverity counts lint findings per severity.
	FindingsBySeverity map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files are ordered by path.
	Files []FileOutcome

	Stats Stats

	// DictionaryError is the shared oracle failure, if the dictionary could
	// not be loaded. Files then carry lint findings only.
	DictionaryError error
}

// Clean reports whether every file was checked without errors or findings.
func (r *Result) Clean() bool {
	if r == nil {
		return true
	}
	return r.DictionaryError == nil && r.Stats.FilesErrored == 0 && r.Stats.FindingsTotal == 0
}

func newStats() Stats {
	return Stats{FindingsBySeverity: make(map[string]int)}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.FindingsTotal += len(outcome.Report)
	if len(outcome.Report) > 0 {
		r.Stats.FilesWithIssues++
	}

	for _, f := range outcome.Report {
		switch f.Source {
		case check.SourceSpelling:
			r.Stats.SpellingFindings++
		case check.SourceLint:
			r.Stats.LintFindings++
			severity := f.Severity
			if severity == "" {
				severity = "warning"
			}
			r.Stats.FindingsBySeverity[severity]++
		}
	}
}

func displayPath(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil || !filepath.IsLocal(rel) {
		return path
	}
	return rel
}
