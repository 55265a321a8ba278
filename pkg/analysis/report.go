// Package analysis aggregates a check run into the views the reporters
// render: a flat finding list plus per-file, per-rule and per-word rollups.
package analysis

import "time"

// SpellingRuleID is the group key shared by all spelling findings.
const SpellingRuleID = "spelling"

// Report is computed once per run by Analyze and shared by every renderer.
type Report struct {
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Totals    Totals    `json:"summary"`

	Findings []FindingEntry `json:"findings,omitempty"`
	ByFile   []FileAnalysis `json:"byFile,omitempty"`
	ByRule   []RuleAnalysis `json:"byRule,omitempty"`
	ByWord   []WordAnalysis `json:"byWord,omitempty"`

	// Errors are files that could not be checked at all.
	Errors []FileError `json:"errors,omitempty"`
}

// FindingEntry is one finding with its file and rule resolved.
type FindingEntry struct {
	FilePath    string   `json:"filePath"`
	Source      string   `json:"source"`
	RuleID      string   `json:"ruleId,omitempty"`
	RuleName    string   `json:"ruleName,omitempty"`
	Severity    string   `json:"severity"`
	Message     string   `json:"message"`
	Line        int      `json:"line"`
	Column      int      `json:"column"`
	Word        string   `json:"word,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type FileError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Totals are run-wide counts. Severity counts cover lint findings only.
type Totals struct {
	Files           int `json:"filesChecked"`
	FilesWithIssues int `json:"filesWithIssues"`
	FilesErrored    int `json:"filesErrored"`
	Issues          int `json:"totalIssues"`
	Spelling        int `json:"spelling"`
	Lint            int `json:"lint"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
	Infos           int `json:"infos"`
}

func (t Totals) HasIssues() bool { return t.Issues > 0 }

// HasErrors is true for any error-severity finding or unreadable file.
func (t Totals) HasErrors() bool { return t.Errors > 0 || t.FilesErrored > 0 }

// FileAnalysis rolls up one file. Files without findings are omitted.
type FileAnalysis struct {
	Path     string   `json:"path"`
	Issues   int      `json:"issues"`
	Spelling int      `json:"spelling"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Infos    int      `json:"infos"`
	Rules    []string `json:"rules,omitempty"`
}

// RuleAnalysis rolls up one lint rule, or all spelling findings under
// SpellingRuleID.
type RuleAnalysis struct {
	RuleID   string   `json:"ruleId"`
	RuleName string   `json:"ruleName"`
	Issues   int      `json:"issues"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Infos    int      `json:"infos"`
	Files    []string `json:"files,omitempty"`
}

// WordAnalysis rolls up one misspelled word. Suggestion is the first
// suggestion seen for it.
type WordAnalysis struct {
	Word       string   `json:"word"`
	Count      int      `json:"count"`
	Suggestion string   `json:"suggestion,omitempty"`
	Files      []string `json:"files,omitempty"`
}
