// Package check runs the spelling and structural lint passes over a Markdown
// document and merges their findings into one ordered report.
package check

import "fmt"

// Source identifies which pass produced a finding.
type Source int

const (
	// SourceLint marks a structural lint finding.
	SourceLint Source = iota
	// SourceSpelling marks a spelling finding.
	SourceSpelling
)

// String returns the JSON name of the source.
func (s Source) String() string {
	switch s {
	case SourceLint:
		return "lint"
	case SourceSpelling:
		return "spelling"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// MarshalText encodes the source by name.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a source name.
func (s *Source) UnmarshalText(text []byte) error {
	switch string(text) {
	case "lint":
		*s = SourceLint
	case "spelling":
		*s = SourceSpelling
	default:
		return fmt.Errorf("unknown finding source %q", text)
	}
	return nil
}

// Finding is one reportable issue at a 1-based line and rune column.
// Spelling findings carry Word and Suggestions; lint findings carry RuleID.
type Finding struct {
	Line        int      `json:"line"`
	Column      int      `json:"column"`
	Message     string   `json:"message"`
	Source      Source   `json:"source"`
	RuleID      string   `json:"ruleId,omitempty"`
	Severity    string   `json:"severity,omitempty"`
	Word        string   `json:"word,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Report is the ordered list of findings for one document.
type Report []Finding

// Clean reports whether the document has no findings.
func (r Report) Clean() bool {
	return len(r) == 0
}

// Count returns the number of findings from src.
func (r Report) Count(src Source) int {
	n := 0
	for _, f := range r {
		if f.Source == src {
			n++
		}
	}
	return n
}
