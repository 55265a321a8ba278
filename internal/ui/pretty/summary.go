package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/spellint/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 issues (8 spelling, 4 lint) in 3 files, 1 file failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	failed := ""
	if stats.FilesErrored > 0 {
		failed = ", " + s.Failure.Render(fmt.Sprintf("%d %s failed",
			stats.FilesErrored, plural(stats.FilesErrored, wordFile, wordFiles)))
	}

	if stats.FindingsTotal == 0 {
		return s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles))) +
			failed + "\n"
	}

	var breakdown []string
	if stats.SpellingFindings > 0 {
		breakdown = append(breakdown, s.Error.Render(fmt.Sprintf("%d spelling", stats.SpellingFindings)))
	}
	if stats.LintFindings > 0 {
		breakdown = append(breakdown, s.Warning.Render(fmt.Sprintf("%d lint", stats.LintFindings)))
	}

	line := fmt.Sprintf("%d %s", stats.FindingsTotal, plural(stats.FindingsTotal, "issue", "issues"))
	if len(breakdown) > 0 {
		line += " (" + strings.Join(breakdown, ", ") + ")"
	}
	line += fmt.Sprintf(" in %d %s", stats.FilesWithIssues, plural(stats.FilesWithIssues, wordFile, wordFiles))

	return line + failed + "\n"
}
