package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/spellint/pkg/check"
	"github.com/yaklabco/spellint/pkg/config"
)

// FormatFileHeader formats the header that opens a file's findings:
// a blank line, then the path followed by a colon.
func (s *Styles) FormatFileHeader(path string) string {
	return "\n" + s.FilePath.Render(path) + ":\n"
}

// FormatFinding formats one finding as
//
//	  Line X, Col Y: message
//	    Suggestions: a, b
//
// The suggestions line is omitted when there are none.
func (s *Styles) FormatFinding(f check.Finding) string {
	var builder strings.Builder

	location := s.Location.Render(fmt.Sprintf("Line %d, Col %d:", f.Line, f.Column))
	builder.WriteString("  " + location + " " + s.formatMessage(f) + "\n")

	if len(f.Suggestions) > 0 {
		builder.WriteString("    " + s.Dim.Render("Suggestions:") + " " +
			s.Suggestion.Render(strings.Join(f.Suggestions, ", ")) + "\n")
	}

	return builder.String()
}

// formatMessage highlights the quoted word of a spelling message.
func (s *Styles) formatMessage(f check.Finding) string {
	if f.Source != check.SourceSpelling || f.Word == "" {
		return s.Message.Render(f.Message)
	}
	quoted := strconv.Quote(f.Word)
	before, after, found := strings.Cut(f.Message, quoted)
	if !found {
		return s.Message.Render(f.Message)
	}
	return s.Message.Render(before) + s.Misspelled.Render(quoted) + s.Message.Render(after)
}

// FormatFileError formats a document that could not be checked.
func (s *Styles) FormatFileError(path string, err error) string {
	return s.Error.Render("Error processing "+path+":") + " " + err.Error() + "\n"
}

// FormatDictionaryError formats the shared dictionary failure of a run.
func (s *Styles) FormatDictionaryError(err error) string {
	return s.Error.Render("Error loading dictionary:") + " " + err.Error() + "\n"
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}
