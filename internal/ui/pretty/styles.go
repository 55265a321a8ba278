// Package pretty renders terminal output with lipgloss.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ANSI 256 palette indices.
const (
	colorGray   = "8"
	colorRed    = "9"
	colorGreen  = "10"
	colorYellow = "11"
	colorBlue   = "12"
	colorWhite  = "7"
)

// Styles groups the lipgloss styles used by the text, summary and suggest output.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	FilePath   lipgloss.Style
	Location   lipgloss.Style
	Message    lipgloss.Style
	Suggestion lipgloss.Style
	Misspelled lipgloss.Style

	Success lipgloss.Style
	Failure lipgloss.Style

	// Summary tables.
	Header    lipgloss.Style
	Separator lipgloss.Style
	ErrorRow  lipgloss.Style
	WarnRow   lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles returns styles that emit ANSI sequences only when colorEnabled.
func NewStyles(colorEnabled bool) *Styles {
	base := lipgloss.NewStyle()
	if !colorEnabled {
		return &Styles{
			Error: base, Warning: base, Info: base,
			FilePath: base, Location: base, Message: base, Suggestion: base, Misspelled: base,
			Success: base, Failure: base,
			Header: base, Separator: base, ErrorRow: base, WarnRow: base,
			Dim: base, Bold: base,
		}
	}

	fg := func(c string) lipgloss.Style { return base.Foreground(lipgloss.Color(c)) }

	return &Styles{
		Error:   fg(colorRed).Bold(true),
		Warning: fg(colorYellow).Bold(true),
		Info:    fg(colorBlue).Bold(true),

		FilePath:   base.Bold(true),
		Location:   fg(colorGray),
		Message:    base,
		Suggestion: fg(colorGreen).Italic(true),
		Misspelled: fg(colorRed).Underline(true),

		Success: fg(colorGreen).Bold(true),
		Failure: fg(colorRed).Bold(true),

		Header:    fg(colorWhite).Bold(true),
		Separator: fg(colorGray),
		ErrorRow:  fg(colorRed),
		WarnRow:   fg(colorYellow),

		Dim:  fg(colorGray),
		Bold: base.Bold(true),
	}
}

// IsColorEnabled reports whether output to w should be colored.
// mode is "always", "never" or "auto"; anything else behaves as "auto",
// which requires a terminal and an unset NO_COLOR.
func IsColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
