package reporter

import (
	"fmt"
	"slices"
)

// Format names an output format.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatSARIF   Format = "sarif"
	FormatSummary Format = "summary"
)

//nolint:gochecknoglobals // read-only
var formats = []Format{FormatText, FormatJSON, FormatSARIF, FormatSummary}

// ParseFormat accepts a format name; the empty string means text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	if f := Format(s); f.IsValid() {
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q; valid formats: text, json, sarif, summary", s)
}

func (f Format) String() string { return string(f) }

// IsValid reports whether f is a supported format.
func (f Format) IsValid() bool { return slices.Contains(formats, f) }
