// Package langdetect guesses the language of a fenced code block so a missing
// info string can be reported together with a likely replacement.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no language can be guessed with confidence.
const Unknown = "text"

// classifierCandidates limits the enry classifier to languages commonly
// found in documentation.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "TOML", "HTML", "CSS", "Dockerfile",
}

// signature is a cheap textual marker that identifies a language outright.
type signature struct {
	lang  string
	match func(content, trimmed []byte) bool
}

// signatures are checked in order; the first match wins.
//
//nolint:gochecknoglobals // Read-only lookup table.
var signatures = []signature{
	{"go", func(_, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("package "))
	}},
	{"html", func(_, trimmed []byte) bool {
		lower := bytes.ToLower(trimmed)
		return bytes.HasPrefix(lower, []byte("<!doctype html")) || bytes.HasPrefix(lower, []byte("<html"))
	}},
	{"json", func(_, trimmed []byte) bool {
		return (bytes.HasPrefix(trimmed, []byte("{")) && bytes.HasSuffix(trimmed, []byte("}")) ||
			bytes.HasPrefix(trimmed, []byte("[")) && bytes.HasSuffix(trimmed, []byte("]"))) &&
			bytes.Contains(trimmed, []byte(`":`))
	}},
	{"dockerfile", func(_, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("FROM ")) && bytes.Contains(trimmed, []byte("\nRUN "))
	}},
	{"python", func(content, _ []byte) bool {
		s := string(content)
		return strings.Contains(s, "__name__") ||
			strings.Contains(s, "def ") && strings.Contains(s, "):")
	}},
	{"rust", func(content, _ []byte) bool {
		s := string(content)
		return strings.Contains(s, "fn main()") || strings.Contains(s, "println!")
	}},
	{"sql", func(_, trimmed []byte) bool {
		upper := strings.ToUpper(string(trimmed))
		return strings.HasPrefix(upper, "SELECT ") && strings.Contains(upper, " FROM ") ||
			strings.HasPrefix(upper, "CREATE TABLE ") ||
			strings.HasPrefix(upper, "INSERT INTO ")
	}},
	{"yaml", func(content, _ []byte) bool {
		return yamlPairs(content) >= 2
	}},
}

// Detect returns a fence tag for content and whether the guess is confident.
// Unconfident guesses return Unknown.
func Detect(content []byte) (string, bool) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return Unknown, false
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe && lang != "" {
		return FenceTag(lang), true
	}

	for _, sig := range signatures {
		if sig.match(content, trimmed) {
			return sig.lang, true
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return FenceTag(lang), true
	}

	return Unknown, false
}

// FenceTag converts a linguist language name to the tag conventionally
// written after a code fence.
func FenceTag(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	default:
		return strings.ToLower(strings.ReplaceAll(lang, " ", "-"))
	}
}

// yamlPairs counts lines that look like YAML mappings or sequence items.
func yamlPairs(content []byte) int {
	count := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
			continue
		}
		if bytes.Contains(line, []byte(": ")) && !bytes.ContainsAny(line, "(){;") && line[0] != '"' {
			count++
		}
	}
	return count
}
