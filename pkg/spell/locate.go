package spell

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/spellint/pkg/mdast"
)

// WordOccurrence is one word token at its position in the document.
type WordOccurrence struct {
	Word     string
	Position mdast.Position
}

// LocateWords returns every word in seg in scan order.
//
// The first physical line starts at seg.Start.Column; every later line starts
// at column 1. Columns count runes and each match resumes scanning after the
// previous one, so repeated tokens on one line get their own columns.
func LocateWords(seg TextSegment) []WordOccurrence {
	var words []WordOccurrence

	for idx, line := range strings.Split(seg.Text, "\n") {
		lineNo := seg.Start.Line + idx
		column := 1
		if idx == 0 {
			column = seg.Start.Column
		}
		words = appendLineWords(words, line, lineNo, column)
	}

	return words
}

// appendLineWords scans one physical line. column is the document column of
// the line's first rune.
func appendLineWords(words []WordOccurrence, line string, lineNo, column int) []WordOccurrence {
	runeOffset := 0
	wordStart, wordRune := -1, 0

	flush := func(end int) {
		if wordStart < 0 {
			return
		}
		words = append(words, WordOccurrence{
			Word:     line[wordStart:end],
			Position: mdast.Position{Line: lineNo, Column: column + wordRune},
		})
		wordStart = -1
	}

	for pos, r := range line {
		if IsWordRune(r) {
			if wordStart < 0 {
				wordStart, wordRune = pos, runeOffset
			}
		} else {
			flush(pos)
		}
		runeOffset++
	}
	flush(len(line))

	return words
}

// IsWordRune reports whether r may appear in a word: a letter, a digit or an
// underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsNumeric reports whether word holds no letters.
func IsNumeric(word string) bool {
	for _, r := range word {
		if unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// RuneLen returns the number of characters in word.
func RuneLen(word string) int {
	return utf8.RuneCountInString(word)
}
