package dictionary

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/unicode/norm"
)

// maxDistance bounds the Damerau-Levenshtein distance of a suggestion.
const maxDistance = 2

// Suggest returns replacement candidates for word, best first. A known
// common misspelling correction leads, followed by close dictionary words
// ranked by edit distance, then frequency, then alphabetically. The casing
// of word is applied to every candidate.
func (d *Dictionary) Suggest(word string) []string {
	word = norm.NFC.String(word)
	lower := strings.ToLower(word)
	if lower == "" {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(candidate string) {
		if candidate == "" || candidate == lower {
			return
		}
		if _, dup := seen[candidate]; dup {
			return
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
	}

	if fixed, _ := d.replacer.Replace(lower); fixed != lower && !strings.ContainsAny(fixed, " -") {
		add(fixed)
	}

	for _, candidate := range d.rankCandidates(lower) {
		add(candidate)
	}

	return applyCase(word, out)
}

type rankedCandidate struct {
	word     string
	distance int
	freq     int
}

// rankCandidates orders the fuzzy model's candidates for a lower-case word.
func (d *Dictionary) rankCandidates(lower string) []string {
	raw := d.model.SpellCheckSuggestions(lower, candidatePool)

	ranked := make([]rankedCandidate, 0, len(raw))
	for _, candidate := range raw {
		dist := edlib.DamerauLevenshteinDistance(lower, candidate)
		if dist == 0 || dist > maxDistance {
			continue
		}
		ranked = append(ranked, rankedCandidate{
			word:     candidate,
			distance: dist,
			freq:     d.frequency(candidate),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.distance != b.distance {
			return a.distance < b.distance
		}
		if a.freq != b.freq {
			return a.freq > b.freq
		}
		return a.word < b.word
	})

	words := make([]string, len(ranked))
	for i, c := range ranked {
		words[i] = c.word
	}
	return words
}

// applyCase copies the casing pattern of word onto candidates: Title case
// and UPPER case are preserved, anything else is left lower-case.
func applyCase(word string, candidates []string) []string {
	switch {
	case isUpper(word) && utf8.RuneCountInString(word) > 1:
		for i, c := range candidates {
			candidates[i] = strings.ToUpper(c)
		}
	case isTitle(word):
		for i, c := range candidates {
			candidates[i] = title(c)
		}
	}
	return candidates
}

func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func isTitle(s string) bool {
	first, size := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(first) && strings.ToLower(s[size:]) == s[size:]
}

func title(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
