package dictionary

import "strings"

// minStem is the shortest stem accepted when stripping a suffix.
const minStem = 2

// suffixRule rewrites a word ending in suffix to candidate stems.
type suffixRule struct {
	suffix  string
	replace []string
	doubled bool // stem may end in a doubled consonant, as in "stopped"
}

//nolint:gochecknoglobals // Read-only suffix table.
var suffixRules = []suffixRule{
	{suffix: "ies", replace: []string{"y"}},
	{suffix: "es", replace: []string{"", "e"}},
	{suffix: "s", replace: []string{""}},
	{suffix: "ied", replace: []string{"y"}},
	{suffix: "ed", replace: []string{"", "e"}, doubled: true},
	{suffix: "ing", replace: []string{"", "e"}, doubled: true},
	{suffix: "ier", replace: []string{"y"}},
	{suffix: "er", replace: []string{"", "e"}, doubled: true},
	{suffix: "iest", replace: []string{"y"}},
	{suffix: "est", replace: []string{"", "e"}, doubled: true},
	{suffix: "ily", replace: []string{"y"}},
	{suffix: "ly", replace: []string{"", "le"}},
}

// stems returns the candidate stems of a lower-case word, most specific
// suffix first.
func stems(word string) []string {
	var out []string

	for _, rule := range suffixRules {
		base, ok := strings.CutSuffix(word, rule.suffix)
		if !ok || len(base) < minStem {
			continue
		}

		for _, tail := range rule.replace {
			out = append(out, base+tail)
		}

		if rule.doubled && hasDoubledConsonant(base) {
			out = append(out, base[:len(base)-1])
		}
	}

	return out
}

func hasDoubledConsonant(s string) bool {
	n := len(s)
	if n < 3 {
		return false
	}
	last := s[n-1]
	return last == s[n-2] && !strings.ContainsRune("aeiou", rune(last))
}
