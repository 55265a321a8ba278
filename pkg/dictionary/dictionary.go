// Package dictionary implements the English spelling oracle: a frequency
// word list with inflection handling, a trained fuzzy model for candidate
// generation and a table of common misspellings.
package dictionary

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/client9/misspell"
	"github.com/sajari/fuzzy"
	"golang.org/x/text/unicode/norm"
)

// LanguageEnglish is the only built-in language.
const LanguageEnglish = "en"

// Model tuning. Depth is the maximum edit distance explored for candidates.
const (
	modelDepth     = 2
	modelThreshold = 1
	personalCount  = 1
	candidatePool  = 25
)

var (
	// ErrUnsupportedLanguage is returned for a language without a word list.
	ErrUnsupportedLanguage = errors.New("unsupported dictionary language")

	// ErrWordList is returned when a word list cannot be read.
	ErrWordList = errors.New("cannot read word list")
)

//go:embed data/en.txt
var englishWords []byte

// Options configures Load.
type Options struct {
	// Language selects the built-in list. Empty means English.
	Language string

	// Words are accepted in addition to the built-in list.
	Words []string

	// Files are extra word lists, one word per line. Lines starting with
	// # are comments.
	Files []string
}

// Dictionary is a read-only spelling oracle. It is safe for concurrent use.
type Dictionary struct {
	freq     map[string]int
	personal map[string]struct{}
	model    *fuzzy.Model
	replacer *misspell.Replacer
}

// Supported reports whether lang has a built-in word list.
func Supported(lang string) bool {
	return lang == LanguageEnglish
}

// Load builds a Dictionary from the built-in list plus opts.
func Load(ctx context.Context, opts Options) (*Dictionary, error) {
	lang := opts.Language
	if lang == "" {
		lang = LanguageEnglish
	}
	if !Supported(lang) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, opts.Language)
	}

	dict := &Dictionary{
		freq:     make(map[string]int, 16384),
		personal: make(map[string]struct{}),
		replacer: misspell.New(),
	}

	if err := dict.readFrequencyList(bytes.NewReader(englishWords)); err != nil {
		return nil, fmt.Errorf("built-in %s list: %w", lang, err)
	}

	for _, path := range opts.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := dict.readWordFile(path); err != nil {
			return nil, err
		}
	}

	for _, word := range opts.Words {
		dict.addPersonal(word)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dict.train()
	return dict, nil
}

// Len returns the number of known words.
func (d *Dictionary) Len() int {
	return len(d.freq) + len(d.personal)
}

// readFrequencyList reads "word count" lines.
func (d *Dictionary) readFrequencyList(r *bytes.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word, countText, found := strings.Cut(line, " ")
		count := personalCount
		if found {
			n, err := strconv.Atoi(strings.TrimSpace(countText))
			if err != nil {
				return fmt.Errorf("%w: bad count in %q", ErrWordList, line)
			}
			count = n
		}
		d.freq[strings.ToLower(word)] += count
	}
	return scanner.Err()
}

// readWordFile reads a personal word list.
func (d *Dictionary) readWordFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWordList, path, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		d.addPersonal(strings.Fields(line)[0])
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWordList, path, err)
	}
	return nil
}

func (d *Dictionary) addPersonal(word string) {
	word = norm.NFC.String(strings.TrimSpace(word))
	if word == "" {
		return
	}
	d.personal[word] = struct{}{}
}

// train feeds every known word to the fuzzy model.
func (d *Dictionary) train() {
	model := fuzzy.NewModel()
	model.SetThreshold(modelThreshold)
	model.SetDepth(modelDepth)
	model.SetUseAutocomplete(false)

	for word, count := range d.freq {
		model.SetCount(word, count, true)
	}
	for word := range d.personal {
		lower := strings.ToLower(word)
		if _, ok := d.freq[lower]; !ok {
			model.SetCount(lower, personalCount, true)
		}
	}

	d.model = model
}

// IsCorrect reports whether word is known, either as written, lower-cased
// or as a regular inflection of a known stem.
func (d *Dictionary) IsCorrect(word string) bool {
	word = norm.NFC.String(word)
	if word == "" {
		return true
	}

	if d.known(word) {
		return true
	}

	lower := strings.ToLower(word)
	if d.known(lower) {
		return true
	}

	for _, stem := range stems(lower) {
		if d.known(stem) {
			return true
		}
	}
	return false
}

func (d *Dictionary) known(word string) bool {
	if _, ok := d.freq[word]; ok {
		return true
	}
	_, ok := d.personal[word]
	return ok
}

// frequency returns how common a lower-case word is.
func (d *Dictionary) frequency(word string) int {
	if n, ok := d.freq[word]; ok {
		return n
	}
	if _, ok := d.personal[word]; ok {
		return personalCount
	}
	return 0
}
