package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/spellint/internal/ui/pretty"
	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/spell"
)

type suggestFlags struct {
	maxSuggestions int
	words          []string
}

func newSuggestCommand() *cobra.Command {
	flags := &suggestFlags{}

	cmd := &cobra.Command{
		Use:   "suggest WORD...",
		Short: "Look words up in the dictionary",
		Long: `Report whether each word is spelled correctly and, if not, list
suggested corrections best first. The dictionary honors the same
configuration and word lists as "spellint check". Exits 1 when any word
is misspelled.

Examples:
  spellint suggest recieve
  spellint suggest --words .wordlist.txt kubectl`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.maxSuggestions, "max-suggestions", config.DefaultMaxSuggestions,
		"maximum suggestions per word")
	cmd.Flags().StringArrayVar(&flags.words, "words", nil, "word list file to accept (repeatable)")

	return cmd
}

func runSuggest(cmd *cobra.Command, words []string, flags *suggestFlags) error {
	ctx := commandContext(cmd)

	workDir, err := workingDir()
	if err != nil {
		return err
	}

	cfg, err := loadConfiguration(ctx, cmd, workDir, &config.Config{})
	if err != nil {
		return err
	}
	cfg.Spelling.Dictionaries = append(cfg.Spelling.Dictionaries, flags.words...)

	oracle, err := newProvider(cfg).Get(ctx)
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("load dictionary: %w", err))
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	misspelled := 0
	for _, word := range words {
		if !writeSuggestion(out, styles, oracle, word, flags.maxSuggestions) {
			misspelled++
		}
	}

	if misspelled > 0 {
		return ErrFindings
	}
	return nil
}

// writeSuggestion prints the verdict for word and reports whether it is correct.
func writeSuggestion(w io.Writer, styles *pretty.Styles, oracle spell.Oracle, word string, limit int) bool {
	if oracle.IsCorrect(word) {
		fmt.Fprintf(w, "%s: %s\n", styles.Bold.Render(word), styles.Success.Render("correct"))
		return true
	}

	fmt.Fprintf(w, "%s: %s\n", styles.Bold.Render(word), styles.Error.Render("misspelled"))

	suggestions := oracle.Suggest(word)
	if limit >= 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	if len(suggestions) > 0 {
		fmt.Fprintf(w, "    %s %s\n", styles.Dim.Render("Suggestions:"),
			styles.Suggestion.Render(strings.Join(suggestions, ", ")))
	}
	return false
}
