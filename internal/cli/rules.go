package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/spellint/internal/logging"
	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/lint"
)

const formatJSON = "json"

type rulesFlags struct {
	ruleFormat string
	format     string
}

// ruleInfo is one element of `rules --format json`.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases,omitempty"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Enabled     bool     `json:"enabled"`
	Tags        []string `json:"tags,omitempty"`
}

func describeRule(r lint.Rule) ruleInfo {
	return ruleInfo{
		ID:          r.ID(),
		Name:        r.Name(),
		Aliases:     r.Aliases(),
		Description: r.Description(),
		Severity:    string(r.DefaultSeverity()),
		Enabled:     r.DefaultEnabled(),
		Tags:        r.Tags(),
	}
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the structural lint rules",
		Long: `Print every lint rule with its default severity and whether it runs
without configuration. A rule can be named by ID, name or alias in config
files and in --enable and --disable.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := lint.DefaultRegistry.Rules()
			out := cmd.OutOrStdout()
			if flags.format == formatJSON {
				return outputRulesJSON(out, all)
			}
			if flags.format != "" && flags.format != "text" {
				return withExitCode(ExitInvalidUsage,
					fmt.Errorf("invalid format %q: must be text or json", flags.format))
			}
			outputRulesText(out, all, config.RuleFormat(flags.ruleFormat))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.ruleFormat, "rule-format", string(config.RuleFormatCombined),
		"how to print rule identifiers: name, id, or combined")
	f.StringVar(&flags.format, "format", "text", "output format: text or json")
	return cmd
}

// outputRulesText prints one logfmt-style line per rule.
func outputRulesText(w io.Writer, all []lint.Rule, ruleFormat config.RuleFormat) {
	logger := log.NewWithOptions(w, log.Options{Level: log.InfoLevel})
	for _, r := range all {
		info := describeRule(r)
		on := "no"
		if info.Enabled {
			on = "yes"
		}
		logger.Info(config.FormatRuleID(ruleFormat, info.ID, info.Name),
			logging.FieldSeverity, info.Severity,
			logging.FieldEnabled, on,
			logging.FieldDescription, info.Description)
	}
}

func outputRulesJSON(w io.Writer, all []lint.Rule) error {
	infos := make([]ruleInfo, len(all))
	for i, r := range all {
		infos[i] = describeRule(r)
	}
	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
