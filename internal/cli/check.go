package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/spellint/internal/logging"
	"github.com/yaklabco/spellint/pkg/check"
	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/lint"
	"github.com/yaklabco/spellint/pkg/reporter"
	"github.com/yaklabco/spellint/pkg/runner"
)

type checkFlags struct {
	format         string
	flavor         string
	language       string
	ignore         []string
	enable         []string
	disable        []string
	words          []string
	maxSuggestions int
	jobs           int
	noSpell        bool
	noLint         bool
	compact        bool
	stats          bool
	followLinks    bool
	ruleFormat     string
}

func newCheckCommand(info BuildInfo) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check Markdown files for spelling and formatting issues",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags, info)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Check Markdown files for spelling and formatting issues.

With no arguments the current directory is searched recursively for .md
files; hidden directories are skipped. A file argument must end in .md.

Exit codes: 0 clean, 1 findings or unreadable documents, 64 invalid usage,
65 configuration error, 70 internal error, 74 I/O error.

Examples:
  spellint                          # Check the current directory
  spellint docs/ README.md          # Check a directory and a file
  spellint --no-lint                # Spelling only
  spellint --words .wordlist.txt    # Accept the words in a personal list
  spellint --format json            # Machine-readable output for CI
  spellint --disable MD013,MD041    # Turn rules off by ID or name`

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, sarif, summary")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "commonmark", "Markdown flavor: commonmark, gfm")
	cmd.Flags().StringVar(&flags.language, "language", config.DefaultLanguage, "dictionary language")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = number of CPUs)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore (supports **)")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rules to enable, by ID, name or alias")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rules to disable, by ID, name or alias")
	cmd.Flags().StringArrayVar(&flags.words, "words", nil, "word list file to accept (repeatable)")
	cmd.Flags().IntVar(&flags.maxSuggestions, "max-suggestions", config.DefaultMaxSuggestions,
		"maximum suggestions per misspelled word")
	cmd.Flags().BoolVar(&flags.noSpell, "no-spell", false, "skip the spelling pass")
	cmd.Flags().BoolVar(&flags.noLint, "no-lint", false, "skip the structural lint pass")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minify json and sarif output")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "print a one-line summary after text output")
	cmd.Flags().BoolVar(&flags.followLinks, "follow-symlinks", false, "descend into symlinked directories")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in summary output: name, id, or combined")
}

// cliConfig returns the configuration layer set by flags given on the
// command line. Flags left at their defaults do not override config files.
func (f *checkFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}
	if changed("flavor") {
		cfg.Flavor = config.Flavor(f.flavor)
	}
	if changed("language") {
		cfg.Spelling.Language = f.language
	}
	if changed("jobs") {
		cfg.Jobs = f.jobs
	}
	if changed("ignore") {
		cfg.Ignore = f.ignore
	}
	if changed("enable") {
		cfg.EnableRules = f.enable
	}
	if changed("disable") {
		cfg.DisableRules = f.disable
	}
	if changed("max-suggestions") {
		n := f.maxSuggestions
		cfg.Spelling.MaxSuggestions = &n
	}
	if changed("no-spell") {
		enabled := !f.noSpell
		cfg.Spelling.Enabled = &enabled
	}
	if changed("no-lint") {
		enabled := !f.noLint
		cfg.Lint.Enabled = &enabled
	}
	if changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(f.ruleFormat)
	}

	return cfg
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags, info BuildInfo) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	workDir, err := workingDir()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("format") {
		if _, err := reporter.ParseFormat(flags.format); err != nil {
			return withExitCode(ExitInvalidUsage, err)
		}
	}

	cfg, err := loadConfiguration(ctx, cmd, workDir, flags.cliConfig(cmd))
	if err != nil {
		return err
	}
	// Word lists from flags add to those in config files.
	cfg.Spelling.Dictionaries = append(cfg.Spelling.Dictionaries, flags.words...)

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return withExitCode(ExitInvalidUsage, err)
	}

	logger.Debug("configuration resolved",
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldLanguage, cfg.Spelling.LanguageOrDefault(),
		logging.FieldSpelling, cfg.SpellingEnabled(),
		logging.FieldLint, cfg.LintEnabled(),
		logging.FieldJobs, cfg.Jobs,
	)

	provider := newProvider(cfg)
	if !cfg.SpellingEnabled() {
		provider = nil
	}
	checker := check.NewChecker(cfg, provider)

	runOpts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		Extensions:     runner.DefaultExtensions(),
		ExcludeGlobs:   cfg.Ignore,
		FollowSymlinks: flags.followLinks,
		Jobs:           cfg.Jobs,
		Config:         cfg,
	}

	logger.Debug("starting run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New(checker, provider).Run(ctx, runOpts)
	if err != nil {
		switch {
		case errors.Is(err, runner.ErrNotMarkdown):
			return withExitCode(ExitInvalidUsage, err)
		case ctx.Err() != nil:
			return withExitCode(ExitInternalError, err)
		default:
			return withExitCode(ExitIOError, err)
		}
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: flags.stats,
		Compact:     flags.compact,
		RuleFormat:  cfg.RuleFormat,
		Registry:    lint.DefaultRegistry,
		ToolVersion: info.Version,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("report results: %w", err))
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrFindings
	}
	return nil
}
