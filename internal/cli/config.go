package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/spellint/internal/configloader"
	"github.com/yaklabco/spellint/internal/logging"
	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/dictionary"
	"github.com/yaklabco/spellint/pkg/spell"
)

// commandContext returns the command context carrying the default logger.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithLogger(ctx, logging.Default())
}

// loadConfiguration resolves the layered configuration with cliCfg on top.
// Failures carry ExitConfigError.
func loadConfiguration(ctx context.Context, cmd *cobra.Command, workDir string, cliCfg *config.Config) (*config.Config, error) {
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, withExitCode(ExitConfigError, fmt.Errorf("load configuration: %w", err))
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// newProvider returns the spelling oracle for cfg. The shared built-in
// provider is reused when cfg adds no words.
func newProvider(cfg *config.Config) *spell.Provider {
	sp := cfg.Spelling
	if len(sp.Words) == 0 && len(sp.Dictionaries) == 0 && sp.LanguageOrDefault() == config.DefaultLanguage {
		return spell.Default()
	}
	return spell.NewProvider(spell.DictionaryLoader(dictionary.Options{
		Language: sp.LanguageOrDefault(),
		Words:    sp.Words,
		Files:    sp.Dictionaries,
	}))
}

func workingDir() (string, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return "", withExitCode(ExitIOError, fmt.Errorf("get working directory: %w", err))
	}
	return workDir, nil
}
