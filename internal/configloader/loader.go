// Package configloader resolves spellint's layered configuration: discovery,
// YAML and TOML files, markdownlint import, SPELLINT_* variables, merging
// and validation.
package configloader

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/yaklabco/spellint/internal/logging"
	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/fsutil"
	"github.com/yaklabco/spellint/pkg/lint"
)

// LoadOptions controls which layers Load consults.
type LoadOptions struct {
	WorkingDir   string // defaults to the process working directory
	ExplicitPath string // --config

	IgnoreSystemConfig  bool
	IgnoreUserConfig    bool
	IgnoreProjectConfig bool
	IgnoreEnv           bool
	IgnoreMarkdownlint  bool

	// CLIConfig holds values set by flags; it is applied last.
	CLIConfig *config.Config
}

// LoadResult is the merged configuration with where it came from.
type LoadResult struct {
	Config     *config.Config
	Paths      *ConfigPaths
	LoadedFrom []string // files applied, lowest precedence first
	Warnings   []string
}

// Load merges, from lowest to highest precedence: defaults, the system
// config, the user config, the project config (or, without one, the rules
// of a markdownlint config), the --config file, SPELLINT_* variables and
// finally opts.CLIConfig. The result is validated; the first validation
// failure is returned as a *ValidationError.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	apply := func(layer, path string, skip bool) error {
		if skip || path == "" {
			return nil
		}
		layerCfg, err := loadConfigFile(path)
		if err != nil {
			return fmt.Errorf("load %s config: %w", layer, err)
		}
		cfg = merge(cfg, layerCfg)
		result.LoadedFrom = append(result.LoadedFrom, path)
		logger.Debug("loaded config", logging.FieldConfig, path, logging.FieldName, layer)
		return nil
	}

	if err := apply("system", paths.System, opts.IgnoreSystemConfig); err != nil {
		return nil, err
	}
	if err := apply("user", paths.User, opts.IgnoreUserConfig); err != nil {
		return nil, err
	}
	if err := apply("project", paths.Project, opts.IgnoreProjectConfig); err != nil {
		return nil, err
	}

	if mdl := paths.Markdownlint; mdl != "" && !opts.IgnoreMarkdownlint && !opts.IgnoreProjectConfig {
		if paths.Project != "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("both %s and %s exist; using %s", paths.Project, mdl, paths.Project))
		} else {
			imported, warnings, err := ImportMarkdownlint(mdl, lint.DefaultRegistry)
			if err != nil {
				return nil, fmt.Errorf("load markdownlint config: %w", err)
			}
			cfg = merge(cfg, imported)
			result.LoadedFrom = append(result.LoadedFrom, mdl)
			result.Warnings = append(result.Warnings, warnings...)
			logger.Debug("imported markdownlint rules", logging.FieldConfig, mdl)
		}
	}

	if err := apply("explicit", opts.ExplicitPath, false); err != nil {
		return nil, err
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}
	cfg = merge(cfg, opts.CLIConfig)

	result.Warnings = append(result.Warnings, canonicalizeRules(cfg, lint.DefaultRegistry)...)

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile decodes a TOML file by extension and YAML otherwise.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := fsutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	decode := config.FromYAML
	if IsTOMLConfig(path) {
		decode = config.FromTOML
	}
	cfg, err := decode(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// canonicalizeRules rekeys cfg.Rules by rule ID so that a name, an alias and
// an ID all configure the same rule. Keys naming one rule are merged in
// sorted key order, with a warning. Unknown keys are kept for validation.
func canonicalizeRules(cfg *config.Config, registry *lint.Registry) []string {
	if len(cfg.Rules) == 0 {
		return nil
	}

	var warnings []string
	out := make(map[string]config.RuleConfig, len(cfg.Rules))
	firstKey := make(map[string]string)

	keys := make([]string, 0, len(cfg.Rules))
	for key := range cfg.Rules {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		rc := cfg.Rules[key]
		id, _, ok := registry.Resolve(key)
		if !ok {
			out[key] = rc
			continue
		}
		if prev, dup := firstKey[id]; dup {
			warnings = append(warnings,
				fmt.Sprintf("duplicate rule configuration: %q and %q both refer to %s", prev, key, id))
			rc = mergeRuleConfig(out[id], rc)
		} else {
			firstKey[id] = key
		}
		out[id] = rc
	}

	cfg.Rules = out
	return warnings
}
