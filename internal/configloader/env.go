package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/spellint/pkg/config"
)

const envVarPrefix = "SPELLINT_"

// envVar binds one SPELLINT_* variable to the config field it sets.
type envVar struct {
	field string
	help  string
	set   func(cfg *config.Config, raw string) error
}

func stringVar(field, help string, set func(*config.Config, string)) envVar {
	return envVar{field: field, help: help, set: func(cfg *config.Config, raw string) error {
		set(cfg, raw)
		return nil
	}}
}

func boolVar(field, help string, set func(*config.Config, bool)) envVar {
	return envVar{field: field, help: help, set: func(cfg *config.Config, raw string) error {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("want true/false/1/0, got %q", raw)
		}
		set(cfg, b)
		return nil
	}}
}

func intVar(field, help string, set func(*config.Config, int)) envVar {
	return envVar{field: field, help: help, set: func(cfg *config.Config, raw string) error {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("want an integer, got %q", raw)
		}
		set(cfg, n)
		return nil
	}}
}

func listVar(field, help string, set func(*config.Config, []string)) envVar {
	return envVar{field: field, help: help, set: func(cfg *config.Config, raw string) error {
		set(cfg, splitList(raw))
		return nil
	}}
}

// envVars is keyed by the variable name without its prefix.
//
//nolint:gochecknoglobals // read-only table
var envVars = map[string]envVar{
	"FLAVOR": stringVar("flavor", "Markdown flavor: commonmark or gfm",
		func(c *config.Config, v string) { c.Flavor = config.Flavor(v) }),
	"SEVERITY_DEFAULT": stringVar("severity_default", "Default severity: error, warning, or info",
		func(c *config.Config, v string) { c.SeverityDefault = v }),
	"FORMAT": stringVar("format", "Output format: text, json, sarif, or summary",
		func(c *config.Config, v string) { c.Format = config.OutputFormat(v) }),
	"JOBS": intVar("jobs", "Number of parallel workers (0 = auto)",
		func(c *config.Config, v int) { c.Jobs = v }),
	"IGNORE": listVar("ignore", "Comma-separated ignore globs",
		func(c *config.Config, v []string) { c.Ignore = v }),
	"LINT": boolVar("lint.enabled", "Run the structural lint pass",
		func(c *config.Config, v bool) { c.Lint.Enabled = &v }),
	"SPELLING": boolVar("spelling.enabled", "Run the spelling pass",
		func(c *config.Config, v bool) { c.Spelling.Enabled = &v }),
	"LANGUAGE": stringVar("spelling.language", "Dictionary language",
		func(c *config.Config, v string) { c.Spelling.Language = v }),
	"WORDS": listVar("spelling.words", "Comma-separated accepted words",
		func(c *config.Config, v []string) { c.Spelling.Words = v }),
	"DICTIONARIES": listVar("spelling.dictionaries", "Comma-separated word list files",
		func(c *config.Config, v []string) { c.Spelling.Dictionaries = v }),
	"MAX_SUGGESTIONS": intVar("spelling.max_suggestions", "Suggestions per spelling finding",
		func(c *config.Config, v int) { c.Spelling.MaxSuggestions = &v }),
	"MIN_LENGTH": intVar("spelling.min_length", "Shortest word that is checked",
		func(c *config.Config, v int) { c.Spelling.MinLength = &v }),
	"IGNORE_NUMBERS": boolVar("spelling.ignore_numbers", "Skip tokens without letters",
		func(c *config.Config, v bool) { c.Spelling.IgnoreNumbers = &v }),
}

// LoadFromEnv applies SPELLINT_* environment overrides to cfg.
// Empty variables are ignored.
func LoadFromEnv(cfg *config.Config) error {
	return loadFromLookup(cfg, os.LookupEnv)
}

func loadFromLookup(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}
	for suffix, v := range envVars {
		name := envVarPrefix + suffix
		raw, ok := lookup(name)
		if !ok || raw == "" {
			continue
		}
		if err := v.set(cfg, raw); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// splitList splits a comma-separated value, dropping blank entries.
func splitList(raw string) []string {
	var out []string
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetEnvVarName returns the variable that sets field, or "".
func GetEnvVarName(field string) string {
	for suffix, v := range envVars {
		if v.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars maps each supported variable to its help text.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envVars))
	for suffix, v := range envVars {
		out[envVarPrefix+suffix] = v.help
	}
	return out
}
