package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FromYAML decodes a configuration file. Unknown keys are ignored.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg.withRules(), nil
}

// FromTOML decodes a configuration file. A key no field accepts is an error,
// since TOML tables make misplaced keys easy to write.
func FromTOML(data []byte) (*Config, error) {
	cfg := &Config{}
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}
	if extra := meta.Undecoded(); len(extra) > 0 {
		return nil, fmt.Errorf("parse toml: unknown key %q", extra[0].String())
	}
	return cfg.withRules(), nil
}

func (c *Config) withRules() *Config {
	if c.Rules == nil {
		c.Rules = make(map[string]RuleConfig)
	}
	return c
}

// Clone returns a deep copy of c. Values nested inside rule options are shared.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	out := *c
	out.Ignore = slices.Clone(c.Ignore)
	out.EnableRules = slices.Clone(c.EnableRules)
	out.DisableRules = slices.Clone(c.DisableRules)
	out.Lint.Enabled = clonePtr(c.Lint.Enabled)

	sp := &out.Spelling
	sp.Enabled = clonePtr(c.Spelling.Enabled)
	sp.Words = slices.Clone(c.Spelling.Words)
	sp.Dictionaries = slices.Clone(c.Spelling.Dictionaries)
	sp.MaxSuggestions = clonePtr(c.Spelling.MaxSuggestions)
	sp.IgnoreNumbers = clonePtr(c.Spelling.IgnoreNumbers)
	sp.MinLength = clonePtr(c.Spelling.MinLength)
	sp.SkipUnpositioned = clonePtr(c.Spelling.SkipUnpositioned)

	if c.Rules != nil {
		out.Rules = make(map[string]RuleConfig, len(c.Rules))
		for id, rc := range c.Rules {
			out.Rules[id] = RuleConfig{
				Enabled:  clonePtr(rc.Enabled),
				Severity: clonePtr(rc.Severity),
				Options:  maps.Clone(rc.Options),
			}
		}
	}
	return &out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
