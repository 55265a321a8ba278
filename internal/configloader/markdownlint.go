package configloader

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/fsutil"
	"github.com/yaklabco/spellint/pkg/lint"
)

// ImportMarkdownlint reads the rule settings of a markdownlint config file.
//
// Keys may be rule IDs, names, aliases or tags; a tag applies to every rule
// carrying it. A boolean or null value toggles the rule, an object enables it
// with options. Comments are stripped from JSON files first. Keys that name
// nothing known are reported as warnings.
func ImportMarkdownlint(path string, registry *lint.Registry) (*config.Config, []string, error) {
	content, err := fsutil.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var raw map[string]any
	if IsJSONConfig(path) {
		err = json.Unmarshal(stripJSONComments(content), &raw)
	} else {
		err = yaml.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := &config.Config{Rules: make(map[string]config.RuleConfig)}
	var warnings []string

	delete(raw, "$schema")
	if extends, ok := raw["extends"]; ok {
		warnings = append(warnings, fmt.Sprintf("%s: 'extends: %v' is not supported", path, extends))
		delete(raw, "extends")
	}
	if def, ok := raw["default"].(bool); ok {
		if !def {
			warnings = append(warnings, fmt.Sprintf("%s: 'default: false' is not supported; rules stay enabled", path))
		}
		delete(raw, "default")
	}

	tagged := rulesByTag(registry)

	for _, key := range slices.Sorted(maps.Keys(raw)) {
		value := raw[key]

		if id, _, found := registry.Resolve(key); found {
			cfg.Rules[id] = mergeRuleConfig(cfg.Rules[id], markdownlintRuleValue(value))
			continue
		}

		if ids, ok := tagged[key]; ok {
			enabled := markdownlintEnabled(value)
			for _, id := range ids {
				ruleCfg := cfg.Rules[id]
				ruleCfg.Enabled = &enabled
				cfg.Rules[id] = ruleCfg
			}
			continue
		}

		warnings = append(warnings, fmt.Sprintf("%s: unknown key %q; skipping", path, key))
	}

	return cfg, warnings, nil
}

// rulesByTag maps every tag to the IDs of the rules carrying it.
func rulesByTag(registry *lint.Registry) map[string][]string {
	tagged := make(map[string][]string)
	for _, rule := range registry.Rules() {
		for _, tag := range rule.Tags() {
			tagged[tag] = append(tagged[tag], rule.ID())
		}
	}
	return tagged
}

func markdownlintRuleValue(value any) config.RuleConfig {
	enabled := markdownlintEnabled(value)
	ruleCfg := config.RuleConfig{Enabled: &enabled}

	if opts, ok := value.(map[string]any); ok && len(opts) > 0 {
		ruleCfg.Options = make(map[string]any, len(opts))
		for key, val := range opts {
			ruleCfg.Options[key] = val
		}
	}

	return ruleCfg
}

func markdownlintEnabled(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case nil:
		return false
	default:
		return true
	}
}

// stripJSONComments removes // and /* */ comments outside string literals.
func stripJSONComments(content []byte) []byte {
	out := make([]byte, 0, len(content))
	inString := false

	for idx := 0; idx < len(content); idx++ {
		char := content[idx]

		if inString {
			out = append(out, char)
			switch char {
			case '\\':
				if idx+1 < len(content) {
					idx++
					out = append(out, content[idx])
				}
			case '"':
				inString = false
			}
			continue
		}

		if char == '/' && idx+1 < len(content) {
			switch content[idx+1] {
			case '/':
				for idx < len(content) && content[idx] != '\n' {
					idx++
				}
				if idx < len(content) {
					out = append(out, '\n')
				}
				continue
			case '*':
				idx += 2
				for idx+1 < len(content) && (content[idx] != '*' || content[idx+1] != '/') {
					idx++
				}
				idx++
				continue
			}
		}

		if char == '"' {
			inString = true
		}
		out = append(out, char)
	}

	return out
}
