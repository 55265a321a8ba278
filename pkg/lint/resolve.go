package lint

import "github.com/yaklabco/spellint/pkg/config"

// ResolvedRule is a rule that will run, with the settings it runs under.
type ResolvedRule struct {
	Rule     Rule
	Severity config.Severity
	Config   *config.RuleConfig // nil when the configuration does not mention the rule
}

// ResolveRules lists the rules cfg turns on, ordered by ID.
//
// Settings apply in this order, later winning: the rule's defaults,
// SeverityDefault, the rules section keyed by ID, name or alias, and finally
// the --enable and --disable lists.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	if cfg == nil {
		cfg = &config.Config{}
	}

	settings := make(map[string]config.RuleConfig, len(cfg.Rules))
	for key, rc := range cfg.Rules {
		if id, _, ok := registry.Resolve(key); ok {
			settings[id] = rc
		}
	}
	forceOn := canonicalIDs(registry, cfg.EnableRules)
	forceOff := canonicalIDs(registry, cfg.DisableRules)

	var out []ResolvedRule
	for _, rule := range registry.Rules() {
		id := rule.ID()
		on := rule.DefaultEnabled()
		rr := ResolvedRule{Rule: rule, Severity: rule.DefaultSeverity()}
		if cfg.SeverityDefault != "" {
			rr.Severity = config.Severity(cfg.SeverityDefault)
		}

		if rc, ok := settings[id]; ok {
			rr.Config = &rc
			if rc.Enabled != nil {
				on = *rc.Enabled
			}
			if rc.Severity != nil {
				rr.Severity = config.Severity(*rc.Severity)
			}
		}

		_, forced := forceOn[id]
		_, blocked := forceOff[id]
		if (on || forced) && !blocked {
			out = append(out, rr)
		}
	}
	return out
}

// canonicalIDs maps rule keys to the IDs they name. Unknown keys are dropped.
func canonicalIDs(registry *Registry, keys []string) map[string]struct{} {
	ids := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if id, _, ok := registry.Resolve(key); ok {
			ids[id] = struct{}{}
		}
	}
	return ids
}
