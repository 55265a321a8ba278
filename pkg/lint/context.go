package lint

import (
	"context"
	"fmt"
	"iter"

	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/mdast"
)

// RuleContext is everything one rule invocation sees: the parsed file, the
// resolved configuration and the rule's own options. It lives for a single
// Apply call, so it carries its context.Context as a field.
type RuleContext struct {
	Ctx  context.Context
	File *mdast.FileSnapshot
	Root *mdast.Node // File.Root

	Config     *config.Config
	RuleConfig *config.RuleConfig // nil when the rule has no settings

	// cache is shared by every rule run against the same file.
	cache *NodeCache
}

// NewRuleContext binds a rule invocation to file and its settings.
func NewRuleContext(ctx context.Context, file *mdast.FileSnapshot, cfg *config.Config, ruleCfg *config.RuleConfig) *RuleContext {
	rc := &RuleContext{Ctx: ctx, File: file, Config: cfg, RuleConfig: ruleCfg}
	if file != nil {
		rc.Root = file.Root
	}
	return rc
}

// WithCache shares cache with the other rules run on the same file.
func (rc *RuleContext) WithCache(cache *NodeCache) *RuleContext {
	rc.cache = cache
	return rc
}

// Cancelled reports whether the run was cancelled.
func (rc *RuleContext) Cancelled() bool {
	return rc.Ctx.Err() != nil
}

// Err returns the cancellation, wrapped for the rule's result, or nil.
func (rc *RuleContext) Err() error {
	if err := rc.Ctx.Err(); err != nil {
		return fmt.Errorf("rule cancelled: %w", err)
	}
	return nil
}

// Lines yields each 1-based line number with its content, line break
// excluded. It stops early on cancellation, so callers return Err after
// the loop.
func (rc *RuleContext) Lines() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		if rc.File == nil {
			return
		}
		for n := 1; n <= rc.File.LineCount(); n++ {
			if rc.Cancelled() || !yield(n, rc.File.LineContent(n)) {
				return
			}
		}
	}
}

// Option returns the raw option value for key, or def.
func (rc *RuleContext) Option(key string, def any) any {
	if rc.RuleConfig == nil {
		return def
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return def
}

// typedOption returns the option as T, or def when unset or of another type.
func typedOption[T any](rc *RuleContext, key string, def T) T {
	if v, ok := rc.Option(key, def).(T); ok {
		return v
	}
	return def
}

// OptionInt returns an integer option. YAML decodes int, TOML int64 and
// markdownlint JSON float64; all are accepted.
func (rc *RuleContext) OptionInt(key string, def int) int {
	switch v := rc.Option(key, def).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

// OptionString returns a string option.
func (rc *RuleContext) OptionString(key, def string) string {
	return typedOption(rc, key, def)
}

// OptionBool returns a boolean option.
func (rc *RuleContext) OptionBool(key string, def bool) bool {
	return typedOption(rc, key, def)
}

// OptionStringSlice returns a list option. Decoded lists arrive as []any;
// their string elements are kept. An empty result yields def.
func (rc *RuleContext) OptionStringSlice(key string, def []string) []string {
	var out []string
	switch v := rc.Option(key, def).(type) {
	case []string:
		return v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// Each yields nodes in order until the run is cancelled. Callers return Err
// after the loop.
func (rc *RuleContext) Each(nodes []*mdast.Node) iter.Seq[*mdast.Node] {
	return func(yield func(*mdast.Node) bool) {
		for _, n := range nodes {
			if rc.Cancelled() || !yield(n) {
				return
			}
		}
	}
}

// nodes returns the node cache, building it on first use.
func (rc *RuleContext) nodes() *NodeCache {
	if rc.cache == nil {
		rc.cache = NewNodeCache()
	}
	rc.cache.build(rc.Root)
	return rc.cache
}

// The node accessors return shared slices; rules must not modify them.

func (rc *RuleContext) Headings() []*mdast.Node    { return rc.nodes().headings }
func (rc *RuleContext) Lists() []*mdast.Node       { return rc.nodes().lists }
func (rc *RuleContext) CodeBlocks() []*mdast.Node  { return rc.nodes().codeBlocks }
func (rc *RuleContext) HTMLBlocks() []*mdast.Node  { return rc.nodes().htmlBlocks }
func (rc *RuleContext) HTMLInlines() []*mdast.Node { return rc.nodes().htmlInlines }
func (rc *RuleContext) Links() []*mdast.Node       { return rc.nodes().links }

// CodeLines returns the set of 1-based lines covered by code blocks.
func (rc *RuleContext) CodeLines() map[int]bool { return rc.nodes().codeLines }
