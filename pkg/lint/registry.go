package lint

import (
	"slices"
	"strings"
	"sync"
)

// Registry indexes lint rules by ID, name and alias.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule   // ID -> rule
	keys  map[string]string // lower-cased name or alias -> ID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rules: make(map[string]Rule),
		keys:  make(map[string]string),
	}
}

// Register adds rule, replacing any rule already registered under its ID.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := rule.ID()
	r.rules[id] = rule
	r.keys[strings.ToLower(rule.Name())] = id
	for _, alias := range rule.Aliases() {
		r.keys[strings.ToLower(alias)] = id
	}
}

// Get looks a rule up by exact ID or name.
func (r *Registry) Get(key string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.rules[key]; ok {
		return rule, true
	}
	if id, ok := r.keys[key]; ok {
		rule := r.rules[id]
		if rule.Name() == key {
			return rule, true
		}
	}
	return nil, false
}

// GetByID looks a rule up by exact ID.
func (r *Registry) GetByID(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[id]
	return rule, ok
}

// Resolve maps an ID (any case), name or alias to its rule and canonical ID.
func (r *Registry) Resolve(key string) (string, Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.rules[strings.ToUpper(key)]; ok {
		return rule.ID(), rule, true
	}
	if rule, ok := r.rules[key]; ok {
		return rule.ID(), rule, true
	}
	if id, ok := r.keys[strings.ToLower(key)]; ok {
		return id, r.rules[id], true
	}
	return "", nil, false
}

// Rules returns every registered rule ordered by ID.
func (r *Registry) Rules() []Rule {
	ids := r.IDs()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Rule, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.rules[id])
	}
	return out
}

// IDs returns the registered rule IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.rules))
	for id := range r.rules {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// DefaultRegistry holds the built-in rules; the rules package fills it at init.
//
//nolint:gochecknoglobals // populated once by rule registration
var DefaultRegistry = NewRegistry()
