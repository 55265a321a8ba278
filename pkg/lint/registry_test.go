package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/spellint/pkg/config"
)

type stubRule struct {
	BaseRule
}

func newStub(id, name string, aliases ...string) *stubRule {
	return &stubRule{BaseRule: NewBaseRule(id, name, "stub", nil, aliases...)}
}

func stubRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(newStub("MD025", "single-h1", "single-title"))
	reg.Register(newStub("MD009", "no-trailing-spaces"))
	reg.Register(newStub("MD001", "heading-increment", "header-increment"))
	return reg
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	reg := stubRegistry()

	tests := []struct {
		name      string
		key       string
		getID     string // expected from Get, empty when not found
		resolveID string // expected from Resolve, empty when not found
	}{
		{"exact id", "MD009", "MD009", "MD009"},
		{"lower id", "md009", "", "MD009"},
		{"name", "no-trailing-spaces", "MD009", "MD009"},
		{"upper name", "NO-TRAILING-SPACES", "", "MD009"},
		{"alias", "single-title", "", "MD025"},
		{"mixed case alias", "Header-Increment", "", "MD001"},
		{"unknown", "MD999", "", ""},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rule, ok := reg.Get(tt.key)
			if tt.getID == "" {
				assert.False(t, ok)
			} else {
				require.True(t, ok)
				assert.Equal(t, tt.getID, rule.ID())
			}

			id, resolved, ok := reg.Resolve(tt.key)
			if tt.resolveID == "" {
				assert.False(t, ok)
				assert.Nil(t, resolved)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.resolveID, id)
			assert.Equal(t, tt.resolveID, resolved.ID())
		})
	}
}

func TestRegistry_GetByID(t *testing.T) {
	t.Parallel()

	reg := stubRegistry()

	rule, ok := reg.GetByID("MD025")
	require.True(t, ok)
	assert.Equal(t, "single-h1", rule.Name())

	_, ok = reg.GetByID("single-h1")
	assert.False(t, ok, "names are not IDs")
}

func TestRegistry_Ordering(t *testing.T) {
	t.Parallel()

	reg := stubRegistry()

	assert.Equal(t, []string{"MD001", "MD009", "MD025"}, reg.IDs())

	var ids []string
	for _, rule := range reg.Rules() {
		ids = append(ids, rule.ID())
	}
	assert.Equal(t, reg.IDs(), ids)
}

func TestRegistry_Replace(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newStub("MD009", "old-name"))
	reg.Register(newStub("MD009", "no-trailing-spaces"))

	require.Len(t, reg.Rules(), 1)
	rule, ok := reg.GetByID("MD009")
	require.True(t, ok)
	assert.Equal(t, "no-trailing-spaces", rule.Name())
	assert.Equal(t, config.SeverityError, rule.DefaultSeverity())
}
