package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/spellint/pkg/config"
)

func TestFromYAML(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte(`
flavor: gfm
ignore: ["vendor/**"]
spelling:
  words: [goldmark, spellint]
  max_suggestions: 3
rules:
  MD013:
    options:
      line_length: 100
unknown_key: ignored
`))
	require.NoError(t, err)

	assert.Equal(t, config.FlavorGFM, cfg.Flavor)
	assert.Equal(t, []string{"vendor/**"}, cfg.Ignore)
	assert.Equal(t, []string{"goldmark", "spellint"}, cfg.Spelling.Words)
	require.NotNil(t, cfg.Spelling.MaxSuggestions)
	assert.Equal(t, 3, *cfg.Spelling.MaxSuggestions)
	assert.Equal(t, 100, cfg.Rules["MD013"].Options["line_length"])
}

func TestFromYAML_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("rules: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")
}

func TestFromTOML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name: "valid",
			input: `flavor = "commonmark"

[spelling]
words = ["spellint"]

[rules.MD009]
enabled = false
`,
		},
		{name: "empty", input: ""},
		{name: "unknown top-level key", input: "flavour = \"gfm\"\n", wantErr: `unknown key "flavour"`},
		{name: "unknown nested key", input: "[spelling]\nword = [\"x\"]\n", wantErr: `unknown key "spelling.word"`},
		{name: "syntax", input: "flavor = \n", wantErr: "parse toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.FromTOML([]byte(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, cfg.Rules, "rules map is always allocated")
		})
	}
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	enabled := true
	orig := config.NewConfig()
	orig.Ignore = []string{"a"}
	orig.Spelling.Words = []string{"one"}
	orig.Rules["MD013"] = config.RuleConfig{
		Enabled: &enabled,
		Options: map[string]any{"line_length": 80},
	}

	clone := orig.Clone()
	clone.Ignore[0] = "b"
	clone.Spelling.Words = append(clone.Spelling.Words, "two")
	*clone.Rules["MD013"].Enabled = false
	clone.Rules["MD013"].Options["line_length"] = 120
	clone.Rules["MD001"] = config.RuleConfig{}

	assert.Equal(t, []string{"a"}, orig.Ignore)
	assert.Equal(t, []string{"one"}, orig.Spelling.Words)
	assert.True(t, *orig.Rules["MD013"].Enabled)
	assert.Equal(t, 80, orig.Rules["MD013"].Options["line_length"])
	assert.NotContains(t, orig.Rules, "MD001")
}

func TestClone_Nil(t *testing.T) {
	t.Parallel()

	var cfg *config.Config
	assert.Nil(t, cfg.Clone())
}
