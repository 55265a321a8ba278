package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/spellint/internal/cli"
	"github.com/yaklabco/spellint/internal/configloader"
	"github.com/yaklabco/spellint/pkg/runner"
)

var testInfo = cli.BuildInfo{
	Version: "test-version",
	Commit:  "test-commit",
	Date:    "test-date",
}

// runCLI executes the root command with args and captures its output.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeConfig writes a config file that shields the test from any project
// or user configuration.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".spellint.yml")
	require.NoError(t, os.WriteFile(path, []byte("flavor: commonmark\n"+content), 0o644))
	return path
}

func writeMarkdown(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	require.NotNil(t, cmd)

	assert.Equal(t, "spellint", cmd.Name())
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	for _, name := range []string{"check", "rules", "suggest", "init", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestRootCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	for _, name := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "persistent flag %s", name)
	}

	checkCmd, _, err := cmd.Find([]string{"check"})
	require.NoError(t, err)

	for _, name := range []string{
		"format", "flavor", "language", "ignore", "enable", "disable", "words", "follow-symlinks",
		"max-suggestions", "jobs", "no-spell", "no-lint", "compact", "stats", "rule-format",
	} {
		assert.NotNil(t, checkCmd.Flags().Lookup(name), "check flag %s", name)
		assert.NotNil(t, cmd.Flags().Lookup(name), "root flag %s", name)
	}
}

func TestHelpOutput(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCLI(t, "--help", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "Commands:")
	assert.Contains(t, stdout, "suggest")
	assert.Contains(t, stdout, "--no-spell")
}

func TestExitCodeFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{name: "findings", err: cli.ErrFindings, want: cli.ExitFindings},
		{name: "explicit code", err: &cli.ExitError{Code: cli.ExitIOError, Err: errors.New("disk")}, want: cli.ExitIOError},
		{
			name: "wrapped explicit code",
			err:  fmt.Errorf("outer: %w", &cli.ExitError{Code: cli.ExitConfigError, Err: errors.New("bad")}),
			want: cli.ExitConfigError,
		},
		{name: "not markdown", err: fmt.Errorf("x.txt: %w", runner.ErrNotMarkdown), want: cli.ExitInvalidUsage},
		{name: "validation", err: &configloader.ValidationError{Field: "flavor", Message: "bad"}, want: cli.ExitConfigError},
		{name: "missing file", err: fmt.Errorf("open: %w", fs.ErrNotExist), want: cli.ExitIOError},
		{name: "permission", err: fs.ErrPermission, want: cli.ExitIOError},
		{name: "other", err: errors.New("boom"), want: cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, cli.ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	clean := &runner.Result{Files: []runner.FileOutcome{{Path: "a.md"}}}
	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(clean))

	failed := &runner.Result{
		Files: []runner.FileOutcome{{Path: "a.md", Error: errors.New("unreadable")}},
		Stats: runner.Stats{FilesErrored: 1},
	}
	assert.Equal(t, cli.ExitFindings, cli.ExitCodeFromResult(failed))
}

func TestExitError_Unwrap(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	err := &cli.ExitError{Code: cli.ExitIOError, Err: inner}

	assert.Equal(t, "inner", err.Error())
	assert.ErrorIs(t, err, inner)
}
