package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ConfigPaths holds the configuration files found on disk. Empty fields
// mean no file was found at that level.
type ConfigPaths struct {
	System   string // /etc/spellint/config.yaml or the Windows equivalent
	User     string // $XDG_CONFIG_HOME/spellint/config.yaml
	Project  string // nearest .spellint.yml walking up from the working directory
	Explicit string // --config

	// Markdownlint is a markdownlint config in the working directory.
	Markdownlint string
}

//nolint:gochecknoglobals // read-only lookup tables
var (
	projectConfigNames      = []string{".spellint.yml", ".spellint.yaml", ".spellint.toml"}
	globalConfigNames       = []string{"config.yaml", "config.yml", "config.toml"}
	markdownlintConfigNames = []string{".markdownlint.json", ".markdownlint.jsonc", ".markdownlint.yaml", ".markdownlint.yml"}
	vcsMarkers              = []string{".git", ".hg", ".svn"}
)

// DiscoverPaths locates the system, user, project and markdownlint
// configuration files for workDir.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("discover config: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		System:       firstFile(systemConfigDir(), globalConfigNames),
		User:         firstFile(userConfigDir(), globalConfigNames),
		Project:      project,
		Markdownlint: firstFile(workDir, markdownlintConfigNames),
	}, nil
}

func systemConfigDir() string {
	if runtime.GOOS != "windows" {
		return "/etc/spellint"
	}
	root := os.Getenv("ProgramData")
	if root == "" {
		root = `C:\ProgramData`
	}
	return filepath.Join(root, "spellint")
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spellint")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "spellint")
}

// FindProjectConfig walks up from startDir looking for a .spellint file.
// The walk stops at a VCS root, the home directory or the filesystem root.
// It returns "" when nothing is found.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", startDir, err)
	}
	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("find project config: %w", err)
		}

		if found := firstFile(dir, projectConfigNames); found != "" {
			return found, nil
		}
		if isVCSRoot(dir) || dir == home {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// firstFile returns the first of names that exists as a regular file in dir.
func firstFile(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// IsJSONConfig reports whether path has a .json or .jsonc extension.
func IsJSONConfig(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".json" || ext == ".jsonc"
}

// IsTOMLConfig reports whether path has a .toml extension.
func IsTOMLConfig(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
