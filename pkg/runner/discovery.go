package runner

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/spellint/internal/logging"
)

// ErrNotMarkdown is returned when a file argument lacks a Markdown extension.
var ErrNotMarkdown = errors.New("file must be a .md file")

// Discover expands opts.Paths into the sorted, de-duplicated absolute paths
// of the Markdown files to check.
//
// Directories are walked recursively, skipping hidden entries and anything
// an exclude glob matches. A file named explicitly must carry a Markdown
// extension; an excluded explicit file is dropped silently.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	root, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, err
	}

	exclude, err := compileGlobs(opts.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	w := &walker{
		ctx:        ctx,
		root:       root,
		extensions: opts.effectiveExtensions(),
		exclude:    exclude,
		follow:     opts.FollowSymlinks,
		seen:       make(map[string]struct{}),
		dirs:       make(map[string]struct{}),
	}

	paths := opts.effectivePaths()
	for _, arg := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}
		if err := w.visitArg(arg); err != nil {
			return nil, err
		}
	}

	slices.Sort(w.files)
	logging.FromContext(ctx).Debug("discovered files",
		logging.FieldPaths, paths,
		logging.FieldFilesDiscovered, len(w.files),
	)
	return w.files, nil
}

// resolveWorkDir makes dir absolute; empty means the process directory.
func resolveWorkDir(dir string) (string, error) {
	abs, err := filepath.Abs(cmp.Or(dir, "."))
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return abs, nil
}

// compileGlobs compiles exclude patterns with '/' as the separator, so a
// single '*' stays inside one path segment.
func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(filepath.ToSlash(p), '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

type walker struct {
	ctx        context.Context //nolint:containedctx // scoped to one Discover call
	root       string
	extensions []string
	exclude    []glob.Glob
	follow     bool
	seen       map[string]struct{}
	dirs       map[string]struct{} // resolved directories already walked
	files      []string
}

// visitArg handles one command-line path, relative to the working directory.
// A missing argument without a Markdown extension is reported as not
// Markdown rather than as missing.
func (w *walker) visitArg(arg string) error {
	path := arg
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.root, path)
	}
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	switch {
	case err != nil && !w.markdown(path):
		return fmt.Errorf("%s: %w", arg, ErrNotMarkdown)
	case err != nil:
		return fmt.Errorf("check argument: %w", err)
	case info.IsDir():
		return w.walk(path)
	case !w.markdown(path):
		return fmt.Errorf("%s: %w", arg, ErrNotMarkdown)
	case !w.excluded(path):
		w.add(path)
	}
	return nil
}

func (w *walker) add(path string) {
	if _, dup := w.seen[path]; !dup {
		w.seen[path] = struct{}{}
		w.files = append(w.files, path)
	}
}

func (w *walker) markdown(path string) bool {
	ext := filepath.Ext(path)
	return slices.ContainsFunc(w.extensions, func(e string) bool { return strings.EqualFold(e, ext) })
}

// excluded matches the globs against the slash-separated path relative to
// the working directory and against the base name.
func (w *walker) excluded(path string) bool {
	if len(w.exclude) == 0 {
		return false
	}
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		rel = path
	}
	rel, base := filepath.ToSlash(rel), filepath.Base(path)
	return slices.ContainsFunc(w.exclude, func(g glob.Glob) bool { return g.Match(rel) || g.Match(base) })
}

// enter records dir by its resolved path and reports whether it is new.
func (w *walker) enter(dir string) bool {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		resolved = dir
	}
	if _, done := w.dirs[resolved]; done {
		return false
	}
	w.dirs[resolved] = struct{}{}
	return true
}

func (w *walker) walk(dir string) error {
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			// Unreadable directories are skipped, not fatal.
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}

		hidden := strings.HasPrefix(entry.Name(), ".")
		if entry.IsDir() {
			if path != dir && (hidden || w.excluded(path)) {
				return filepath.SkipDir
			}
			if !w.enter(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			return w.visitLink(path)
		}
		if w.markdown(path) && !w.excluded(path) {
			w.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", dir, err)
	}
	return nil
}

// visitLink resolves a symlink found while walking. Broken links are
// skipped; directory links are followed only when enabled, since WalkDir
// never descends through them itself. A link back into a directory already
// walked is not followed again.
func (w *walker) visitLink(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return nil //nolint:nilerr // broken link
	}
	if !info.IsDir() {
		if w.markdown(path) && !w.excluded(path) {
			w.add(path)
		}
		return nil
	}
	if !w.follow {
		return nil
	}
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // unresolvable target
	}
	if _, done := w.dirs[target]; done {
		return nil
	}
	return w.walk(target)
}
