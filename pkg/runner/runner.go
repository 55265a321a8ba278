package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/spellint/internal/logging"
	"github.com/yaklabco/spellint/pkg/check"
	"github.com/yaklabco/spellint/pkg/fsutil"
	"github.com/yaklabco/spellint/pkg/spell"
)

// Checker checks one document.
type Checker interface {
	Check(ctx context.Context, path string, content []byte) (check.Report, error)
}

// Runner checks many files concurrently.
type Runner struct {
	// Checker runs the passes on each file.
	Checker Checker

	// Provider is started before any file is read, so the dictionary loads
	// while discovery and parsing proceed. May be nil.
	Provider *spell.Provider

	// ReadFile reads a file. Defaults to fsutil.ReadFile.
	ReadFile func(name string) ([]byte, error)
}

// New creates a Runner.
func New(checker Checker, provider *spell.Provider) *Runner {
	return &Runner{Checker: checker, Provider: provider, ReadFile: fsutil.ReadFile}
}

// Run discovers files under opts.Paths and checks them on a bounded pool.
//
// A failing file is recorded in its FileOutcome and never stops the others.
// A dictionary failure is recorded once in Result.DictionaryError. Run only
// returns an error for discovery problems or cancellation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)
	started := time.Now()

	if r.Provider != nil {
		r.Provider.Start()
	}

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	outcomes := make([]FileOutcome, len(files))
	dictErrs := make([]error, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for idx, path := range files {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			outcome, dictErr := r.checkFile(groupCtx, path)
			outcome.DisplayPath = displayPath(workDir, path)
			outcomes[idx] = outcome
			dictErrs[idx] = dictErr
			return nil
		})
	}

	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	for idx, outcome := range outcomes {
		if result.DictionaryError == nil && dictErrs[idx] != nil {
			result.DictionaryError = dictErrs[idx]
		}
		result.accumulate(outcome)
	}

	logger.Debug("run finished",
		logging.FieldJobs, jobs,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldFindingsTotal, result.Stats.FindingsTotal,
		logging.FieldDuration, time.Since(started),
	)

	return result, nil
}

// checkFile reads and checks one file. A dictionary failure is returned
// separately and the lint findings are kept.
func (r *Runner) checkFile(ctx context.Context, path string) (FileOutcome, error) {
	outcome := FileOutcome{Path: path}

	readFile := r.ReadFile
	if readFile == nil {
		readFile = fsutil.ReadFile
	}

	content, err := readFile(path)
	if err != nil {
		outcome.Error = fmt.Errorf("read file: %w", err)
		return outcome, nil
	}

	report, err := r.Checker.Check(ctx, path, content)
	if errors.Is(err, check.ErrDictionaryLoad) {
		outcome.Report = report
		return outcome, err
	}
	if err != nil {
		outcome.Error = err
		return outcome, nil
	}

	outcome.Report = report
	return outcome, nil
}
