package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/spellint/internal/configloader"
	"github.com/yaklabco/spellint/pkg/runner"
)

// Exit codes for spellint, following sysexits(3) where one applies.
const (
	// ExitSuccess indicates every document was checked and is clean.
	ExitSuccess = 0

	// ExitFindings indicates findings or documents that could not be checked.
	ExitFindings = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrFindings is returned when a run is not clean. It carries no message
// worth logging; the reporter has already printed the details.
var ErrFindings = errors.New("findings reported")

// ExitError attaches an exit code to an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}

// ExitCodeFromError maps an error returned by a command to a process exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrFindings) {
		return ExitFindings
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var validationErr *configloader.ValidationError
	switch {
	case errors.Is(err, runner.ErrNotMarkdown):
		return ExitInvalidUsage
	case errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// ExitCodeFromResult determines the exit code for a finished run.
func ExitCodeFromResult(result *runner.Result) int {
	if result.Clean() {
		return ExitSuccess
	}
	return ExitFindings
}
