package check

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	// ErrParseFailure is returned when a document cannot be parsed.
	ErrParseFailure = errors.New("parse failure")

	// ErrDictionaryLoad is returned when the spelling oracle failed to load.
	// The oracle is shared, so every document in a run sees the same error.
	ErrDictionaryLoad = errors.New("dictionary load failure")

	// ErrLintFailure is returned when a lint rule fails on a document.
	ErrLintFailure = errors.New("lint failure")

	// ErrInvalidInput is returned for content that is not Markdown text.
	ErrInvalidInput = errors.New("invalid input")
)

// validateInput rejects binary content before any parsing is attempted.
func validateInput(content []byte) error {
	if idx := bytes.IndexByte(content, 0); idx >= 0 {
		return fmt.Errorf("%w: NUL byte at offset %d", ErrInvalidInput, idx)
	}
	return nil
}
