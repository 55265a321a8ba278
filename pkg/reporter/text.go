package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/spellint/internal/ui/pretty"
	"github.com/yaklabco/spellint/pkg/runner"
)

// NoFilesMessage is printed when discovery finds nothing to check.
const NoFilesMessage = "No .md files found."

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
	errOut io.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	errOut := opts.ErrorWriter
	if errOut == nil {
		errOut = opts.Writer
	}
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
		errOut: errOut,
	}
}

// Report implements Reporter. Files without findings print nothing.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		fmt.Fprintln(r.bw, NoFilesMessage)
		return 0, nil
	}

	if result.DictionaryError != nil {
		fmt.Fprint(r.errOut, r.styles.FormatDictionaryError(result.DictionaryError))
	}

	var total int
	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprint(r.errOut, r.styles.FormatFileError(file.DisplayPath, file.Error))
			continue
		}
		if len(file.Report) == 0 {
			continue
		}

		fmt.Fprint(r.bw, r.styles.FormatFileHeader(file.DisplayPath))
		for _, finding := range file.Report {
			fmt.Fprint(r.bw, r.styles.FormatFinding(finding))
			total++
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, "\n"+r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}
