// Package reporter renders check results as text, JSON, SARIF or summary tables.
package reporter

import (
	"cmp"
	"context"
	"fmt"

	"github.com/yaklabco/spellint/pkg/analysis"
	"github.com/yaklabco/spellint/pkg/runner"
)

// Reporter writes a check result and returns the number of findings it showed.
type Reporter interface {
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// Renderer presents an aggregated report. It holds no per-run state.
type Renderer interface {
	Render(ctx context.Context, report *analysis.Report) error
}

// analyzed adapts a Renderer to Reporter by aggregating the result first.
type analyzed struct {
	Renderer
	opts analysis.Options
}

var _ Reporter = analyzed{}

func (a analyzed) Report(ctx context.Context, result *runner.Result) (int, error) {
	report := analysis.Analyze(result, a.opts)
	if err := a.Render(ctx, report); err != nil {
		return 0, fmt.Errorf("render %s report: %w", FormatSummary, err)
	}
	return report.Totals.Issues, nil
}

//nolint:gochecknoglobals // constructor table
var constructors = map[Format]func(Options) Reporter{
	FormatText:  func(o Options) Reporter { return NewTextReporter(o) },
	FormatJSON:  func(o Options) Reporter { return NewJSONReporter(o) },
	FormatSARIF: func(o Options) Reporter { return NewSARIFReporter(o) },
	FormatSummary: func(o Options) Reporter {
		opts := analysis.DefaultOptions()
		opts.SortBy, opts.SortDesc = analysis.SortByCount, true
		opts.Registry = o.Registry
		return analyzed{Renderer: NewSummaryRenderer(o), opts: opts}
	},
}

// New builds the reporter for opts.Format. Unset fields take DefaultOptions.
func New(opts Options) (Reporter, error) {
	def := DefaultOptions()
	opts.Format = cmp.Or(opts.Format, def.Format)
	opts.ToolVersion = cmp.Or(opts.ToolVersion, def.ToolVersion)
	if opts.Writer == nil {
		opts.Writer = def.Writer
	}
	if opts.ErrorWriter == nil {
		opts.ErrorWriter = def.ErrorWriter
	}

	build, ok := constructors[opts.Format]
	if !ok {
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
	return build(opts), nil
}
