package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/yaklabco/spellint/internal/ui/pretty"
	"github.com/yaklabco/spellint/pkg/analysis"
)

const (
	maxTableWidth    = 90
	minTableWidth    = 40
	defaultTermWidth = 80
	ruleColWidth     = 30
	wordColWidth     = 24
	numColWidth      = 7
	wideNumColWidth  = 8
	maxWordsListed   = 20
)

// column describes one summary table column. Cells are padded before
// styling so ANSI sequences do not skew the alignment.
type column struct {
	title string
	width int
	right bool
}

func (c column) pad(s string) string {
	if c.right {
		return padLeft(s, c.width)
	}
	return padRight(s, c.width)
}

func padRight(s string, width int) string {
	if n := width - len(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := width - len(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

// truncate cuts s to maxLen bytes, ending in an ellipsis.
func truncate(s string, maxLen int) string {
	if maxLen < 1 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen-1] + "…"
}

// truncatePath cuts from the front so the file name survives.
func truncatePath(path string, maxLen int) string {
	if maxLen < 1 || len(path) <= maxLen {
		return path
	}
	return "…" + path[len(path)-maxLen+1:]
}

func getTerminalWidth(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return defaultTermWidth
	}
	if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
		return width
	}
	return defaultTermWidth
}

// SummaryRenderer prints per-rule, per-word and per-file tables followed by a total.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
	width  int
}

// NewSummaryRenderer creates a summary renderer writing to opts.Writer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		out:    opts.Writer,
		width:  min(max(getTerminalWidth(opts.Writer), minTableWidth), maxTableWidth),
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	totals := report.Totals
	if totals.Files == 0 && totals.FilesErrored == 0 {
		fmt.Fprintln(r.out, NoFilesMessage)
		return nil
	}

	for _, fe := range report.Errors {
		fmt.Fprintln(r.out, r.styles.Error.Render("Error processing "+fe.Path+":"), fe.Message)
	}
	if len(report.Errors) > 0 {
		fmt.Fprintln(r.out)
	}

	if totals.Issues == 0 {
		checked := fmt.Sprintf(" (%d files checked)", totals.Files)
		fmt.Fprintln(r.out, r.styles.Success.Render("No issues found")+r.styles.Dim.Render(checked))
		return nil
	}

	if len(report.ByRule) > 0 {
		r.ruleTable(report.ByRule)
		fmt.Fprintln(r.out)
	}
	if len(report.ByWord) > 0 {
		r.wordTable(report.ByWord)
		fmt.Fprintln(r.out)
	}
	if len(report.ByFile) > 0 {
		r.fileTable(report.ByFile)
		fmt.Fprintln(r.out)
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Total:"), r.totalLine(totals))
	return nil
}

func (r *SummaryRenderer) rule() {
	fmt.Fprintln(r.out, r.styles.Separator.Render(strings.Repeat("─", r.width)))
}

// header prints a titled table header.
func (r *SummaryRenderer) header(title string, cols []column) {
	fmt.Fprintln(r.out, r.styles.Bold.Render(title))
	r.rule()
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = r.styles.Header.Render(c.pad(c.title))
	}
	fmt.Fprintln(r.out, strings.Join(cells, " "))
	r.rule()
}

// row prints one table row; the first cell takes lead's style.
func (r *SummaryRenderer) row(cols []column, lead *lipgloss.Style, values ...string) {
	cells := make([]string, 0, len(values))
	for i, v := range values {
		if i >= len(cols) {
			cells = append(cells, v)
			continue
		}
		cell := cols[i].pad(v)
		if i == 0 && lead != nil {
			cell = lead.Render(cell)
		}
		cells = append(cells, cell)
	}
	fmt.Fprintln(r.out, strings.Join(cells, " "))
}

func (r *SummaryRenderer) severityStyle(errors, warnings int) *lipgloss.Style {
	switch {
	case errors > 0:
		return &r.styles.ErrorRow
	case warnings > 0:
		return &r.styles.WarnRow
	}
	return nil
}

func (r *SummaryRenderer) ruleTable(rules []analysis.RuleAnalysis) {
	cols := []column{
		{title: "Rule", width: ruleColWidth},
		{title: "Count", width: numColWidth, right: true},
		{title: "Errors", width: numColWidth, right: true},
		{title: "Warnings", width: wideNumColWidth, right: true},
	}
	r.header("Rules Summary", cols)

	for _, ra := range rules {
		r.row(cols, r.severityStyle(ra.Errors, ra.Warnings),
			truncate(ra.FormatRule(r.opts.RuleFormat), ruleColWidth-1),
			strconv.Itoa(ra.Issues),
			strconv.Itoa(ra.Errors),
			strconv.Itoa(ra.Warnings),
		)
	}
}

func (r *SummaryRenderer) wordTable(words []analysis.WordAnalysis) {
	cols := []column{
		{title: "Word", width: wordColWidth},
		{title: "Count", width: numColWidth, right: true},
		{title: "Files", width: numColWidth, right: true},
		{title: " Suggestion", width: wordColWidth},
	}
	r.header("Misspelled Words", cols)

	shown := words[:min(len(words), maxWordsListed)]
	for _, wa := range shown {
		// The suggestion is styled, not padded, since it ends the line.
		r.row(cols[:3], &r.styles.ErrorRow,
			truncate(wa.Word, wordColWidth-1),
			strconv.Itoa(wa.Count),
			strconv.Itoa(len(wa.Files)),
			" "+r.styles.Suggestion.Render(wa.Suggestion),
		)
	}
	if rest := len(words) - len(shown); rest > 0 {
		fmt.Fprintln(r.out, r.styles.Dim.Render(fmt.Sprintf("… and %d more", rest)))
	}
}

func (r *SummaryRenderer) fileTable(files []analysis.FileAnalysis) {
	fileWidth := max(r.width-numColWidth-2*wideNumColWidth-3, minTableWidth/2)
	cols := []column{
		{title: "File", width: fileWidth},
		{title: "Count", width: numColWidth, right: true},
		{title: "Spelling", width: wideNumColWidth, right: true},
		{title: "Lint", width: wideNumColWidth, right: true},
	}
	r.header("Files Summary", cols)

	for _, fa := range files {
		r.row(cols, r.severityStyle(fa.Errors+fa.Spelling, fa.Warnings),
			truncatePath(fa.Path, fileWidth-1),
			strconv.Itoa(fa.Issues),
			strconv.Itoa(fa.Spelling),
			strconv.Itoa(fa.Issues-fa.Spelling),
		)
	}
}

// totalLine renders "N issues (S spelling, L lint) in F files".
func (r *SummaryRenderer) totalLine(totals analysis.Totals) string {
	var breakdown []string
	if totals.Spelling > 0 {
		breakdown = append(breakdown, r.styles.Error.Render(fmt.Sprintf("%d spelling", totals.Spelling)))
	}
	if totals.Lint > 0 {
		breakdown = append(breakdown, r.styles.Warning.Render(fmt.Sprintf("%d lint", totals.Lint)))
	}

	line := plural(totals.Issues, "issue")
	if len(breakdown) > 0 {
		line += " (" + strings.Join(breakdown, ", ") + ")"
	}
	return line + " in " + plural(totals.FilesWithIssues, "file")
}

func plural(n int, noun string) string {
	if n != 1 {
		noun += "s"
	}
	return strconv.Itoa(n) + " " + noun
}
