package analysis

import (
	"cmp"
	"maps"
	"slices"
	"time"

	"github.com/yaklabco/spellint/pkg/check"
	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// group accumulates one aggregate row plus the set of files it touches.
type group[T any] struct {
	row   *T
	files map[string]struct{}
}

// groups indexes aggregate rows by key.
type groups[T any] struct {
	byKey map[string]*group[T]
	init  func(key string) *T
}

func newGroups[T any](init func(key string) *T) *groups[T] {
	return &groups[T]{byKey: make(map[string]*group[T]), init: init}
}

// at returns the row for key, creating it on first use, and records path
// against it.
func (g *groups[T]) at(key, path string) *T {
	grp, ok := g.byKey[key]
	if !ok {
		grp = &group[T]{row: g.init(key), files: make(map[string]struct{})}
		g.byKey[key] = grp
	}
	grp.files[path] = struct{}{}
	return grp.row
}

// rows flattens the index, handing each row its sorted file list.
func (g *groups[T]) rows(setFiles func(*T, []string)) []T {
	out := make([]T, 0, len(g.byKey))
	for _, grp := range g.byKey {
		setFiles(grp.row, slices.Sorted(maps.Keys(grp.files)))
		out = append(out, *grp.row)
	}
	return out
}

// severityOf maps a finding to the severity it is reported with. Spelling
// findings have no rule severity and count as errors.
func severityOf(f check.Finding) config.Severity {
	switch {
	case f.Source == check.SourceSpelling:
		return config.SeverityError
	case f.Severity == "":
		return config.SeverityWarning
	}
	return config.Severity(f.Severity)
}

// groupKey is the rule a finding is grouped under.
func groupKey(f check.Finding) string {
	if f.Source == check.SourceSpelling || f.RuleID == "" {
		return SpellingRuleID
	}
	return f.RuleID
}

func tally(sev config.Severity, errs, warns, infos *int) {
	switch sev {
	case config.SeverityError:
		*errs++
	case config.SeverityWarning:
		*warns++
	case config.SeverityInfo:
		*infos++
	}
}

// Analyze computes every view of result in one pass over its findings.
// Views disabled in opts are left empty; totals are always filled.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{Version: ReportVersion, Timestamp: time.Now()}
	if result == nil {
		return report
	}

	files := newGroups(func(path string) *FileAnalysis { return &FileAnalysis{Path: path} })
	rules := newGroups(func(id string) *RuleAnalysis { return &RuleAnalysis{RuleID: id, RuleName: opts.ruleName(id)} })
	words := newGroups(func(w string) *WordAnalysis { return &WordAnalysis{Word: w} })
	fileRules := make(map[string]map[string]struct{})

	t := &report.Totals
	for _, outcome := range result.Files {
		path := cmp.Or(outcome.DisplayPath, outcome.Path)

		if outcome.Error != nil {
			t.FilesErrored++
			report.Errors = append(report.Errors, FileError{Path: path, Message: outcome.Error.Error()})
			continue
		}
		t.Files++
		if len(outcome.Report) == 0 {
			continue
		}
		t.FilesWithIssues++

		for _, f := range outcome.Report {
			sev := severityOf(f)
			key := groupKey(f)

			fa := files.at(path, path)
			fa.Issues++
			if fileRules[path] == nil {
				fileRules[path] = make(map[string]struct{})
			}
			fileRules[path][key] = struct{}{}

			ra := rules.at(key, path)
			ra.Issues++
			tally(sev, &ra.Errors, &ra.Warnings, &ra.Infos)

			t.Issues++
			if f.Source == check.SourceSpelling {
				t.Spelling++
				fa.Spelling++
				if f.Word != "" {
					wa := words.at(f.Word, path)
					wa.Count++
					if wa.Suggestion == "" && len(f.Suggestions) > 0 {
						wa.Suggestion = f.Suggestions[0]
					}
				}
			} else {
				t.Lint++
				tally(sev, &t.Errors, &t.Warnings, &t.Infos)
				tally(sev, &fa.Errors, &fa.Warnings, &fa.Infos)
			}

			if opts.IncludeFindings {
				report.Findings = append(report.Findings, opts.entry(path, sev, f))
			}
		}
	}

	if opts.IncludeByFile {
		report.ByFile = files.rows(func(fa *FileAnalysis, _ []string) {
			fa.Rules = slices.Sorted(maps.Keys(fileRules[fa.Path]))
		})
		slices.SortFunc(report.ByFile, func(a, b FileAnalysis) int {
			return opts.order(a.Path, b.Path, a.Issues, b.Issues, [3]int{a.Errors, a.Warnings, a.Infos}, [3]int{b.Errors, b.Warnings, b.Infos})
		})
	}
	if opts.IncludeByRule {
		report.ByRule = rules.rows(func(ra *RuleAnalysis, files []string) { ra.Files = files })
		slices.SortFunc(report.ByRule, func(a, b RuleAnalysis) int {
			return opts.order(a.RuleID, b.RuleID, a.Issues, b.Issues, [3]int{a.Errors, a.Warnings, a.Infos}, [3]int{b.Errors, b.Warnings, b.Infos})
		})
	}
	if opts.IncludeByWord {
		report.ByWord = words.rows(func(wa *WordAnalysis, files []string) { wa.Files = files })
		slices.SortFunc(report.ByWord, func(a, b WordAnalysis) int {
			// Words carry no severity; severity order falls back to count.
			return opts.order(a.Word, b.Word, a.Count, b.Count, [3]int{}, [3]int{})
		})
	}
	return report
}

func (o Options) entry(path string, sev config.Severity, f check.Finding) FindingEntry {
	e := FindingEntry{
		FilePath:    path,
		Source:      f.Source.String(),
		RuleID:      f.RuleID,
		Severity:    string(sev),
		Message:     f.Message,
		Line:        f.Line,
		Column:      f.Column,
		Word:        f.Word,
		Suggestions: f.Suggestions,
	}
	if f.RuleID != "" {
		e.RuleName = o.ruleName(f.RuleID)
	}
	return e
}

// order compares two rows under o.SortBy. Ties always break on key.
// sevA and sevB hold error, warning and info counts.
func (o Options) order(keyA, keyB string, countA, countB int, sevA, sevB [3]int) int {
	byKey := cmp.Compare(keyA, keyB)
	switch o.SortBy {
	case SortByAlpha:
		return byKey
	case SortBySeverity:
		for i := range sevA {
			if c := cmp.Compare(sevB[i], sevA[i]); c != 0 {
				return c
			}
		}
		return cmp.Or(cmp.Compare(countB, countA), byKey)
	}
	byCount := cmp.Compare(countA, countB)
	if o.SortDesc {
		byCount = -byCount
	}
	return cmp.Or(byCount, byKey)
}
