package reporter

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/yaklabco/spellint/pkg/analysis"
	"github.com/yaklabco/spellint/pkg/check"
	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/runner"
)

const (
	sarifVersion   = "2.1.0"
	sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
	sarifToolURI   = "https://github.com/yaklabco/spellint"
)

// SARIFOutput is a SARIF 2.1.0 log holding a single run.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool struct {
		Driver sarifDriver `json:"driver"`
	} `json:"tool"`
	Results     []sarifResult     `json:"results"`
	Invocations []sarifInvocation `json:"invocations,omitempty"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifText struct {
	Text string `json:"text"`
}

type sarifRule struct {
	ID               string         `json:"id"`
	Name             string         `json:"name,omitempty"`
	ShortDescription sarifText      `json:"shortDescription"`
	DefaultConfig    *sarifLevel    `json:"defaultConfiguration,omitempty"`
	Properties       map[string]any `json:"properties,omitempty"`
}

type sarifLevel struct {
	Level string `json:"level"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifText       `json:"message"`
	Locations []sarifLocation `json:"locations"`
	Fixes     []sarifFix      `json:"fixes,omitempty"`
}

type sarifLocation struct {
	PhysicalLocation struct {
		ArtifactLocation sarifArtifact `json:"artifactLocation"`
		Region           *sarifRegion  `json:"region,omitempty"`
	} `json:"physicalLocation"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine,omitempty"`
	StartColumn int `json:"startColumn,omitempty"`
	EndLine     int `json:"endLine,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
}

type sarifFix struct {
	Description     sarifText     `json:"description"`
	ArtifactChanges []sarifChange `json:"artifactChanges"`
}

type sarifChange struct {
	ArtifactLocation sarifArtifact      `json:"artifactLocation"`
	Replacements     []sarifReplacement `json:"replacements"`
}

type sarifReplacement struct {
	DeletedRegion   sarifRegion `json:"deletedRegion"`
	InsertedContent *sarifText  `json:"insertedContent,omitempty"`
}

type sarifInvocation struct {
	ExecutionSuccessful        bool                `json:"executionSuccessful"`
	ToolExecutionNotifications []sarifNotification `json:"toolExecutionNotifications,omitempty"`
}

type sarifNotification struct {
	Level     string          `json:"level"`
	Message   sarifText       `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

func location(uri string, region *sarifRegion) sarifLocation {
	var loc sarifLocation
	loc.PhysicalLocation.ArtifactLocation.URI = uri
	loc.PhysicalLocation.Region = region
	return loc
}

// SARIFReporter writes results as a SARIF log for code scanning tools.
// Unreadable documents and dictionary failures become tool notifications.
type SARIFReporter struct {
	opts Options
}

// NewSARIFReporter creates a SARIF reporter.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{opts: opts}
}

// Report implements Reporter.
func (r *SARIFReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	log := r.build(result)
	if err := encodeJSON(r.opts.Writer, log, r.opts.Compact); err != nil {
		return 0, fmt.Errorf("encode SARIF: %w", err)
	}
	return len(log.Runs[0].Results), nil
}

func (r *SARIFReporter) build(result *runner.Result) *SARIFOutput {
	run := sarifRun{Results: []sarifResult{}}
	run.Tool.Driver = sarifDriver{
		Name:           "spellint",
		Version:        r.opts.ToolVersion,
		InformationURI: sarifToolURI,
		Rules:          []sarifRule{},
	}

	if result != nil {
		var notes []sarifNotification
		if result.DictionaryError != nil {
			notes = append(notes, sarifNotification{Level: "error", Message: sarifText{result.DictionaryError.Error()}})
		}

		seen := make(map[string]bool)
		for _, file := range result.Files {
			uri := filepath.ToSlash(file.DisplayPath)
			if file.Error != nil {
				notes = append(notes, sarifNotification{
					Level:     "error",
					Message:   sarifText{file.Error.Error()},
					Locations: []sarifLocation{location(uri, nil)},
				})
				continue
			}
			for _, f := range file.Report {
				id := sarifRuleID(f)
				if !seen[id] {
					seen[id] = true
					run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, r.rule(f))
				}
				run.Results = append(run.Results, toSARIFResult(uri, id, f))
			}
		}

		if len(notes) > 0 {
			run.Invocations = []sarifInvocation{{ToolExecutionNotifications: notes}}
		}
	}

	return &SARIFOutput{Schema: sarifSchemaURI, Version: sarifVersion, Runs: []sarifRun{run}}
}

func sarifRuleID(f check.Finding) string {
	if f.Source == check.SourceSpelling || f.RuleID == "" {
		return analysis.SpellingRuleID
	}
	return f.RuleID
}

// rule describes the rule behind f, using registry metadata when available.
func (r *SARIFReporter) rule(f check.Finding) sarifRule {
	if f.Source == check.SourceSpelling {
		return sarifRule{
			ID:               analysis.SpellingRuleID,
			Name:             analysis.SpellingRuleID,
			ShortDescription: sarifText{"Word not found in the dictionary"},
			DefaultConfig:    &sarifLevel{"error"},
		}
	}

	out := sarifRule{
		ID:               f.RuleID,
		ShortDescription: sarifText{f.Message},
		DefaultConfig:    &sarifLevel{sarifLevelFor(config.Severity(f.Severity))},
	}
	if r.opts.Registry == nil {
		return out
	}
	if lr, ok := r.opts.Registry.GetByID(f.RuleID); ok {
		out.Name = lr.Name()
		out.ShortDescription.Text = lr.Description()
		out.DefaultConfig.Level = sarifLevelFor(lr.DefaultSeverity())
		out.Properties = map[string]any{"tags": lr.Tags()}
	}
	return out
}

// toSARIFResult converts a finding. Spelling findings span the word and
// offer one fix per suggestion.
func toSARIFResult(uri, ruleID string, f check.Finding) sarifResult {
	region := sarifRegion{StartLine: f.Line, StartColumn: f.Column}
	res := sarifResult{
		RuleID:  ruleID,
		Level:   sarifLevelFor(config.Severity(f.Severity)),
		Message: sarifText{f.Message},
	}

	if f.Source == check.SourceSpelling {
		res.Level = "error"
		if f.Word != "" {
			region.EndLine = f.Line
			region.EndColumn = f.Column + utf8.RuneCountInString(f.Word)
		}
		for _, s := range f.Suggestions {
			res.Fixes = append(res.Fixes, replacementFix(uri, region, s))
		}
	}

	res.Locations = []sarifLocation{location(uri, &region)}
	return res
}

func replacementFix(uri string, region sarifRegion, replacement string) sarifFix {
	return sarifFix{
		Description: sarifText{"Replace with " + strconv.Quote(replacement)},
		ArtifactChanges: []sarifChange{{
			ArtifactLocation: sarifArtifact{URI: uri},
			Replacements:     []sarifReplacement{{DeletedRegion: region, InsertedContent: &sarifText{replacement}}},
		}},
	}
}

func sarifLevelFor(s config.Severity) string {
	switch s {
	case config.SeverityError:
		return "error"
	case config.SeverityInfo:
		return "note"
	default:
		return "warning"
	}
}
