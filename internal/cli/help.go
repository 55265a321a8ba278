package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/spellint/internal/ui/pretty"
)

const usageBody = `{{ head "Usage:" }}
{{- if .Runnable}}
  {{ bold .UseLine }}{{end}}
{{- if .HasAvailableSubCommands}}
  {{ bold .CommandPath }} [command]{{end}}
{{- if .HasExample}}

{{ head "Examples:" }}
{{ dim .Example }}{{end}}
{{- if .HasAvailableSubCommands}}

{{ head "Commands:" }}
{{- range .Commands}}{{if or .IsAvailableCommand (eq .Name "help")}}
  {{ name .Name .NamePadding }} {{ .Short }}{{end}}{{end}}{{end}}
{{- if .HasAvailableLocalFlags}}

{{ head "Flags:" }}
{{ flags .LocalFlags }}{{end}}
{{- if .HasAvailableInheritedFlags}}

{{ head "Global Flags:" }}
{{ flags .InheritedFlags }}{{end}}
{{- if .HasAvailableSubCommands}}

Use "{{ bold .CommandPath }} [command] --help" for more information about a command.{{end}}
`

// HelpFormatter renders cobra help and usage with the report palette.
type HelpFormatter struct {
	styles *pretty.Styles
	usage  *template.Template
	help   *template.Template
}

// NewHelpFormatter picks colors for writer the way reports do.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	h := &HelpFormatter{styles: pretty.NewStyles(pretty.IsColorEnabled(colorMode, writer))}
	funcs := template.FuncMap{
		"head":  h.styles.Header.Render,
		"bold":  h.styles.Bold.Render,
		"dim":   h.styles.Dim.Render,
		"name":  h.commandName,
		"flags": h.flagUsages,
		"intro": trimLineEnds,
	}
	h.usage = template.Must(template.New("usage").Funcs(funcs).Parse(usageBody))
	h.help = template.Must(template.New("help").Funcs(funcs).Parse(
		`{{with or .Long .Short}}{{ intro . }}` + "\n\n" + `{{end}}` + usageBody))
	return h
}

// ApplyToCommand installs the templates on cmd; subcommands inherit them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		if err := h.usage.Execute(c.OutOrStderr(), c); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := h.help.Execute(c.OutOrStdout(), c); err != nil {
			c.PrintErrln("render help:", err)
		}
	})
}

func (h *HelpFormatter) commandName(name string, width int) string {
	return h.styles.Success.Render(fmt.Sprintf("%-*s", width, name))
}

// flagUsages highlights the names in pflag's listing. A row looks like
// "  -f, --format string   description"; the names end at the first double space.
func (h *HelpFormatter) flagUsages(set *pflag.FlagSet) string {
	var b strings.Builder
	for row := range strings.Lines(set.FlagUsages()) {
		row = strings.TrimSuffix(row, "\n")
		body := strings.TrimLeft(row, " ")
		names, desc, ok := strings.Cut(body, "  ")
		if !ok {
			b.WriteString(row + "\n")
			continue
		}
		b.WriteString(row[:len(row)-len(body)])
		for i, field := range strings.Fields(names) {
			if i > 0 {
				b.WriteByte(' ')
			}
			word, comma := strings.CutSuffix(field, ",")
			if strings.HasPrefix(word, "-") {
				b.WriteString(h.styles.Location.Render(word))
			} else {
				b.WriteString(h.styles.Dim.Render(word))
			}
			if comma {
				b.WriteByte(',')
			}
		}
		b.WriteString("   " + strings.TrimLeft(desc, " ") + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func trimLineEnds(s string) string {
	var b strings.Builder
	for line := range strings.Lines(s) {
		_, nl := strings.CutSuffix(line, "\n")
		b.WriteString(strings.TrimRight(line, " \t\n"))
		if nl {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
