// Package rules provides the built-in lint rules for spellint.
//
// The rules follow markdownlint's numbering, names and descriptions so
// existing configuration keys keep working:
//
//   - MD001 heading-increment
//   - MD009 no-trailing-spaces
//   - MD010 no-hard-tabs
//   - MD012 no-multiple-blanks
//   - MD013 line-length (off by default)
//   - MD018 no-missing-space-atx
//   - MD019 no-multiple-space-atx
//   - MD022 blanks-around-headings
//   - MD023 heading-start-left
//   - MD025 single-h1
//   - MD026 no-trailing-punctuation
//   - MD031 blanks-around-fences
//   - MD032 blanks-around-lists
//   - MD033 no-inline-html
//   - MD034 no-bare-urls
//   - MD040 fenced-code-language
//   - MD041 first-line-heading
//   - MD042 no-empty-links
//   - MD047 single-trailing-newline
//
// Importing the package registers every rule with lint.DefaultRegistry.
package rules
