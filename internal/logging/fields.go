package logging

// Structured field keys, shared so the same concept is logged under one name.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldDuration   = "duration"

	FieldFlavor   = "flavor"
	FieldJobs     = "jobs"
	FieldConfig   = "config"
	FieldLanguage = "language"

	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesWithIssues = "files_with_issues"
	FieldFindingsTotal   = "findings_total"
	FieldSpelling        = "spelling"
	FieldLint            = "lint"
	FieldSegments        = "segments"
	FieldWords           = "words"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	FieldName        = "name"
	FieldSeverity    = "severity"
	FieldEnabled     = "enabled"
	FieldDescription = "description"
)
