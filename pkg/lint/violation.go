package lint

// Violation is the structural lint oracle's native report of one problem.
// RuleIDs lists the rule ID first, then its name.
type Violation struct {
	Line        int
	Column      int
	RuleIDs     []string
	Description string
	Detail      string
}

// Violation converts a diagnostic into its oracle form.
// A zero Column means the rule reported no column.
func (d *Diagnostic) Violation() Violation {
	ids := make([]string, 0, 2)
	if d.RuleID != "" {
		ids = append(ids, d.RuleID)
	}
	if d.RuleName != "" && d.RuleName != d.RuleID {
		ids = append(ids, d.RuleName)
	}

	description := d.RuleDescription
	if description == "" {
		description = d.Message
	}

	return Violation{
		Line:        d.StartLine,
		Column:      d.StartColumn,
		RuleIDs:     ids,
		Description: description,
		Detail:      d.Detail,
	}
}

// Violations returns the file's diagnostics in oracle form, in diagnostic order.
func (fr *FileResult) Violations() []Violation {
	if len(fr.Diagnostics) == 0 {
		return nil
	}
	out := make([]Violation, 0, len(fr.Diagnostics))
	for i := range fr.Diagnostics {
		out = append(out, fr.Diagnostics[i].Violation())
	}
	return out
}
