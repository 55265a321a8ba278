package check

import "sort"

// Aggregate merges both streams into a Report ordered by (line, column).
// At equal positions lint findings come first, and each stream keeps its
// own relative order.
func Aggregate(spelling, lint []Finding) Report {
	report := make(Report, 0, len(spelling)+len(lint))
	report = append(report, lint...)
	report = append(report, spelling...)

	sort.SliceStable(report, func(i, j int) bool {
		if report[i].Line != report[j].Line {
			return report[i].Line < report[j].Line
		}
		return report[i].Column < report[j].Column
	})

	return report
}
