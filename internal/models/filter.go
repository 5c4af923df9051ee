package models

// ReportFilter narrows a report snapshot. Empty fields match everything, so
// the zero value matches all bugs.
type ReportFilter struct {
	Severity Severity
	Status   Status
	Language string
}

// IsEmpty reports whether no field is set.
func (f ReportFilter) IsEmpty() bool {
	return f.Severity == "" && f.Status == "" && f.Language == ""
}

// Matches reports whether b satisfies every non-empty field of f exactly.
func (f ReportFilter) Matches(b *Bug) bool {
	if f.Severity != "" && b.Severity != f.Severity {
		return false
	}
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if f.Language != "" && b.Language != f.Language {
		return false
	}
	return true
}
