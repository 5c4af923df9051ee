package models

import "strings"

// Severity represents how badly a bug hurts.
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// Severities lists the severity vocabulary in display order.
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh}

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// ParseSeverity maps user input such as "high" onto a Severity.
func ParseSeverity(s string) (Severity, bool) {
	for _, sev := range Severities {
		if strings.EqualFold(strings.TrimSpace(s), string(sev)) {
			return sev, true
		}
	}
	return "", false
}

// Status represents where a bug is in its lifecycle.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// Statuses lists the status vocabulary in lifecycle order.
var Statuses = []Status{StatusOpen, StatusInProgress, StatusResolved}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// ParseStatus maps user input onto a Status. It accepts the CLI spellings
// "in_progress" and "in-progress" as well as the wire form "In Progress".
func ParseStatus(s string) (Status, bool) {
	norm := strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(s))
	for _, st := range Statuses {
		if strings.EqualFold(norm, string(st)) {
			return st, true
		}
	}
	return "", false
}

// Bug is one tracked defect as served by the backend. The client never
// assigns IDs and never edits a Bug in place; records are replaced wholesale
// on every fetch.
type Bug struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Severity    Severity `json:"severity"`
	Status      Status   `json:"status"`
	Language    string   `json:"language"`
}

// NewBug is the create payload for POST /api/bugs.
type NewBug struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Language    string   `json:"language"`
}

// StatusUpdate is the payload for PUT /api/bugs/{id}.
type StatusUpdate struct {
	Status Status `json:"status"`
}
