package render

import "github.com/joescharf/bugdesk/internal/models"

// Badge classes shared by the HTML and terminal surfaces.
const (
	ClassDanger = "danger"
	ClassWarn   = "warn"
	ClassOK     = "ok"
)

// SeverityClass maps High to danger, Medium to warn and anything else to ok.
func SeverityClass(s models.Severity) string {
	switch s {
	case models.SeverityHigh:
		return ClassDanger
	case models.SeverityMedium:
		return ClassWarn
	default:
		return ClassOK
	}
}

// StatusClass maps Resolved to ok, In Progress to warn and anything else
// (including Open) to danger.
func StatusClass(s models.Status) string {
	switch s {
	case models.StatusResolved:
		return ClassOK
	case models.StatusInProgress:
		return ClassWarn
	default:
		return ClassDanger
	}
}
