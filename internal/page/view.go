package page

import (
	"github.com/joescharf/bugdesk/internal/markdown"
	"github.com/joescharf/bugdesk/internal/models"
	"github.com/joescharf/bugdesk/internal/render"
)

// ReviewView is the surface of the review page. ShowLoading, ShowError and
// ShowReview each replace the review region; nothing is appended.
type ReviewView interface {
	ShowLoading(msg string)
	ShowError(msg string)
	ShowReview(res markdown.Result)
	ScrollIntoView()
	// Prompt asks the user for a value. ok is false when cancelled.
	Prompt(label string) (value string, ok bool)
	Alert(msg string)
}

// BugsView is the surface of the bugs board and its creation modal.
type BugsView interface {
	RenderRows(rows []render.BugRow)
	ShowEmpty(empty bool)
	ShowModal(visible bool)
	ClearDraft()
	Alert(msg string)
	ShowError(msg string)
}

// InsightsView shows the frequency tables and their charts.
type InsightsView interface {
	ShowInsights(in Insights)
	ShowError(msg string)
}

// ReportsView shows the filtered report table.
type ReportsView interface {
	RenderReport(rows []*models.Bug)
	ShowError(msg string)
}
