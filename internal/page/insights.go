package page

import (
	"context"
	"fmt"

	"github.com/joescharf/bugdesk/internal/render"
	"github.com/joescharf/bugdesk/internal/store"
)

// Insights is the aggregate view of one fetched collection.
type Insights struct {
	Total    int
	Severity render.Frequency
	Status   render.Frequency
	Language render.Frequency
}

// Charts returns one independent bar chart per frequency table, in the
// order severity, status, language.
func (in Insights) Charts() []render.ChartConfig {
	return []render.ChartConfig{
		render.BarChart("Severity", in.Severity),
		render.BarChart("Status", in.Status),
		render.BarChart("Language", in.Language),
	}
}

// InsightsController aggregates the bug collection once per activation.
type InsightsController struct {
	backend Backend
	view    InsightsView
	records *store.Records
}

// NewInsightsController creates a controller with its own empty store.
func NewInsightsController(b Backend, v InsightsView) *InsightsController {
	return &InsightsController{backend: b, view: v, records: store.New()}
}

// Load fetches the collection and shows its frequency tables.
func (c *InsightsController) Load(ctx context.Context) (Insights, error) {
	bugs, err := c.backend.ListBugs(ctx)
	if err != nil {
		c.view.ShowError(err.Error())
		return Insights{}, fmt.Errorf("load insights: %w", err)
	}
	c.records.Replace(bugs)

	all := c.records.All()
	in := Insights{
		Total:    len(all),
		Severity: render.CountBy(all, render.FieldSeverity),
		Status:   render.CountBy(all, render.FieldStatus),
		Language: render.CountBy(all, render.FieldLanguage),
	}
	c.view.ShowInsights(in)
	return in, nil
}
