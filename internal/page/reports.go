package page

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joescharf/bugdesk/internal/models"
	"github.com/joescharf/bugdesk/internal/render"
	"github.com/joescharf/bugdesk/internal/store"
)

// ReportsController fetches the collection once and filters it locally.
type ReportsController struct {
	backend Backend
	view    ReportsView
	records *store.Records
	now     func() time.Time

	mu     sync.Mutex
	filter models.ReportFilter
}

// NewReportsController creates a controller with its own empty store.
func NewReportsController(b Backend, v ReportsView) *ReportsController {
	return &ReportsController{backend: b, view: v, records: store.New(), now: time.Now}
}

// Records returns the controller's store.
func (c *ReportsController) Records() *store.Records { return c.records }

// Languages returns the distinct languages in the fetched collection, the
// choices for the language filter.
func (c *ReportsController) Languages() []string { return c.records.Languages() }

// Load fetches the collection and renders it through the current filter.
func (c *ReportsController) Load(ctx context.Context) error {
	bugs, err := c.backend.ListBugs(ctx)
	if err != nil {
		c.view.ShowError(err.Error())
		return fmt.Errorf("load report: %w", err)
	}
	c.records.Replace(bugs)
	c.view.RenderReport(c.Rows())
	return nil
}

// ApplyFilter returns the fetched bugs matching f, in fetch order. It
// never refetches and never changes the store.
func (c *ReportsController) ApplyFilter(f models.ReportFilter) []*models.Bug {
	return c.records.Filter(f)
}

// SetFilter replaces the current filter and re-renders from the store.
func (c *ReportsController) SetFilter(f models.ReportFilter) {
	c.mu.Lock()
	c.filter = f
	c.mu.Unlock()
	c.view.RenderReport(c.Rows())
}

// Filter returns the current filter.
func (c *ReportsController) Filter() models.ReportFilter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Rows returns the bugs matching the current filter.
func (c *ReportsController) Rows() []*models.Bug {
	return c.ApplyFilter(c.Filter())
}

// ExportCSV writes rows to dir as bugs-YYYY-MM-DD.csv and returns the
// path. The file is closed as soon as it is written.
func (c *ReportsController) ExportCSV(dir string, rows []*models.Bug) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, render.CSVFileName(c.now()))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export: %w", err)
	}
	if _, err := f.WriteString(render.ExportCSV(rows)); err != nil {
		f.Close()
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export: %w", err)
	}
	return path, nil
}
