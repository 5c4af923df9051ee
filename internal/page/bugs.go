package page

import (
	"context"
	"fmt"
	"strings"

	"github.com/joescharf/bugdesk/internal/models"
	"github.com/joescharf/bugdesk/internal/render"
	"github.com/joescharf/bugdesk/internal/store"
)

const msgTitleRequired = "Title required"

// BugsController drives the bugs board: load, row actions and the
// creation modal. Every write is followed by a full reload; rows are never
// patched locally.
type BugsController struct {
	backend Backend
	view    BugsView
	records *store.Records
	modal   *Modal
}

// NewBugsController creates a controller with its own empty store.
func NewBugsController(b Backend, v BugsView) *BugsController {
	return &BugsController{
		backend: b,
		view:    v,
		records: store.New(),
		modal:   &Modal{view: v},
	}
}

// Records returns the controller's store.
func (c *BugsController) Records() *store.Records { return c.records }

// Modal returns the creation modal.
func (c *BugsController) Modal() *Modal { return c.modal }

// Load fetches all bugs, replaces the store and renders one row per bug.
// An empty collection shows the empty state with no rows.
func (c *BugsController) Load(ctx context.Context) error {
	bugs, err := c.backend.ListBugs(ctx)
	if err != nil {
		c.view.ShowError(err.Error())
		return fmt.Errorf("load bugs: %w", err)
	}
	c.records.Replace(bugs)

	rows := render.BugRows(c.records.All())
	if len(rows) == 0 {
		c.view.RenderRows(nil)
		c.view.ShowEmpty(true)
		return nil
	}
	c.view.ShowEmpty(false)
	c.view.RenderRows(rows)
	return nil
}

// HandleClick is the board's single delegated click handler. It reads the
// action and bug id off the clicked target when called, so it keeps
// working across any number of reloads. Clicks that miss every action
// button are ignored.
func (c *BugsController) HandleClick(ctx context.Context, t render.Target) error {
	act, id, ok, err := t.Resolve()
	if err != nil {
		c.view.ShowError(err.Error())
		return err
	}
	if !ok {
		return nil
	}
	return c.Apply(ctx, act, id)
}

// Apply performs one row action and reloads. If the write fails the error
// is shown inline and the rendered rows are left as they were.
func (c *BugsController) Apply(ctx context.Context, act render.Action, id int64) error {
	var err error
	if status, ok := act.Status(); ok {
		err = c.backend.UpdateStatus(ctx, id, status)
	} else {
		err = c.backend.DeleteBug(ctx, id)
	}
	if err != nil {
		msg := fmt.Sprintf("%s #%d failed: %v", act, id, err)
		c.view.ShowError(msg)
		return fmt.Errorf("%s bug %d: %w", act, id, err)
	}
	return c.Load(ctx)
}

// Save validates and creates a bug from the modal's draft. An empty title
// is alerted and nothing is sent; the modal stays open. On success the
// draft is cleared, the modal closed and the board reloaded.
func (c *BugsController) Save(ctx context.Context, nb models.NewBug) error {
	nb.Title = strings.TrimSpace(nb.Title)
	nb.Description = strings.TrimSpace(nb.Description)
	if nb.Title == "" {
		c.view.Alert(msgTitleRequired)
		return &ValidationError{Field: "title", Message: msgTitleRequired}
	}
	if nb.Severity == "" {
		nb.Severity = models.SeverityLow
	}

	if err := c.backend.CreateBug(ctx, nb); err != nil {
		c.view.ShowError(err.Error())
		return fmt.Errorf("create bug: %w", err)
	}
	c.modal.Close()
	c.view.ClearDraft()
	return c.Load(ctx)
}
