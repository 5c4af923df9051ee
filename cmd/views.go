package cmd

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/joescharf/bugdesk/internal/assets"
	"github.com/joescharf/bugdesk/internal/chart"
	"github.com/joescharf/bugdesk/internal/markdown"
	"github.com/joescharf/bugdesk/internal/models"
	"github.com/joescharf/bugdesk/internal/output"
	"github.com/joescharf/bugdesk/internal/page"
	"github.com/joescharf/bugdesk/internal/render"
)

// reportedError marks an error the active view has already shown, so
// Execute exits non-zero without printing it again.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// termWidth returns the width of stdout, or 80 when it is not a terminal.
func termWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func stdinIsTerminal() bool  { return term.IsTerminal(int(os.Stdin.Fd())) }
func stdoutIsTerminal() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

// reviewTermView prints the review page to the terminal.
type reviewTermView struct {
	md *markdown.Renderer
	to string
}

func (v *reviewTermView) ShowLoading(msg string) { ui.Info("🧠 %s", msg) }
func (v *reviewTermView) ShowError(msg string)   { ui.Error("%s", msg) }
func (v *reviewTermView) ScrollIntoView()        {}
func (v *reviewTermView) Alert(msg string)       { ui.Info("%s", msg) }

func (v *reviewTermView) ShowReview(res markdown.Result) {
	out, err := v.md.Terminal(res.Markdown)
	if err != nil {
		ui.VerboseLog("terminal rendering failed: %v", err)
		out = res.Text + "\n"
	}
	fmt.Fprint(ui.Out, out)
}

// Prompt answers with the --email address; there is no interactive prompt.
func (v *reviewTermView) Prompt(string) (string, bool) {
	return v.to, v.to != ""
}

// bugsTermView prints the bugs board as a table.
type bugsTermView struct{}

func (bugsTermView) RenderRows(rows []render.BugRow) {
	if len(rows) == 0 {
		return
	}
	if err := ui.BugTable(rows); err != nil {
		ui.Error("render table: %v", err)
	}
}

func (bugsTermView) ShowEmpty(empty bool) {
	if empty {
		ui.Info("No bugs yet.")
	}
}

func (bugsTermView) ShowModal(visible bool) { ui.VerboseLog("modal visible: %v", visible) }
func (bugsTermView) ClearDraft()            {}
func (bugsTermView) Alert(msg string)       { ui.Warning("%s", msg) }
func (bugsTermView) ShowError(msg string)   { ui.Error("%s", msg) }

// insightsTermView prints each frequency table as a bar chart.
type insightsTermView struct{}

func (insightsTermView) ShowInsights(in page.Insights) {
	ui.Info("%d bugs", in.Total)
	width := termWidth()
	for _, cfg := range in.Charts() {
		fmt.Fprintln(ui.Out)
		fmt.Fprint(ui.Out, chart.Terminal(cfg, width))
	}
}

func (insightsTermView) ShowError(msg string) { ui.Error("%s", msg) }

// reportsTermView keeps the latest rendered rows; the report command
// prints them once filtering is done.
type reportsTermView struct {
	rows []*models.Bug
}

func (v *reportsTermView) RenderReport(rows []*models.Bug) { v.rows = rows }
func (v *reportsTermView) ShowError(msg string)            { ui.Error("%s", msg) }

// dryRunBackend passes reads through and reports writes instead of
// sending them.
type dryRunBackend struct {
	page.Backend
}

func (b dryRunBackend) CreateBug(_ context.Context, nb models.NewBug) error {
	ui.DryRunMsg("Would create bug %q (%s, %s)", nb.Title, nb.Severity, nb.Language)
	return nil
}

func (b dryRunBackend) UpdateStatus(_ context.Context, id int64, status models.Status) error {
	ui.DryRunMsg("Would set bug #%d to %s", id, status)
	return nil
}

func (b dryRunBackend) DeleteBug(_ context.Context, id int64) error {
	ui.DryRunMsg("Would delete bug #%d", id)
	return nil
}

func (b dryRunBackend) SendEmail(_ context.Context, to, subject, _ string) (string, error) {
	ui.DryRunMsg("Would email %q to %s", subject, to)
	return "dry run: nothing sent", nil
}

// backend returns the configured backend, wrapped for --dry-run.
func backend() page.Backend {
	var b page.Backend = newClient()
	if dryRun {
		b = dryRunBackend{Backend: b}
	}
	return b
}

// writeHTML writes the page held by view to path as a standalone document.
func writeHTML(path string, view *page.HTMLView, mode page.Mode) error {
	if dryRun {
		ui.DryRunMsg("Would write %s page to %s", mode, path)
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := view.WriteDocument(f, mode, assets.Stylesheet()+newRenderer().Highlighter().CSS()); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	ui.Success("Wrote %s", output.Cyan(path))
	return nil
}
