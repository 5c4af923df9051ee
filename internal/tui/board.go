// Package tui is the interactive bugs board: a table of bugs with row
// actions and a creation modal, driven by page.BugsController.
package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/joescharf/bugdesk/internal/models"
	"github.com/joescharf/bugdesk/internal/page"
	"github.com/joescharf/bugdesk/internal/render"
)

// draft holds the creation form's inputs between openings of the modal.
type draft struct {
	Title       string
	Description string
	Severity    models.Severity
	Language    string
}

// Model is the board's bubbletea model.
type Model struct {
	ctx   context.Context
	ctrl  *page.BugsController
	table table.Model
	rows  []render.BugRow
	draft *draft
	form  *huh.Form

	empty  bool
	modal  bool
	notice string
	alert  string
	width  int
	height int
}

var columns = []table.Column{
	{Title: "ID", Width: 6},
	{Title: "Title", Width: 40},
	{Title: "Severity", Width: 9},
	{Title: "Status", Width: 12},
	{Title: "Language", Width: 12},
}

// New creates a board for ctrl. language seeds the creation form.
func New(ctx context.Context, ctrl *page.BugsController, language string) Model {
	t := table.New(table.WithColumns(columns), table.WithFocused(true), table.WithHeight(15))
	return Model{
		ctx:   ctx,
		ctrl:  ctrl,
		table: t,
		draft: &draft{Severity: models.SeverityLow, Language: language},
	}
}

// Run starts the board on b and blocks until the user quits.
func Run(ctx context.Context, b page.Backend, language string, opts ...tea.ProgramOption) error {
	view := &View{}
	ctrl := page.NewBugsController(b, view)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(ctx, ctrl, language), opts...)
	view.Attach(p)
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.reload()
}

func (m Model) reload() tea.Cmd {
	return func() tea.Msg {
		return doneMsg{err: m.ctrl.Load(m.ctx)}
	}
}

// click dispatches act on the row selected when the key was pressed.
func (m Model) click(act render.Action) tea.Cmd {
	i := m.table.Cursor()
	if m.empty || i < 0 || i >= len(m.rows) {
		return nil
	}
	target := render.Target{Act: string(act), ID: strconv.FormatInt(m.rows[i].ID, 10)}
	return func() tea.Msg {
		return doneMsg{err: m.ctrl.HandleClick(m.ctx, target)}
	}
}

func (m Model) save() tea.Cmd {
	nb := models.NewBug{
		Title:       m.draft.Title,
		Description: m.draft.Description,
		Severity:    m.draft.Severity,
		Language:    m.draft.Language,
	}
	return func() tea.Msg {
		return doneMsg{err: m.ctrl.Save(m.ctx, nb)}
	}
}

func (m Model) modalCmd(open bool) tea.Cmd {
	return func() tea.Msg {
		if open {
			m.ctrl.Modal().Open()
		} else {
			m.ctrl.Modal().ClickBackdrop(true)
		}
		return nil
	}
}

func newForm(d *draft) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Title").Value(&d.Title),
		huh.NewText().Title("Description").Lines(3).Value(&d.Description),
		huh.NewSelect[models.Severity]().Title("Severity").
			Options(huh.NewOptions(models.Severities...)...).
			Value(&d.Severity),
		huh.NewInput().Title("Language").Value(&d.Language),
	)).WithShowHelp(false)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if h := msg.Height - 8; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case rowsMsg:
		m.rows = msg
		m.notice = ""
		trs := make([]table.Row, 0, len(msg))
		for _, r := range msg {
			trs = append(trs, table.Row{"#" + strconv.FormatInt(r.ID, 10), r.Title, r.Severity, r.Status, r.Language})
		}
		m.table.SetRows(trs)
		if m.table.Cursor() >= len(trs) {
			m.table.SetCursor(max(len(trs)-1, 0))
		}
		return m, nil

	case emptyMsg:
		m.empty = bool(msg)
		return m, nil

	case noticeMsg:
		m.notice = string(msg)
		return m, nil

	case alertMsg:
		m.alert = string(msg)
		return m, nil

	case clearDraftMsg:
		m.draft.Title, m.draft.Description = "", ""
		return m, nil

	case modalMsg:
		m.modal = bool(msg)
		if !m.modal {
			m.form = nil
			return m, nil
		}
		if m.form == nil {
			m.form = newForm(m.draft)
			return m, m.form.Init()
		}
		return m, nil

	case doneMsg:
		// A rejected save leaves the modal open; bring the form back.
		if m.modal && m.form == nil {
			m.form = newForm(m.draft)
			return m, m.form.Init()
		}
		return m, nil

	case tea.KeyMsg:
		if m.modal && m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateBoard(msg)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.alert = ""
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "g":
		return m, m.reload()
	case "n":
		return m, m.modalCmd(true)
	case "p":
		return m, m.click(render.ActionProgress)
	case "r":
		return m, m.click(render.ActionResolved)
	case "d":
		return m, m.click(render.ActionDelete)
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			return m, m.modalCmd(false)
		case "ctrl+c":
			return m, tea.Quit
		}
		m.alert = ""
	}

	f, cmd := m.form.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		m.form = form
	}
	switch m.form.State {
	case huh.StateCompleted:
		m.form = nil
		return m, m.save()
	case huh.StateAborted:
		m.form = nil
		return m, m.modalCmd(false)
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🐞 Bugs"))
	b.WriteString("\n\n")

	if m.notice != "" {
		b.WriteString(errorStyle.Render("❌ " + m.notice))
		b.WriteString("\n")
	}
	if m.alert != "" {
		b.WriteString(alertStyle.Render(m.alert))
		b.WriteString("\n")
	}

	if m.modal && m.form != nil {
		b.WriteString(modalStyle.Render(titleStyle.Render("New bug") + "\n\n" + m.form.View()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter next/save · esc close"))
		return b.String()
	}

	if m.empty {
		b.WriteString(mutedStyle.Render("No bugs yet. Press n to file one."))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
		if i := m.table.Cursor(); i >= 0 && i < len(m.rows) {
			r := m.rows[i]
			b.WriteString(badge(r.SeverityClass, r.Severity) + " " + badge(r.StatusClass, r.Status) + " " + mutedStyle.Render(r.Title))
			b.WriteString("\n")
		}
	}
	b.WriteString(helpStyle.Render("p in progress · r resolve · d delete · n new · g reload · q quit"))
	return b.String()
}
