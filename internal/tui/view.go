package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joescharf/bugdesk/internal/render"
)

type (
	rowsMsg       []render.BugRow
	emptyMsg      bool
	modalMsg      bool
	noticeMsg     string
	alertMsg      string
	clearDraftMsg struct{}
	doneMsg       struct{ err error }
)

// Sender delivers messages to a running program. *tea.Program implements
// it.
type Sender interface {
	Send(msg tea.Msg)
}

// View implements page.BugsView by turning each call into a message for
// the board. Controller calls must run inside a tea.Cmd, never on the
// Update goroutine, since Send blocks until the program reads the message.
type View struct {
	mu sync.Mutex
	to Sender
}

// Attach sets the program messages are sent to.
func (v *View) Attach(to Sender) {
	v.mu.Lock()
	v.to = to
	v.mu.Unlock()
}

func (v *View) send(msg tea.Msg) {
	v.mu.Lock()
	to := v.to
	v.mu.Unlock()
	if to != nil {
		to.Send(msg)
	}
}

func (v *View) RenderRows(rows []render.BugRow) { v.send(rowsMsg(rows)) }
func (v *View) ShowEmpty(empty bool)           { v.send(emptyMsg(empty)) }
func (v *View) ShowModal(visible bool)         { v.send(modalMsg(visible)) }
func (v *View) ClearDraft()                    { v.send(clearDraftMsg{}) }
func (v *View) Alert(msg string)               { v.send(alertMsg(msg)) }
func (v *View) ShowError(msg string)           { v.send(noticeMsg(msg)) }
