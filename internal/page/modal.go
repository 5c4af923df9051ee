package page

import "sync"

// Modal is the bug creation dialog's visibility.
type Modal struct {
	mu      sync.Mutex
	visible bool
	view    BugsView
}

func (m *Modal) show(v bool) {
	m.mu.Lock()
	m.visible = v
	m.mu.Unlock()
	m.view.ShowModal(v)
}

// Open shows the modal.
func (m *Modal) Open() { m.show(true) }

// Close hides the modal.
func (m *Modal) Close() { m.show(false) }

// ClickBackdrop closes the modal only when the click landed on the
// backdrop itself, not on the dialog inside it.
func (m *Modal) ClickBackdrop(onBackdrop bool) {
	if onBackdrop {
		m.Close()
	}
}

// Visible reports whether the modal is open.
func (m *Modal) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible
}
