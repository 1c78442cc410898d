package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"profilescreen/internal/popup"
	"profilescreen/internal/presenter"
)

// ViewBridge is the presenter's view. It turns presenter calls into messages
// for a Bubble Tea program. send must not block the caller's goroutine for
// long; the program wiring in cmd passes a function that hands off to
// Program.Send on its own goroutine.
type ViewBridge struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

var (
	_ presenter.View     = (*ViewBridge)(nil)
	_ presenter.Renderer = (*ViewBridge)(nil)
)

// NewViewBridge creates a bridge delivering messages through send.
func NewViewBridge(send func(tea.Msg)) *ViewBridge {
	return &ViewBridge{send: send}
}

// SetSender replaces the delivery function, e.g. once the program exists.
func (b *ViewBridge) SetSender(send func(tea.Msg)) {
	b.mu.Lock()
	b.send = send
	b.mu.Unlock()
}

// ShowErrorAlert implements presenter.View.
func (b *ViewBridge) ShowErrorAlert() {
	b.deliver(ShowAlertMsg{Popup: popup.ErrorAlert()})
}

// Render implements presenter.Renderer.
func (b *ViewBridge) Render(s presenter.Snapshot) {
	b.deliver(SnapshotMsg{Snapshot: s})
}

func (b *ViewBridge) deliver(msg tea.Msg) {
	b.mu.Lock()
	send := b.send
	b.mu.Unlock()
	if send != nil {
		send(msg)
	}
}
