package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"profilescreen/internal/popup"
)

// AlertModal shows a popup. Enter clicks retry when offered; Esc dismisses.
type AlertModal struct {
	Popup *popup.Popup
}

var _ View = (*AlertModal)(nil)

// NewAlertModal creates a modal for p.
func NewAlertModal(p *popup.Popup) *AlertModal {
	return &AlertModal{Popup: p}
}

// Init implements View.
func (m *AlertModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *AlertModal) Update(msg tea.Msg) (View, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k.String() {
	case "esc":
		return m, m.click(popup.ButtonDismiss)
	case "enter", "r":
		if m.Popup.Has(popup.ButtonRetry) {
			return m, m.click(popup.ButtonRetry)
		}
		return m, m.click(popup.ButtonDismiss)
	}
	return m, nil
}

func (m *AlertModal) click(b popup.Button) tea.Cmd {
	p := m.Popup
	return func() tea.Msg { return PopupButtonMsg{Popup: p, Button: b} }
}

// View implements View.
func (m *AlertModal) View() string {
	box, title := Styles.Box, Styles.Title
	if m.Popup.Kind == popup.KindError {
		box, title = Styles.BoxDanger, Styles.TitleWarning
	}
	content := title.Render(m.Popup.Title) + "\n\n"
	content += Styles.Normal.Render(m.Popup.Message)

	var help []string
	if m.Popup.Has(popup.ButtonRetry) {
		help = append(help, "Enter: retry")
	}
	help = append(help, "Esc: dismiss")
	content += "\n\n" + Styles.Hint.Render(strings.Join(help, "  "))
	return box.Render(content)
}
