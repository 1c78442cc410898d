package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// NameModal edits the favourites list name.
type NameModal struct {
	input textinput.Model
}

var _ View = (*NameModal)(nil)

// NewNameModal creates a name modal prefilled with current.
func NewNameModal(current string) *NameModal {
	ti := textinput.New()
	ti.Placeholder = "list name"
	ti.Width = 40
	ti.CharLimit = 64
	ti.SetValue(current)
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	return &NameModal{input: ti}
}

// Value returns the text entered so far.
func (m *NameModal) Value() string {
	return m.input.Value()
}

// Init implements View. The cursor is static, so there is no blink to start.
func (m *NameModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *NameModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			name := m.input.Value()
			return m, func() tea.Msg { return CommitNameMsg{Name: name} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *NameModal) View() string {
	content := Styles.Title.Render("Favorites list name") + "\n\n"
	content += m.input.View() + "\n\n"
	content += Styles.Hint.Render("Enter: save  Esc: cancel")
	return Styles.Box.Render(content)
}
