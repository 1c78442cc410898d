package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp renders the footer help bar. After SPC it lists the
// leader sequences instead of the single keys.
func RenderKeybindHelp(h *KeyHandler, mode AppMode) string {
	if h == nil || h.Registry == nil {
		return ""
	}
	bindings := h.Registry.Bindings(mode, h.LeaderWaiting)
	if h.LeaderWaiting {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		))
	}
	if len(bindings) == 0 {
		return ""
	}

	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	m.Styles.ShortDesc = Styles.Hint
	m.Styles.ShortSeparator = Styles.Hint

	content := m.ShortHelpView(bindings)
	if h.LeaderWaiting {
		content = Styles.Muted.Render(strings.Join(h.Buffer, " ")) + " " + content
	}
	return content
}
