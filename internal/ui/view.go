package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a piece of the profile screen: the profile body or one of the
// modals stacked over it.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
