package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"profilescreen/internal/popup"
	"profilescreen/internal/presenter"
)

const (
	overlayAlert = "alert"
	overlayName  = "name"
)

// Presenter is what the screen needs from the presenter.
type Presenter interface {
	popup.Delegate
	TriggerFetch() presenter.FetchID
	HandleName(text *string) bool
	Snapshot() presenter.Snapshot
	Close()
}

var _ Presenter = (*presenter.Presenter)(nil)

// AppModel is the root model: the profile screen plus any open modals.
type AppModel struct {
	Presenter  Presenter
	Profile    *ProfileView
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Width      int
	Height     int
	quitting   bool
}

var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model driving p.
func NewAppModel(p Presenter) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindForMode("q", func() tea.Msg { return QuitMsg{} }, "Quit", ModeProfile)
	reg.Bind("ctrl+c", func() tea.Msg { return QuitMsg{} }, "Quit")
	reg.BindForMode("r", func() tea.Msg { return RefetchMsg{} }, "Refresh", ModeProfile)
	reg.BindForMode("n", func() tea.Msg { return ShowEditNameMsg{} }, "Name list", ModeProfile)
	reg.BindForMode("SPC r", func() tea.Msg { return RefetchMsg{} }, "Refresh", ModeProfile)
	reg.BindForMode("SPC n", func() tea.Msg { return ShowEditNameMsg{} }, "Name list", ModeProfile)
	reg.BindForMode("SPC q", func() tea.Msg { return QuitMsg{} }, "Quit", ModeProfile)
	return &AppModel{
		Presenter:  p,
		Profile:    NewProfileView(),
		KeyHandler: NewKeyHandler(reg),
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Mode reports whether input goes to a modal or the profile.
func (m *AppModel) Mode() AppMode {
	if m.Overlays.Len() > 0 {
		return ModeModal
	}
	return ModeProfile
}

// Init implements tea.Model. The first fetch starts with the program.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Profile.Init(), func() tea.Msg { return RefetchMsg{} })
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Width, a.Height = msg.Width, msg.Height
	case RefetchMsg:
		if a.Presenter != nil && !a.quitting {
			a.Presenter.TriggerFetch()
		}
		return a, nil
	case ShowAlertMsg:
		if a.quitting || a.Overlays.Contains(overlayAlert) {
			return a, nil
		}
		modal := NewAlertModal(msg.Popup)
		a.Overlays.Push(Overlay{View: modal, Kind: overlayAlert})
		return a, modal.Init()
	case PopupButtonMsg:
		a.Overlays.Pop()
		if a.Presenter != nil {
			a.Presenter.PopupDidClickButton(msg.Popup, msg.Button)
		}
		return a, nil
	case ShowEditNameMsg:
		name := ""
		if a.Presenter != nil {
			name = a.Presenter.Snapshot().FavoriteListName
		}
		modal := NewNameModal(name)
		a.Overlays.Push(Overlay{View: modal, Kind: overlayName})
		return a, modal.Init()
	case CommitNameMsg:
		a.Overlays.Pop()
		if a.Presenter != nil {
			a.Presenter.HandleName(&msg.Name)
		}
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case QuitMsg:
		a.quitting = true
		if a.Presenter != nil {
			a.Presenter.Close()
		}
		return a, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, func() tea.Msg { return QuitMsg{} }
		}
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			return a, cmd
		}
		if a.KeyHandler != nil {
			if consumed, cmd := a.KeyHandler.Handle(msg, ModeProfile); consumed {
				return a, cmd
			}
		}
	}

	// Cursor blinks and the like still reach an open modal.
	var cmds []tea.Cmd
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			cmds = append(cmds, cmd)
		}
	}
	v, cmd := a.Profile.Update(msg)
	if p, ok := v.(*ProfileView); ok {
		a.Profile = p
	}
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.quitting {
		return ""
	}
	base := a.Profile.View()
	if top, ok := a.Overlays.Peek(); ok {
		modal := top.View.View()
		if a.Width > 0 && a.Height > 0 {
			return lipgloss.Place(a.Width, a.Height, lipgloss.Center, lipgloss.Center, modal)
		}
		base += "\n" + modal
	}
	if help := RenderKeybindHelp(a.KeyHandler, a.Mode()); help != "" {
		base += "\n" + help
	}
	return base
}
