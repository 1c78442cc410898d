package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "Quit")
	reg.Bind("space q", tea.Quit, "Quit")
	reg.BindForMode("r", tea.Quit, "Refresh", ModeProfile)

	assert.NotNil(t, reg.Lookup("q", ModeModal))
	assert.NotNil(t, reg.Lookup("SPC q", ModeProfile), "space normalizes to SPC")
	assert.NotNil(t, reg.Lookup("r", ModeProfile))
	assert.Nil(t, reg.Lookup("r", ModeModal))
	assert.Nil(t, reg.Lookup("unknown", ModeProfile))
	assert.True(t, reg.HasPrefix("SPC"))
	assert.False(t, reg.HasPrefix("q"))
}

func TestKeybindRegistry_Bindings(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "Quit")
	reg.BindForMode("r", tea.Quit, "Refresh", ModeProfile)
	reg.Bind("SPC n", tea.Quit, "Name list")

	single := reg.Bindings(ModeProfile, false)
	require.Len(t, single, 2)
	assert.Equal(t, "q", single[0].Help().Key)
	assert.Equal(t, "Refresh", single[1].Help().Desc)

	assert.Len(t, reg.Bindings(ModeModal, false), 1)

	leader := reg.Bindings(ModeProfile, true)
	require.Len(t, leader, 1)
	assert.Equal(t, "n", leader[0].Help().Key)
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	}, "")
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg(" "), ModeProfile)
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.True(t, h.LeaderWaiting)

	consumed, cmd = h.Handle(keyMsg("x"), ModeProfile)
	assert.True(t, consumed)
	assert.False(t, h.LeaderWaiting)
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, executed)
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	h := NewKeyHandler(NewKeybindRegistry())
	h.Handle(keyMsg(" "), ModeProfile)
	consumed, _ := h.Handle(keyMsg("esc"), ModeProfile)
	assert.True(t, consumed)
	assert.False(t, h.LeaderWaiting)
	assert.Empty(t, h.Buffer)

	consumed, _ = h.Handle(keyMsg("esc"), ModeProfile)
	assert.False(t, consumed, "esc outside leader mode passes through")
}

func TestKeyHandler_UnknownLeaderSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC r", tea.Quit, "")
	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "), ModeProfile)

	consumed, cmd := h.Handle(keyMsg("z"), ModeProfile)
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindForMode("r", tea.Quit, "", ModeProfile)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("r"), ModeProfile)
	assert.True(t, consumed)
	assert.NotNil(t, cmd)

	consumed, _ = h.Handle(keyMsg("r"), ModeModal)
	assert.False(t, consumed)
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("r", tea.Quit, "Refresh")
	reg.Bind("SPC n", tea.Quit, "Name list")
	h := NewKeyHandler(reg)

	out := RenderKeybindHelp(h, ModeProfile)
	assert.Contains(t, out, "Refresh")
	assert.NotContains(t, out, "Name list")

	h.Handle(keyMsg(" "), ModeProfile)
	out = RenderKeybindHelp(h, ModeProfile)
	assert.Contains(t, out, "Name list")
	assert.Contains(t, out, "cancel")

	assert.Empty(t, RenderKeybindHelp(nil, ModeProfile))
}
