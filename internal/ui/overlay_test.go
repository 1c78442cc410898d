package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profilescreen/internal/popup"
)

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)
	_, ok = s.UpdateTop(keyMsg("esc"))
	assert.False(t, ok)

	s.Push(Overlay{View: NewNameModal(""), Kind: overlayName})
	s.Push(Overlay{View: NewAlertModal(popup.ErrorAlert()), Kind: overlayAlert})
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(overlayName))

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, overlayAlert, top.Kind)

	cmd, ok := s.UpdateTop(keyMsg("esc"))
	require.True(t, ok)
	require.NotNil(t, cmd)
	assert.Equal(t, PopupButtonMsg{Popup: top.View.(*AlertModal).Popup, Button: popup.ButtonDismiss}, cmd())

	s.Pop()
	assert.False(t, s.Contains(overlayAlert))
	assert.Equal(t, 1, s.Len())
}
