package ui

import (
	"profilescreen/internal/popup"
	"profilescreen/internal/presenter"
)

// SnapshotMsg carries fresh display data from the presenter.
type SnapshotMsg struct {
	Snapshot presenter.Snapshot
}

// ShowAlertMsg is sent when the presenter asks for an error alert.
type ShowAlertMsg struct {
	Popup *popup.Popup
}

// PopupButtonMsg is sent when a popup button is clicked (Enter or Esc).
type PopupButtonMsg struct {
	Popup  *popup.Popup
	Button popup.Button
}

// RefetchMsg asks the presenter for a new fetch ('r').
type RefetchMsg struct{}

// ShowEditNameMsg opens the name modal ('n').
type ShowEditNameMsg struct{}

// CommitNameMsg is sent when the name modal is confirmed.
type CommitNameMsg struct {
	Name string
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// QuitMsg detaches the presenter and exits.
type QuitMsg struct{}
