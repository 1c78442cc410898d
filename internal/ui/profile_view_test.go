package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"profilescreen/internal/popup"
	"profilescreen/internal/presenter"
)

func TestProfileView_Render(t *testing.T) {
	tests := []struct {
		name    string
		snap    presenter.Snapshot
		want    []string
		notWant []string
	}{
		{
			name:    "before first fetch",
			snap:    presenter.Snapshot{},
			want:    []string{presenter.DefaultBarTitle, "No name yet", "nothing saved"},
			notWant: []string{"Continue"},
		},
		{
			name: "loaded with component and button",
			snap: presenter.Snapshot{
				Version:          1,
				UserID:           7,
				FullName:         "Ada Lovelace",
				BarTitle:         "Running shoes",
				ShowComponent:    true,
				ComponentTitle:   "Free shipping",
				ShowButton:       true,
				FavoriteListName: "Wishlist",
				SavedIDs:         []int64{3, 1},
			},
			want:    []string{"Running shoes", "Ada Lovelace", "user #7", "Free shipping", "Wishlist", "#3  #1", "Continue"},
			notWant: []string{"Loading"},
		},
		{
			name: "component title hidden when disabled",
			snap: presenter.Snapshot{
				Version:        1,
				ComponentTitle: "Free shipping",
				InFlight:       1,
			},
			want:    []string{"Loading"},
			notWant: []string{"Free shipping"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewProfileView()
			if tt.snap.Version > 0 {
				v.Update(SnapshotMsg{Snapshot: tt.snap})
			}
			out := v.View()
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out, w)
			}
		})
	}
}

func TestProfileView_WindowSize(t *testing.T) {
	v := NewProfileView()
	v.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 60, v.Width)
}

func TestAlertModal_View(t *testing.T) {
	m := NewAlertModal(popup.ErrorAlert())
	out := m.View()
	assert.Contains(t, out, "Something went wrong")
	assert.Contains(t, out, "Enter: retry")

	info := NewAlertModal(&popup.Popup{Kind: popup.KindInfo, Title: "Saved", Buttons: []popup.Button{popup.ButtonDismiss}})
	assert.NotContains(t, info.View(), "retry")
	_, cmd := info.Update(keyMsg("enter"))
	assert.Equal(t, popup.ButtonDismiss, cmd().(PopupButtonMsg).Button)
}

func TestProfileView_TruncatesToWidth(t *testing.T) {
	v := NewProfileView()
	v.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	v.Update(SnapshotMsg{Snapshot: presenter.Snapshot{
		Version:  1,
		BarTitle: "An extremely long product name",
		FullName: "Ada Lovelace",
	}})
	out := v.View()
	assert.Contains(t, out, "An extremely lo…")
	assert.NotContains(t, out, "product name")
	assert.Contains(t, out, "Ada Lovelace")
}
