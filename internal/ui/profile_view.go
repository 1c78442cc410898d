package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"profilescreen/internal/presenter"
	"profilescreen/internal/ui/textutil"
)

// ProfileView draws the latest presenter snapshot.
type ProfileView struct {
	Snapshot presenter.Snapshot
	Loaded   bool // at least one snapshot arrived
	Width    int
	spinner  spinner.Model
}

var _ View = (*ProfileView)(nil)

// NewProfileView creates an empty profile view.
func NewProfileView() *ProfileView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Title
	return &ProfileView{spinner: s}
}

// Init implements View.
func (v *ProfileView) Init() tea.Cmd {
	return v.spinner.Tick
}

// Update implements View. Snapshots older than the one shown are ignored;
// they can arrive out of order because each is delivered on its own goroutine.
func (v *ProfileView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		if v.Loaded && msg.Snapshot.Version <= v.Snapshot.Version {
			return v, nil
		}
		v.Snapshot = msg.Snapshot
		v.Loaded = true
		return v, nil
	case tea.WindowSizeMsg:
		v.Width = msg.Width
		return v, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}
	return v, nil
}

// View implements View.
func (v *ProfileView) View() string {
	s := v.Snapshot
	title := s.BarTitle
	if title == "" {
		title = presenter.DefaultBarTitle
	}
	bar := Styles.Bar
	if v.Width > 0 {
		bar = bar.Width(v.Width)
	}
	// Padding on the bar and around the body.
	title = textutil.Fit(title, v.Width-4)
	body := v.Width - 2

	var b strings.Builder
	b.WriteString(bar.Render(title))
	b.WriteString("\n\n")

	if !v.Loaded || s.InFlight > 0 {
		b.WriteString(v.spinner.View() + " " + Styles.Muted.Render("Loading…"))
		b.WriteString("\n\n")
	}

	name := strings.TrimSpace(s.FullName)
	if name == "" {
		b.WriteString(Styles.Empty.Render("No name yet"))
	} else {
		b.WriteString(Styles.Title.Render(textutil.Fit(name, body)))
	}
	b.WriteString("\n")
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("user #%d", s.UserID)))
	b.WriteString("\n\n")

	if s.ShowComponent {
		b.WriteString(Styles.Component.Render(textutil.Fit(s.ComponentTitle, body-4)))
		b.WriteString("\n\n")
	}

	list := s.FavoriteListName
	if list == "" {
		list = "Favorites"
	}
	b.WriteString(Styles.Normal.Render(textutil.Fit(list, body)) + "\n")
	if len(s.SavedIDs) == 0 {
		b.WriteString(Styles.Empty.Render("  nothing saved"))
	} else {
		ids := make([]string, len(s.SavedIDs))
		for i, id := range s.SavedIDs {
			ids[i] = "#" + strconv.FormatInt(id, 10)
		}
		b.WriteString("  " + strings.Join(ids, "  "))
	}
	b.WriteString("\n")

	if s.ShowButton {
		b.WriteString("\n" + Styles.Button.Render("Continue") + "\n")
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}
