package presenter

// View is what the presenter calls to produce user-visible effects.
type View interface {
	ShowErrorAlert()
}

// Renderer is an optional View capability. When the attached view implements
// it, the presenter pushes a fresh Snapshot after every state change.
type Renderer interface {
	Render(Snapshot)
}

// Snapshot is a point-in-time copy of everything a view needs to draw.
// Version increases with every snapshot a presenter produces.
type Snapshot struct {
	Version          uint64
	UserID           int64
	FullName         string
	BarTitle         string
	ShowComponent    bool
	ComponentTitle   string
	ShowButton       bool
	FavoriteListName string
	SavedIDs         []int64
	InFlight         int
}
