package presenter

// State holds the fields the presenter derives its display flags from.
// The user id is fixed at construction.
type State struct {
	Name                 string
	Surname              string
	ComponentTitle       string
	ComponentFlagEnabled bool

	userID int64
}

// NewState creates an empty state for userID.
func NewState(userID int64) State {
	return State{userID: userID}
}

// UserID returns the id the state was created for.
func (s State) UserID() int64 {
	return s.userID
}

// FullName joins name and surname with a single space.
func (s State) FullName() string {
	return s.Name + " " + s.Surname
}

// ShouldShowComponent reports whether the promo component has a title and is
// enabled.
func (s State) ShouldShowComponent() bool {
	return s.ComponentTitle != "" && s.ComponentFlagEnabled
}
