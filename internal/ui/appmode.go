package ui

// AppMode is what the screen is currently accepting input for.
type AppMode int

const (
	ModeProfile AppMode = iota
	ModeModal
)

func (m AppMode) String() string {
	switch m {
	case ModeProfile:
		return "Profile"
	case ModeModal:
		return "Modal"
	default:
		return "Unknown"
	}
}
