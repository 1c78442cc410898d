// Package popup describes alert popups and the delegate that receives their
// button clicks. Rendering lives in the ui package.
package popup

// Button identifies which popup button was clicked.
type Button int

const (
	ButtonDismiss Button = iota
	ButtonRetry
)

func (b Button) String() string {
	switch b {
	case ButtonRetry:
		return "retry"
	case ButtonDismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}

// Kind classifies a popup.
type Kind string

const (
	KindError Kind = "error"
	KindInfo  Kind = "info"
)

// Popup is the content of an alert.
type Popup struct {
	Kind    Kind
	Title   string
	Message string
	Buttons []Button
}

// Delegate receives popup button clicks.
type Delegate interface {
	PopupDidClickButton(p *Popup, b Button)
}

// ErrorAlert is the popup shown when a fetch fails.
func ErrorAlert() *Popup {
	return &Popup{
		Kind:    KindError,
		Title:   "Something went wrong",
		Message: "We couldn't load your products.",
		Buttons: []Button{ButtonRetry, ButtonDismiss},
	}
}

// Has reports whether p offers button b.
func (p *Popup) Has(b Button) bool {
	if p == nil {
		return false
	}
	for _, x := range p.Buttons {
		if x == b {
			return true
		}
	}
	return false
}
