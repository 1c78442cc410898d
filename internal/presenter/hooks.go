package presenter

import "profilescreen/internal/popup"

// Hooks are the injection points for screen-specific behaviour. Any hook may
// be nil; a nil predicate reads as false and a nil action does nothing.
type Hooks struct {
	// FirstFlag and SecondFlag gate ShouldShowButton.
	FirstFlag  func(State) bool
	SecondFlag func(State) bool

	// FirstMethod backs Presenter.FirstMethod.
	FirstMethod func(State) bool

	// SecondMethod's branches, evaluated in order when the component flag is
	// enabled.
	FirstCondition    func(State) bool
	SecondCondition   func(State) bool
	OnFirstCondition  func(State)
	OnSecondCondition func(State)
	OnOtherwise       func(State)

	// OnPopupButton receives alert button clicks.
	OnPopupButton func(popup.Button)
	// OnAddedToList runs after the favourites manager saved products.
	OnAddedToList func(ids []int64)
}

func (h Hooks) test(f func(State) bool, s State) bool {
	return f != nil && f(s)
}

func (h Hooks) run(f func(State), s State) {
	if f != nil {
		f(s)
	}
}
