// Package gateway defines the data-fetching collaborator a presenter talks to,
// plus an HTTP implementation and a fixture-backed one.
//
// Every Gateway reports through a completion callback that must be invoked
// exactly once per Fetch call.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidArgument is reported when Fetch is called with a user id that can
// never be valid. No I/O is attempted in that case.
var ErrInvalidArgument = errors.New("invalid argument")

// Completion receives the result of a fetch.
type Completion func(FetchResult)

// Gateway performs asynchronous fetches on behalf of a presenter.
type Gateway interface {
	// Fetch starts a fetch for userID and calls done exactly once with the
	// outcome. Fetch itself does not block on I/O.
	Fetch(ctx context.Context, userID int64, done Completion)
}

// ValidateUserID returns an ErrInvalidArgument-wrapping error for negative ids.
func ValidateUserID(userID int64) error {
	if userID < 0 {
		return fmt.Errorf("user id %d: %w", userID, ErrInvalidArgument)
	}
	return nil
}

// Once wraps done so that only the first call is delivered. Later calls are
// dropped. A nil done yields a no-op completion.
func Once(done Completion) Completion {
	if done == nil {
		return func(FetchResult) {}
	}
	var once sync.Once
	return func(r FetchResult) {
		once.Do(func() { done(r) })
	}
}
