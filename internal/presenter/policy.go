package presenter

import (
	"fmt"
	"strings"
)

// FetchPolicy decides how overlapping TriggerFetch calls interact.
type FetchPolicy int

const (
	// PolicyIndependent lets every fetch run and resolve on its own.
	PolicyIndependent FetchPolicy = iota
	// PolicyCancelReplace cancels outstanding fetches when a new one starts.
	// Results of cancelled fetches are dropped.
	PolicyCancelReplace
)

func (p FetchPolicy) String() string {
	switch p {
	case PolicyIndependent:
		return "independent"
	case PolicyCancelReplace:
		return "cancel-replace"
	default:
		return fmt.Sprintf("FetchPolicy(%d)", int(p))
	}
}

// ParsePolicy parses "independent" or "cancel-replace". Empty means
// independent.
func ParsePolicy(s string) (FetchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "independent":
		return PolicyIndependent, nil
	case "cancel-replace", "cancel_replace", "replace":
		return PolicyCancelReplace, nil
	default:
		return PolicyIndependent, fmt.Errorf("unknown fetch policy %q", s)
	}
}
