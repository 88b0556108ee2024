package demo

import (
	"strings"

	"github.com/Iron-Ham/recount/internal/errors"
)

// Approach identifies one of the state-handling strategies the demo can
// be built with.
type Approach string

const (
	// ApproachClosure stores the count in a local variable captured by
	// both click handlers.
	ApproachClosure Approach = "closure"
	// ApproachStale hands each click handler its own copy of the count.
	// The copies drift apart; the approach is kept as a worked example
	// of the bug.
	ApproachStale Approach = "stale"
	// ApproachShared stores the count in a cell shared by both handlers,
	// with exclusive access checked at run time.
	ApproachShared Approach = "shared"
	// ApproachChannel sends messages over a bounded channel to a reducer
	// loop that owns the count.
	ApproachChannel Approach = "channel"
)

// Approaches returns every approach in presentation order.
func Approaches() []Approach {
	return []Approach{ApproachClosure, ApproachStale, ApproachShared, ApproachChannel}
}

// Parse resolves a user-supplied approach name. It accepts the approach
// names and the shorthand digits 1-4, case-insensitively.
func Parse(s string) (Approach, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ApproachClosure), "1":
		return ApproachClosure, nil
	case string(ApproachStale), "2":
		return ApproachStale, nil
	case string(ApproachShared), "3":
		return ApproachShared, nil
	case string(ApproachChannel), "4":
		return ApproachChannel, nil
	default:
		return "", errors.NewNotFoundError("approach", s)
	}
}

// Next returns the approach following a in presentation order, wrapping
// back to the first after the last. Unknown approaches restart the tour.
func (a Approach) Next() Approach {
	all := Approaches()
	for i, other := range all {
		if a == other {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// Describe returns a one-line description of how the approach holds its
// state.
func (a Approach) Describe() string {
	switch a {
	case ApproachClosure:
		return "both handlers mutate one captured local variable"
	case ApproachStale:
		return "each handler mutates its own copy of the count, so the copies drift (a deliberate anti-pattern)"
	case ApproachShared:
		return "both handlers mutate a shared cell that enforces exclusive access at run time"
	case ApproachChannel:
		return "handlers send messages over a bounded channel to a reducer loop that owns the count"
	default:
		return "unknown approach"
	}
}
