// Package counter holds the click-counter domain: the message vocabulary
// understood by the reducer and the pure transition function over it.
package counter

import "fmt"

// Message is a state-change request sent from a click handler toward the
// reducer. The counter understands exactly two messages.
type Message int

const (
	// Increment raises the counter by one.
	Increment Message = iota
	// Decrement lowers the counter by one.
	Decrement
)

// String returns the message name for logs.
func (m Message) String() string {
	switch m {
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	default:
		return "unknown"
	}
}

// Reduce returns the state that follows from applying msg to n.
// It is pure: no I/O, no shared state. Unknown messages leave the
// state unchanged.
func Reduce(n int, msg Message) int {
	switch msg {
	case Increment:
		return n + 1
	case Decrement:
		return n - 1
	default:
		return n
	}
}

// DisplayText formats the counter for presentation.
func DisplayText(n int) string {
	return fmt.Sprintf("count is %d", n)
}
