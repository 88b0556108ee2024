// Package cell provides a shared mutable cell with run-time exclusivity
// checking, for state that several event handlers mutate through one
// reference.
package cell

import "sync/atomic"

// Cell wraps a value shared by multiple handlers. All access goes through
// With, which enforces exclusive access at run time: overlapping access,
// re-entrant or concurrent, panics instead of racing.
type Cell[T any] struct {
	busy  atomic.Bool
	value T
}

// New returns a Cell holding v.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// With runs fn with exclusive access to the cell's value. Mutations made
// through the pointer are visible to later callers.
//
// With panics if the value is already in use, whether from another
// goroutine or re-entrantly from inside fn. The cell is released when fn
// returns, including by panic.
func (c *Cell[T]) With(fn func(*T)) {
	if !c.busy.CompareAndSwap(false, true) {
		panic("cell: overlapping access to shared value")
	}
	defer c.busy.Store(false)
	fn(&c.value)
}

// Get returns a copy of the current value.
func (c *Cell[T]) Get() T {
	var v T
	c.With(func(p *T) { v = *p })
	return v
}
