package mailbox

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	// ErrFull reports a send against a full buffer. The message was
	// dropped; the caller is free to ignore the error.
	ErrFull = errors.New("mailbox: channel full")

	// ErrClosed reports a send through a closed sender, or after the
	// last sender closed the channel.
	ErrClosed = errors.New("mailbox: channel closed")
)

// defaultCapacity is used when New is given a capacity below the minimum.
const defaultCapacity = 1

// Channel is a bounded FIFO queue connecting many senders to one
// receiver. Sends never block: a message offered to a full buffer is
// counted and dropped. The channel closes when its last sender closes,
// and Receive keeps returning buffered messages until the drain is
// complete.
type Channel[T any] struct {
	mu      sync.RWMutex
	ch      chan T
	senders int
	closed  bool

	sent    atomic.Uint64
	dropped atomic.Uint64
}

// New creates a Channel buffering at most capacity messages.
// Capacities below 1 are raised to 1.
func New[T any](capacity int) *Channel[T] {
	if capacity < defaultCapacity {
		capacity = defaultCapacity
	}
	return &Channel[T]{ch: make(chan T, capacity)}
}

// Sender returns a new sending handle. The channel stays open until
// every handle has been closed. A Sender obtained after the channel
// already closed fails every TrySend with ErrClosed.
func (c *Channel[T]) Sender() *Sender[T] {
	s := &Sender[T]{c: c}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		s.closed.Store(true)
		return s
	}
	c.senders++
	return s
}

// Receive blocks until a message arrives or the channel is exhausted.
// The second return value is false only once the channel is closed and
// every buffered message has been delivered, in the order it was sent.
func (c *Channel[T]) Receive() (T, bool) {
	v, ok := <-c.ch
	return v, ok
}

// Len returns the number of messages currently buffered.
func (c *Channel[T]) Len() int {
	return len(c.ch)
}

// Cap returns the buffer capacity.
func (c *Channel[T]) Cap() int {
	return cap(c.ch)
}

// Stats holds the channel's delivery counters.
type Stats struct {
	// Sent is the number of messages accepted into the buffer.
	Sent uint64
	// Dropped is the number of messages rejected because the buffer
	// was full.
	Dropped uint64
}

// Stats returns a snapshot of the delivery counters.
func (c *Channel[T]) Stats() Stats {
	return Stats{
		Sent:    c.sent.Load(),
		Dropped: c.dropped.Load(),
	}
}
