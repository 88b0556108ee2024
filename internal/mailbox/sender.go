package mailbox

import "sync/atomic"

// Sender is one handler's handle on a Channel. Each Sender must be
// closed exactly once when its handler is torn down; the channel closes
// after the last one.
type Sender[T any] struct {
	c      *Channel[T]
	closed atomic.Bool
}

// TrySend offers v to the channel without blocking. It returns nil when
// the message was buffered, ErrFull when the buffer was full (the
// message is dropped), and ErrClosed when this sender or the whole
// channel has been closed.
func (s *Sender[T]) TrySend(v T) error {
	if s.closed.Load() {
		return ErrClosed
	}

	c := s.c
	// Read lock excludes the close of the underlying channel, so the
	// send below cannot hit a closed chan.
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClosed
	}

	select {
	case c.ch <- v:
		c.sent.Add(1)
		return nil
	default:
		c.dropped.Add(1)
		return ErrFull
	}
}

// Close releases the sender. Closing the last open sender closes the
// channel; the receiver still drains whatever is buffered. Close is
// idempotent.
func (s *Sender[T]) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}

	c := s.c
	c.mu.Lock()
	defer c.mu.Unlock()
	c.senders--
	if c.senders == 0 && !c.closed {
		c.closed = true
		close(c.ch)
	}
}
