// Package reducer runs the message loop that owns a piece of state: it
// receives messages from a single source, folds each one through a pure
// function, and renders the result.
//
// The loop goroutine is the only holder of the state, so no locking
// appears anywhere in the cycle. Rendering happens after every applied
// message; nothing renders until the first message arrives.
package reducer

import "sync/atomic"

// Func folds a message into a state and returns the next state. It must
// be pure: the loop calls it with the only live copy of the state.
type Func[S, M any] func(S, M) S

// Render publishes a state snapshot. It runs on the loop goroutine
// after every applied message.
type Render[S any] func(S)

// Source is the receiving side of a message queue. A mailbox.Channel
// satisfies it.
type Source[M any] interface {
	// Receive blocks for the next message; ok is false once the source
	// is exhausted.
	Receive() (M, bool)
}

// Loop drives one state value: receive, reduce, render, repeat.
type Loop[S, M any] struct {
	source Source[M]
	fn     Func[S, M]
	render Render[S]
	state  S

	started atomic.Bool
	done    chan struct{}
}

// New builds a loop over source starting from initial. fn and render
// must be non-nil.
func New[S, M any](source Source[M], initial S, fn Func[S, M], render Render[S]) *Loop[S, M] {
	return &Loop[S, M]{
		source: source,
		fn:     fn,
		render: render,
		state:  initial,
		done:   make(chan struct{}),
	}
}

// Run executes the loop on the calling goroutine until the source is
// exhausted: each received message is folded into the state, then the
// new state is rendered before the next receive. Run panics if the loop
// was already started.
func (l *Loop[S, M]) Run() {
	if !l.started.CompareAndSwap(false, true) {
		panic("reducer: loop already started")
	}
	defer close(l.done)

	for {
		msg, ok := l.source.Receive()
		if !ok {
			return
		}
		l.state = l.fn(l.state, msg)
		l.render(l.state)
	}
}

// Start runs the loop on its own goroutine.
func (l *Loop[S, M]) Start() {
	go l.Run()
}

// Done returns a channel that closes once the loop has exited.
func (l *Loop[S, M]) Done() <-chan struct{} {
	return l.done
}
