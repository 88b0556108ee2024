// Package dom isolates the counter from any concrete display. The demo
// builders talk to a Binding; the binding renders into an in-memory
// tree (tests, terminal) or the browser document (wasm).
package dom

// Click is the event name dispatched when a button is pressed.
const Click = "click"

// Element is an opaque handle to a node owned by a Binding. A handle is
// only valid with the binding that created it; passing it elsewhere
// panics.
type Element interface {
	element()
}

// Handler reacts to an event dispatched on an element. Handlers run on
// the dispatching goroutine and must not block.
type Handler func()

// Binding is the minimal document surface the demo needs.
type Binding interface {
	// Body returns the root container.
	Body() Element

	// CreateElement creates a detached element of the given tag.
	CreateElement(tag string) Element

	// SetText replaces el's text content.
	SetText(el Element, text string)

	// AppendChild attaches child as parent's last child.
	AppendChild(parent, child Element)

	// AddEventListener registers handler for the named event on el.
	// Handlers fire in registration order.
	AddEventListener(el Element, event string, handler Handler)
}
