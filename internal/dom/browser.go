//go:build js && wasm

package dom

import "syscall/js"

// browserElement wraps a live JavaScript DOM node.
type browserElement struct {
	v js.Value
}

func (browserElement) element() {}

// Browser is a Binding over the real document via syscall/js. Event
// callbacks are retained for the lifetime of the binding; the page owns
// the process, so nothing is released until Release.
type Browser struct {
	doc   js.Value
	body  js.Value
	funcs []js.Func
}

var _ Binding = (*Browser)(nil)

// NewBrowser binds to the global document.
func NewBrowser() *Browser {
	doc := js.Global().Get("document")
	return &Browser{
		doc:  doc,
		body: doc.Get("body"),
	}
}

// Body returns the document body.
func (b *Browser) Body() Element {
	return browserElement{v: b.body}
}

// CreateElement creates a detached element of the given tag.
func (b *Browser) CreateElement(tag string) Element {
	return browserElement{v: b.doc.Call("createElement", tag)}
}

// SetText replaces el's text content.
func (b *Browser) SetText(el Element, text string) {
	b.value(el).Set("textContent", text)
}

// AppendChild attaches child as parent's last child.
func (b *Browser) AppendChild(parent, child Element) {
	b.value(parent).Call("appendChild", b.value(child))
}

// AddEventListener registers handler for the named event on el. The
// wrapping js.Func stays retained until Release.
func (b *Browser) AddEventListener(el Element, event string, handler Handler) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		handler()
		return nil
	})
	b.funcs = append(b.funcs, fn)
	b.value(el).Call("addEventListener", event, fn)
}

// Release frees the retained event callbacks. Call only once no further
// events can fire.
func (b *Browser) Release() {
	for _, fn := range b.funcs {
		fn.Release()
	}
	b.funcs = nil
}

// value unwraps an element handle, panicking on foreign handles.
func (b *Browser) value(el Element) js.Value {
	e, ok := el.(browserElement)
	if !ok {
		panic("dom: element does not belong to this binding")
	}
	return e.v
}
