package dom

import "sync"

// node is an element in the in-memory tree.
type node struct {
	owner     *Memory
	tag       string
	text      string
	children  []*node
	listeners map[string][]Handler
}

func (*node) element() {}

// Memory is a Binding backed by an in-memory tree. It drives the demo
// in tests, headless runs, and the terminal UI, where the tree is read
// back instead of painted.
//
// Memory is safe for concurrent use: the reducer goroutine calls
// SetText while the UI goroutine reads and dispatches.
type Memory struct {
	mu     sync.RWMutex
	body   *node
	onText func(el Element, text string)
}

var _ Binding = (*Memory)(nil)

// NewMemory returns an empty tree with just a body element.
func NewMemory() *Memory {
	m := &Memory{}
	m.body = &node{owner: m, tag: "body"}
	return m
}

// Body returns the root container.
func (m *Memory) Body() Element {
	return m.body
}

// CreateElement creates a detached element of the given tag.
func (m *Memory) CreateElement(tag string) Element {
	return &node{owner: m, tag: tag}
}

// SetText replaces el's text content and then invokes the OnText hook,
// if one is set, outside the lock.
func (m *Memory) SetText(el Element, text string) {
	n := m.node(el)

	m.mu.Lock()
	n.text = text
	onText := m.onText
	m.mu.Unlock()

	if onText != nil {
		onText(el, text)
	}
}

// AppendChild attaches child as parent's last child.
func (m *Memory) AppendChild(parent, child Element) {
	p, c := m.node(parent), m.node(child)

	m.mu.Lock()
	defer m.mu.Unlock()
	p.children = append(p.children, c)
}

// AddEventListener registers handler for the named event on el.
func (m *Memory) AddEventListener(el Element, event string, handler Handler) {
	n := m.node(el)

	m.mu.Lock()
	defer m.mu.Unlock()
	if n.listeners == nil {
		n.listeners = make(map[string][]Handler)
	}
	n.listeners[event] = append(n.listeners[event], handler)
}

// Dispatch runs the handlers registered for event on el, in
// registration order. The handler slice is copied before the calls, so
// handlers may call back into the binding.
func (m *Memory) Dispatch(el Element, event string) {
	n := m.node(el)

	m.mu.RLock()
	handlers := make([]Handler, len(n.listeners[event]))
	copy(handlers, n.listeners[event])
	m.mu.RUnlock()

	for _, h := range handlers {
		h()
	}
}

// Click dispatches a click event on el.
func (m *Memory) Click(el Element) {
	m.Dispatch(el, Click)
}

// Text returns el's current text content.
func (m *Memory) Text(el Element) string {
	n := m.node(el)

	m.mu.RLock()
	defer m.mu.RUnlock()
	return n.text
}

// Tag returns el's tag. Tags are immutable after creation.
func (m *Memory) Tag(el Element) string {
	return m.node(el).tag
}

// Children returns el's children in append order.
func (m *Memory) Children(el Element) []Element {
	n := m.node(el)

	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Element, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// ListenerCount returns the number of handlers registered for event on el.
func (m *Memory) ListenerCount(el Element, event string) int {
	n := m.node(el)

	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(n.listeners[event])
}

// SetOnText registers fn to run after every SetText. The terminal UI
// uses it to repaint when the reducer renders from its own goroutine.
// A nil fn removes the hook.
func (m *Memory) SetOnText(fn func(el Element, text string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onText = fn
}

// node unwraps an element handle, panicking on nil or foreign handles.
func (m *Memory) node(el Element) *node {
	n, ok := el.(*node)
	if !ok || n == nil || n.owner != m {
		panic("dom: element does not belong to this binding")
	}
	return n
}
