package tui

// renderMsg signals that a reducer render wrote new display text, so the
// view must redraw. Synchronous approaches update the tree before Update
// returns and need no message; the channel approach renders from the loop
// goroutine and does.
type renderMsg struct{}
