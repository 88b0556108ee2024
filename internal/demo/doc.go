// Package demo builds the click counter in four state-handling styles
// and wires it to a DOM binding.
//
// Each approach produces the same three-element page: a +1 button, a
// display paragraph, and a -1 button. The approaches differ only in
// where the count lives and how the click handlers reach it.
//
// # Approaches
//
//   - closure: both handlers capture one local variable. The simplest
//     form, and enough for a single pair of handlers.
//   - stale: each handler receives its own copy of the count, so the
//     display whipsaws between two private counters. This is the classic
//     bug the later approaches exist to avoid; it is kept and tested on
//     purpose.
//   - shared: both handlers mutate a cell.Cell, which panics on
//     overlapping access instead of racing.
//   - channel: handlers send counter messages into a bounded mailbox
//     consumed by a reducer loop that owns the count. Clicks that arrive
//     while the mailbox is full are dropped, never blocked on.
//
// # Basic Usage
//
//	d, err := demo.Build(demo.ApproachChannel, binding,
//		demo.WithCapacity(4),
//		demo.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	defer d.Stop()
//
// Clicks are driven through the binding: mem.Click(d.Increment()) on a
// Memory binding, or real DOM events in a browser.
package demo
