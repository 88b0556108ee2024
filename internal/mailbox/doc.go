// Package mailbox provides the bounded message channel that carries click
// events from UI handlers to the reducer loop.
//
// Event handlers run on the UI goroutine and must never wait. The channel
// therefore has a fixed capacity and a non-blocking send: when the buffer
// is full the message is dropped and the handler moves on. The receiver
// drains messages in FIFO order on its own goroutine.
//
// # Architecture
//
// A Channel owns one buffered Go channel and a count of open senders.
// Each UI handler holds its own Sender. Closing the last sender closes
// the underlying channel, so the receiver observes exhaustion only after
// every buffered message has been drained.
//
//	handler --Sender--\
//	handler --Sender---> [ buffered chan ] --Receive--> reducer loop
//	handler --Sender--/
//
// # Main Types
//
//   - [Channel]: Bounded FIFO queue with a single receiving side
//   - [Sender]: A handler's ref-counted handle for non-blocking sends
//   - [Stats]: Counters for delivered and dropped messages
//
// # Basic Usage
//
//	ch := mailbox.New[counter.Message](4)
//
//	s := ch.Sender()
//	if err := s.TrySend(counter.Increment); errors.Is(err, mailbox.ErrFull) {
//	    // queue full: the click is dropped, the UI never blocks
//	}
//
//	go func() {
//	    for {
//	        msg, ok := ch.Receive()
//	        if !ok {
//	            return // all senders closed and the buffer is drained
//	        }
//	        handle(msg)
//	    }
//	}()
//
//	s.Close()
//
// # Thread Safety
//
// [Channel] and [Sender] are safe for concurrent use. Any number of
// goroutines may send; one goroutine receives. TrySend never blocks and
// never panics, including when it races with the closing of the last
// sender.
package mailbox
