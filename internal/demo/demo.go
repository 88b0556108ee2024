package demo

import (
	"strconv"
	"sync/atomic"

	"github.com/Iron-Ham/recount/internal/cell"
	"github.com/Iron-Ham/recount/internal/counter"
	"github.com/Iron-Ham/recount/internal/dom"
	"github.com/Iron-Ham/recount/internal/errors"
	"github.com/Iron-Ham/recount/internal/logging"
	"github.com/Iron-Ham/recount/internal/mailbox"
	"github.com/Iron-Ham/recount/internal/reducer"
)

// initialText is shown in the display paragraph before the first click.
const initialText = "Click the button to update this"

// defaultCapacity is the channel capacity used when WithCapacity is not
// given. Small enough that rapid clicking demonstrably drops.
const defaultCapacity = 4

// Demo is a built click counter: two buttons, a display, and whatever
// background machinery the approach needs.
type Demo struct {
	approach  Approach
	increment dom.Element
	decrement dom.Element
	display   dom.Element

	stop    func()               // nil when the approach has no teardown
	stats   func() mailbox.Stats // nil when the approach has no channel
	stopped atomic.Bool
}

// Approach returns the approach the demo was built with.
func (d *Demo) Approach() Approach { return d.approach }

// Increment returns the +1 button element.
func (d *Demo) Increment() dom.Element { return d.increment }

// Decrement returns the -1 button element.
func (d *Demo) Decrement() dom.Element { return d.decrement }

// Display returns the display paragraph element.
func (d *Demo) Display() dom.Element { return d.display }

// Stop tears down the approach's background machinery. For the channel
// approach it closes both senders and waits for the reducer loop to
// drain. Stop is idempotent and safe to call on approaches without
// teardown and on a nil Demo.
func (d *Demo) Stop() {
	if d == nil || d.stop == nil {
		return
	}
	if !d.stopped.CompareAndSwap(false, true) {
		return
	}
	d.stop()
}

// Stats reports the channel's send counters. ok is false for approaches
// without a channel.
func (d *Demo) Stats() (stats mailbox.Stats, ok bool) {
	if d == nil || d.stats == nil {
		return mailbox.Stats{}, false
	}
	return d.stats(), true
}

// Build constructs the click counter using approach a on binding b.
func Build(a Approach, b dom.Binding, opts ...Option) (*Demo, error) {
	cfg := builderConfig{
		logger:   logging.NopLogger(),
		capacity: defaultCapacity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.NopLogger()
	}

	switch a {
	case ApproachClosure:
		return buildClosure(b, cfg), nil
	case ApproachStale:
		return buildStale(b, cfg), nil
	case ApproachShared:
		return buildShared(b, cfg), nil
	case ApproachChannel:
		return buildChannel(b, cfg), nil
	default:
		return nil, errors.NewNotFoundError("approach", string(a))
	}
}

// scaffold is the page skeleton every approach shares.
type scaffold struct {
	increment dom.Element
	display   dom.Element
	decrement dom.Element
}

// buildScaffold creates the two buttons and the display paragraph and
// appends them to the body as increment, display, decrement.
func buildScaffold(b dom.Binding) scaffold {
	display := b.CreateElement("p")
	b.SetText(display, initialText)

	increment := b.CreateElement("button")
	b.SetText(increment, "+1")

	decrement := b.CreateElement("button")
	b.SetText(decrement, "-1")

	body := b.Body()
	b.AppendChild(body, increment)
	b.AppendChild(body, display)
	b.AppendChild(body, decrement)

	return scaffold{increment: increment, display: display, decrement: decrement}
}

// buildClosure wires both handlers to one captured local variable. The
// variable lives as long as the closures do and nothing else can reach
// it.
func buildClosure(b dom.Binding, cfg builderConfig) *Demo {
	s := buildScaffold(b)
	log := cfg.logger.WithApproach(string(ApproachClosure))

	count := 0
	b.AddEventListener(s.increment, dom.Click, func() {
		log.Debug("clicked +1")
		count++
		b.SetText(s.display, strconv.Itoa(count))
	})
	b.AddEventListener(s.decrement, dom.Click, func() {
		log.Debug("clicked -1")
		count--
		b.SetText(s.display, strconv.Itoa(count))
	})

	return &Demo{
		approach:  ApproachClosure,
		increment: s.increment,
		decrement: s.decrement,
		display:   s.display,
	}
}

// buildStale reproduces the classic stale-state bug: each handler is
// wired through wireStale, which takes the count by value, so the
// handlers mutate independent copies and the display whipsaws between
// them.
func buildStale(b dom.Binding, cfg builderConfig) *Demo {
	s := buildScaffold(b)
	log := cfg.logger.WithApproach(string(ApproachStale))

	count := 0
	wireStale(b, s.increment, s.display, count, +1, log)
	wireStale(b, s.decrement, s.display, count, -1, log)

	return &Demo{
		approach:  ApproachStale,
		increment: s.increment,
		decrement: s.decrement,
		display:   s.display,
	}
}

// wireStale registers a click handler over count. count is a parameter,
// so every call site hands its handler an independent copy. That is the
// bug, preserved intentionally.
func wireStale(b dom.Binding, button, display dom.Element, count int, delta int, log *logging.Logger) {
	label := "clicked -1"
	if delta > 0 {
		label = "clicked +1"
	}
	b.AddEventListener(button, dom.Click, func() {
		log.Debug(label)
		count += delta
		b.SetText(display, strconv.Itoa(count))
	})
}

// buildShared stores the count in a cell shared by both handlers. The
// cell grants exclusive access per call and panics on overlap, which is
// what distinguishes it from an unguarded shared variable.
func buildShared(b dom.Binding, cfg builderConfig) *Demo {
	s := buildScaffold(b)
	log := cfg.logger.WithApproach(string(ApproachShared))

	count := cell.New(0)
	b.AddEventListener(s.increment, dom.Click, func() {
		log.Debug("clicked +1")
		count.With(func(n *int) {
			*n++
			b.SetText(s.display, strconv.Itoa(*n))
		})
	})
	b.AddEventListener(s.decrement, dom.Click, func() {
		log.Debug("clicked -1")
		count.With(func(n *int) {
			*n--
			b.SetText(s.display, strconv.Itoa(*n))
		})
	})

	return &Demo{
		approach:  ApproachShared,
		increment: s.increment,
		decrement: s.decrement,
		display:   s.display,
	}
}

// buildChannel owns the count in a reducer loop fed by a bounded
// mailbox. Each button holds its own sender; handlers try to send and
// drop on a full channel rather than block the UI.
func buildChannel(b dom.Binding, cfg builderConfig) *Demo {
	s := buildScaffold(b)
	log := cfg.logger.WithApproach(string(ApproachChannel))

	ch := mailbox.New[counter.Message](cfg.capacity)
	loop := reducer.New(ch, 0, counter.Reduce, func(n int) {
		b.SetText(s.display, counter.DisplayText(n))
	})
	loop.Start()

	incSender := ch.Sender()
	decSender := ch.Sender()

	b.AddEventListener(s.increment, dom.Click, func() {
		log.Debug("clicked +1")
		if err := incSender.TrySend(counter.Increment); errors.Is(err, mailbox.ErrFull) && cfg.logDrops {
			log.Debug("click dropped", "button", "+1")
		}
	})
	b.AddEventListener(s.decrement, dom.Click, func() {
		log.Debug("clicked -1")
		if err := decSender.TrySend(counter.Decrement); errors.Is(err, mailbox.ErrFull) && cfg.logDrops {
			log.Debug("click dropped", "button", "-1")
		}
	})

	return &Demo{
		approach:  ApproachChannel,
		increment: s.increment,
		decrement: s.decrement,
		display:   s.display,
		stats:     ch.Stats,
		stop: func() {
			incSender.Close()
			decSender.Close()
			<-loop.Done()
		},
	}
}
