package cmd

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/recount/internal/config"
	"github.com/Iron-Ham/recount/internal/demo"
	"github.com/Iron-Ham/recount/internal/dom"
	"github.com/Iron-Ham/recount/internal/logging"
)

// replayClicks runs the demo without a terminal: it replays the click
// script against an in-memory element tree and prints every render the
// script produced.
func replayClicks(cmd *cobra.Command, approach demo.Approach, cfg *config.Config, log *logging.Logger) error {
	mem := dom.NewMemory()
	d, err := demo.Build(approach, mem,
		demo.WithLogger(log),
		demo.WithCapacity(cfg.Channel.Capacity),
		demo.WithLogDrops(cfg.Channel.LogDrops),
	)
	if err != nil {
		return err
	}

	// Collect renders instead of printing from the hook: the channel
	// approach renders on the reducer goroutine.
	var mu sync.Mutex
	var renders []string
	mem.SetOnText(func(el dom.Element, text string) {
		if el != d.Display() {
			return
		}
		mu.Lock()
		renders = append(renders, text)
		mu.Unlock()
	})

	for _, tok := range strings.Split(runClicks, ",") {
		tok = strings.TrimSpace(tok)
		switch tok {
		case "":
		case "+":
			mem.Click(d.Increment())
		case "-":
			mem.Click(d.Decrement())
		default:
			d.Stop()
			return fmt.Errorf("invalid click %q in script: want + or -", tok)
		}
	}

	// Close the senders and wait for the reducer loop to drain
	d.Stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "approach: %s\n", approach)
	for _, line := range renders {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "display: %s\n", mem.Text(d.Display()))
	if stats, ok := d.Stats(); ok {
		fmt.Fprintf(out, "sent: %d dropped: %d\n", stats.Sent, stats.Dropped)
	}
	return nil
}
