// Package tui renders the running demo as a terminal UI. Keyboard input
// stands in for mouse clicks: keys dispatch click events on the in-memory
// element tree and the view re-renders from whatever the handlers wrote
// into it.
package tui

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/recount/internal/config"
	"github.com/Iron-Ham/recount/internal/demo"
	"github.com/Iron-Ham/recount/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

// App owns one demo session: the Bubbletea program, the model, and the
// demo state both share.
type App struct {
	program *tea.Program
	model   Model
	state   *demoState
}

// New creates a new TUI application showing the given approach.
func New(cfg *config.Config, log *logging.Logger, approach demo.Approach) (*App, error) {
	a := &App{state: &demoState{}}

	// send forwards reducer renders to the program once it exists. Renders
	// only fire after clicks, and clicks only after the program is running,
	// so the nil window is never hit in practice.
	send := func(msg tea.Msg) {
		if a.program != nil {
			a.program.Send(msg)
		}
	}

	if err := a.state.rebuild(approach, cfg, log, send); err != nil {
		return nil, err
	}

	a.model = NewModel(cfg, log, a.state, send)
	return a, nil
}

// Run starts the program and blocks until the user quits or the process
// receives a termination signal.
func (a *App) Run() error {
	// Stop whichever demo is current when the TUI exits, however it exits.
	defer func() {
		if a.state.demo != nil {
			a.state.demo.Stop()
		}
	}()

	a.program = tea.NewProgram(a.model, tea.WithAltScreen())

	// SIGTERM and SIGHUP arrive from outside the terminal, so they never
	// show up as key presses. Translate them into a quit message so the
	// demo still shuts down through the normal path.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	go func() {
		<-signals
		a.program.Send(tea.Quit())
	}()

	_, err := a.program.Run()
	return err
}
