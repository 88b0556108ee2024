package tui

import (
	"time"

	"github.com/Iron-Ham/recount/internal/config"
	"github.com/Iron-Ham/recount/internal/demo"
	"github.com/Iron-Ham/recount/internal/dom"
	"github.com/Iron-Ham/recount/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

// maxClickLog bounds the click log pane.
const maxClickLog = 10

// demoState holds the live demo and its binding. It is shared by pointer
// between the App and every copy of the Model, so switching approaches
// inside Update is visible to the App's shutdown path. Only the program
// goroutine mutates it.
type demoState struct {
	binding *dom.Memory
	demo    *demo.Demo
}

// rebuild builds the given approach on a fresh binding and swaps it in,
// stopping the previous demo. On error the previous demo keeps running.
func (s *demoState) rebuild(a demo.Approach, cfg *config.Config, log *logging.Logger, send func(tea.Msg)) error {
	mem := dom.NewMemory()
	d, err := demo.Build(a, mem,
		demo.WithLogger(log),
		demo.WithCapacity(cfg.Channel.Capacity),
		demo.WithLogDrops(cfg.Channel.LogDrops),
	)
	if err != nil {
		return err
	}

	// Bridge reducer renders into the program's message queue. The hook is
	// installed after Build so the scaffold's initial SetText does not fire.
	mem.SetOnText(func(el dom.Element, text string) {
		if send != nil {
			send(renderMsg{})
		}
	})

	if s.demo != nil {
		s.demo.Stop()
	}
	s.binding = mem
	s.demo = d
	return nil
}

// clickRecord is one entry in the click log pane.
type clickRecord struct {
	at      time.Time
	button  string
	dropped bool
}

// Model holds the TUI application state
type Model struct {
	cfg   *config.Config
	log   *logging.Logger
	state *demoState
	send  func(tea.Msg)

	// UI state
	width        int
	height       int
	ready        bool
	quitting     bool
	showHelp     bool
	showLog      bool
	clicked      int
	clicks       []clickRecord
	errorMessage string
}

// NewModel creates a new TUI model
func NewModel(cfg *config.Config, log *logging.Logger, state *demoState, send func(tea.Msg)) Model {
	return Model{
		cfg:     cfg,
		log:     log,
		state:   state,
		send:    send,
		showLog: cfg.TUI.ShowLog,
	}
}

// approach returns the approach currently on display.
func (m Model) approach() demo.Approach {
	if m.state == nil || m.state.demo == nil {
		return ""
	}
	return m.state.demo.Approach()
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case renderMsg:
		// The tree already holds the new text; redrawing is all that's left.
		return m, nil
	}

	return m, nil
}

// handleKeypress processes keyboard input
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.showHelp = !m.showHelp
		return m, nil

	case "+", "=":
		return m.click(m.state.demo.Increment(), "+1"), nil

	case "-", "_":
		return m.click(m.state.demo.Decrement(), "-1"), nil

	case "a":
		return m.switchApproach(m.approach().Next()), nil

	case "1", "2", "3", "4":
		a, err := demo.Parse(msg.String())
		if err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		return m.switchApproach(a), nil

	case "l":
		m.showLog = !m.showLog
		return m, nil
	}

	return m, nil
}

// click dispatches a click on the given button element and records it in
// the click log. A drop is detected by comparing the channel's dropped
// count around the dispatch; the other approaches never drop.
func (m Model) click(button dom.Element, label string) Model {
	m.errorMessage = ""

	var before uint64
	if stats, ok := m.state.demo.Stats(); ok {
		before = stats.Dropped
	}

	m.state.binding.Click(button)

	var dropped bool
	if stats, ok := m.state.demo.Stats(); ok {
		dropped = stats.Dropped > before
	}

	m.clicked++
	m.clicks = append(m.clicks, clickRecord{at: time.Now(), button: label, dropped: dropped})
	if len(m.clicks) > maxClickLog {
		m.clicks = m.clicks[len(m.clicks)-maxClickLog:]
	}
	return m
}

// switchApproach tears down the current demo and builds the named one on a
// fresh binding. The click log restarts with the new approach.
func (m Model) switchApproach(a demo.Approach) Model {
	if a == m.approach() {
		return m
	}

	m.errorMessage = ""
	if err := m.state.rebuild(a, m.cfg, m.log, m.send); err != nil {
		m.errorMessage = err.Error()
		return m
	}

	if m.log != nil {
		m.log.Debug("switched approach", "approach", string(a))
	}
	m.clicked = 0
	m.clicks = nil
	return m
}
