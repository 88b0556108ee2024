package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/recount/internal/config"
	"github.com/Iron-Ham/recount/internal/demo"
	"github.com/Iron-Ham/recount/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

// newTestModel builds a ready model showing the given approach. Renders
// bridged through send land on the returned channel.
func newTestModel(t *testing.T, a demo.Approach) (Model, chan tea.Msg) {
	t.Helper()

	cfg := config.Default()
	msgs := make(chan tea.Msg, 16)
	send := func(msg tea.Msg) { msgs <- msg }

	state := &demoState{}
	if err := state.rebuild(a, cfg, logging.NopLogger(), send); err != nil {
		t.Fatalf("building %s demo: %v", a, err)
	}
	t.Cleanup(func() { state.demo.Stop() })

	m := NewModel(cfg, logging.NopLogger(), state, send)
	m.ready = true
	m.width = 80
	m.height = 24
	return m, msgs
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press runs one key through Update and returns the new model.
func press(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(keyMsg(key))
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next, cmd
}

// waitRender blocks until a reducer render arrives.
func waitRender(t *testing.T, msgs chan tea.Msg) {
	t.Helper()
	select {
	case <-msgs:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for render")
	}
}

func displayText(m Model) string {
	return m.state.binding.Text(m.state.demo.Display())
}

func TestNewModel_ShowLogFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.TUI.ShowLog = false

	m := NewModel(cfg, logging.NopLogger(), &demoState{}, nil)
	if m.showLog {
		t.Error("showLog should follow cfg.TUI.ShowLog")
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)
	m.ready = false

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	if !m.ready {
		t.Error("model should be ready after WindowSizeMsg")
	}
	if m.width != 100 || m.height != 40 {
		t.Errorf("size = %dx%d, want 100x40", m.width, m.height)
	}
}

func TestUpdate_ClickIncrement(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)

	m, _ = press(t, m, "+")
	m, _ = press(t, m, "+")

	if got := displayText(m); got != "2" {
		t.Errorf("display = %q, want %q", got, "2")
	}
	if m.clicked != 2 {
		t.Errorf("clicked = %d, want 2", m.clicked)
	}
	if len(m.clicks) != 2 {
		t.Fatalf("click log has %d entries, want 2", len(m.clicks))
	}
	if m.clicks[0].button != "+1" {
		t.Errorf("click log button = %q, want %q", m.clicks[0].button, "+1")
	}
	if m.clicks[0].dropped {
		t.Error("closure clicks cannot drop")
	}
}

func TestUpdate_ClickDecrement(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachShared)

	m, _ = press(t, m, "-")

	if got := displayText(m); got != "-1" {
		t.Errorf("display = %q, want %q", got, "-1")
	}
	if m.clicks[0].button != "-1" {
		t.Errorf("click log button = %q, want %q", m.clicks[0].button, "-1")
	}
}

func TestUpdate_ClickAliases(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)

	// = and _ are the unshifted keys for + and -
	m, _ = press(t, m, "=")
	m, _ = press(t, m, "=")
	m, _ = press(t, m, "_")

	if got := displayText(m); got != "1" {
		t.Errorf("display = %q, want %q", got, "1")
	}
}

func TestUpdate_ChannelClickRendersAsync(t *testing.T) {
	m, msgs := newTestModel(t, demo.ApproachChannel)

	m, _ = press(t, m, "+")
	waitRender(t, msgs)

	if got := displayText(m); got != "count is 1" {
		t.Errorf("display = %q, want %q", got, "count is 1")
	}
}

func TestUpdate_SwitchApproach(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)

	m, _ = press(t, m, "+")
	m, _ = press(t, m, "a")

	if got := m.approach(); got != demo.ApproachStale {
		t.Errorf("approach = %q, want %q", got, demo.ApproachStale)
	}
	if m.clicked != 0 || len(m.clicks) != 0 {
		t.Error("click log should reset on approach switch")
	}
	if got := displayText(m); got != "Click the button to update this" {
		t.Errorf("fresh display = %q, want initial text", got)
	}
}

func TestUpdate_SwitchApproach_WrapsAround(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)

	for range demo.Approaches() {
		m, _ = press(t, m, "a")
	}

	if got := m.approach(); got != demo.ApproachClosure {
		t.Errorf("after a full cycle approach = %q, want %q", got, demo.ApproachClosure)
	}
}

func TestUpdate_DigitSelect(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)

	m, _ = press(t, m, "3")
	if got := m.approach(); got != demo.ApproachShared {
		t.Errorf("approach = %q, want %q", got, demo.ApproachShared)
	}

	m, _ = press(t, m, "4")
	if got := m.approach(); got != demo.ApproachChannel {
		t.Errorf("approach = %q, want %q", got, demo.ApproachChannel)
	}
}

func TestUpdate_DigitSelect_SameApproachKeepsState(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)

	m, _ = press(t, m, "+")
	m, _ = press(t, m, "1")

	if m.clicked != 1 {
		t.Error("selecting the current approach should not rebuild")
	}
	if got := displayText(m); got != "1" {
		t.Errorf("display = %q, want %q", got, "1")
	}
}

func TestUpdate_ToggleLog(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)

	wasShown := m.showLog
	m, _ = press(t, m, "l")
	if m.showLog == wasShown {
		t.Error("l should toggle the click log")
	}
	m, _ = press(t, m, "l")
	if m.showLog != wasShown {
		t.Error("l should toggle the click log back")
	}
}

func TestUpdate_ToggleHelp(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)

	m, _ = press(t, m, "?")
	if !m.showHelp {
		t.Error("? should show help")
	}
	m, _ = press(t, m, "?")
	if m.showHelp {
		t.Error("? should hide help")
	}
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)

	m, cmd := press(t, m, "q")
	if !m.quitting {
		t.Error("q should set quitting")
	}
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q command should be tea.Quit")
	}
}

func TestUpdate_CtrlC(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(Model)
	if !m.quitting {
		t.Error("ctrl+c should set quitting")
	}
	if cmd == nil {
		t.Error("ctrl+c should produce a quit command")
	}
}

func TestUpdate_StaleApproachDrifts(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachStale)

	// Each handler owns a copy of the count, so the display never
	// reflects both buttons.
	m, _ = press(t, m, "+")
	m, _ = press(t, m, "+")
	if got := displayText(m); got != "2" {
		t.Errorf("display = %q, want %q", got, "2")
	}

	m, _ = press(t, m, "-")
	if got := displayText(m); got != "-1" {
		t.Errorf("display = %q, want %q (the stale copy)", got, "-1")
	}
}

func TestClickLog_Bounded(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)

	for range maxClickLog + 5 {
		m, _ = press(t, m, "+")
	}

	if len(m.clicks) != maxClickLog {
		t.Errorf("click log has %d entries, want %d", len(m.clicks), maxClickLog)
	}
	if m.clicked != maxClickLog+5 {
		t.Errorf("clicked = %d, want %d", m.clicked, maxClickLog+5)
	}
}

func TestView_ShowsCounter(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)

	view := m.View()
	for _, want := range []string{"Recount", "+1", "-1", "Click the button to update this", "closure"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestView_ChannelStatusShowsStats(t *testing.T) {
	m, msgs := newTestModel(t, demo.ApproachChannel)

	m, _ = press(t, m, "+")
	waitRender(t, msgs)

	view := m.View()
	for _, want := range []string{"cap 4", "sent 1", "dropped 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestView_NonChannelStatusShowsClicks(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)

	m, _ = press(t, m, "+")

	if view := m.View(); !strings.Contains(view, "clicks 1") {
		t.Errorf("view missing click count:\n%s", view)
	}
}

func TestView_ClickLogMarksDrops(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)
	m.showLog = true
	m.clicks = []clickRecord{
		{at: time.Now(), button: "+1"},
		{at: time.Now(), button: "+1", dropped: true},
	}

	view := m.View()
	if !strings.Contains(view, "(dropped)") {
		t.Errorf("view missing drop marker:\n%s", view)
	}
}

func TestView_HelpPanel(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)

	m, _ = press(t, m, "?")
	view := m.View()

	if !strings.Contains(view, "four ways") {
		t.Errorf("help panel missing content:\n%s", view)
	}
	// The counter is hidden while help is shown
	if strings.Contains(view, "Click the button to update this") {
		t.Errorf("help panel should replace the counter:\n%s", view)
	}
}

func TestView_LogHidden(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)
	m.showLog = false
	m, _ = press(t, m, "+")

	if view := m.View(); strings.Contains(view, "Click log") {
		t.Errorf("view should hide the click log:\n%s", view)
	}
}

func TestView_NotReady(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)
	m.ready = false

	if view := m.View(); view != "Loading..." {
		t.Errorf("view = %q, want %q", view, "Loading...")
	}
}

func TestView_Quitting(t *testing.T) {
	m, _ := newTestModel(t, demo.ApproachClosure)
	m, _ = press(t, m, "q")

	if view := m.View(); view != "Goodbye!\n" {
		t.Errorf("view = %q, want %q", view, "Goodbye!\n")
	}
}

func TestDemoState_RebuildStopsPrevious(t *testing.T) {
	cfg := config.Default()
	state := &demoState{}

	if err := state.rebuild(demo.ApproachChannel, cfg, logging.NopLogger(), nil); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	first := state.demo

	if err := state.rebuild(demo.ApproachClosure, cfg, logging.NopLogger(), nil); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	t.Cleanup(func() { state.demo.Stop() })

	// The first demo's loop has exited; further clicks on it are ignored.
	stats, ok := first.Stats()
	if !ok {
		t.Fatal("channel demo should expose stats")
	}
	if stats.Sent != 0 {
		t.Errorf("stats.Sent = %d, want 0", stats.Sent)
	}
	if state.demo == first {
		t.Error("rebuild should install a new demo")
	}
}
