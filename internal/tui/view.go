package tui

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/recount/internal/tui/styles"
	"github.com/Iron-Ham/recount/internal/util"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.renderHelpPanel())
	} else {
		b.WriteString(m.renderCounter())
		if m.showLog {
			b.WriteString("\n")
			b.WriteString(m.renderClickLog())
		}
	}

	if m.errorMessage != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render("Error: " + m.errorMessage))
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString(m.renderHelp())

	return b.String()
}

// renderHeader renders the header bar with the active approach badge.
func (m Model) renderHeader() string {
	return styles.Header.Width(m.width).Render("Recount")
}

// renderApproachLine renders the approach badge and its description,
// trimmed to the terminal width.
func (m Model) renderApproachLine() string {
	approach := string(m.approach())
	badge := styles.ApproachBadge.
		Foreground(styles.ApproachColor(approach)).
		Render(approach)
	return util.TruncateANSI(badge+styles.Muted.Render(m.approach().Describe()), m.width)
}

// renderCounter renders the buttons and the display paragraph.
func (m Model) renderCounter() string {
	bind := m.state.binding
	d := m.state.demo

	inc := styles.Button.Render(bind.Text(d.Increment()))
	dec := styles.Button.Render(bind.Text(d.Decrement()))
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, inc, "  ", dec)

	display := styles.ContentBox.Render(styles.DisplayText.Render(bind.Text(d.Display())))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderApproachLine(),
		buttons,
		display,
	)
}

// renderClickLog renders the recent clicks pane.
func (m Model) renderClickLog() string {
	var b strings.Builder
	b.WriteString(styles.LogTitle.Render("Click log"))
	b.WriteString("\n")

	if len(m.clicks) == 0 {
		b.WriteString(styles.Muted.Render("No clicks yet"))
		return b.String()
	}

	for i, c := range m.clicks {
		b.WriteString(styles.LogTime.Render(c.at.Format("15:04:05")))
		b.WriteString(" ")
		b.WriteString(styles.LogEntry.Render(c.button))
		if c.dropped {
			b.WriteString(" ")
			b.WriteString(styles.LogDropped.Render("(dropped)"))
		}
		if i < len(m.clicks)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderStatus renders the bottom status line.
func (m Model) renderStatus() string {
	parts := []string{string(m.approach())}

	if stats, ok := m.state.demo.Stats(); ok {
		parts = append(parts,
			fmt.Sprintf("cap %d", m.cfg.Channel.Capacity),
			fmt.Sprintf("sent %d", stats.Sent),
			fmt.Sprintf("dropped %d", stats.Dropped),
		)
	} else {
		parts = append(parts, fmt.Sprintf("clicks %d", m.clicked))
	}

	// StatusBar pads one column each side.
	line := util.TruncateANSI(strings.Join(parts, " • "), m.width-2)
	return styles.StatusBar.Width(m.width).Render(line)
}

// renderHelp renders the bottom help bar.
func (m Model) renderHelp() string {
	keys := []string{
		styles.HelpKey.Render("[+/-]") + " click",
		styles.HelpKey.Render("[a]") + " approach",
		styles.HelpKey.Render("[1-4]") + " select",
		styles.HelpKey.Render("[l]") + " log",
		styles.HelpKey.Render("[?]") + " help",
		styles.HelpKey.Render("[q]") + " quit",
	}
	return styles.HelpBar.Render(strings.Join(keys, "  "))
}

// renderHelpPanel renders the full help overlay.
func (m Model) renderHelpPanel() string {
	help := `
Recount shows the same click counter built four ways.

Counter:
  + / =        Click the +1 button
  - / _        Click the -1 button

Approaches:
  a            Switch to the next approach
  1-4          Jump to an approach directly
               1 closure  2 stale  3 shared  4 channel

View:
  l            Toggle the click log
  ?            Toggle this help
  q / Ctrl+C   Quit

The stale approach is intentionally broken: each handler keeps
its own copy of the count, so the display drifts apart from the
clicks. The channel approach queues clicks through a bounded
channel and drops them when the queue is full; dropped clicks
are marked in the click log and counted in the status line.
`
	return styles.ContentBox.Render(strings.TrimSpace(help))
}
