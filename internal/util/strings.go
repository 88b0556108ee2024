// Package util holds small string helpers shared by the TUI and CLI layers.
package util

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "..."

// Truncate shortens s to at most max runes, ending in "..." when it cuts.
// It counts runes, not columns; styled terminal output should go through
// TruncateANSI instead.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return ellipsis
	}
	return string(runes[:max-len(ellipsis)]) + ellipsis
}

// TruncateANSI shortens s to at most max visual columns, ending in "..."
// when it cuts. Escape sequences survive the cut, so a styled line keeps
// its styling after truncation.
func TruncateANSI(s string, max int) string {
	if lipgloss.Width(s) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return ellipsis
	}
	return ansi.Truncate(s, max, ellipsis)
}
