// Package styles provides the lipgloss styles and colors the TUI renders
// with. The package-level variables mirror the active theme so views can
// read them directly instead of threading a ThemedStyles value through
// every render call; SetActiveTheme rewrites them all at once.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	WarningColor   lipgloss.Color
	ErrorColor     lipgloss.Color
	MutedColor     lipgloss.Color
	SurfaceColor   lipgloss.Color
	TextColor      lipgloss.Color
	BorderColor    lipgloss.Color

	ApproachClosureColor lipgloss.Color
	ApproachStaleColor   lipgloss.Color
	ApproachSharedColor  lipgloss.Color
	ApproachChannelColor lipgloss.Color

	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Surface   lipgloss.Style
	Text      lipgloss.Style

	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Header        lipgloss.Style
	ApproachBadge lipgloss.Style

	Button      lipgloss.Style
	ContentBox  lipgloss.Style
	DisplayText lipgloss.Style

	LogTitle   lipgloss.Style
	LogTime    lipgloss.Style
	LogEntry   lipgloss.Style
	LogDropped lipgloss.Style

	StatusBar lipgloss.Style
	HelpBar   lipgloss.Style
	HelpKey   lipgloss.Style

	ErrorMsg   lipgloss.Style
	SuccessMsg lipgloss.Style
	WarningMsg lipgloss.Style
)

func init() {
	syncGlobalStyles()
}

// ApproachColor returns the active theme's accent color for an approach
// name. Unknown names get the muted color.
func ApproachColor(approach string) lipgloss.Color {
	return activeTheme.ApproachColor(approach)
}
