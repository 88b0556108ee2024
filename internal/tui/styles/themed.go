package styles

import "github.com/charmbracelet/lipgloss"

// ThemedStyles holds all colors and styles derived from a single palette.
// It exists so a theme switch can rebuild every style in one place instead
// of mutating the package globals piecemeal.
type ThemedStyles struct {
	// Colors
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	WarningColor   lipgloss.Color
	ErrorColor     lipgloss.Color
	MutedColor     lipgloss.Color
	SurfaceColor   lipgloss.Color
	TextColor      lipgloss.Color
	BorderColor    lipgloss.Color

	// Approach accent colors
	ApproachClosureColor lipgloss.Color
	ApproachStaleColor   lipgloss.Color
	ApproachSharedColor  lipgloss.Color
	ApproachChannelColor lipgloss.Color

	// Convenience styles
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Surface   lipgloss.Style
	Text      lipgloss.Style

	// Headings
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style

	// Approach badge
	ApproachBadge lipgloss.Style

	// Counter display
	Button      lipgloss.Style
	ContentBox  lipgloss.Style
	DisplayText lipgloss.Style

	// Click log pane
	LogTitle   lipgloss.Style
	LogTime    lipgloss.Style
	LogEntry   lipgloss.Style
	LogDropped lipgloss.Style

	// Bottom chrome
	StatusBar lipgloss.Style
	HelpBar   lipgloss.Style
	HelpKey   lipgloss.Style

	// Feedback lines
	ErrorMsg   lipgloss.Style
	SuccessMsg lipgloss.Style
	WarningMsg lipgloss.Style
}

// NewThemedStyles creates a complete set of styles from the given palette.
func NewThemedStyles(p *ColorPalette) *ThemedStyles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	boldFg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Bold(true).Foreground(c) }

	s := &ThemedStyles{
		PrimaryColor:   p.Primary,
		SecondaryColor: p.Secondary,
		WarningColor:   p.Warning,
		ErrorColor:     p.Error,
		MutedColor:     p.Muted,
		SurfaceColor:   p.Surface,
		TextColor:      p.Text,
		BorderColor:    p.Border,

		ApproachClosureColor: p.ApproachClosure,
		ApproachStaleColor:   p.ApproachStale,
		ApproachSharedColor:  p.ApproachShared,
		ApproachChannelColor: p.ApproachChannel,
	}

	s.Primary = fg(p.Primary)
	s.Secondary = fg(p.Secondary)
	s.Warning = fg(p.Warning)
	s.Error = fg(p.Error)
	s.Muted = fg(p.Muted)
	s.Surface = lipgloss.NewStyle().Background(p.Surface)
	s.Text = fg(p.Text)

	s.Title = boldFg(p.Primary)
	s.Subtitle = fg(p.Muted)
	s.Header = boldFg(p.Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Border)

	s.ApproachBadge = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	s.Button = lipgloss.NewStyle().
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 3)
	s.ContentBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)
	s.DisplayText = boldFg(p.Text)

	s.LogTitle = boldFg(p.Muted)
	s.LogTime = fg(p.Muted)
	s.LogEntry = fg(p.Text)
	s.LogDropped = fg(p.Warning)

	s.StatusBar = fg(p.Text).
		Background(p.Surface).
		Padding(0, 1)

	s.HelpBar = fg(p.Muted).MarginTop(1)
	s.HelpKey = boldFg(p.Secondary)

	s.ErrorMsg = boldFg(p.Error)
	s.SuccessMsg = boldFg(p.Secondary)
	s.WarningMsg = boldFg(p.Warning)

	return s
}

// ApproachColor returns the accent color for a given approach name using
// the themed palette.
func (s *ThemedStyles) ApproachColor(approach string) lipgloss.Color {
	switch approach {
	case "closure":
		return s.ApproachClosureColor
	case "stale":
		return s.ApproachStaleColor
	case "shared":
		return s.ApproachSharedColor
	case "channel":
		return s.ApproachChannelColor
	default:
		return s.MutedColor
	}
}

// activeTheme backs the package-level style variables.
var activeTheme = NewThemedStyles(DefaultPalette())

// SetActiveTheme rebuilds the active styles from the named theme and pushes
// them into the package-level variables.
//
// Not safe for concurrent use. Call it from the Bubble Tea update loop,
// which runs on a single goroutine.
func SetActiveTheme(name ThemeName) {
	activeTheme = NewThemedStyles(GetPalette(name))
	syncGlobalStyles()
}

// GetActiveTheme returns the styles the TUI currently renders with.
func GetActiveTheme() *ThemedStyles {
	return activeTheme
}

// syncGlobalStyles copies the active theme into the package-level variables
// field by field.
func syncGlobalStyles() {
	PrimaryColor = activeTheme.PrimaryColor
	SecondaryColor = activeTheme.SecondaryColor
	WarningColor = activeTheme.WarningColor
	ErrorColor = activeTheme.ErrorColor
	MutedColor = activeTheme.MutedColor
	SurfaceColor = activeTheme.SurfaceColor
	TextColor = activeTheme.TextColor
	BorderColor = activeTheme.BorderColor

	ApproachClosureColor = activeTheme.ApproachClosureColor
	ApproachStaleColor = activeTheme.ApproachStaleColor
	ApproachSharedColor = activeTheme.ApproachSharedColor
	ApproachChannelColor = activeTheme.ApproachChannelColor

	Primary = activeTheme.Primary
	Secondary = activeTheme.Secondary
	Warning = activeTheme.Warning
	Error = activeTheme.Error
	Muted = activeTheme.Muted
	Surface = activeTheme.Surface
	Text = activeTheme.Text

	Title = activeTheme.Title
	Subtitle = activeTheme.Subtitle
	Header = activeTheme.Header
	ApproachBadge = activeTheme.ApproachBadge

	Button = activeTheme.Button
	ContentBox = activeTheme.ContentBox
	DisplayText = activeTheme.DisplayText

	LogTitle = activeTheme.LogTitle
	LogTime = activeTheme.LogTime
	LogEntry = activeTheme.LogEntry
	LogDropped = activeTheme.LogDropped

	StatusBar = activeTheme.StatusBar
	HelpBar = activeTheme.HelpBar
	HelpKey = activeTheme.HelpKey

	ErrorMsg = activeTheme.ErrorMsg
	SuccessMsg = activeTheme.SuccessMsg
	WarningMsg = activeTheme.WarningMsg
}
