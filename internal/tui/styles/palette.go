package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName identifies a color theme, built-in or custom.
type ThemeName string

// Built-in themes, in the order settings menus list them.
const (
	ThemeDefault ThemeName = "default"
	ThemeMonokai ThemeName = "monokai"
	ThemeDracula ThemeName = "dracula"
	ThemeNord    ThemeName = "nord"
)

var builtinThemeOrder = []ThemeName{ThemeDefault, ThemeMonokai, ThemeDracula, ThemeNord}

// ColorPalette is the complete color scheme a theme supplies. The
// eight base colors cover text and chrome; the approach colors give
// each counter approach its accent.
type ColorPalette struct {
	Primary   lipgloss.Color // titles and emphasis
	Secondary lipgloss.Color // key hints, success states
	Warning   lipgloss.Color // warnings, dropped clicks
	Error     lipgloss.Color // failures
	Muted     lipgloss.Color // de-emphasized text
	Surface   lipgloss.Color // status bar background
	Text      lipgloss.Color // body text
	Border    lipgloss.Color // box borders

	ApproachClosure lipgloss.Color
	ApproachStale   lipgloss.Color
	ApproachShared  lipgloss.Color
	ApproachChannel lipgloss.Color
}

// builtinPalettes holds the four built-in schemes. Every color is a
// hex literal, so truecolor terminals render each theme identically.
var builtinPalettes = map[ThemeName]*ColorPalette{
	ThemeDefault: {
		Primary:   "#A78BFA", // violet
		Secondary: "#10B981", // green
		Warning:   "#F59E0B", // amber
		Error:     "#F87171", // red
		Muted:     "#9CA3AF", // gray
		Surface:   "#1F2937", // dark slate
		Text:      "#F9FAFB", // near white
		Border:    "#6B7280", // mid gray

		ApproachClosure: "#10B981", // green
		ApproachStale:   "#F59E0B", // amber
		ApproachShared:  "#60A5FA", // blue
		ApproachChannel: "#A78BFA", // violet
	},
	ThemeMonokai: {
		Primary:   "#F92672", // pink
		Secondary: "#A6E22E", // green
		Warning:   "#E6DB74", // yellow
		Error:     "#F92672", // pink, doubling as primary
		Muted:     "#75715E", // comment gray
		Surface:   "#272822", // background
		Text:      "#F8F8F2", // foreground
		Border:    "#49483E", // selection

		ApproachClosure: "#A6E22E", // green
		ApproachStale:   "#FD971F", // orange
		ApproachShared:  "#66D9EF", // cyan
		ApproachChannel: "#AE81FF", // purple
	},
	ThemeDracula: {
		Primary:   "#BD93F9", // purple
		Secondary: "#50FA7B", // green
		Warning:   "#F1FA8C", // yellow
		Error:     "#FF5555", // red
		Muted:     "#6272A4", // comment
		Surface:   "#282A36", // background
		Text:      "#F8F8F2", // foreground
		Border:    "#44475A", // selection

		ApproachClosure: "#50FA7B", // green
		ApproachStale:   "#FFB86C", // orange
		ApproachShared:  "#8BE9FD", // cyan
		ApproachChannel: "#BD93F9", // purple
	},
	ThemeNord: {
		Primary:   "#88C0D0", // frost cyan
		Secondary: "#A3BE8C", // aurora green
		Warning:   "#EBCB8B", // aurora yellow
		Error:     "#BF616A", // aurora red
		Muted:     "#4C566A", // polar night 3
		Surface:   "#2E3440", // polar night 0
		Text:      "#ECEFF4", // snow storm 2
		Border:    "#3B4252", // polar night 1

		ApproachClosure: "#A3BE8C", // aurora green
		ApproachStale:   "#D08770", // aurora orange
		ApproachShared:  "#81A1C1", // frost blue
		ApproachChannel: "#B48EAD", // aurora purple
	},
}

// BuiltinThemes lists the built-in theme names in display order.
func BuiltinThemes() []string {
	names := make([]string, len(builtinThemeOrder))
	for i, name := range builtinThemeOrder {
		names[i] = string(name)
	}
	return names
}

// ValidThemes lists every selectable theme, built-in plus custom.
func ValidThemes() []string {
	return append(BuiltinThemes(), CustomThemeNames()...)
}

// IsValidTheme reports whether name is a built-in theme or a
// registered custom one.
func IsValidTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name) || IsCustomTheme(name)
}

// DefaultPalette returns the built-in default scheme. It never
// consults custom themes, so theme-file fallbacks cannot loop back
// into theme resolution.
func DefaultPalette() *ColorPalette {
	p := *builtinPalettes[ThemeDefault]
	return &p
}

// GetPalette resolves a theme name: custom themes win, then built-ins,
// then the default for anything unknown. The caller owns the returned
// palette.
func GetPalette(name ThemeName) *ColorPalette {
	if custom := GetCustomTheme(name); custom != nil {
		return custom.ToPalette()
	}

	base, ok := builtinPalettes[name]
	if !ok {
		base = builtinPalettes[ThemeDefault]
	}
	p := *base
	return &p
}
