package styles

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/recount/internal/config"
	"github.com/Iron-Ham/recount/internal/errors"
)

// ThemeFile is a custom theme definition loaded from YAML. Version pins the
// file format so future schema changes stay detectable.
type ThemeFile struct {
	Name        string      `yaml:"name"`
	Author      string      `yaml:"author,omitempty"`
	Description string      `yaml:"description,omitempty"`
	Version     string      `yaml:"version"`
	Colors      ThemeColors `yaml:"colors"`
}

// ThemeColors holds the palette in hex form (#RRGGBB or #RGB).
type ThemeColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`

	// Accent overrides per approach. Unset entries fall back to base
	// colors in ToPalette.
	Approaches ThemeApproachColors `yaml:"approaches,omitempty"`
}

// ThemeApproachColors overrides the accent color of individual approaches.
type ThemeApproachColors struct {
	Closure string `yaml:"closure,omitempty"`
	Stale   string `yaml:"stale,omitempty"`
	Shared  string `yaml:"shared,omitempty"`
	Channel string `yaml:"channel,omitempty"`
}

var hexColorRe = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// isValidHexColor reports whether color is #RGB or #RRGGBB.
func isValidHexColor(color string) bool {
	return hexColorRe.MatchString(color)
}

// LoadThemeFile reads, parses, and validates a theme YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading theme file")
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, errors.Wrapf(err, "parsing theme file")
	}
	if err := theme.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid theme")
	}
	return &theme, nil
}

// Validate checks the theme file schema. Colors are checked in a fixed
// order so the first reported problem is stable.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("missing theme name")
	}
	switch t.Version {
	case "1":
	case "":
		return errors.New("missing theme version")
	default:
		return fmt.Errorf("unsupported theme version %q, want 1", t.Version)
	}

	checks := []struct {
		name     string
		value    string
		required bool
	}{
		{"primary", t.Colors.Primary, true},
		{"secondary", t.Colors.Secondary, true},
		{"warning", t.Colors.Warning, true},
		{"error", t.Colors.Error, true},
		{"muted", t.Colors.Muted, true},
		{"surface", t.Colors.Surface, true},
		{"text", t.Colors.Text, true},
		{"border", t.Colors.Border, true},
		{"approaches.closure", t.Colors.Approaches.Closure, false},
		{"approaches.stale", t.Colors.Approaches.Stale, false},
		{"approaches.shared", t.Colors.Approaches.Shared, false},
		{"approaches.channel", t.Colors.Approaches.Channel, false},
	}
	for _, c := range checks {
		if c.value == "" {
			if c.required {
				return fmt.Errorf("color '%s' is required", c.name)
			}
			continue
		}
		if !isValidHexColor(c.value) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", c.name, c.value)
		}
	}
	return nil
}

// ToPalette converts the theme to a ColorPalette, filling unset approach
// accents from the base colors.
func (t *ThemeFile) ToPalette() *ColorPalette {
	c := t.Colors
	return &ColorPalette{
		Primary:   lipgloss.Color(c.Primary),
		Secondary: lipgloss.Color(c.Secondary),
		Warning:   lipgloss.Color(c.Warning),
		Error:     lipgloss.Color(c.Error),
		Muted:     lipgloss.Color(c.Muted),
		Surface:   lipgloss.Color(c.Surface),
		Text:      lipgloss.Color(c.Text),
		Border:    lipgloss.Color(c.Border),

		ApproachClosure: pick(c.Approaches.Closure, c.Secondary),
		ApproachStale:   pick(c.Approaches.Stale, c.Warning),
		ApproachShared:  pick(c.Approaches.Shared, c.Primary),
		ApproachChannel: pick(c.Approaches.Channel, c.Primary),
	}
}

func pick(override, fallback string) lipgloss.Color {
	if override != "" {
		return lipgloss.Color(override)
	}
	return lipgloss.Color(fallback)
}

// customThemes holds themes registered at runtime, keyed by theme name.
var customThemes = make(map[ThemeName]*ThemeFile)

// RegisterCustomTheme makes a loaded theme selectable under name.
func RegisterCustomTheme(name ThemeName, theme *ThemeFile) {
	customThemes[name] = theme
}

// GetCustomTheme returns the registered theme, or nil when name is unknown.
func GetCustomTheme(name ThemeName) *ThemeFile {
	return customThemes[name]
}

// CustomThemeNames returns the registered theme names, sorted.
func CustomThemeNames() []string {
	names := make([]string, 0, len(customThemes))
	for name := range customThemes {
		names = append(names, string(name))
	}
	slices.Sort(names)
	return names
}

// ClearCustomThemes empties the registry.
func ClearCustomThemes() {
	customThemes = make(map[ThemeName]*ThemeFile)
}

// themesDirFn resolves the themes directory; tests swap it out through
// SetThemesDirFunc.
var themesDirFn = func() string {
	return filepath.Join(config.ConfigDir(), "themes")
}

// ThemesDir returns the directory scanned for custom theme files.
func ThemesDir() string {
	return themesDirFn()
}

// SetThemesDirFunc replaces the themes directory resolver and returns the
// previous one.
func SetThemesDirFunc(fn func() string) func() string {
	prev := themesDirFn
	themesDirFn = fn
	return prev
}

// DiscoverCustomThemes loads every .yaml/.yml file in the themes directory
// into the registry. Files that fail to load, and files that would shadow a
// built-in theme, are reported in the error list without stopping the scan.
func DiscoverCustomThemes() ([]string, []error) {
	dir := ThemesDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, []error{errors.Wrapf(err, "creating themes directory")}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []error{errors.Wrapf(err, "reading themes directory")}
	}

	var loaded []string
	var errs []error
	for _, entry := range entries {
		file := entry.Name()
		ext := filepath.Ext(file)
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		theme, err := LoadThemeFile(filepath.Join(dir, file))
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "%s", file))
			continue
		}

		name := strings.TrimSuffix(file, ext)
		if IsBuiltinTheme(name) {
			errs = append(errs, fmt.Errorf("%s: cannot override built-in theme '%s'", file, name))
			continue
		}

		RegisterCustomTheme(ThemeName(name), theme)
		loaded = append(loaded, name)
	}
	return loaded, errs
}

// IsBuiltinTheme reports whether name is one of the shipped themes.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// IsCustomTheme reports whether name is a registered custom theme.
func IsCustomTheme(name string) bool {
	_, ok := customThemes[ThemeName(name)]
	return ok
}
