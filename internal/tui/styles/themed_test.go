package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewThemedStylesCopiesPalette(t *testing.T) {
	p := GetPalette(ThemeDracula)
	s := NewThemedStyles(p)

	colors := []struct {
		name string
		got  lipgloss.Color
		want lipgloss.Color
	}{
		{"PrimaryColor", s.PrimaryColor, p.Primary},
		{"SecondaryColor", s.SecondaryColor, p.Secondary},
		{"WarningColor", s.WarningColor, p.Warning},
		{"ErrorColor", s.ErrorColor, p.Error},
		{"MutedColor", s.MutedColor, p.Muted},
		{"SurfaceColor", s.SurfaceColor, p.Surface},
		{"TextColor", s.TextColor, p.Text},
		{"BorderColor", s.BorderColor, p.Border},
		{"ApproachClosureColor", s.ApproachClosureColor, p.ApproachClosure},
		{"ApproachStaleColor", s.ApproachStaleColor, p.ApproachStale},
		{"ApproachSharedColor", s.ApproachSharedColor, p.ApproachShared},
		{"ApproachChannelColor", s.ApproachChannelColor, p.ApproachChannel},
	}
	for _, c := range colors {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
}

func TestApproachColor(t *testing.T) {
	s := NewThemedStyles(DefaultPalette())

	tests := []struct {
		approach string
		want     string
	}{
		{"closure", "#10B981"},
		{"stale", "#F59E0B"},
		{"shared", "#60A5FA"},
		{"channel", "#A78BFA"},
		{"unknown", "#9CA3AF"}, // muted
	}

	for _, tt := range tests {
		if got := s.ApproachColor(tt.approach); string(got) != tt.want {
			t.Errorf("ApproachColor(%q) = %q, want %q", tt.approach, got, tt.want)
		}
	}
}

func TestEveryStyleRenders(t *testing.T) {
	for _, name := range builtinThemeOrder {
		t.Run(string(name), func(t *testing.T) {
			s := NewThemedStyles(GetPalette(name))
			for _, style := range []lipgloss.Style{
				s.Primary, s.Secondary, s.Warning, s.Error, s.Muted, s.Surface, s.Text,
				s.Title, s.Subtitle, s.Header, s.ApproachBadge,
				s.Button, s.ContentBox, s.DisplayText,
				s.LogTitle, s.LogTime, s.LogEntry, s.LogDropped,
				s.StatusBar, s.HelpBar, s.HelpKey,
				s.ErrorMsg, s.SuccessMsg, s.WarningMsg,
			} {
				if style.Render("x") == "" {
					t.Error("style rendered an empty string")
				}
			}
		})
	}
}

func TestSetActiveThemeUpdatesGlobals(t *testing.T) {
	t.Cleanup(func() { SetActiveTheme(ThemeDefault) })

	tests := []struct {
		theme     ThemeName
		primary   string
		secondary string
		stale     string
	}{
		{ThemeDefault, "#A78BFA", "#10B981", "#F59E0B"},
		{ThemeMonokai, "#F92672", "#A6E22E", "#FD971F"},
		{ThemeDracula, "#BD93F9", "#50FA7B", "#FFB86C"},
		{ThemeNord, "#88C0D0", "#A3BE8C", "#D08770"},
	}

	for _, tt := range tests {
		t.Run(string(tt.theme), func(t *testing.T) {
			SetActiveTheme(tt.theme)

			if string(PrimaryColor) != tt.primary {
				t.Errorf("PrimaryColor = %q, want %q", PrimaryColor, tt.primary)
			}
			if string(SecondaryColor) != tt.secondary {
				t.Errorf("SecondaryColor = %q, want %q", SecondaryColor, tt.secondary)
			}
			if string(ApproachStaleColor) != tt.stale {
				t.Errorf("ApproachStaleColor = %q, want %q", ApproachStaleColor, tt.stale)
			}
			if got := GetActiveTheme().PrimaryColor; got != PrimaryColor {
				t.Errorf("GetActiveTheme().PrimaryColor = %q, out of sync with global %q", got, PrimaryColor)
			}
			if Primary.Render("x") == "" {
				t.Error("global Primary style should render content")
			}
		})
	}
}

func TestGetActiveTheme(t *testing.T) {
	active := GetActiveTheme()
	if active == nil {
		t.Fatal("GetActiveTheme() returned nil")
	}
	if active.PrimaryColor == "" || active.SecondaryColor == "" {
		t.Error("active theme should carry palette colors")
	}
}
