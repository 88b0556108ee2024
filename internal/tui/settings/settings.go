// Package settings provides the interactive configuration editor behind
// `recount config edit`. Edits are written through viper to the config
// file as they are made.
package settings

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/recount/internal/config"
	"github.com/Iron-Ham/recount/internal/tui/styles"
)

// ConfigItem describes a single editable configuration value.
type ConfigItem struct {
	Key         string   // Viper key, e.g. "channel.capacity"
	Label       string   // Display label
	Description string   // Help text shown when selected
	Type        string   // "string", "bool", "int", or "select"
	Options     []string // For select type
	Min         int      // For int type: smallest accepted value
	Max         int      // For int type: largest accepted value (0 = no limit)
}

// Category groups related configuration items.
type Category struct {
	Name  string
	Items []ConfigItem
}

// Model is the Bubble Tea model for the configuration editor.
type Model struct {
	categories     []Category
	categoryIndex  int
	itemIndex      int
	width          int
	height         int
	editing        bool
	textInput      textinput.Model
	selectIndex    int
	errorMsg       string
	infoMsg        string
	quitting       bool
	configModified bool
}

// New creates a configuration editor model.
func New() Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	categories := []Category{
		{
			Name: "Demo",
			Items: []ConfigItem{
				{
					Key:         "approach",
					Label:       "Approach",
					Description: "Counter approach selected on startup",
					Type:        "select",
					Options:     config.ValidApproaches(),
				},
			},
		},
		{
			Name: "Channel",
			Items: []ConfigItem{
				{
					Key:         "channel.capacity",
					Label:       "Capacity",
					Description: "Bounded channel capacity; clicks beyond it are dropped",
					Type:        "int",
					Min:         1,
					Max:         1024,
				},
				{
					Key:         "channel.log_drops",
					Label:       "Log drops",
					Description: "Write a debug log entry for every dropped click",
					Type:        "bool",
				},
			},
		},
		{
			Name: "TUI",
			Items: []ConfigItem{
				{
					Key:         "tui.show_log",
					Label:       "Show click log",
					Description: "Show the click log pane on startup",
					Type:        "bool",
				},
				{
					Key:         "tui.theme",
					Label:       "Theme",
					Description: "Color theme, applied immediately",
					Type:        "select",
					Options:     styles.ValidThemes(),
				},
				{
					Key:         "tui.theme_file",
					Label:       "Theme file",
					Description: "Path to a custom theme YAML file (overrides the theme)",
					Type:        "string",
				},
			},
		},
		{
			Name: "Logging",
			Items: []ConfigItem{
				{
					Key:         "logging.enabled",
					Label:       "Enabled",
					Description: "Enable debug logging",
					Type:        "bool",
				},
				{
					Key:         "logging.level",
					Label:       "Level",
					Description: "Minimum level written to the log",
					Type:        "select",
					Options:     config.ValidLogLevels(),
				},
				{
					Key:         "logging.file",
					Label:       "Log file",
					Description: "Log file path; empty for the default, \"stderr\" for stderr",
					Type:        "string",
				},
				{
					Key:         "logging.max_size_mb",
					Label:       "Max size (MB)",
					Description: "Log file size that triggers rotation",
					Type:        "int",
					Min:         1,
				},
				{
					Key:         "logging.max_backups",
					Label:       "Max backups",
					Description: "Rotated log files to keep",
					Type:        "int",
				},
			},
		},
	}

	return Model{
		categories: categories,
		textInput:  ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Any keypress clears transient messages
		m.errorMsg = ""
		m.infoMsg = ""

		if m.editing {
			return m.handleEditingKeypress(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			if m.configModified {
				m.infoMsg = "Changes saved!"
			}
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			m.itemIndex--
			if m.itemIndex < 0 {
				m.categoryIndex--
				if m.categoryIndex < 0 {
					m.categoryIndex = len(m.categories) - 1
				}
				m.itemIndex = len(m.categories[m.categoryIndex].Items) - 1
			}

		case "down", "j":
			m.itemIndex++
			if m.itemIndex >= len(m.categories[m.categoryIndex].Items) {
				m.itemIndex = 0
				m.categoryIndex++
				if m.categoryIndex >= len(m.categories) {
					m.categoryIndex = 0
				}
			}

		case "tab":
			m.categoryIndex = (m.categoryIndex + 1) % len(m.categories)
			m.itemIndex = 0

		case "shift+tab":
			m.categoryIndex--
			if m.categoryIndex < 0 {
				m.categoryIndex = len(m.categories) - 1
			}
			m.itemIndex = 0

		case "enter", " ":
			item := m.currentItem()
			switch item.Type {
			case "bool":
				viper.Set(item.Key, !viper.GetBool(item.Key))
				m.saveConfig()
			case "select":
				m.editing = true
				m.selectIndex = m.currentSelectIndex()
			default:
				m.editing = true
				m.textInput.SetValue(m.currentValue())
				m.textInput.Focus()
			}

		case "r":
			m.resetCurrentToDefault()
		}
	}

	return m, nil
}

// handleEditingKeypress handles keys while the edit overlay is open.
func (m Model) handleEditingKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item := m.currentItem()

	switch msg.String() {
	case "esc":
		m.editing = false
		m.textInput.SetValue("")
		return m, nil

	case "enter":
		if item.Type == "select" {
			value := item.Options[m.selectIndex]
			viper.Set(item.Key, value)
			m.applySideEffects(item.Key, value)
			m.saveConfig()
			m.editing = false
			return m, nil
		}
		if err := validateAndSet(item, m.textInput.Value()); err != nil {
			m.errorMsg = err.Error()
			return m, nil
		}
		m.saveConfig()
		m.editing = false
		m.textInput.SetValue("")
		return m, nil

	case "up", "k":
		if item.Type == "select" {
			m.selectIndex--
			if m.selectIndex < 0 {
				m.selectIndex = len(item.Options) - 1
			}
			return m, nil
		}

	case "down", "j":
		if item.Type == "select" {
			m.selectIndex++
			if m.selectIndex >= len(item.Options) {
				m.selectIndex = 0
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// applySideEffects applies a value change that should take effect
// immediately rather than on the next start.
func (m *Model) applySideEffects(key, value string) {
	if key == "tui.theme" {
		styles.SetActiveTheme(styles.ThemeName(value))
	}
}

// currentItem returns the selected configuration item.
func (m Model) currentItem() ConfigItem {
	return m.categories[m.categoryIndex].Items[m.itemIndex]
}

// currentValue returns the selected item's value as edit-ready text.
func (m Model) currentValue() string {
	item := m.currentItem()
	switch item.Type {
	case "bool":
		return strconv.FormatBool(viper.GetBool(item.Key))
	case "int":
		return strconv.Itoa(viper.GetInt(item.Key))
	default:
		return viper.GetString(item.Key)
	}
}

// currentSelectIndex returns the index of the current value within the
// selected item's options, or 0 if the value is not among them.
func (m Model) currentSelectIndex() int {
	item := m.currentItem()
	value := viper.GetString(item.Key)
	for i, opt := range item.Options {
		if opt == value {
			return i
		}
	}
	return 0
}

// displayValue returns the value rendered in the item list.
func displayValue(item ConfigItem) string {
	switch item.Type {
	case "bool":
		return strconv.FormatBool(viper.GetBool(item.Key))
	case "int":
		return strconv.Itoa(viper.GetInt(item.Key))
	default:
		v := viper.GetString(item.Key)
		if v == "" {
			return "(not set)"
		}
		return v
	}
}

// validateAndSet parses value according to the item's type and writes it
// to viper. Invalid values are reported without being written.
func validateAndSet(item ConfigItem, value string) error {
	value = strings.TrimSpace(value)

	switch item.Type {
	case "int":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid number: %s", value)
		}
		if n < item.Min {
			return fmt.Errorf("must be at least %d", item.Min)
		}
		if item.Max > 0 && n > item.Max {
			return fmt.Errorf("exceeds maximum of %d", item.Max)
		}
		viper.Set(item.Key, n)

	case "bool":
		if value != "true" && value != "false" {
			return fmt.Errorf("must be true or false, got: %s", value)
		}
		viper.Set(item.Key, value == "true")

	case "select":
		if !slices.Contains(item.Options, value) {
			return fmt.Errorf("must be one of: %s", strings.Join(item.Options, ", "))
		}
		viper.Set(item.Key, value)

	default:
		viper.Set(item.Key, value)
	}

	return nil
}

// saveConfig writes the current viper state to the config file.
func (m *Model) saveConfig() {
	if err := os.MkdirAll(config.ConfigDir(), 0755); err != nil {
		m.errorMsg = fmt.Sprintf("Failed to create config directory: %v", err)
		return
	}
	if err := viper.WriteConfigAs(config.ConfigFile()); err != nil {
		m.errorMsg = fmt.Sprintf("Failed to save config: %v", err)
		return
	}
	m.infoMsg = "Saved!"
	m.configModified = true
}

// resetCurrentToDefault restores the selected item to its default value.
func (m *Model) resetCurrentToDefault() {
	item := m.currentItem()
	defaults := config.Default()

	defaultValues := map[string]any{
		"approach":            defaults.Approach,
		"channel.capacity":    defaults.Channel.Capacity,
		"channel.log_drops":   defaults.Channel.LogDrops,
		"tui.show_log":        defaults.TUI.ShowLog,
		"tui.theme":           defaults.TUI.Theme,
		"tui.theme_file":      defaults.TUI.ThemeFile,
		"logging.enabled":     defaults.Logging.Enabled,
		"logging.level":       defaults.Logging.Level,
		"logging.file":        defaults.Logging.File,
		"logging.max_size_mb": defaults.Logging.MaxSizeMB,
		"logging.max_backups": defaults.Logging.MaxBackups,
	}

	value, ok := defaultValues[item.Key]
	if !ok {
		return
	}

	viper.Set(item.Key, value)
	if s, isString := value.(string); isString {
		m.applySideEffects(item.Key, s)
	}
	m.saveConfig()
	if m.errorMsg == "" {
		m.infoMsg = fmt.Sprintf("Reset %s to default", item.Key)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Header.Width(m.width - 4).Render("Recount Configuration"))
	b.WriteString("\n")

	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		configPath = config.ConfigFile() + " (not created)"
	}
	b.WriteString(styles.Muted.Render("Config: "+configPath) + "\n\n")

	for ci, cat := range m.categories {
		header := fmt.Sprintf("[ %s ]", cat.Name)
		if ci == m.categoryIndex {
			b.WriteString(styles.Primary.Bold(true).Render(header))
		} else {
			b.WriteString(styles.Muted.Bold(true).Render(header))
		}
		b.WriteString("\n")

		for ii, item := range cat.Items {
			selected := ci == m.categoryIndex && ii == m.itemIndex
			b.WriteString(renderItem(item, selected))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString(m.renderEditOverlay())
		b.WriteString("\n")
	} else {
		b.WriteString(styles.Muted.Render(m.currentItem().Description))
		b.WriteString("\n")
	}

	if m.errorMsg != "" {
		b.WriteString(styles.ErrorMsg.Render(m.errorMsg) + "\n")
	}
	if m.infoMsg != "" {
		b.WriteString(styles.SuccessMsg.Render(m.infoMsg) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func renderItem(item ConfigItem, selected bool) string {
	label := fmt.Sprintf("%-25s", item.Label)
	value := displayValue(item)

	if selected {
		cursor := styles.Secondary.Render("  > ")
		return cursor + styles.Text.Bold(true).Render(label) + " " + styles.Primary.Render(value)
	}
	return "    " + styles.Muted.Render(label) + " " + styles.Text.Render(value)
}

func (m Model) renderEditOverlay() string {
	item := m.currentItem()

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.PrimaryColor).
		Padding(1, 2).
		Width(50)

	var b strings.Builder
	b.WriteString(styles.Title.Render("Edit: "+item.Label) + "\n\n")

	if item.Type == "select" {
		for i, opt := range item.Options {
			if i == m.selectIndex {
				b.WriteString(styles.Secondary.Bold(true).Render(" > "+opt) + "\n")
			} else {
				b.WriteString(styles.Muted.Render("   "+opt) + "\n")
			}
		}
		b.WriteString("\n" + styles.Muted.Render("j/k to choose, enter to apply"))
	} else {
		b.WriteString(m.textInput.View())
	}

	return box.Render(b.String())
}

func (m Model) renderHelp() string {
	var entries []string
	if m.editing {
		entries = []string{
			styles.HelpKey.Render("[enter]") + " save",
			styles.HelpKey.Render("[esc]") + " cancel",
		}
	} else {
		entries = []string{
			styles.HelpKey.Render("[j/k]") + " navigate",
			styles.HelpKey.Render("[tab]") + " category",
			styles.HelpKey.Render("[enter]") + " edit",
			styles.HelpKey.Render("[r]") + " reset",
			styles.HelpKey.Render("[q]") + " quit",
		}
	}
	return styles.HelpBar.Render(strings.Join(entries, "  "))
}

// Run starts the configuration editor and blocks until it exits.
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
