package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/recount/internal/config"
	"github.com/Iron-Ham/recount/internal/logging"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the debug log",
	Long: `View and filter recount's debug log.

Click handlers log at debug level, so running with logging.level set to
debug records every click, render, and dropped message.

Examples:
  # Show the last 50 lines
  recount logs

  # Show everything
  recount logs -n 0

  # Follow new entries in real time
  recount logs -f

  # Only warnings and errors
  recount logs --level warn

  # Entries from the last half hour
  recount logs --since 30m

  # Search for dropped clicks
  recount logs --grep "dropped"`,
	RunE: runLogs,
}

var (
	logsTail   int
	logsFollow bool
	logsLevel  string
	logsSince  string
	logsGrep   string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of lines to show (0 for all)")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow log output (like tail -f)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show logs since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Filter logs matching pattern (regex)")
}

// followPollInterval is how long follow mode waits at end of file
// before checking for new entries.
const followPollInterval = 100 * time.Millisecond

// logEntry is one parsed line of the JSON debug log. Fields the logger
// always writes are typed; anything else the entry carried lands in
// Extra.
type logEntry struct {
	Time      time.Time      `json:"time"`
	Level     string         `json:"level"`
	Msg       string         `json:"msg"`
	Approach  string         `json:"approach,omitempty"`
	Component string         `json:"component,omitempty"`
	Extra     map[string]any `json:"-"`
}

func (e *logEntry) UnmarshalJSON(data []byte) error {
	// The alias sheds UnmarshalJSON so the typed fields decode without
	// recursing.
	type plain logEntry
	if err := json.Unmarshal(data, (*plain)(e)); err != nil {
		return err
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for key, value := range fields {
		switch key {
		case "time", "level", "msg", "approach", "component":
			continue
		}
		if e.Extra == nil {
			e.Extra = make(map[string]any)
		}
		e.Extra[key] = value
	}
	return nil
}

// searchText is what --grep matches against: the message plus every
// extra field value.
func (e *logEntry) searchText() string {
	parts := []string{e.Msg}
	for _, value := range e.Extra {
		parts = append(parts, fmt.Sprint(value))
	}
	return strings.Join(parts, " ")
}

// levelOrder lists levels least to most severe; the index doubles as
// the filter priority.
var levelOrder = []string{logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError}

// levelPriority returns a level's position in levelOrder, or -1 for
// anything unrecognized.
func levelPriority(level string) int {
	return slices.Index(levelOrder, strings.ToUpper(level))
}

// lipgloss drops the colors when stdout is not a terminal, so piped
// output stays clean.
var (
	logTimeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	logFieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	logLevelStyles = map[string]lipgloss.Style{
		logging.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		logging.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		logging.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		logging.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

// formatLogEntry renders one entry as a single line: timestamp, level,
// message, then tag and extra fields. Extra fields print in sorted
// order so repeated runs line up.
func formatLogEntry(entry *logEntry) string {
	level := strings.ToUpper(entry.Level)
	levelStyle, ok := logLevelStyles[level]
	if !ok {
		levelStyle = lipgloss.NewStyle()
	}

	parts := []string{
		logTimeStyle.Render("[" + entry.Time.Format("15:04:05.000") + "]"),
		levelStyle.Render("[" + level + "]"),
		entry.Msg,
	}

	if entry.Approach != "" {
		parts = append(parts, logFieldStyle.Render("approach="+entry.Approach))
	}
	if entry.Component != "" {
		parts = append(parts, logFieldStyle.Render("component="+entry.Component))
	}
	for _, key := range slices.Sorted(maps.Keys(entry.Extra)) {
		parts = append(parts, logFieldStyle.Render(key+"=")+fmt.Sprint(entry.Extra[key]))
	}

	return strings.Join(parts, " ")
}

// logFilter bundles the flag-derived criteria applied to each entry.
type logFilter struct {
	minLevel int
	since    time.Time
	grep     *regexp.Regexp
}

// filterFromFlags validates the filter flags and assembles the filter.
func filterFromFlags() (logFilter, error) {
	filter := logFilter{minLevel: -1}

	if logsLevel != "" {
		filter.minLevel = levelPriority(logging.ParseLevel(logsLevel))
	}
	if logsSince != "" {
		duration, err := time.ParseDuration(logsSince)
		if err != nil {
			return logFilter{}, fmt.Errorf("invalid duration format: %w", err)
		}
		filter.since = time.Now().Add(-duration)
	}
	if logsGrep != "" {
		re, err := regexp.Compile(logsGrep)
		if err != nil {
			return logFilter{}, fmt.Errorf("invalid grep pattern: %w", err)
		}
		filter.grep = re
	}
	return filter, nil
}

// passesFilters reports whether an entry survives the level, since,
// and grep criteria. A minLevel of -1 admits every level.
func passesFilters(entry *logEntry, minLevel int, sinceTime time.Time, grepRegex *regexp.Regexp) bool {
	if levelPriority(entry.Level) < minLevel {
		return false
	}
	if !sinceTime.IsZero() && entry.Time.Before(sinceTime) {
		return false
	}
	if grepRegex != nil && !grepRegex.MatchString(entry.searchText()) {
		return false
	}
	return true
}

// formatLine parses and renders one raw log line. Lines that are not
// JSON pass through untouched; filtered-out entries return keep=false.
func formatLine(raw string, filter logFilter) (formatted string, keep bool) {
	var entry logEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return raw, true
	}
	if !passesFilters(&entry, filter.minLevel, filter.since, filter.grep) {
		return "", false
	}
	return formatLogEntry(&entry), true
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	logPath := cfg.Logging.ResolveLogFile()
	if logPath == "" {
		return fmt.Errorf("logging.file is set to stderr; there is no log file to read")
	}
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "No log file found at %s\n", logPath)
		fmt.Fprintln(out, "Run the demo with logging enabled to create it.")
		return nil
	}

	filter, err := filterFromFlags()
	if err != nil {
		return err
	}

	if logsFollow {
		return followLogs(cmd.OutOrStdout(), logPath, filter)
	}
	return displayLogs(cmd.OutOrStdout(), logPath, logsTail, filter)
}

// displayLogs prints the filtered log, keeping only the last tail
// entries when tail is positive.
func displayLogs(out io.Writer, logPath string, tail int, filter logFilter) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	// Entries with many extra fields can outgrow the default token
	// limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		raw := scanner.Text()
		if raw == "" {
			continue
		}
		if formatted, keep := formatLine(raw, filter); keep {
			lines = append(lines, formatted)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading log file: %w", err)
	}

	if tail > 0 && len(lines) > tail {
		lines = lines[len(lines)-tail:]
	}
	if len(lines) == 0 {
		fmt.Fprintln(out, "No matching log entries found.")
		return nil
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

// followLogs prints new entries as they are appended, polling from the
// current end of the file. It returns only on a read error; the user
// interrupts it from the terminal.
func followLogs(out io.Writer, logPath string, filter logFilter) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek to end: %w", err)
	}

	fmt.Fprintf(out, "Following logs... (Ctrl+C to stop)\n\n")

	reader := bufio.NewReader(file)
	var partial string
	for {
		chunk, err := reader.ReadString('\n')
		if err == io.EOF {
			// A write can land between polls; carry the partial line
			// until its newline arrives.
			partial += chunk
			time.Sleep(followPollInterval)
			continue
		}
		if err != nil {
			return fmt.Errorf("error reading log file: %w", err)
		}

		raw := strings.TrimSpace(partial + chunk)
		partial = ""
		if raw == "" {
			continue
		}
		if formatted, keep := formatLine(raw, filter); keep {
			fmt.Fprintln(out, formatted)
		}
	}
}
