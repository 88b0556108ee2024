package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/recount/internal/demo"
	"github.com/Iron-Ham/recount/internal/tui/styles"
)

var approachesCmd = &cobra.Command{
	Use:   "approaches",
	Short: "List the four counter approaches",
	Long: `List the four counter approaches with a short description of how each
one stores and updates the count.

The number next to each approach selects it inside the TUI.`,
	RunE: runApproaches,
}

func init() {
	rootCmd.AddCommand(approachesCmd)
}

func runApproaches(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for i, a := range demo.Approaches() {
		name := styles.ApproachBadge.
			Foreground(styles.ApproachColor(string(a))).
			Render(string(a))
		fmt.Fprintf(out, "%d. %s\n", i+1, name)
		fmt.Fprintf(out, "   %s\n", a.Describe())
	}
	return nil
}
