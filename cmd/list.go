package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nordlys/scdmod/internal/schedule"
	"github.com/nordlys/scdmod/internal/storage"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list <site-id> [schedule-dir]",
	Short: "Print a schedule file",
	Long: `Print the entries of the site's schedule file, newest first, with an
index column. The order matches what the editor shows.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		listSchedule(args)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// listSchedule prints the schedule entries in display order.
func listSchedule(args []string) {
	cfg := loadOrWarnConfig()

	path, ok := resolveSchedulePath(args, cfg)
	if !ok {
		deps.Exit(1)
		return
	}

	entries, err := storage.Load(path)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries in %s\n", path)
		return
	}

	// Right-align indices to the widest one.
	width := len(fmt.Sprintf("%d", len(entries)))
	for i, e := range entries {
		_, _ = fmt.Fprintf(deps.Stdout, "[%*d] %s\n", width, i+1, schedule.Encode(e))
	}
}
