package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nordlys/scdmod/internal/storage"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <site-id> [schedule-dir]",
	Short: "Validate a schedule file",
	Long: `Decode every line of the site's schedule file and report the first
problem found, or confirm that the file is well formed.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		checkSchedule(args)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkSchedule loads the schedule and reports its health.
func checkSchedule(args []string) {
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

	_, _ = fmt.Fprintf(deps.Stdout, "%s: %d entries, all valid\n", path, len(entries))
}
