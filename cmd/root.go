package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nordlys/scdmod/internal/config"
	"github.com/nordlys/scdmod/internal/experiments"
	"github.com/nordlys/scdmod/internal/session"
	"github.com/nordlys/scdmod/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "scdmod <site-id> [schedule-dir] [experiments-dir]",
	Short: "Interactively modify a Borealis schedule file",
	Long: `scdmod opens the schedule file for a site in an interactive editor.

Usage:
  scdmod sas                         Edit sas.scd from the configured directory
  scdmod sas /data/schedules         Edit /data/schedules/sas.scd
  scdmod check sas                   Validate sas.scd without opening the editor
  scdmod list sas                    Print the entries of sas.scd

The schedule directory is resolved from the second argument, then the
schedule_dir config key, then the ` + config.EnvScheduleDir + ` environment
variable. The experiments directory is resolved from the third argument, then
the experiments_dir config key, then $` + config.EnvBorealisPath + `/src/borealis_experiments;
when none is set, experiment names are not validated against the repertoire.

Changes are kept in memory until you quit (q) and confirm the write (y);
the previous file contents are copied to a .bak sibling before every write.`,
	Args: cobra.RangeArgs(1, 3),
	Run: func(cmd *cobra.Command, args []string) {
		runEditor(args)
	},
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"scdmod version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// resolveSchedulePath builds the schedule file path for a site from the
// argument list, the config file, and the environment, in that order.
func resolveSchedulePath(args []string, cfg config.Config) (string, bool) {
	var dir string
	switch {
	case len(args) > 1:
		dir = args[1]
	case cfg.ScheduleDir != "":
		dir = cfg.ScheduleDir
	default:
		dir = deps.Getenv(config.EnvScheduleDir)
	}
	if dir == "" {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: No schedule directory")
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Pass it as an argument, set schedule_dir in the config, or export %s\n", config.EnvScheduleDir)
		return "", false
	}
	return filepath.Join(dir, args[0]+storage.ScheduleExt), true
}

// resolveExperimentsDir finds the Borealis experiments directory, or ""
// when none is configured.
func resolveExperimentsDir(args []string, cfg config.Config) string {
	switch {
	case len(args) > 2:
		return args[2]
	case cfg.ExperimentsDir != "":
		return cfg.ExperimentsDir
	}
	if root := deps.Getenv(config.EnvBorealisPath); root != "" {
		return filepath.Join(root, "src", "borealis_experiments")
	}
	return ""
}

// loadOrWarnConfig reads the config, falling back to defaults with a
// warning when the file is unreadable.
func loadOrWarnConfig() config.Config {
	cfg, err := deps.LoadConfig()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: Using default config: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

// runEditor loads the site's schedule, runs the TUI, and writes the result
// back if the user confirmed.
func runEditor(args []string) {
	cfg := loadOrWarnConfig()

	schedulePath, ok := resolveSchedulePath(args, cfg)
	if !ok {
		deps.Exit(1)
		return
	}

	entries, err := storage.Load(schedulePath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load schedule")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the file exists and every line is well formed: %s\n", schedulePath)
		deps.Exit(1)
		return
	}

	var known []string
	if dir := resolveExperimentsDir(args, cfg); dir != "" {
		known, err = experiments.Scan(dir)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Warning: Cannot scan experiments in %s: %v\n", dir, err)
			_, _ = fmt.Fprintln(deps.Stderr, "Experiment names will not be validated")
			known = nil
		}
	}

	sess := session.New(entries, known)

	confirmed, err := deps.RunTUI(sess, cfg.Theme)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	if !confirmed {
		_, _ = fmt.Fprintln(deps.Stdout, "Changes discarded")
		return
	}

	if err := storage.Save(schedulePath, sess.Entries.Items); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write schedule")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: The original file is untouched: %s\n", schedulePath)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Wrote %d entries to %s\n", sess.Entries.Len(), schedulePath)
}
