package cmd

import (
	"io"
	"os"

	"github.com/nordlys/scdmod/internal/config"
	"github.com/nordlys/scdmod/internal/session"
	"github.com/nordlys/scdmod/internal/tui"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Exit       func(code int)
	Getenv     func(key string) string
	LoadConfig func() (config.Config, error)
	RunTUI     func(sess *session.Session, theme string) (confirmed bool, err error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Exit:       os.Exit,
		Getenv:     os.Getenv,
		LoadConfig: loadConfig,
		RunTUI:     tui.Run,
	}
}

// loadConfig resolves the config path and reads the file, falling back to
// defaults when the file does not exist.
func loadConfig() (config.Config, error) {
	path, err := config.GetConfigPath()
	if err != nil {
		return config.DefaultConfig(), err
	}
	return config.LoadOrDefault(path)
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}
