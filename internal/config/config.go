// Package config handles the per-user configuration directory and the
// resolved state file path.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "vibetodo"

	// StateFile is the persisted task list filename.
	StateFile = "tasks.json"

	// LogFile is the debug log filename.
	LogFile = "vibetodo.log"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging to LogFile.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses the per-OS user configuration root (honoring
// XDG_CONFIG_HOME on Unix-like systems) plus the application namespace.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set; otherwise the OS convention reported by
// os.UserConfigDir (~/.config on Linux, ~/Library/Application Support on
// macOS, roaming AppData on Windows).
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	root, err := os.UserConfigDir()
	if err != nil {
		// Fallback to current directory if no home can be determined
		return AppName
	}
	return filepath.Join(root, AppName)
}

// StatePath returns the path to the persisted task list file.
func (c *Config) StatePath() string {
	return filepath.Join(c.Dir, StateFile)
}

// LogPath returns the path to the debug log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// EnsureDir creates the config directory if it doesn't exist.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// ResolveStatePath resolves the state file location once, at startup.
// It attempts to create the config directory; if that fails the state file
// falls back to the process working directory, which is always writable,
// rather than failing outright. The result is fixed configuration handed to
// the effect executor, not ambient global state.
func (c *Config) ResolveStatePath() string {
	if err := c.EnsureDir(); err != nil {
		return StateFile
	}
	return c.StatePath()
}
