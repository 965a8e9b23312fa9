package config

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger builds the application logger. When Debug is off all output is
// discarded; otherwise records append to LogFile in the config directory.
// Logging to a file keeps the terminal free for the front ends.
func (c *Config) NewLogger() *slog.Logger {
	if !c.Debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	f, err := os.OpenFile(c.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
