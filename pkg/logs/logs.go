// Package logs builds the logger shared by the commands.
package logs

import (
	"io"
	"log/slog"

	"github.com/gogpu/gg"
)

// New returns a text logger writing to w. Verbose loggers include debug
// records and are also handed to gg, which is otherwise silent.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	if verbose {
		gg.SetLogger(logger)
	}
	return logger
}
