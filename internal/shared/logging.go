package shared

import (
	"log/slog"
	"os"
	"strings"
)

// InitLogger installs the process-wide slog logger. Diagnostics go to
// stderr so report output on stdout stays machine-parseable.
func InitLogger(level string) *slog.Logger {
	lvl := slog.LevelWarn
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}
