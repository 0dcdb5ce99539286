package logger

import (
	"log/slog"
	"os"
)

// SetupPrettySlog returns a text slog for local runs, debug level on.
func SetupPrettySlog() *slog.Logger {
	return slog.New(
		slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: false,
		}),
	)
}
