package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

func parseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupLogger creates a configured slog.Logger. JSON logs go to the
// command's stdout for piping, text logs to its stderr.
func setupLogger(cmd *cobra.Command, levelStr string, jsonOutput bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(levelStr)}

	var (
		handler slog.Handler
		out     io.Writer
	)

	if jsonOutput {
		out = cmd.OutOrStdout()
		handler = slog.NewJSONHandler(out, opts)
	} else {
		out = cmd.ErrOrStderr()
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler)
}
