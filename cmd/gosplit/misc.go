package main

import (
	"io"
	"log/slog"
)

// initTrace builds the logger. Chunks are the output of the tool, so only
// warnings and errors are logged unless DEBUGLEVEL asks for more.
func initTrace(w io.Writer, debugLevel string, noLogTime bool) *slog.Logger {
	handlerOptions := &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}
	if noLogTime {
		handlerOptions.ReplaceAttr = func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{} // Remove the time attribute
			}
			return a
		}
	}

	switch debugLevel {
	case "debug":
		handlerOptions.Level = slog.LevelDebug
		handlerOptions.AddSource = true
	case "info":
		handlerOptions.Level = slog.LevelInfo
	case "warn":
		handlerOptions.Level = slog.LevelWarn
	case "error":
		handlerOptions.Level = slog.LevelError
	default:
		handlerOptions.Level = slog.LevelWarn
	}

	handler := slog.NewTextHandler(w, handlerOptions)
	return slog.New(handler)
}
