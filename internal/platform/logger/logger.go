package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide structured logger. Text output by default;
// set LOG_FORMAT=json for log aggregation pipelines.
func New() *slog.Logger {
	var handler slog.Handler
	if os.Getenv("LOG_FORMAT") == "json" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	return slog.New(handler)
}
