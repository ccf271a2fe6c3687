package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// parseLevel maps a --log-level value to a slog level.
func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// setupLogging configures the logger for this run. Each run gets a run_id so
// that watch-mode sessions can be told apart in a shared log file.
func (a *app) setupLogging() error {
	level, err := parseLevel(a.logLevel)
	if err != nil {
		return usageError{err}
	}

	var out io.Writer = a.stderr
	if a.logFile != "" {
		rotating := &lumberjack.Logger{
			Filename:   a.logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		out = rotating
		a.closeFn = rotating.Close
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	a.logger = slog.New(handler).With("run_id", uuid.NewString())
	slog.SetDefault(a.logger)
	return nil
}

func (a *app) close() {
	if a.closeFn != nil {
		_ = a.closeFn()
		a.closeFn = nil
	}
}
