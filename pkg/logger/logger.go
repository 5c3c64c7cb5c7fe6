package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup builds the process logger and installs it as the slog default.
// logFile may be "stdout", a file path, or "both:<path>" to log to
// stdout and the file simultaneously.
func Setup(logLevel string, logFile string) *slog.Logger {
	var logWriter io.Writer = os.Stdout
	var handlerOptions = &slog.HandlerOptions{Level: getLogLevel(logLevel)}

	switch {
	case logFile == "" || logFile == "stdout":
	case strings.HasPrefix(logFile, "both:"):
		if file := openLogFile(strings.TrimPrefix(logFile, "both:")); file != nil {
			logWriter = io.MultiWriter(os.Stdout, file)
		}
	default:
		if file := openLogFile(logFile); file != nil {
			logWriter = file
		}
	}

	logger := slog.New(slog.NewTextHandler(logWriter, handlerOptions))
	slog.SetDefault(logger)
	return logger
}

func openLogFile(path string) *os.File {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) // #nosec G304 -- path provided via config.
	if err != nil {
		slog.Error("failed to open log file, falling back to stdout", "file", path, "error", err)
		return nil
	}
	return file
}

func getLogLevel(logLevel string) slog.Level {
	var level slog.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return level
}
