package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Output formats accepted by New and Init.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel converts a string level name to slog.Level.
// Supported values: debug, info, warn, error (case-insensitive).
// Returns slog.LevelInfo for unrecognized values.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFormat normalizes a format name, falling back to FormatText.
func ParseFormat(format string) string {
	if strings.EqualFold(strings.TrimSpace(format), FormatJSON) {
		return FormatJSON
	}
	return FormatText
}

// New builds a logger writing to w with lower-case level names.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.LevelKey {
				attr.Value = slog.StringValue(strings.ToLower(attr.Value.String()))
			}
			return attr
		},
	}
	var handler slog.Handler
	if ParseFormat(format) == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("service", "vetpost")
}

// Init installs the process-wide logger on stdout.
// This should be called once at application startup.
func Init(level slog.Level, format string) {
	InitWriter(os.Stdout, level, format)
}

// InitWriter installs the process-wide logger on w.
func InitWriter(w io.Writer, level slog.Level, format string) {
	slog.SetDefault(New(w, level, format))
}

// Debug logs a message at DEBUG level.
func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

// Info logs a message at INFO level.
func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

// Warn logs a message at WARN level.
func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

// Error logs a message at ERROR level.
func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}
