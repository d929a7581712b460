package logger

import (
	"log/slog"
	"time"
)

// LogQuery logs database operations. Successful queries go out at debug level.
func LogQuery(query string, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "db"),
		slog.Duration("took", duration),
		slog.String("query", query),
	}

	if err != nil {
		slog.Error("Query failed", append(attrs, slog.Any("error", err))...)
		return
	}
	slog.Debug("Query executed", attrs...)
}

// LogRequest logs a finished HTTP request.
func LogRequest(method, path string, status int, duration time.Duration, attrs ...any) {
	base := []any{
		slog.String("type", "http"),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Duration("took", duration),
	}

	switch {
	case status >= 500:
		slog.Error("Request failed", append(base, attrs...)...)
	case status >= 400:
		slog.Warn("Request rejected", append(base, attrs...)...)
	default:
		slog.Info("Request completed", append(base, attrs...)...)
	}
}

// LogAction logs a progression action applied for a user.
func LogAction(action string, userID int64, attrs ...any) {
	base := []any{
		slog.String("type", "action"),
		slog.String("action", action),
		slog.Int64("user_id", userID),
	}
	slog.Info("Action applied", append(base, attrs...)...)
}

// LogSystem logs system events
func LogSystem(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "sys")}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}

// LogError logs error events
func LogError(msg string, err error, attrs ...any) {
	baseAttrs := []any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}
	slog.Error(msg, append(baseAttrs, attrs...)...)
}
