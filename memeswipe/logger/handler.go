package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeHTTP   LogType = "HTTP"
	TypeDB     LogType = "DB"
	TypeSystem LogType = "SYS"
	TypeAction LogType = "ACT"
	TypeError  LogType = "ERR"
)

// CustomHandler prints one coloured line per record.
type CustomHandler struct {
	opts      *slog.HandlerOptions
	out       io.Writer
	mu        *sync.Mutex
	startTime time.Time
	attrs     []slog.Attr
	groups    []string
}

func NewHandler() *CustomHandler {
	return NewHandlerWithOptions(os.Stdout, slog.LevelDebug)
}

// NewHandlerWithOptions writes to out and drops records below level.
func NewHandlerWithOptions(out io.Writer, level slog.Leveler) *CustomHandler {
	return &CustomHandler{
		opts:      &slog.HandlerOptions{Level: level},
		out:       out,
		mu:        &sync.Mutex{},
		startTime: time.Now(),
		attrs:     make([]slog.Attr, 0),
		groups:    make([]string, 0),
	}
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	return &CustomHandler{
		opts:      h.opts,
		out:       h.out,
		mu:        h.mu,
		startTime: h.startTime,
		attrs:     append(merged, attrs...),
		groups:    h.groups,
	}
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	groups := make([]string, 0, len(h.groups)+1)
	groups = append(groups, h.groups...)
	return &CustomHandler{
		opts:      h.opts,
		out:       h.out,
		mu:        h.mu,
		startTime: h.startTime,
		attrs:     h.attrs,
		groups:    append(groups, name),
	}
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	timestamp := r.Time.Format("15:04:05")
	if r.Time.IsZero() {
		timestamp = time.Now().Format("15:04:05")
	}

	var levelColor, levelText string
	switch {
	case r.Level >= slog.LevelError:
		levelColor = colorRed
		levelText = "ERROR"
	case r.Level >= slog.LevelWarn:
		levelColor = colorYellow
		levelText = "WARN"
	case r.Level >= slog.LevelInfo:
		levelColor = colorGreen
		levelText = "INFO"
	default:
		levelColor = colorPurple
		levelText = "DEBUG"
	}

	logType := getLogType(&r)
	message := r.Message

	if r.Level >= slog.LevelError {
		if location := getErrorLocation(&r); location != "" {
			message = fmt.Sprintf("%s (%s)", message, location)
		}
		if details := getAttr(&r, "error"); details != "" {
			message = fmt.Sprintf("%s: %s", message, details)
		}
	}

	if userID := getAttr(&r, "user_id"); userID != "" {
		message = fmt.Sprintf("%s [user %s]", message, userID)
	}

	if status := getAttr(&r, "status"); status != "" {
		message = fmt.Sprintf("%s [Status: %s]", message, status)
	}

	var attrsStr strings.Builder
	prefix := strings.Join(h.groups, ".")
	if prefix != "" {
		prefix += "."
	}
	for _, attr := range h.attrs {
		if !isInternalAttr(attr.Key) {
			fmt.Fprintf(&attrsStr, " %s%s=%v", prefix, attr.Key, attr.Value)
		}
	}
	r.Attrs(func(a slog.Attr) bool {
		if !isInternalAttr(a.Key) {
			fmt.Fprintf(&attrsStr, " %s%s=%v", prefix, a.Key, a.Value)
		}
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := fmt.Fprintf(h.out, "%s[MemeSwipe] [%s] [%s%s%s] [%s%s%s] %s%s%s\n",
		colorWhite,
		timestamp,
		levelColor,
		levelText,
		colorWhite,
		colorCyan,
		logType,
		colorWhite,
		message,
		attrsStr.String(),
		colorReset,
	)
	return err
}

func getLogType(r *slog.Record) LogType {
	var logType LogType = TypeSystem
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "type" {
			switch a.Value.String() {
			case "http":
				logType = TypeHTTP
			case "db":
				logType = TypeDB
			case "action":
				logType = TypeAction
			case "error":
				logType = TypeError
			}
			return false
		}
		return true
	})
	return logType
}

func isInternalAttr(key string) bool {
	switch key {
	case "type", "user_id", "status", "error", "error_location":
		return true
	}
	return false
}

func getAttr(r *slog.Record, key string) string {
	var value string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			value = a.Value.String()
			return false
		}
		return true
	})
	return value
}

func getErrorLocation(r *slog.Record) string {
	location := getAttr(r, "error_location")
	if location == "" && r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		if frame.File != "" {
			location = fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
		}
	}
	return location
}
