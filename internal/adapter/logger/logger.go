package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

type Logger interface {
	Info(action, message, requestID string, details map[string]interface{})
	Debug(action, message, requestID string, details map[string]interface{})
	Error(action, message, requestID string, details map[string]interface{}, err error)
}

type jsonLogger struct {
	service  string
	hostname string
	handler  *slog.Logger
}

func New(service string) Logger {
	return NewWithWriter(service, os.Stdout)
}

// NewWithWriter writes one JSON object per line to w
func NewWithWriter(service string, w io.Writer) Logger {
	hostname, _ := os.Hostname()

	handler := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: renameBuiltins,
	}))

	return &jsonLogger{
		service:  service,
		hostname: hostname,
		handler:  handler,
	}
}

// NewRequestID returns an identifier for correlating log lines of one request
func NewRequestID() string {
	return uuid.NewString()
}

func (l *jsonLogger) Info(action, message, requestID string, details map[string]interface{}) {
	l.log(slog.LevelInfo, action, message, requestID, details, nil)
}

func (l *jsonLogger) Debug(action, message, requestID string, details map[string]interface{}) {
	l.log(slog.LevelDebug, action, message, requestID, details, nil)
}

func (l *jsonLogger) Error(action, message, requestID string, details map[string]interface{}, err error) {
	l.log(slog.LevelError, action, message, requestID, details, err)
}

func (l *jsonLogger) log(level slog.Level, action, message, requestID string, details map[string]interface{}, err error) {
	attrs := []slog.Attr{
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("request_id", requestID),
		slog.String("action", action),
	}
	if len(details) > 0 {
		attrs = append(attrs, slog.Any("details", details))
	}
	if err != nil {
		attrs = append(attrs, slog.Group("error", slog.String("msg", err.Error())))
	}

	l.handler.LogAttrs(context.Background(), level, message, attrs...)
}

func renameBuiltins(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.TimeKey:
		a.Key = "timestamp"
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	case slog.MessageKey:
		a.Key = "message"
	}
	return a
}

// Nop discards everything; handy for tests and tools
func Nop() Logger {
	return NewWithWriter("nop", io.Discard)
}
