package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu          sync.RWMutex
	hostname, _ = os.Hostname()
	serviceName = "unknown-service"
	out         io.Writer = os.Stdout
	level                 = new(slog.LevelVar)
	base                  = build()
)

func build() *slog.Logger {
	h := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// nested keys such as error.msg keep their names
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				a.Key = "timestamp"
			case slog.MessageKey:
				a.Key = "message"
			}
			return a
		},
	})
	return slog.New(h).With("service", serviceName, "hostname", hostname)
}

// SetServiceName sets the service field attached to every entry.
func SetServiceName(name string) {
	mu.Lock()
	defer mu.Unlock()
	serviceName = name
	base = build()
}

// SetOutput redirects entries, mostly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	base = build()
}

func SetLevel(l slog.Level) {
	level.Set(l)
}

// ParseLevel accepts debug, info, warn or error in any case.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level: %q", s)
	}
	return l, nil
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

func attrs(action, requestID, captainID string) []any {
	args := []any{"action", action, "request_id", requestID}
	if captainID != "" {
		args = append(args, "captain_id", captainID)
	}
	return args
}

func Info(action, message, requestID, captainID string) {
	current().Info(message, attrs(action, requestID, captainID)...)
}

func Debug(action, message, requestID, captainID string) {
	current().Debug(message, attrs(action, requestID, captainID)...)
}

func Warn(action, message, requestID, captainID, errMsg string) {
	args := attrs(action, requestID, captainID)
	if errMsg != "" {
		args = append(args, slog.Group("error", "msg", errMsg))
	}
	current().Warn(message, args...)
}

func Error(action, message, requestID, captainID, errMsg string) {
	args := append(attrs(action, requestID, captainID), slog.Group("error", "msg", errMsg))
	current().Error(message, args...)
}
