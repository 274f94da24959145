package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/auvet/auvet-backend/internal/domain/ports"
)

// SlogLogger implementa ports.Logger usando slog do stdlib
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger cria um novo logger JSON em stdout
func NewSlogLogger(level string) ports.Logger {
	return NewSlogLoggerWithWriter(level, os.Stdout)
}

// NewSlogLoggerWithWriter cria um logger JSON que escreve em w
func NewSlogLoggerWithWriter(level string, w io.Writer) ports.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	handler := slog.NewJSONHandler(w, opts)
	logger := slog.New(handler)

	return &SlogLogger{logger: logger}
}

// NewNopLogger cria um logger que descarta tudo (uso em testes)
func NewNopLogger() ports.Logger {
	return &SlogLogger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// ParseLevel converte o nível textual de LOG_LEVEL
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

func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *SlogLogger) With(args ...any) ports.Logger {
	return &SlogLogger{
		logger: l.logger.With(args...),
	}
}
