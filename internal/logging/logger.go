// Package logging — обёртка над log/slog: уровень берётся из SKY_LOG_LEVEL,
// к каждой записи добавляется идентификатор запуска.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Logger — slog.Logger с идентификатором запуска, который он ставит на каждую запись.
type Logger struct {
	*slog.Logger
	RunID string
}

// New создаёт текстовый логгер, пишущий в w.
func New(w io.Writer, level slog.Level) *Logger {
	runID := uuid.NewString()
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger: slog.New(handler).With("run_id", runID),
		RunID:  runID,
	}
}

// NewFromEnv создаёт логгер в stderr. Допустимые SKY_LOG_LEVEL: DEBUG, INFO, WARN, ERROR.
// По умолчанию INFO.
func NewFromEnv() *Logger {
	return New(os.Stderr, ParseLevel(os.Getenv("SKY_LOG_LEVEL")))
}

// Discard — логгер, который ничего не пишет.
func Discard() *Logger {
	return New(io.Discard, slog.LevelError)
}

func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WrapError добавляет к ошибке контекст. nil остаётся nil.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
