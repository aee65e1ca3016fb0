package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrijs2005/homeseed/internal/common"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

func slogLevel(l string) slog.Level {
	switch strings.ToLower(l) {
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

func zapLevel(l string) zapcore.Level {
	switch strings.ToLower(l) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a Logger for the given backend writing JSON to stdout.
// The returned sync func flushes buffered entries and is safe to defer.
func New(backend, level string) (Logger, func(), error) {
	switch strings.ToLower(backend) {
	case "", BackendSlog:
		h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel(level)})
		return NewSlogLogger(slog.New(h)), func() {}, nil
	case BackendZap:
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		l, err := cfg.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("build zap logger: %w", err)
		}
		return NewZapLogger(l), func() { _ = l.Sync() }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", common.ErrorUnknownLogger, backend)
	}
}
