// Package logger holds the process-wide zap logger.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	current atomic.Pointer[zap.Logger]
	nop     = zap.NewNop()
)

// New builds a logger writing to out. level is one of debug, info, warn,
// error, dpanic, panic or fatal; format is json or console.
func New(level, format string, out zapcore.WriteSyncer) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.Set(strings.ToLower(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var enc zapcore.Encoder
	switch strings.ToLower(format) {
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	case "console":
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}

	return zap.New(zapcore.NewCore(enc, out, lvl), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// Init builds a stderr logger and makes it the one L returns. stderr keeps
// stdout free for plannerctl output.
func Init(level, format string) (*zap.Logger, error) {
	l, err := New(level, format, zapcore.Lock(os.Stderr))
	if err != nil {
		return nil, err
	}
	current.Store(l)
	return l, nil
}

// L returns the logger installed by Init, or a no-op logger before Init.
// Constructors use it when no logger is injected.
func L() *zap.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return nop
}

// Sync flushes the installed logger.
func Sync() {
	if l := current.Load(); l != nil {
		_ = l.Sync()
	}
}
