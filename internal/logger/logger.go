// Package logger builds the zap logger shared by the FlavorScape commands.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

// New returns a sugared logger writing JSON lines at cfg.Level to
// cfg.File. When cfg.File is empty, fallback is used instead ("stderr",
// "stdout" or a path); an empty fallback yields a no-op logger.
func New(cfg types.LogConfig, fallback string) (*zap.SugaredLogger, error) {
	output := cfg.File
	if output == "" {
		output = fallback
	}
	if output == "" {
		return zap.NewNop().Sugar(), nil
	}

	level := zap.NewAtomicLevel()
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
		}
	}

	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.Sampling = nil
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{output}
	zc.ErrorOutputPaths = []string{"stderr"}

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l.Sugar(), nil
}

// Sync flushes buffered entries. Errors from syncing a terminal are
// expected on some platforms and ignored.
func Sync(l *zap.SugaredLogger) {
	if l != nil {
		_ = l.Sync()
	}
}
