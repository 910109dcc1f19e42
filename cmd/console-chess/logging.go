package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/console-chess-go/internal/config"
)

// newLogger builds the session logger. Without a log file it returns a
// nop logger; otherwise JSON lines go to the file. The returned cleanup
// flushes and closes the file.
func newLogger(cfg *config.LogConfig) (*zap.Logger, func(), error) {
	if !cfg.Enabled() {
		return zap.NewNop(), func() {}, nil
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if cfg.Append {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	file, err := os.OpenFile(cfg.Path, flags, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", cfg.Path, err)
	}

	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(file), level)
	logger := zap.New(core)

	cleanup := func() {
		_ = logger.Sync()
		_ = file.Close()
	}
	return logger, cleanup, nil
}
