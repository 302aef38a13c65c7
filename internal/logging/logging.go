// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the application logger. The TUI owns the terminal,
// so logs always go to a file under the data directory, never to stdout.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/morganforge/wardbot/internal/config"
)

// New builds a file-backed logger from the configuration. When logging is
// disabled the returned logger is a no-op, so callers never need a nil check.
// The caller owns the returned close function.
func New(cfg *config.Config) (*zap.Logger, func(), error) {
	if cfg == nil || !cfg.Logging.Enabled {
		return zap.NewNop(), func() {}, nil
	}

	path, err := cfg.LogPath()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(file),
		parseLevel(cfg.Logging.Level),
	)

	logger := zap.New(core)
	closer := func() {
		logger.Sync()
		file.Close()
	}
	return logger, closer, nil
}

// parseLevel maps a config level string to a zap level. Unknown strings
// fall back to info; config validation rejects them earlier anyway.
func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
