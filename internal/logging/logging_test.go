// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/morganforge/wardbot/internal/config"
)

func TestNew_WritesToFile(t *testing.T) {
	tempDir := t.TempDir()

	cfg := config.Default()
	cfg.Storage.DataDir = tempDir
	cfg.Logging.Level = "debug"

	logger, closer, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("hello from test")
	closer()

	data, err := os.ReadFile(filepath.Join(tempDir, "wardbot.log"))
	if err != nil {
		t.Fatalf("log file not readable: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file missing entry: %q", string(data))
	}
}

func TestNew_DisabledIsNop(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Enabled = false

	logger, closer, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer closer()

	// Must not panic and must not create files anywhere.
	logger.Info("dropped")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tc := range tests {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
