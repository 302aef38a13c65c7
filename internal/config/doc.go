// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for wardbot.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - ChatConfig: Chatbot behavior settings
//   - SessionConfig: Staff session timeout and auto-save settings
//   - StorageConfig: Transcript storage settings
//   - LoggingConfig: File log settings
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (WARDBOT_*)
//   - ~/.wardbot/config.toml
//   - ~/.wardbot/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	theme := cfg.UI.Theme
//	timeout := cfg.Session.IdleTimeoutSecs
package config
