// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for wardbot.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.wardbot/config.toml
//   - ~/.wardbot/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/morganforge/wardbot/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete wardbot configuration.
type Config struct {
	// General settings
	Version string `toml:"version" json:"version"`

	// Chat configuration
	Chat ChatConfig `toml:"chat" json:"chat"`

	// Session configuration
	Session SessionConfig `toml:"session" json:"session"`

	// Storage configuration
	Storage StorageConfig `toml:"storage" json:"storage"`

	// Logging configuration
	Logging LoggingConfig `toml:"logging" json:"logging"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`
}

// ChatConfig contains chatbot behavior configuration.
type ChatConfig struct {
	// BotName is the display name used for bot messages
	BotName string `toml:"bot_name" json:"bot_name"`
	// HistoryLimit caps the number of messages rendered in the viewport
	HistoryLimit int `toml:"history_limit" json:"history_limit"`
}

// SessionConfig contains staff session configuration.
type SessionConfig struct {
	// IdleTimeoutSecs logs the staff member out after this much inactivity.
	// 0 disables the idle timeout.
	IdleTimeoutSecs int `toml:"idle_timeout_secs" json:"idle_timeout_secs"`
	// WarnBeforeSecs shows a timeout warning this many seconds before logout
	WarnBeforeSecs int `toml:"warn_before_secs" json:"warn_before_secs"`
	// AutoSave persists the transcript when the session ends
	AutoSave bool `toml:"auto_save" json:"auto_save"`
}

// StorageConfig contains transcript storage configuration.
type StorageConfig struct {
	// DataDir is the base data directory (empty = ~/.wardbot)
	DataDir string `toml:"data_dir" json:"data_dir"`
	// DatabaseFile is the transcript database filename inside DataDir
	DatabaseFile string `toml:"database_file" json:"database_file"`
	// MaxTranscripts caps stored transcripts; oldest are deleted first.
	// 0 disables the limit.
	MaxTranscripts int `toml:"max_transcripts" json:"max_transcripts"`
}

// LoggingConfig contains application log configuration. The TUI owns the
// terminal, so logs go to a file, never stdout.
type LoggingConfig struct {
	// Enabled turns file logging on
	Enabled bool `toml:"enabled" json:"enabled"`
	// Level is the minimum level: "debug", "info", "warn", "error"
	Level string `toml:"level" json:"level"`
	// File is the log filename inside DataDir (empty = wardbot.log)
	File string `toml:"file" json:"file"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// CompactMode uses a more compact UI layout
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
	// ShowTimestamps displays message timestamps in the chat view
	ShowTimestamps bool `toml:"show_timestamps" json:"show_timestamps"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Chat: ChatConfig{
			BotName:      "Chatbot",
			HistoryLimit: 500,
		},

		Session: SessionConfig{
			IdleTimeoutSecs: 900, // 15 minutes
			WarnBeforeSecs:  120,
			AutoSave:        true,
		},

		Storage: StorageConfig{
			DataDir:        "",
			DatabaseFile:   "transcripts.db",
			MaxTranscripts: 100,
		},

		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			File:    "wardbot.log",
		},

		UI: UIConfig{
			Theme:          "dark",
			CompactMode:    false,
			ShowTimestamps: false,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the wardbot configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".wardbot"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// DataDir resolves the effective data directory for storage and logs.
func (c *Config) DataDir() (string, error) {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir, nil
	}
	return ConfigDir()
}

// DatabasePath resolves the transcript database path.
func (c *Config) DatabasePath() (string, error) {
	dir, err := c.DataDir()
	if err != nil {
		return "", err
	}
	name := c.Storage.DatabaseFile
	if name == "" {
		name = "transcripts.db"
	}
	return filepath.Join(dir, name), nil
}

// LogPath resolves the application log file path.
func (c *Config) LogPath() (string, error) {
	dir, err := c.DataDir()
	if err != nil {
		return "", err
	}
	name := c.Logging.File
	if name == "" {
		name = "wardbot.log"
	}
	return filepath.Join(dir, name), nil
}

// ensureSecurePermissions checks and fixes permissions on config files.
// SECURITY: Config files should be 0600 (owner read/write only).
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err // File doesn't exist or not accessible
	}

	mode := info.Mode().Perm()
	if mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix insecure permissions (was %o): %w", mode, err)
		}
	}

	return nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()
	var loadErr error

	// Try TOML first
	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				return finishLoad(cfg)
			}
		}
	}

	// Try JSON as fallback
	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
			} else {
				return finishLoad(cfg)
			}
		}
	}

	// Defaults only (with any load error for informational purposes)
	cfg, err = finishLoad(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, loadErr
}

// finishLoad applies env overrides, migration, defaults, and validation.
func finishLoad(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	if err := cfg.Migrate(); err != nil {
		return nil, fmt.Errorf("config migration failed: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
// SECURITY: Checks and fixes file permissions on load.
func LoadTOML(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		// Log warning but don't fail - permissions might not be fixable on all systems
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file.
// SECURITY: Checks and fixes file permissions on load.
func LoadJSON(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		// Default to TOML
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finishLoad(cfg)
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
// SECURITY: Creates config files with 0600 permissions (owner read/write only).
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	// Ensure permissions are correct even if file already existed
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}

	// Write header comment
	fmt.Fprintln(file, "# wardbot configuration file")
	fmt.Fprintln(file, "# Generated by wardbot - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// SaveJSON saves the configuration to a JSON file.
// SECURITY: Creates config files with 0600 permissions (owner read/write only).
// RELIABILITY: Atomic write with fsync prevents data loss on crash.
func SaveJSON(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// Chat settings
	if c.Chat.HistoryLimit < 0 {
		errs = append(errs, ValidationError{
			Field:   "chat.history_limit",
			Message: "must be non-negative",
		})
	}

	// Session settings. 0 disables the idle timeout; anything else must
	// leave a workable window.
	if c.Session.IdleTimeoutSecs != 0 && (c.Session.IdleTimeoutSecs < 60 || c.Session.IdleTimeoutSecs > 7200) {
		errs = append(errs, ValidationError{
			Field:   "session.idle_timeout_secs",
			Message: fmt.Sprintf("must be 0 (disabled) or 60-7200 seconds, got %d", c.Session.IdleTimeoutSecs),
		})
	}
	if c.Session.WarnBeforeSecs < 0 {
		errs = append(errs, ValidationError{
			Field:   "session.warn_before_secs",
			Message: "must be non-negative",
		})
	}
	if c.Session.IdleTimeoutSecs != 0 && c.Session.WarnBeforeSecs >= c.Session.IdleTimeoutSecs {
		errs = append(errs, ValidationError{
			Field:   "session.warn_before_secs",
			Message: fmt.Sprintf("must be smaller than idle_timeout_secs (%d)", c.Session.IdleTimeoutSecs),
		})
	}

	// Storage settings
	if c.Storage.MaxTranscripts < 0 || c.Storage.MaxTranscripts > 10000 {
		errs = append(errs, ValidationError{
			Field:   "storage.max_transcripts",
			Message: fmt.Sprintf("must be 0-10000, got %d", c.Storage.MaxTranscripts),
		})
	}

	// Logging settings
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Logging.Level),
		})
	}

	// UI settings
	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}

	if c.Chat.BotName == "" {
		c.Chat.BotName = defaults.Chat.BotName
	}
	if c.Chat.HistoryLimit == 0 {
		c.Chat.HistoryLimit = defaults.Chat.HistoryLimit
	}

	if c.Session.WarnBeforeSecs == 0 && c.Session.IdleTimeoutSecs >= defaults.Session.IdleTimeoutSecs {
		c.Session.WarnBeforeSecs = defaults.Session.WarnBeforeSecs
	}

	if c.Storage.DatabaseFile == "" {
		c.Storage.DatabaseFile = defaults.Storage.DatabaseFile
	}

	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.File == "" {
		c.Logging.File = defaults.Logging.File
	}

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
}

// Migrate handles migration from old configuration formats to new ones.
func (c *Config) Migrate() error {
	// Level names were briefly uppercase; normalize.
	c.Logging.Level = strings.ToLower(c.Logging.Level)

	// "warning" was accepted by an early build.
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}

	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - WARDBOT_DATA_DIR: overrides storage.data_dir
//   - WARDBOT_THEME: overrides ui.theme
//   - WARDBOT_LOG_LEVEL: overrides logging.level
//   - WARDBOT_IDLE_TIMEOUT_SECS: overrides session.idle_timeout_secs
//   - WARDBOT_AUTOSAVE: set to "1" or "true" to enable transcript auto-save
func (c *Config) ApplyEnvOverrides() {
	if dir := os.Getenv("WARDBOT_DATA_DIR"); dir != "" {
		c.Storage.DataDir = dir
	}

	if theme := os.Getenv("WARDBOT_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if level := os.Getenv("WARDBOT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	if timeout := os.Getenv("WARDBOT_IDLE_TIMEOUT_SECS"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil {
			c.Session.IdleTimeoutSecs = secs
		}
	}

	if autosave := os.Getenv("WARDBOT_AUTOSAVE"); autosave != "" {
		c.Session.AutoSave = autosave == "1" || strings.ToLower(autosave) == "true"
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Get(key string) (interface{}, error) {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return nil, errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return nil, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return field.Interface(), nil
		}

		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return nil, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return nil, fmt.Errorf("invalid key: %s", key)
}

// Set sets a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Set(key string, value interface{}) error {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if !field.CanSet() {
				return fmt.Errorf("cannot set field: %s", key)
			}
			return setFieldValue(field, value)
		}

		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}

	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	// Handle string input with type conversion
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %v", err)
			}
			field.SetFloat(floatVal)
			return nil
		case reflect.Bool:
			boolVal := strVal == "1" || strings.ToLower(strVal) == "true" || strings.ToLower(strVal) == "yes"
			field.SetBool(boolVal)
			return nil
		}
	}

	// Direct assignment for matching types
	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}

	// Type conversion for compatible types
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"chat.bot_name",
		"chat.history_limit",
		"session.idle_timeout_secs",
		"session.warn_before_secs",
		"session.auto_save",
		"storage.data_dir",
		"storage.database_file",
		"storage.max_transcripts",
		"logging.enabled",
		"logging.level",
		"logging.file",
		"ui.theme",
		"ui.compact_mode",
		"ui.show_timestamps",
	}
}

// Merge merges another config into this one, overwriting only non-zero values.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Version != "" {
		c.Version = other.Version
	}

	if other.Chat.BotName != "" {
		c.Chat.BotName = other.Chat.BotName
	}
	if other.Chat.HistoryLimit != 0 {
		c.Chat.HistoryLimit = other.Chat.HistoryLimit
	}

	if other.Session.IdleTimeoutSecs != 0 {
		c.Session.IdleTimeoutSecs = other.Session.IdleTimeoutSecs
	}
	if other.Session.WarnBeforeSecs != 0 {
		c.Session.WarnBeforeSecs = other.Session.WarnBeforeSecs
	}
	if other.Session.AutoSave {
		c.Session.AutoSave = true
	}

	if other.Storage.DataDir != "" {
		c.Storage.DataDir = other.Storage.DataDir
	}
	if other.Storage.DatabaseFile != "" {
		c.Storage.DatabaseFile = other.Storage.DatabaseFile
	}
	if other.Storage.MaxTranscripts != 0 {
		c.Storage.MaxTranscripts = other.Storage.MaxTranscripts
	}

	if other.Logging.Enabled {
		c.Logging.Enabled = true
	}
	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}
	if other.Logging.File != "" {
		c.Logging.File = other.Logging.File
	}

	if other.UI.Theme != "" {
		c.UI.Theme = other.UI.Theme
	}
	if other.UI.CompactMode {
		c.UI.CompactMode = true
	}
	if other.UI.ShowTimestamps {
		c.UI.ShowTimestamps = true
	}
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns a string representation of the config for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			// Log but don't fail - use defaults
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
