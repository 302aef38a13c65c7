// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks staff activity and drives the idle-logout timer.
package session

import (
	"strconv"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/morganforge/wardbot/internal/config"
)

// =============================================================================
// SESSION MANAGER
// =============================================================================

// Manager tracks one chat session: who is logged in, when they last typed,
// and whether the transcript has unsaved changes. An idle staff member is
// warned and then logged out automatically.
type Manager struct {
	mu sync.Mutex

	// Session tracking
	sessionID    string
	startTime    time.Time
	lastActivity time.Time

	// Idle logout configuration. idleTimeout of 0 disables the timer.
	idleTimeout  time.Duration
	warnBefore   time.Duration
	warningShown bool

	// Auto-save configuration
	autoSaveEnabled  bool
	autoSaveInterval time.Duration
	lastAutoSave     time.Time
	isDirty          bool

	// Callbacks
	onIdleLogout func()
	onWarning    func(remaining time.Duration)
	onAutoSave   func() error
}

// Options holds configuration for the session manager.
type Options struct {
	// IdleTimeout is how long a staff member can stay idle before being
	// logged out. 0 disables idle logout.
	IdleTimeout time.Duration

	// WarnBefore is how long before the idle logout to show a warning.
	WarnBefore time.Duration

	// AutoSaveEnabled enables periodic transcript saving.
	AutoSaveEnabled bool

	// AutoSaveInterval is how often to auto-save (default: 30 seconds).
	AutoSaveInterval time.Duration
}

// DefaultOptions returns the default session options.
func DefaultOptions() Options {
	return Options{
		IdleTimeout:      15 * time.Minute,
		WarnBefore:       2 * time.Minute,
		AutoSaveEnabled:  true,
		AutoSaveInterval: 30 * time.Second,
	}
}

// OptionsFromConfig maps the application configuration onto session options.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}
	opts.IdleTimeout = time.Duration(cfg.Session.IdleTimeoutSecs) * time.Second
	opts.WarnBefore = time.Duration(cfg.Session.WarnBeforeSecs) * time.Second
	opts.AutoSaveEnabled = cfg.Session.AutoSave
	return opts
}

// NewManager creates a new session manager.
func NewManager(opts Options) *Manager {
	now := time.Now()
	if opts.AutoSaveInterval <= 0 {
		opts.AutoSaveInterval = 30 * time.Second
	}
	return &Manager{
		sessionID:        "sess_" + uuid.NewString(),
		startTime:        now,
		lastActivity:     now,
		idleTimeout:      opts.IdleTimeout,
		warnBefore:       opts.WarnBefore,
		autoSaveEnabled:  opts.AutoSaveEnabled,
		autoSaveInterval: opts.AutoSaveInterval,
		lastAutoSave:     now,
	}
}

// =============================================================================
// SESSION STATE
// =============================================================================

// SessionID returns the current session ID.
func (m *Manager) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionID
}

// StartTime returns when the session started.
func (m *Manager) StartTime() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startTime
}

// Duration returns how long the session has been active.
func (m *Manager) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return time.Since(m.startTime)
}

// IdleTime returns how long since last activity.
func (m *Manager) IdleTime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return time.Since(m.lastActivity)
}

// RemainingTime returns time until idle logout, or 0 when the timer is off.
func (m *Manager) RemainingTime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.idleTimeout <= 0 {
		return 0
	}
	remaining := m.idleTimeout - time.Since(m.lastActivity)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// =============================================================================
// ACTIVITY TRACKING
// =============================================================================

// RecordActivity updates the last activity timestamp. Call this on every
// keystroke the staff member sends.
func (m *Manager) RecordActivity() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastActivity = time.Now()
	m.warningShown = false
}

// MarkDirty indicates the transcript has unsaved changes.
func (m *Manager) MarkDirty() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isDirty = true
}

// MarkClean indicates the transcript has been saved.
func (m *Manager) MarkClean() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isDirty = false
	m.lastAutoSave = time.Now()
}

// IsDirty returns whether the transcript has unsaved changes.
func (m *Manager) IsDirty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isDirty
}

// =============================================================================
// CALLBACKS
// =============================================================================

// SetIdleLogoutCallback sets the function called when the idle timer fires.
func (m *Manager) SetIdleLogoutCallback(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onIdleLogout = fn
}

// SetWarningCallback sets the function called when approaching idle logout.
func (m *Manager) SetWarningCallback(fn func(remaining time.Duration)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onWarning = fn
}

// SetAutoSaveCallback sets the function called for auto-save.
func (m *Manager) SetAutoSaveCallback(fn func() error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onAutoSave = fn
}

// =============================================================================
// IDLE CHECKING
// =============================================================================

// IsExpired returns true if the staff member has been idle past the timeout.
func (m *Manager) IsExpired() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.expiredLocked()
}

func (m *Manager) expiredLocked() bool {
	if m.idleTimeout <= 0 {
		return false
	}
	return time.Since(m.lastActivity) >= m.idleTimeout
}

// ShouldShowWarning returns true if the idle-logout warning should be shown.
func (m *Manager) ShouldShowWarning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.warningShown || m.idleTimeout <= 0 || m.warnBefore <= 0 {
		return false
	}

	idle := time.Since(m.lastActivity)
	threshold := m.idleTimeout - m.warnBefore

	return idle >= threshold && idle < m.idleTimeout
}

// ShouldAutoSave returns true if auto-save should trigger.
func (m *Manager) ShouldAutoSave() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.autoSaveEnabled || !m.isDirty {
		return false
	}

	return time.Since(m.lastAutoSave) >= m.autoSaveInterval
}

// Check evaluates session state and triggers appropriate callbacks.
// Returns true if the staff member is still considered active.
func (m *Manager) Check() bool {
	m.mu.Lock()
	expired := m.expiredLocked()

	shouldWarn := false
	var remaining time.Duration
	if !m.warningShown && !expired && m.idleTimeout > 0 && m.warnBefore > 0 {
		idle := time.Since(m.lastActivity)
		threshold := m.idleTimeout - m.warnBefore
		if idle >= threshold {
			shouldWarn = true
			remaining = m.idleTimeout - idle
			m.warningShown = true
		}
	}

	shouldSave := m.autoSaveEnabled && m.isDirty &&
		time.Since(m.lastAutoSave) >= m.autoSaveInterval

	onIdleLogout := m.onIdleLogout
	onWarning := m.onWarning
	onAutoSave := m.onAutoSave
	m.mu.Unlock()

	// Callbacks run outside the lock so they may call back into the manager.
	if shouldWarn && onWarning != nil {
		onWarning(remaining)
	}

	if shouldSave && onAutoSave != nil {
		if err := onAutoSave(); err == nil {
			m.MarkClean()
		}
	}

	if expired && onIdleLogout != nil {
		onIdleLogout()
	}

	return !expired
}

// =============================================================================
// BUBBLE TEA INTEGRATION
// =============================================================================

// TickMsg is sent periodically to check session state.
type TickMsg struct {
	Time time.Time
}

// IdleWarningMsg indicates the staff member is about to be logged out.
type IdleWarningMsg struct {
	Remaining time.Duration
}

// IdleLogoutMsg indicates the idle timer has fired.
type IdleLogoutMsg struct{}

// AutoSaveMsg indicates the transcript should be saved.
type AutoSaveMsg struct{}

// TickCmd returns a command that ticks once per second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// HandleTick processes a tick and returns the resulting messages.
func (m *Manager) HandleTick() tea.Cmd {
	var cmds []tea.Cmd

	if m.ShouldShowWarning() {
		remaining := m.RemainingTime()
		cmds = append(cmds, func() tea.Msg {
			return IdleWarningMsg{Remaining: remaining}
		})
		m.mu.Lock()
		m.warningShown = true
		m.mu.Unlock()
	}

	if m.IsExpired() {
		cmds = append(cmds, func() tea.Msg {
			return IdleLogoutMsg{}
		})
	}

	if m.ShouldAutoSave() {
		cmds = append(cmds, func() tea.Msg {
			return AutoSaveMsg{}
		})
	}

	cmds = append(cmds, TickCmd())

	return tea.Batch(cmds...)
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// SetIdleTimeout updates the idle-logout duration. 0 disables the timer.
func (m *Manager) SetIdleTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.idleTimeout = d
}

// SetWarnBefore updates when to show the idle-logout warning.
func (m *Manager) SetWarnBefore(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnBefore = d
}

// SetAutoSaveEnabled enables or disables auto-save.
func (m *Manager) SetAutoSaveEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autoSaveEnabled = enabled
}

// =============================================================================
// SESSION STATUS
// =============================================================================

// Status represents the current session status.
type Status struct {
	SessionID     string
	StartTime     time.Time
	Duration      time.Duration
	IdleTime      time.Duration
	RemainingTime time.Duration
	IsDirty       bool
	IsExpired     bool
}

// GetStatus returns the current session status.
func (m *Manager) GetStatus() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	idle := now.Sub(m.lastActivity)
	remaining := time.Duration(0)
	expired := false
	if m.idleTimeout > 0 {
		remaining = m.idleTimeout - idle
		if remaining < 0 {
			remaining = 0
		}
		expired = idle >= m.idleTimeout
	}

	return Status{
		SessionID:     m.sessionID,
		StartTime:     m.startTime,
		Duration:      now.Sub(m.startTime),
		IdleTime:      idle,
		RemainingTime: remaining,
		IsDirty:       m.isDirty,
		IsExpired:     expired,
	}
}

// FormatDuration returns a human-readable duration string.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		secs := int(d.Seconds())
		return strconv.Itoa(secs) + "s"
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	if secs == 0 {
		return strconv.Itoa(mins) + "m"
	}
	return strconv.Itoa(mins) + "m " + strconv.Itoa(secs) + "s"
}
