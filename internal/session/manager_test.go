// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"strings"
	"testing"
	"time"

	"github.com/morganforge/wardbot/internal/config"
)

func TestNewManager_Defaults(t *testing.T) {
	mgr := NewManager(DefaultOptions())

	if !strings.HasPrefix(mgr.SessionID(), "sess_") {
		t.Errorf("SessionID = %q, want sess_ prefix", mgr.SessionID())
	}
	if mgr.IsExpired() {
		t.Error("fresh session should not be expired")
	}
	if mgr.IsDirty() {
		t.Error("fresh session should not be dirty")
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Session.IdleTimeoutSecs = 300
	cfg.Session.WarnBeforeSecs = 60
	cfg.Session.AutoSave = false

	opts := OptionsFromConfig(cfg)
	if opts.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, want 5m", opts.IdleTimeout)
	}
	if opts.WarnBefore != time.Minute {
		t.Errorf("WarnBefore = %v, want 1m", opts.WarnBefore)
	}
	if opts.AutoSaveEnabled {
		t.Error("AutoSaveEnabled = true, want false")
	}

	if got := OptionsFromConfig(nil); got != DefaultOptions() {
		t.Errorf("nil config should yield defaults, got %+v", got)
	}
}

func TestManager_IdleExpiry(t *testing.T) {
	opts := DefaultOptions()
	opts.IdleTimeout = 10 * time.Millisecond
	opts.WarnBefore = 0
	mgr := NewManager(opts)

	time.Sleep(20 * time.Millisecond)
	if !mgr.IsExpired() {
		t.Error("session should have expired")
	}
	if mgr.RemainingTime() != 0 {
		t.Errorf("RemainingTime = %v, want 0", mgr.RemainingTime())
	}

	mgr.RecordActivity()
	if mgr.IsExpired() {
		t.Error("activity should reset the idle timer")
	}
}

func TestManager_ZeroTimeoutDisablesExpiry(t *testing.T) {
	opts := DefaultOptions()
	opts.IdleTimeout = 0
	mgr := NewManager(opts)

	time.Sleep(5 * time.Millisecond)
	if mgr.IsExpired() {
		t.Error("zero timeout must never expire")
	}
	if mgr.ShouldShowWarning() {
		t.Error("zero timeout must never warn")
	}
}

func TestManager_WarningWindow(t *testing.T) {
	opts := DefaultOptions()
	opts.IdleTimeout = 100 * time.Millisecond
	opts.WarnBefore = 80 * time.Millisecond
	mgr := NewManager(opts)

	time.Sleep(40 * time.Millisecond)
	if !mgr.ShouldShowWarning() {
		t.Fatal("expected warning inside the warn window")
	}

	// Check marks the warning shown and only fires it once.
	var warned int
	mgr.SetWarningCallback(func(time.Duration) { warned++ })
	mgr.Check()
	mgr.Check()
	if warned != 1 {
		t.Errorf("warning fired %d times, want 1", warned)
	}
}

func TestManager_CheckFiresIdleLogout(t *testing.T) {
	opts := DefaultOptions()
	opts.IdleTimeout = 5 * time.Millisecond
	opts.WarnBefore = 0
	mgr := NewManager(opts)

	var loggedOut bool
	mgr.SetIdleLogoutCallback(func() { loggedOut = true })

	time.Sleep(10 * time.Millisecond)
	if mgr.Check() {
		t.Error("Check should report the session as expired")
	}
	if !loggedOut {
		t.Error("idle logout callback did not fire")
	}
}

func TestManager_AutoSave(t *testing.T) {
	opts := DefaultOptions()
	opts.AutoSaveInterval = 5 * time.Millisecond
	mgr := NewManager(opts)

	if mgr.ShouldAutoSave() {
		t.Error("clean session should not auto-save")
	}

	mgr.MarkDirty()
	time.Sleep(10 * time.Millisecond)
	if !mgr.ShouldAutoSave() {
		t.Fatal("dirty session past the interval should auto-save")
	}

	var saved bool
	mgr.SetAutoSaveCallback(func() error { saved = true; return nil })
	mgr.Check()
	if !saved {
		t.Error("auto-save callback did not fire")
	}
	if mgr.IsDirty() {
		t.Error("successful auto-save should mark the session clean")
	}
}

func TestManager_Status(t *testing.T) {
	mgr := NewManager(DefaultOptions())
	mgr.MarkDirty()

	status := mgr.GetStatus()
	if status.SessionID != mgr.SessionID() {
		t.Errorf("SessionID = %q, want %q", status.SessionID, mgr.SessionID())
	}
	if !status.IsDirty {
		t.Error("status should report dirty")
	}
	if status.IsExpired {
		t.Error("status should not report expired")
	}
	if status.RemainingTime <= 0 {
		t.Errorf("RemainingTime = %v, want > 0", status.RemainingTime)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{30 * time.Second, "30s"},
		{time.Minute, "1m"},
		{90 * time.Second, "1m 30s"},
		{15 * time.Minute, "15m"},
	}
	for _, tc := range tests {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
