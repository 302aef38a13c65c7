// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks staff activity for one chat session.
//
// A Manager records the last time the staff member typed and decides when to
// warn them about inactivity, when to log them out, and when the transcript
// should be auto-saved. The TUI drives it from a once-per-second tick; the
// plain REPL can call Check directly.
//
// # Key Types
//
//   - Manager: activity tracker with idle-logout and auto-save timers
//   - Options: timer configuration, usually built via OptionsFromConfig
//   - Status: snapshot of the session for the /status command
//
// # Usage
//
//	mgr := session.NewManager(session.OptionsFromConfig(cfg))
//	mgr.SetIdleLogoutCallback(func() { engine.Logout() })
//
//	// on every user keystroke
//	mgr.RecordActivity()
package session
