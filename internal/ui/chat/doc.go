// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view for the TUI.
//
// The view owns the transcript viewport, the input line, and the two-step
// login form. Chat input goes through the chatbot engine; slash commands go
// through the command system and come back as Bubble Tea messages.
//
// # Key Types
//
//   - Model: the Bubble Tea model composing viewport, input, and status bar
//   - Deps: the services injected at construction
//
// The login form reuses the input line: a 'login' request switches the
// prompt to Staff ID, then Name, and Esc cancels. Validation happens only
// after both fields are submitted.
package chat
