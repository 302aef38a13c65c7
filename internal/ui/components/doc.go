// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the wardbot TUI.
//
// Components are self-contained Bubble Tea models with their own Update and
// View methods. The chat screen composes them; they never reach into the
// application model.
package components
