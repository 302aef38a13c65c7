// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the wardbot TUI.
//
// Colors are package-level AdaptiveColor values so light and dark terminals
// both get readable output. Styles built from them live on a Theme instance;
// views receive a *Theme and never mutate shared style state.
//
// # Usage
//
//	theme := styles.NewTheme()
//	fmt.Println(theme.BotBubble.Render("Hello! How can I assist you today?"))
package styles
