// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the slash command system for the TUI.
//
// Slash commands operate on the application itself (transcripts, settings,
// session) and never reach the chatbot classifier. Input that does not start
// with / passes through untouched.
//
// # Key Types
//
//   - Registry: the command table with names, aliases, and categories
//   - Parser: splits input into a command and quoted arguments
//   - Context: dependency bag handed to handlers (config, engine, store)
//
// # Usage
//
//	registry := commands.NewRegistry()
//	parser := commands.NewParser(registry)
//	ctx := commands.NewContext(cfg, engine, store, sess, logger)
//
//	if cmd := commands.Execute(parser, ctx, input); cmd != nil {
//	    return m, cmd
//	}
package commands
