// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses command line arguments and implements the non-TUI
// commands: the plain-terminal chat REPL, status, config, and transcript
// management. The TUI itself lives in main and internal/ui.
//
// # Key Types
//
//   - Command: which top-level command to run
//   - Args: parsed flags and positional arguments
//   - ChatSession: state for one REPL session
//
// # Usage
//
//	cmd, args := cli.Parse(os.Args[1:])
//	switch cmd {
//	case cli.CmdChat:
//		err := cli.HandleChatCommand(args)
//		...
//	}
package cli
