// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for wardbot.
package cli

import (
	"fmt"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdChat
	CmdStatus
	CmdConfig
	CmdSessions
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool

	// Command-specific
	Subcommand string
	ConfigKey  string
	ConfigVal  string
	Query      string
	Format     string
	Output     string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `wardbot - hospital staff assistant for the terminal

Wardbot is a chatbot for hospital staff. It answers small talk, runs
role-scoped commands for doctors, nurses, and admins, and keeps
transcripts of every session.

Usage:
  wardbot                     Start the TUI (default)
  wardbot chat                Plain-terminal chat (no TUI)
  wardbot status              Show data dir, config, and transcript count
  wardbot config [show|get|set] Configuration
  wardbot sessions [subcommand] Saved transcript management
  wardbot version             Show version information
  wardbot help                Show this help

Session Commands:
  wardbot sessions list             List saved transcripts
  wardbot sessions show <id>        Print a transcript
  wardbot sessions export <id>      Export a transcript
    --format md|json|txt            Export format (default: md)
    --output FILE                   Write to a specific path
  wardbot sessions delete <id>      Delete a transcript

Config Commands:
  wardbot config show               Show all settings
  wardbot config get <key>          Show one setting
  wardbot config set <key> <value>  Change a setting

Global Flags:
  -q, --quiet       Minimal output
  -v, --verbose     Verbose output
  --json            JSON output where supported

Inside chat, type 'login' to sign in with your staff ID and 'help' for
the commands available to your role. Slash commands (/help, /save,
/export, ...) operate on the session itself.`

// Parse parses os.Args style arguments (without the program name) into a
// command and its arguments.
func Parse(argv []string) (Command, Args) {
	remaining, args := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := remaining[0]
	rest := remaining[1:]

	switch cmd {
	case "chat", "repl":
		args.Raw = rest
		return CmdChat, args

	case "status", "s":
		args.Raw = rest
		return CmdStatus, args

	case "config":
		parseConfigArgs(&args, rest)
		return CmdConfig, args

	case "sessions", "session", "transcripts":
		parseSessionsArgs(&args, rest)
		return CmdSessions, args

	case "version", "-v", "--version":
		return CmdVersion, args

	case "help", "-h", "--help":
		return CmdHelp, args

	default:
		// Unknown command. Fall through to the TUI rather than erroring,
		// matching the no-argument default.
		args.Raw = remaining
		return CmdTUI, args
	}
}

// parseGlobalFlags extracts global flags and returns the remaining args.
func parseGlobalFlags(argv []string) ([]string, Args) {
	var remaining []string
	var args Args

	for _, arg := range argv {
		switch arg {
		case "-q", "--quiet":
			args.Quiet = true
		case "--verbose":
			args.Verbose = true
		case "--json":
			args.JSON = true
		default:
			remaining = append(remaining, arg)
		}
	}
	return remaining, args
}

// parseConfigArgs parses config command specific arguments.
func parseConfigArgs(args *Args, rest []string) {
	if len(rest) == 0 {
		args.Subcommand = "show"
		return
	}
	args.Subcommand = rest[0]
	if len(rest) > 1 {
		args.ConfigKey = rest[1]
	}
	if len(rest) > 2 {
		args.ConfigVal = strings.Join(rest[2:], " ")
	}
}

// parseSessionsArgs parses sessions command specific arguments.
func parseSessionsArgs(args *Args, rest []string) {
	args.Format = "md"

	var positional []string
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		switch {
		case arg == "--format" && i+1 < len(rest):
			args.Format = rest[i+1]
			i++
		case strings.HasPrefix(arg, "--format="):
			args.Format = strings.TrimPrefix(arg, "--format=")
		case arg == "--output" && i+1 < len(rest):
			args.Output = rest[i+1]
			i++
		case strings.HasPrefix(arg, "--output="):
			args.Output = strings.TrimPrefix(arg, "--output=")
		case !strings.HasPrefix(arg, "-"):
			positional = append(positional, arg)
		}
	}

	if len(positional) == 0 {
		args.Subcommand = "list"
		return
	}
	args.Subcommand = positional[0]
	if len(positional) > 1 {
		args.Query = positional[1]
	}
}

// =============================================================================
// VERSION AND HELP
// =============================================================================

// PrintVersion prints build information.
func PrintVersion() {
	fmt.Printf("wardbot %s\n", Version)
	fmt.Printf("  commit:  %s\n", GitCommit)
	fmt.Printf("  built:   %s\n", BuildDate)
	fmt.Printf("  go:      %s\n", runtime.Version())
}

// PrintUsage prints the top-level usage text.
func PrintUsage() {
	fmt.Println(usageText)
}

// HandleVersion handles the "version" command.
func HandleVersion(args Args) {
	if args.JSON {
		fmt.Printf(`{"version":%q,"commit":%q,"built":%q,"go":%q}`+"\n",
			Version, GitCommit, BuildDate, runtime.Version())
		return
	}
	PrintVersion()
}

// HandleHelp handles the "help" command.
func HandleHelp() {
	PrintUsage()
}
