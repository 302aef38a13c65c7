// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/morganforge/wardbot/internal/commands"
)

func TestParse_Defaults(t *testing.T) {
	cmd, args := Parse(nil)
	if cmd != CmdTUI {
		t.Errorf("cmd = %v, want CmdTUI", cmd)
	}
	if args.Quiet || args.Verbose || args.JSON {
		t.Error("no flags should be set")
	}
}

func TestParse_Commands(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Command
	}{
		{"chat", []string{"chat"}, CmdChat},
		{"repl alias", []string{"repl"}, CmdChat},
		{"status", []string{"status"}, CmdStatus},
		{"status short", []string{"s"}, CmdStatus},
		{"config", []string{"config"}, CmdConfig},
		{"sessions", []string{"sessions"}, CmdSessions},
		{"session alias", []string{"session", "list"}, CmdSessions},
		{"version", []string{"version"}, CmdVersion},
		{"version flag", []string{"--version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"help flag", []string{"-h"}, CmdHelp},
		{"unknown falls back to TUI", []string{"bogus"}, CmdTUI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := Parse(tt.argv)
			if cmd != tt.want {
				t.Errorf("Parse(%v) = %v, want %v", tt.argv, cmd, tt.want)
			}
		})
	}
}

func TestParse_GlobalFlags(t *testing.T) {
	cmd, args := Parse([]string{"--quiet", "chat", "--json"})
	if cmd != CmdChat {
		t.Errorf("cmd = %v, want CmdChat", cmd)
	}
	if !args.Quiet {
		t.Error("Quiet not set")
	}
	if !args.JSON {
		t.Error("JSON not set")
	}
}

func TestParse_ConfigArgs(t *testing.T) {
	_, args := Parse([]string{"config", "set", "ui.theme", "light"})
	if args.Subcommand != "set" {
		t.Errorf("Subcommand = %q, want set", args.Subcommand)
	}
	if args.ConfigKey != "ui.theme" {
		t.Errorf("ConfigKey = %q", args.ConfigKey)
	}
	if args.ConfigVal != "light" {
		t.Errorf("ConfigVal = %q", args.ConfigVal)
	}

	// Bare config defaults to show.
	_, args = Parse([]string{"config"})
	if args.Subcommand != "show" {
		t.Errorf("Subcommand = %q, want show", args.Subcommand)
	}
}

func TestParse_SessionsArgs(t *testing.T) {
	_, args := Parse([]string{"sessions", "export", "conv_abc", "--format", "json", "--output", "out.json"})
	if args.Subcommand != "export" {
		t.Errorf("Subcommand = %q, want export", args.Subcommand)
	}
	if args.Query != "conv_abc" {
		t.Errorf("Query = %q, want conv_abc", args.Query)
	}
	if args.Format != "json" {
		t.Errorf("Format = %q, want json", args.Format)
	}
	if args.Output != "out.json" {
		t.Errorf("Output = %q, want out.json", args.Output)
	}

	// Equals-sign flag form.
	_, args = Parse([]string{"sessions", "export", "conv_abc", "--format=txt"})
	if args.Format != "txt" {
		t.Errorf("Format = %q, want txt", args.Format)
	}

	// Bare sessions defaults to list with md format.
	_, args = Parse([]string{"sessions"})
	if args.Subcommand != "list" {
		t.Errorf("Subcommand = %q, want list", args.Subcommand)
	}
	if args.Format != "md" {
		t.Errorf("Format = %q, want md", args.Format)
	}
}

func TestCommandCompleter(t *testing.T) {
	complete := commandCompleter(commands.NewRegistry())

	got := complete("/s")
	want := []string{"/save", "/sessions", "/status"}
	if len(got) != len(want) {
		t.Fatalf("complete(/s) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("complete(/s)[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if got := complete("hello"); got != nil {
		t.Errorf("complete(hello) = %v, want nil", got)
	}
}

func TestTTYRequiredError(t *testing.T) {
	err := &TTYRequiredError{Operation: "chat"}
	want := "stdin is not a terminal; cannot chat interactively"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := &TTYRequiredError{}
	if bare.Error() != "stdin is not a terminal; interactive input not available" {
		t.Errorf("bare Error() = %q", bare.Error())
	}
}
