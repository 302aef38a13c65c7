// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the slash command system for the TUI.
package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/morganforge/wardbot/internal/chatbot"
	"github.com/morganforge/wardbot/internal/config"
	"github.com/morganforge/wardbot/internal/session"
	"github.com/morganforge/wardbot/internal/storage"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Command represents a slash command that can be executed.
type Command struct {
	// Name is the primary command name (e.g., "/help")
	Name string

	// Aliases are alternative names (e.g., "/h", "/?")
	Aliases []string

	// Description is shown in help and completion
	Description string

	// Usage shows argument syntax (e.g., "/load <id>")
	Usage string

	// Args defines the expected arguments
	Args []ArgDef

	// Handler is the function that executes the command
	Handler func(ctx *Context, args []string) tea.Cmd

	// Hidden commands don't appear in help
	Hidden bool

	// Category for grouping in help display
	Category string
}

// ArgDef defines an argument for a command.
type ArgDef struct {
	// Name of the argument
	Name string

	// Required indicates if the argument must be provided
	Required bool

	// Type determines completion behavior
	Type ArgType

	// Description explains the argument
	Description string

	// Values for enum types
	Values []string
}

// ArgType indicates what kind of completion to provide.
type ArgType int

const (
	ArgTypeString     ArgType = iota // Free-form string
	ArgTypeTranscript                // Transcript ID from the store
	ArgTypeFile                      // File path
	ArgTypeEnum                      // One of predefined values
	ArgTypeConfig                    // Config key
)

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds all registered commands.
type Registry struct {
	commands map[string]*Command
	aliases  map[string]*Command
}

// NewRegistry creates a new command registry with all built-in commands.
func NewRegistry() *Registry {
	r := &Registry{
		commands: make(map[string]*Command),
		aliases:  make(map[string]*Command),
	}
	r.registerBuiltins()
	return r
}

// Register adds a command to the registry.
func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	for _, alias := range cmd.Aliases {
		r.aliases[alias] = cmd
	}
}

// Get retrieves a command by name or alias.
func (r *Registry) Get(name string) *Command {
	if cmd, ok := r.commands[name]; ok {
		return cmd
	}
	if cmd, ok := r.aliases[name]; ok {
		return cmd
	}
	return nil
}

// All returns all registered commands.
func (r *Registry) All() []*Command {
	cmds := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	return cmds
}

// ByCategory returns commands grouped by category.
func (r *Registry) ByCategory() map[string][]*Command {
	result := make(map[string][]*Command)
	for _, cmd := range r.commands {
		if cmd.Hidden {
			continue
		}
		category := cmd.Category
		if category == "" {
			category = "General"
		}
		result[category] = append(result[category], cmd)
	}
	return result
}

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

func (r *Registry) registerBuiltins() {
	// Navigation commands
	r.Register(&Command{
		Name:        "/help",
		Aliases:     []string{"/h", "/?"},
		Description: "Show slash commands and chatbot help",
		Category:    "Navigation",
		Handler:     HandleHelp,
	})

	r.Register(&Command{
		Name:        "/quit",
		Aliases:     []string{"/q"},
		Description: "Exit wardbot",
		Category:    "Navigation",
		Handler:     HandleQuit,
	})

	// Transcript commands
	r.Register(&Command{
		Name:        "/new",
		Aliases:     []string{"/n"},
		Description: "Start a new transcript",
		Category:    "Transcript",
		Handler:     HandleNew,
	})

	r.Register(&Command{
		Name:        "/clear",
		Aliases:     []string{"/c"},
		Description: "Clear the current transcript",
		Category:    "Transcript",
		Handler:     HandleClear,
	})

	r.Register(&Command{
		Name:        "/save",
		Aliases:     []string{"/s"},
		Description: "Save the current transcript",
		Usage:       "/save [title]",
		Args: []ArgDef{
			{Name: "title", Required: false, Type: ArgTypeString, Description: "Optional transcript title"},
		},
		Category: "Transcript",
		Handler:  HandleSave,
	})

	r.Register(&Command{
		Name:        "/load",
		Aliases:     []string{"/l"},
		Description: "Load a saved transcript",
		Usage:       "/load <id>",
		Args: []ArgDef{
			{Name: "id", Required: true, Type: ArgTypeTranscript, Description: "ID of the transcript to load"},
		},
		Category: "Transcript",
		Handler:  HandleLoad,
	})

	r.Register(&Command{
		Name:        "/sessions",
		Aliases:     []string{"/list"},
		Description: "List saved transcripts",
		Category:    "Transcript",
		Handler:     HandleSessions,
	})

	r.Register(&Command{
		Name:        "/delete",
		Description: "Delete a saved transcript",
		Usage:       "/delete <id>",
		Args: []ArgDef{
			{Name: "id", Required: true, Type: ArgTypeTranscript, Description: "ID of the transcript to delete"},
		},
		Category: "Transcript",
		Handler:  HandleDelete,
	})

	r.Register(&Command{
		Name:        "/export",
		Description: "Export the transcript to a file",
		Usage:       "/export [format] [path]",
		Args: []ArgDef{
			{Name: "format", Required: false, Type: ArgTypeEnum, Values: []string{"md", "json", "txt"}, Description: "Export format"},
			{Name: "path", Required: false, Type: ArgTypeFile, Description: "Output file path"},
		},
		Category: "Transcript",
		Handler:  HandleExport,
	})

	// Account commands
	r.Register(&Command{
		Name:        "/whoami",
		Description: "Show the logged-in staff member",
		Category:    "Account",
		Handler:     HandleWhoami,
	})

	r.Register(&Command{
		Name:        "/status",
		Description: "Show session status",
		Category:    "Account",
		Handler:     HandleStatus,
	})

	// Settings commands
	r.Register(&Command{
		Name:        "/config",
		Description: "Show or edit configuration",
		Usage:       "/config [key] [value]",
		Args: []ArgDef{
			{Name: "key", Required: false, Type: ArgTypeConfig, Description: "Config key to show/set"},
			{Name: "value", Required: false, Type: ArgTypeString, Description: "New value"},
		},
		Category: "Settings",
		Handler:  HandleConfig,
	})

	r.Register(&Command{
		Name:        "/theme",
		Description: "Change color theme",
		Usage:       "/theme <dark|light|auto>",
		Args: []ArgDef{
			{Name: "name", Required: true, Type: ArgTypeEnum, Values: []string{"dark", "light", "auto"}, Description: "Theme name"},
		},
		Category: "Settings",
		Handler:  HandleTheme,
	})
}

// =============================================================================
// CONTEXT TYPE
// =============================================================================

// Context provides access to application state for command handlers.
// All fields are optional and may be nil; handlers check before use.
type Context struct {
	// Config provides access to application configuration
	Config *config.Config

	// Engine is the chatbot engine holding login state
	Engine *chatbot.Engine

	// Store handles transcript persistence
	Store *storage.TranscriptStore

	// Session manages the current session state
	Session *session.Manager

	// Logger records command activity
	Logger *zap.Logger
}

// NewContext creates a new command context with the given dependencies.
// All parameters can be nil.
func NewContext(cfg *config.Config, engine *chatbot.Engine, store *storage.TranscriptStore, sess *session.Manager, logger *zap.Logger) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Context{
		Config:  cfg,
		Engine:  engine,
		Store:   store,
		Session: sess,
		Logger:  logger,
	}
}

// RecordActivity records user activity in the session manager if available.
func (c *Context) RecordActivity() {
	if c.Session != nil {
		c.Session.RecordActivity()
	}
}

// MarkDirty marks the transcript as having unsaved changes.
func (c *Context) MarkDirty() {
	if c.Session != nil {
		c.Session.MarkDirty()
	}
}
