// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/morganforge/wardbot/internal/config"
	"github.com/morganforge/wardbot/internal/model"
	"github.com/morganforge/wardbot/internal/session"
)

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// These messages are sent by command handlers to update the application state.

// ShowHelpMsg triggers the slash command help display.
type ShowHelpMsg struct{}

// NewTranscriptMsg starts a fresh transcript.
type NewTranscriptMsg struct{}

// ClearTranscriptMsg clears the current transcript in place.
type ClearTranscriptMsg struct{}

// SaveTranscriptMsg asks the app to save the current transcript.
type SaveTranscriptMsg struct {
	Title string // Optional new title
}

// TranscriptSavedMsg indicates save completion.
type TranscriptSavedMsg struct {
	ID    string
	Error error
}

// TranscriptLoadedMsg carries a loaded transcript.
type TranscriptLoadedMsg struct {
	Conversation *model.Conversation
	Error        error
}

// TranscriptListMsg carries the list of saved transcripts.
type TranscriptListMsg struct {
	Transcripts []model.ConversationMeta
	Error       error
}

// TranscriptDeletedMsg indicates delete completion.
type TranscriptDeletedMsg struct {
	ID    string
	Error error
}

// ExportTranscriptMsg asks the app to export the current transcript.
type ExportTranscriptMsg struct {
	Format string // "md", "json", "txt"
	Path   string // Optional explicit output path
}

// ExportCompleteMsg indicates export completion.
type ExportCompleteMsg struct {
	Path  string
	Error error
}

// ThemeChangedMsg indicates the color theme changed.
type ThemeChangedMsg struct {
	Theme string
}

// SystemMessageMsg adds a system message to the chat.
type SystemMessageMsg struct {
	Content string
}

// ErrorMsg indicates an error occurred.
type ErrorMsg struct {
	Title   string
	Message string
	Tip     string
}

// =============================================================================
// EXECUTION
// =============================================================================

// Execute parses and runs one line of slash command input. The returned
// command is nil when the input is not a slash command.
func Execute(parser *Parser, ctx *Context, input string) tea.Cmd {
	result := parser.Parse(input)
	if !result.IsCommand {
		return nil
	}

	if result.Command == nil {
		name := result.CommandName
		return func() tea.Msg {
			return ErrorMsg{
				Title:   "Unknown command",
				Message: fmt.Sprintf("No such command: %s", name),
				Tip:     "Type /help for available commands",
			}
		}
	}

	if err := ValidateArgs(result.Command, result.Args); err != nil {
		msg := err.Error()
		usage := result.Command.Usage
		return func() tea.Msg {
			return ErrorMsg{
				Title:   "Invalid arguments",
				Message: msg,
				Tip:     usage,
			}
		}
	}

	if ctx != nil && ctx.Logger != nil {
		ctx.Logger.Debug("executing slash command",
			zap.String("command", result.Command.Name),
			zap.Int("args", len(result.Args)))
	}

	return result.Command.Handler(ctx, result.Args)
}

// =============================================================================
// NAVIGATION HANDLERS
// =============================================================================

// HandleHelp shows the slash command listing.
func HandleHelp(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg {
		return ShowHelpMsg{}
	}
}

// HandleQuit exits the application.
func HandleQuit(ctx *Context, args []string) tea.Cmd {
	return tea.Quit
}

// =============================================================================
// TRANSCRIPT HANDLERS
// =============================================================================

// HandleNew starts a new transcript.
func HandleNew(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg {
		return NewTranscriptMsg{}
	}
}

// HandleClear clears the current transcript.
func HandleClear(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg {
		return ClearTranscriptMsg{}
	}
}

// HandleSave saves the current transcript, optionally renaming it first.
// The transcript itself lives in the app model, so the app does the write.
func HandleSave(ctx *Context, args []string) tea.Cmd {
	title := ""
	if len(args) > 0 {
		title = strings.Join(args, " ")
	}
	return func() tea.Msg {
		return SaveTranscriptMsg{Title: title}
	}
}

// HandleLoad loads a saved transcript by ID.
func HandleLoad(ctx *Context, args []string) tea.Cmd {
	id := args[0]

	if ctx == nil || ctx.Store == nil {
		return func() tea.Msg {
			return ErrorMsg{
				Title:   "Storage unavailable",
				Message: "Transcript storage is not configured",
			}
		}
	}

	store := ctx.Store
	return func() tea.Msg {
		conv, err := store.Load(context.Background(), id)
		if err != nil {
			return TranscriptLoadedMsg{Error: err}
		}
		return TranscriptLoadedMsg{Conversation: conv}
	}
}

// HandleSessions lists saved transcripts.
func HandleSessions(ctx *Context, args []string) tea.Cmd {
	if ctx == nil || ctx.Store == nil {
		return func() tea.Msg {
			return TranscriptListMsg{}
		}
	}

	store := ctx.Store
	return func() tea.Msg {
		metas, err := store.List(context.Background())
		if err != nil {
			return TranscriptListMsg{Error: err}
		}
		return TranscriptListMsg{Transcripts: metas}
	}
}

// HandleDelete deletes a saved transcript by ID.
func HandleDelete(ctx *Context, args []string) tea.Cmd {
	id := args[0]

	if ctx == nil || ctx.Store == nil {
		return func() tea.Msg {
			return ErrorMsg{
				Title:   "Storage unavailable",
				Message: "Transcript storage is not configured",
			}
		}
	}

	store := ctx.Store
	return func() tea.Msg {
		if err := store.Delete(context.Background(), id); err != nil {
			return TranscriptDeletedMsg{ID: id, Error: err}
		}
		return TranscriptDeletedMsg{ID: id}
	}
}

// HandleExport exports the current transcript.
func HandleExport(ctx *Context, args []string) tea.Cmd {
	format := "md"
	path := ""
	if len(args) > 0 {
		format = strings.ToLower(args[0])
	}
	if len(args) > 1 {
		path = args[1]
	}

	switch format {
	case "md", "markdown", "json", "txt", "text":
	default:
		return func() tea.Msg {
			return ErrorMsg{
				Title:   "Invalid export format",
				Message: fmt.Sprintf("Unknown format: %s", format),
				Tip:     "Supported formats: md, json, txt",
			}
		}
	}

	return func() tea.Msg {
		return ExportTranscriptMsg{Format: format, Path: path}
	}
}

// =============================================================================
// ACCOUNT HANDLERS
// =============================================================================

// HandleWhoami shows the logged-in staff member.
func HandleWhoami(ctx *Context, args []string) tea.Cmd {
	var content string
	if ctx == nil || ctx.Engine == nil || !ctx.Engine.LoggedIn() {
		content = "No user is currently logged in."
	} else {
		p := ctx.Engine.Profile()
		content = fmt.Sprintf("Staff ID: %s\nName: %s\nRole: %s\nDepartment: %s\nContact: %s",
			p.ID, p.Name, p.Role, p.Department, p.Contact)
	}
	return func() tea.Msg {
		return SystemMessageMsg{Content: content}
	}
}

// HandleStatus shows session status.
func HandleStatus(ctx *Context, args []string) tea.Cmd {
	var sb strings.Builder

	if ctx != nil && ctx.Session != nil {
		status := ctx.Session.GetStatus()
		sb.WriteString(fmt.Sprintf("Session: %s\n", status.SessionID))
		sb.WriteString(fmt.Sprintf("Active for: %s\n", session.FormatDuration(status.Duration)))
		sb.WriteString(fmt.Sprintf("Idle for: %s\n", session.FormatDuration(status.IdleTime)))
		if status.RemainingTime > 0 {
			sb.WriteString(fmt.Sprintf("Auto-logout in: %s\n", session.FormatDuration(status.RemainingTime)))
		}
		if status.IsDirty {
			sb.WriteString("Transcript: unsaved changes\n")
		} else {
			sb.WriteString("Transcript: saved\n")
		}
	}

	if ctx != nil && ctx.Engine != nil && ctx.Engine.LoggedIn() {
		p := ctx.Engine.Profile()
		sb.WriteString(fmt.Sprintf("Logged in: %s (%s)", p.Name, p.Role))
	} else {
		sb.WriteString("Logged in: nobody")
	}

	content := sb.String()
	return func() tea.Msg {
		return SystemMessageMsg{Content: content}
	}
}

// =============================================================================
// SETTINGS HANDLERS
// =============================================================================

// HandleConfig shows or edits configuration values.
func HandleConfig(ctx *Context, args []string) tea.Cmd {
	if ctx == nil || ctx.Config == nil {
		return func() tea.Msg {
			return ErrorMsg{Title: "Config unavailable", Message: "No configuration loaded"}
		}
	}
	cfg := ctx.Config

	switch len(args) {
	case 0:
		// List every known key with its current value.
		keys := config.GetAllKeys()
		sort.Strings(keys)
		var sb strings.Builder
		sb.WriteString("Configuration:\n")
		for _, key := range keys {
			value, err := cfg.Get(key)
			if err != nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("  %s = %v\n", key, value))
		}
		content := strings.TrimRight(sb.String(), "\n")
		return func() tea.Msg {
			return SystemMessageMsg{Content: content}
		}

	case 1:
		key := args[0]
		value, err := cfg.Get(key)
		if err != nil {
			msg := err.Error()
			return func() tea.Msg {
				return ErrorMsg{Title: "Unknown config key", Message: msg}
			}
		}
		content := fmt.Sprintf("%s = %v", key, value)
		return func() tea.Msg {
			return SystemMessageMsg{Content: content}
		}

	default:
		key, value := args[0], args[1]
		if err := cfg.Set(key, value); err != nil {
			msg := err.Error()
			return func() tea.Msg {
				return ErrorMsg{Title: "Config update failed", Message: msg}
			}
		}
		if err := config.Save(cfg); err != nil {
			msg := err.Error()
			return func() tea.Msg {
				return ErrorMsg{Title: "Config save failed", Message: msg}
			}
		}
		content := fmt.Sprintf("Set %s = %s", key, value)
		return func() tea.Msg {
			return SystemMessageMsg{Content: content}
		}
	}
}

// HandleTheme changes the color theme and persists it.
func HandleTheme(ctx *Context, args []string) tea.Cmd {
	theme := strings.ToLower(args[0])

	if ctx != nil && ctx.Config != nil {
		ctx.Config.UI.Theme = theme
		if err := config.Save(ctx.Config); err != nil {
			msg := err.Error()
			return func() tea.Msg {
				return ErrorMsg{Title: "Config save failed", Message: msg}
			}
		}
	}

	return func() tea.Msg {
		return ThemeChangedMsg{Theme: theme}
	}
}
