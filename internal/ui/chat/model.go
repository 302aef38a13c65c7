// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view for the TUI.
package chat

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/morganforge/wardbot/internal/chatbot"
	"github.com/morganforge/wardbot/internal/commands"
	"github.com/morganforge/wardbot/internal/config"
	"github.com/morganforge/wardbot/internal/export"
	"github.com/morganforge/wardbot/internal/model"
	"github.com/morganforge/wardbot/internal/session"
	"github.com/morganforge/wardbot/internal/storage"
	"github.com/morganforge/wardbot/internal/ui/styles"
)

// =============================================================================
// PROMPT MODE
// =============================================================================

// promptMode tracks what the input line is currently collecting. The login
// form reuses the chat input instead of blocking the whole UI.
type promptMode int

const (
	promptChat    promptMode = iota // Normal chat input
	promptLoginID                   // Collecting the staff ID
	promptLoginName                 // Collecting the display name
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int
	ready  bool

	// Conversation
	conversation *model.Conversation

	// Chatbot engine
	engine *chatbot.Engine

	// Persistence and session tracking
	cfg    *config.Config
	store  *storage.TranscriptStore
	sess   *session.Manager
	logger *zap.Logger

	// Slash commands
	registry *commands.Registry
	parser   *commands.Parser
	cmdCtx   *commands.Context

	// UI components
	viewport viewport.Model
	input    textinput.Model

	// Input state
	prompt         promptMode
	pendingStaffID string

	// Error display
	lastError *commands.ErrorMsg

	// Transient status line content
	statusMsg string

	// Farewell state, read by the caller after the program exits
	farewell bool
}

// Deps carries the services the chat view needs. Store, Session, and Logger
// may be nil; the view degrades to in-memory only.
type Deps struct {
	Config  *config.Config
	Engine  *chatbot.Engine
	Store   *storage.TranscriptStore
	Session *session.Manager
	Logger  *zap.Logger
}

// New creates a new chat model.
func New(theme *styles.Theme, deps Deps) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 1024
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent("")

	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Engine == nil {
		deps.Engine = chatbot.NewEngine(deps.Logger)
	}

	registry := commands.NewRegistry()

	m := Model{
		theme:        theme,
		conversation: model.NewConversation(),
		engine:       deps.Engine,
		cfg:          deps.Config,
		store:        deps.Store,
		sess:         deps.Session,
		logger:       deps.Logger,
		registry:     registry,
		parser:       commands.NewParser(registry),
		viewport:     vp,
		input:        ti,
	}
	m.cmdCtx = commands.NewContext(deps.Config, deps.Engine, deps.Store, deps.Session, deps.Logger)

	m.conversation.AddBotMessage("Hello! I'm the hospital staff chatbot. Type 'login' to sign in or 'help' for commands.")
	return m
}

// Conversation returns the current conversation.
func (m Model) Conversation() *model.Conversation {
	return m.conversation
}

// Farewell reports whether the session ended with a farewell. The caller
// prints the goodbye after the program leaves the alternate screen.
func (m Model) Farewell() bool {
	return m.farewell
}

// AutoSaveOnExit persists the transcript once the program has quit. Quit
// messages never reach the model, so the caller runs this on the final
// model after Run returns. No-op unless autosave is on and there is
// something to save.
func (m Model) AutoSaveOnExit(ctx context.Context) error {
	if m.store == nil || m.conversation == nil || m.conversation.IsEmpty() {
		return nil
	}
	if m.cfg == nil || !m.cfg.Session.AutoSave {
		return nil
	}
	return m.store.Save(ctx, m.conversation)
}

// Init initializes the chat view.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.sess != nil {
		cmds = append(cmds, session.TickCmd())
	}
	return tea.Batch(cmds...)
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case session.TickMsg:
		if m.sess != nil {
			return m, m.sess.HandleTick()
		}
		return m, nil

	case session.IdleWarningMsg:
		m.statusMsg = fmt.Sprintf("Idle: auto-logout in %s", session.FormatDuration(msg.Remaining))
		return m, nil

	case session.IdleLogoutMsg:
		return m.handleIdleLogout(), nil

	case session.AutoSaveMsg:
		return m, m.saveCmd("")

	// Slash command outcomes
	case commands.ShowHelpMsg:
		m.addSystemMessage(commands.HelpListing(m.registry))
		return m, nil

	case commands.NewTranscriptMsg:
		m.conversation = model.NewConversation()
		m.setStaffID()
		m.addSystemMessage("Started a new transcript.")
		return m, nil

	case commands.ClearTranscriptMsg:
		m.conversation.ClearHistory()
		m.refreshViewport()
		return m, nil

	case commands.SaveTranscriptMsg:
		if msg.Title != "" {
			m.conversation.Title = msg.Title
		}
		return m, m.saveCmd(msg.Title)

	case commands.TranscriptSavedMsg:
		if msg.Error != nil {
			m.setError("Save failed", msg.Error.Error(), "")
		} else {
			if m.sess != nil {
				m.sess.MarkClean()
			}
			m.addSystemMessage(fmt.Sprintf("Transcript saved as %s.", msg.ID))
		}
		return m, nil

	case commands.TranscriptLoadedMsg:
		if msg.Error != nil {
			m.setError("Load failed", msg.Error.Error(), "Use /sessions to list transcripts")
			return m, nil
		}
		m.conversation = msg.Conversation
		m.addSystemMessage(fmt.Sprintf("Loaded transcript %s.", msg.Conversation.ID))
		return m, nil

	case commands.TranscriptListMsg:
		if msg.Error != nil {
			m.setError("List failed", msg.Error.Error(), "")
			return m, nil
		}
		m.addSystemMessage(m.renderTranscriptList(msg.Transcripts))
		return m, nil

	case commands.TranscriptDeletedMsg:
		if msg.Error != nil {
			m.setError("Delete failed", msg.Error.Error(), "")
		} else {
			m.addSystemMessage(fmt.Sprintf("Deleted transcript %s.", msg.ID))
		}
		return m, nil

	case commands.ExportTranscriptMsg:
		return m, m.exportCmd(msg.Format, msg.Path)

	case commands.ExportCompleteMsg:
		if msg.Error != nil {
			m.setError("Export failed", msg.Error.Error(), "")
		} else {
			m.addSystemMessage(fmt.Sprintf("Exported transcript to %s.", msg.Path))
		}
		return m, nil

	case commands.ThemeChangedMsg:
		m.addSystemMessage(fmt.Sprintf("Theme set to %s. Restart to apply.", msg.Theme))
		return m, nil

	case commands.SystemMessageMsg:
		m.addSystemMessage(msg.Content)
		return m, nil

	case commands.ErrorMsg:
		m.lastError = &msg
		m.refreshViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleResize recomputes layout dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	// Header (1) + status bar (1) + input container (3); compact mode
	// drops the header.
	chromeHeight := 5
	if m.compactMode() {
		chromeHeight = 4
	}
	m.viewport.Width = msg.Width
	m.viewport.Height = msg.Height - chromeHeight
	if m.viewport.Height < 3 {
		m.viewport.Height = 3
	}
	m.input.Width = msg.Width - 4

	m.refreshViewport()
	return m
}

// handleIdleLogout logs the staff member out after the idle timeout.
func (m Model) handleIdleLogout() Model {
	if !m.engine.LoggedIn() {
		return m
	}
	outcome := m.engine.Logout()
	for _, line := range outcome.Replies {
		m.conversation.AddBotMessage(line)
	}
	m.addSystemMessage("You were logged out after a period of inactivity.")
	return m
}

// =============================================================================
// ASYNC COMMANDS
// =============================================================================

// saveCmd persists the current conversation in the background.
func (m Model) saveCmd(title string) tea.Cmd {
	if m.store == nil {
		return func() tea.Msg {
			return commands.TranscriptSavedMsg{Error: fmt.Errorf("transcript storage is not configured")}
		}
	}

	store := m.store
	conv := m.conversation.Clone()
	if title != "" {
		conv.Title = title
	}
	return func() tea.Msg {
		if err := store.Save(context.Background(), conv); err != nil {
			return commands.TranscriptSavedMsg{Error: err}
		}
		return commands.TranscriptSavedMsg{ID: conv.ID}
	}
}

// exportCmd writes the current conversation to a file in the background.
func (m Model) exportCmd(format, path string) tea.Cmd {
	conv := m.conversation.Clone()
	return func() tea.Msg {
		exporter, err := export.ForFormat(format, nil)
		if err != nil {
			return commands.ExportCompleteMsg{Error: err}
		}
		if path != "" {
			if err := export.ExportToPath(conv, exporter, path); err != nil {
				return commands.ExportCompleteMsg{Error: err}
			}
			return commands.ExportCompleteMsg{Path: path}
		}
		out, err := export.ExportToFile(conv, exporter, nil)
		if err != nil {
			return commands.ExportCompleteMsg{Error: err}
		}
		return commands.ExportCompleteMsg{Path: out}
	}
}

// =============================================================================
// HELPERS
// =============================================================================

// addSystemMessage appends a system message and scrolls to it.
func (m *Model) addSystemMessage(content string) {
	m.conversation.AddSystemMessage(content)
	m.markDirty()
	m.refreshViewport()
}

// setError records an error for display in the viewport footer.
func (m *Model) setError(title, message, tip string) {
	m.lastError = &commands.ErrorMsg{Title: title, Message: message, Tip: tip}
	m.refreshViewport()
}

// markDirty flags unsaved transcript changes.
func (m *Model) markDirty() {
	if m.sess != nil {
		m.sess.MarkDirty()
	}
}

// setStaffID stamps the logged-in staff ID onto the conversation.
func (m *Model) setStaffID() {
	if p := m.engine.Profile(); p != nil {
		m.conversation.StaffID = p.ID
	}
}
