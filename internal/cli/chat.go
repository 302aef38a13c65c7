// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Plain-terminal chat for wardbot.
//
// Handles the "wardbot chat" command, a readline-style REPL for terminals
// where the full TUI is unwanted (ssh sessions, screen readers, scripts
// driving a pty). The same chatbot engine and slash commands back both
// front ends.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"go.uber.org/zap"

	"github.com/morganforge/wardbot/internal/chatbot"
	"github.com/morganforge/wardbot/internal/commands"
	"github.com/morganforge/wardbot/internal/config"
	"github.com/morganforge/wardbot/internal/export"
	"github.com/morganforge/wardbot/internal/logging"
	"github.com/morganforge/wardbot/internal/model"
	"github.com/morganforge/wardbot/internal/session"
	"github.com/morganforge/wardbot/internal/storage"
	"github.com/morganforge/wardbot/internal/ui/styles"
	"github.com/morganforge/wardbot/internal/util"
)

// =============================================================================
// STYLES
// =============================================================================

// replStyles holds the small set of styles the REPL prints with. Built per
// session so color detection happens at startup, not package init.
type replStyles struct {
	prompt  lipgloss.Style
	login   lipgloss.Style
	bot     lipgloss.Style
	system  lipgloss.Style
	errText lipgloss.Style
}

func newREPLStyles() replStyles {
	if !ColorsEnabled() {
		plain := lipgloss.NewStyle()
		return replStyles{prompt: plain, login: plain, bot: plain, system: plain, errText: plain}
	}
	return replStyles{
		prompt:  lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true),
		login:   lipgloss.NewStyle().Foreground(styles.Amber).Bold(true),
		bot:     lipgloss.NewStyle().Foreground(styles.TextPrimary),
		system:  lipgloss.NewStyle().Foreground(styles.TextMuted),
		errText: lipgloss.NewStyle().Foreground(styles.Rose).Bold(true),
	}
}

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI wraps liner with persistent input history.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a ChatCLI and loads any existing history.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	c := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	c.loadHistory()
	return c
}

func (c *ChatCLI) loadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// SetCompleter installs a tab-completion function on the line editor.
func (c *ChatCLI) SetCompleter(fn liner.Completer) {
	c.line.SetCompleter(fn)
}

// ReadInput reads one line with history navigation. Non-empty input is
// appended to the history.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// saveHistory persists history with owner-only permissions.
func (c *ChatCLI) saveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and releases the terminal.
func (c *ChatCLI) Close() {
	c.saveHistory()
	c.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// ChatSession holds the state for one REPL session.
type ChatSession struct {
	Config       *config.Config
	Engine       *chatbot.Engine
	Conversation *model.Conversation
	Store        *storage.TranscriptStore
	Session      *session.Manager
	Logger       *zap.Logger
	InputCLI     *ChatCLI

	styles   replStyles
	registry *commands.Registry
	parser   *commands.Parser
	cmdCtx   *commands.Context
	quiet    bool
	cleanup  func()
}

// NewChatSession builds the session from global config.
func NewChatSession(args Args) (*ChatSession, error) {
	cfg := config.Global()

	logger, cleanup, err := logging.New(cfg)
	if err != nil {
		logger = zap.NewNop()
		cleanup = func() {}
	}

	engine := chatbot.NewEngine(logger)

	// The store is optional. A broken database should not block chat.
	var store *storage.TranscriptStore
	if dbPath, err := cfg.DatabasePath(); err == nil {
		if s, err := storage.NewTranscriptStore(dbPath, cfg.Storage.MaxTranscripts); err == nil {
			store = s
		} else {
			logger.Warn("transcript store unavailable", zap.Error(err))
		}
	}

	registry := commands.NewRegistry()

	inputCLI := NewChatCLI()
	inputCLI.SetCompleter(commandCompleter(registry))

	sess := session.NewManager(session.OptionsFromConfig(cfg))

	s := &ChatSession{
		Config:       cfg,
		Engine:       engine,
		Conversation: model.NewConversation(),
		Store:        store,
		Session:      sess,
		Logger:       logger,
		InputCLI:     inputCLI,
		styles:       newREPLStyles(),
		registry:     registry,
		parser:       commands.NewParser(registry),
		cmdCtx:       commands.NewContext(cfg, engine, store, sess, logger),
		quiet:        args.Quiet,
		cleanup:      cleanup,
	}

	// The REPL has no tick loop, so expiry is checked when the blocking
	// prompt returns. The callback fires from Session.Check.
	sess.SetIdleLogoutCallback(s.idleLogout)
	return s, nil
}

// idleLogout logs the staff member out after the idle timeout elapses
// while the prompt sat unused.
func (s *ChatSession) idleLogout() {
	if !s.Engine.LoggedIn() {
		return
	}
	outcome := s.Engine.Logout()
	s.printReplies(outcome.Replies)
	fmt.Println(s.styles.system.Render("You were logged out after a period of inactivity."))
}

// commandCompleter adapts slash-command completion to liner. Tab on "/s"
// offers /save, /sessions, /status; non-command input gets no suggestions.
func commandCompleter(registry *commands.Registry) liner.Completer {
	return func(line string) []string {
		matches := commands.CompleteCommand(registry, line)
		if len(matches) == 0 {
			return nil
		}
		out := make([]string, len(matches))
		for i, match := range matches {
			out[i] = match.Value
		}
		return out
	}
}

// Close releases the session's resources.
func (s *ChatSession) Close() {
	s.InputCLI.Close()
	if s.Store != nil {
		s.Store.Close()
	}
	s.cleanup()
}

// =============================================================================
// CHAT HANDLER
// =============================================================================

// HandleChatCommand runs the interactive REPL until the user leaves.
func HandleChatCommand(args Args) error {
	if err := RequiresTTY("chat"); err != nil {
		return err
	}

	session, err := NewChatSession(args)
	if err != nil {
		return err
	}
	defer session.Close()

	if !session.quiet {
		fmt.Println(session.styles.bot.Render("Hello! I'm the hospital staff chatbot. Type 'login' to sign in or 'help' for commands."))
		fmt.Println(session.styles.system.Render("Slash commands work here too. /help lists them, /quit leaves."))
		fmt.Println()
	}

	prompt := session.styles.prompt.Render("wardbot> ")

	for {
		input, err := session.InputCLI.ReadInput(prompt)
		if err != nil {
			// Ctrl+C or Ctrl+D. Leave the same way 'bye' would.
			fmt.Println()
			session.farewell()
			return nil
		}

		// The idle check runs against the time spent waiting at the
		// prompt; only then does this input count as activity.
		session.Session.Check()
		session.Session.RecordActivity()

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if commands.IsCommand(input) {
			if session.runSlashCommand(input) {
				return nil
			}
			continue
		}

		session.Conversation.AddUserMessage(input)
		outcome := session.Engine.Handle(input)
		session.printReplies(outcome.Replies)

		if outcome.StartLogin {
			session.runLoginForm()
			continue
		}
		if outcome.Farewell {
			session.saveOnExit()
			return nil
		}
	}
}

// printReplies prints and records the chatbot's replies.
func (s *ChatSession) printReplies(replies []string) {
	for _, line := range replies {
		s.Conversation.AddBotMessage(line)
		fmt.Println(s.styles.bot.Render(line))
	}
	if len(replies) > 0 {
		fmt.Println()
	}
	if p := s.Engine.Profile(); p != nil {
		s.Conversation.StaffID = p.ID
	}
}

// runLoginForm collects the staff ID and name on sequential prompts.
// Validation happens only after both fields are in, so a blank ID still
// moves on to the name prompt.
func (s *ChatSession) runLoginForm() {
	staffID, err := s.InputCLI.ReadInput(s.styles.login.Render("Staff ID: "))
	if err != nil {
		fmt.Println(s.styles.system.Render("Login cancelled."))
		return
	}
	name, err := s.InputCLI.ReadInput(s.styles.login.Render("Name: "))
	if err != nil {
		fmt.Println(s.styles.system.Render("Login cancelled."))
		return
	}

	outcome := s.Engine.Login(strings.TrimSpace(staffID), strings.TrimSpace(name))
	s.printReplies(outcome.Replies)
}

// farewell ends the session the way the chatbot would on 'bye'.
func (s *ChatSession) farewell() {
	outcome := s.Engine.Handle("bye")
	s.printReplies(outcome.Replies)
	s.saveOnExit()
}

// saveOnExit persists the transcript when autosave is on.
func (s *ChatSession) saveOnExit() {
	if s.Store == nil || !s.Config.Session.AutoSave || s.Conversation.IsEmpty() {
		return
	}
	if err := s.Store.Save(context.Background(), s.Conversation); err != nil {
		s.Logger.Warn("autosave on exit failed", zap.Error(err))
	}
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// runSlashCommand dispatches one slash command and prints its outcome.
// Returns true when the session should end.
func (s *ChatSession) runSlashCommand(input string) bool {
	cmd := commands.Execute(s.parser, s.cmdCtx, input)
	if cmd == nil {
		return false
	}
	return s.handleCommandMsg(cmd())
}

// handleCommandMsg renders a command outcome to the terminal. The TUI
// consumes the same messages in its Update loop.
func (s *ChatSession) handleCommandMsg(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.QuitMsg:
		s.saveOnExit()
		return true

	case commands.ShowHelpMsg:
		fmt.Println(commands.HelpListing(s.registry))

	case commands.NewTranscriptMsg:
		s.Conversation = model.NewConversation()
		fmt.Println(s.styles.system.Render("Started a new transcript."))

	case commands.ClearTranscriptMsg:
		s.Conversation.ClearHistory()
		fmt.Println(s.styles.system.Render("Transcript cleared."))

	case commands.SaveTranscriptMsg:
		if s.Store == nil {
			s.printError("Save failed", "transcript storage is not configured", "")
			return false
		}
		if msg.Title != "" {
			s.Conversation.Title = msg.Title
		}
		if err := s.Store.Save(context.Background(), s.Conversation); err != nil {
			s.printError("Save failed", err.Error(), "")
		} else {
			fmt.Println(s.styles.system.Render(fmt.Sprintf("Transcript saved as %s.", s.Conversation.ID)))
		}

	case commands.TranscriptLoadedMsg:
		if msg.Error != nil {
			s.printError("Load failed", msg.Error.Error(), "Use /sessions to list transcripts")
			return false
		}
		s.Conversation = msg.Conversation
		fmt.Println(s.styles.system.Render(fmt.Sprintf("Loaded transcript %s.", msg.Conversation.ID)))
		printTranscript(s.Conversation, s.Config.Chat.BotName)

	case commands.TranscriptListMsg:
		if msg.Error != nil {
			s.printError("List failed", msg.Error.Error(), "")
			return false
		}
		printTranscriptList(msg.Transcripts)

	case commands.TranscriptDeletedMsg:
		if msg.Error != nil {
			s.printError("Delete failed", msg.Error.Error(), "")
		} else {
			fmt.Println(s.styles.system.Render(fmt.Sprintf("Deleted transcript %s.", msg.ID)))
		}

	case commands.ExportTranscriptMsg:
		s.exportTranscript(msg.Format, msg.Path)

	case commands.ThemeChangedMsg:
		fmt.Println(s.styles.system.Render(fmt.Sprintf("Theme set to %s. Takes effect in the TUI.", msg.Theme)))

	case commands.SystemMessageMsg:
		fmt.Println(msg.Content)

	case commands.ErrorMsg:
		s.printError(msg.Title, msg.Message, msg.Tip)
	}
	return false
}

// exportTranscript writes the current conversation to disk.
func (s *ChatSession) exportTranscript(format, path string) {
	exporter, err := export.ForFormat(format, nil)
	if err != nil {
		s.printError("Export failed", err.Error(), "")
		return
	}

	out := path
	if out != "" {
		err = export.ExportToPath(s.Conversation, exporter, out)
	} else {
		out, err = export.ExportToFile(s.Conversation, exporter, nil)
	}
	if err != nil {
		s.printError("Export failed", err.Error(), "")
		return
	}
	fmt.Println(s.styles.system.Render(fmt.Sprintf("Exported transcript to %s.", out)))
}

func (s *ChatSession) printError(title, message, tip string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", s.styles.errText.Render("["+title+"]"), message)
	if tip != "" {
		fmt.Fprintln(os.Stderr, s.styles.system.Render(tip))
	}
}

// printTranscript prints a conversation as plain lines, labeling bot
// messages with the configured bot name.
func printTranscript(conv *model.Conversation, botName string) {
	for _, msg := range conv.Messages {
		name := msg.Sender.DisplayName()
		if msg.Sender == model.SenderBot && botName != "" {
			name = botName
		}
		fmt.Printf("%s: %s\n", name, msg.Text)
	}
	fmt.Println()
}

// printTranscriptList prints saved transcript metadata.
func printTranscriptList(metas []model.ConversationMeta) {
	if len(metas) == 0 {
		fmt.Println("No saved transcripts.")
		return
	}
	fmt.Println("Saved transcripts:")
	for _, meta := range metas {
		// Width-aware truncation keeps the columns aligned for CJK titles.
		title := util.PadRight(util.TruncateWidth(meta.Title, 30), 30)
		fmt.Printf("  %s  %s  %3d messages  %s\n",
			meta.ID, title, meta.MessageCount,
			meta.UpdatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println("Use /load <id> to resume one.")
}
