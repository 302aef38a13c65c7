// wardbot - a hospital staff assistant for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/morganforge/wardbot/internal/chatbot"
	"github.com/morganforge/wardbot/internal/cli"
	"github.com/morganforge/wardbot/internal/config"
	"github.com/morganforge/wardbot/internal/logging"
	"github.com/morganforge/wardbot/internal/session"
	"github.com/morganforge/wardbot/internal/storage"
	"github.com/morganforge/wardbot/internal/ui/chat"
	"github.com/morganforge/wardbot/internal/ui/components"
	"github.com/morganforge/wardbot/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with the cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse(os.Args[1:])

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdChat:
		if err := cli.HandleChatCommand(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdStatus:
		cli.HandleStatus(args)
	case cli.CmdConfig:
		cli.HandleConfig(args)
	case cli.CmdSessions:
		if err := cli.HandleSessions(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdVersion:
		cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.HandleHelp()
	}
}

// =============================================================================
// TUI
// =============================================================================

// appState tracks which screen the TUI is showing.
type appState int

const (
	stateWelcome appState = iota
	stateChat
)

// App composes the welcome screen and the chat view.
type App struct {
	state   appState
	welcome components.Welcome
	chat    chat.Model
}

func (a App) Init() tea.Cmd {
	return a.welcome.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Both screens track the terminal size.
		var cmd tea.Cmd
		a.welcome, _ = a.welcome.Update(msg)
		a.chat, cmd = a.chat.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if a.state == stateWelcome {
			if msg.Type == tea.KeyCtrlC {
				return a, tea.Quit
			}
			// Any other key leaves the welcome screen.
			a.state = stateChat
			return a, a.chat.Init()
		}
	}

	if a.state == stateWelcome {
		var cmd tea.Cmd
		a.welcome, cmd = a.welcome.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.chat, cmd = a.chat.Update(msg)
	return a, cmd
}

func (a App) View() string {
	if a.state == stateWelcome {
		return a.welcome.View()
	}
	return a.chat.View()
}

// runTUI starts the full-screen interface.
func runTUI(args cli.Args) {
	if !cli.IsStdoutTTY() {
		fmt.Fprintln(os.Stderr, "Error: the TUI needs a terminal. Try 'wardbot chat' or 'wardbot help'.")
		os.Exit(1)
	}

	cfg := config.Global()

	logger, cleanup, err := logging.New(cfg)
	if err != nil {
		logger = zap.NewNop()
		cleanup = func() {}
	}
	defer cleanup()

	// Transcript storage is optional. A broken database degrades to an
	// in-memory session instead of blocking the UI.
	var store *storage.TranscriptStore
	savedCount := 0
	if dbPath, err := cfg.DatabasePath(); err == nil {
		if s, err := storage.NewTranscriptStore(dbPath, cfg.Storage.MaxTranscripts); err == nil {
			store = s
			if n, err := s.Count(context.Background()); err == nil {
				savedCount = n
			}
		} else {
			logger.Warn("transcript store unavailable", zap.Error(err))
		}
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	engine := chatbot.NewEngine(logger)
	sess := session.NewManager(session.OptionsFromConfig(cfg))
	theme := styles.NewTheme()

	welcome := components.NewWelcome(theme)
	welcome.SetVersion(Version)
	if dataDir, err := cfg.DataDir(); err == nil {
		welcome.SetDataDir(dataDir)
	}
	welcome.SetSavedTranscripts(savedCount)

	chatModel := chat.New(theme, chat.Deps{
		Config:  cfg,
		Engine:  engine,
		Store:   store,
		Session: sess,
		Logger:  logger,
	})

	app := App{
		state:   stateWelcome,
		welcome: welcome,
		chat:    chatModel,
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Quit messages never reach the model, so the exit autosave and the
	// farewell both run here, after the alternate screen is gone.
	if a, ok := final.(App); ok {
		if err := a.chat.AutoSaveOnExit(context.Background()); err != nil {
			logger.Warn("autosave on exit failed", zap.Error(err))
		}
		if a.chat.Farewell() {
			fmt.Println(chatbot.ReplyFarewell)
		}
	}
}
