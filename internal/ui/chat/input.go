// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/morganforge/wardbot/internal/commands"
)

// =============================================================================
// KEY HANDLING
// =============================================================================

// handleKey routes one keypress.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Every keystroke counts as activity for the idle timer.
	if m.sess != nil {
		m.sess.RecordActivity()
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		if m.prompt != promptChat {
			return m.cancelLogin(), nil
		}
		m.lastError = nil
		m.refreshViewport()
		return m, nil

	case tea.KeyEnter:
		return m.handleSubmit()

	case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// INPUT SUBMISSION
// =============================================================================

// handleSubmit processes the current input line.
func (m Model) handleSubmit() (Model, tea.Cmd) {
	value := m.input.Value()

	// The login form accepts blank submissions; validation waits for both
	// fields, so the buffer always clears here.
	switch m.prompt {
	case promptLoginID:
		m.input.SetValue("")
		m.lastError = nil
		return m.submitLoginID(value), nil
	case promptLoginName:
		m.input.SetValue("")
		m.lastError = nil
		return m.submitLoginName(value), nil
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		// Blank chat input is a full no-op: nothing appended, nothing
		// replied, and the buffer keeps whatever was typed.
		return m, nil
	}
	m.input.SetValue("")
	m.lastError = nil

	// Slash commands go to the command system, not the chatbot.
	if commands.IsCommand(trimmed) {
		return m, commands.Execute(m.parser, m.cmdCtx, trimmed)
	}

	m.conversation.AddUserMessage(trimmed)
	m.markDirty()

	outcome := m.engine.Handle(trimmed)
	for _, line := range outcome.Replies {
		m.conversation.AddBotMessage(line)
	}
	m.setStaffID()
	m.refreshViewport()

	if outcome.StartLogin {
		return m.startLogin(), nil
	}
	if outcome.Farewell {
		m.farewell = true
		return m, tea.Quit
	}
	return m, nil
}

// =============================================================================
// LOGIN FORM
// =============================================================================

// startLogin switches the input line into the two-step login form.
func (m Model) startLogin() Model {
	m.prompt = promptLoginID
	m.pendingStaffID = ""
	m.input.Placeholder = "e.g. DOC_001"
	m.addSystemMessage("Login: enter your staff ID (Esc to cancel).")
	return m
}

// submitLoginID records the staff ID and asks for the name. Validation waits
// until both fields are in, so a blank ID still moves to the name prompt.
func (m Model) submitLoginID(value string) Model {
	m.pendingStaffID = strings.TrimSpace(value)
	m.prompt = promptLoginName
	m.input.Placeholder = "Full name"
	return m
}

// submitLoginName completes the form and hands both fields to the engine.
func (m Model) submitLoginName(value string) Model {
	staffID := m.pendingStaffID
	name := strings.TrimSpace(value)

	m = m.endLoginPrompt()

	outcome := m.engine.Login(staffID, name)
	for _, line := range outcome.Replies {
		m.conversation.AddBotMessage(line)
	}
	if m.engine.LoggedIn() {
		m.setStaffID()
		m.logger.Debug("login form completed",
			zap.String("staff_id", staffID))
	}
	m.markDirty()
	m.refreshViewport()
	return m
}

// cancelLogin abandons the login form.
func (m Model) cancelLogin() Model {
	m = m.endLoginPrompt()
	m.addSystemMessage("Login cancelled.")
	return m
}

// endLoginPrompt restores the normal chat prompt.
func (m Model) endLoginPrompt() Model {
	m.prompt = promptChat
	m.pendingStaffID = ""
	m.input.Placeholder = "Type a message..."
	return m
}
