// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatbot

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/morganforge/wardbot/internal/model"
)

// =============================================================================
// OUTCOME
// =============================================================================

// Outcome is what the front end does with one handled input. Replies are
// appended to the conversation as bot messages in order. The flags ask the
// front end to start its login flow or end the session; the engine itself
// stays UI-agnostic so the TUI and the line REPL share it.
type Outcome struct {
	Replies    []string
	StartLogin bool
	Farewell   bool
}

// reply builds an Outcome from bot reply lines.
func reply(lines ...string) Outcome {
	return Outcome{Replies: lines}
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine holds the chatbot state: the logged-in staff member, if any.
// It is not safe for concurrent use; both front ends drive it from a
// single goroutine.
type Engine struct {
	user   *model.UserProfile
	logger *zap.Logger

	titler cases.Caser
}

// NewEngine creates an engine with no user logged in. A nil logger is
// replaced with a no-op logger.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		logger: logger,
		titler: cases.Title(language.English),
	}
}

// LoggedIn returns true when a staff member is logged in.
func (e *Engine) LoggedIn() bool {
	return e.user != nil
}

// Profile returns the logged-in staff profile, or nil.
func (e *Engine) Profile() *model.UserProfile {
	return e.user
}

// Role returns the current role, StaffRoleNone when logged out.
func (e *Engine) Role() model.StaffRole {
	if e.user == nil {
		return model.StaffRoleNone
	}
	return e.user.Role
}

// =============================================================================
// INPUT HANDLING
// =============================================================================

// Handle classifies one line of user input and returns the outcome.
// Empty input yields an empty outcome: nothing to append, nothing to say.
func (e *Engine) Handle(input string) Outcome {
	c, err := Classify(input, e.LoggedIn(), e.Role())
	if err != nil {
		// Only reachable with a corrupted role value. Log it loudly and
		// tell the user something went wrong rather than staying silent.
		e.logger.Error("classifier rejected session state",
			zap.String("input", input),
			zap.Error(err))
		return reply("Something went wrong with your session. Please logout and login again.")
	}

	e.logger.Debug("classified input",
		zap.String("kind", c.Kind.String()),
		zap.String("command", c.Command))

	switch c.Kind {
	case KindNone:
		return Outcome{}

	case KindGreeting:
		return reply(ReplyGreeting)

	case KindFarewell:
		return e.handleFarewell()

	case KindThanks:
		return reply(ReplyThanks)

	case KindApology:
		return reply(ReplyApology)

	case KindHelp:
		return reply(e.HelpText())

	case KindLogin:
		if e.LoggedIn() {
			return reply(ReplyAlreadyIn)
		}
		return Outcome{StartLogin: true}

	case KindLogout:
		return e.Logout()

	case KindMustLogin:
		return reply(ReplyMustLogin)

	case KindCommonCommand:
		return reply(fmt.Sprintf("Executing %s command...", c.Command))

	case KindRoleCommand:
		return reply(fmt.Sprintf("Executing %s command for %s...", c.Command, e.user.Role))

	default:
		return reply(ReplyUnmatched)
	}
}

// handleFarewell logs out the current user, then says goodbye and asks the
// front end to end the session.
func (e *Engine) handleFarewell() Outcome {
	var lines []string
	if e.LoggedIn() {
		lines = append(lines, e.logoutMessage())
		e.clearUser()
	}
	lines = append(lines, ReplyFarewell)
	return Outcome{Replies: lines, Farewell: true}
}

// =============================================================================
// LOGIN / LOGOUT
// =============================================================================

// Login validates the collected credentials and logs the staff member in.
// The staff ID is uppercased and the name title-cased before storing, so
// "doc_001"/"alice smith" and "DOC_001"/"Alice Smith" are the same user.
// On success the welcome reply is followed by the help text.
func (e *Engine) Login(staffID, name string) Outcome {
	if e.LoggedIn() {
		return reply(ReplyAlreadyIn)
	}

	staffID = strings.ToUpper(strings.TrimSpace(staffID))
	name = e.titler.String(strings.TrimSpace(name))

	if staffID == "" || name == "" {
		return reply(ReplyFieldsNeeded)
	}

	role, err := model.ParseStaffID(staffID)
	if err != nil {
		e.logger.Info("rejected staff ID", zap.String("staff_id", staffID))
		return reply(ReplyBadStaffID)
	}

	e.user = model.NewUserProfile(staffID, name, role)
	e.logger.Info("staff login",
		zap.String("staff_id", staffID),
		zap.String("role", role.String()))

	welcome := fmt.Sprintf("Welcome, %s! You're logged in as %s.", name, role)
	return reply(welcome, e.HelpText())
}

// Logout logs the current staff member out.
func (e *Engine) Logout() Outcome {
	if !e.LoggedIn() {
		return reply(ReplyNotLoggedIn)
	}
	msg := e.logoutMessage()
	e.clearUser()
	return reply(msg)
}

func (e *Engine) logoutMessage() string {
	return fmt.Sprintf("Goodbye, %s! You've been logged out.", e.user.Name)
}

func (e *Engine) clearUser() {
	e.logger.Info("staff logout", zap.String("staff_id", e.user.ID))
	e.user = nil
}

// =============================================================================
// HELP TEXT
// =============================================================================

// HelpText renders the command listing: every common command with its first
// three trigger phrases, and the current role's commands with their first
// two phrases when logged in.
func (e *Engine) HelpText() string {
	var b strings.Builder

	b.WriteString("Available commands:\n\n")
	b.WriteString("General commands:\n")
	for _, spec := range CommonCommands {
		writeHelpLine(&b, spec, 3)
	}

	if e.LoggedIn() {
		table, err := RoleCommands(e.user.Role)
		if err != nil {
			// The profile was built by ParseStaffID, so this cannot
			// happen without memory corruption. Surface it anyway.
			e.logger.Error("no command table for logged-in role",
				zap.String("role", e.user.Role.String()),
				zap.Error(err))
			return b.String()
		}
		b.WriteString("\n")
		b.WriteString(e.user.Role.Heading())
		b.WriteString(" commands:\n")
		for _, spec := range table {
			writeHelpLine(&b, spec, 2)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// writeHelpLine writes "- name: phrase, phrase..." using at most n phrases.
func writeHelpLine(b *strings.Builder, spec CommandSpec, n int) {
	if n > len(spec.Phrases) {
		n = len(spec.Phrases)
	}
	b.WriteString("- ")
	b.WriteString(spec.Name)
	b.WriteString(": ")
	b.WriteString(strings.Join(spec.Phrases[:n], ", "))
	b.WriteString("...\n")
}
