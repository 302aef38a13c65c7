// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/morganforge/wardbot/internal/chatbot"
	"github.com/morganforge/wardbot/internal/model"
	"github.com/morganforge/wardbot/internal/session"
)

// newTestChatSession builds a session without touching the terminal, the
// config dir, or the database.
func newTestChatSession(opts session.Options) *ChatSession {
	sess := session.NewManager(opts)
	s := &ChatSession{
		Engine:       chatbot.NewEngine(nil),
		Conversation: model.NewConversation(),
		Session:      sess,
		styles:       newREPLStyles(),
	}
	sess.SetIdleLogoutCallback(s.idleLogout)
	return s
}

func TestIdleLogout_FiresThroughCheck(t *testing.T) {
	s := newTestChatSession(session.Options{
		IdleTimeout: 10 * time.Millisecond,
		WarnBefore:  5 * time.Millisecond,
	})

	s.Engine.Login("DOC_001", "Alice Smith")
	if !s.Engine.LoggedIn() {
		t.Fatal("login failed")
	}

	time.Sleep(20 * time.Millisecond)
	s.Session.Check()

	if s.Engine.LoggedIn() {
		t.Error("engine still logged in after idle expiry")
	}
	last := s.Conversation.GetLastBotMessage()
	if last == nil || !strings.Contains(last.Text, "Goodbye, Alice Smith!") {
		t.Error("logout goodbye not recorded in the transcript")
	}
}

func TestIdleLogout_ActivityResetsTimer(t *testing.T) {
	s := newTestChatSession(session.Options{
		IdleTimeout: 50 * time.Millisecond,
		WarnBefore:  10 * time.Millisecond,
	})

	s.Engine.Login("NUR_007", "Bob Jones")
	time.Sleep(20 * time.Millisecond)
	s.Session.RecordActivity()
	s.Session.Check()

	if !s.Engine.LoggedIn() {
		t.Error("activity should have reset the idle timer")
	}
}

func TestIdleLogout_NoOpWhileLoggedOut(t *testing.T) {
	s := newTestChatSession(session.Options{
		IdleTimeout: time.Millisecond,
		WarnBefore:  time.Millisecond,
	})

	before := s.Conversation.MessageCount()
	time.Sleep(5 * time.Millisecond)
	s.Session.Check()

	if got := s.Conversation.MessageCount(); got != before {
		t.Errorf("message count = %d, want %d", got, before)
	}
}
