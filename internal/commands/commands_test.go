// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"context"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/wardbot/internal/chatbot"
	"github.com/morganforge/wardbot/internal/config"
	"github.com/morganforge/wardbot/internal/model"
	"github.com/morganforge/wardbot/internal/storage"
)

// run executes a tea.Cmd and returns the message it produces.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	return cmd()
}

// =============================================================================
// REGISTRY TESTS
// =============================================================================

func TestRegistry_GetByNameAndAlias(t *testing.T) {
	r := NewRegistry()

	if cmd := r.Get("/help"); cmd == nil || cmd.Name != "/help" {
		t.Error("Get(/help) should return the help command")
	}
	if cmd := r.Get("/h"); cmd == nil || cmd.Name != "/help" {
		t.Error("alias /h should resolve to /help")
	}
	if cmd := r.Get("/q"); cmd == nil || cmd.Name != "/quit" {
		t.Error("alias /q should resolve to /quit")
	}
	if cmd := r.Get("/bogus"); cmd != nil {
		t.Error("Get(/bogus) should return nil")
	}
}

func TestRegistry_ByCategory(t *testing.T) {
	byCategory := NewRegistry().ByCategory()

	for _, category := range []string{"Navigation", "Transcript", "Account", "Settings"} {
		if len(byCategory[category]) == 0 {
			t.Errorf("category %q has no commands", category)
		}
	}
}

// =============================================================================
// PARSER TESTS
// =============================================================================

func TestParser_Parse(t *testing.T) {
	parser := NewParser(NewRegistry())

	tests := []struct {
		input       string
		isCommand   bool
		commandName string
		args        []string
	}{
		{"hello there", false, "", nil},
		{"/help", true, "/help", nil},
		{"/HELP", true, "/help", nil},
		{"/load conv_1234", true, "/load", []string{"conv_1234"}},
		{`/save "Morning rounds"`, true, "/save", []string{"Morning rounds"}},
		{"/save 'ER handoff'", true, "/save", []string{"ER handoff"}},
		{"  /quit  ", true, "/quit", nil},
		{"/export md out.md", true, "/export", []string{"md", "out.md"}},
	}

	for _, tc := range tests {
		result := parser.Parse(tc.input)
		if result.IsCommand != tc.isCommand {
			t.Errorf("Parse(%q).IsCommand = %v, want %v", tc.input, result.IsCommand, tc.isCommand)
			continue
		}
		if !tc.isCommand {
			continue
		}
		if result.CommandName != tc.commandName {
			t.Errorf("Parse(%q).CommandName = %q, want %q", tc.input, result.CommandName, tc.commandName)
		}
		if !reflect.DeepEqual(result.Args, tc.args) {
			t.Errorf("Parse(%q).Args = %v, want %v", tc.input, result.Args, tc.args)
		}
	}
}

func TestParser_UnknownCommand(t *testing.T) {
	parser := NewParser(NewRegistry())

	result := parser.Parse("/nonsense")
	if !result.IsCommand {
		t.Fatal("input with / prefix should be a command")
	}
	if result.Command != nil {
		t.Error("unknown command should not resolve")
	}
}

func TestValidateArgs(t *testing.T) {
	r := NewRegistry()

	load := r.Get("/load")
	if err := ValidateArgs(load, nil); err == nil {
		t.Error("missing required arg should fail validation")
	}
	if err := ValidateArgs(load, []string{"conv_1234"}); err != nil {
		t.Errorf("valid args rejected: %v", err)
	}

	theme := r.Get("/theme")
	if err := ValidateArgs(theme, []string{"neon"}); err == nil {
		t.Error("invalid enum value should fail validation")
	}
	if err := ValidateArgs(theme, []string{"Dark"}); err != nil {
		t.Errorf("enum match should be case-insensitive: %v", err)
	}
}

// =============================================================================
// EXECUTE TESTS
// =============================================================================

func TestExecute_NotACommand(t *testing.T) {
	parser := NewParser(NewRegistry())
	if cmd := Execute(parser, nil, "hello"); cmd != nil {
		t.Error("plain chat input should not produce a command")
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	parser := NewParser(NewRegistry())

	msg := run(t, Execute(parser, nil, "/bogus"))
	errMsg, ok := msg.(ErrorMsg)
	if !ok {
		t.Fatalf("got %T, want ErrorMsg", msg)
	}
	if !strings.Contains(errMsg.Message, "/bogus") {
		t.Errorf("error should name the command: %q", errMsg.Message)
	}
}

func TestExecute_MissingArgs(t *testing.T) {
	parser := NewParser(NewRegistry())

	msg := run(t, Execute(parser, nil, "/load"))
	if _, ok := msg.(ErrorMsg); !ok {
		t.Fatalf("got %T, want ErrorMsg", msg)
	}
}

func TestExecute_Save(t *testing.T) {
	parser := NewParser(NewRegistry())

	msg := run(t, Execute(parser, nil, "/save Morning rounds"))
	saveMsg, ok := msg.(SaveTranscriptMsg)
	if !ok {
		t.Fatalf("got %T, want SaveTranscriptMsg", msg)
	}
	if saveMsg.Title != "Morning rounds" {
		t.Errorf("Title = %q, want Morning rounds", saveMsg.Title)
	}
}

// =============================================================================
// HANDLER TESTS
// =============================================================================

func testContext(t *testing.T) *Context {
	t.Helper()
	store, err := storage.NewTranscriptStore(
		filepath.Join(t.TempDir(), "transcripts.db"), 0)
	if err != nil {
		t.Fatalf("NewTranscriptStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewContext(config.Default(), chatbot.NewEngine(nil), store, nil, nil)
}

func TestHandleLoad_RoundTrip(t *testing.T) {
	ctx := testContext(t)

	conv := model.NewConversation()
	conv.AddUserMessage("hello")
	if err := ctx.Store.Save(context.Background(), conv); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	msg := run(t, HandleLoad(ctx, []string{conv.ID}))
	loaded, ok := msg.(TranscriptLoadedMsg)
	if !ok {
		t.Fatalf("got %T, want TranscriptLoadedMsg", msg)
	}
	if loaded.Error != nil {
		t.Fatalf("load error: %v", loaded.Error)
	}
	if loaded.Conversation.ID != conv.ID {
		t.Errorf("loaded ID = %q, want %q", loaded.Conversation.ID, conv.ID)
	}
}

func TestHandleLoad_Missing(t *testing.T) {
	ctx := testContext(t)

	msg := run(t, HandleLoad(ctx, []string{"conv_nope"}))
	loaded, ok := msg.(TranscriptLoadedMsg)
	if !ok {
		t.Fatalf("got %T, want TranscriptLoadedMsg", msg)
	}
	if loaded.Error == nil {
		t.Error("expected error for missing transcript")
	}
}

func TestHandleSessionsAndDelete(t *testing.T) {
	ctx := testContext(t)

	conv := model.NewConversation()
	conv.AddUserMessage("hello")
	if err := ctx.Store.Save(context.Background(), conv); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	msg := run(t, HandleSessions(ctx, nil))
	list, ok := msg.(TranscriptListMsg)
	if !ok {
		t.Fatalf("got %T, want TranscriptListMsg", msg)
	}
	if len(list.Transcripts) != 1 {
		t.Fatalf("listed %d transcripts, want 1", len(list.Transcripts))
	}

	msg = run(t, HandleDelete(ctx, []string{conv.ID}))
	deleted, ok := msg.(TranscriptDeletedMsg)
	if !ok {
		t.Fatalf("got %T, want TranscriptDeletedMsg", msg)
	}
	if deleted.Error != nil {
		t.Errorf("delete error: %v", deleted.Error)
	}
}

func TestHandleExport_Validation(t *testing.T) {
	msg := run(t, HandleExport(nil, []string{"pdf"}))
	if _, ok := msg.(ErrorMsg); !ok {
		t.Fatalf("got %T, want ErrorMsg", msg)
	}

	msg = run(t, HandleExport(nil, []string{"json", "out.json"}))
	exportMsg, ok := msg.(ExportTranscriptMsg)
	if !ok {
		t.Fatalf("got %T, want ExportTranscriptMsg", msg)
	}
	if exportMsg.Format != "json" || exportMsg.Path != "out.json" {
		t.Errorf("export = %+v, want json out.json", exportMsg)
	}

	// Default format is markdown.
	msg = run(t, HandleExport(nil, nil))
	if got := msg.(ExportTranscriptMsg).Format; got != "md" {
		t.Errorf("default format = %q, want md", got)
	}
}

func TestHandleWhoami(t *testing.T) {
	ctx := testContext(t)

	msg := run(t, HandleWhoami(ctx, nil))
	sys, ok := msg.(SystemMessageMsg)
	if !ok {
		t.Fatalf("got %T, want SystemMessageMsg", msg)
	}
	if sys.Content != "No user is currently logged in." {
		t.Errorf("logged-out whoami = %q", sys.Content)
	}

	ctx.Engine.Login("DOC_001", "Alice Smith")
	msg = run(t, HandleWhoami(ctx, nil))
	sys = msg.(SystemMessageMsg)
	for _, want := range []string{"DOC_001", "Alice Smith", "doctor"} {
		if !strings.Contains(sys.Content, want) {
			t.Errorf("whoami output missing %q: %q", want, sys.Content)
		}
	}
}

func TestHandleConfig_Show(t *testing.T) {
	ctx := testContext(t)

	msg := run(t, HandleConfig(ctx, []string{"ui.theme"}))
	sys, ok := msg.(SystemMessageMsg)
	if !ok {
		t.Fatalf("got %T, want SystemMessageMsg", msg)
	}
	if !strings.Contains(sys.Content, "ui.theme = dark") {
		t.Errorf("config show = %q, want ui.theme = dark", sys.Content)
	}

	msg = run(t, HandleConfig(ctx, []string{"no.such.key"}))
	if _, ok := msg.(ErrorMsg); !ok {
		t.Fatalf("got %T, want ErrorMsg", msg)
	}
}

// =============================================================================
// COMPLETION TESTS
// =============================================================================

func TestCompleteCommand(t *testing.T) {
	r := NewRegistry()

	completions := CompleteCommand(r, "/s")
	var values []string
	for _, c := range completions {
		values = append(values, c.Value)
	}
	joined := strings.Join(values, " ")
	for _, want := range []string{"/save", "/sessions", "/status"} {
		if !strings.Contains(joined, want) {
			t.Errorf("completions for /s missing %q: %v", want, values)
		}
	}

	if got := CompleteCommand(r, "hello"); got != nil {
		t.Errorf("non-command prefix should yield nil, got %v", got)
	}

	// Alias completes to the primary name without duplicates.
	completions = CompleteCommand(r, "/h")
	seen := map[string]int{}
	for _, c := range completions {
		seen[c.Value]++
	}
	if seen["/help"] != 1 {
		t.Errorf("expected exactly one /help completion, got %d", seen["/help"])
	}
}

func TestHelpListing(t *testing.T) {
	listing := HelpListing(NewRegistry())

	for _, want := range []string{"Navigation:", "Transcript:", "/help", "/export [format] [path]"} {
		if !strings.Contains(listing, want) {
			t.Errorf("help listing missing %q", want)
		}
	}
}
