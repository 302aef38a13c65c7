// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/morganforge/wardbot/internal/model"
)

func testConversation() *model.Conversation {
	conv := model.NewConversation()
	conv.Title = "Morning rounds"
	conv.StaffID = "DOC_001"
	conv.AddUserMessage("hello")
	conv.AddBotMessage("Hello! How can I assist you today?")
	return conv
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{"md", ".md", false},
		{"markdown", ".md", false},
		{"json", ".json", false},
		{"txt", ".txt", false},
		{"text", ".txt", false},
		{"pdf", "", true},
	}
	for _, tc := range tests {
		exp, err := ForFormat(tc.format, nil)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ForFormat(%q) expected error", tc.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForFormat(%q) failed: %v", tc.format, err)
			continue
		}
		if exp.FileExtension() != tc.wantExt {
			t.Errorf("ForFormat(%q) extension = %q, want %q",
				tc.format, exp.FileExtension(), tc.wantExt)
		}
	}
}

func TestMarkdownExporter(t *testing.T) {
	content, err := NewMarkdownExporter(nil).Export(testConversation())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	out := string(content)
	for _, want := range []string{
		"title: Morning rounds",
		"staff_id: DOC_001",
		"# Morning rounds",
		"## Conversation",
		"[You]",
		"[Chatbot]",
		"Hello! How can I assist you today?",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
}

func TestMarkdownExporter_Empty(t *testing.T) {
	conv := model.NewConversation()
	if _, err := NewMarkdownExporter(nil).Export(conv); err == nil {
		t.Error("expected error for empty conversation")
	}
	if _, err := NewMarkdownExporter(nil).Export(nil); err == nil {
		t.Error("expected error for nil conversation")
	}
}

func TestJSONExporter_RoundTrip(t *testing.T) {
	conv := testConversation()
	content, err := NewJSONExporter(nil).Export(conv)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var decoded struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		StaffID  string `json:"staff_id"`
		Messages []struct {
			Sender string `json:"sender"`
			Text   string `json:"text"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(content, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.ID != conv.ID {
		t.Errorf("id = %q, want %q", decoded.ID, conv.ID)
	}
	if decoded.StaffID != "DOC_001" {
		t.Errorf("staff_id = %q, want DOC_001", decoded.StaffID)
	}
	if len(decoded.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(decoded.Messages))
	}
	if decoded.Messages[0].Sender != "user" || decoded.Messages[0].Text != "hello" {
		t.Errorf("first message = %+v, want user hello", decoded.Messages[0])
	}
}

func TestTextExporter(t *testing.T) {
	content, err := NewTextExporter(nil).Export(testConversation())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	out := string(content)
	if !strings.Contains(out, "Staff ID: DOC_001") {
		t.Errorf("text output missing staff ID header: %q", out)
	}
	if !strings.Contains(out, "You: hello") {
		t.Errorf("text output missing user line: %q", out)
	}
	if !strings.Contains(out, "Chatbot: Hello! How can I assist you today?") {
		t.Errorf("text output missing bot line: %q", out)
	}
}

func TestExportToFile(t *testing.T) {
	opts := DefaultOptions()
	opts.OutputDir = t.TempDir()

	path, err := ExportToFile(testConversation(), NewTextExporter(opts), opts)
	if err != nil {
		t.Fatalf("ExportToFile failed: %v", err)
	}

	if filepath.Dir(path) != opts.OutputDir {
		t.Errorf("output dir = %q, want %q", filepath.Dir(path), opts.OutputDir)
	}
	base := filepath.Base(path)
	if !strings.HasPrefix(base, "transcript_Morning_rounds_") || !strings.HasSuffix(base, ".txt") {
		t.Errorf("unexpected filename %q", base)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("exported file not readable: %v", err)
	}
	if !strings.Contains(string(data), "You: hello") {
		t.Errorf("exported file missing content: %q", string(data))
	}
}

func TestExportToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")

	if err := ExportToPath(testConversation(), NewJSONExporter(nil), path); err != nil {
		t.Fatalf("ExportToPath failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("exported file missing: %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Morning rounds", "Morning_rounds"},
		{"a/b\\c:d", "a-b-c-d"},
		{"", "transcript"},
	}
	for _, tc := range tests {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
