// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/wardbot/internal/ui/styles"
)

func TestWelcome_View(t *testing.T) {
	w := NewWelcome(styles.NewTheme())
	w.SetVersion("1.2.3")
	w.SetDataDir("/home/alice/.wardbot")
	w.SetSavedTranscripts(4)
	w.SetSize(100, 40)

	out := w.View()
	for _, want := range []string{
		"Hospital Staff Assistant v1.2.3",
		"/home/alice/.wardbot",
		"4 saved",
		"Press any key to continue...",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("welcome view missing %q", want)
		}
	}
}

func TestWelcome_NarrowTerminal(t *testing.T) {
	w := NewWelcome(styles.NewTheme())
	w.SetSize(44, 10)

	out := w.View()
	if !strings.Contains(out, "wardbot") {
		t.Error("compact view should still show the logo text")
	}
}

func TestWelcome_WindowSizeMsg(t *testing.T) {
	w := NewWelcome(styles.NewTheme())
	w, _ = w.Update(tea.WindowSizeMsg{Width: 90, Height: 30})

	if w.width != 90 || w.height != 30 {
		t.Errorf("size = %dx%d, want 90x30", w.width, w.height)
	}
}

func TestKeyboardShortcuts(t *testing.T) {
	out := KeyboardShortcuts()
	for _, want := range []string{"Keyboard Shortcuts", "Enter", "Ctrl+C"} {
		if !strings.Contains(out, want) {
			t.Errorf("shortcuts missing %q", want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0 saved"},
		{1, "1 saved"},
		{12, "12 saved"},
	}
	for _, tc := range tests {
		if got := formatCount(tc.in); got != tc.want {
			t.Errorf("formatCount(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
