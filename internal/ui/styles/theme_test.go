// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/morganforge/wardbot/internal/model"
)

func TestNewTheme_StylesInitialized(t *testing.T) {
	theme := NewTheme()

	// Rendering through an initialized style must preserve the text.
	for name, out := range map[string]string{
		"UserBubble":   theme.UserBubble.Render("hello"),
		"BotBubble":    theme.BotBubble.Render("hello"),
		"SystemBubble": theme.SystemBubble.Render("hello"),
		"StatusBar":    theme.StatusBar.Render("hello"),
		"ErrorTitle":   theme.ErrorTitle.Render("hello"),
	} {
		if !strings.Contains(out, "hello") {
			t.Errorf("%s.Render dropped content: %q", name, out)
		}
	}
}

func TestTheme_RoleBadge(t *testing.T) {
	theme := NewTheme()

	for _, role := range []model.StaffRole{
		model.StaffRoleDoctor,
		model.StaffRoleNurse,
		model.StaffRoleAdmin,
	} {
		out := theme.RoleBadge(role).Render(role.Heading())
		if !strings.Contains(out, role.Heading()) {
			t.Errorf("RoleBadge(%v) dropped content: %q", role, out)
		}
	}

	// Unknown role falls back to the logged-out style without panicking.
	out := theme.RoleBadge(model.StaffRoleNone).Render("nobody")
	if !strings.Contains(out, "nobody") {
		t.Errorf("RoleBadge fallback dropped content: %q", out)
	}
}

func TestStatusIndicators_ASCIIOnly(t *testing.T) {
	for _, s := range []string{
		StatusIndicators.Success,
		StatusIndicators.Error,
		StatusIndicators.Warning,
		StatusIndicators.Info,
	} {
		for _, r := range s {
			if r > 127 {
				t.Errorf("indicator %q contains non-ASCII rune %q", s, r)
			}
		}
	}
}

func TestRenderHelpers(t *testing.T) {
	tests := []struct {
		out  string
		want string
	}{
		{RenderSuccess("saved"), "[OK] saved"},
		{RenderError("failed"), "[X] failed"},
		{RenderWarning("idle"), "[!] idle"},
		{RenderInfo("note"), "[i] note"},
	}
	for _, tc := range tests {
		if !strings.Contains(tc.out, tc.want) {
			t.Errorf("render output %q missing %q", tc.out, tc.want)
		}
	}
}
