// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the chat screen: header, transcript, input line, status bar.
func (m Model) View() string {
	if !m.ready {
		return "Starting wardbot..."
	}

	var sections []string
	if !m.compactMode() {
		sections = append(sections, m.renderHeader())
	}
	sections = append(sections, m.viewport.View())
	sections = append(sections, m.renderInput())
	sections = append(sections, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// compactMode reports whether the dense layout is configured: no title
// bar, messages as single lines instead of bubbles.
func (m Model) compactMode() bool {
	return m.cfg != nil && m.cfg.UI.CompactMode
}

// renderHeader renders the one-line title bar.
func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("wardbot")
	subtitle := m.theme.HeaderSubtitle.Render("Hospital Staff Assistant")
	line := title + "  " + subtitle
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line)
}

// renderInput renders the input line, switching the prompt label during the
// login form.
func (m Model) renderInput() string {
	var label string
	switch m.prompt {
	case promptLoginID:
		label = m.theme.LoginPrompt.Render("Staff ID: ")
	case promptLoginName:
		label = m.theme.LoginPrompt.Render("Name: ")
	}

	line := m.input.View()
	if label != "" {
		line = label + line
	}
	return m.theme.InputContainer.Width(m.width - 2).Render(line)
}

// renderStatusBar renders login state, idle countdown, and key hints.
func (m Model) renderStatusBar() string {
	var left string
	if m.engine.LoggedIn() {
		p := m.engine.Profile()
		badge := m.theme.RoleBadge(p.Role).Render(p.Role.Heading())
		left = m.theme.LoggedIn.Render(p.Name) + " " + badge
	} else {
		left = m.theme.LoggedOut.Render("not logged in")
	}

	if m.statusMsg != "" {
		left += "  " + m.theme.IdleWarning.Render(m.statusMsg)
	} else if m.sess != nil && m.sess.IsDirty() {
		left += "  " + m.theme.ShortcutDesc.Render("unsaved")
	}

	right := m.renderShortcuts()

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	bar := left + strings.Repeat(" ", gap) + right
	return m.theme.StatusBar.Width(m.width).Render(bar)
}

// renderShortcuts renders the key hint block on the right of the status bar.
func (m Model) renderShortcuts() string {
	hints := []struct {
		key  string
		desc string
	}{
		{"/help", "commands"},
		{"Ctrl+C", "quit"},
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = m.theme.ShortcutKey.Render(h.key) + " " +
			m.theme.ShortcutDesc.Render(h.desc)
	}
	return strings.Join(parts, "  ")
}
