// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the wardbot TUI.
package components

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/wardbot/internal/ui/styles"
)

// =============================================================================
// WELCOME SCREEN MODEL
// =============================================================================

// Welcome is the welcome screen component shown before the chat opens.
type Welcome struct {
	// Display info
	version  string
	dataDir  string
	saved    int
	hasSaved bool

	// Dimensions
	width  int
	height int

	// Theme
	theme *styles.Theme
}

// NewWelcome creates a new welcome screen.
func NewWelcome(theme *styles.Theme) Welcome {
	return Welcome{
		version: "dev",
		theme:   theme,
	}
}

// SetVersion sets the version string.
func (w *Welcome) SetVersion(version string) {
	w.version = version
}

// SetDataDir sets the data directory shown in the system info block.
func (w *Welcome) SetDataDir(dir string) {
	w.dataDir = dir
}

// SetSavedTranscripts sets the saved transcript count.
func (w *Welcome) SetSavedTranscripts(n int) {
	w.saved = n
	w.hasSaved = true
}

// SetSize updates the dimensions.
func (w *Welcome) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the welcome screen.
func (w Welcome) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (w Welcome) Update(msg tea.Msg) (Welcome, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
	}
	return w, nil
}

// View renders the welcome screen.
// Responsive: adapts to terminal size, minimum 80x24 supported.
func (w Welcome) View() string {
	width := w.width
	if width == 0 {
		width = 80
	}
	height := w.height
	if height == 0 {
		height = 24
	}

	// Box width responsive to terminal width
	boxWidth := 62
	if width < 70 {
		boxWidth = width - 8
	}
	if boxWidth < 40 {
		boxWidth = 40
	}
	if boxWidth > width-4 {
		boxWidth = width - 4
	}

	horizontalPadding := 4
	verticalPadding := 1
	if width < 70 {
		horizontalPadding = 2
	}

	boxOverhead := 2 + 2*verticalPadding
	availableContentLines := height - boxOverhead

	var content string
	switch {
	case availableContentLines >= 18:
		content = w.renderLogo()
		content += "\n\n" + w.renderVersion()
		content += "\n\n" + w.renderSystemInfo()
		content += "\n\n" + w.renderPressKey()
	case availableContentLines >= 12:
		content = w.renderLogo()
		content += "\n" + w.renderVersion()
		content += "\n" + w.renderSystemInfo()
		content += "\n" + w.renderPressKey()
	default:
		content = w.renderLogoCompact()
		content += "\n" + w.renderVersion()
		content += "\n" + w.renderPressKey()
	}

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(styles.Purple).
		Padding(verticalPadding, horizontalPadding).
		Width(boxWidth).
		Align(lipgloss.Center).
		Render(content)

	boxHeight := lipgloss.Height(box)

	// Align to top when the box overflows so the logo stays visible.
	if boxHeight >= height {
		return lipgloss.Place(
			width, height,
			lipgloss.Center, lipgloss.Top,
			box,
		)
	}
	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

// =============================================================================
// RENDER HELPERS
// =============================================================================

// renderLogo renders the ASCII art logo (6 lines).
func (w Welcome) renderLogo() string {
	logoStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	// Full ASCII art is ~52 chars wide, needs ~56 with box padding
	if w.width >= 60 {
		logo := `                     _ _           _
 __      ____ _ _ __| | |__   ___ | |_
 \ \ /\ / / _' | '__| | '_ \ / _ \| __|
  \ V  V / (_| | |  | | |_) | (_) | |_
   \_/\_/ \__,_|_|  |_|_.__/ \___/ \__|
                                       `
		return logoStyle.Render(logo)
	}

	return w.renderLogoCompact()
}

// renderLogoCompact renders a compact text-based logo (3 lines).
func (w Welcome) renderLogoCompact() string {
	logoStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	if w.width >= 40 {
		return logoStyle.Render(`+--------------------+
|      wardbot       |
+--------------------+`)
	}

	return logoStyle.Render("wardbot - Hospital Staff Assistant")
}

// renderVersion renders the version subtitle.
func (w Welcome) renderVersion() string {
	return lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true).
		Render("Hospital Staff Assistant v" + w.version)
}

// renderSystemInfo renders the data directory and transcript count.
func (w Welcome) renderSystemInfo() string {
	labelStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Width(13)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	lines := []string{
		labelStyle.Render("Login: ") + valueStyle.Render("type 'login' in chat"),
	}
	if w.dataDir != "" {
		lines = append(lines,
			labelStyle.Render("Data dir: ")+valueStyle.Render(w.dataDir))
	}
	if w.hasSaved {
		lines = append(lines,
			labelStyle.Render("Transcripts: ")+valueStyle.Render(formatCount(w.saved)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderPressKey renders the "press any key" prompt.
func (w Welcome) renderPressKey() string {
	return lipgloss.NewStyle().
		Foreground(styles.Purple).
		Render("Press any key to continue...")
}

func formatCount(n int) string {
	if n == 1 {
		return "1 saved"
	}
	return strconv.Itoa(n) + " saved"
}

// =============================================================================
// KEYBOARD SHORTCUT HELP
// =============================================================================

// KeyboardShortcuts returns a formatted list of keyboard shortcuts.
func KeyboardShortcuts() string {
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary)

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send message"},
		{"Ctrl+C", "Quit"},
		{"Up/Down", "Scroll messages"},
		{"PgUp/PgDn", "Page scroll"},
		{"Esc", "Cancel login prompt"},
	}

	lines := make([]string, len(shortcuts))
	for i, s := range shortcuts {
		lines[i] = keyStyle.Render(s.key) + descStyle.Render(s.desc)
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Bold(true)

	return titleStyle.Render("Keyboard Shortcuts") + "\n" +
		lipgloss.JoinVertical(lipgloss.Left, lines...)
}
