// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/wardbot/internal/model"
	"github.com/morganforge/wardbot/internal/util"
)

// =============================================================================
// MESSAGE RENDERING
// =============================================================================

// refreshViewport rebuilds the viewport content and scrolls to the bottom.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}

// renderMessages renders the conversation into viewport content. Only the
// newest chat.history_limit messages are rendered; the conversation itself
// keeps the full transcript for saving and export.
func (m Model) renderMessages() string {
	if m.conversation == nil || m.conversation.IsEmpty() {
		return m.theme.InputPlaceholder.Render("No messages yet.")
	}

	msgs := m.conversation.Messages
	if m.cfg != nil && m.cfg.Chat.HistoryLimit > 0 && len(msgs) > m.cfg.Chat.HistoryLimit {
		msgs = msgs[len(msgs)-m.cfg.Chat.HistoryLimit:]
	}

	var blocks []string
	for _, msg := range msgs {
		blocks = append(blocks, m.renderMessage(msg))
	}

	if m.lastError != nil {
		blocks = append(blocks, m.renderError(m.lastError.Title, m.lastError.Message, m.lastError.Tip))
	}

	return strings.Join(blocks, "\n")
}

// senderName resolves the display name for a sender, honoring the
// configured bot name.
func (m Model) senderName(msg *model.Message) string {
	if msg.Sender == model.SenderBot && m.cfg != nil && m.cfg.Chat.BotName != "" {
		return m.cfg.Chat.BotName
	}
	return msg.Sender.DisplayName()
}

// renderMessage renders one message bubble. User messages sit on the right,
// bot messages on the left, system messages centered. Compact mode trades
// the bubbles for single prefixed lines.
func (m Model) renderMessage(msg *model.Message) string {
	if m.cfg != nil && m.cfg.UI.CompactMode {
		return m.renderMessageCompact(msg)
	}

	width := m.width
	if width == 0 {
		width = 80
	}

	bubbleWidth := width - 10
	if bubbleWidth > 70 {
		bubbleWidth = 70
	}
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	label := m.theme.SenderLabel.Render(m.senderName(msg))
	if m.cfg != nil && m.cfg.UI.ShowTimestamps {
		label += " " + m.theme.Timestamp.Render(msg.Timestamp.Format("15:04:05"))
	}

	switch msg.Sender {
	case model.SenderUser:
		bubble := m.theme.UserBubble.MaxWidth(bubbleWidth).Render(msg.Text)
		block := lipgloss.JoinVertical(lipgloss.Right, label, bubble)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, block)

	case model.SenderSystem:
		bubble := m.theme.SystemBubble.MaxWidth(bubbleWidth).Render(msg.Text)
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, bubble)

	default:
		bubble := m.theme.BotBubble.MaxWidth(bubbleWidth).Render(msg.Text)
		return lipgloss.JoinVertical(lipgloss.Left, label, bubble)
	}
}

// renderMessageCompact renders one message as a single prefixed line.
func (m Model) renderMessageCompact(msg *model.Message) string {
	prefix := m.theme.SenderLabel.Render(m.senderName(msg) + ":")
	if m.cfg != nil && m.cfg.UI.ShowTimestamps {
		prefix = m.theme.Timestamp.Render(msg.Timestamp.Format("15:04:05")) + " " + prefix
	}
	return prefix + " " + msg.Text
}

// renderError renders the dismissable error box below the transcript.
func (m Model) renderError(title, message, tip string) string {
	var sb strings.Builder
	sb.WriteString(m.theme.ErrorTitle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(m.theme.ErrorMessage.Render(message))
	if tip != "" {
		sb.WriteString("\n")
		sb.WriteString(m.theme.ErrorTip.Render(tip))
	}
	return m.theme.ErrorBox.Render(sb.String())
}

// renderTranscriptList formats saved transcripts for the /sessions output.
func (m Model) renderTranscriptList(metas []model.ConversationMeta) string {
	if len(metas) == 0 {
		return "No saved transcripts."
	}

	var sb strings.Builder
	sb.WriteString("Saved transcripts:\n")
	for _, meta := range metas {
		preview := util.TruncateRunes(meta.Preview, 40)
		sb.WriteString(fmt.Sprintf("  %s  %s  (%d messages, %s)\n",
			meta.ID,
			preview,
			meta.MessageCount,
			meta.UpdatedAt.Format("2006-01-02 15:04")))
	}
	sb.WriteString("Use /load <id> to resume one.")
	return sb.String()
}
