// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"

	"github.com/morganforge/wardbot/internal/model"
)

// =============================================================================
// PLAIN TEXT EXPORTER
// =============================================================================

// TextExporter exports transcripts as plain text, one message per block.
type TextExporter struct {
	options *Options
}

// NewTextExporter creates a new plain text exporter.
func NewTextExporter(opts *Options) *TextExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &TextExporter{options: opts}
}

// Export converts a conversation to plain text.
func (e *TextExporter) Export(conv *model.Conversation) ([]byte, error) {
	if conv == nil {
		return nil, fmt.Errorf("conversation is nil")
	}
	if len(conv.Messages) == 0 {
		return nil, fmt.Errorf("conversation has no messages")
	}

	var sb strings.Builder

	if e.options.IncludeMetadata {
		sb.WriteString(conv.GetTitle())
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("=", len(conv.GetTitle())))
		sb.WriteString("\n")
		if conv.StaffID != "" {
			sb.WriteString(fmt.Sprintf("Staff ID: %s\n", conv.StaffID))
		}
		sb.WriteString(fmt.Sprintf("Created:  %s\n", formatTimestamp(conv.CreatedAt)))
		sb.WriteString(fmt.Sprintf("Messages: %d\n", len(conv.Messages)))
		sb.WriteString("\n")
	}

	for _, msg := range conv.Messages {
		if e.options.IncludeTimestamps {
			sb.WriteString(fmt.Sprintf("[%s] %s: %s\n",
				formatShortTimestamp(msg.Timestamp),
				msg.Sender.DisplayName(),
				msg.Text))
		} else {
			sb.WriteString(fmt.Sprintf("%s: %s\n",
				msg.Sender.DisplayName(), msg.Text))
		}
	}

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for plain text.
func (e *TextExporter) FileExtension() string {
	return ".txt"
}

// MimeType returns the MIME type for plain text.
func (e *TextExporter) MimeType() string {
	return "text/plain"
}
