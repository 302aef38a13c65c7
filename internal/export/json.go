// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/morganforge/wardbot/internal/model"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// transcriptJSON is the stable wire shape for JSON exports. It is decoupled
// from the in-memory model so field renames there do not break consumers.
type transcriptJSON struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	StaffID   string        `json:"staff_id,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Messages  []messageJSON `json:"messages"`
}

type messageJSON struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// JSONExporter exports transcripts to JSON format.
// NOTE: JSON exports always include the complete transcript and ignore the
// metadata and timestamp options, so the output is a faithful record.
type JSONExporter struct {
	options *Options
}

// NewJSONExporter creates a new JSON exporter. The options parameter is
// accepted for consistency with the other exporters.
func NewJSONExporter(opts *Options) *JSONExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &JSONExporter{options: opts}
}

// Export converts a conversation to indented JSON.
func (e *JSONExporter) Export(conv *model.Conversation) ([]byte, error) {
	if conv == nil {
		return nil, fmt.Errorf("conversation is nil")
	}

	out := transcriptJSON{
		ID:        conv.ID,
		Title:     conv.GetTitle(),
		StaffID:   conv.StaffID,
		CreatedAt: conv.CreatedAt,
		UpdatedAt: conv.UpdatedAt,
		Messages:  make([]messageJSON, 0, len(conv.Messages)),
	}
	for _, msg := range conv.Messages {
		out.Messages = append(out.Messages, messageJSON{
			ID:        msg.ID,
			Sender:    msg.Sender.String(),
			Text:      msg.Text,
			Timestamp: msg.Timestamp,
		})
	}

	return json.MarshalIndent(out, "", "  ")
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}
