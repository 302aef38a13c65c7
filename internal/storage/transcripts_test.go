// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/morganforge/wardbot/internal/model"
)

func newTestStore(t *testing.T, limit int) *TranscriptStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transcripts.db")
	store, err := NewTranscriptStore(path, limit)
	if err != nil {
		t.Fatalf("NewTranscriptStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestTranscriptStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	conv := model.NewConversation()
	conv.StaffID = "DOC_001"
	conv.AddUserMessage("hello")
	conv.AddBotMessage("Hello! How can I assist you today?")

	if err := store.Save(ctx, conv); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load(ctx, conv.ID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.ID != conv.ID {
		t.Errorf("ID = %q, want %q", loaded.ID, conv.ID)
	}
	if loaded.StaffID != "DOC_001" {
		t.Errorf("StaffID = %q, want DOC_001", loaded.StaffID)
	}
	if len(loaded.Messages) != 2 {
		t.Fatalf("message count = %d, want 2", len(loaded.Messages))
	}
	if loaded.Messages[0].Sender != model.SenderUser || loaded.Messages[0].Text != "hello" {
		t.Errorf("first message = %+v, want user hello", loaded.Messages[0])
	}
	if loaded.Messages[1].Sender != model.SenderBot {
		t.Errorf("second message sender = %v, want bot", loaded.Messages[1].Sender)
	}
}

func TestTranscriptStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	conv := model.NewConversation()
	conv.AddUserMessage("hello")
	if err := store.Save(ctx, conv); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	conv.AddBotMessage("Hello! How can I assist you today?")
	if err := store.Save(ctx, conv); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	loaded, err := store.Load(ctx, conv.ID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.Messages) != 2 {
		t.Errorf("message count = %d, want 2", len(loaded.Messages))
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Count = %d, want 1", count)
	}
}

func TestTranscriptStore_LoadMissing(t *testing.T) {
	store := newTestStore(t, 0)

	_, err := store.Load(context.Background(), "conv_nope")
	if !errors.Is(err, ErrTranscriptNotFound) {
		t.Errorf("Load error = %v, want ErrTranscriptNotFound", err)
	}
}

func TestTranscriptStore_List(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	first := model.NewConversation()
	first.AddUserMessage("find patient adams")
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	second := model.NewConversation()
	second.AddUserMessage("record vitals")
	second.UpdatedAt = second.UpdatedAt.Add(time.Second)
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	metas, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("List returned %d metas, want 2", len(metas))
	}
	// Newest first
	if metas[0].ID != second.ID {
		t.Errorf("first listed = %q, want %q", metas[0].ID, second.ID)
	}
	if metas[0].Preview != "record vitals" {
		t.Errorf("Preview = %q, want record vitals", metas[0].Preview)
	}
	if metas[0].MessageCount != 1 {
		t.Errorf("MessageCount = %d, want 1", metas[0].MessageCount)
	}
}

func TestTranscriptStore_Delete(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	conv := model.NewConversation()
	conv.AddUserMessage("hello")
	if err := store.Save(ctx, conv); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := store.Delete(ctx, conv.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Load(ctx, conv.ID); !errors.Is(err, ErrTranscriptNotFound) {
		t.Errorf("Load after delete = %v, want ErrTranscriptNotFound", err)
	}

	if err := store.Delete(ctx, conv.ID); !errors.Is(err, ErrTranscriptNotFound) {
		t.Errorf("second Delete = %v, want ErrTranscriptNotFound", err)
	}
}

func TestTranscriptStore_EnforcesLimit(t *testing.T) {
	store := newTestStore(t, 3)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		conv := model.NewConversation()
		conv.AddUserMessage("hello")
		// Distinct updated_at so eviction order is stable.
		conv.UpdatedAt = conv.UpdatedAt.Add(time.Duration(i) * time.Second)
		if err := store.Save(ctx, conv); err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
		ids = append(ids, conv.ID)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Count = %d, want 3", count)
	}

	// The two oldest are gone.
	for _, id := range ids[:2] {
		if _, err := store.Load(ctx, id); !errors.Is(err, ErrTranscriptNotFound) {
			t.Errorf("Load(%q) = %v, want ErrTranscriptNotFound", id, err)
		}
	}
	for _, id := range ids[2:] {
		if _, err := store.Load(ctx, id); err != nil {
			t.Errorf("Load(%q) failed: %v", id, err)
		}
	}
}

