// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists chat transcripts to a local SQLite database.
//
// Transcripts live in two tables: transcripts (metadata) and messages
// (ordered rows, cascade-deleted with their transcript). The store caps the
// number of retained transcripts and deletes the oldest first.
//
// # Usage
//
//	store, err := storage.NewTranscriptStore(path, 100)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	err = store.Save(ctx, conv)
//	metas, err := store.List(ctx)
package storage
