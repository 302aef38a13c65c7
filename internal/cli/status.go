// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - System status command for the wardbot CLI.
package cli

import (
	"context"
	"fmt"

	"github.com/morganforge/wardbot/internal/config"
	"github.com/morganforge/wardbot/internal/storage"
)

// HandleStatus prints where wardbot keeps its data and how much it holds.
func HandleStatus(args Args) {
	cfg := config.Global()

	dataDir, _ := cfg.DataDir()
	configPath, _ := config.ConfigPathTOML()
	dbPath, _ := cfg.DatabasePath()

	transcripts := -1
	if store, err := storage.NewTranscriptStore(dbPath, cfg.Storage.MaxTranscripts); err == nil {
		if n, err := store.Count(context.Background()); err == nil {
			transcripts = n
		}
		store.Close()
	}

	if args.JSON {
		count := "null"
		if transcripts >= 0 {
			count = fmt.Sprintf("%d", transcripts)
		}
		fmt.Printf(`{"version":%q,"config":%q,"data_dir":%q,"database":%q,"transcripts":%s}`+"\n",
			Version, configPath, dataDir, dbPath, count)
		return
	}

	fmt.Printf("wardbot %s\n\n", Version)
	fmt.Printf("  Config:      %s\n", configPath)
	fmt.Printf("  Data dir:    %s\n", dataDir)
	fmt.Printf("  Database:    %s\n", dbPath)
	if transcripts >= 0 {
		fmt.Printf("  Transcripts: %d (limit %d)\n", transcripts, cfg.Storage.MaxTranscripts)
	} else {
		fmt.Printf("  Transcripts: unavailable\n")
	}
	fmt.Printf("  Theme:       %s\n", cfg.UI.Theme)
	if cfg.Logging.Enabled {
		logPath, _ := cfg.LogPath()
		fmt.Printf("  Log:         %s (%s)\n", logPath, cfg.Logging.Level)
	} else {
		fmt.Printf("  Log:         disabled\n")
	}
}
