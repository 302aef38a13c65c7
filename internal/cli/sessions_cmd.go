// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// sessions_cmd.go - Saved transcript management from the command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/morganforge/wardbot/internal/config"
	"github.com/morganforge/wardbot/internal/export"
	"github.com/morganforge/wardbot/internal/storage"
)

// HandleSessions handles "wardbot sessions [list|show|export|delete]".
func HandleSessions(args Args) error {
	cfg := config.Global()

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return fmt.Errorf("resolving database path: %w", err)
	}
	store, err := storage.NewTranscriptStore(dbPath, cfg.Storage.MaxTranscripts)
	if err != nil {
		return fmt.Errorf("opening transcript store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()

	switch args.Subcommand {
	case "", "list":
		metas, err := store.List(ctx)
		if err != nil {
			return err
		}
		printTranscriptList(metas)
		return nil

	case "show":
		if args.Query == "" {
			return fmt.Errorf("usage: wardbot sessions show <id>")
		}
		conv, err := store.Load(ctx, args.Query)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%d messages)\n\n", conv.GetTitle(), conv.MessageCount())
		printTranscript(conv, cfg.Chat.BotName)
		return nil

	case "export":
		if args.Query == "" {
			return fmt.Errorf("usage: wardbot sessions export <id> [--format md|json|txt] [--output FILE]")
		}
		conv, err := store.Load(ctx, args.Query)
		if err != nil {
			return err
		}
		exporter, err := export.ForFormat(args.Format, nil)
		if err != nil {
			return err
		}
		out := args.Output
		if out != "" {
			err = export.ExportToPath(conv, exporter, out)
		} else {
			out, err = export.ExportToFile(conv, exporter, nil)
		}
		if err != nil {
			return err
		}
		fmt.Printf("Exported transcript to %s\n", out)
		return nil

	case "delete":
		if args.Query == "" {
			return fmt.Errorf("usage: wardbot sessions delete <id>")
		}
		if err := store.Delete(ctx, args.Query); err != nil {
			return err
		}
		fmt.Printf("Deleted transcript %s\n", args.Query)
		return nil

	default:
		fmt.Fprintf(os.Stderr, "Unknown sessions subcommand: %s\n", args.Subcommand)
		fmt.Fprintln(os.Stderr, "Usage: wardbot sessions [list|show|export|delete]")
		os.Exit(1)
		return nil
	}
}
