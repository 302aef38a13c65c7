// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration command for the wardbot CLI.
package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/morganforge/wardbot/internal/config"
)

// HandleConfig handles "wardbot config [show|get|set]".
func HandleConfig(args Args) {
	cfg := config.Global()

	switch args.Subcommand {
	case "", "show":
		keys := config.GetAllKeys()
		sort.Strings(keys)
		for _, key := range keys {
			value, err := cfg.Get(key)
			if err != nil {
				continue
			}
			fmt.Printf("%-28s = %v\n", key, value)
		}

	case "get":
		if args.ConfigKey == "" {
			fmt.Fprintln(os.Stderr, "Usage: wardbot config get <key>")
			os.Exit(1)
		}
		value, err := cfg.Get(args.ConfigKey)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%v\n", value)

	case "set":
		if args.ConfigKey == "" || args.ConfigVal == "" {
			fmt.Fprintln(os.Stderr, "Usage: wardbot config set <key> <value>")
			os.Exit(1)
		}
		if err := cfg.Set(args.ConfigKey, args.ConfigVal); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := config.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s = %s\n", args.ConfigKey, args.ConfigVal)

	case "path":
		path, err := config.ConfigPathTOML()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)

	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args.Subcommand)
		fmt.Fprintln(os.Stderr, "Usage: wardbot config [show|get|set|path]")
		os.Exit(1)
	}
}
