// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"sort"
	"strings"
)

// =============================================================================
// COMMAND COMPLETION
// =============================================================================

// Completion represents a completion suggestion.
type Completion struct {
	// Value to insert
	Value string

	// Description shown alongside
	Description string
}

// CompleteCommand returns suggestions for a partially typed command name.
// The prefix must include the leading slash. Aliases complete to their
// primary command. Results are sorted by name.
func CompleteCommand(r *Registry, prefix string) []Completion {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if !strings.HasPrefix(prefix, "/") {
		return nil
	}

	seen := make(map[string]bool)
	var completions []Completion

	add := func(cmd *Command) {
		if cmd.Hidden || seen[cmd.Name] {
			return
		}
		seen[cmd.Name] = true
		completions = append(completions, Completion{
			Value:       cmd.Name,
			Description: cmd.Description,
		})
	}

	for name, cmd := range r.commands {
		if strings.HasPrefix(name, prefix) {
			add(cmd)
		}
	}
	for alias, cmd := range r.aliases {
		if strings.HasPrefix(alias, prefix) {
			add(cmd)
		}
	}

	sort.Slice(completions, func(i, j int) bool {
		return completions[i].Value < completions[j].Value
	})
	return completions
}

// HelpListing renders the visible commands grouped by category, for the
// /help display.
func HelpListing(r *Registry) string {
	byCategory := r.ByCategory()

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var sb strings.Builder
	sb.WriteString("Slash commands:\n")
	for _, category := range categories {
		cmds := byCategory[category]
		sort.Slice(cmds, func(i, j int) bool {
			return cmds[i].Name < cmds[j].Name
		})

		sb.WriteString("\n")
		sb.WriteString(category)
		sb.WriteString(":\n")
		for _, cmd := range cmds {
			usage := cmd.Name
			if cmd.Usage != "" {
				usage = cmd.Usage
			}
			sb.WriteString("  ")
			sb.WriteString(usage)
			sb.WriteString(" - ")
			sb.WriteString(cmd.Description)
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
