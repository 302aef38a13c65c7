// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatbot

import (
	"strings"

	"github.com/morganforge/wardbot/internal/model"
)

// =============================================================================
// CLASSIFICATION KINDS
// =============================================================================

// Kind identifies what a piece of user input asks for.
type Kind int

const (
	// KindNone is returned for empty or whitespace-only input.
	KindNone Kind = iota
	KindGreeting
	KindFarewell
	KindThanks
	KindApology
	KindHelp
	KindLogin
	KindLogout
	KindMustLogin
	KindCommonCommand
	KindRoleCommand
	KindUnmatched
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindGreeting:
		return "greeting"
	case KindFarewell:
		return "farewell"
	case KindThanks:
		return "thanks"
	case KindApology:
		return "apology"
	case KindHelp:
		return "help"
	case KindLogin:
		return "login"
	case KindLogout:
		return "logout"
	case KindMustLogin:
		return "must_login"
	case KindCommonCommand:
		return "common_command"
	case KindRoleCommand:
		return "role_command"
	case KindUnmatched:
		return "unmatched"
	default:
		return "unknown"
	}
}

// Classification is the result of classifying one line of input.
type Classification struct {
	Kind Kind

	// Command is the matched command name for KindCommonCommand and
	// KindRoleCommand, empty otherwise.
	Command string
}

// =============================================================================
// CLASSIFIER
// =============================================================================

// Classify maps one line of user input to a classification. Matching is
// substring containment on the lowercased input; the checks run in a fixed
// priority order and the first hit wins:
//
//	greeting > farewell > thanks > apology > help > login > logout
//	> must-login gate > common commands > role commands > unmatched
//
// The role table is only consulted when loggedIn is true. A logged-in role
// outside the closed set is an invariant violation and returns an error.
func Classify(input string, loggedIn bool, role model.StaffRole) (Classification, error) {
	text := strings.ToLower(strings.TrimSpace(input))
	if text == "" {
		return Classification{Kind: KindNone}, nil
	}

	switch {
	case containsAny(text, GreetingPhrases):
		return Classification{Kind: KindGreeting}, nil
	case containsAny(text, FarewellPhrases):
		return Classification{Kind: KindFarewell}, nil
	case containsAny(text, ThanksPhrases):
		return Classification{Kind: KindThanks}, nil
	case containsAny(text, ApologyPhrases):
		return Classification{Kind: KindApology}, nil
	case strings.Contains(text, "help"):
		return Classification{Kind: KindHelp}, nil
	case strings.Contains(text, "login"):
		return Classification{Kind: KindLogin}, nil
	case strings.Contains(text, "logout"):
		return Classification{Kind: KindLogout}, nil
	}

	if !loggedIn {
		return Classification{Kind: KindMustLogin}, nil
	}

	if name, ok := matchCommand(text, CommonCommands); ok {
		// "exit" phrases never reach here (farewell matches first),
		// but the exit command stays farewell-equivalent regardless.
		if name == "exit" {
			return Classification{Kind: KindFarewell}, nil
		}
		return Classification{Kind: KindCommonCommand, Command: name}, nil
	}

	table, err := RoleCommands(role)
	if err != nil {
		return Classification{}, err
	}
	if name, ok := matchCommand(text, table); ok {
		return Classification{Kind: KindRoleCommand, Command: name}, nil
	}

	return Classification{Kind: KindUnmatched}, nil
}

// matchCommand returns the first command whose phrase list contains a
// substring of text.
func matchCommand(text string, table []CommandSpec) (string, bool) {
	for _, spec := range table {
		if containsAny(text, spec.Phrases) {
			return spec.Name, true
		}
	}
	return "", false
}

// containsAny reports whether any phrase occurs in text.
func containsAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}
