// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatbot

import (
	"testing"

	"github.com/morganforge/wardbot/internal/model"
)

// =============================================================================
// CLASSIFIER TESTS
// =============================================================================

func TestClassify_PriorityOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		loggedIn bool
		role     model.StaffRole
		want     Kind
		command  string
	}{
		{name: "empty input", input: "", want: KindNone},
		{name: "whitespace only", input: "   \t  ", want: KindNone},

		{name: "greeting", input: "hello there", want: KindGreeting},
		{name: "greeting uppercase", input: "HELLO", want: KindGreeting},
		{name: "greeting inside sentence", input: "well hi everyone", want: KindGreeting},

		// "hi" appears in both greeting and nothing else, but greeting
		// outranks farewell when both match.
		{name: "greeting beats farewell", input: "hi, goodbye", want: KindGreeting},

		{name: "farewell", input: "bye now", want: KindFarewell},
		{name: "farewell substring", input: "I am exiting", want: KindFarewell},
		{name: "thanks", input: "thanks a lot", want: KindThanks},
		{name: "apology", input: "sorry about that", want: KindApology},

		{name: "help literal", input: "help me out", want: KindHelp},
		{name: "help while logged out", input: "please help", want: KindHelp},
		{name: "login literal", input: "i want to login", want: KindLogin},
		{name: "logout literal", input: "logout now", want: KindLogout},

		{name: "must login gate", input: "find patient john", want: KindMustLogin},
		{name: "must login for common phrase", input: "what can you do", want: KindMustLogin},

		{
			name:     "common command via phrase",
			input:    "show me the commands",
			loggedIn: true,
			role:     model.StaffRoleDoctor,
			want:     KindCommonCommand,
			command:  "help",
		},
		{
			name:     "sign in phrase",
			input:    "sign in please",
			loggedIn: true,
			role:     model.StaffRoleDoctor,
			want:     KindCommonCommand,
			command:  "login",
		},
		{
			name:     "doctor role command",
			input:    "find patient john",
			loggedIn: true,
			role:     model.StaffRoleDoctor,
			want:     KindRoleCommand,
			command:  "search_patient",
		},
		{
			name:     "nurse record vitals",
			input:    "can you record vitals",
			loggedIn: true,
			role:     model.StaffRoleNurse,
			want:     KindRoleCommand,
			command:  "patient_vitals",
		},
		{
			name:     "admin report",
			input:    "generate report for march",
			loggedIn: true,
			role:     model.StaffRoleAdmin,
			want:     KindRoleCommand,
			command:  "generate_report",
		},
		{
			name:     "wrong role table",
			input:    "record vitals",
			loggedIn: true,
			role:     model.StaffRoleDoctor,
			want:     KindUnmatched,
		},
		{
			name:     "unmatched",
			input:    "order pizza",
			loggedIn: true,
			role:     model.StaffRoleNurse,
			want:     KindUnmatched,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Classify(tc.input, tc.loggedIn, tc.role)
			if err != nil {
				t.Fatalf("Classify(%q) unexpected error: %v", tc.input, err)
			}
			if got.Kind != tc.want {
				t.Errorf("Classify(%q).Kind = %v, want %v", tc.input, got.Kind, tc.want)
			}
			if got.Command != tc.command {
				t.Errorf("Classify(%q).Command = %q, want %q", tc.input, got.Command, tc.command)
			}
		})
	}
}

func TestClassify_ExitIsFarewell(t *testing.T) {
	// "exit" is both a farewell phrase and a common command; either path
	// must land on farewell handling.
	got, err := Classify("exit", true, model.StaffRoleDoctor)
	if err != nil {
		t.Fatalf("Classify unexpected error: %v", err)
	}
	if got.Kind != KindFarewell {
		t.Errorf("Classify(exit).Kind = %v, want %v", got.Kind, KindFarewell)
	}
}

func TestClassify_InvalidRoleIsError(t *testing.T) {
	// Input must reach the role table for the invariant to trip.
	_, err := Classify("record vitals", true, model.StaffRole(99))
	if err == nil {
		t.Fatal("Classify with invalid role should error")
	}
}

func TestRoleCommands(t *testing.T) {
	table, err := RoleCommands(model.StaffRoleNurse)
	if err != nil {
		t.Fatalf("RoleCommands unexpected error: %v", err)
	}
	if len(table) != 4 {
		t.Errorf("nurse table size = %d, want 4", len(table))
	}

	if _, err := RoleCommands(model.StaffRoleNone); err == nil {
		t.Error("RoleCommands(StaffRoleNone) should error")
	}
}
