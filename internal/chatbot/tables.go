// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chatbot implements the keyword chatbot for hospital staff: the
// static command tables, the input classifier, and the login state machine.
package chatbot

import (
	"fmt"

	"github.com/morganforge/wardbot/internal/model"
)

// =============================================================================
// COMMAND TABLES
// =============================================================================

// CommandSpec is one entry in a command table: the command name and the
// phrases that trigger it. Matching is substring containment on lowercased
// input; table order is match priority, so the slices below are ordered.
type CommandSpec struct {
	Name    string
	Phrases []string
}

// CommonCommands are available to everyone, logged in or not.
var CommonCommands = []CommandSpec{
	{Name: "help", Phrases: []string{"help", "commands", "what can you do"}},
	{Name: "login", Phrases: []string{"login", "sign in"}},
	{Name: "logout", Phrases: []string{"logout", "sign out"}},
	{Name: "exit", Phrases: []string{"exit", "quit", "goodbye"}},
}

// DoctorCommands are available while logged in as a doctor.
var DoctorCommands = []CommandSpec{
	{Name: "search_patient", Phrases: []string{"find patient", "search patient", "lookup patient"}},
	{Name: "patient_details", Phrases: []string{"patient details", "get patient info"}},
	{Name: "admission_history", Phrases: []string{"admission history", "patient admissions"}},
	{Name: "create_prescription", Phrases: []string{"new prescription", "prescribe medication"}},
	{Name: "view_schedule", Phrases: []string{"my schedule", "today's appointments"}},
	{Name: "add_note", Phrases: []string{"add note", "write note"}},
}

// NurseCommands are available while logged in as a nurse.
var NurseCommands = []CommandSpec{
	{Name: "medication_list", Phrases: []string{"medication list", "todays medications"}},
	{Name: "record_administration", Phrases: []string{"record medication", "give medication"}},
	{Name: "patient_vitals", Phrases: []string{"record vitals", "patient vitals"}},
	{Name: "view_applications", Phrases: []string{"view tests", "test applications"}},
}

// AdminCommands are available while logged in as an admin.
var AdminCommands = []CommandSpec{
	{Name: "add_staff", Phrases: []string{"add staff", "new staff"}},
	{Name: "generate_report", Phrases: []string{"generate report", "create report"}},
}

// RoleCommands returns the command table for a role. A role outside the
// closed set means state corruption upstream, so it is an error rather
// than an empty table.
func RoleCommands(role model.StaffRole) ([]CommandSpec, error) {
	switch role {
	case model.StaffRoleDoctor:
		return DoctorCommands, nil
	case model.StaffRoleNurse:
		return NurseCommands, nil
	case model.StaffRoleAdmin:
		return AdminCommands, nil
	default:
		return nil, fmt.Errorf("no command table for role %q", role)
	}
}

// =============================================================================
// RESPONSE TABLES
// =============================================================================

// Small-talk trigger phrases, matched by substring containment.
var (
	GreetingPhrases = []string{"hello", "hi", "hey", "good morning", "good afternoon"}
	FarewellPhrases = []string{"bye", "goodbye", "see you", "exit", "quit"}
	ThanksPhrases   = []string{"thank you", "thanks", "appreciate"}
	ApologyPhrases  = []string{"sorry", "apologize", "my bad"}
)

// Canned reply text.
const (
	ReplyGreeting     = "Hello! How can I assist you today?"
	ReplyThanks       = "You're welcome! Is there anything else I can help with?"
	ReplyApology      = "No problem at all. How can I assist you?"
	ReplyFarewell     = "Thank you for using the Hospital Management System. Goodbye!"
	ReplyMustLogin    = "Please login first. Type 'login' to begin."
	ReplyUnmatched    = "I didn't understand that. Type 'help' for available commands."
	ReplyFieldsNeeded = "Both fields are required."
	ReplyBadStaffID   = "Invalid staff ID format. Must start with DOC_, NUR_, or ADM_."
	ReplyAlreadyIn    = "You are already logged in. Type 'logout' first."
	ReplyNotLoggedIn  = "No user is currently logged in."
)
