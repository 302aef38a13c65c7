// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations, messages,
// and staff profiles.
//
// This package defines the core domain types used throughout the application
// for representing chat transcripts and the logged-in hospital staff member.
//
// # Key Types
//
//   - Conversation: Container for a chat session with messages and metadata
//   - Message: Single message with sender, text, and timestamp
//   - Sender: Message origin enumeration (user, bot, system)
//   - UserProfile: The logged-in staff member (ID, name, role, department)
//   - StaffRole: Closed staff role enumeration (doctor, nurse, admin)
//
// # Usage
//
// Create a new conversation:
//
//	conv := model.NewConversation()
//	conv.AddUserMessage("hello")
//	conv.AddBotMessage("Hello! How can I assist you today?")
//
// Derive a role from a staff ID:
//
//	role, err := model.ParseStaffID("DOC_001")
package model
