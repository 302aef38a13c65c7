// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"errors"
	"strings"
)

// =============================================================================
// STAFF ROLE TYPE
// =============================================================================

// StaffRole is the closed set of hospital staff roles. The zero value is
// StaffRoleNone, meaning no user is logged in. Any other value is one of the
// three named roles; code that receives a role outside this set is dealing
// with corrupted state and must treat it as an error, never as a silent miss.
type StaffRole int

const (
	StaffRoleNone StaffRole = iota
	StaffRoleDoctor
	StaffRoleNurse
	StaffRoleAdmin
)

// String returns the lowercase role name used in chat replies.
func (r StaffRole) String() string {
	switch r {
	case StaffRoleDoctor:
		return "doctor"
	case StaffRoleNurse:
		return "nurse"
	case StaffRoleAdmin:
		return "admin"
	default:
		return "none"
	}
}

// Heading returns the capitalized role name used in help headings.
func (r StaffRole) Heading() string {
	switch r {
	case StaffRoleDoctor:
		return "Doctor"
	case StaffRoleNurse:
		return "Nurse"
	case StaffRoleAdmin:
		return "Admin"
	default:
		return "None"
	}
}

// Valid returns true for the three named roles.
func (r StaffRole) Valid() bool {
	return r == StaffRoleDoctor || r == StaffRoleNurse || r == StaffRoleAdmin
}

// =============================================================================
// STAFF ID PARSING
// =============================================================================

// ErrInvalidStaffID is returned when a staff ID does not carry a known
// role prefix.
var ErrInvalidStaffID = errors.New("invalid staff ID format")

// rolePrefixes maps the 4-character staff ID prefix to its role.
var rolePrefixes = map[string]StaffRole{
	"DOC_": StaffRoleDoctor,
	"NUR_": StaffRoleNurse,
	"ADM_": StaffRoleAdmin,
}

// ParseStaffID derives the role from a staff ID. The comparison is done on
// the uppercased 4-character prefix, so "doc_001" and "DOC_001" are the
// same ID.
func ParseStaffID(id string) (StaffRole, error) {
	if len(id) < 4 {
		return StaffRoleNone, ErrInvalidStaffID
	}
	prefix := strings.ToUpper(id[:4])
	role, ok := rolePrefixes[prefix]
	if !ok {
		return StaffRoleNone, ErrInvalidStaffID
	}
	return role, nil
}

// =============================================================================
// USER PROFILE TYPE
// =============================================================================

// UserProfile describes the logged-in staff member.
type UserProfile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Role       StaffRole `json:"role"`
	Department string    `json:"department"`
	Contact    string    `json:"contact"`
}

// NewUserProfile builds a profile for a staff member. Department and contact
// details are placeholders until a directory lookup exists.
func NewUserProfile(id, name string, role StaffRole) *UserProfile {
	return &UserProfile{
		ID:         id,
		Name:       name,
		Role:       role,
		Department: "Unknown",
		Contact:    "N/A",
	}
}
