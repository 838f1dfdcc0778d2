// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level carried by an admin token.
type UserRole string

const (
	// Unrestricted system access, including audits and deletions
	RoleAdmin UserRole = "admin"

	// Can curate movies and celebrity profiles
	RoleEditor UserRole = "editor"

	// Default role; grants nothing beyond public reads
	RoleMember UserRole = "member"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 40
	case RoleEditor:
		return 30
	case RoleMember:
		return 10
	default:
		return 0
	}
}
