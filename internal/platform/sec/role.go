// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Manages categories and any listing
	RoleAdmin UserRole = "admin"

	// Lists books for sale and manages their own listings
	RoleSeller UserRole = "seller"

	// Default role for buyers
	RoleCustomer UserRole = "customer"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level() && r.level() > 0
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 30
	case RoleSeller:
		return 20
	case RoleCustomer:
		return 10
	default:
		return 0
	}
}
