// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package schema

// UserTable represents the 'users' table. Accounts are owned by the auth
// service; the catalog only reads display names for seller attribution.
type UserTable struct {
	Table       string
	ID          string
	Username    string
	DisplayName string
	Role        string
}

// User is the schema definition for users
var User = UserTable{
	Table:       "users",
	ID:          "id",
	Username:    "username",
	DisplayName: "display_name",
	Role:        "role",
}
