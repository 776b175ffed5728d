// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

// Package schema names the tables and columns of the PageTurn database so that
// stores never spell them out by hand.
package schema

// CategoryTable represents the 'categories' table
type CategoryTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	Description string
	CreatedAt   string
}

// Category is the schema definition for categories
var Category = CategoryTable{
	Table:       "categories",
	ID:          "id",
	Name:        "name",
	Slug:        "slug",
	Description: "description",
	CreatedAt:   "created_at",
}

// Columns returns all standard column names
func (t CategoryTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.Description, t.CreatedAt}
}
