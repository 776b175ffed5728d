// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

/*
Package category manages the subject categories books are filed under.

Categories are read by every storefront page (the sidebar shows each one with
its number of available books) and written only by administrators.
*/
package category

import "time"

// Field limits.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

// # Domain Entities

// Category is a subject heading books are filed under.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Listing is a category together with the number of available books in it.
type Listing struct {
	Category
	BookCount int `json:"book_count"`
}

// NewCategory is the payload an administrator submits.
type NewCategory struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
