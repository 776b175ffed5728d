// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package schema

// BookTable represents the 'books' table
type BookTable struct {
	Table            string
	ID               string
	Title            string
	Author           string
	Condition        string
	PublishedYear    string
	Edition          string
	ShortDescription string
	Availability     string
	CategoryID       string
	Rating           string
	Price            string
	ISBN             string
	Language         string
	SellerID         string
	CreatedAt        string
	UpdatedAt        string
}

// Book is the schema definition for books
var Book = BookTable{
	Table:            "books",
	ID:               "id",
	Title:            "title",
	Author:           "author",
	Condition:        "condition",
	PublishedYear:    "published_year",
	Edition:          "edition",
	ShortDescription: "short_description",
	Availability:     "availability",
	CategoryID:       "category_id",
	Rating:           "rating",
	Price:            "price",
	ISBN:             "isbn",
	Language:         "language",
	SellerID:         "seller_id",
	CreatedAt:        "created_at",
	UpdatedAt:        "updated_at",
}

// Columns returns the columns written on insert, in insert order
func (t BookTable) Columns() []string {
	return []string{
		t.Title, t.Author, t.Condition, t.PublishedYear, t.Edition,
		t.ShortDescription, t.Availability, t.CategoryID, t.Rating,
		t.Price, t.ISBN, t.Language, t.SellerID,
	}
}
