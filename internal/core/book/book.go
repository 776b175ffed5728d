// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

/*
Package book defines the catalog of used educational books listed on PageTurn.

It owns the read path that turns untrusted filter parameters into a paginated
catalog page, and the inventory write path that keeps catalog rows valid.

Core Responsibility:

  - Domain: Conditions, sort allow-list and the validity predicates of a listing.
  - Discovery: [Normalize] and [BuildQuery] turn raw parameters into a [query.Spec].
  - Inventory: Sellers list books and toggle their availability.
*/
package book

import (
	"math"
	"slices"
	"time"

	"github.com/NavodCaldera/online-bookstore-sub000/pkg/query"
)

// # Domain Enums

// Condition is the physical state of a listed copy.
type Condition string

const (
	ConditionNew  Condition = "New"
	ConditionUsed Condition = "Used"
	ConditionFair Condition = "Fair"
	ConditionPoor Condition = "Poor"
)

// Conditions lists every accepted [Condition] in display order.
var Conditions = []Condition{ConditionNew, ConditionUsed, ConditionFair, ConditionPoor}

// IsValid reports whether c is a recognised [Condition]. Matching is case-sensitive.
func (c Condition) IsValid() bool {
	return slices.Contains(Conditions, c)
}

// SortField is the closed set of columns a catalog page may be ordered by.
type SortField string

const (
	SortTitle         SortField = "title"
	SortAuthor        SortField = "author"
	SortPrice         SortField = "price"
	SortRating        SortField = "rating"
	SortCreatedAt     SortField = "created_at"
	SortPublishedYear SortField = "published_year"
)

// IsValid reports whether f belongs to the sort allow-list.
func (f SortField) IsValid() bool {
	_, ok := sortFields[f]
	return ok
}

// sortFields maps the allow-list onto projection fields.
var sortFields = map[SortField]query.Field{
	SortTitle:         FieldTitle,
	SortAuthor:        FieldAuthor,
	SortPrice:         FieldPrice,
	SortRating:        FieldRating,
	SortCreatedAt:     FieldCreatedAt,
	SortPublishedYear: FieldPublishedYear,
}

// SortDirection orders a catalog page.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// IsValid reports whether d is ASC or DESC.
func (d SortDirection) IsValid() bool {
	return d == SortAsc || d == SortDesc
}

// # Validity Rules

const (
	MinRating        = 0.0
	MaxRating        = 5.0
	MinPublishedYear = 1400
	MaxTextLength    = 300
	DefaultLanguage  = "English"

	// Column bounds of the books table.
	MaxListingPrice   = 99_999_999.99
	MaxEditionLength  = 64
	MaxISBNLength     = 32
	MaxLanguageLength = 64
)

// ValidRating reports whether r lies in [MinRating, MaxRating].
func ValidRating(r float64) bool {
	return r >= MinRating && r <= MaxRating
}

// ValidPrice reports whether p is a finite, non-negative amount.
func ValidPrice(p float64) bool {
	return p >= 0 && !math.IsInf(p, 1)
}

// ValidPublishedYear reports whether year lies between [MinPublishedYear] and
// next year relative to now (announced editions are listed early).
func ValidPublishedYear(year int, now time.Time) bool {
	return year >= MinPublishedYear && year <= now.Year()+1
}

// # Entities

// Book is a listed copy as stored in the catalog.
type Book struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Author           string    `json:"author"`
	Condition        Condition `json:"condition"`
	PublishedYear    *int      `json:"published_year"`
	Edition          *string   `json:"edition"`
	ShortDescription *string   `json:"short_description"`
	Availability     bool      `json:"availability"`
	CategoryID       *int64    `json:"category_id"`
	Rating           float64   `json:"rating"`
	Price            float64   `json:"price"`
	ISBN             *string   `json:"isbn"`
	Language         string    `json:"language"`
	SellerID         *int64    `json:"seller_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Summary is the catalog read projection: a [Book] plus the names joined from
// its category and seller. Either name is nil when the reference is missing
// or dangling.
type Summary struct {
	Book
	CategoryName *string `json:"category_name"`
	SellerName   *string `json:"seller_name"`
}

// # Projection Fields

// Fields of the [Summary] projection that predicates and sorts may reference.
const (
	FieldID               query.Field = "id"
	FieldTitle            query.Field = "title"
	FieldAuthor           query.Field = "author"
	FieldShortDescription query.Field = "short_description"
	FieldCondition        query.Field = "condition"
	FieldPublishedYear    query.Field = "published_year"
	FieldAvailability     query.Field = "availability"
	FieldCategoryID       query.Field = "category_id"
	FieldCategoryName     query.Field = "category_name"
	FieldRating           query.Field = "rating"
	FieldPrice            query.Field = "price"
	FieldLanguage         query.Field = "language"
	FieldSellerID         query.Field = "seller_id"
	FieldCreatedAt        query.Field = "created_at"
)

// Value implements [query.Record]. Null columns report false.
func (s *Summary) Value(field query.Field) (any, bool) {
	switch field {
	case FieldID:
		return s.ID, true
	case FieldTitle:
		return s.Title, true
	case FieldAuthor:
		return s.Author, true
	case FieldShortDescription:
		return deref(s.ShortDescription)
	case FieldCondition:
		return string(s.Condition), true
	case FieldPublishedYear:
		return deref(s.PublishedYear)
	case FieldAvailability:
		return s.Availability, true
	case FieldCategoryID:
		return deref(s.CategoryID)
	case FieldCategoryName:
		return deref(s.CategoryName)
	case FieldRating:
		return s.Rating, true
	case FieldPrice:
		return s.Price, true
	case FieldLanguage:
		return s.Language, true
	case FieldSellerID:
		return deref(s.SellerID)
	case FieldCreatedAt:
		return s.CreatedAt, true
	}
	return nil, false
}

func deref[T any](p *T) (any, bool) {
	if p == nil {
		return nil, false
	}
	return *p, true
}
