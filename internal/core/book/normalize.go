// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package book

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/NavodCaldera/online-bookstore-sub000/pkg/convert"
	"github.com/NavodCaldera/online-bookstore-sub000/pkg/pagination"
	"github.com/NavodCaldera/online-bookstore-sub000/pkg/pointer"
)

// # Raw Parameters

// RawParams carries the catalog query string exactly as the client sent it.
type RawParams struct {
	Page         string
	Limit        string
	PageSize     string
	Category     string
	Search       string
	MinPrice     string
	MaxPrice     string
	Condition    string
	Language     string
	Availability string
	SortBy       string
	SortOrder    string
}

// RawParamsFromQuery takes the first value of every recognised key.
func RawParamsFromQuery(values url.Values) RawParams {
	return RawParams{
		Page:         values.Get("page"),
		Limit:        values.Get("limit"),
		PageSize:     values.Get("pageSize"),
		Category:     values.Get("category"),
		Search:       values.Get("search"),
		MinPrice:     values.Get("minPrice"),
		MaxPrice:     values.Get("maxPrice"),
		Condition:    values.Get("condition"),
		Language:     values.Get("language"),
		Availability: values.Get("availability"),
		SortBy:       values.Get("sortBy"),
		SortOrder:    values.Get("sortOrder"),
	}
}

// # Filter Criteria

// categoryAll is the sentinel the storefront sends for "no category filter".
const categoryAll = "all"

// MaxPage bounds the page number so that the derived offset cannot overflow.
const MaxPage = 1_000_000

/*
FilterCriteria is the validated form of a catalog request. A nil pointer means
the filter is not applied.

Values of this type are produced by [Normalize]; [BuildQuery] rejects any value
that breaks its invariants.
*/
type FilterCriteria struct {
	CategoryName  *string
	SearchTerm    *string
	MinPrice      *float64
	MaxPrice      *float64
	Condition     *Condition
	Language      *string
	Availability  *bool
	SortField     SortField
	SortDirection SortDirection
	Page          int
	PageSize      int
}

/*
Normalize converts raw parameters into [FilterCriteria]. It never fails:
anything malformed is replaced by its default or dropped.

  - page: integer >= 1, default 1
  - limit (alias pageSize, limit wins): integer in [1, 100], default 12
  - category: exact name unless empty or "all"
  - search: free text, used as a literal substring
  - minPrice / maxPrice: finite decimals >= 0, swapped when inverted
  - condition: exact enum match
  - language: exact match unless empty
  - availability: 1/0/true/false in any case, otherwise not filtered
  - sortBy: allow-listed field, default created_at
  - sortOrder: ASC or DESC in any case, default DESC
*/
func Normalize(raw RawParams) FilterCriteria {
	rawLimit := raw.Limit
	if rawLimit == "" {
		rawLimit = raw.PageSize
	}
	page := pagination.Parse(raw.Page, rawLimit, pagination.DefaultLimit)

	criteria := FilterCriteria{
		SortField:     SortCreatedAt,
		SortDirection: SortDesc,
		Page:          min(page.Page, MaxPage),
		PageSize:      page.Limit,
	}

	if raw.Category != categoryAll {
		criteria.CategoryName = textFilter(raw.Category)
	}

	criteria.SearchTerm = textFilter(raw.Search)

	criteria.MinPrice = parsePrice(raw.MinPrice)
	criteria.MaxPrice = parsePrice(raw.MaxPrice)
	if criteria.MinPrice != nil && criteria.MaxPrice != nil && *criteria.MinPrice > *criteria.MaxPrice {
		criteria.MinPrice, criteria.MaxPrice = criteria.MaxPrice, criteria.MinPrice
	}

	if condition := Condition(raw.Condition); condition.IsValid() {
		criteria.Condition = &condition
	}

	criteria.Language = textFilter(raw.Language)

	if available, ok := convert.Bool(raw.Availability); ok {
		criteria.Availability = &available
	}

	if field := SortField(raw.SortBy); field.IsValid() {
		criteria.SortField = field
	}

	if direction := SortDirection(strings.ToUpper(raw.SortOrder)); direction.IsValid() {
		criteria.SortDirection = direction
	}

	return criteria
}

// textFilter drops empty values and values PostgreSQL refuses as text
// parameters (invalid UTF-8, NUL bytes).
func textFilter(raw string) *string {
	if raw == "" || !utf8.ValidString(raw) || strings.ContainsRune(raw, 0) {
		return nil
	}
	return pointer.To(raw)
}

func parsePrice(raw string) *float64 {
	price, ok := convert.Float(raw)
	if !ok || price < 0 {
		return nil
	}
	return &price
}
