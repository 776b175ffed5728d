// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
package pagination

import "strconv"

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 12
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Parse converts raw "page" and "limit" strings into [Params].
//
// # Clamping
//
// A missing, non-numeric or non-positive page becomes [DefaultPage]. A
// missing, non-numeric, non-positive or excessive limit becomes defaultLimit.
func Parse(rawPage, rawLimit string, defaultLimit int) Params {
	page := parseInt(rawPage, DefaultPage)
	limit := parseInt(rawLimit, defaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 || limit > MaxLimit {
		limit = defaultLimit
	}

	return Params{Page: page, Limit: limit}
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// NewMeta constructs pagination metadata for a response.
//
// TotalPages is ceil(total / limit); the navigation flags are derived from the
// requested page, never from the number of rows actually returned.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

// Result is one page of items together with its metadata.
type Result[T any] struct {
	Items []T
	Meta  Meta
}

// NewResult assembles a [Result]. A nil items slice is replaced by an empty
// one so that responses always encode a JSON array.
func NewResult[T any](items []T, page, limit, total int) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{Items: items, Meta: NewMeta(page, limit, total)}
}

// parseInt parses a single integer parameter with a fallback default.
func parseInt(raw string, defaultVal int) int {
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
