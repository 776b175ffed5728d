// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package book

import (
	"context"

	"github.com/NavodCaldera/online-bookstore-sub000/pkg/query"
)

// # Book Data Access

// Store defines the data access contract for the catalog.
type Store interface {

	/*
		Find returns the summaries matching spec, ordered by spec.Sort and then
		by [TieBreaker], within spec.Page.

		Books whose category or seller reference is missing are still returned,
		with the joined name left nil.
	*/
	Find(ctx context.Context, spec query.Spec) ([]*Summary, error)

	// Count returns how many summaries match where, ignoring paging.
	Count(ctx context.Context, where query.Predicate) (int, error)

	/*
		CountByCategory counts the summaries matching where per category id.
		Books without a category are not counted. Categories without matches
		are absent from the map.
	*/
	CountByCategory(ctx context.Context, where query.Predicate) (map[int64]int, error)

	// Create inserts a listing and returns its id. ID and timestamps of b are ignored.
	Create(ctx context.Context, b *Book) (int64, error)

	// UpdateAvailability flips the availability flag. It returns NOT_FOUND when
	// no book has the given id.
	UpdateAvailability(ctx context.Context, id int64, available bool) error
}

// CategoryChecker confirms that a category exists before a book references it.
type CategoryChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
