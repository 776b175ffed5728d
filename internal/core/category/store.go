// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package category

import (
	"context"

	"github.com/NavodCaldera/online-bookstore-sub000/pkg/query"
)

// # Category Data Access

// Store defines the data access contract for categories.
type Store interface {
	// List returns every category ordered by name.
	List(ctx context.Context) ([]*Category, error)

	// Get returns NOT_FOUND when no category has the given id.
	Get(ctx context.Context, id int64) (*Category, error)

	// Create inserts c and returns the stored row. A name or slug clash is a CONFLICT.
	Create(ctx context.Context, c *Category) (*Category, error)

	// Delete returns NOT_FOUND when missing and CONFLICT while books reference it.
	Delete(ctx context.Context, id int64) error

	// Exists reports whether a category with the given id is present.
	Exists(ctx context.Context, id int64) (bool, error)
}

// BookCounter counts catalog books per category. [book.Store] satisfies it.
type BookCounter interface {
	CountByCategory(ctx context.Context, where query.Predicate) (map[int64]int, error)
}
