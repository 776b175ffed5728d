// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package book

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/apperr"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/database/schema"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/dberr"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/postgres"
	"github.com/NavodCaldera/online-bookstore-sub000/pkg/query"
)

// # PostgreSQL Store

// columns is the closed mapping from projection fields to SQL. Nothing else
// can reach a column position of a catalog query.
var columns = map[query.Field]string{
	FieldID:               "b." + schema.Book.ID,
	FieldTitle:            "b." + schema.Book.Title,
	FieldAuthor:           "b." + schema.Book.Author,
	FieldShortDescription: "b." + schema.Book.ShortDescription,
	FieldCondition:        "b." + schema.Book.Condition,
	FieldPublishedYear:    "b." + schema.Book.PublishedYear,
	FieldAvailability:     "b." + schema.Book.Availability,
	FieldCategoryID:       "b." + schema.Book.CategoryID,
	FieldCategoryName:     "c." + schema.Category.Name,
	FieldRating:           "b." + schema.Book.Rating,
	FieldPrice:            "b." + schema.Book.Price,
	FieldLanguage:         "b." + schema.Book.Language,
	FieldSellerID:         "b." + schema.Book.SellerID,
	FieldCreatedAt:        "b." + schema.Book.CreatedAt,
}

// Left-outer joins keep orphaned listings visible.
var (
	categoryJoin = fmt.Sprintf("LEFT JOIN %s c ON c.%s = b.%s",
		schema.Category.Table, schema.Category.ID, schema.Book.CategoryID)

	sellerJoin = fmt.Sprintf("LEFT JOIN %s u ON u.%s = b.%s",
		schema.User.Table, schema.User.ID, schema.Book.SellerID)

	summarySelect = fmt.Sprintf(`
		SELECT
			b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s,
			b.%s, b.%s::float8, b.%s::float8, b.%s, b.%s, b.%s, b.%s, b.%s,
			c.%s, COALESCE(u.%s, u.%s)
		FROM %s b
		%s
		%s`,
		schema.Book.ID, schema.Book.Title, schema.Book.Author, schema.Book.Condition,
		schema.Book.PublishedYear, schema.Book.Edition, schema.Book.ShortDescription, schema.Book.Availability,
		schema.Book.CategoryID, schema.Book.Rating, schema.Book.Price, schema.Book.ISBN,
		schema.Book.Language, schema.Book.SellerID, schema.Book.CreatedAt, schema.Book.UpdatedAt,
		schema.Category.Name, schema.User.DisplayName, schema.User.Username,
		schema.Book.Table, categoryJoin, sellerJoin,
	)

	countSelect = fmt.Sprintf("SELECT COUNT(*) FROM %s b %s", schema.Book.Table, categoryJoin)

	groupedCountSelect = fmt.Sprintf("SELECT b.%s, COUNT(*) FROM %s b %s",
		schema.Book.CategoryID, schema.Book.Table, categoryJoin)
)

// postgresStore implements [Store] using pgx.
type postgresStore struct {
	pool     *pgxpool.Pool
	renderer *postgres.Renderer
}

// NewPostgresStore constructs a PostgreSQL backed catalog store.
func NewPostgresStore(pool *pgxpool.Pool) Store {
	return &postgresStore{pool: pool, renderer: postgres.NewRenderer(columns)}
}

// Find renders spec against the summary projection.
func (store *postgresStore) Find(ctx context.Context, spec query.Spec) ([]*Summary, error) {
	sql, args, err := store.renderer.Select(summarySelect, spec, TieBreaker)
	if err != nil {
		return nil, dberr.Wrap(err, "Book")
	}

	rows, err := store.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Book")
	}
	defer rows.Close()

	items := make([]*Summary, 0, spec.Page.Limit)
	for rows.Next() {
		item := &Summary{}
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Author, &item.Condition,
			&item.PublishedYear, &item.Edition, &item.ShortDescription, &item.Availability,
			&item.CategoryID, &item.Rating, &item.Price, &item.ISBN,
			&item.Language, &item.SellerID, &item.CreatedAt, &item.UpdatedAt,
			&item.CategoryName, &item.SellerName,
		); err != nil {
			return nil, dberr.Wrap(err, "Book")
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Book")
	}

	return items, nil
}

// Count renders where against the same joins as [postgresStore.Find].
func (store *postgresStore) Count(ctx context.Context, where query.Predicate) (int, error) {
	sql, args, err := store.renderer.Filter(countSelect, where, "")
	if err != nil {
		return 0, dberr.Wrap(err, "Book")
	}

	var total int
	if err := store.pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "Book")
	}
	return total, nil
}

// CountByCategory groups the matching rows by category in a single statement.
func (store *postgresStore) CountByCategory(ctx context.Context, where query.Predicate) (map[int64]int, error) {
	suffix := fmt.Sprintf(" AND b.%s IS NOT NULL GROUP BY b.%s", schema.Book.CategoryID, schema.Book.CategoryID)

	sql, args, err := store.renderer.Filter(groupedCountSelect, where, suffix)
	if err != nil {
		return nil, dberr.Wrap(err, "Book")
	}

	rows, err := store.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Book")
	}

	counts := make(map[int64]int)
	var (
		categoryID int64
		count      int
	)
	_, err = pgx.ForEachRow(rows, []any{&categoryID, &count}, func() error {
		counts[categoryID] = count
		return nil
	})
	if err != nil {
		return nil, dberr.Wrap(err, "Book")
	}

	return counts, nil
}

// Create inserts b and returns the generated id.
func (store *postgresStore) Create(ctx context.Context, b *Book) (int64, error) {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING %s`,
		schema.Book.Table,
		schema.Book.Title, schema.Book.Author, schema.Book.Condition, schema.Book.PublishedYear,
		schema.Book.Edition, schema.Book.ShortDescription, schema.Book.Availability, schema.Book.CategoryID,
		schema.Book.Rating, schema.Book.Price, schema.Book.ISBN, schema.Book.Language, schema.Book.SellerID,
		schema.Book.ID,
	)

	var id int64
	err := store.pool.QueryRow(ctx, sql,
		b.Title, b.Author, string(b.Condition), b.PublishedYear,
		b.Edition, b.ShortDescription, b.Availability, b.CategoryID,
		b.Rating, b.Price, b.ISBN, b.Language, b.SellerID,
	).Scan(&id)
	if err != nil {
		return 0, dberr.Wrap(err, "Book")
	}

	return id, nil
}

// UpdateAvailability sets the availability flag and touches updated_at.
func (store *postgresStore) UpdateAvailability(ctx context.Context, id int64, available bool) error {
	sql := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2`,
		schema.Book.Table, schema.Book.Availability, schema.Book.UpdatedAt, schema.Book.ID)

	tag, err := store.pool.Exec(ctx, sql, available, id)
	if err != nil {
		return dberr.Wrap(err, "Book")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Book")
	}
	return nil
}
