// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/apperr"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/database/schema"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/dberr"
)

const resource = "Category"

var (
	selectColumns = strings.Join(schema.Category.Columns(), ", ")

	listQuery = fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC, %s ASC`,
		selectColumns, schema.Category.Table, schema.Category.Name, schema.Category.ID)

	getQuery = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.Category.Table, schema.Category.ID)

	insertQuery = fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		schema.Category.Table, schema.Category.Name, schema.Category.Slug, schema.Category.Description, selectColumns)

	deleteQuery = fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Category.Table, schema.Category.ID)

	existsQuery = fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Category.Table, schema.Category.ID)
)

// PostgresStore implements [Store] using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs a PostgreSQL backed category store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func scanCategory(row pgx.Row) (*Category, error) {
	c := &Category{}
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

// List implements [Store].
func (store *PostgresStore) List(ctx context.Context) ([]*Category, error) {
	rows, err := store.pool.Query(ctx, listQuery)
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("list categories: %w", err), resource)
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, dberr.Wrap(fmt.Errorf("scan category: %w", err), resource)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(fmt.Errorf("iterate categories: %w", err), resource)
	}
	return categories, nil
}

// Get implements [Store].
func (store *PostgresStore) Get(ctx context.Context, id int64) (*Category, error) {
	c, err := scanCategory(store.pool.QueryRow(ctx, getQuery, id))
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	return c, nil
}

// Create implements [Store].
func (store *PostgresStore) Create(ctx context.Context, c *Category) (*Category, error) {
	created, err := scanCategory(store.pool.QueryRow(ctx, insertQuery, c.Name, c.Slug, c.Description))
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("insert category: %w", err), resource)
	}
	return created, nil
}

// Delete implements [Store].
func (store *PostgresStore) Delete(ctx context.Context, id int64) error {
	tag, err := store.pool.Exec(ctx, deleteQuery, id)
	if err != nil {
		return dberr.Wrap(fmt.Errorf("delete category: %w", err), resource)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resource)
	}
	return nil
}

// Exists implements [Store] and [book.CategoryChecker].
func (store *PostgresStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := store.pool.QueryRow(ctx, existsQuery, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(fmt.Errorf("category exists: %w", err), resource)
	}
	return exists, nil
}
