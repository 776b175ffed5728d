// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package newsletter

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/database/schema"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/dberr"
)

const resource = "Subscription"

var (
	subscriptionColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s",
		schema.NewsletterSubscription.ID, schema.NewsletterSubscription.Email, schema.NewsletterSubscription.Status,
		schema.NewsletterSubscription.ConfirmedAt, schema.NewsletterSubscription.UnsubscribedAt,
		schema.NewsletterSubscription.CreatedAt)

	findQuery = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		subscriptionColumns, schema.NewsletterSubscription.Table, schema.NewsletterSubscription.Email)

	// A returning subscriber is reactivated in place.
	confirmQuery = fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s) VALUES ($1, $2, NOW())
		ON CONFLICT (%[2]s) DO UPDATE
		SET %[3]s = EXCLUDED.%[3]s, %[4]s = EXCLUDED.%[4]s, %[5]s = NULL
		RETURNING %[6]s`,
		schema.NewsletterSubscription.Table, schema.NewsletterSubscription.Email,
		schema.NewsletterSubscription.Status, schema.NewsletterSubscription.ConfirmedAt,
		schema.NewsletterSubscription.UnsubscribedAt, subscriptionColumns)

	unsubscribeQuery = fmt.Sprintf(`
		UPDATE %[1]s SET %[2]s = $2, %[3]s = COALESCE(%[3]s, NOW())
		WHERE %[4]s = $1
		RETURNING %[5]s`,
		schema.NewsletterSubscription.Table, schema.NewsletterSubscription.Status,
		schema.NewsletterSubscription.UnsubscribedAt, schema.NewsletterSubscription.Email, subscriptionColumns)
)

// PostgresStore implements [SubscriptionStore] using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs a PostgreSQL backed subscription store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func scanSubscription(row pgx.Row) (*Subscription, error) {
	s := &Subscription{}
	err := row.Scan(&s.ID, &s.Email, &s.Status, &s.ConfirmedAt, &s.UnsubscribedAt, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// FindByEmail implements [SubscriptionStore].
func (store *PostgresStore) FindByEmail(ctx context.Context, email string) (*Subscription, error) {
	s, err := scanSubscription(store.pool.QueryRow(ctx, findQuery, email))
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	return s, nil
}

// Confirm implements [SubscriptionStore].
func (store *PostgresStore) Confirm(ctx context.Context, email string) (*Subscription, error) {
	s, err := scanSubscription(store.pool.QueryRow(ctx, confirmQuery, email, StatusConfirmed))
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("confirm subscription: %w", err), resource)
	}
	return s, nil
}

// Unsubscribe implements [SubscriptionStore].
func (store *PostgresStore) Unsubscribe(ctx context.Context, email string) (*Subscription, error) {
	s, err := scanSubscription(store.pool.QueryRow(ctx, unsubscribeQuery, email, StatusUnsubscribed))
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("unsubscribe: %w", err), resource)
	}
	return s, nil
}
