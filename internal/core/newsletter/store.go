// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package newsletter

import (
	"context"
	"time"
)

// SubscriptionStore persists confirmed and unsubscribed recipients.
type SubscriptionStore interface {
	// FindByEmail returns NOT_FOUND when the address never confirmed.
	FindByEmail(ctx context.Context, email string) (*Subscription, error)

	// Confirm creates or reactivates the subscription of email.
	Confirm(ctx context.Context, email string) (*Subscription, error)

	// Unsubscribe marks the subscription of email as unsubscribed. It returns
	// NOT_FOUND when there is none.
	Unsubscribe(ctx context.Context, email string) (*Subscription, error)
}

// TokenStore keeps pending confirmation tokens until they expire.
type TokenStore interface {
	Save(ctx context.Context, token, email string, ttl time.Duration) error

	// Consume atomically returns and removes the email a token was issued
	// for, so at most one caller ever receives it. It returns NOT_FOUND for
	// unknown, expired or already consumed tokens.
	Consume(ctx context.Context, token string) (string, error)

	Delete(ctx context.Context, token string) error
}
