// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

/*
Package newsletter implements double opt-in newsletter subscriptions.

A subscription request only stores a short-lived confirmation token in Redis
and emails a link. The subscriber becomes confirmed in PostgreSQL once the link
is opened; unconfirmed requests simply expire.
*/
package newsletter

import (
	"strings"
	"time"
)

// Status is the lifecycle state of a stored subscription.
type Status string

const (
	StatusConfirmed    Status = "confirmed"
	StatusUnsubscribed Status = "unsubscribed"
)

// ConfirmTemplate is the mail template sent on [Service.Subscribe].
const ConfirmTemplate = "newsletter_confirm.tmpl"

// MaxEmailLength is the practical upper bound of an address (RFC 5321).
const MaxEmailLength = 254

// Subscription is a newsletter recipient.
type Subscription struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email"`
	Status         Status     `json:"status"`
	ConfirmedAt    *time.Time `json:"confirmed_at,omitempty"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// NormalizeEmail trims and lower-cases an address so that one mailbox maps to
// one subscription.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
