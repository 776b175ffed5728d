// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package schema

// NewsletterSubscriptionTable represents the 'newsletter_subscriptions' table
type NewsletterSubscriptionTable struct {
	Table          string
	ID             string
	Email          string
	Status         string
	ConfirmedAt    string
	UnsubscribedAt string
	CreatedAt      string
}

// NewsletterSubscription is the schema definition for newsletter_subscriptions
var NewsletterSubscription = NewsletterSubscriptionTable{
	Table:          "newsletter_subscriptions",
	ID:             "id",
	Email:          "email",
	Status:         "status",
	ConfirmedAt:    "confirmed_at",
	UnsubscribedAt: "unsubscribed_at",
	CreatedAt:      "created_at",
}
