// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package newsletter

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/apperr"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/constants"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/ctxutil"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/mailer"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/validate"
	"github.com/NavodCaldera/online-bookstore-sub000/pkg/uuid"
)

// # Service Layer

// Service runs the double opt-in flow.
type Service struct {
	subscriptions SubscriptionStore
	tokens        TokenStore
	mail          mailer.Sender
	confirmURL    string
	ttl           time.Duration
	newToken      func() string
	logger        *slog.Logger
}

// NewService constructs a new [Service]. publicBaseURL is the storefront
// origin the confirmation link points at.
func NewService(subscriptions SubscriptionStore, tokens TokenStore, mail mailer.Sender, publicBaseURL string, logger *slog.Logger) *Service {
	return &Service{
		subscriptions: subscriptions,
		tokens:        tokens,
		mail:          mail,
		confirmURL:    strings.TrimRight(publicBaseURL, "/") + "/newsletter/confirm",
		ttl:           constants.NewsletterConfirmTTL,
		newToken:      uuid.NewToken,
		logger:        logger,
	}
}

func validEmail(field, email string) error {
	v := &validate.Validator{}
	v.Required(field, email).MaxLen(field, email, MaxEmailLength).Email(field, email)
	return v.Err()
}

/*
Subscribe starts a subscription for email.

# Flow
 1. Validate the address. Already confirmed addresses are a CONFLICT.
 2. Store a fresh confirmation token with a 48 hour expiry.
 3. Email the confirmation link. When delivery fails the token is discarded.
*/
func (service *Service) Subscribe(ctx context.Context, email string) error {
	email = NormalizeEmail(email)
	if err := validEmail("email", email); err != nil {
		return err
	}

	existing, err := service.subscriptions.FindByEmail(ctx, email)
	switch {
	case err == nil && existing.Status == StatusConfirmed:
		return apperr.Conflict("This email is already subscribed")
	case err != nil && !apperr.Is(err, "NOT_FOUND"):
		return service.fail(ctx, "newsletter_lookup_failed", err)
	}

	token := service.newToken()
	if err := service.tokens.Save(ctx, token, email, service.ttl); err != nil {
		return service.fail(ctx, "newsletter_token_save_failed", err)
	}

	link := service.confirmURL + "?token=" + url.QueryEscape(token)
	data := map[string]any{
		"ConfirmURL":     link,
		"ExpiresInHours": int(service.ttl.Hours()),
	}
	if err := service.mail.Send(ctx, email, ConfirmTemplate, data); err != nil {
		if delErr := service.tokens.Delete(ctx, token); delErr != nil {
			ctxutil.LoggerOr(ctx, service.logger).WarnContext(ctx, "newsletter_token_cleanup_failed", slog.Any("error", delErr))
		}
		return service.fail(ctx, "newsletter_mail_failed",
			apperr.ServiceUnavailable("Confirmation email could not be sent", err))
	}

	ctxutil.LoggerOr(ctx, service.logger).InfoContext(ctx, "newsletter_confirmation_sent")
	return nil
}

// Confirm activates the subscription a token was issued for. Tokens are single use.
func (service *Service) Confirm(ctx context.Context, token string) (*Subscription, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, apperr.NotFound("Confirmation token")
	}

	email, err := service.tokens.Consume(ctx, token)
	if err != nil {
		return nil, service.fail(ctx, "newsletter_token_consume_failed", err)
	}

	subscription, err := service.subscriptions.Confirm(ctx, email)
	if err != nil {
		// Hand the token back so the link still works once storage recovers.
		if restoreErr := service.tokens.Save(ctx, token, email, service.ttl); restoreErr != nil {
			ctxutil.LoggerOr(ctx, service.logger).WarnContext(ctx, "newsletter_token_restore_failed", slog.Any("error", restoreErr))
		}
		return nil, service.fail(ctx, "newsletter_confirm_failed", err)
	}

	ctxutil.LoggerOr(ctx, service.logger).InfoContext(ctx, "newsletter_subscription_confirmed",
		slog.Int64("subscription_id", subscription.ID))
	return subscription, nil
}

// Unsubscribe stops delivery to email.
func (service *Service) Unsubscribe(ctx context.Context, email string) (*Subscription, error) {
	email = NormalizeEmail(email)
	if err := validEmail("email", email); err != nil {
		return nil, err
	}

	subscription, err := service.subscriptions.Unsubscribe(ctx, email)
	if err != nil {
		return nil, service.fail(ctx, "newsletter_unsubscribe_failed", err)
	}

	ctxutil.LoggerOr(ctx, service.logger).InfoContext(ctx, "newsletter_unsubscribed",
		slog.Int64("subscription_id", subscription.ID))
	return subscription, nil
}

// fail logs server side failures under event. Client errors pass through silently.
func (service *Service) fail(ctx context.Context, event string, err error) error {
	appErr := apperr.As(err)
	if appErr != nil && appErr.HTTPStatus < 500 {
		return appErr
	}

	ctxutil.LoggerOr(ctx, service.logger).ErrorContext(ctx, event, slog.Any("error", err))

	if appErr != nil {
		return appErr
	}
	return apperr.Storage(err)
}
