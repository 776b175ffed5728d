// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package book

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/apperr"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/ctxutil"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/sec"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/validate"
	"github.com/NavodCaldera/online-bookstore-sub000/pkg/pointer"
)

// # Inventory

// NewBook is the payload a seller submits to list a copy.
type NewBook struct {
	Title            string    `json:"title"`
	Author           string    `json:"author"`
	Condition        Condition `json:"condition"`
	Price            *float64  `json:"price"`
	CategoryID       *int64    `json:"category_id"`
	PublishedYear    *int      `json:"published_year"`
	Edition          *string   `json:"edition"`
	ShortDescription *string   `json:"short_description"`
	Availability     *bool     `json:"availability"`
	Rating           *float64  `json:"rating"`
	ISBN             *string   `json:"isbn"`
	Language         string    `json:"language"`
}

/*
Inventory is the single write path into the catalog.

Every listing is validated here before it reaches storage: a referenced
category must exist and the price must be a non-negative amount.
*/
type Inventory struct {
	store      Store
	categories CategoryChecker
	catalog    *Service
	logger     *slog.Logger
	now        func() time.Time
}

// NewInventory constructs the write path over store.
func NewInventory(store Store, categories CategoryChecker, logger *slog.Logger) *Inventory {
	return &Inventory{
		store:      store,
		categories: categories,
		catalog:    NewService(store, logger),
		logger:     logger,
		now:        time.Now,
	}
}

/*
CreateBook lists a new copy on behalf of seller.

The seller id comes from the token, never from the payload. The stored row is
read back through the catalog projection so the response matches GET /books/{id}.
*/
func (inventory *Inventory) CreateBook(ctx context.Context, seller *sec.AuthClaims, input NewBook) (*Summary, error) {
	sellerID, ok := seller.NumericUserID()
	if !ok {
		return nil, apperr.Unauthorized("Token subject is not a catalog account")
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Author = strings.TrimSpace(input.Author)
	input.Language = strings.TrimSpace(input.Language)

	validator := &validate.Validator{}
	validator.
		Required("title", input.Title).
		MaxLen("title", input.Title, MaxTextLength).
		Required("author", input.Author).
		MaxLen("author", input.Author, MaxTextLength).
		Custom("condition", !input.Condition.IsValid(), "Must be one of: New, Used, Fair, Poor").
		Custom("price", input.Price == nil, "This field is required").
		Custom("price", input.Price != nil && !ValidPrice(*input.Price), "Must be a non-negative amount").
		Custom("price", input.Price != nil && *input.Price > MaxListingPrice, "Must not exceed 99999999.99").
		Custom("category_id", input.CategoryID == nil, "This field is required").
		MaxLen("language", input.Language, MaxLanguageLength).
		MaxLen("edition", strings.TrimSpace(pointer.Val(input.Edition)), MaxEditionLength).
		MaxLen("isbn", strings.TrimSpace(pointer.Val(input.ISBN)), MaxISBNLength)

	for _, text := range []struct{ field, value string }{
		{"title", input.Title},
		{"author", input.Author},
		{"language", input.Language},
		{"edition", pointer.Val(input.Edition)},
		{"short_description", pointer.Val(input.ShortDescription)},
		{"isbn", pointer.Val(input.ISBN)},
	} {
		validator.PlainText(text.field, text.value)
	}

	if input.Rating != nil {
		validator.FloatRange("rating", *input.Rating, MinRating, MaxRating)
	}
	if input.PublishedYear != nil {
		validator.Range("published_year", *input.PublishedYear, MinPublishedYear, inventory.now().Year()+1)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	exists, err := inventory.categories.Exists(ctx, *input.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   "category_id",
			Message: "Category does not exist",
		})
	}

	language := input.Language
	if language == "" {
		language = DefaultLanguage
	}

	record := &Book{
		Title:            input.Title,
		Author:           input.Author,
		Condition:        input.Condition,
		PublishedYear:    input.PublishedYear,
		Edition:          nonBlank(input.Edition),
		ShortDescription: nonBlank(input.ShortDescription),
		Availability:     pointer.Fallback(input.Availability, true),
		CategoryID:       input.CategoryID,
		Rating:           pointer.Fallback(input.Rating, MinRating),
		Price:            *input.Price,
		ISBN:             nonBlank(input.ISBN),
		Language:         language,
		SellerID:         &sellerID,
	}

	id, err := inventory.store.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	ctxutil.LoggerOr(ctx, inventory.logger).InfoContext(ctx, "book_created",
		slog.Int64("book_id", id),
		slog.Int64("seller_id", sellerID),
		slog.Int64("category_id", *input.CategoryID),
	)

	return inventory.catalog.GetBook(ctx, id)
}

/*
SetAvailability marks a listing as available or sold out.

Sellers may only change their own listings; admins may change any.
*/
func (inventory *Inventory) SetAvailability(ctx context.Context, actor *sec.AuthClaims, id int64, available bool) (*Summary, error) {
	current, err := inventory.catalog.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.HasRole(sec.RoleAdmin) {
		actorID, ok := actor.NumericUserID()
		if !ok || current.SellerID == nil || *current.SellerID != actorID {
			return nil, apperr.Forbidden("Only the listing seller can change its availability")
		}
	}

	if current.Availability == available {
		return current, nil
	}

	if err := inventory.store.UpdateAvailability(ctx, id, available); err != nil {
		return nil, err
	}

	ctxutil.LoggerOr(ctx, inventory.logger).InfoContext(ctx, "book_availability_changed",
		slog.Int64("book_id", id),
		slog.Bool("available", available),
		slog.String("actor_id", actor.UserID),
	)

	return inventory.catalog.GetBook(ctx, id)
}

func nonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	return pointer.NonBlank(*s)
}
