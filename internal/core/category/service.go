// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package category

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/core/book"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/apperr"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/ctxutil"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/validate"
	"github.com/NavodCaldera/online-bookstore-sub000/pkg/pointer"
	"github.com/NavodCaldera/online-bookstore-sub000/pkg/query"
	"github.com/NavodCaldera/online-bookstore-sub000/pkg/slug"
)

// # Service Layer

// Service coordinates category reads and administration.
type Service struct {
	store  Store
	books  BookCounter
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(store Store, books BookCounter, logger *slog.Logger) *Service {
	return &Service{store: store, books: books, logger: logger}
}

// available counts only listings that can be bought right now.
func available(extra ...query.Predicate) query.Predicate {
	return query.And(append([]query.Predicate{query.Eq(book.FieldAvailability, true)}, extra...)...)
}

/*
List returns every category with its number of available books.

Categories and counts are fetched concurrently; a category without available
books reports zero.
*/
func (service *Service) List(ctx context.Context) ([]*Listing, error) {
	var (
		categories []*Category
		counts     map[int64]int
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		categories, err = service.store.List(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		counts, err = service.books.CountByCategory(groupCtx, available())
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, service.fail(ctx, "category_list_failed", err)
	}

	listings := make([]*Listing, 0, len(categories))
	for _, c := range categories {
		listings = append(listings, &Listing{Category: *c, BookCount: counts[c.ID]})
	}
	return listings, nil
}

// Get returns one category with its available book count.
func (service *Service) Get(ctx context.Context, id int64) (*Listing, error) {
	c, err := service.store.Get(ctx, id)
	if err != nil {
		return nil, service.fail(ctx, "category_get_failed", err)
	}

	counts, err := service.books.CountByCategory(ctx, available(query.Eq(book.FieldCategoryID, id)))
	if err != nil {
		return nil, service.fail(ctx, "category_get_failed", err)
	}

	return &Listing{Category: *c, BookCount: counts[id]}, nil
}

/*
Create validates input and stores a new category.

The slug is derived from the name once and never changes afterwards. A name
that has no slug-able characters is rejected.
*/
func (service *Service) Create(ctx context.Context, input NewCategory) (*Listing, error) {
	name := strings.TrimSpace(input.Name)
	var description *string
	if input.Description != nil {
		description = pointer.NonBlank(*input.Description)
	}
	categorySlug := slug.From(name)

	v := &validate.Validator{}
	v.Required("name", name).
		MaxLen("name", name, MaxNameLength).
		PlainText("name", name).
		Custom("name", name != "" && categorySlug == "", "Must contain at least one letter or digit")
	if description != nil {
		v.MaxLen("description", *description, MaxDescriptionLength).PlainText("description", *description)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	created, err := service.store.Create(ctx, &Category{Name: name, Slug: categorySlug, Description: description})
	if err != nil {
		return nil, service.fail(ctx, "category_create_failed", err)
	}

	ctxutil.LoggerOr(ctx, service.logger).InfoContext(ctx, "category_created",
		slog.Int64("category_id", created.ID),
		slog.String("slug", created.Slug),
	)

	return &Listing{Category: *created}, nil
}

// Delete removes a category that no book references.
func (service *Service) Delete(ctx context.Context, id int64) error {
	if err := service.store.Delete(ctx, id); err != nil {
		return service.fail(ctx, "category_delete_failed", err)
	}

	ctxutil.LoggerOr(ctx, service.logger).InfoContext(ctx, "category_deleted", slog.Int64("category_id", id))
	return nil
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
