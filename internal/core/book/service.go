// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package book

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/apperr"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/ctxutil"
	"github.com/NavodCaldera/online-bookstore-sub000/pkg/pagination"
	"github.com/NavodCaldera/online-bookstore-sub000/pkg/query"
)

// Featured list bounds.
const (
	DefaultFeaturedLimit = 8
	MaxFeaturedLimit     = 24
)

// # Service Layer

// Service answers catalog read requests. It never mutates or caches.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs a new [Service] over the given store.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

/*
Search returns one page of the catalog for raw client parameters.

Malformed parameters never fail the request; they are normalized away. The
total is counted by storage, so the metadata stays right on a partial last
page and on pages past the end.
*/
func (service *Service) Search(ctx context.Context, raw RawParams) (pagination.Result[*Summary], error) {
	criteria := Normalize(raw)

	spec, err := BuildQuery(criteria)
	if err != nil {
		return pagination.Result[*Summary]{}, service.fail(ctx, "catalog_query_invariant_violated", err)
	}

	var (
		items []*Summary
		total int
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var findErr error
		items, findErr = service.store.Find(groupCtx, spec)
		return findErr
	})
	group.Go(func() error {
		var countErr error
		total, countErr = service.store.Count(groupCtx, spec.Where)
		return countErr
	})

	if err := group.Wait(); err != nil {
		return pagination.Result[*Summary]{}, service.fail(ctx, "catalog_search_failed", err)
	}

	return pagination.NewResult(items, criteria.Page, criteria.PageSize, total), nil
}

// GetBook returns a single summary through the same projection as [Service.Search].
func (service *Service) GetBook(ctx context.Context, id int64) (*Summary, error) {
	spec := query.Spec{
		Where: query.Eq(FieldID, id),
		Page:  query.Page{Limit: 1},
	}

	items, err := service.store.Find(ctx, spec)
	if err != nil {
		return nil, service.fail(ctx, "catalog_get_failed", err)
	}
	if len(items) == 0 {
		return nil, apperr.NotFound("Book")
	}
	return items[0], nil
}

/*
Featured returns the best rated available books.

Unlike [Service.Search] it always restricts to available listings. A limit
outside [1, MaxFeaturedLimit] falls back to [DefaultFeaturedLimit].
*/
func (service *Service) Featured(ctx context.Context, limit int) ([]*Summary, error) {
	if limit < 1 || limit > MaxFeaturedLimit {
		limit = DefaultFeaturedLimit
	}

	spec := query.Spec{
		Where: query.And(query.Eq(FieldAvailability, true)),
		Sort:  query.Sort{Field: FieldRating, Direction: query.Desc},
		Page:  query.Page{Limit: limit},
	}

	items, err := service.store.Find(ctx, spec)
	if err != nil {
		return nil, service.fail(ctx, "catalog_featured_failed", err)
	}
	return items, nil
}

// fail logs err under event and returns it as an [apperr.AppError].
// Invariant violations become INTERNAL_ERROR, unclassified errors DATABASE_ERROR.
func (service *Service) fail(ctx context.Context, event string, err error) error {
	if appErr := apperr.As(err); appErr != nil && appErr.HTTPStatus < 500 {
		return appErr
	}

	ctxutil.LoggerOr(ctx, service.logger).ErrorContext(ctx, event, slog.Any("error", err))

	switch {
	case errors.Is(err, query.ErrInvariantViolation):
		return apperr.Internal(err)
	case apperr.As(err) != nil:
		return err
	default:
		return apperr.Storage(err)
	}
}
