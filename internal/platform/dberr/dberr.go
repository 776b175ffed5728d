// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

// Package dberr translates low-level PostgreSQL errors into [apperr.AppError]
// values, classifying them by SQLSTATE without leaking driver text to clients.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/apperr"
	"github.com/NavodCaldera/online-bookstore-sub000/pkg/query"
)

// Wrap inspects a database error and maps it onto the application taxonomy.
//
// resource names the entity for NOT_FOUND messages ("Book", "Category").
// Invariant violations raised while rendering a query are programmer errors and
// surface as INTERNAL_ERROR; every other unrecognised failure is a storage error.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	// Already classified further down the stack.
	if appErr := apperr.As(err); appErr != nil {
		return appErr
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	if errors.Is(err, query.ErrInvariantViolation) {
		return apperr.Internal(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			conflict := apperr.Conflict(resource + " already exists")
			conflict.Cause = err
			return conflict
		case pgerrcode.ForeignKeyViolation:
			conflict := apperr.Conflict(fmt.Sprintf("%s is referenced by other records", resource))
			conflict.Cause = err
			return conflict
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation,
			pgerrcode.NumericValueOutOfRange, pgerrcode.StringDataRightTruncationDataException,
			pgerrcode.CharacterNotInRepertoire, pgerrcode.UntranslatableCharacter:
			invalid := apperr.ValidationError(fmt.Sprintf("%s violates a data constraint", resource))
			invalid.Cause = err
			return invalid
		}
	}

	return apperr.Storage(err)
}
