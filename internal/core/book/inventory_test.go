// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package book_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/core/book"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/core/book/booktest"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/apperr"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/sec"
)

var (
	sellerClaims = &sec.AuthClaims{UserID: "7", Username: "nimal", Role: string(sec.RoleSeller)}
	otherSeller  = &sec.AuthClaims{UserID: "8", Username: "kamal", Role: string(sec.RoleSeller)}
	adminClaims  = &sec.AuthClaims{UserID: "1", Username: "root", Role: string(sec.RoleAdmin)}
)

func newInventory(t *testing.T) (*book.Inventory, *booktest.Store) {
	t.Helper()
	_, store := newCatalog(t)
	return book.NewInventory(store, store, discard), store
}

func validInput() book.NewBook {
	return book.NewBook{
		Title:      "  Discrete Mathematics  ",
		Author:     "Rosen",
		Condition:  book.ConditionUsed,
		Price:      ptr(14.0),
		CategoryID: ptr(mathematicsID),
	}
}

func TestCreateBook(t *testing.T) {
	inventory, store := newInventory(t)

	summary, err := inventory.CreateBook(context.Background(), sellerClaims, validInput())
	require.NoError(t, err)

	assert.Equal(t, "Discrete Mathematics", summary.Title)
	assert.Equal(t, book.DefaultLanguage, summary.Language)
	assert.True(t, summary.Availability)
	require.NotNil(t, summary.SellerID)
	assert.Equal(t, int64(7), *summary.SellerID)
	require.NotNil(t, summary.CategoryName)
	assert.Equal(t, "Mathematics", *summary.CategoryName)

	assert.Len(t, store.Books(), 6)
}

/*
TestCreateBook_Validation covers the write-side data quality rules.
*/
func TestCreateBook_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(in *book.NewBook)
		wantField string
	}{
		{"missing_title", func(in *book.NewBook) { in.Title = "   " }, "title"},
		{"long_author", func(in *book.NewBook) { in.Author = strings.Repeat("x", 301) }, "author"},
		{"bad_condition", func(in *book.NewBook) { in.Condition = "used" }, "condition"},
		{"missing_price", func(in *book.NewBook) { in.Price = nil }, "price"},
		{"negative_price", func(in *book.NewBook) { in.Price = ptr(-1.0) }, "price"},
		{"price_exceeds_column", func(in *book.NewBook) { in.Price = ptr(1e9) }, "price"},
		{"long_edition", func(in *book.NewBook) { in.Edition = ptr(strings.Repeat("2", book.MaxEditionLength+1)) }, "edition"},
		{"long_isbn", func(in *book.NewBook) { in.ISBN = ptr(strings.Repeat("9", book.MaxISBNLength+1)) }, "isbn"},
		{"nul_in_title", func(in *book.NewBook) { in.Title = "Calc\x00ulus" }, "title"},
		{"invalid_utf8_description", func(in *book.NewBook) { in.ShortDescription = ptr("worn \xff cover") }, "short_description"},
		{"missing_category", func(in *book.NewBook) { in.CategoryID = nil }, "category_id"},
		{"unknown_category", func(in *book.NewBook) { in.CategoryID = ptr(deletedID) }, "category_id"},
		{"rating_out_of_range", func(in *book.NewBook) { in.Rating = ptr(7.0) }, "rating"},
		{"year_too_old", func(in *book.NewBook) { in.PublishedYear = ptr(1200) }, "published_year"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inventory, store := newInventory(t)
			input := validInput()
			tc.mutate(&input)

			_, err := inventory.CreateBook(context.Background(), sellerClaims, input)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			require.NotEmpty(t, appErr.Details)
			assert.Equal(t, tc.wantField, appErr.Details[0].Field)
			assert.Len(t, store.Books(), 5)
		})
	}
}

func TestCreateBook_PriceAtColumnBound(t *testing.T) {
	inventory, _ := newInventory(t)
	input := validInput()
	input.Price = ptr(book.MaxListingPrice)

	summary, err := inventory.CreateBook(context.Background(), sellerClaims, input)
	require.NoError(t, err)
	assert.Equal(t, book.MaxListingPrice, summary.Price)
}

func TestCreateBook_NonNumericSubject(t *testing.T) {
	inventory, _ := newInventory(t)
	claims := &sec.AuthClaims{UserID: "0194f1c2-uuid", Role: string(sec.RoleSeller)}

	_, err := inventory.CreateBook(context.Background(), claims, validInput())
	assert.True(t, apperr.Is(err, "UNAUTHORIZED"))
}

func TestSetAvailability(t *testing.T) {
	tests := []struct {
		name     string
		actor    *sec.AuthClaims
		id       int64
		wantCode string
	}{
		{"owner_seller", sellerClaims, 1, ""},
		{"admin_any_listing", adminClaims, 3, ""},
		{"other_seller_forbidden", otherSeller, 1, "FORBIDDEN"},
		{"unowned_listing_forbidden", sellerClaims, 3, "FORBIDDEN"},
		{"missing_book", adminClaims, 404, "NOT_FOUND"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inventory, _ := newInventory(t)

			summary, err := inventory.SetAvailability(context.Background(), tc.actor, tc.id, false)
			if tc.wantCode != "" {
				assert.True(t, apperr.Is(err, tc.wantCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.False(t, summary.Availability)
		})
	}
}
