// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

// Package booktest provides an in-memory [book.Store] for tests.
//
// It evaluates query specs with [query.Match] and joins categories and sellers
// at read time, the way the SQL store does, so orphaned references behave the
// same: the row is kept and the joined name is nil.
package booktest

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/core/book"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/apperr"
	"github.com/NavodCaldera/online-bookstore-sub000/pkg/query"
)

// Store is a concurrency-safe in-memory catalog.
type Store struct {
	mu         sync.Mutex
	books      []book.Book
	categories map[int64]string
	sellers    map[int64]string
	nextID     int64
	clock      time.Time

	// Err, when set, is returned by every operation.
	Err error
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		categories: make(map[int64]string),
		sellers:    make(map[int64]string),
		nextID:     1,
		clock:      time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

// AddCategory registers a category name for joins.
func (s *Store) AddCategory(id int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[id] = name
}

// AddSeller registers a seller display name for joins.
func (s *Store) AddSeller(id int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sellers[id] = name
}

// Exists implements [book.CategoryChecker].
func (s *Store) Exists(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	_, ok := s.categories[id]
	return ok, nil
}

// Seed inserts books as-is, without validation. Zero ids and creation times
// are assigned; every seeded book is one minute newer than the previous one.
func (s *Store) Seed(books ...book.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range books {
		s.insert(b)
	}
}

func (s *Store) insert(b book.Book) int64 {
	if b.ID == 0 {
		b.ID = s.nextID
	}
	s.nextID = max(s.nextID, b.ID) + 1

	if b.CreatedAt.IsZero() {
		s.clock = s.clock.Add(time.Minute)
		b.CreatedAt = s.clock
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = b.CreatedAt
	}

	s.books = append(s.books, b)
	return b.ID
}

// Books returns a copy of the raw rows.
func (s *Store) Books() []book.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.books)
}

func (s *Store) summaries() []*book.Summary {
	out := make([]*book.Summary, 0, len(s.books))
	for _, b := range s.books {
		summary := &book.Summary{Book: b}
		if b.CategoryID != nil {
			if name, ok := s.categories[*b.CategoryID]; ok {
				summary.CategoryName = &name
			}
		}
		if b.SellerID != nil {
			if name, ok := s.sellers[*b.SellerID]; ok {
				summary.SellerName = &name
			}
		}
		out = append(out, summary)
	}
	return out
}

func (s *Store) filter(where query.Predicate) ([]*book.Summary, error) {
	var matched []*book.Summary
	for _, summary := range s.summaries() {
		ok, err := query.Match(where, summary)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, summary)
		}
	}
	return matched, nil
}

// Find implements [book.Store].
func (s *Store) Find(_ context.Context, spec query.Spec) ([]*book.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	matched, err := s.filter(spec.Where)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(matched, func(a, b *book.Summary) int {
		for _, order := range []query.Sort{spec.Sort, book.TieBreaker} {
			if order.Field == "" {
				continue
			}
			if c := compareField(a, b, order); c != 0 {
				return c
			}
		}
		return 0
	})

	start := min(spec.Page.Offset, len(matched))
	end := len(matched)
	if spec.Page.Limit > 0 {
		end = min(start+spec.Page.Limit, len(matched))
	}
	return matched[start:end], nil
}

// Count implements [book.Store].
func (s *Store) Count(_ context.Context, where query.Predicate) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return 0, s.Err
	}
	matched, err := s.filter(where)
	return len(matched), err
}

// CountByCategory implements [book.Store].
func (s *Store) CountByCategory(_ context.Context, where query.Predicate) (map[int64]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	matched, err := s.filter(where)
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int)
	for _, summary := range matched {
		if summary.CategoryID != nil {
			counts[*summary.CategoryID]++
		}
	}
	return counts, nil
}

// Create implements [book.Store].
func (s *Store) Create(_ context.Context, b *book.Book) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return 0, s.Err
	}
	record := *b
	record.ID = 0
	record.CreatedAt = time.Time{}
	record.UpdatedAt = time.Time{}
	return s.insert(record), nil
}

// UpdateAvailability implements [book.Store].
func (s *Store) UpdateAvailability(_ context.Context, id int64, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}
	for i := range s.books {
		if s.books[i].ID == id {
			s.books[i].Availability = available
			return nil
		}
	}
	return apperr.NotFound("Book")
}

// compareField orders by one sort term with nulls last in both directions.
func compareField(a, b *book.Summary, order query.Sort) int {
	av, aok := a.Value(order.Field)
	bv, bok := b.Value(order.Field)

	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}

	c := compareValues(av, bv)
	if order.Direction == query.Desc {
		return -c
	}
	return c
}

func compareValues(a, b any) int {
	switch x := a.(type) {
	case string:
		return strings.Compare(x, b.(string))
	case float64:
		return cmp.Compare(x, b.(float64))
	case int:
		return cmp.Compare(x, b.(int))
	case int64:
		return cmp.Compare(x, b.(int64))
	case time.Time:
		return x.Compare(b.(time.Time))
	case bool:
		y := b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	}
	return 0
}
