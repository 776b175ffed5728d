// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package book

import (
	"fmt"

	"github.com/NavodCaldera/online-bookstore-sub000/pkg/pagination"
	"github.com/NavodCaldera/online-bookstore-sub000/pkg/query"
)

// TieBreaker orders rows that compare equal on the requested sort field, so a
// row never appears on two pages.
var TieBreaker = query.Sort{Field: FieldID, Direction: query.Desc}

// searchFields are matched by the free-text search, in this order.
var searchFields = []query.Field{FieldTitle, FieldAuthor, FieldShortDescription}

/*
BuildQuery translates criteria into a storage-agnostic [query.Spec].

Each active filter contributes one AND-ed predicate in a fixed order: category,
search, minPrice, maxPrice, condition, language, availability. The sort column
only ever comes from the [SortField] allow-list.

Criteria that could not have come out of [Normalize] yield an error wrapping
[query.ErrInvariantViolation].
*/
func BuildQuery(criteria FilterCriteria) (query.Spec, error) {
	if err := checkCriteria(criteria); err != nil {
		return query.Spec{}, err
	}

	var predicates []query.Predicate

	if criteria.CategoryName != nil {
		predicates = append(predicates, query.Eq(FieldCategoryName, *criteria.CategoryName))
	}

	if criteria.SearchTerm != nil {
		matches := make([]query.Predicate, 0, len(searchFields))
		for _, field := range searchFields {
			matches = append(matches, query.Contains(field, *criteria.SearchTerm))
		}
		predicates = append(predicates, query.Or(matches...))
	}

	if criteria.MinPrice != nil {
		predicates = append(predicates, query.Gte(FieldPrice, *criteria.MinPrice))
	}

	if criteria.MaxPrice != nil {
		predicates = append(predicates, query.Lte(FieldPrice, *criteria.MaxPrice))
	}

	if criteria.Condition != nil {
		predicates = append(predicates, query.Eq(FieldCondition, string(*criteria.Condition)))
	}

	if criteria.Language != nil {
		predicates = append(predicates, query.Eq(FieldLanguage, *criteria.Language))
	}

	if criteria.Availability != nil {
		predicates = append(predicates, query.Eq(FieldAvailability, *criteria.Availability))
	}

	return query.Spec{
		Where: query.And(predicates...),
		Sort: query.Sort{
			Field:     sortFields[criteria.SortField],
			Direction: query.Direction(criteria.SortDirection),
		},
		Page: query.Page{
			Limit:  criteria.PageSize,
			Offset: pagination.Params{Page: criteria.Page, Limit: criteria.PageSize}.Offset(),
		},
	}, nil
}

func checkCriteria(criteria FilterCriteria) error {
	switch {
	case !criteria.SortField.IsValid():
		return fmt.Errorf("%w: sort field %q", query.ErrInvariantViolation, criteria.SortField)
	case !criteria.SortDirection.IsValid():
		return fmt.Errorf("%w: sort direction %q", query.ErrInvariantViolation, criteria.SortDirection)
	case criteria.Page < 1 || criteria.Page > MaxPage:
		return fmt.Errorf("%w: page %d", query.ErrInvariantViolation, criteria.Page)
	case criteria.PageSize < 1 || criteria.PageSize > pagination.MaxLimit:
		return fmt.Errorf("%w: page size %d", query.ErrInvariantViolation, criteria.PageSize)
	case criteria.MinPrice != nil && !ValidPrice(*criteria.MinPrice):
		return fmt.Errorf("%w: min price %v", query.ErrInvariantViolation, *criteria.MinPrice)
	case criteria.MaxPrice != nil && !ValidPrice(*criteria.MaxPrice):
		return fmt.Errorf("%w: max price %v", query.ErrInvariantViolation, *criteria.MaxPrice)
	case criteria.MinPrice != nil && criteria.MaxPrice != nil && *criteria.MinPrice > *criteria.MaxPrice:
		return fmt.Errorf("%w: inverted price range", query.ErrInvariantViolation)
	case criteria.Condition != nil && !criteria.Condition.IsValid():
		return fmt.Errorf("%w: condition %q", query.ErrInvariantViolation, *criteria.Condition)
	case criteria.CategoryName != nil && *criteria.CategoryName == "":
		return fmt.Errorf("%w: empty category", query.ErrInvariantViolation)
	case criteria.Language != nil && *criteria.Language == "":
		return fmt.Errorf("%w: empty language", query.ErrInvariantViolation)
	}
	return nil
}
