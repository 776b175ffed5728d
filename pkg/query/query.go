// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

/*
Package query describes storage-agnostic read queries.

A [Spec] is a predicate tree, a sort descriptor and a page descriptor. It never
carries SQL: storage adapters render it (see internal/platform/postgres) and the
in-memory [Match] evaluator executes it directly.

Rules:

  - [Field] values are internal constants declared by domain packages. They are
    the only thing a renderer may place in a column position.
  - Predicate values are always bound parameters.
*/
package query

import (
	"errors"
	"fmt"
)

// ErrInvariantViolation signals a programmer error: a spec or criteria value
// that could only exist if validation was bypassed.
var ErrInvariantViolation = errors.New("query: invariant violation")

// # Building Blocks

// Field names a queryable attribute of a projection.
type Field string

// Op identifies the kind of a [Predicate] node.
type Op string

const (
	OpAnd      Op = "and"
	OpOr       Op = "or"
	OpEq       Op = "eq"
	OpContains Op = "contains"
	OpGte      Op = "gte"
	OpLte      Op = "lte"
)

// Predicate is a node of the boolean filter tree.
//
// Leaf nodes (Eq, Contains, Gte, Lte) use Field and Value. Branch nodes (And,
// Or) use Children. An And with no children matches everything.
type Predicate struct {
	Op       Op
	Field    Field
	Value    any
	Children []Predicate
}

// Eq matches rows whose field equals value.
func Eq(field Field, value any) Predicate {
	return Predicate{Op: OpEq, Field: field, Value: value}
}

// Contains matches rows whose text field contains value, ignoring case.
func Contains(field Field, value string) Predicate {
	return Predicate{Op: OpContains, Field: field, Value: value}
}

// Gte matches rows whose numeric field is greater than or equal to value.
func Gte(field Field, value any) Predicate {
	return Predicate{Op: OpGte, Field: field, Value: value}
}

// Lte matches rows whose numeric field is less than or equal to value.
func Lte(field Field, value any) Predicate {
	return Predicate{Op: OpLte, Field: field, Value: value}
}

// And combines predicates with logical AND.
func And(children ...Predicate) Predicate {
	return Predicate{Op: OpAnd, Children: children}
}

// Or combines predicates with logical OR.
func Or(children ...Predicate) Predicate {
	return Predicate{Op: OpOr, Children: children}
}

// MatchAll returns a predicate that matches every row.
func MatchAll() Predicate {
	return And()
}

// IsEmpty reports whether p is an And without children.
func (p Predicate) IsEmpty() bool {
	return p.Op == OpAnd && len(p.Children) == 0
}

// # Ordering & Paging

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// IsValid reports whether d is ASC or DESC.
func (d Direction) IsValid() bool {
	return d == Asc || d == Desc
}

// Sort orders results by a single field.
type Sort struct {
	Field     Field
	Direction Direction
}

// Page is a LIMIT/OFFSET window. A zero Limit means no limit.
type Page struct {
	Limit  int
	Offset int
}

// Spec is a complete read request against a projection.
type Spec struct {
	Where Predicate
	Sort  Sort
	Page  Page
}

// Validate checks the structural invariants of the spec.
func (s Spec) Validate() error {
	if s.Sort.Field != "" && !s.Sort.Direction.IsValid() {
		return fmt.Errorf("%w: sort direction %q", ErrInvariantViolation, s.Sort.Direction)
	}
	if s.Page.Limit < 0 || s.Page.Offset < 0 {
		return fmt.Errorf("%w: negative page window %d/%d", ErrInvariantViolation, s.Page.Limit, s.Page.Offset)
	}
	return validatePredicate(s.Where)
}

func validatePredicate(p Predicate) error {
	switch p.Op {
	case OpAnd, OpOr:
		if p.Op == OpOr && len(p.Children) == 0 {
			return fmt.Errorf("%w: empty OR", ErrInvariantViolation)
		}
		for _, child := range p.Children {
			if err := validatePredicate(child); err != nil {
				return err
			}
		}
		return nil
	case OpEq, OpContains, OpGte, OpLte:
		if p.Field == "" {
			return fmt.Errorf("%w: %s without field", ErrInvariantViolation, p.Op)
		}
		if p.Op == OpContains {
			if _, ok := p.Value.(string); !ok {
				return fmt.Errorf("%w: contains on non-string value", ErrInvariantViolation)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown operator %q", ErrInvariantViolation, p.Op)
	}
}
