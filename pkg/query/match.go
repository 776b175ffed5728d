// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package query

import (
	"fmt"
	"strings"
)

// Record exposes the field values of a single row to [Match].
//
// The boolean result is false when the value is absent (SQL NULL).
type Record interface {
	Value(field Field) (any, bool)
}

// Match evaluates p against rec with the same semantics a SQL renderer gives
// it: absent values never match a leaf, Contains is case-insensitive.
func Match(p Predicate, rec Record) (bool, error) {
	switch p.Op {
	case OpAnd:
		for _, child := range p.Children {
			ok, err := Match(child, rec)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil

	case OpOr:
		for _, child := range p.Children {
			ok, err := Match(child, rec)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}

	actual, present := rec.Value(p.Field)
	if !present {
		return false, nil
	}

	switch p.Op {
	case OpEq:
		if a, b, ok := numbers(actual, p.Value); ok {
			return a == b, nil
		}
		return actual == p.Value, nil

	case OpContains:
		text, ok := actual.(string)
		if !ok {
			return false, fmt.Errorf("%w: contains on non-text field %s", ErrInvariantViolation, p.Field)
		}
		needle, _ := p.Value.(string)
		return strings.Contains(strings.ToLower(text), strings.ToLower(needle)), nil

	case OpGte, OpLte:
		a, b, ok := numbers(actual, p.Value)
		if !ok {
			return false, fmt.Errorf("%w: range on non-numeric field %s", ErrInvariantViolation, p.Field)
		}
		if p.Op == OpGte {
			return a >= b, nil
		}
		return a <= b, nil
	}

	return false, fmt.Errorf("%w: unknown operator %q", ErrInvariantViolation, p.Op)
}

// numbers converts both operands to float64 when both are numeric.
func numbers(a, b any) (float64, float64, bool) {
	x, ok := toFloat(a)
	if !ok {
		return 0, 0, false
	}
	y, ok := toFloat(b)
	if !ok {
		return 0, 0, false
	}
	return x, y, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
