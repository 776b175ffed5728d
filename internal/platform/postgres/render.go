// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NavodCaldera/online-bookstore-sub000/pkg/query"
)

// # Argument Binding

// Args accumulates positional parameters ($1, $2, ...) for a single statement.
type Args struct {
	values []any
}

// Bind appends value and returns its placeholder.
func (a *Args) Bind(value any) string {
	a.values = append(a.values, value)
	return "$" + strconv.Itoa(len(a.values))
}

// Values returns the bound parameters in placeholder order.
func (a *Args) Values() []any {
	return a.values
}

// EscapeLike escapes the LIKE meta characters so that s is matched literally.
// The rendered pattern must be used with ESCAPE '\'.
func EscapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

// # Renderer

/*
Renderer translates [query.Spec] values into SQL fragments.

Column names come exclusively from the closed map given to [NewRenderer]; a
field outside that map is an [query.ErrInvariantViolation], never a fallback.
Every value is bound as a parameter.
*/
type Renderer struct {
	columns map[query.Field]string
}

// NewRenderer creates a renderer over the given field to column mapping.
func NewRenderer(columns map[query.Field]string) *Renderer {
	return &Renderer{columns: columns}
}

func (r *Renderer) column(field query.Field) (string, error) {
	col, ok := r.columns[field]
	if !ok {
		return "", fmt.Errorf("%w: unmapped field %q", query.ErrInvariantViolation, field)
	}
	return col, nil
}

// Where renders p as a boolean SQL expression. The empty predicate renders as TRUE.
func (r *Renderer) Where(p query.Predicate, args *Args) (string, error) {
	switch p.Op {
	case query.OpAnd, query.OpOr:
		if len(p.Children) == 0 {
			if p.Op == query.OpOr {
				return "", fmt.Errorf("%w: empty OR", query.ErrInvariantViolation)
			}
			return "TRUE", nil
		}

		parts := make([]string, 0, len(p.Children))
		for _, child := range p.Children {
			part, err := r.Where(child, args)
			if err != nil {
				return "", err
			}
			parts = append(parts, part)
		}

		joiner := " AND "
		if p.Op == query.OpOr {
			joiner = " OR "
		}
		return "(" + strings.Join(parts, joiner) + ")", nil

	case query.OpEq, query.OpGte, query.OpLte:
		col, err := r.column(p.Field)
		if err != nil {
			return "", err
		}
		operator := map[query.Op]string{query.OpEq: "=", query.OpGte: ">=", query.OpLte: "<="}[p.Op]
		return col + " " + operator + " " + args.Bind(p.Value), nil

	case query.OpContains:
		col, err := r.column(p.Field)
		if err != nil {
			return "", err
		}
		needle, ok := p.Value.(string)
		if !ok {
			return "", fmt.Errorf("%w: contains on non-string value", query.ErrInvariantViolation)
		}
		return col + " ILIKE " + args.Bind("%"+EscapeLike(needle)+"%") + ` ESCAPE '\'`, nil

	default:
		return "", fmt.Errorf("%w: unknown operator %q", query.ErrInvariantViolation, p.Op)
	}
}

// OrderBy renders the ORDER BY clause. The tie-breaker is appended whenever it
// differs from the primary sort so that paging is deterministic. Nulls sort last.
func (r *Renderer) OrderBy(sort query.Sort, tieBreaker query.Sort) (string, error) {
	var terms []string

	for _, s := range []query.Sort{sort, tieBreaker} {
		if s.Field == "" {
			continue
		}
		if len(terms) > 0 && s.Field == sort.Field {
			continue
		}
		if !s.Direction.IsValid() {
			return "", fmt.Errorf("%w: sort direction %q", query.ErrInvariantViolation, s.Direction)
		}
		col, err := r.column(s.Field)
		if err != nil {
			return "", err
		}
		terms = append(terms, col+" "+string(s.Direction)+" NULLS LAST")
	}

	if len(terms) == 0 {
		return "", nil
	}
	return " ORDER BY " + strings.Join(terms, ", "), nil
}

// Window renders LIMIT and OFFSET. A zero limit omits the LIMIT clause.
func (r *Renderer) Window(page query.Page, args *Args) string {
	var sb strings.Builder
	if page.Limit > 0 {
		sb.WriteString(" LIMIT " + args.Bind(page.Limit))
	}
	if page.Offset > 0 {
		sb.WriteString(" OFFSET " + args.Bind(page.Offset))
	}
	return sb.String()
}

// Select renders a complete SELECT statement: base is the projection and FROM
// clause, the spec contributes the WHERE clause, ordering and window.
func (r *Renderer) Select(base string, spec query.Spec, tieBreaker query.Sort) (string, []any, error) {
	if err := spec.Validate(); err != nil {
		return "", nil, err
	}

	args := &Args{}
	where, err := r.Where(spec.Where, args)
	if err != nil {
		return "", nil, err
	}

	orderBy, err := r.OrderBy(spec.Sort, tieBreaker)
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString(" WHERE ")
	sb.WriteString(where)
	sb.WriteString(orderBy)
	sb.WriteString(r.Window(spec.Page, args))

	return sb.String(), args.Values(), nil
}

// Filter renders base followed by the WHERE clause of p, for COUNT and
// aggregate statements. suffix is appended verbatim (e.g. a GROUP BY).
func (r *Renderer) Filter(base string, p query.Predicate, suffix string) (string, []any, error) {
	args := &Args{}
	where, err := r.Where(p, args)
	if err != nil {
		return "", nil, err
	}
	return base + " WHERE " + where + suffix, args.Values(), nil
}
