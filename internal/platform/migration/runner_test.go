// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"postgres_scheme", "postgres://u:p@db:5432/pageturn", "pgx5://u:p@db:5432/pageturn"},
		{"postgresql_scheme", "postgresql://u:p@db/pageturn?sslmode=disable", "pgx5://u:p@db/pageturn?sslmode=disable"},
		{"already_pgx5", "pgx5://db/pageturn", "pgx5://db/pageturn"},
		{"keyword_dsn_passthrough", "host=db dbname=pageturn", "host=db dbname=pageturn"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, toPgx5DSN(tc.in))
		})
	}
}
