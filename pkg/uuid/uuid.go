// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

/*
Package uuid generates the string identifiers used outside the relational keys.

  - New: time-ordered UUIDv7, used for request correlation ids.
  - NewToken: random UUIDv4, used for single-use secrets such as newsletter
    confirmation tokens. Never use a v7 value as a secret; its prefix is a
    timestamp.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// NewToken generates a random UUIDv4 string.
func NewToken() string {
	return uuid.NewString()
}

// IsValid reports whether s parses as a UUID of any version.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
