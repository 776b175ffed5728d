// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

/*
Package convert provides fault-tolerant conversions for query parameters.

Unlike [strconv], every function reports success with a boolean instead of an
error, so that callers can substitute a default without inspecting error
values. Use it only where a malformed value and an absent value are meant to
be treated the same way.
*/
package convert

import (
	"math"
	"strconv"
	"strings"
)

// ToIntD converts a string to an int, returning the provided default if parsing fails or string is empty.
func ToIntD(str string, def int) int {
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(str); err == nil {
		return v
	}

	return def
}

// Bool parses a boolean-ish flag: "1", "0", "true" or "false" in any case.
// The second result is false for every other input, including "".
func Bool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true":
		return true, true
	case "0", "false":
		return false, true
	}
	return false, false
}

// Float parses a finite decimal. NaN and infinities are rejected.
func Float(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}
