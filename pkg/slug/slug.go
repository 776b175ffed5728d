// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// Category slugs ("computer-science", "histoire-de-france") are derived here
// once, when a category is created, and are stable afterwards.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength is the width of the categories.slug column.
const MaxLength = 140

// stripMarks decomposes accented letters and drops the combining marks,
// so "É" becomes "E".
var stripMarks = transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}))

/*
From converts s into a lowercase slug of ASCII letters, digits and single
hyphens. Every other run of characters, including letters outside ASCII,
becomes one separator. Results longer than [MaxLength] are cut back to the
last whole word that fits.
*/
func From(s string) string {
	plain, _, err := transform.String(stripMarks, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	b.Grow(len(plain))
	pendingHyphen := false
	for _, r := range strings.ToLower(plain) {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	return truncate(b.String(), MaxLength)
}

func truncate(slug string, max int) string {
	if len(slug) <= max {
		return slug
	}
	if slug[max] == '-' {
		return slug[:max]
	}
	if cut := strings.LastIndexByte(slug[:max], '-'); cut > 0 {
		return slug[:cut]
	}
	return slug[:max]
}
