// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package civil parses civil calendar dates from command-line input.
package civil

import (
	"fmt"
	"strings"
	"time"
)

// DateFmt is the canonical layout for civil dates in files and output.
const DateFmt = "2006-01-02"

// layouts lists the accepted input forms, most specific first.
var layouts = []string{
	DateFmt,
	"2006/01/02",
	"01/02/2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

// Parse interprets s as a civil calendar date. It tries ISO 8601
// (2006-01-02) first, then a short list of common layouts.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (try a form like %s)", s, DateFmt)
}

// Today returns the current local date at midnight.
func Today() time.Time {
	year, month, day := time.Now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
