// Package normalize cleans raw offering fields at ingest and canonicalizes
// query input before index lookups
// Field pipeline order
// 1 Sanitize drop controls and invalid UTF-8
// 2 Unicode NFC composition
// 3 Remove format chars (ZWSP, ZWJ, BOM)
// 4 Width fold fullwidth to ASCII
// 5 Collapse whitespace runs to one space and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains, a chain is stateful and not shareable
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// Field returns the cleaned form of one raw input field
func Field(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		out = s
	}

	return collapseSpaces(out)
}

// Instructor canonicalizes a name the way the instructor index is searched:
// the whole input lowercased, then only the first character uppercased.
// Distinct people sharing that casing form collide, "McDonald" and "Mcdonald" both
// become "Mcdonald", so callers must treat results as possibly conflated
func Instructor(name string) string {
	if name == "" {
		return ""
	}
	lower := strings.ToLower(name)
	for i, r := range lower {
		return string(unicode.ToUpper(r)) + lower[i+len(string(r)):]
	}
	return lower
}

// CourseCode canonicalizes a course code lookup by uppercasing the whole input
func CourseCode(code string) string { return strings.ToUpper(code) }

// collapseSpaces converts whitespace runs to a single ASCII space and trims the edges
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
