package domain

import (
	"strings"
	"unicode"
)

// tsquery grammar characters: boolean operators, grouping, negation,
// prefix wildcard, phrase quoting, and backslash escapes.
const reservedQueryChars = `&|!():*\<>'"`

// SanitizeQuery prepares user input for embedding in a text-search
// expression:
//   - removes reserved text-search operator characters
//   - collapses whitespace runs into single spaces
//   - trims leading/trailing whitespace
//
// The function is pure and idempotent.
func SanitizeQuery(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	prevSpace := false
	for _, r := range raw {
		if strings.ContainsRune(reservedQueryChars, r) {
			continue
		}
		if unicode.IsSpace(r) {
			if !prevSpace {
				b.WriteRune(' ')
				prevSpace = true
			}
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}

	return strings.TrimSpace(b.String())
}
