// Package rewriter toggles the quoting of object keys in a JSON-like text
// and optionally normalizes key naming. Operations are pure: they scan the
// input once and return a new string, leaving everything outside the
// recognized key spans byte-for-byte intact.
package rewriter

import (
	"strings"

	"github.com/jsonkq/jsonkq/internal/models"
	"github.com/jsonkq/jsonkq/internal/scanner"
)

// AddKeyQuotes wraps every bare key token in the quote character selected by
// style. Keys already wrapped in either quote style are left untouched, so
// the operation is idempotent and never normalizes one style to the other.
//
// A bare key whose first or last character is itself a quote character is
// skipped: wrapping it would be ambiguous with true quoting, and the caller
// is documented to avoid such keys.
func AddKeyQuotes(text string, style models.QuoteStyle) string {
	spans := scanner.Scan(text)

	var b strings.Builder
	b.Grow(len(text) + 2*len(spans))
	prev := 0
	for _, sp := range spans {
		if sp.Kind != scanner.BareKey {
			continue
		}
		key := sp.Content(text)
		if key == "" || isQuoteChar(key[0]) || isQuoteChar(key[len(key)-1]) {
			continue
		}
		b.WriteString(text[prev:sp.Start])
		b.WriteByte(style.Char())
		b.WriteString(key)
		b.WriteByte(style.Char())
		prev = sp.End
	}
	b.WriteString(text[prev:])
	return b.String()
}

// RemoveKeyQuotes strips the wrapping quote character from every quoted key
// token, whichever style it uses. A key that opens with one quote character
// and closes with another is not recognized as quoted and is left untouched.
// Idempotent on already-bare keys.
func RemoveKeyQuotes(text string) string {
	spans := scanner.Scan(text)

	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, sp := range spans {
		if sp.Kind != scanner.QuotedKey {
			continue
		}
		// The quote characters sit just outside the content span.
		b.WriteString(text[prev : sp.Start-1])
		b.WriteString(sp.Content(text))
		prev = sp.End + 1
	}
	b.WriteString(text[prev:])
	return b.String()
}

// NormalizeKeyCase rewrites every recognized key token (bare, or the content
// of a quoted key) through the given naming convention. CaseNone is the
// identity.
func NormalizeKeyCase(text string, keyCase models.KeyCase) string {
	if keyCase == models.CaseNone {
		return text
	}
	spans := scanner.Scan(text)

	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, sp := range spans {
		if sp.Kind != scanner.BareKey && sp.Kind != scanner.QuotedKey {
			continue
		}
		b.WriteString(text[prev:sp.Start])
		b.WriteString(keyCase.Apply(sp.Content(text)))
		prev = sp.End
	}
	b.WriteString(text[prev:])
	return b.String()
}

func isQuoteChar(c byte) bool {
	return c == '"' || c == '\''
}
