// Package escaper converts between literal control characters and their
// two-character backslash escapes inside the spans the scanner recognizes.
//
// The two directions are intentionally asymmetric on keys. Strict-dialect key
// syntax tolerates no raw control characters at all, so escaping deletes them
// from quoted keys instead of encoding them; unescaping likewise deletes the
// escape sequences from bare keys rather than reintroducing literals. The
// key round trip is therefore lossy by design, while the value round trip is
// exact for values free of raw backslashes.
package escaper

import (
	"strings"

	"github.com/jsonkq/jsonkq/internal/scanner"
)

// Options selects which control characters the codec handles. The zero value
// disables everything; use DefaultOptions for the usual full set.
type Options struct {
	Tabs            bool
	Newlines        bool
	CarriageReturns bool
}

// DefaultOptions enables all three supported control characters.
func DefaultOptions() Options {
	return Options{Tabs: true, Newlines: true, CarriageReturns: true}
}

// escapeLetter returns the letter of the two-character escape for a raw
// control character handled under o, or 0 if the character is not handled.
func (o Options) escapeLetter(c byte) byte {
	switch c {
	case '\t':
		if o.Tabs {
			return 't'
		}
	case '\n':
		if o.Newlines {
			return 'n'
		}
	case '\r':
		if o.CarriageReturns {
			return 'r'
		}
	}
	return 0
}

// handlesLetter reports whether the escape sequence backslash+c is handled
// under o.
func (o Options) handlesLetter(c byte) bool {
	switch c {
	case 't':
		return o.Tabs
	case 'n':
		return o.Newlines
	case 'r':
		return o.CarriageReturns
	}
	return false
}

// EscapeCtrlChars rewrites string-value spans so every literal control
// character becomes its two-character escape, and scrubs literal control
// characters out of quoted keys entirely. Pre-existing escape sequences are
// printable text, not raw bytes, so they can never be escaped a second time.
func EscapeCtrlChars(text string, opts Options) string {
	spans := scanner.Scan(text)

	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, sp := range spans {
		switch sp.Kind {
		case scanner.StringValue:
			b.WriteString(text[prev:sp.Start])
			escapeInto(&b, sp.Content(text), opts)
			prev = sp.End
		case scanner.QuotedKey:
			b.WriteString(text[prev:sp.Start])
			scrubRawInto(&b, sp.Content(text), opts)
			prev = sp.End
		}
	}
	b.WriteString(text[prev:])
	return b.String()
}

// UnescapeCtrlChars rewrites string-value spans so every two-character escape
// becomes the literal control character, and deletes escape sequences from
// bare keys. A backslash that is itself escaped is consumed as a pair, so the
// letter after it is never misread as an escape (the odd/even
// backslash-run rule).
func UnescapeCtrlChars(text string, opts Options) string {
	spans := scanner.Scan(text)

	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, sp := range spans {
		switch sp.Kind {
		case scanner.StringValue:
			b.WriteString(text[prev:sp.Start])
			unescapeInto(&b, sp.Content(text), opts, false)
			prev = sp.End
		case scanner.BareKey:
			b.WriteString(text[prev:sp.Start])
			unescapeInto(&b, sp.Content(text), opts, true)
			prev = sp.End
		}
	}
	b.WriteString(text[prev:])
	return b.String()
}

// escapeInto writes s with raw control characters replaced by their escapes.
func escapeInto(b *strings.Builder, s string, opts Options) {
	for i := 0; i < len(s); i++ {
		if letter := opts.escapeLetter(s[i]); letter != 0 {
			b.WriteByte('\\')
			b.WriteByte(letter)
			continue
		}
		b.WriteByte(s[i])
	}
}

// scrubRawInto writes s with raw control characters dropped.
func scrubRawInto(b *strings.Builder, s string, opts Options) {
	for i := 0; i < len(s); i++ {
		if opts.escapeLetter(s[i]) != 0 {
			continue
		}
		b.WriteByte(s[i])
	}
}

// unescapeInto writes s with handled escape sequences either decoded to their
// literal control character or, in drop mode, removed. Escaped backslashes
// are kept as-is and consume their pair.
func unescapeInto(b *strings.Builder, s string, opts Options, drop bool) {
	for i := 0; i < len(s); {
		if s[i] == '\\' && i+1 < len(s) {
			next := s[i+1]
			if next == '\\' {
				b.WriteString(`\\`)
				i += 2
				continue
			}
			if opts.handlesLetter(next) {
				if !drop {
					switch next {
					case 't':
						b.WriteByte('\t')
					case 'n':
						b.WriteByte('\n')
					case 'r':
						b.WriteByte('\r')
					}
				}
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
}
