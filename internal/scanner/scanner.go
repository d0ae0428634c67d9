// Package scanner locates object-key tokens and string-value spans in a
// JSON-like text without building a tree. It is the shared recognition stage
// for the rewriter and escaper packages.
//
// The scanner is deliberately tolerant: it classifies the spans it can
// recognize and passes everything else through positionally. It never fails,
// so the packages built on top of it stay total functions over arbitrary
// text. Structural validity of the input is neither required nor checked.
package scanner

// Kind classifies a recognized span.
type Kind int

const (
	// BareKey is an unquoted key token: a maximal run of non-delimiter
	// characters at token position, trimmed of edge whitespace, followed by a
	// colon.
	BareKey Kind = iota
	// QuotedKey is a key token wrapped in a matching pair of quote
	// characters (either style) and followed by a colon.
	QuotedKey
	// UnrecognizedKey is a key-position token that opens with a quote
	// character but does not close with the same one before the colon
	// (mismatched or unclosed quoting). Rewrites that depend on quoting
	// knowledge leave these untouched.
	UnrecognizedKey
	// StringValue is a quoted string directly following a colon. Quoted
	// strings elsewhere (array elements, stray text) produce no span.
	StringValue
)

// Span is a half-open byte range [Start, End) inside the scanned text. For
// QuotedKey and StringValue the range covers the content between the quotes;
// the quote characters themselves sit at Start-1 and End.
type Span struct {
	Kind  Kind
	Start int
	End   int
	Quote byte // quote character for QuotedKey and StringValue, 0 otherwise
}

// Content returns the text covered by the span.
func (sp Span) Content(text string) string {
	return text[sp.Start:sp.End]
}

// Scan walks the text once and returns all recognized spans in positional
// order. Spans never overlap.
func Scan(text string) []Span {
	var spans []Span
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case isWhitespace(c):
			i++
		case c == '{' || c == '[' || c == ',' || c == '}' || c == ']':
			i++
		case c == ':':
			// Colon with no preceding token (zero-length key): nothing to
			// record, but a value may still follow.
			i = scanValue(text, i+1, &spans)
		case c == '"' || c == '\'':
			i = scanQuotedCandidate(text, i, &spans)
		default:
			i = scanBareCandidate(text, i, &spans)
		}
	}
	return spans
}

// isDelimiter reports whether c terminates a key token. Keys may contain
// quote characters, backslashes and whitespace, but never the characters
// that delimit them.
func isDelimiter(c byte) bool {
	switch c {
	case ':', ',', '{', '}', '[', ']':
		return true
	}
	return false
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isHorizontalWS(c byte) bool {
	return c == ' ' || c == '\t'
}

func skipWhitespace(text string, i int) int {
	for i < len(text) && isWhitespace(text[i]) {
		i++
	}
	return i
}

// scanBareCandidate consumes an unquoted token at key position. The token is
// a key only if its run ends at a colon; otherwise it is a bare value (or
// arbitrary text) and passes through untouched.
func scanBareCandidate(text string, i int, spans *[]Span) int {
	j := i
	for j < len(text) && !isDelimiter(text[j]) {
		j++
	}
	if j >= len(text) || text[j] != ':' {
		return j
	}

	// Trim the separating whitespace off the token edges. The trailing trim
	// is horizontal only: a literal newline inside a key belongs to the key,
	// the indentation around it does not.
	start := skipWhitespace(text, i)
	end := j
	for end > start && isHorizontalWS(text[end-1]) {
		end--
	}
	if end > start {
		*spans = append(*spans, Span{Kind: BareKey, Start: start, End: end})
	}
	return scanValue(text, j+1, spans)
}

// scanQuotedCandidate consumes a token at key position that opens with a
// quote character. A well-formed quoted key closes with the same quote before
// any structural character and is followed by a colon. Anything else is
// demoted: either to an UnrecognizedKey (the run still reaches a colon) or to
// a plain quoted token that produces no span at all.
func scanQuotedCandidate(text string, i int, spans *[]Span) int {
	q := text[i]
	j := i + 1
	for j < len(text) && text[j] != q && !isDelimiter(text[j]) {
		j++
	}

	if j < len(text) && text[j] == q {
		// Closed with the matching quote; a key needs a colon next.
		k := skipWhitespace(text, j+1)
		if k < len(text) && text[k] == ':' {
			*spans = append(*spans, Span{Kind: QuotedKey, Start: i + 1, End: j, Quote: q})
			return scanValue(text, k+1, spans)
		}
		// A quoted token that is not a key (array element, stray string).
		return j + 1
	}

	if j < len(text) && text[j] == ':' {
		// The run reached the colon without closing: mismatched or unclosed
		// quoting. Record it so consumers know a key sits here, but leave its
		// interpretation alone.
		end := j
		for end > i && isHorizontalWS(text[end-1]) {
			end--
		}
		*spans = append(*spans, Span{Kind: UnrecognizedKey, Start: i, End: end})
		return scanValue(text, j+1, spans)
	}

	// Hit a structural character or the end of input: give up on the token
	// and let the main loop resume at the structural character.
	return j
}

// scanValue consumes whatever follows a colon. Only quoted strings produce a
// span; containers hand control back to the main loop and bare values are
// skipped wholesale (a colon inside a bare value must not start a new key).
func scanValue(text string, i int, spans *[]Span) int {
	j := skipWhitespace(text, i)
	if j >= len(text) {
		return j
	}

	switch c := text[j]; c {
	case '"', '\'':
		k := j + 1
		for k < len(text) {
			if text[k] == '\\' && k+1 < len(text) {
				k += 2
				continue
			}
			if text[k] == c {
				*spans = append(*spans, Span{Kind: StringValue, Start: j + 1, End: k, Quote: c})
				return k + 1
			}
			k++
		}
		// Unclosed string value: consume the remainder untouched.
		return len(text)
	case '{', '[':
		return j
	default:
		for j < len(text) && text[j] != ',' && text[j] != '}' && text[j] != ']' {
			j++
		}
		return j
	}
}
