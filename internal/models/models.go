package models

import (
	"fmt"

	"github.com/iancoleman/strcase"

	apperrors "github.com/jsonkq/jsonkq/internal/errors"
)

// QuoteStyle selects which quote character is inserted when quoting object
// keys. It has no effect on removal (both styles are always recognized) or on
// control-character handling.
type QuoteStyle int

const (
	// Double quotes keys with '"'. This is the default.
	Double QuoteStyle = iota
	// Single quotes keys with '\''.
	Single
)

// Char returns the quote character for the style.
func (q QuoteStyle) Char() byte {
	if q == Single {
		return '\''
	}
	return '"'
}

// String implements fmt.Stringer.
func (q QuoteStyle) String() string {
	if q == Single {
		return "single"
	}
	return "double"
}

// ParseQuoteStyle converts a configuration string into a QuoteStyle.
// The empty string maps to the default (Double).
func ParseQuoteStyle(s string) (QuoteStyle, error) {
	switch s {
	case "", "double":
		return Double, nil
	case "single":
		return Single, nil
	default:
		return Double, fmt.Errorf("%w: %q", apperrors.ErrUnknownQuoteStyle, s)
	}
}

// KeyCase selects an optional naming convention applied to object keys.
type KeyCase int

const (
	// CaseNone leaves keys as-is. This is the default.
	CaseNone KeyCase = iota
	CaseSnake
	CaseCamel
	CasePascal
	CaseKebab
)

// String implements fmt.Stringer.
func (k KeyCase) String() string {
	switch k {
	case CaseSnake:
		return "snake"
	case CaseCamel:
		return "camel"
	case CasePascal:
		return "pascal"
	case CaseKebab:
		return "kebab"
	default:
		return "none"
	}
}

// ParseKeyCase converts a configuration string into a KeyCase.
// The empty string maps to the default (CaseNone).
func ParseKeyCase(s string) (KeyCase, error) {
	switch s {
	case "", "none":
		return CaseNone, nil
	case "snake":
		return CaseSnake, nil
	case "camel":
		return CaseCamel, nil
	case "pascal":
		return CasePascal, nil
	case "kebab":
		return CaseKebab, nil
	default:
		return CaseNone, fmt.Errorf("%w: %q", apperrors.ErrUnknownKeyCase, s)
	}
}

// Apply rewrites a key token through the selected naming convention.
func (k KeyCase) Apply(key string) string {
	switch k {
	case CaseSnake:
		return strcase.ToSnake(key)
	case CaseCamel:
		return strcase.ToLowerCamel(key)
	case CasePascal:
		return strcase.ToCamel(key)
	case CaseKebab:
		return strcase.ToKebab(key)
	default:
		return key
	}
}
