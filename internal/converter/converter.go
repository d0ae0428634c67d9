// Package converter sequences the core rewrites into the two dialect
// conversions and exposes a chainable Converter for callers that want to
// compose the steps themselves. It also carries the file wrappers that feed
// text into the engine and write the result back out.
package converter

import (
	"fmt"
	"os"

	"github.com/jsonkq/jsonkq/internal/errors"
	"github.com/jsonkq/jsonkq/internal/escaper"
	"github.com/jsonkq/jsonkq/internal/models"
	"github.com/jsonkq/jsonkq/internal/rewriter"
)

// Converter holds the current text and the active quote style. It is an
// immutable value: every method returns a new Converter, so chains never
// alias mutable state and a partially applied chain can be kept around and
// reused.
type Converter struct {
	text  string
	style models.QuoteStyle
	opts  escaper.Options
}

// New returns a Converter over text using the given quote style for any
// quotes it adds.
func New(text string, style models.QuoteStyle) Converter {
	return Converter{
		text:  text,
		style: style,
		opts:  escaper.DefaultOptions(),
	}
}

// WithOptions returns a Converter whose control-character handling follows
// opts instead of the defaults.
func (c Converter) WithOptions(opts escaper.Options) Converter {
	c.opts = opts
	return c
}

// AddKeyQuotes wraps bare keys in the active quote style.
func (c Converter) AddKeyQuotes() Converter {
	c.text = rewriter.AddKeyQuotes(c.text, c.style)
	return c
}

// RemoveKeyQuotes strips the quotes from quoted keys of either style.
func (c Converter) RemoveKeyQuotes() Converter {
	c.text = rewriter.RemoveKeyQuotes(c.text)
	return c
}

// EscapeCtrlChars escapes control characters in string values and scrubs
// them out of quoted keys.
func (c Converter) EscapeCtrlChars() Converter {
	c.text = escaper.EscapeCtrlChars(c.text, c.opts)
	return c
}

// UnescapeCtrlChars restores control characters in string values and drops
// their escape sequences from bare keys.
func (c Converter) UnescapeCtrlChars() Converter {
	c.text = escaper.UnescapeCtrlChars(c.text, c.opts)
	return c
}

// NormalizeKeyCase rewrites key tokens through the given naming convention.
func (c Converter) NormalizeKeyCase(keyCase models.KeyCase) Converter {
	c.text = rewriter.NormalizeKeyCase(c.text, keyCase)
	return c
}

// String returns the current text.
func (c Converter) String() string {
	return c.text
}

// ToStrict converts loose-dialect text (bare keys, literal control
// characters) into the strict dialect: keys are quoted in the given style
// first, then control characters are escaped.
func ToStrict(text string, style models.QuoteStyle) string {
	return New(text, style).AddKeyQuotes().EscapeCtrlChars().String()
}

// ToLoose converts strict-dialect text into the loose dialect: escape
// sequences are restored to literals first, then key quotes are stripped.
func ToLoose(text string) string {
	return New(text, models.Double).UnescapeCtrlChars().RemoveKeyQuotes().String()
}

// LoadText reads the file at path and returns its contents.
func LoadText(path string) (string, error) {
	if path == "" {
		return "", errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewInputError(
				fmt.Sprintf("file '%s' not found", path),
				errors.ErrFileNotFound,
			)
		}
		return "", errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", path),
			err,
		)
	}
	if len(data) == 0 {
		return "", errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", path),
			errors.ErrFileEmpty,
		)
	}
	return string(data), nil
}

// WriteText writes text to the file at path.
func WriteText(path string, text string) error {
	if path == "" {
		return errors.NewOutputError("file path is empty", errors.ErrInvalidFilePath)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return errors.NewOutputError(
			fmt.Sprintf("failed to write to file '%s'", path),
			err,
		)
	}
	return nil
}

// ConvertFileToStrict rewrites the file at path from the loose dialect to the
// strict dialect in place.
func ConvertFileToStrict(path string, style models.QuoteStyle) error {
	text, err := LoadText(path)
	if err != nil {
		return err
	}
	return WriteText(path, ToStrict(text, style))
}

// ConvertFileToLoose rewrites the file at path from the strict dialect to the
// loose dialect in place.
func ConvertFileToLoose(path string) error {
	text, err := LoadText(path)
	if err != nil {
		return err
	}
	return WriteText(path, ToLoose(text))
}
