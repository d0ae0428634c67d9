package converter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jsonkq/jsonkq/internal/errors"
	"github.com/jsonkq/jsonkq/internal/escaper"
	"github.com/jsonkq/jsonkq/internal/models"
)

func TestConverter_Chaining(t *testing.T) {
	got := New(`{key: "val"}`, models.Double).
		AddKeyQuotes().
		EscapeCtrlChars().
		String()
	assert.Equal(t, `{"key": "val"}`, got)
}

func TestConverter_IsImmutable(t *testing.T) {
	base := New(`{key: 1}`, models.Double)
	quoted := base.AddKeyQuotes()

	// The original value is unaffected by operations on derived values.
	assert.Equal(t, `{key: 1}`, base.String())
	assert.Equal(t, `{"key": 1}`, quoted.String())
}

func TestConverter_NormalizeKeyCase(t *testing.T) {
	got := New(`{user_name: 1}`, models.Double).
		NormalizeKeyCase(models.CaseCamel).
		AddKeyQuotes().
		String()
	assert.Equal(t, `{"userName": 1}`, got)
}

func TestToStrict_EndToEnd(t *testing.T) {
	// Bare key, literal newline in the value: the key gets quoted and the
	// newline becomes a two-character escape.
	got := ToStrict("{key: \"va\nl\"}", models.Double)
	assert.Equal(t, `{"key": "va\nl"}`, got)
}

func TestToLoose_EndToEnd(t *testing.T) {
	got := ToLoose(`{"key": "va\nl"}`)
	assert.Equal(t, "{key: \"va\nl\"}", got)
}

func TestToStrictToLoose_RoundTrip(t *testing.T) {
	inputs := []string{
		"{key: \"va\nl\"}",
		"{a: {b: \"x\ty\"}, c: [1, 2], d: 'z'}",
		`{plain: "no controls"}`,
	}
	for _, input := range inputs {
		strict := ToStrict(input, models.Double)
		assert.Equal(t, input, ToLoose(strict), "input %q", input)
	}
}

func TestToStrict_SingleStyle(t *testing.T) {
	assert.Equal(t, `{'name':1}`, ToStrict(`{name:1}`, models.Single))
}

func TestConverter_WithOptions(t *testing.T) {
	opts := escaper.Options{Newlines: true} // leave tabs alone
	got := New("{a: \"x\ty\nz\"}", models.Double).
		WithOptions(opts).
		AddKeyQuotes().
		EscapeCtrlChars().
		String()
	assert.Equal(t, "{\"a\": \"x\ty\\nz\"}", got)
}

func TestLoadText_Errors(t *testing.T) {
	_, err := LoadText("")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFilePath)

	_, err = LoadText(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, apperrors.ErrFileNotFound)

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	_, err = LoadText(empty)
	assert.ErrorIs(t, err, apperrors.ErrFileEmpty)
}

func TestConvertFileToStrict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loose.json")
	require.NoError(t, os.WriteFile(path, []byte("{key: \"va\nl\"}"), 0644))

	require.NoError(t, ConvertFileToStrict(path, models.Double))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"key": "va\nl"}`, string(data))
}

func TestConvertFileToLoose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strict.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"key": "va\nl"}`), 0644))

	require.NoError(t, ConvertFileToLoose(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{key: \"va\nl\"}", string(data))
}

func TestConvertFile_MissingFile(t *testing.T) {
	err := ConvertFileToStrict(filepath.Join(t.TempDir(), "nope.json"), models.Double)
	assert.ErrorIs(t, err, apperrors.ErrFileNotFound)
}
