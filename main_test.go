package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonkq/jsonkq/internal/config"
	apperrors "github.com/jsonkq/jsonkq/internal/errors"
)

func TestRun_ToStrictFile(t *testing.T) {
	// Save original CLI state
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	// Loose-dialect input with a bare key and a literal newline in the value
	input := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(input, []byte("{key: \"va\nl\"}"), 0644))
	output := filepath.Join(t.TempDir(), "out.json")

	// Set CLI options
	CLI.Direction = "strict"
	CLI.Input = input
	CLI.Output = output

	err := run(&Context{Config: config.NewConfig()})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, `{"key": "va\nl"}`, string(data))
}

func TestRun_ToLooseFile(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	input := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"key": "va\nl"}`), 0644))
	output := filepath.Join(t.TempDir(), "out.json")

	CLI.Direction = "loose"
	CLI.Input = input
	CLI.Output = output

	err := run(&Context{Config: config.NewConfig()})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "{key: \"va\nl\"}", string(data))
}

func TestRun_InPlace(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	input := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(input, []byte(`{name:1}`), 0644))

	CLI.Direction = "strict"
	CLI.Input = input
	CLI.InPlace = true

	cfg := config.NewConfig()
	cfg.QuoteStyle = "single"
	err := run(&Context{Config: cfg})
	require.NoError(t, err)

	data, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, `{'name':1}`, string(data))
}

func TestRun_KeyCaseNormalization(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	input := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(input, []byte(`{user_name: 1}`), 0644))
	output := filepath.Join(t.TempDir(), "out.json")

	CLI.Direction = "strict"
	CLI.Input = input
	CLI.Output = output

	cfg := config.NewConfig()
	cfg.KeyCase = "camel"
	err := run(&Context{Config: cfg})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, `{"userName": 1}`, string(data))
}

func TestRun_MissingInputFile(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	CLI.Input = filepath.Join(t.TempDir(), "missing.json")

	err := run(&Context{Config: config.NewConfig()})
	assert.ErrorIs(t, err, apperrors.ErrFileNotFound)
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	path := filepath.Join(t.TempDir(), ".jsonkq.yml")
	require.NoError(t, os.WriteFile(path, []byte("quote_style: double\nkey_case: snake\n"), 0644))

	CLI.Config = path
	CLI.QuoteStyle = "single" // flag wins over file

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "single", cfg.QuoteStyle)
	assert.Equal(t, "snake", cfg.KeyCase)
}

func TestLoadConfig_RejectsBadFlagValue(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	CLI.QuoteStyle = "triple"

	_, err := loadConfig()
	assert.ErrorIs(t, err, apperrors.ErrUnknownQuoteStyle)
}
