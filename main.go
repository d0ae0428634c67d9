package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jsonkq/jsonkq/internal/config"
	"github.com/jsonkq/jsonkq/internal/converter"
	"github.com/jsonkq/jsonkq/internal/errors"
	"github.com/jsonkq/jsonkq/internal/models"
)

// CLI defines the command-line interface
var CLI struct {
	Direction   string `help:"Target dialect: 'strict' quotes keys and escapes control characters, 'loose' does the reverse." short:"D" enum:"strict,loose" default:"strict"`
	Input       string `help:"Path to input file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	InPlace     bool   `help:"Rewrite the input file in place. Requires --input." short:"w"`
	QuoteStyle  string `help:"Quote style for added key quotes: double or single." short:"q"`
	KeyCase     string `help:"Normalize key naming: none, snake, camel, pascal or kebab." short:"k"`
	Config      string `help:"Path to a config file. If not specified, searches for .jsonkq.yml in the current directory and parents." short:"c" type:"path"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	parser := kong.Must(&CLI,
		kong.Name("jsonkq"),
		kong.Description("A tool to convert JSON-like text between bare-key and quoted-key dialects"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	// Parse the command line arguments
	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("jsonkq version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	err = run(&Context{Debug: CLI.Debug || cfg.Dev.Debug, Config: cfg})
	if err != nil {
		// Use our custom error handling to provide user-friendly error messages
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		// Show help on error
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonkq --help\n")

		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: file values first, then
// flag overrides
func loadConfig() (*config.Config, error) {
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}

	cfg := config.NewConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Flags override the file
	if CLI.QuoteStyle != "" {
		cfg.QuoteStyle = CLI.QuoteStyle
	}
	if CLI.KeyCase != "" {
		cfg.KeyCase = CLI.KeyCase
	}
	if CLI.InPlace {
		cfg.Output.InPlace = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	cfg := ctx.Config

	// 1. Read the input text
	text, err := readInput()
	if err != nil {
		// Error is already wrapped by readInput
		return err
	}

	// 2. Run the conversion pipeline for the requested direction
	conv := converter.New(text, cfg.Style()).WithOptions(cfg.EscapeOptions())
	switch CLI.Direction {
	case "loose":
		conv = conv.UnescapeCtrlChars().RemoveKeyQuotes()
	default:
		conv = conv.AddKeyQuotes().EscapeCtrlChars()
	}

	// 3. Apply optional key-case normalization
	if keyCase := cfg.Case(); keyCase != models.CaseNone {
		conv = conv.NormalizeKeyCase(keyCase)
	}

	// 4. Output the result
	return writeOutput(conv.String())
}

// readInput reads text from file or stdin
func readInput() (string, error) {
	if CLI.Input != "" {
		// Read from file
		return converter.LoadText(CLI.Input)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			// Interactive mode
			return readInteractiveInput()
		}
		// No data provided on stdin and not in interactive mode
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}

	if len(data) == 0 {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return string(data), nil
}

// writeOutput writes the converted text to file or stdout
func writeOutput(text string) error {
	if CLI.Output != "" {
		// Write to file
		if err := converter.WriteText(CLI.Output, text); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Converted text written to %s\n", CLI.Output)
		return nil
	}

	if CLI.InPlace {
		if CLI.Input == "" {
			return errors.NewOutputError("in-place conversion requires an input file", errors.ErrInvalidFilePath)
		}
		return converter.WriteText(CLI.Input, text)
	}

	// Write to stdout
	_, err := fmt.Println(strings.TrimSuffix(text, "\n"))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste text
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (string, error) {
	fmt.Fprintln(os.Stderr, "jsonkq Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your text below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	// Read all input until EOF (Ctrl+D)
	reader := bufio.NewReader(os.Stdin)
	var builder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			builder.WriteString(line)
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
		builder.WriteString(line)
	}

	text := builder.String()
	if len(text) == 0 {
		return "", errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing...")
	return text, nil
}
