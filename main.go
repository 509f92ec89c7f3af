package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/mcncl/tsgen/internal/analyzer"
	"github.com/mcncl/tsgen/internal/config"
	"github.com/mcncl/tsgen/internal/errors"
	"github.com/mcncl/tsgen/internal/formatter"
	"github.com/mcncl/tsgen/internal/generator"
	"github.com/mcncl/tsgen/internal/models"
	"github.com/mcncl/tsgen/internal/parser"
	"github.com/mcncl/tsgen/internal/serializer"
)

// CLI defines the command-line interface
var CLI struct {
	Input        string `help:"Path to input module document (YAML or JSON). If not specified, reads from stdin." short:"i" type:"path"`
	Output       string `help:"Path to output TypeScript file. If not specified, writes to stdout." short:"o" type:"path"`
	Config       string `help:"Path to config file. Defaults to the nearest .tsgen.yml." short:"c" type:"path"`
	RootName     string `help:"Name for the root interface of inferred declarations." short:"r" default:"Root"`
	Format       bool   `help:"Format the output code." short:"f" default:"true" negatable:""`
	SingleQuotes bool   `help:"Use single quotes for string literals." short:"s"`
	Value        bool   `help:"Treat the input as bare data and print it as an object literal."`
	Name         string `help:"Export the --value literal as a const with this name instead of a default export."`
	Debug        bool   `help:"Enable debug logging." short:"d"`
	Version      bool   `help:"Show version information." short:"v"`
	Interactive  bool   `help:"Run in interactive mode, allowing direct input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
	Logger *zap.Logger
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	parser := kong.Must(&CLI,
		kong.Name("tsgen"),
		kong.Description("A tool to generate TypeScript and JavaScript source from module documents"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		// Usage has already been shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("tsgen version %s\n", Version)
		return
	}

	ctx, err := newContext()
	if err == nil {
		defer func() { _ = ctx.Logger.Sync() }()
		err = run(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: tsgen --help\n")
		os.Exit(1)
	}
}

// newContext loads configuration and builds the logger
func newContext() (*Context, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfigWithCLI(configPath, CLI.RootName, CLI.SingleQuotes, CLI.Debug)
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to load config '%s'", configPath), err)
	}

	debug := cfg.Dev.Debug
	logger := zap.NewNop()
	if debug {
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}
	logger.Debug("loaded configuration", zap.String("path", configPath))

	return &Context{Debug: debug, Config: cfg, Logger: logger}, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	if ctx.Config == nil {
		ctx.Config = config.NewConfig()
	}
	if ctx.Logger == nil {
		ctx.Logger = zap.NewNop()
	}

	var code string
	var err error
	if CLI.Value {
		code, err = generateValue(ctx)
	} else {
		code, err = generateDocument(ctx)
	}
	if err != nil {
		return err
	}

	// Format the code if requested
	if CLI.Format && ctx.Config.Formatting.Enabled {
		ctx.Logger.Debug("formatting output")
		code, err = formatter.NewFormatterWithConfig(ctx.Config.Formatting).Format(code)
		if err != nil {
			return err
		}
	}

	return writeOutput(code)
}

// generateDocument runs a module document through the analyzer and generator
func generateDocument(ctx *Context) (string, error) {
	doc, err := parseInput()
	if err != nil {
		return "", err
	}
	ctx.Logger.Debug("parsed document", zap.Int("declarations", len(doc.Declarations)))

	module, err := analyzer.NewAnalyzerWithConfig(ctx.Config, ctx.Logger).Analyze(doc)
	if err != nil {
		return "", err
	}

	return generator.NewGenerator(ctx.Config.Codegen()).GenerateModule(module)
}

// generateValue serializes bare data as an exported literal
func generateValue(ctx *Context) (string, error) {
	value, err := parseValueInput()
	if err != nil {
		return "", err
	}

	preserve := true
	if ctx.Config.Values.PreserveTypes != nil {
		preserve = *ctx.Config.Values.PreserveTypes
	}
	opts := []serializer.Option{
		serializer.WithCodegenOptions(ctx.Config.Codegen()),
		serializer.WithPreserveTypes(preserve),
	}

	literal := serializer.GenValue(value, "", opts...)
	ctx.Logger.Debug("serialized value", zap.Int("bytes", len(literal)))

	if CLI.Name == "" {
		return generator.GenDefaultExport(literal) + "\n", nil
	}
	name := ctx.Config.GetValueName(CLI.Name)
	return generator.GenVariable(name, literal, generator.VariableOptions{Export: true}) + "\n", nil
}

// parseInput reads a module document from file or stdin
func parseInput() (models.Document, error) {
	if CLI.Input != "" {
		return parser.ParseDocumentFile(CLI.Input)
	}

	reader, err := stdinReader()
	if err != nil {
		return models.Document{}, err
	}
	return parser.ParseDocument(reader)
}

// parseValueInput reads bare data from file or stdin
func parseValueInput() (models.RawValue, error) {
	if CLI.Input != "" {
		return parser.ParseValueFile(CLI.Input)
	}

	reader, err := stdinReader()
	if err != nil {
		return nil, err
	}
	return parser.ParseValue(reader)
}

// stdinReader returns piped stdin, or the interactive buffer when stdin is
// a terminal
func stdinReader() (io.Reader, error) {
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}
	if len(data) == 0 {
		return nil, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return bytes.NewReader(data), nil
}

// writeOutput writes code to file or stdout
func writeOutput(code string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(code), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Generated code written to %s\n", CLI.Output)
		return nil
	}

	_, err := fmt.Println(strings.TrimSpace(code))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput lets users paste a document and signal completion
// with Ctrl+D (EOF)
func readInteractiveInput() (io.Reader, error) {
	fmt.Fprintln(os.Stderr, "tsgen Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your document below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var builder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		builder.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewInputError("error reading input", err)
		}
	}

	if strings.TrimSpace(builder.String()) == "" {
		return nil, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing...")
	return strings.NewReader(builder.String()), nil
}
