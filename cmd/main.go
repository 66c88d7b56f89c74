package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"pdftext/config"
	"pdftext/file"
	"pdftext/process"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exitUsage         = 1
	exitFailure       = 2
	usageLine         = "Usage: pdftext <pdf_file>"
	extractionFailure = "Error reading PDF: %v\n"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pdftext", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	backend := fs.String("backend", "", "pdf backend: ledongthuc or rsc")
	validate := fs.Bool("validate", false, "validate the PDF structure with pdfcpu before extracting")
	strictExit := fs.Bool("strict-exit", false, "exit with status 2 when extraction fails")
	logLevel := fs.String("log-level", "", "log level written to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usageLine)
		fmt.Fprintln(stderr, "Flags must come before <pdf_file>.")
		fs.PrintDefaults()
	}
	// status 1 is reserved for a missing <pdf_file>
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitFailure
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(stdout, usageLine)
		return exitUsage
	}
	pdfPath := fs.Arg(0)
	for _, extra := range fs.Args()[1:] {
		if strings.HasPrefix(extra, "-") {
			fmt.Fprintf(stderr, "flag %s after <pdf_file> is not allowed; flags must come before the path\n", extra)
			return exitFailure
		}
	}

	// =========
	// Config
	// =========
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return exitFailure
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backend
		case "validate":
			cfg.Validate = *validate
		case "strict-exit":
			cfg.StrictExit = *strictExit
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Check(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return exitFailure
	}

	// =========
	// Logging
	// =========
	level, _ := cfg.Level()
	logger := newLogger(stderr, level).With(zap.String("run_id", uuid.NewString()))
	defer logger.Sync()

	// =========
	// PDF Client
	// =========
	pdfBackend, err := process.NewBackend(cfg.Backend)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return exitFailure
	}
	var validator *process.Validator
	if cfg.Validate {
		validator = process.NewValidator()
	}
	client := process.NewClient(pdfBackend, validator)

	// =========
	// Extraction
	// =========
	var extractor file.TextExtractor = file.NewPDFExtractor(client, stdout, logger)
	text, err := extractor.Extract(pdfPath)
	if err != nil {
		fmt.Fprintf(stdout, extractionFailure, err)
		if cfg.StrictExit {
			return exitFailure
		}
		return 0
	}

	if text != "" {
		fmt.Fprintln(stdout, text)
	}
	return 0
}

func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}
