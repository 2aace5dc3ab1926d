//go:build !js

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Exit statuses.
const (
	exitPass  = 0
	exitFail  = 1
	exitError = 2
)

const defaultOutputFile = "output.txt"

type Config struct {
	KeyFile  string
	Encoding string
	Color    string
	Summary  bool
	Verbose  bool
}

var DefaultConfig = Config{
	Encoding: "utf-16",
	Color:    colorAuto,
}

func registerFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.KeyFile, "key", cfg.KeyFile, "YAML answer key to check against (default: the built-in Lox key)")
	fs.StringVar(&cfg.Encoding, "encoding", cfg.Encoding, "text encoding of the output file: utf-16, utf-16le, utf-16be or utf-8")
	fs.StringVar(&cfg.Color, "color", cfg.Color, "colorize the report: auto, always or never")
	fs.BoolVar(&cfg.Summary, "summary", cfg.Summary, "print a found/total line before the verdict")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log diagnostics to stderr")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// stdinIsInteractive is swapped out by tests that exercise the stdin guard.
var stdinIsInteractive = isInteractive

// run parses args, runs the check and returns the exit status. Errors are
// written to stderr prefixed with "anscheck: ".
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := &Config{}
	*cfg = DefaultConfig
	fs := flag.NewFlagSet("anscheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	registerFlags(fs, cfg)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: anscheck [flags] [output-file|-]\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitPass
		}
		return exitError
	}

	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "anscheck: too many arguments: %q\n", fs.Args())
		fs.Usage()
		return exitError
	}
	path := defaultOutputFile
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	}

	if path == "-" && stdinIsInteractive() {
		fmt.Fprintln(stderr, "anscheck: expects program output on stdin")
		fs.Usage()
		return exitError
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintln(stderr, "anscheck:", err)
		return exitError
	}
	defer logger.Sync()

	passed, err := runCheck(cfg, path, stdin, stdout, logger)
	if err != nil {
		fmt.Fprintln(stderr, "anscheck:", err)
		return exitError
	}
	if !passed {
		return exitFail
	}
	return exitPass
}

// runCheck decodes the output at path ("-" for stdin), checks it against
// the configured answer key and prints the report to stdout. It returns the
// verdict; err is only set when the check could not be carried out.
func runCheck(cfg *Config, path string, stdin io.Reader, stdout io.Writer, logger *zap.Logger) (bool, error) {
	if cfg == nil {
		cfg = &DefaultConfig
	}

	style, err := newReportStyle(stdout, cfg.Color)
	if err != nil {
		return false, err
	}
	if _, err := lookupEncoding(cfg.Encoding); err != nil {
		return false, err
	}

	key := &DefaultAnswerKey
	if cfg.KeyFile != "" {
		key, err = LoadAnswerKey(cfg.KeyFile)
		if err != nil {
			return false, err
		}
	}
	if len(key.Answers) == 0 {
		logger.Warn("answer key is empty, every run passes", zap.String("key", key.Name))
	}
	logger.Debug("loaded answer key",
		zap.String("key", key.Name),
		zap.String("file", cfg.KeyFile),
		zap.Int("answers", len(key.Answers)))

	text, err := readOutput(path, cfg.Encoding, stdin)
	if err != nil {
		return false, err
	}
	tokens := splitTokens(text)
	logger.Debug("read program output",
		zap.String("path", path),
		zap.String("encoding", cfg.Encoding),
		zap.Int("runes", len([]rune(text))),
		zap.Int("tokens", len(tokens)))

	rep := check(key.Answers, tokens)
	if err := printReport(stdout, rep, style, cfg.Summary); err != nil {
		return false, fmt.Errorf("write report: %w", err)
	}
	logger.Debug("checked answers",
		zap.Bool("passed", rep.Passed),
		zap.Int("found", rep.Found()),
		zap.Strings("missing", rep.Missing()))
	return rep.Passed, nil
}

func readOutput(path, encodingName string, stdin io.Reader) (string, error) {
	if path == "-" {
		return decodeOutput(stdin, encodingName)
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("program output %s not found", path)
		}
		return "", fmt.Errorf("open program output: %w", err)
	}
	defer f.Close()
	text, err := decodeOutput(f, encodingName)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// newLogger returns a no-op logger unless verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Return true if os.Stdin appears to be interactive
func isInteractive() bool {
	return isTerminal(os.Stdin)
}
