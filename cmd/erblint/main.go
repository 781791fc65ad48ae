package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	flag "github.com/spf13/pflag"

	"github.com/wscourge/erb-lint/internal/config"
	"github.com/wscourge/erb-lint/internal/engine"
	"github.com/wscourge/erb-lint/internal/lint"
	"github.com/wscourge/erb-lint/internal/linters"
	"github.com/wscourge/erb-lint/internal/log"
	"github.com/wscourge/erb-lint/internal/output"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

const usageHeader = `Usage: erblint [options] [file1, file2, ...]

Lint ERB templates for style issues and optionally autocorrect them.

Files can be paths or directories (walked recursively against the
configured glob). With --lint-all, every matching file under the working
directory is linted.

Options:
`

// run parses flags, drives the engine, and returns the process exit code:
// 0 on success, 1 on a failing outcome, 2 on a terminal configuration or
// usage error.
func run(args []string) int {
	fs := flag.NewFlagSet("erblint", flag.ContinueOnError)
	var (
		configPath  string
		lintAll     bool
		enableOnly  []string
		failLevel   string
		format      string
		autocorrect bool
		stdinPath   string
		listDocs    bool
		describe    string
		verbose     bool
		version     bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Load configuration from this path (missing file is fatal)")
	fs.BoolVar(&lintAll, "lint-all", false, "Lint all files matching the configured glob")
	fs.StringSliceVar(&enableOnly, "enable-linter", nil, "Only run the named linters (comma-separated)")
	fs.StringVar(&failLevel, "fail-level", "refactor", "Minimum severity that counts toward failure: I, R, C, W, E, F or a full name")
	fs.StringVar(&format, "format", output.DefaultFormat, "Report format: compact, json, junit, multiline")
	fs.BoolVarP(&autocorrect, "autocorrect", "a", false, "Correct offenses that can be corrected automatically")
	fs.StringVar(&stdinPath, "stdin", "", "Read content from stdin, using the given path for config and excludes")
	fs.BoolVar(&listDocs, "list-linters", false, "List the built-in linters and exit")
	fs.StringVar(&describe, "describe", "", "Print the documentation for the named linter and exit")
	fs.BoolVar(&verbose, "verbose", false, "Print verbose diagnostics to stderr")
	fs.BoolVar(&version, "version", false, "Print version and exit")

	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usageHeader)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if version {
		printVersion()
		return 0
	}
	if listDocs {
		return listLinters()
	}
	if describe != "" {
		return describeLinter(describe)
	}

	paths := fs.Args()

	// Nothing to lint: usage to the error stream, failure outcome.
	if len(paths) == 0 && !lintAll && stdinPath == "" {
		fs.Usage()
		return 1
	}

	reporter, err := output.Lookup(format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "erblint: %v\n", err)
		return 2
	}

	level, err := lint.ParseSeverity(failLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "erblint: %v\n", err)
		return 2
	}

	logger := log.New(os.Stderr, verbose)

	logger.Printf("phase: %s", engine.ResolvingConfig)
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "erblint: %v\n", err)
		return 2
	}
	runner := &engine.Runner{
		Config:      cfg,
		Registry:    linters.DefaultRegistry(),
		Autocorrect: autocorrect,
		EnableOnly:  enableOnly,
		Log:         logger,
	}
	if stdinPath != "" {
		runner.Stdin = os.Stdin
		runner.StdinPath = stdinPath
		runner.CorrectedOut = os.Stdout
	}

	result, err := runner.Run(paths, lintAll)
	if err != nil {
		var noFiles *engine.NoFilesError
		if errors.As(err, &noFiles) {
			fmt.Fprintln(os.Stderr, "no files found")
			return 1
		}
		fmt.Fprintf(os.Stderr, "erblint: %v\n", err)
		return 2
	}

	decision := engine.Decide(result.Offenses(), level)

	// In stream correction mode the corrected file owns stdout; the report
	// moves to stderr.
	reportTo := os.Stdout
	if stdinPath != "" && autocorrect {
		reportTo = os.Stderr
	}
	if err := reporter.Render(reportTo, result, decision, autocorrect); err != nil {
		fmt.Fprintf(os.Stderr, "erblint: error writing report: %v\n", err)
		return 2
	}

	if decision.Success {
		return 0
	}
	return 1
}

// loadConfig resolves the layered configuration: built-in defaults merged
// with the user config. An explicit --config path must exist; the implicit
// .erb-lint.yml may be absent, in which case the defaults are used and an
// advisory is printed.
func loadConfig(configPath string) (*config.Config, error) {
	defaults := config.Default()

	path := configPath
	if path == "" {
		path = config.DefaultFileName
	}

	loaded, err := config.Load(path)
	if err != nil {
		var missing *config.FileMissingError
		if errors.As(err, &missing) && configPath == "" {
			fmt.Fprintln(os.Stderr, "config file not found: using default config")
			return defaults, nil
		}
		return nil, err
	}

	return config.Merge(defaults, loaded), nil
}

func listLinters() int {
	docs, err := linters.ListDocs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "erblint: %v\n", err)
		return 2
	}
	for _, d := range docs {
		fmt.Printf("%-22s %s\n", d.Name, d.Description)
	}
	return 0
}

func describeLinter(name string) int {
	content, err := linters.LookupDoc(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "erblint: %v\n", err)
		return 2
	}
	fmt.Print(content)
	return 0
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("erblint %s\n", version)
}
