package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/wscourge/erb-lint/internal/config"
	"github.com/wscourge/erb-lint/internal/discovery"
	"github.com/wscourge/erb-lint/internal/lint"
	"github.com/wscourge/erb-lint/internal/linter"
	"github.com/wscourge/erb-lint/internal/log"
)

// Runner drives the linting pipeline: it discovers target files, selects
// enabled linters, runs each applicable linter against each file's source
// model, collects offenses, and applies non-conflicting corrections when
// correction mode is active.
type Runner struct {
	Config      *config.Config
	Registry    *linter.Registry
	Autocorrect bool

	// EnableOnly restricts the run to the named linters. The effective set
	// is the intersection of config-enabled linters and this list.
	EnableOnly []string

	// Stdin, when non-nil, switches the runner to stream mode: StdinPath
	// establishes file identity for configuration and exclude matching
	// while content is read from Stdin. Corrected output is written to
	// CorrectedOut instead of the file.
	Stdin        io.Reader
	StdinPath    string
	CorrectedOut io.Writer

	Log *log.Logger

	phase Phase
}

// FileResult holds everything one file produced during the run. Offenses
// are ordered by linter registration order, then emission order within a
// linter.
type FileResult struct {
	Path            string
	Offenses        []lint.Offense
	Corrected       bool
	CorrectedSource []byte
	CorrectionCount int
}

// Result is the aggregated outcome of a run.
type Result struct {
	Files []FileResult
	// LintersRun counts the linters selected for this run; Correctable
	// counts how many of those declare the autocorrect capability.
	LintersRun  int
	Correctable int
	// Corrected counts corrections actually applied across all files.
	Corrected int
}

// Offenses returns every offense in file order.
func (r *Result) Offenses() []lint.Offense {
	var out []lint.Offense
	for _, f := range r.Files {
		out = append(out, f.Offenses...)
	}
	return out
}

// selection is one enabled linter with its compiled excludes.
type selection struct {
	name        string
	instance    linter.Linter
	excludes    []glob.Glob
	correctable bool
}

// Run executes the pipeline for the given explicit paths, or for all files
// matching the configured glob when lintAll is set. It returns a terminal
// error on the first unrecoverable condition; no partial result is produced.
func (r *Runner) Run(paths []string, lintAll bool) (*Result, error) {
	r.setPhase(DiscoveringFiles)
	files, err := r.discover(paths, lintAll)
	if err != nil {
		return nil, err
	}

	r.setPhase(SelectingLinters)
	selected, err := r.selectLinters()
	if err != nil {
		return nil, err
	}

	// Excludes are evaluated independently per linter: a file may be
	// skipped for one linter and processed by another. Files with no
	// applicable linter drop out of the target list entirely.
	type target struct {
		path    string
		linters []*selection
	}
	var targets []target
	for _, path := range files {
		var applicable []*selection
		for _, s := range selected {
			if s.excluded(path) {
				continue
			}
			applicable = append(applicable, s)
		}
		if len(applicable) > 0 {
			targets = append(targets, target{path: path, linters: applicable})
		}
	}

	if len(targets) == 0 {
		return nil, &NoFilesError{}
	}

	r.setPhase(Running)
	result := &Result{LintersRun: len(selected)}
	for _, s := range selected {
		if s.correctable {
			result.Correctable++
		}
	}

	for _, t := range targets {
		r.Log.Printf("linting %s with %d linters", t.path, len(t.linters))
		fr, err := r.runFile(t.path, t.linters)
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, fr)
		result.Corrected += fr.CorrectionCount
	}

	r.setPhase(Deciding)
	return result, nil
}

// discover resolves the target file list.
func (r *Runner) discover(paths []string, lintAll bool) ([]string, error) {
	if r.Stdin != nil {
		return []string{r.StdinPath}, nil
	}
	if len(paths) > 0 {
		return discovery.Discover(paths, r.Config.Glob)
	}
	if lintAll {
		return discovery.DiscoverAll(".", r.Config.Glob)
	}
	return nil, nil
}

// selectLinters resolves per-linter configuration and constructs the
// enabled linters in registration order.
func (r *Runner) selectLinters() ([]*selection, error) {
	requested := make(map[string]bool, len(r.EnableOnly))
	for _, name := range r.EnableOnly {
		if !r.Registry.Has(name) {
			return nil, &UnknownLinterError{Name: name, Known: r.Registry.Names()}
		}
		requested[name] = true
	}

	var selected []*selection
	for _, name := range r.Registry.Names() {
		resolved, err := r.Config.ForLinter(r.Registry, name)
		if err != nil {
			return nil, err
		}
		if !resolved.Enabled {
			continue
		}
		if len(requested) > 0 && !requested[name] {
			continue
		}

		factory, _ := r.Registry.Lookup(name)
		instance, err := factory(resolved)
		if err != nil {
			return nil, err
		}

		s := &selection{
			name:     name,
			instance: instance,
			excludes: compileGlobs(resolved.Exclude),
		}
		if c, ok := instance.(linter.Correctable); ok && c.Autocorrects() {
			s.correctable = true
		}
		selected = append(selected, s)
	}
	return selected, nil
}

// runFile lints one file with its applicable linters and, in correction
// mode, applies the proposed corrections and writes the result back.
func (r *Runner) runFile(path string, linters []*selection) (FileResult, error) {
	content, err := r.readContent(path)
	if err != nil {
		return FileResult{}, err
	}

	src := lint.NewSource(path, content)
	fr := FileResult{Path: path}
	var proposals []lint.Correction

	for _, s := range linters {
		offenses, err := runLinter(s, src)
		if err != nil {
			return FileResult{}, err
		}
		fr.Offenses = append(fr.Offenses, offenses...)

		if r.Autocorrect && s.correctable {
			for _, o := range offenses {
				if o.Correction != nil {
					proposals = append(proposals, *o.Correction)
				}
			}
		}
	}

	if r.Autocorrect {
		corrected, applied := applyCorrections(content, proposals)
		fr.CorrectionCount = applied
		if !bytes.Equal(corrected, content) {
			fr.Corrected = true
			fr.CorrectedSource = corrected
		}
		if err := r.writeCorrected(path, content, corrected, fr.Corrected); err != nil {
			return fr, err
		}
	}

	return fr, nil
}

// runLinter executes one linter, converting an unexpected panic into a
// LinterCrashError that aborts the whole invocation.
func runLinter(s *selection, src *lint.Source) (offenses []lint.Offense, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &LinterCrashError{Linter: s.name, Path: src.Path, Err: fmt.Errorf("%v", rec)}
		}
	}()
	return s.instance.Run(src), nil
}

// readContent reads the file's text, or the stream in stdin mode.
func (r *Runner) readContent(path string) ([]byte, error) {
	if r.Stdin != nil && path == r.StdinPath {
		content, err := io.ReadAll(r.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return content, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return content, nil
}

// writeCorrected emits the corrected text: to the output stream in stdin
// mode (always, so the caller sees the full file), or back to the file only
// when it changed.
func (r *Runner) writeCorrected(path string, original, corrected []byte, changed bool) error {
	if r.Stdin != nil && path == r.StdinPath {
		if r.CorrectedOut == nil {
			return nil
		}
		if _, err := r.CorrectedOut.Write(corrected); err != nil {
			return fmt.Errorf("writing corrected output: %w", err)
		}
		return nil
	}

	if !changed {
		return nil
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, corrected, mode); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

// excluded returns true if the file path matches any of the linter's
// exclude patterns.
func (s *selection) excluded(path string) bool {
	cleanPath := filepath.Clean(path)
	for _, g := range s.excludes {
		if g.Match(path) || g.Match(cleanPath) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}

// compileGlobs compiles exclude patterns, skipping invalid ones.
func compileGlobs(patterns []string) []glob.Glob {
	out := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		out = append(out, g)
	}
	return out
}

func (r *Runner) setPhase(p Phase) {
	r.phase = p
	r.Log.Printf("phase: %s", p)
}
