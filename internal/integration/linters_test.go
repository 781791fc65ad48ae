// Package integration exercises the full pipeline per linter through fixture
// templates: bad fixtures must produce offenses, fixed fixtures show the
// expected autocorrect output, and good fixtures must stay clean under the
// whole default linter set.
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/wscourge/erb-lint/internal/config"
	"github.com/wscourge/erb-lint/internal/engine"
	"github.com/wscourge/erb-lint/internal/lint"
	"github.com/wscourge/erb-lint/internal/linters"
)

// fixtureConfig layers the built-in defaults with every linter switched on,
// so disabled-by-default linters can be exercised through EnableOnly.
func fixtureConfig() *config.Config {
	enabled := true
	all := &config.Config{Linters: map[string]config.Linter{}}
	for _, name := range linters.DefaultRegistry().Names() {
		all.Linters[name] = config.Linter{Enabled: &enabled}
	}
	return config.Merge(config.Default(), all)
}

func TestLinterFixtures(t *testing.T) {
	dirs := discoverFixtureDirs(t)

	for _, dir := range dirs {
		name := filepath.Base(dir)
		t.Run(name, func(t *testing.T) {
			if !linters.DefaultRegistry().Has(name) {
				t.Fatalf("fixture directory %s does not match a registered linter", name)
			}

			badPath := filepath.Join(dir, "bad.html.erb")
			t.Run("bad", func(t *testing.T) {
				runBadFixture(t, badPath, name)
			})

			fixedPath := filepath.Join(dir, "fixed.html.erb")
			if _, err := os.Stat(fixedPath); err == nil {
				t.Run("fix", func(t *testing.T) {
					runFixFixture(t, badPath, fixedPath, name)
				})
			}
		})
	}
}

func TestGoodFixturesStayClean(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "good", "*.html.erb"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no good fixtures found")
	}

	for _, f := range files {
		name := filepath.Base(f)
		t.Run(name, func(t *testing.T) {
			runner := &engine.Runner{
				Config:   config.Default(),
				Registry: linters.DefaultRegistry(),
			}
			result, err := runner.Run([]string{f}, false)
			if err != nil {
				t.Fatal(err)
			}
			for _, o := range result.Offenses() {
				t.Errorf("%s:%d:%d: [%s] %s", o.Path, o.Line, o.Column, o.Linter, o.Message)
			}
		})
	}
}

// runBadFixture lints a bad fixture with only the target linter and expects
// at least one offense from it.
func runBadFixture(t *testing.T, badPath, name string) {
	t.Helper()

	runner := &engine.Runner{
		Config:     fixtureConfig(),
		Registry:   linters.DefaultRegistry(),
		EnableOnly: []string{name},
	}
	result, err := runner.Run([]string{badPath}, false)
	if err != nil {
		t.Fatal(err)
	}

	offenses := filterByLinter(result.Offenses(), name)
	if len(offenses) == 0 {
		t.Fatalf("expected %s to flag %s", name, badPath)
	}
	for _, o := range offenses {
		if o.Line < 1 || o.Column < 1 {
			t.Errorf("offense carries an invalid position: %d:%d", o.Line, o.Column)
		}
	}
}

// runFixFixture autocorrects a copy of the bad fixture and compares the
// result against the fixed fixture, then verifies the corrected file is
// clean for the target linter.
func runFixFixture(t *testing.T, badPath, fixedPath, name string) {
	t.Helper()

	workPath := filepath.Join(t.TempDir(), filepath.Base(badPath))
	if err := os.WriteFile(workPath, readFixture(t, badPath), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := &engine.Runner{
		Config:      fixtureConfig(),
		Registry:    linters.DefaultRegistry(),
		EnableOnly:  []string{name},
		Autocorrect: true,
	}
	result, err := runner.Run([]string{workPath}, false)
	if err != nil {
		t.Fatal(err)
	}
	if result.Corrected == 0 {
		t.Error("expected at least one applied correction")
	}

	got := readFixture(t, workPath)
	want := readFixture(t, fixedPath)
	if !bytes.Equal(got, want) {
		t.Fatalf("corrected output does not match %s\ngot:\n%q\nwant:\n%q",
			filepath.Base(fixedPath), got, want)
	}

	rerun := &engine.Runner{
		Config:     fixtureConfig(),
		Registry:   linters.DefaultRegistry(),
		EnableOnly: []string{name},
	}
	clean, err := rerun.Run([]string{workPath}, false)
	if err != nil {
		t.Fatal(err)
	}
	if offenses := filterByLinter(clean.Offenses(), name); len(offenses) != 0 {
		t.Errorf("corrected file still flagged: %+v", offenses)
	}
}

func discoverFixtureDirs(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir("testdata")
	if err != nil {
		t.Fatal(err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() && e.Name() != "good" {
			dirs = append(dirs, filepath.Join("testdata", e.Name()))
		}
	}
	if len(dirs) == 0 {
		t.Fatal("no linter fixture directories found")
	}
	return dirs
}

func readFixture(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return data
}

func filterByLinter(offenses []lint.Offense, name string) []lint.Offense {
	var filtered []lint.Offense
	for _, o := range offenses {
		if o.Linter == name {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
