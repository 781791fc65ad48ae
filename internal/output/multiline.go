package output

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/wscourge/erb-lint/internal/engine"
)

// MultilineReporter is the default human-readable format: each offense is
// printed as its message followed by the file location on its own line.
type MultilineReporter struct{}

// Render implements Reporter.
func (r *MultilineReporter) Render(w io.Writer, res *engine.Result, dec engine.Decision, autocorrect bool) error {
	verb := "Linting"
	suffix := ""
	if autocorrect {
		verb = "Linting and autocorrecting"
		suffix = fmt.Sprintf(" (%d autocorrectable)", res.Correctable)
	}
	if _, err := fmt.Fprintf(w, "%s %d files with %d linters%s...\n\n",
		verb, len(res.Files), res.LintersRun, suffix); err != nil {
		return err
	}

	for _, f := range res.Files {
		for _, o := range f.Offenses {
			label := ""
			if o.Severity < dec.FailLevel {
				label = " (ignored)"
			}
			abs, err := filepath.Abs(o.Path)
			if err != nil {
				abs = o.Path
			}
			if _, err := fmt.Fprintf(w, "%s%s\nIn file: %s:%d\n\n",
				o.Message, label, abs, o.Line); err != nil {
				return err
			}
		}
	}

	return r.renderSummary(w, res, dec, autocorrect)
}

func (r *MultilineReporter) renderSummary(w io.Writer, res *engine.Result, dec engine.Decision, autocorrect bool) error {
	if autocorrect {
		if _, err := fmt.Fprintf(w, "%d error(s) corrected in ERB files\n", res.Corrected); err != nil {
			return err
		}
	}

	if dec.Found == 0 {
		if _, err := fmt.Fprintln(w, "No errors were found in ERB files"); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "%d error(s) were found in ERB files\n", dec.Found); err != nil {
			return err
		}
	}

	if dec.Ignored > 0 {
		if _, err := fmt.Fprintf(w, "%d error(s) were ignored in ERB files\n", dec.Ignored); err != nil {
			return err
		}
	}
	return nil
}
