package finalnewline

import (
	"bytes"
	"fmt"

	"github.com/wscourge/erb-lint/internal/config"
	"github.com/wscourge/erb-lint/internal/lint"
	"github.com/wscourge/erb-lint/internal/linter"
)

// Name is the canonical linter name.
const Name = "final_newline"

const schema = `close({
	present?: bool
})`

// Linter checks that a file ends with exactly one trailing newline (or,
// with present: false, none at all).
type Linter struct {
	present  bool
	severity lint.Severity
}

// New constructs the linter from its resolved configuration.
func New(cfg config.Resolved) (linter.Linter, error) {
	if err := linter.ValidateOptions(Name, schema, cfg.Options); err != nil {
		return nil, err
	}

	l := &Linter{present: true, severity: lint.Convention}
	if cfg.Severity != nil {
		l.severity = *cfg.Severity
	}
	if v, ok := cfg.Options["present"]; ok {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("linter %s: present must be a bool, got %T", Name, v)
		}
		l.present = b
	}
	return l, nil
}

// Name implements linter.Linter.
func (l *Linter) Name() string { return Name }

// Autocorrects implements linter.Correctable.
func (l *Linter) Autocorrects() bool { return true }

// Run implements linter.Linter.
func (l *Linter) Run(src *lint.Source) []lint.Offense {
	raw := src.Raw
	if len(raw) == 0 {
		return nil
	}

	trimmed := bytes.TrimRight(raw, "\n")
	trailing := len(raw) - len(trimmed)

	if l.present {
		if trailing == 1 {
			return nil
		}
		if trailing == 0 {
			r := lint.Range{Begin: len(raw), End: len(raw)}
			o := lint.NewOffense(src, Name, l.severity, r,
				"Missing a trailing newline at the end of the file.")
			return []lint.Offense{o.WithCorrection("\n")}
		}
		r := lint.Range{Begin: len(trimmed), End: len(raw)}
		o := lint.NewOffense(src, Name, l.severity, r,
			"Remove multiple trailing newlines at the end of the file.")
		return []lint.Offense{o.WithCorrection("\n")}
	}

	if trailing == 0 {
		return nil
	}
	r := lint.Range{Begin: len(trimmed), End: len(raw)}
	o := lint.NewOffense(src, Name, l.severity, r,
		"Remove the trailing newline at the end of the file.")
	return []lint.Offense{o.WithCorrection("")}
}
