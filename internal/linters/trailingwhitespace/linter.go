package trailingwhitespace

import (
	"github.com/wscourge/erb-lint/internal/config"
	"github.com/wscourge/erb-lint/internal/lint"
	"github.com/wscourge/erb-lint/internal/linter"
)

// Name is the canonical linter name.
const Name = "trailing_whitespace"

const schema = `close({})`

// Linter reports trailing spaces and tabs at the end of lines.
type Linter struct {
	severity lint.Severity
}

// New constructs the linter from its resolved configuration.
func New(cfg config.Resolved) (linter.Linter, error) {
	if err := linter.ValidateOptions(Name, schema, cfg.Options); err != nil {
		return nil, err
	}
	l := &Linter{severity: lint.Convention}
	if cfg.Severity != nil {
		l.severity = *cfg.Severity
	}
	return l, nil
}

// Name implements linter.Linter.
func (l *Linter) Name() string { return Name }

// Autocorrects implements linter.Correctable.
func (l *Linter) Autocorrects() bool { return true }

// Run implements linter.Linter.
func (l *Linter) Run(src *lint.Source) []lint.Offense {
	var offenses []lint.Offense
	offset := 0
	for _, line := range src.Lines {
		// A trailing '\r' belongs to the line terminator (CRLF files),
		// not to the line content.
		end := offset + len(line)
		content := end
		if content > offset && line[content-offset-1] == '\r' {
			content--
		}
		begin := content
		for begin > offset {
			c := line[begin-offset-1]
			if c != ' ' && c != '\t' {
				break
			}
			begin--
		}
		if begin < content {
			r := lint.Range{Begin: begin, End: content}
			o := lint.NewOffense(src, Name, l.severity, r,
				"Extra whitespace detected at end of line.")
			offenses = append(offenses, o.WithCorrection(""))
		}
		offset = end + 1
	}
	return offenses
}
