package extranewline

import (
	"fmt"
	"strings"

	"github.com/wscourge/erb-lint/internal/config"
	"github.com/wscourge/erb-lint/internal/lint"
	"github.com/wscourge/erb-lint/internal/linter"
)

// Name is the canonical linter name.
const Name = "extra_newline"

const schema = `close({
	max_consecutive?: int & >=0
})`

// Linter collapses runs of consecutive blank lines beyond the configured
// maximum.
type Linter struct {
	maxConsecutive int
	severity       lint.Severity
}

// New constructs the linter from its resolved configuration.
func New(cfg config.Resolved) (linter.Linter, error) {
	if err := linter.ValidateOptions(Name, schema, cfg.Options); err != nil {
		return nil, err
	}

	l := &Linter{maxConsecutive: 1, severity: lint.Convention}
	if cfg.Severity != nil {
		l.severity = *cfg.Severity
	}
	if v, ok := cfg.Options["max_consecutive"]; ok {
		n, ok := toInt(v)
		if !ok {
			return nil, fmt.Errorf("linter %s: max_consecutive must be an integer, got %T", Name, v)
		}
		l.maxConsecutive = n
	}
	return l, nil
}

// Name implements linter.Linter.
func (l *Linter) Name() string { return Name }

// Autocorrects implements linter.Correctable.
func (l *Linter) Autocorrects() bool { return true }

// Run implements linter.Linter.
func (l *Linter) Run(src *lint.Source) []lint.Offense {
	// A run of n consecutive newline bytes produces n-1 blank lines. The
	// allowed run length is maxConsecutive+1; a trailing run at EOF belongs
	// to final_newline.
	allowed := l.maxConsecutive + 1

	var offenses []lint.Offense
	raw := src.Raw
	for i := 0; i < len(raw); {
		if raw[i] != '\n' {
			i++
			continue
		}
		j := i
		for j < len(raw) && raw[j] == '\n' {
			j++
		}
		if j-i > allowed && j < len(raw) {
			r := lint.Range{Begin: i, End: j}
			o := lint.NewOffense(src, Name, l.severity, r,
				"Extra blank line detected.")
			offenses = append(offenses, o.WithCorrection(strings.Repeat("\n", allowed)))
		}
		i = j
	}
	return offenses
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
