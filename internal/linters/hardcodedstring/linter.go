package hardcodedstring

import (
	"strings"
	"unicode"

	"github.com/wscourge/erb-lint/internal/config"
	"github.com/wscourge/erb-lint/internal/lint"
	"github.com/wscourge/erb-lint/internal/linter"
)

// Name is the canonical linter name.
const Name = "hard_coded_string"

const schema = `close({
	min_length?: int & >=1
})`

// Linter flags user-facing text written directly in the template instead of
// going through translation helpers. Advisory only: it reports at info
// severity and proposes no correction.
type Linter struct {
	minLength int
	severity  lint.Severity
}

// New constructs the linter from its resolved configuration.
func New(cfg config.Resolved) (linter.Linter, error) {
	if err := linter.ValidateOptions(Name, schema, cfg.Options); err != nil {
		return nil, err
	}

	l := &Linter{minLength: 1, severity: lint.Info}
	if cfg.Severity != nil {
		l.severity = *cfg.Severity
	}
	if v, ok := cfg.Options["min_length"]; ok {
		if n, ok := toInt(v); ok {
			l.minLength = n
		}
	}
	return l, nil
}

// Name implements linter.Linter.
func (l *Linter) Name() string { return Name }

// Run implements linter.Linter.
func (l *Linter) Run(src *lint.Source) []lint.Offense {
	var offenses []lint.Offense
	for _, seg := range textSegments(src) {
		text := string(src.Raw[seg.Begin:seg.End])
		if !userFacing(text, l.minLength) {
			continue
		}
		offenses = append(offenses, lint.NewOffense(src, Name, l.severity, seg,
			"String not translated: "+strings.TrimSpace(text)))
	}
	return offenses
}

// textSegments returns the byte ranges of template text outside ERB tags
// and outside HTML tags, split per line.
func textSegments(src *lint.Source) []lint.Range {
	masked := append([]byte(nil), src.Raw...)

	for _, tag := range src.Tags() {
		mask(masked, tag.Begin, tag.End)
	}
	maskHTMLTags(masked)

	var segments []lint.Range
	begin := -1
	for i := 0; i <= len(masked); i++ {
		isText := i < len(masked) && masked[i] != 0 && masked[i] != '\n'
		if isText && begin < 0 {
			begin = i
		}
		if !isText && begin >= 0 {
			segments = append(segments, lint.Range{Begin: begin, End: i})
			begin = -1
		}
	}
	return segments
}

// mask zeroes out a byte range so it is not treated as text.
func mask(buf []byte, begin, end int) {
	for i := begin; i < end && i < len(buf); i++ {
		buf[i] = 0
	}
}

// maskHTMLTags zeroes out HTML tag markup, leaving element content intact.
func maskHTMLTags(buf []byte) {
	depth := 0
	start := 0
	for i, c := range buf {
		switch c {
		case '<':
			if depth == 0 {
				start = i
			}
			depth++
		case '>':
			if depth > 0 {
				depth--
				if depth == 0 {
					mask(buf, start, i+1)
				}
			}
		}
	}
	// An unterminated tag hides the rest of the buffer.
	if depth > 0 {
		mask(buf, start, len(buf))
	}
}

// userFacing reports whether text contains at least minLength letters.
func userFacing(text string, minLength int) bool {
	letters := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if letters >= minLength {
				return true
			}
		}
	}
	return false
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
