package lint

// Range is a half-open byte range [Begin, End) into a source.
type Range struct {
	Begin int
	End   int
}

// Length returns the number of bytes covered by the range.
func (r Range) Length() int { return r.End - r.Begin }

// Correction is a proposed replacement for a byte range of the original text.
type Correction struct {
	Range
	Replacement string
}

// Offense is a single lint finding. Offenses are created by a linter during
// its run and never mutated afterwards.
type Offense struct {
	Linter    string
	Severity  Severity
	Message   string
	Path      string
	Range     Range
	Line      int
	Column    int
	EndLine   int
	EndColumn int

	// Correction, when non-nil, is the linter's proposed fix for this
	// offense. It is only applied when the linter declares itself
	// autocorrectable and correction mode is active.
	Correction *Correction
}

// NewOffense builds an Offense anchored at the given range of src, resolving
// line and column positions from the source model.
func NewOffense(src *Source, linter string, sev Severity, r Range, msg string) Offense {
	return Offense{
		Linter:    linter,
		Severity:  sev,
		Message:   msg,
		Path:      src.Path,
		Range:     r,
		Line:      src.LineOfOffset(r.Begin),
		Column:    src.ColumnOfOffset(r.Begin),
		EndLine:   src.LineOfOffset(r.End),
		EndColumn: src.ColumnOfOffset(r.End),
	}
}

// WithCorrection returns a copy of the offense carrying a proposed
// replacement for its range.
func (o Offense) WithCorrection(replacement string) Offense {
	o.Correction = &Correction{Range: o.Range, Replacement: replacement}
	return o
}
