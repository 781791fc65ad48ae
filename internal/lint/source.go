package lint

import "bytes"

// Source holds one ERB template file and its raw text. The path identifies
// the file for configuration and exclude matching even when the content was
// read from elsewhere (stdin mode).
type Source struct {
	Path  string
	Raw   []byte
	Lines [][]byte
}

// NewSource wraps raw template text in a Source.
func NewSource(path string, raw []byte) *Source {
	return &Source{
		Path:  path,
		Raw:   raw,
		Lines: bytes.Split(raw, []byte("\n")),
	}
}

// LineOfOffset converts a byte offset in Raw to a 1-based line number.
func (s *Source) LineOfOffset(offset int) int {
	line := 1
	for i := 0; i < offset && i < len(s.Raw); i++ {
		if s.Raw[i] == '\n' {
			line++
		}
	}
	return line
}

// ColumnOfOffset converts a byte offset in Raw to a 1-based column number.
func (s *Source) ColumnOfOffset(offset int) int {
	if offset > len(s.Raw) {
		offset = len(s.Raw)
	}
	col := 1
	for i := 0; i < offset; i++ {
		if s.Raw[i] == '\n' {
			col = 1
		} else {
			col++
		}
	}
	return col
}

// OffsetOfLine returns the byte offset of the start of the 1-based line.
func (s *Source) OffsetOfLine(line int) int {
	offset := 0
	for i := 0; i < line-1 && i < len(s.Lines); i++ {
		offset += len(s.Lines[i]) + 1
	}
	return offset
}
