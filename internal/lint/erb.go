package lint

import "bytes"

// Tag is one ERB tag occurrence in a source.
type Tag struct {
	// Range covers the whole tag including delimiters. An unclosed tag
	// extends to the end of the source.
	Range
	// Open is the opening delimiter including modifier characters:
	// "<%", "<%=", "<%==", "<%#", "<%-".
	Open string
	// Close is the closing delimiter including a trim marker when present:
	// "%>", "-%>", "=%>". Empty for an unclosed tag.
	Close string
	// Inner is the byte range of the code between the delimiters.
	Inner Range
}

// Comment reports whether the tag is an ERB comment.
func (t Tag) Comment() bool { return t.Open == "<%#" }

var (
	erbOpen  = []byte("<%")
	erbClose = []byte("%>")
)

// Tags scans the source for ERB tags in order of appearance. The scanner is
// tolerant of malformed input: an opener without a closer yields a tag with
// an empty Close extending to the end of the source.
func (s *Source) Tags() []Tag {
	var tags []Tag
	pos := 0
	for {
		start := bytes.Index(s.Raw[pos:], erbOpen)
		if start < 0 {
			break
		}
		start += pos

		open := scanOpenDelimiter(s.Raw, start)
		innerBegin := start + len(open)

		rel := bytes.Index(s.Raw[innerBegin:], erbClose)
		if rel < 0 {
			tags = append(tags, Tag{
				Range: Range{Begin: start, End: len(s.Raw)},
				Open:  open,
				Inner: Range{Begin: innerBegin, End: len(s.Raw)},
			})
			break
		}

		closeEnd := innerBegin + rel + len(erbClose)
		close := scanCloseDelimiter(s.Raw, innerBegin, innerBegin+rel)
		tags = append(tags, Tag{
			Range: Range{Begin: start, End: closeEnd},
			Open:  open,
			Close: close,
			Inner: Range{Begin: innerBegin, End: closeEnd - len(close)},
		})
		pos = closeEnd
	}
	return tags
}

// StrayClosers returns the byte offsets of "%>" sequences that appear
// outside any ERB tag.
func (s *Source) StrayClosers() []int {
	tags := s.Tags()
	var strays []int
	pos := 0
	for {
		idx := bytes.Index(s.Raw[pos:], erbClose)
		if idx < 0 {
			break
		}
		idx += pos
		if !insideTag(tags, idx) {
			strays = append(strays, idx)
		}
		pos = idx + len(erbClose)
	}
	return strays
}

func insideTag(tags []Tag, offset int) bool {
	for _, t := range tags {
		if offset >= t.Begin && offset < t.End {
			return true
		}
	}
	return false
}

// scanOpenDelimiter returns the opening delimiter starting at offset,
// including modifier characters.
func scanOpenDelimiter(raw []byte, offset int) string {
	end := offset + len(erbOpen)
	for end < len(raw) {
		switch raw[end] {
		case '=', '#', '-':
			end++
			continue
		}
		break
	}
	// "<%==" is the longest modifier run that means anything; anything
	// longer is the tag body's problem.
	if end-offset > 4 {
		end = offset + 4
	}
	return string(raw[offset:end])
}

// scanCloseDelimiter returns the closing delimiter ending at closeStart
// (the offset of "%>"), including a preceding trim marker.
func scanCloseDelimiter(raw []byte, innerBegin, closeStart int) string {
	if closeStart > innerBegin {
		switch raw[closeStart-1] {
		case '-', '=':
			return string(raw[closeStart-1 : closeStart+len(erbClose)])
		}
	}
	return string(erbClose)
}
