package x12

import (
	"strings"
)

// Segment is one unit of the exchange format: an identifier followed by
// its elements. Segments are values and are never modified after parsing.
type Segment struct {
	// ID is the segment identifier, e.g. "BEG" or "N1".
	ID string

	// Elements holds the element values in order. Elements[0] is the
	// first element after the identifier (BEG01).
	Elements []string

	sub byte
}

// NewSegment builds a segment directly. The sub-element separator is the
// default one.
func NewSegment(id string, elements ...string) Segment {
	return Segment{ID: id, Elements: elements, sub: DefaultDelimiters.SubElement}
}

// Element returns the n-th element using X12 numbering (BEG03 is
// Element(3)). Missing elements are returned as the empty string.
func (s Segment) Element(n int) string {
	if n < 1 || n > len(s.Elements) {
		return ""
	}
	return strings.TrimSpace(s.Elements[n-1])
}

// Component returns the m-th component (1-based) of the n-th element.
func (s Segment) Component(n, m int) string {
	el := s.Element(n)
	if el == "" || m < 1 {
		return ""
	}

	sep := s.sub
	if sep == 0 {
		sep = DefaultDelimiters.SubElement
	}

	parts := strings.Split(el, string(sep))
	if m > len(parts) {
		return ""
	}
	return strings.TrimSpace(parts[m-1])
}

// Len returns the number of elements, not counting the identifier.
func (s Segment) Len() int {
	return len(s.Elements)
}

// String renders the segment with the default element separator.
func (s Segment) String() string {
	if len(s.Elements) == 0 {
		return s.ID
	}
	return s.ID + string(DefaultDelimiters.Element) + strings.Join(s.Elements, string(DefaultDelimiters.Element))
}

// =============================================================================
// SEGMENTER
// =============================================================================

// SplitSegments splits the body into raw segment strings.
//
// Line breaks are formatting only and are stripped, unless the terminator
// is itself a line break; then CRLF, CR and LF all end a segment. Each
// piece is trimmed and empty pieces are dropped.
func SplitSegments(body string, d Delimiters) []string {
	term := d.Segment

	if isLineBreak(term) {
		body = strings.ReplaceAll(body, "\r\n", "\n")
		body = strings.ReplaceAll(body, "\r", "\n")
		term = '\n'
	} else {
		body = strings.NewReplacer("\r", "", "\n", "").Replace(body)
	}

	pieces := strings.Split(body, string(term))
	out := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		out = append(out, piece)
	}
	return out
}

// ParseSegments splits the body into typed segments.
func ParseSegments(body string, d Delimiters) []Segment {
	raw := SplitSegments(body, d)
	segments := make([]Segment, 0, len(raw))

	for _, r := range raw {
		parts := strings.Split(r, string(d.Element))
		segments = append(segments, Segment{
			ID:       strings.ToUpper(strings.TrimSpace(parts[0])),
			Elements: parts[1:],
			sub:      d.SubElement,
		})
	}

	return segments
}
