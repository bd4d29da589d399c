// =============================================================================
// EDI Document Renderer - X12 Delimiter Sniffer
// =============================================================================
//
// X12 interchanges describe their own delimiters. The ISA header is a
// fixed-width segment of 106 characters:
//
//   ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *...*>~
//      ^                                                                    ^^
//      |                                                                    ||
//      element separator (offset 3)            sub-element (104) ----------+|
//                                              segment terminator (105) ----+
//
// Real-world files are not always well formed, so the fixed offsets are
// checked for plausibility and a structural scan is used as a fallback.
// Sniffing never fails: the worst case is DefaultDelimiters.
//
// =============================================================================

package x12

import (
	"strings"
	"unicode"
)

// =============================================================================
// DELIMITERS
// =============================================================================

// Delimiters holds the three separator characters of an interchange.
// They are fixed for the entire input.
type Delimiters struct {
	// Element separates elements within a segment (commonly '*').
	Element byte

	// SubElement separates components within a composite element (commonly ':' or '>').
	SubElement byte

	// Segment terminates each segment (commonly '~').
	Segment byte
}

// DefaultDelimiters is used whenever the input does not announce its own.
var DefaultDelimiters = Delimiters{
	Element:    '*',
	SubElement: ':',
	Segment:    '~',
}

const (
	isaSegmentID             = "ISA"
	isaByteCount             = 106
	isaElementSeparatorIndex = 3
	isaSubElementIndex       = 104
	isaSegmentTerminatorIdx  = 105
)

// SniffDelimiters detects the delimiters from the interchange header.
//
// DETECTION ORDER:
//  1. Input without an ISA prefix gets DefaultDelimiters.
//  2. The element separator is read from offset 3.
//  3. When the input is at least 106 characters long, the sub-element
//     separator and the terminator are read from offsets 104 and 105 and
//     kept if they look like delimiters.
//  4. Otherwise the character before the first GS segment is taken as the
//     terminator and the one before it as the sub-element separator.
//  5. Anything still unknown falls back to the default.
func SniffDelimiters(raw string) Delimiters {
	d := DefaultDelimiters

	raw = strings.TrimLeft(raw, " \t\r\n")
	if len(raw) <= isaElementSeparatorIndex || !strings.HasPrefix(raw, isaSegmentID) {
		return d
	}

	d.Element = raw[isaElementSeparatorIndex]

	if len(raw) >= isaByteCount {
		sub, term := raw[isaSubElementIndex], raw[isaSegmentTerminatorIdx]
		if plausible(sub, term, d.Element) {
			d.SubElement = sub
			d.Segment = term
			return d
		}
	}

	if sub, term, ok := scanBeforeGroup(raw, d.Element); ok {
		d.SubElement = sub
		d.Segment = term
	}

	return d
}

// scanBeforeGroup locates the first GS segment and reads the two
// characters in front of it. Line breaks between the ISA terminator and
// the GS segment are skipped unless they are the terminator themselves.
func scanBeforeGroup(raw string, element byte) (sub, term byte, ok bool) {
	idx := strings.Index(raw, "GS"+string(element))
	if idx < 2 {
		return 0, 0, false
	}

	end := idx
	for end > 0 && isLineBreak(raw[end-1]) {
		end--
	}
	if end < 2 {
		return 0, 0, false
	}

	// "...*>~GS" or "...*>~\nGS": a visible terminator.
	if plausible(raw[end-2], raw[end-1], element) {
		return raw[end-2], raw[end-1], true
	}

	// "...*>\nGS": the line break is the terminator.
	if end != idx && plausibleSub(raw[end-1], element) {
		return raw[end-1], raw[idx-1], true
	}

	return 0, 0, false
}

func isLineBreak(b byte) bool {
	return b == '\n' || b == '\r'
}

// plausible reports whether the pair looks like a sub-element separator
// and segment terminator.
func plausible(sub, term, element byte) bool {
	if !plausibleSub(sub, element) {
		return false
	}
	if isWordByte(term) || term == ' ' || term == element || term == sub {
		return false
	}
	return true
}

func plausibleSub(sub, element byte) bool {
	return !isWordByte(sub) && sub != ' ' && sub != element
}

func isWordByte(b byte) bool {
	r := rune(b)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
