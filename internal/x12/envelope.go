// =============================================================================
// EDI Document Renderer - Envelope Extractor
// =============================================================================
//
// The envelope is the ISA/GS header pair wrapping every transaction set.
// Its fields (sender, receiver, control number, date) are inherited by every
// document decoded from the interchange.
//
// DATE PRECEDENCE:
//   ISA09 carries a 2-digit year (YYMMDD), GS04 a 4-digit year (CCYYMMDD).
//   A well-formed group date is preferred; the interchange date is used
//   when the group date is missing or malformed. Both are kept.
//
// =============================================================================

package x12

import (
	"strings"
)

const (
	ieaSegmentID = "IEA"
	gsSegmentID  = "GS"
	geSegmentID  = "GE"
	stSegmentID  = "ST"
	seSegmentID  = "SE"
)

// ISA element positions (X12 numbering).
const (
	isaIndexSenderID      = 6
	isaIndexReceiverID    = 8
	isaIndexDate          = 9
	isaIndexVersion       = 12
	isaIndexControlNumber = 13

	// isaFullElementCount is the element count of a complete ISA header.
	isaFullElementCount = 16

	// isaShortElementCount is an abbreviated header without the
	// security information qualifier pair (ISA03/ISA04).
	isaShortElementCount = 14
)

// GS element positions (X12 numbering).
const (
	gsIndexFunctionalID = 1
	gsIndexSenderCode   = 2
	gsIndexReceiverCode = 3
	gsIndexDate         = 4
	gsIndexControl      = 6
	gsIndexVersion      = 8
)

// Envelope is the interchange and group context shared by every
// transaction set in the input.
type Envelope struct {
	SenderID      string
	ReceiverID    string
	ControlNumber string

	// Date is the resolved envelope date in CCYYMMDD form.
	Date string

	// InterchangeDate is ISA09 normalized to CCYYMMDD.
	InterchangeDate string

	// GroupDate is GS04 as sent.
	GroupDate string

	FunctionalID       string
	GroupSenderID      string
	GroupReceiverID    string
	GroupControlNumber string
	Version            string

	// Headers holds the envelope segments in the order they were read.
	Headers []Segment
}

// ExtractEnvelope scans the segments up to the first ST (or an IEA
// trailer) and collects envelope context.
func ExtractEnvelope(segments []Segment) Envelope {
	var env Envelope

	for _, seg := range segments {
		if seg.ID == stSegmentID || seg.ID == ieaSegmentID {
			break
		}

		switch seg.ID {
		case isaSegmentID:
			env.Headers = append(env.Headers, seg)
			readInterchangeHeader(&env, seg)
		case gsSegmentID:
			env.Headers = append(env.Headers, seg)
			readGroupHeader(&env, seg)
		}
	}

	env.Date = resolveDate(env.GroupDate, env.InterchangeDate)
	return env
}

func readInterchangeHeader(env *Envelope, isa Segment) {
	shift := 0
	if isa.Len() < isaFullElementCount && isa.Len() >= isaShortElementCount {
		shift = isaFullElementCount - isaShortElementCount
	}

	at := func(n int) string {
		return isa.Element(n - shift)
	}

	env.SenderID = at(isaIndexSenderID)
	env.ReceiverID = at(isaIndexReceiverID)
	env.ControlNumber = at(isaIndexControlNumber)
	env.InterchangeDate = expandShortDate(at(isaIndexDate))
	if env.Version == "" {
		env.Version = at(isaIndexVersion)
	}
}

func readGroupHeader(env *Envelope, gs Segment) {
	env.FunctionalID = gs.Element(gsIndexFunctionalID)
	env.GroupSenderID = gs.Element(gsIndexSenderCode)
	env.GroupReceiverID = gs.Element(gsIndexReceiverCode)
	env.GroupDate = gs.Element(gsIndexDate)
	env.GroupControlNumber = gs.Element(gsIndexControl)
	if v := gs.Element(gsIndexVersion); v != "" {
		env.Version = v
	}
}

// resolveDate prefers a well-formed CCYYMMDD group date.
func resolveDate(group, interchange string) string {
	if len(group) == 8 && isDigits(group) {
		return group
	}
	if interchange != "" {
		return interchange
	}
	return group
}

// expandShortDate turns YYMMDD into 20YYMMDD. Other values are returned
// unchanged.
func expandShortDate(s string) string {
	if len(s) == 6 && isDigits(s) {
		return "20" + s
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) == -1
}
