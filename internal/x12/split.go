package x12

import "fmt"

// TransactionSet is one ST..SE group.
type TransactionSet struct {
	// Code is ST01, the transaction set identifier (e.g. "850").
	Code string

	// ControlNumber is ST02.
	ControlNumber string

	// Segments holds ST through SE inclusive. An unterminated set ends at
	// the last segment read before it was interrupted.
	Segments []Segment

	// Terminated is false when no SE closed the set.
	Terminated bool
}

// Warning describes why a set is incomplete. It is empty for a
// terminated set.
func (ts TransactionSet) Warning() string {
	if ts.Terminated {
		return ""
	}
	return fmt.Sprintf("transaction set %s (control %s) has no SE trailer", ts.Code, ts.ControlNumber)
}

// Body returns the segments between ST and SE.
func (ts TransactionSet) Body() []Segment {
	segs := ts.Segments
	if len(segs) > 0 && segs[0].ID == stSegmentID {
		segs = segs[1:]
	}
	if ts.Terminated && len(segs) > 0 && segs[len(segs)-1].ID == seSegmentID {
		segs = segs[:len(segs)-1]
	}
	return segs
}

// SplitTransactionSets partitions the segment stream into transaction
// sets. Segments outside an ST..SE pair are ignored. A set interrupted by
// a new ST, or still open at the end of the input, is kept and flagged
// with Terminated=false.
func SplitTransactionSets(segments []Segment) []TransactionSet {
	var (
		sets []TransactionSet
		open *TransactionSet
	)

	for _, seg := range segments {
		switch seg.ID {
		case stSegmentID:
			if open != nil {
				sets = append(sets, *open)
			}
			open = &TransactionSet{
				Code:          seg.Element(1),
				ControlNumber: seg.Element(2),
				Segments:      []Segment{seg},
			}
		case seSegmentID:
			if open == nil {
				continue
			}
			open.Segments = append(open.Segments, seg)
			open.Terminated = true
			sets = append(sets, *open)
			open = nil
		case geSegmentID, gsSegmentID, ieaSegmentID, isaSegmentID:
			// An envelope segment closes whatever set is still open.
			if open != nil {
				sets = append(sets, *open)
				open = nil
			}
		default:
			if open != nil {
				open.Segments = append(open.Segments, seg)
			}
		}
	}

	if open != nil {
		sets = append(sets, *open)
	}

	return sets
}
