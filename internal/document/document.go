// =============================================================================
// EDI Document Renderer - Normalized Document
// =============================================================================
//
// A Document is the uniform output of every transaction decoder, regardless
// of transaction type:
//
//   Document
//   ├── envelope context (type, sender, receiver, control number, date)
//   ├── Header     *Map   single-occurrence fields, parties, references
//   ├── LineItems  List   one map per repeated detail occurrence
//   ├── Summary    *Map   trailer totals and counts
//   └── Segments          the raw ST..SE segments it was built from
//
// Header, LineItems and Summary are never nil.
//
// =============================================================================

package document

import (
	"github.com/ginjaninja78/edi-document-renderer/internal/x12"
)

// Document is a decoded transaction set.
type Document struct {
	TransactionType string
	TransactionName string

	SenderID      string
	ReceiverID    string
	ControlNumber string
	Date          string

	Header    *Map
	LineItems List
	Summary   *Map

	// Segments is the raw segment sequence the document was built from.
	Segments []x12.Segment

	// Warnings records structural problems found while splitting, such as
	// a transaction set without an SE trailer.
	Warnings []string
}

// New creates an empty document that inherits the envelope context.
func New(code, name string, env x12.Envelope) *Document {
	return &Document{
		TransactionType: code,
		TransactionName: name,
		SenderID:        env.SenderID,
		ReceiverID:      env.ReceiverID,
		ControlNumber:   env.ControlNumber,
		Date:            env.Date,
		Header:          NewMap(),
		LineItems:       List{},
		Summary:         NewMap(),
	}
}

// Attribute returns a top-level attribute of the document by name. It is
// how layout tables find their row source before falling back to the
// header map.
func (d *Document) Attribute(name string) (Value, bool) {
	switch name {
	case "line_items":
		return d.LineItems, true
	case "header":
		return d.Header, true
	case "summary":
		return d.Summary, true
	case "transaction_type":
		return Text(d.TransactionType), true
	case "transaction_name":
		return Text(d.TransactionName), true
	case "sender_id":
		return Text(d.SenderID), true
	case "receiver_id":
		return Text(d.ReceiverID), true
	case "control_number":
		return Text(d.ControlNumber), true
	case "date":
		return DateOf(d.Date), true
	}
	return nil, false
}
