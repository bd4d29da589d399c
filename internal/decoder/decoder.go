// =============================================================================
// EDI Document Renderer - Transaction Decoders
// =============================================================================
//
// One decoder per supported transaction type. Each is a pure function of
// (transaction set, envelope) to a *document.Document and never fails:
// missing segments leave fields absent and values that cannot be coerced
// keep their raw text.
//
// DISPATCH:
//   The set of decoders is closed. registry maps the ST01 code to a Type
//   carrying the display name and the decoder. Asking for any other code
//   is the single error at this layer (ErrUnsupportedType).
//
// =============================================================================

package decoder

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/ginjaninja78/edi-document-renderer/internal/document"
	"github.com/ginjaninja78/edi-document-renderer/internal/x12"
)

var (
	// ErrUnsupportedType is matched by *UnsupportedTypeError.
	ErrUnsupportedType = errors.New("unsupported transaction type")

	// ErrNoTransactionSets is returned when the input holds no ST/SE
	// transaction set.
	ErrNoTransactionSets = errors.New("no transaction sets found: input has no ST/SE segments")
)

// UnsupportedTypeError names the transaction type code that has no decoder.
type UnsupportedTypeError struct {
	Code string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported transaction type: %s", e.Code)
}

// Is reports whether target is ErrUnsupportedType.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// Decoder turns one transaction set into a normalized document.
type Decoder interface {
	Decode(set x12.TransactionSet, env x12.Envelope) *document.Document
}

// Func adapts a function to the Decoder interface.
type Func func(set x12.TransactionSet, env x12.Envelope) *document.Document

// Decode calls f(set, env).
func (f Func) Decode(set x12.TransactionSet, env x12.Envelope) *document.Document {
	return f(set, env)
}

// Type is a supported transaction type.
type Type struct {
	Code    string
	Name    string
	Decoder Decoder
}

// fillFunc populates an already initialized document from the body
// segments of its transaction set (ST and SE excluded).
type fillFunc func(doc *document.Document, body []x12.Segment)

var registry = map[string]Type{
	"810": newType("810", "Invoice", decodeInvoice),
	"812": newType("812", "Credit/Debit Adjustment", decodeAdjustment),
	"816": newType("816", "Organizational Relationships", decodeOrganization),
	"820": newType("820", "Payment Order/Remittance Advice", decodeRemittance),
	"830": newType("830", "Planning Schedule with Release Capability", decodePlanningSchedule),
	"846": newType("846", "Inventory Inquiry/Advice", decodeInventory),
	"850": newType("850", "Purchase Order", decodePurchaseOrder),
	"855": newType("855", "Purchase Order Acknowledgment", decodePOAcknowledgment),
	"856": newType("856", "Ship Notice/Manifest", decodeShipNotice),
	"860": newType("860", "Purchase Order Change Request - Buyer Initiated", decodePOChange),
	"861": newType("861", "Receiving Advice/Acceptance Certificate", decodeReceivingAdvice),
	"862": newType("862", "Shipping Schedule", decodeShippingSchedule),
	"864": newType("864", "Text Message", decodeTextMessage),
	"870": newType("870", "Order Status Report", decodeOrderStatus),
	"875": newType("875", "Grocery Products Purchase Order", decodeGroceryOrder),
	"880": newType("880", "Grocery Products Invoice", decodeGroceryInvoice),
	"997": newType("997", "Functional Acknowledgment", decodeFunctionalAck),
}

func newType(code, name string, fill fillFunc) Type {
	return Type{
		Code: code,
		Name: name,
		Decoder: Func(func(set x12.TransactionSet, env x12.Envelope) *document.Document {
			doc := document.New(code, name, env)
			doc.Segments = append([]x12.Segment(nil), set.Segments...)
			if w := set.Warning(); w != "" {
				doc.Warnings = append(doc.Warnings, w)
			}

			fill(doc, set.Body())

			if !doc.Summary.Has("line_count") {
				doc.Summary.Set("line_count", document.NumberOf(strconv.Itoa(len(doc.LineItems))))
			}
			return doc
		}),
	}
}

// Lookup returns the decoder registered for code.
func Lookup(code string) (Type, error) {
	t, ok := registry[code]
	if !ok {
		return Type{}, &UnsupportedTypeError{Code: code}
	}
	return t, nil
}

// Name returns the display name of code, or "" when unsupported.
func Name(code string) string {
	return registry[code].Name
}

// Supported returns all supported types ordered by code.
func Supported() []Type {
	out := make([]Type, 0, len(registry))
	for _, t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Decode decodes a single transaction set.
func Decode(set x12.TransactionSet, env x12.Envelope) (*document.Document, error) {
	t, err := Lookup(set.Code)
	if err != nil {
		return nil, err
	}
	return t.Decoder.Decode(set, env), nil
}

// DecodeAll decodes every transaction set of the interchange in order.
// Every document inherits the interchange envelope.
func DecodeAll(ic *x12.Interchange) ([]*document.Document, error) {
	sets := ic.TransactionSets()
	if len(sets) == 0 {
		return nil, ErrNoTransactionSets
	}

	docs := make([]*document.Document, 0, len(sets))
	for i, set := range sets {
		doc, err := Decode(set, ic.Envelope)
		if err != nil {
			return nil, fmt.Errorf("transaction set %d (control %s): %w", i+1, set.ControlNumber, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
