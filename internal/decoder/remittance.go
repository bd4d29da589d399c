package decoder

import (
	"github.com/ginjaninja78/edi-document-renderer/internal/document"
	"github.com/ginjaninja78/edi-document-renderer/internal/x12"
)

// decodeRemittance handles 820 Payment Order/Remittance Advice.
//
// BPR payment instruction and TRN trace number form the header together
// with CUR, REF, DTM and the N1 loops. Each RMR remittance detail starts a
// loop owning the REF, DTM and ADX segments up to the next RMR.
func decodeRemittance(doc *document.Document, body []x12.Segment) {
	header := before(body, "ENT", "RMR")
	detail := from(body, "RMR")

	if bpr, ok := first(header, "BPR"); ok {
		setCode(doc.Header, "handling", handlingCodes, bpr.Element(1))
		doc.Header.SetNumber("payment_amount", bpr.Element(2))
		setCode(doc.Header, "credit_debit", creditDebitFlags, bpr.Element(3))
		setCode(doc.Header, "payment_method", paymentMethods, bpr.Element(4))
		setCode(doc.Header, "payment_format", paymentFormats, bpr.Element(5))
		doc.Header.SetText("originating_bank_id", bpr.Element(7))
		doc.Header.SetText("originating_account", bpr.Element(9))
		doc.Header.SetText("receiving_bank_id", bpr.Element(13))
		doc.Header.SetText("receiving_account", bpr.Element(15))
		doc.Header.SetDate("payment_date", bpr.Element(16))
	}
	if trn, ok := first(header, "TRN"); ok {
		doc.Header.SetText("trace_type", trn.Element(1))
		doc.Header.SetText("trace_number", trn.Element(2))
		doc.Header.SetText("originator_id", trn.Element(3))
	}
	setCurrency(doc.Header, header)
	setReferences(doc.Header, before(header, "N1"))
	setDates(doc.Header, before(header, "N1"))
	setParties(doc, header)

	for _, l := range splitLoops(detail, "RMR") {
		rmr := l.head()
		item := document.NewMap()
		setCode(item, "reference_type", referenceQualifiers, rmr.Element(1))
		item.SetText("reference_number", rmr.Element(2))
		item.SetText("payment_action", rmr.Element(3))
		item.SetNumber("amount_paid", rmr.Element(4))
		item.SetNumber("invoice_amount", rmr.Element(5))
		item.SetNumber("discount_amount", rmr.Element(6))
		setReferences(item, l.members())
		setDates(item, l.members())

		var adjustments document.List
		for _, adx := range l.all("ADX") {
			a := document.NewMap()
			a.SetNumber("amount", adx.Element(1))
			setCode(a, "reason", adjustmentReasons, adx.Element(2))
			a.SetText("reference", adx.Element(4))
			adjustments = append(adjustments, a)
		}
		item.SetList("adjustments", adjustments)
		setSum(item, "adjustment_amount", adjustments, "amount", 2)
		doc.LineItems = append(doc.LineItems, item)
	}

	if v, ok := doc.Header.Get("payment_amount"); ok {
		doc.Summary.Set("payment_amount", v)
	}
	setSum(doc.Summary, "total_paid", doc.LineItems, "amount_paid", 2)
	setSum(doc.Summary, "total_invoiced", doc.LineItems, "invoice_amount", 2)
	setSum(doc.Summary, "total_adjustments", doc.LineItems, "adjustment_amount", 2)
}
