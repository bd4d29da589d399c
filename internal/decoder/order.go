package decoder

import (
	"github.com/ginjaninja78/edi-document-renderer/internal/document"
	"github.com/ginjaninja78/edi-document-renderer/internal/x12"
)

// decodePurchaseOrder handles 850 Purchase Order.
//
// BEG header, CUR/REF/PER/ITD/DTM/TD5, N1 loops, PO1 item loops (PO1,
// PID, PO4, DTM, AMT) and a CTT/AMT summary. AMT is legal inside the item
// loop, so only CTT ends the detail area.
func decodePurchaseOrder(doc *document.Document, body []x12.Segment) {
	header := before(body, "PO1")
	detail := between(body, "PO1", "CTT")
	summary := from(body, "CTT")

	if beg, ok := first(header, "BEG"); ok {
		setCode(doc.Header, "purpose", purposeCodes, beg.Element(1))
		setCode(doc.Header, "po_type", poTypes, beg.Element(2))
		doc.Header.SetText("po_number", beg.Element(3))
		doc.Header.SetText("release_number", beg.Element(4))
		doc.Header.SetDate("po_date", beg.Element(5))
	}
	readOrderHeader(doc, header)

	for _, l := range splitLoops(detail, "PO1") {
		doc.LineItems = append(doc.LineItems, readPO1(l))
	}

	setLineCount(doc, summary)
	if amt, ok := first(summary, "AMT"); ok {
		doc.Summary.SetNumber("total_amount", amt.Element(2))
	} else {
		setSum(doc.Summary, "total_amount", doc.LineItems, "line_total", 2)
	}
	setSum(doc.Summary, "total_quantity", doc.LineItems, "quantity", 0)
}

// readOrderHeader reads the header segments shared by the order family.
func readOrderHeader(doc *document.Document, header []x12.Segment) {
	setCurrency(doc.Header, header)
	setReferences(doc.Header, header)
	readContact(doc.Header, before(header, "N1"))
	setTerms(doc.Header, header)
	setDates(doc.Header, before(header, "N1"))
	setCarrier(doc.Header, header)
	setParties(doc, header)
}

// readPO1 reads one PO1 loop into a line item.
func readPO1(l loop) *document.Map {
	po1 := l.head()
	item := document.NewMap()
	item.SetText("line_number", po1.Element(1))
	item.SetNumber("quantity", po1.Element(2))
	setCode(item, "unit", units, po1.Element(3))
	item.SetNumber("unit_price", po1.Element(4))
	item.SetText("price_basis", po1.Element(5))
	setProductIDs(item, po1, 6)
	setDescription(item, l.members())

	if po4, ok := l.first("PO4"); ok {
		item.SetNumber("pack", po4.Element(1))
		item.SetNumber("pack_size", po4.Element(2))
		setCode(item, "pack_unit", units, po4.Element(3))
	}
	if amt, ok := l.first("AMT"); ok {
		item.SetNumber("amount", amt.Element(2))
	}
	setDates(item, l.members())
	lineTotal(item)
	return item
}

// decodePOAcknowledgment handles 855 Purchase Order Acknowledgment.
//
// Same shape as 850 with a BAK header and ACK line status segments in each
// PO1 loop.
func decodePOAcknowledgment(doc *document.Document, body []x12.Segment) {
	header := before(body, "PO1")
	detail := between(body, "PO1", "CTT")
	summary := from(body, "CTT")

	if bak, ok := first(header, "BAK"); ok {
		setCode(doc.Header, "purpose", purposeCodes, bak.Element(1))
		setCode(doc.Header, "ack_type", ackTypes, bak.Element(2))
		doc.Header.SetText("po_number", bak.Element(3))
		doc.Header.SetDate("po_date", bak.Element(4))
		doc.Header.SetText("release_number", bak.Element(5))
		doc.Header.SetText("seller_order_number", bak.Element(8))
		doc.Header.SetDate("ack_date", bak.Element(9))
	}
	readOrderHeader(doc, header)

	for _, l := range splitLoops(detail, "PO1") {
		item := readPO1(l)
		var acks document.List
		for _, ack := range l.all("ACK") {
			a := document.NewMap()
			setCode(a, "status", lineAckStatuses, ack.Element(1))
			a.SetNumber("quantity", ack.Element(2))
			setCode(a, "unit", units, ack.Element(3))
			a.SetDate("date", ack.Element(5))
			acks = append(acks, a)
		}
		if len(acks) > 0 {
			item.Set("status", document.Text(acks[0].GetString("status")))
			item.Set("status_code", document.Text(acks[0].GetString("status_code")))
			if v, ok := acks[0].Get("quantity"); ok {
				item.Set("ack_quantity", v)
			}
			if v, ok := acks[0].Get("date"); ok {
				item.Set("scheduled_date", v)
			}
		}
		item.SetList("acknowledgments", acks)
		doc.LineItems = append(doc.LineItems, item)
	}

	setLineCount(doc, summary)
	setSum(doc.Summary, "total_quantity", doc.LineItems, "quantity", 0)
	setSum(doc.Summary, "total_amount", doc.LineItems, "line_total", 2)
}

// decodePOChange handles 860 Purchase Order Change Request - Buyer
// Initiated. POC loops carry the change type and revised values.
func decodePOChange(doc *document.Document, body []x12.Segment) {
	header := before(body, "POC")
	detail := between(body, "POC", "CTT")
	summary := from(body, "CTT")

	if bch, ok := first(header, "BCH"); ok {
		setCode(doc.Header, "purpose", purposeCodes, bch.Element(1))
		setCode(doc.Header, "po_type", poTypes, bch.Element(2))
		doc.Header.SetText("po_number", bch.Element(3))
		doc.Header.SetText("release_number", bch.Element(4))
		doc.Header.SetText("change_sequence", bch.Element(5))
		doc.Header.SetDate("po_date", bch.Element(6))
		doc.Header.SetDate("change_date", bch.Element(11))
	}
	readOrderHeader(doc, header)

	for _, l := range splitLoops(detail, "POC") {
		poc := l.head()
		item := document.NewMap()
		item.SetText("line_number", poc.Element(1))
		setCode(item, "change_type", changeTypes, poc.Element(2))
		item.SetNumber("quantity", poc.Element(3))
		item.SetNumber("quantity_change", poc.Element(4))
		setCode(item, "unit", units, poc.Element(5))
		item.SetNumber("unit_price", poc.Element(6))
		item.SetText("price_basis", poc.Element(7))
		setProductIDs(item, poc, 8)
		setDescription(item, l.members())
		setDates(item, l.members())
		lineTotal(item)
		doc.LineItems = append(doc.LineItems, item)
	}

	setLineCount(doc, summary)
}

// decodeGroceryOrder handles 875 Grocery Products Purchase Order.
//
// G50 header, N1 loops, G68 item loops with G69 descriptions and an
// optional G76 total.
func decodeGroceryOrder(doc *document.Document, body []x12.Segment) {
	header := before(body, "G68")
	detail := between(body, "G68", "G76")
	summary := from(body, "G76")

	if g50, ok := first(header, "G50"); ok {
		setCode(doc.Header, "order_status", groceryOrderStatus, g50.Element(1))
		doc.Header.SetDate("po_date", g50.Element(2))
		doc.Header.SetText("po_number", g50.Element(3))
		doc.Header.SetDate("delivery_requested_date", g50.Element(4))
	}
	setReferences(doc.Header, header)
	setParties(doc, header)
	setDates(doc.Header, header)

	for i, l := range splitLoops(detail, "G68") {
		g68 := l.head()
		item := document.NewMap()
		item.SetText("line_number", itoa(i+1))
		item.SetNumber("quantity", g68.Element(1))
		setCode(item, "unit", units, g68.Element(2))
		item.SetNumber("unit_price", g68.Element(3))
		item.SetText("upc_case_code", g68.Element(4))
		setProductIDs(item, g68, 5)
		if !item.Has("product_id") {
			item.SetText("product_id", g68.Element(4))
		}
		if g69, ok := l.first("G69"); ok {
			item.SetText("description", g69.Element(1))
		}
		lineTotal(item)
		doc.LineItems = append(doc.LineItems, item)
	}

	if g76, ok := first(summary, "G76"); ok {
		doc.Summary.SetNumber("total_quantity", g76.Element(1))
		setCode(doc.Summary, "total_quantity_unit", units, g76.Element(2))
	} else {
		setSum(doc.Summary, "total_quantity", doc.LineItems, "quantity", 0)
	}
	setSum(doc.Summary, "total_amount", doc.LineItems, "line_total", 2)
}
