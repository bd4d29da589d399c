package decoder

import (
	"github.com/ginjaninja78/edi-document-renderer/internal/document"
	"github.com/ginjaninja78/edi-document-renderer/internal/x12"
)

// hierarchy walks HL loops in document order. Each HL loop is bounded by
// the next HL, so the segments owned by a level are exactly those between
// its HL and the following one.
type hierarchy struct {
	loops []loop
}

func newHierarchy(window []x12.Segment) hierarchy {
	return hierarchy{loops: splitLoops(window, "HL")}
}

// level returns the HL03 level code of l.
func level(l loop) string { return l.head().Element(3) }

// setLevel stores the HL identification of l on m.
func setLevel(m *document.Map, l loop) {
	hl := l.head()
	m.SetText("hl_id", hl.Element(1))
	m.SetText("parent_id", hl.Element(2))
	setCode(m, "level", hlLevels, hl.Element(3))
}

// count returns the number of loops at the given level.
func (h hierarchy) count(code string) int {
	n := 0
	for _, l := range h.loops {
		if level(l) == code {
			n++
		}
	}
	return n
}

// decodeShipNotice handles 856 Ship Notice/Manifest.
//
// BSN header followed by HL loops: S (shipment) carries TD1, TD5, REF,
// DTM and N1 loops; O (order) carries PRF; P (pack) carries MAN; I (item)
// carries LIN, SN1 and PID. Each item becomes a line item tagged with the
// order and pack that precede it.
func decodeShipNotice(doc *document.Document, body []x12.Segment) {
	header := before(body, "HL")
	summary := from(body, "CTT")
	h := newHierarchy(before(from(body, "HL"), "CTT"))

	if bsn, ok := first(header, "BSN"); ok {
		setCode(doc.Header, "purpose", purposeCodes, bsn.Element(1))
		doc.Header.SetText("shipment_id", bsn.Element(2))
		doc.Header.SetDate("shipment_date", bsn.Element(3))
		doc.Header.SetText("shipment_time", bsn.Element(4))
		doc.Header.SetText("structure_code", bsn.Element(5))
	}
	setDates(doc.Header, header)

	var (
		orders   document.List
		poNumber string
		packID   string
	)
	for _, l := range h.loops {
		switch level(l) {
		case "S":
			readShipmentLevel(doc, l)
		case "O":
			order := document.NewMap()
			setLevel(order, l)
			poNumber = ""
			if prf, ok := l.first("PRF"); ok {
				poNumber = prf.Element(1)
				order.SetText("po_number", poNumber)
				order.SetDate("po_date", prf.Element(4))
				if !doc.Header.Has("po_number") {
					doc.Header.SetText("po_number", poNumber)
				}
			}
			setReferences(order, l.members())
			orders = append(orders, order)
		case "P", "T":
			packID = ""
			if man, ok := l.first("MAN"); ok {
				packID = man.Element(2)
			}
		case "I":
			item := document.NewMap()
			setLevel(item, l)
			if lin, ok := l.first("LIN"); ok {
				item.SetText("line_number", lin.Element(1))
				setProductIDs(item, lin, 2)
			}
			if sn1, ok := l.first("SN1"); ok {
				item.SetNumber("quantity", sn1.Element(2))
				setCode(item, "unit", units, sn1.Element(3))
				item.SetNumber("quantity_ordered", sn1.Element(5))
			}
			setDescription(item, l.members())
			item.SetText("po_number", poNumber)
			item.SetText("pack_id", packID)
			doc.LineItems = append(doc.LineItems, item)
		}
	}
	doc.Header.SetList("orders", orders)

	setLineCount(doc, summary)
	setSum(doc.Summary, "total_quantity", doc.LineItems, "quantity", 0)
	doc.Summary.SetNumber("order_count", itoa(h.count("O")))
	doc.Summary.SetNumber("package_count", itoa(h.count("P")+h.count("T")))
}

// readShipmentLevel reads the shipment level segments into the header.
func readShipmentLevel(doc *document.Document, l loop) {
	members := l.members()
	if td1, ok := first(members, "TD1"); ok {
		doc.Header.SetText("packaging_code", td1.Element(1))
		doc.Header.SetNumber("lading_quantity", td1.Element(2))
		doc.Header.SetNumber("gross_weight", td1.Element(7))
		setCode(doc.Header, "weight_unit", units, td1.Element(8))
	}
	setCarrier(doc.Header, members)
	setReferences(doc.Header, members)
	setDates(doc.Header, before(members, "N1"))
	if ref := doc.Header.GetString("ref_bm"); ref != "" {
		doc.Header.SetText("bill_of_lading", ref)
	}
	if ref := doc.Header.GetString("ref_cn"); ref != "" {
		doc.Header.SetText("tracking_number", ref)
	}
	setParties(doc, members)
}

// decodeReceivingAdvice handles 861 Receiving Advice/Acceptance
// Certificate. RCD loops carry received, questioned and returned
// quantities; LIN inside the loop identifies the product.
func decodeReceivingAdvice(doc *document.Document, body []x12.Segment) {
	header := before(body, "RCD")
	detail := between(body, "RCD", "CTT")
	summary := from(body, "CTT")

	if bra, ok := first(header, "BRA"); ok {
		doc.Header.SetText("reference_number", bra.Element(1))
		doc.Header.SetDate("received_date", bra.Element(2))
		setCode(doc.Header, "purpose", purposeCodes, bra.Element(3))
		setCode(doc.Header, "advice_type", receivingAdviceTypes, bra.Element(4))
		doc.Header.SetText("received_time", bra.Element(5))
	}
	if prf, ok := first(header, "PRF"); ok {
		doc.Header.SetText("po_number", prf.Element(1))
		doc.Header.SetDate("po_date", prf.Element(4))
	}
	setReferences(doc.Header, header)
	setDates(doc.Header, before(header, "N1"))
	setParties(doc, header)

	for _, l := range splitLoops(detail, "RCD") {
		rcd := l.head()
		item := document.NewMap()
		item.SetText("line_number", rcd.Element(1))
		item.SetNumber("quantity_received", rcd.Element(2))
		setCode(item, "unit", units, rcd.Element(3))
		item.SetNumber("quantity_in_question", rcd.Element(4))
		item.SetNumber("quantity_returned", rcd.Element(6))
		setCode(item, "condition", receivingConditions, rcd.Element(8))
		if lin, ok := l.first("LIN"); ok {
			setProductIDs(item, lin, 2)
		}
		if sn1, ok := l.first("SN1"); ok {
			item.SetNumber("quantity_shipped", sn1.Element(2))
		}
		setDescription(item, l.members())
		doc.LineItems = append(doc.LineItems, item)
	}

	setLineCount(doc, summary)
	setSum(doc.Summary, "total_received", doc.LineItems, "quantity_received", 0)
	setSum(doc.Summary, "total_returned", doc.LineItems, "quantity_returned", 0)
}

// decodeOrderStatus handles 870 Order Status Report.
//
// BSR header, then HL loops: O (order) with PRF, I (item) with PO1 and ISR
// status. Items inherit the PO number of the order above them.
func decodeOrderStatus(doc *document.Document, body []x12.Segment) {
	header := before(body, "HL")
	summary := from(body, "CTT")
	h := newHierarchy(before(from(body, "HL"), "CTT"))

	if bsr, ok := first(header, "BSR"); ok {
		setCode(doc.Header, "report_type", statusReportCodes, bsr.Element(1))
		setCode(doc.Header, "order_item", orderItemCodes, bsr.Element(2))
		doc.Header.SetText("reference_number", bsr.Element(3))
		doc.Header.SetDate("report_date", bsr.Element(4))
	}
	setReferences(doc.Header, header)
	setDates(doc.Header, before(header, "N1"))
	setParties(doc, header)

	var poNumber string
	for _, l := range h.loops {
		switch level(l) {
		case "O":
			poNumber = ""
			if prf, ok := l.first("PRF"); ok {
				poNumber = prf.Element(1)
				if !doc.Header.Has("po_number") {
					doc.Header.SetText("po_number", poNumber)
					doc.Header.SetDate("po_date", prf.Element(4))
				}
			}
		case "I":
			item := document.NewMap()
			setLevel(item, l)
			if po1, ok := l.first("PO1"); ok {
				item.SetText("line_number", po1.Element(1))
				item.SetNumber("quantity", po1.Element(2))
				setCode(item, "unit", units, po1.Element(3))
				item.SetNumber("unit_price", po1.Element(4))
				setProductIDs(item, po1, 6)
			}
			if isr, ok := l.first("ISR"); ok {
				setCode(item, "status", orderStatusCodes, isr.Element(1))
				item.SetDate("status_date", isr.Element(2))
			}
			setDescription(item, l.members())
			item.SetText("po_number", poNumber)
			lineTotal(item)
			doc.LineItems = append(doc.LineItems, item)
		}
	}

	setLineCount(doc, summary)
	doc.Summary.SetNumber("order_count", itoa(h.count("O")))
}

// decodeOrganization handles 816 Organizational Relationships. Every HL
// level becomes a line item with the party details found inside it.
func decodeOrganization(doc *document.Document, body []x12.Segment) {
	header := before(body, "HL")
	h := newHierarchy(from(body, "HL"))

	if bht, ok := first(header, "BHT"); ok {
		doc.Header.SetText("structure_code", bht.Element(1))
		setCode(doc.Header, "purpose", purposeCodes, bht.Element(2))
		doc.Header.SetText("reference_number", bht.Element(3))
		doc.Header.SetDate("report_date", bht.Element(4))
		doc.Header.SetText("report_time", bht.Element(5))
	}
	setReferences(doc.Header, header)
	setDates(doc.Header, header)

	for _, l := range h.loops {
		item := document.NewMap()
		setLevel(item, l)
		if n1, ok := l.first("N1"); ok {
			setCode(item, "entity", entityRoles, n1.Element(1))
			item.SetText("name", n1.Element(2))
			setCode(item, "id_qualifier", idQualifiers, n1.Element(3))
			item.SetText("id", n1.Element(4))
		}
		readAddress(item, l.members())
		readContact(item, l.members())
		setReferences(item, l.members())
		doc.LineItems = append(doc.LineItems, item)
	}

	for _, code := range []string{"1", "2", "3", "4", "5"} {
		if n := h.count(code); n > 0 {
			doc.Summary.SetNumber(slug(lookup(hlLevels, code))+"_count", itoa(n))
		}
	}
}
