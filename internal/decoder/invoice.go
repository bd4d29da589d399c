package decoder

import (
	"github.com/ginjaninja78/edi-document-renderer/internal/document"
	"github.com/ginjaninja78/edi-document-renderer/internal/x12"
)

// decodeInvoice handles 810 Invoice.
//
// Layout: BIG, header segments (CUR, REF, N1 loop, ITD, DTM), IT1 loop
// (IT1, PID, SAC, ...), summary from TDS onward (TDS, TXI, SAC, CTT).
func decodeInvoice(doc *document.Document, body []x12.Segment) {
	header := before(body, "IT1", "TDS", "CTT")
	detail := between(body, "IT1", "TDS", "CTT")
	summary := from(body, "TDS", "CTT")

	if big, ok := first(header, "BIG"); ok {
		doc.Header.SetDate("invoice_date", big.Element(1))
		doc.Header.SetText("invoice_number", big.Element(2))
		doc.Header.SetDate("po_date", big.Element(3))
		doc.Header.SetText("po_number", big.Element(4))
		setCode(doc.Header, "invoice_type", invoiceTypes, big.Element(7))
	}
	setCurrency(doc.Header, header)
	setReferences(doc.Header, header)
	setParties(doc, header)
	setTerms(doc.Header, header)
	setDates(doc.Header, header)

	for _, l := range splitLoops(detail, "IT1") {
		it1 := l.head()
		item := document.NewMap()
		item.SetText("line_number", it1.Element(1))
		item.SetNumber("quantity", it1.Element(2))
		setCode(item, "unit", units, it1.Element(3))
		item.SetNumber("unit_price", it1.Element(4))
		setProductIDs(item, it1, 6)
		setDescription(item, l.members())
		lineTotal(item)
		item.SetList("allowances_charges", readCharges(l.all("SAC")))
		doc.LineItems = append(doc.LineItems, item)
	}

	if tds, ok := first(summary, "TDS"); ok {
		doc.Summary.Set("total_amount", impliedAmount(tds.Element(1)))
		doc.Summary.Set("amount_subject_to_discount", impliedAmount(tds.Element(2)))
	}
	if txi, ok := first(summary, "TXI"); ok {
		doc.Summary.SetText("tax_type", txi.Element(1))
		doc.Summary.SetNumber("tax_amount", txi.Element(2))
	}
	doc.Summary.SetList("allowances_charges", readCharges(all(summary, "SAC")))
	setSum(doc.Summary, "total_quantity", doc.LineItems, "quantity", 0)
	setSum(doc.Summary, "line_items_total", doc.LineItems, "line_total", 2)
	setLineCount(doc, summary)
}

// readCharges reads SAC service/allowance/charge segments.
func readCharges(segs []x12.Segment) document.List {
	var list document.List
	for _, sac := range segs {
		c := document.NewMap()
		setCode(c, "indicator", allowanceIndicators, sac.Element(1))
		setCode(c, "charge", allowanceCharges, sac.Element(2))
		c.Set("amount", impliedAmount(sac.Element(5)))
		c.SetNumber("percent", sac.Element(7))
		c.SetText("description", sac.Element(15))
		list = append(list, c)
	}
	return list
}

// decodeGroceryInvoice handles 880 Grocery Products Invoice.
//
// G01 header, N1 loops, G17 item loops (G17, G69 description, G72
// allowances), G31 quantity totals and G33 dollar totals. G72 and G33
// amounts carry two implied decimals.
func decodeGroceryInvoice(doc *document.Document, body []x12.Segment) {
	header := before(body, "G17")
	detail := between(body, "G17", "G31", "G33")
	summary := from(body, "G31", "G33")

	if g01, ok := first(header, "G01"); ok {
		doc.Header.SetDate("invoice_date", g01.Element(1))
		doc.Header.SetText("invoice_number", g01.Element(2))
		doc.Header.SetDate("po_date", g01.Element(3))
		doc.Header.SetText("po_number", g01.Element(4))
	}
	setReferences(doc.Header, header)
	setParties(doc, header)
	setDates(doc.Header, header)

	for i, l := range splitLoops(detail, "G17") {
		g17 := l.head()
		item := document.NewMap()
		item.SetText("line_number", itoa(i+1))
		item.SetNumber("quantity", g17.Element(1))
		setCode(item, "unit", units, g17.Element(2))
		item.SetNumber("unit_price", g17.Element(3))
		item.SetText("upc_case_code", g17.Element(4))
		setProductIDs(item, g17, 5)
		if !item.Has("product_id") {
			item.SetText("product_id", g17.Element(4))
		}
		if g69, ok := l.first("G69"); ok {
			item.SetText("description", g69.Element(1))
		}
		lineTotal(item)
		item.SetList("allowances_charges", readGroceryCharges(l.all("G72")))
		doc.LineItems = append(doc.LineItems, item)
	}

	if g31, ok := first(summary, "G31"); ok {
		doc.Summary.SetNumber("total_quantity", g31.Element(1))
		setCode(doc.Summary, "total_quantity_unit", units, g31.Element(2))
	} else {
		setSum(doc.Summary, "total_quantity", doc.LineItems, "quantity", 0)
	}
	if g33, ok := first(summary, "G33"); ok {
		doc.Summary.Set("total_amount", impliedAmount(g33.Element(1)))
	} else {
		setSum(doc.Summary, "total_amount", doc.LineItems, "line_total", 2)
	}
	doc.Summary.SetList("allowances_charges", readGroceryCharges(all(summary, "G72")))
}

// readGroceryCharges reads G72 allowance/charge segments.
func readGroceryCharges(segs []x12.Segment) document.List {
	var list document.List
	for _, g72 := range segs {
		c := document.NewMap()
		setCode(c, "charge", allowanceCharges, g72.Element(1))
		c.SetText("handling_code", g72.Element(2))
		c.SetText("charge_number", g72.Element(3))
		c.SetNumber("rate", g72.Element(5))
		c.Set("amount", impliedAmount(g72.Element(8)))
		list = append(list, c)
	}
	return list
}

// decodeAdjustment handles 812 Credit/Debit Adjustment.
//
// BCD header, N1 loops, CDD adjustment loops each optionally followed by
// LIN product identification.
func decodeAdjustment(doc *document.Document, body []x12.Segment) {
	header := before(body, "CDD")
	detail := from(body, "CDD")

	if bcd, ok := first(header, "BCD"); ok {
		doc.Header.SetDate("adjustment_date", bcd.Element(1))
		doc.Header.SetText("adjustment_number", bcd.Element(2))
		setCode(doc.Header, "handling", handlingCodes, bcd.Element(3))
		doc.Header.SetNumber("total_amount", bcd.Element(4))
		setCode(doc.Header, "credit_debit", creditDebitFlags, bcd.Element(5))
		doc.Header.SetDate("invoice_date", bcd.Element(6))
		doc.Header.SetText("invoice_number", bcd.Element(7))
		doc.Header.SetText("vendor_order_number", bcd.Element(8))
		doc.Header.SetDate("po_date", bcd.Element(9))
		doc.Header.SetText("po_number", bcd.Element(10))
		setCode(doc.Header, "purpose", purposeCodes, bcd.Element(11))
	}
	setCurrency(doc.Header, header)
	setReferences(doc.Header, header)
	setParties(doc, header)
	setDates(doc.Header, header)

	for _, l := range splitLoops(detail, "CDD") {
		cdd := l.head()
		item := document.NewMap()
		setCode(item, "reason", adjustmentReasons, cdd.Element(1))
		setCode(item, "credit_debit", creditDebitFlags, cdd.Element(2))
		item.SetText("line_number", cdd.Element(3))
		item.SetNumber("amount", cdd.Element(4))
		item.SetNumber("quantity", cdd.Element(7))
		setCode(item, "unit", units, cdd.Element(8))
		if lin, ok := l.first("LIN"); ok {
			setProductIDs(item, lin, 2)
		}
		setDescription(item, l.members())
		doc.LineItems = append(doc.LineItems, item)
	}

	if v, ok := doc.Header.Get("total_amount"); ok {
		doc.Summary.Set("total_amount", v)
	}
	setSum(doc.Summary, "items_total", doc.LineItems, "amount", 2)
}
