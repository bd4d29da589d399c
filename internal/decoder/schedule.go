package decoder

import (
	"github.com/ginjaninja78/edi-document-renderer/internal/document"
	"github.com/ginjaninja78/edi-document-renderer/internal/x12"
)

// readForecasts reads FST forecast segments of one LIN loop.
func readForecasts(segs []x12.Segment) document.List {
	var list document.List
	for _, fst := range segs {
		f := document.NewMap()
		f.SetNumber("quantity", fst.Element(1))
		setCode(f, "forecast", forecastQualifiers, fst.Element(2))
		setCode(f, "timing", forecastTimings, fst.Element(3))
		f.SetDate("date", fst.Element(4))
		f.SetDate("end_date", fst.Element(5))
		list = append(list, f)
	}
	return list
}

// readScheduleItem reads the parts common to 830 and 862 LIN loops.
func readScheduleItem(l loop) *document.Map {
	lin := l.head()
	item := document.NewMap()
	item.SetText("line_number", lin.Element(1))
	setProductIDs(item, lin, 2)
	if uit, ok := l.first("UIT"); ok {
		setCode(item, "unit", units, uit.Component(1, 1))
		item.SetNumber("unit_price", uit.Element(2))
	}
	setDescription(item, l.members())
	setReferences(item, l.members())

	schedules := readForecasts(l.all("FST"))
	item.SetList("schedules", schedules)
	setSum(item, "total_quantity", schedules, "quantity", 0)
	if len(schedules) > 0 {
		if v, ok := schedules[0].Get("date"); ok {
			item.Set("next_date", v)
		}
		if v, ok := schedules[0].Get("quantity"); ok {
			item.Set("next_quantity", v)
		}
	}
	return item
}

// decodePlanningSchedule handles 830 Planning Schedule with Release
// Capability.
//
// BFR header, N1 loops, LIN loops. Each LIN loop owns the UIT, ATH and FST
// segments up to the next LIN; the FST forecasts become its schedules.
func decodePlanningSchedule(doc *document.Document, body []x12.Segment) {
	header := before(body, "LIN")
	detail := between(body, "LIN", "CTT")
	summary := from(body, "CTT")

	if bfr, ok := first(header, "BFR"); ok {
		setCode(doc.Header, "purpose", purposeCodes, bfr.Element(1))
		doc.Header.SetText("reference_number", bfr.Element(2))
		doc.Header.SetText("release_number", bfr.Element(3))
		setCode(doc.Header, "schedule_type", scheduleTypes, bfr.Element(4))
		doc.Header.SetText("schedule_quantity_qualifier", bfr.Element(5))
		doc.Header.SetDate("horizon_start", bfr.Element(6))
		doc.Header.SetDate("horizon_end", bfr.Element(7))
		doc.Header.SetDate("issue_date", bfr.Element(8))
		doc.Header.SetText("contract_number", bfr.Element(10))
		doc.Header.SetText("po_number", bfr.Element(11))
	}
	setReferences(doc.Header, header)
	setDates(doc.Header, before(header, "N1"))
	setParties(doc, header)

	for _, l := range splitLoops(detail, "LIN") {
		item := readScheduleItem(l)
		var auths document.List
		for _, ath := range l.all("ATH") {
			a := document.NewMap()
			setCode(a, "resource", resourceAuthorizations, ath.Element(1))
			a.SetDate("end_date", ath.Element(2))
			a.SetNumber("quantity", ath.Element(3))
			a.SetNumber("cumulative_quantity", ath.Element(4))
			a.SetDate("start_date", ath.Element(5))
			auths = append(auths, a)
		}
		item.SetList("authorizations", auths)
		doc.LineItems = append(doc.LineItems, item)
	}

	setLineCount(doc, summary)
	setSum(doc.Summary, "total_quantity", doc.LineItems, "total_quantity", 0)
}

// decodeShippingSchedule handles 862 Shipping Schedule.
//
// BSS header, N1 loops, LIN loops with FST firm schedules and SHP
// shipped/received history.
func decodeShippingSchedule(doc *document.Document, body []x12.Segment) {
	header := before(body, "LIN")
	detail := between(body, "LIN", "CTT")
	summary := from(body, "CTT")

	if bss, ok := first(header, "BSS"); ok {
		setCode(doc.Header, "purpose", purposeCodes, bss.Element(1))
		doc.Header.SetText("reference_number", bss.Element(2))
		doc.Header.SetDate("issue_date", bss.Element(3))
		setCode(doc.Header, "schedule_type", scheduleTypes, bss.Element(4))
		doc.Header.SetDate("horizon_start", bss.Element(5))
		doc.Header.SetDate("horizon_end", bss.Element(6))
		doc.Header.SetText("release_number", bss.Element(7))
		doc.Header.SetText("contract_number", bss.Element(9))
		doc.Header.SetText("po_number", bss.Element(10))
	}
	setReferences(doc.Header, header)
	setDates(doc.Header, before(header, "N1"))
	setParties(doc, header)

	for _, l := range splitLoops(detail, "LIN") {
		item := readScheduleItem(l)
		var shipped document.List
		for _, shp := range l.all("SHP") {
			s := document.NewMap()
			setCode(s, "quantity_type", shippedQuantityQualifiers, shp.Element(1))
			s.SetNumber("quantity", shp.Element(2))
			setCode(s, "date_qualifier", dateQualifiers, shp.Element(3))
			s.SetDate("date", shp.Element(4))
			s.SetDate("end_date", shp.Element(6))
			shipped = append(shipped, s)
		}
		item.SetList("shipped", shipped)
		doc.LineItems = append(doc.LineItems, item)
	}

	setLineCount(doc, summary)
	setSum(doc.Summary, "total_quantity", doc.LineItems, "total_quantity", 0)
}

// decodeInventory handles 846 Inventory Inquiry/Advice.
//
// BIA header, N1 loops, LIN loops with PID descriptions and QTY
// quantities. Each QTY is kept in the item's quantities list; the first
// one is also flattened to quantity.
func decodeInventory(doc *document.Document, body []x12.Segment) {
	header := before(body, "LIN")
	detail := between(body, "LIN", "CTT")
	summary := from(body, "CTT")

	if bia, ok := first(header, "BIA"); ok {
		setCode(doc.Header, "purpose", purposeCodes, bia.Element(1))
		setCode(doc.Header, "report_type", inventoryReportTypes, bia.Element(2))
		doc.Header.SetText("reference_number", bia.Element(3))
		doc.Header.SetDate("report_date", bia.Element(4))
	}
	setCurrency(doc.Header, header)
	setReferences(doc.Header, header)
	setDates(doc.Header, before(header, "N1"))
	setParties(doc, header)

	for _, l := range splitLoops(detail, "LIN") {
		lin := l.head()
		item := document.NewMap()
		item.SetText("line_number", lin.Element(1))
		setProductIDs(item, lin, 2)
		setDescription(item, l.members())
		if ctp, ok := l.first("CTP"); ok {
			item.SetNumber("unit_price", ctp.Element(3))
		}

		var quantities document.List
		for _, qty := range l.all("QTY") {
			q := document.NewMap()
			setCode(q, "qualifier", inventoryQuantities, qty.Element(1))
			q.SetNumber("quantity", qty.Element(2))
			setCode(q, "unit", units, qty.Component(3, 1))
			quantities = append(quantities, q)

			key := "quantity_" + slug(qty.Element(1))
			item.SetNumber(key, qty.Element(2))
		}
		if len(quantities) > 0 {
			q := quantities[0]
			if v, ok := q.Get("quantity"); ok {
				item.Set("quantity", v)
			}
			item.SetText("quantity_type", q.GetString("qualifier"))
			item.SetText("unit", q.GetString("unit"))
		}
		item.SetList("quantities", quantities)
		doc.LineItems = append(doc.LineItems, item)
	}

	setLineCount(doc, summary)
	setSum(doc.Summary, "total_quantity", doc.LineItems, "quantity", 0)
}
