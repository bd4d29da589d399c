package decoder

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/edi-document-renderer/internal/document"
	"github.com/ginjaninja78/edi-document-renderer/internal/x12"
)

// =============================================================================
// SEGMENT LOOKUP
// =============================================================================

// first returns the first segment with the given id.
func first(segs []x12.Segment, id string) (x12.Segment, bool) {
	for _, s := range segs {
		if s.ID == id {
			return s, true
		}
	}
	return x12.Segment{}, false
}

// all returns every segment with the given id, in order.
func all(segs []x12.Segment, id string) []x12.Segment {
	var out []x12.Segment
	for _, s := range segs {
		if s.ID == id {
			out = append(out, s)
		}
	}
	return out
}

func indexOf(segs []x12.Segment, from int, ids ...string) int {
	for i := from; i < len(segs); i++ {
		for _, id := range ids {
			if segs[i].ID == id {
				return i
			}
		}
	}
	return -1
}

// before returns the segments preceding the first occurrence of any of ids.
func before(segs []x12.Segment, ids ...string) []x12.Segment {
	if i := indexOf(segs, 0, ids...); i >= 0 {
		return segs[:i]
	}
	return segs
}

// from returns the segments starting at the first occurrence of any of
// ids, or nil when none occurs.
func from(segs []x12.Segment, ids ...string) []x12.Segment {
	if i := indexOf(segs, 0, ids...); i >= 0 {
		return segs[i:]
	}
	return nil
}

// between returns the segments from the first occurrence of start up to
// (not including) the first later occurrence of any of until.
func between(segs []x12.Segment, start string, until ...string) []x12.Segment {
	i := indexOf(segs, 0, start)
	if i < 0 {
		return nil
	}
	if j := indexOf(segs, i+1, until...); j >= 0 {
		return segs[i:j]
	}
	return segs[i:]
}

// =============================================================================
// LOOP RECONSTRUCTION
// =============================================================================
//
// X12 has no loop delimiters. A loop instance is inferred as the run of
// segments from one occurrence of the loop-start segment up to the next
// occurrence of that same segment, or the end of the window.
//
// Pairing is index-aligned: the Nth start segment owns the members that
// appear between start N and start N+1. A member segment that appears
// before the first start belongs to no loop. A loop that lacks a member
// simply has no value for it; members are never borrowed from a
// neighbouring loop.
//
// =============================================================================

// loop is one reconstructed loop instance. loop[0] is the start segment.
type loop []x12.Segment

func (l loop) head() x12.Segment { return l[0] }

func (l loop) first(id string) (x12.Segment, bool) { return first(l[1:], id) }

func (l loop) all(id string) []x12.Segment { return all(l[1:], id) }

// members returns the loop without its start segment.
func (l loop) members() []x12.Segment { return l[1:] }

// splitLoops partitions window into loop instances started by startID.
func splitLoops(window []x12.Segment, startID string) []loop {
	var (
		loops []loop
		cur   loop
	)
	for _, s := range window {
		if s.ID == startID {
			if cur != nil {
				loops = append(loops, cur)
			}
			cur = loop{s}
			continue
		}
		if cur != nil {
			cur = append(cur, s)
		}
	}
	if cur != nil {
		loops = append(loops, cur)
	}
	return loops
}

// =============================================================================
// VALUE COERCION
// =============================================================================

// impliedAmount reads an X12 N2 element (two implied decimal places):
// "12550" becomes 125.50. Values that already contain a decimal point are
// read as written. Non-numeric input is kept as Text.
func impliedAmount(s string) document.Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.Contains(s, ".") {
		return document.NumberOf(s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return document.Text(s)
	}
	d = d.Shift(-2)
	return document.Number{Raw: d.StringFixed(2), Decimal: d}
}

// decimalOf returns the numeric value of v when it is a Number.
func decimalOf(v document.Value) (decimal.Decimal, bool) {
	n, ok := v.(document.Number)
	if !ok {
		return decimal.Zero, false
	}
	return n.Decimal, true
}

func numberFromDecimal(d decimal.Decimal, places int32) document.Number {
	return document.Number{Raw: d.StringFixed(places), Decimal: d}
}

// lineTotal sets line_total = quantity * unit_price when both are numeric.
func lineTotal(item *document.Map) {
	qv, ok := item.Get("quantity")
	if !ok {
		return
	}
	pv, ok := item.Get("unit_price")
	if !ok {
		return
	}
	q, qok := decimalOf(qv)
	p, pok := decimalOf(pv)
	if qok && pok {
		item.Set("line_total", numberFromDecimal(q.Mul(p), 2))
	}
}

// sumOf adds the numeric values stored under key across items. ok is
// false when no item carries a numeric value for key.
func sumOf(items document.List, key string) (decimal.Decimal, bool) {
	total := decimal.Zero
	found := false
	for _, item := range items {
		v, ok := item.Get(key)
		if !ok {
			continue
		}
		if d, ok := decimalOf(v); ok {
			total = total.Add(d)
			found = true
		}
	}
	return total, found
}

// setSum stores the sum of key across items under target, keeping the
// precision of the inputs.
func setSum(m *document.Map, target string, items document.List, key string, places int32) {
	if total, ok := sumOf(items, key); ok {
		m.Set(target, numberFromDecimal(total, places))
	}
}

// =============================================================================
// CODES
// =============================================================================

// lookup translates code through table, returning code itself when it is
// not mapped.
func lookup(table map[string]string, code string) string {
	if desc, ok := table[code]; ok {
		return desc
	}
	return code
}

// setCode stores the raw code under key+"_code" and its description
// under key.
func setCode(m *document.Map, key string, table map[string]string, code string) {
	code = strings.TrimSpace(code)
	if code == "" {
		return
	}
	m.SetText(key+"_code", code)
	m.SetText(key, lookup(table, code))
}

// slug lower-cases a code for use inside a map key.
func slug(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// =============================================================================
// COMMON SEGMENTS
// =============================================================================

// readParty builds a party map from an N1 loop (N1 with optional N2, N3,
// N4 and PER members).
func readParty(l loop) *document.Map {
	n1 := l.head()
	party := document.NewMap()
	setCode(party, "entity", entityRoles, n1.Element(1))
	party.SetText("name", n1.Element(2))
	setCode(party, "id_qualifier", idQualifiers, n1.Element(3))
	party.SetText("id", n1.Element(4))

	if n2, ok := l.first("N2"); ok {
		party.SetText("additional_name", joinNonEmpty(" ", n2.Element(1), n2.Element(2)))
	}
	readAddress(party, l.members())
	readContact(party, l.members())
	return party
}

// readAddress reads the first N3 and N4 of segs into m.
func readAddress(m *document.Map, segs []x12.Segment) {
	if n3, ok := first(segs, "N3"); ok {
		m.SetText("address", joinNonEmpty(", ", n3.Element(1), n3.Element(2)))
	}
	if n4, ok := first(segs, "N4"); ok {
		m.SetText("city", n4.Element(1))
		m.SetText("state", n4.Element(2))
		m.SetText("postal_code", n4.Element(3))
		m.SetText("country", n4.Element(4))
	}
}

// readContact reads the first PER of segs into m.
func readContact(m *document.Map, segs []x12.Segment) {
	per, ok := first(segs, "PER")
	if !ok {
		return
	}
	setCode(m, "contact_function", contactFunctions, per.Element(1))
	m.SetText("contact_name", per.Element(2))
	for i := 3; i+1 <= per.Len(); i += 2 {
		value := per.Element(i + 1)
		switch per.Element(i) {
		case "TE":
			m.SetText("phone", value)
		case "FX":
			m.SetText("fax", value)
		case "EM":
			m.SetText("email", value)
		}
	}
}

// setParties reconstructs N1 loops from window, stores them as the
// "parties" list and flattens each party's name to "<role>_name".
func setParties(doc *document.Document, window []x12.Segment) {
	var list document.List
	for _, l := range splitLoops(window, "N1") {
		party := readParty(l)
		list = append(list, party)

		role := lookup(partyKeys, l.head().Element(1))
		if role == "" {
			continue
		}
		key := slug(role)
		if !doc.Header.Has(key + "_name") {
			doc.Header.SetText(key+"_name", party.GetString("name"))
			doc.Header.SetText(key+"_id", party.GetString("id"))
			doc.Header.SetText(key+"_city", party.GetString("city"))
		}
	}
	doc.Header.SetList("parties", list)
}

// setReferences stores REF segments as the "references" list and
// flattens each to "ref_<qualifier>".
func setReferences(m *document.Map, segs []x12.Segment) {
	var list document.List
	for _, ref := range all(segs, "REF") {
		r := document.NewMap()
		setCode(r, "qualifier", referenceQualifiers, ref.Element(1))
		r.SetText("value", ref.Element(2))
		r.SetText("description", ref.Element(3))
		list = append(list, r)

		key := "ref_" + slug(ref.Element(1))
		if !m.Has(key) {
			m.SetText(key, ref.Element(2))
		}
	}
	m.SetList("references", list)
}

// setDates stores DTM segments as the "dates" list and flattens each to a
// named key from dateKeys (or "date_<qualifier>").
func setDates(m *document.Map, segs []x12.Segment) {
	var list document.List
	for _, dtm := range all(segs, "DTM") {
		d := document.NewMap()
		setCode(d, "qualifier", dateQualifiers, dtm.Element(1))
		d.SetDate("date", dtm.Element(2))
		d.SetText("time", dtm.Element(3))
		list = append(list, d)

		key, ok := dateKeys[dtm.Element(1)]
		if !ok {
			key = "date_" + slug(dtm.Element(1))
		}
		if !m.Has(key) {
			m.SetDate(key, dtm.Element(2))
		}
	}
	m.SetList("dates", list)
}

// setCurrency reads CUR02 into "currency".
func setCurrency(m *document.Map, segs []x12.Segment) {
	if cur, ok := first(segs, "CUR"); ok {
		m.SetText("currency", cur.Element(2))
	}
}

// setTerms reads the first ITD segment.
func setTerms(m *document.Map, segs []x12.Segment) {
	itd, ok := first(segs, "ITD")
	if !ok {
		return
	}
	setCode(m, "terms_type", termsTypes, itd.Element(1))
	m.SetNumber("terms_discount_percent", itd.Element(3))
	m.SetDate("terms_discount_due_date", itd.Element(4))
	m.SetNumber("terms_discount_days", itd.Element(5))
	m.SetDate("terms_net_due_date", itd.Element(6))
	m.SetNumber("terms_net_days", itd.Element(7))
	m.SetText("terms_description", itd.Element(12))
}

// setCarrier reads the first TD5 segment.
func setCarrier(m *document.Map, segs []x12.Segment) {
	td5, ok := first(segs, "TD5")
	if !ok {
		return
	}
	m.SetText("carrier_code", td5.Element(3))
	setCode(m, "transport_method", transportMethods, td5.Element(4))
	m.SetText("routing", td5.Element(5))
}

// setProductIDs reads qualifier/id pairs starting at element start. The
// first id found becomes "product_id"; each pair is also flattened by
// qualifier name.
func setProductIDs(m *document.Map, seg x12.Segment, start int) {
	for i := start; i+1 <= seg.Len(); i += 2 {
		qual, id := seg.Element(i), seg.Element(i+1)
		if id == "" {
			continue
		}
		if !m.Has("product_id") {
			m.SetText("product_id", id)
			setCode(m, "product_id_qualifier", productQualifiers, qual)
		}
		if key, ok := productKeys[qual]; ok && !m.Has(key) {
			m.SetText(key, id)
		}
	}
}

// setDescription reads the first PID free-form description (PID05).
func setDescription(m *document.Map, segs []x12.Segment) {
	for _, pid := range all(segs, "PID") {
		if d := pid.Element(5); d != "" {
			m.SetText("description", d)
			return
		}
	}
}

// setLineCount stores CTT01 as line_count when present.
func setLineCount(doc *document.Document, segs []x12.Segment) {
	ctt, ok := first(segs, "CTT")
	if !ok {
		return
	}
	doc.Summary.SetNumber("line_count", ctt.Element(1))
	doc.Summary.SetNumber("hash_total", ctt.Element(2))
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func itoa(n int) string { return strconv.Itoa(n) }
