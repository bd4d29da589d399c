package decoder

import (
	"strings"

	"github.com/ginjaninja78/edi-document-renderer/internal/document"
	"github.com/ginjaninja78/edi-document-renderer/internal/x12"
)

// decodeTextMessage handles 864 Text Message.
//
// BMG header and N1 loops, then MIT message loops whose MSG lines are
// joined into a single text. MSG lines without an MIT form one untitled
// message.
func decodeTextMessage(doc *document.Document, body []x12.Segment) {
	header := before(body, "MIT", "MSG")

	if bmg, ok := first(header, "BMG"); ok {
		setCode(doc.Header, "purpose", textMessagePurposes, bmg.Element(1))
		doc.Header.SetText("reference_number", bmg.Element(2))
		doc.Header.SetText("subject", bmg.Element(3))
	}
	setDates(doc.Header, before(header, "N1"))
	setParties(doc, header)

	loops := splitLoops(from(body, "MIT"), "MIT")
	if len(loops) == 0 {
		if msgs := all(body, "MSG"); len(msgs) > 0 {
			item := document.NewMap()
			item.SetText("text", messageText(msgs))
			item.SetNumber("line_count", itoa(len(msgs)))
			doc.LineItems = append(doc.LineItems, item)
		}
	}
	for _, l := range loops {
		mit := l.head()
		msgs := l.all("MSG")
		item := document.NewMap()
		item.SetText("message_id", mit.Element(1))
		item.SetText("title", mit.Element(2))
		item.SetText("text", messageText(msgs))
		item.SetNumber("line_count", itoa(len(msgs)))
		doc.LineItems = append(doc.LineItems, item)
	}

	doc.Summary.SetNumber("message_count", itoa(len(doc.LineItems)))
}

func messageText(msgs []x12.Segment) string {
	lines := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		lines = append(lines, msg.Element(1))
	}
	return strings.Join(lines, "\n")
}

// decodeFunctionalAck handles 997 Functional Acknowledgment.
//
// AK1 names the acknowledged group and AK9 carries its overall status.
// Each AK2 starts a set response loop; within it every AK3 segment error
// owns the AK4 element errors up to the next AK3, and AK5 closes the
// response with the set status.
func decodeFunctionalAck(doc *document.Document, body []x12.Segment) {
	if ak1, ok := first(body, "AK1"); ok {
		doc.Header.SetText("functional_id", ak1.Element(1))
		doc.Header.SetText("group_control_number", ak1.Element(2))
		doc.Header.SetText("reference_number", ak1.Element(2))
	}

	for _, l := range splitLoops(between(body, "AK2", "AK9"), "AK2") {
		ak2 := l.head()
		item := document.NewMap()
		item.SetText("set_code", ak2.Element(1))
		item.SetText("set_control_number", ak2.Element(2))

		var errs document.List
		for _, el := range splitLoops(before(l.members(), "AK5"), "AK3") {
			ak3 := el.head()
			e := document.NewMap()
			e.SetText("segment_id", ak3.Element(1))
			e.SetNumber("position", ak3.Element(2))
			e.SetText("loop_id", ak3.Element(3))
			setCode(e, "error", segmentSyntaxErrors, ak3.Element(4))

			var elements document.List
			for _, ak4 := range el.all("AK4") {
				ee := document.NewMap()
				ee.SetText("position", ak4.Element(1))
				ee.SetText("element_reference", ak4.Element(2))
				setCode(ee, "error", elementSyntaxErrors, ak4.Element(3))
				ee.SetText("bad_value", ak4.Element(4))
				elements = append(elements, ee)
			}
			e.SetList("element_errors", elements)
			errs = append(errs, e)
		}
		item.SetList("segment_errors", errs)
		item.SetNumber("error_count", itoa(len(errs)))

		if ak5, ok := l.first("AK5"); ok {
			setCode(item, "status", ackStatuses, ak5.Element(1))
			var reasons []string
			for i := 2; i <= 6; i++ {
				if code := ak5.Element(i); code != "" {
					reasons = append(reasons, lookup(setSyntaxErrors, code))
				}
			}
			item.SetText("errors", strings.Join(reasons, "; "))
		}
		doc.LineItems = append(doc.LineItems, item)
	}

	if ak9, ok := first(body, "AK9"); ok {
		setCode(doc.Header, "status", ackStatuses, ak9.Element(1))
		doc.Summary.SetNumber("sets_included", ak9.Element(2))
		doc.Summary.SetNumber("sets_received", ak9.Element(3))
		doc.Summary.SetNumber("sets_accepted", ak9.Element(4))
		var reasons []string
		for i := 5; i <= 9; i++ {
			if code := ak9.Element(i); code != "" {
				reasons = append(reasons, lookup(groupSyntaxErrors, code))
			}
		}
		doc.Summary.SetText("group_errors", strings.Join(reasons, "; "))
	}
}
