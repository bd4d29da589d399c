// Package catalog describes where the fields of a normalized document come
// from. It is documentation data for the CLI and layout authors; the
// decoders never consult it.
package catalog

import (
	"sort"
	"strings"
)

// Entry describes one element locator such as "BEG03".
type Entry struct {
	Locator     string
	Key         string
	Description string
}

type table map[string]Entry

func (t table) add(locator, key, description string) table {
	t[locator] = Entry{Locator: locator, Key: key, Description: description}
	return t
}

// shared holds locators that mean the same in every transaction type.
var shared = table{}.
	add("N101", "entity_code", "Entity identifier code (party role)").
	add("N102", "<role>_name", "Party name").
	add("N103", "id_qualifier_code", "Identification code qualifier").
	add("N104", "<role>_id", "Party identification code").
	add("N301", "address", "Address line").
	add("N401", "<role>_city", "City").
	add("N402", "state", "State or province").
	add("N403", "postal_code", "Postal code").
	add("N404", "country", "Country code").
	add("PER02", "contact_name", "Contact name").
	add("REF01", "ref_<qualifier>", "Reference identification qualifier").
	add("REF02", "ref_<qualifier>", "Reference identification").
	add("DTM01", "<date key>", "Date/time qualifier").
	add("DTM02", "<date key>", "Date").
	add("CUR02", "currency", "Currency code").
	add("CTT01", "line_count", "Number of line items").
	add("CTT02", "hash_total", "Hash total")

var byType = map[string]table{
	"810": table{}.
		add("BIG01", "invoice_date", "Invoice date").
		add("BIG02", "invoice_number", "Invoice number").
		add("BIG03", "po_date", "Purchase order date").
		add("BIG04", "po_number", "Purchase order number").
		add("BIG07", "invoice_type", "Transaction type code").
		add("IT101", "line_number", "Assigned identification").
		add("IT102", "quantity", "Quantity invoiced").
		add("IT103", "unit", "Unit of measure").
		add("IT104", "unit_price", "Unit price").
		add("IT107", "product_id", "Product/service ID").
		add("PID05", "description", "Item description").
		add("TDS01", "total_amount", "Total invoice amount (two implied decimals)").
		add("TXI02", "tax_amount", "Tax amount"),
	"812": table{}.
		add("BCD01", "adjustment_date", "Adjustment date").
		add("BCD02", "adjustment_number", "Credit/debit adjustment number").
		add("BCD04", "total_amount", "Adjustment amount").
		add("BCD05", "credit_debit", "Credit/debit flag").
		add("BCD07", "invoice_number", "Invoice number").
		add("BCD10", "po_number", "Purchase order number").
		add("CDD01", "reason", "Adjustment reason code").
		add("CDD04", "amount", "Line adjustment amount"),
	"816": table{}.
		add("BHT03", "reference_number", "Reference identification").
		add("BHT04", "report_date", "Date").
		add("HL01", "hl_id", "Hierarchical ID number").
		add("HL02", "parent_id", "Hierarchical parent ID").
		add("HL03", "level", "Hierarchical level code"),
	"820": table{}.
		add("BPR02", "payment_amount", "Monetary amount").
		add("BPR04", "payment_method", "Payment method code").
		add("BPR16", "payment_date", "Effective entry date").
		add("TRN02", "trace_number", "Check or EFT trace number").
		add("RMR02", "reference_number", "Remitted document reference").
		add("RMR04", "amount_paid", "Amount paid").
		add("RMR05", "invoice_amount", "Total invoice amount").
		add("ADX01", "amount", "Adjustment amount").
		add("ADX02", "reason", "Adjustment reason code"),
	"830": table{}.
		add("BFR02", "reference_number", "Forecast reference").
		add("BFR03", "release_number", "Release number").
		add("BFR04", "schedule_type", "Schedule type qualifier").
		add("BFR06", "horizon_start", "Horizon start date").
		add("BFR07", "horizon_end", "Horizon end date").
		add("LIN03", "product_id", "Product/service ID").
		add("FST01", "quantity", "Forecast quantity").
		add("FST02", "forecast", "Forecast qualifier").
		add("FST04", "date", "Forecast date"),
	"846": table{}.
		add("BIA03", "reference_number", "Report reference").
		add("BIA04", "report_date", "Report date").
		add("LIN03", "product_id", "Product/service ID").
		add("QTY01", "quantity_type", "Quantity qualifier").
		add("QTY02", "quantity", "Quantity"),
	"850": table{}.
		add("BEG01", "purpose", "Transaction set purpose code").
		add("BEG02", "po_type", "Purchase order type code").
		add("BEG03", "po_number", "Purchase order number").
		add("BEG05", "po_date", "Purchase order date").
		add("PO101", "line_number", "Assigned identification").
		add("PO102", "quantity", "Quantity ordered").
		add("PO103", "unit", "Unit of measure").
		add("PO104", "unit_price", "Unit price").
		add("PO107", "product_id", "Product/service ID").
		add("PID05", "description", "Item description"),
	"855": table{}.
		add("BAK02", "ack_type", "Acknowledgment type").
		add("BAK03", "po_number", "Purchase order number").
		add("ACK01", "status", "Line item status code").
		add("ACK02", "ack_quantity", "Acknowledged quantity").
		add("ACK05", "scheduled_date", "Scheduled date"),
	"856": table{}.
		add("BSN02", "shipment_id", "Shipment identification").
		add("BSN03", "shipment_date", "Shipment date").
		add("TD503", "carrier_code", "Carrier SCAC").
		add("PRF01", "po_number", "Purchase order number").
		add("MAN02", "pack_id", "Marks and numbers").
		add("SN102", "quantity", "Number of units shipped"),
	"860": table{}.
		add("BCH03", "po_number", "Purchase order number").
		add("BCH06", "po_date", "Purchase order date").
		add("POC02", "change_type", "Change or response type code").
		add("POC03", "quantity", "Quantity ordered").
		add("POC04", "quantity_change", "Quantity left to receive"),
	"861": table{}.
		add("BRA01", "reference_number", "Receiving advice number").
		add("BRA02", "received_date", "Date received").
		add("RCD02", "quantity_received", "Quantity received or accepted").
		add("RCD08", "condition", "Receiving condition code"),
	"862": table{}.
		add("BSS02", "reference_number", "Schedule reference").
		add("BSS03", "issue_date", "Schedule issue date").
		add("FST01", "quantity", "Scheduled quantity").
		add("SHP02", "quantity", "Shipped or received quantity"),
	"864": table{}.
		add("BMG03", "subject", "Message description").
		add("MIT01", "message_id", "Message reference").
		add("MIT02", "title", "Message title").
		add("MSG01", "text", "Free-form message text"),
	"870": table{}.
		add("BSR03", "reference_number", "Status report reference").
		add("BSR04", "report_date", "Report date").
		add("ISR01", "status", "Item status code").
		add("ISR02", "status_date", "Status date"),
	"875": table{}.
		add("G5002", "po_date", "Purchase order date").
		add("G5003", "po_number", "Purchase order number").
		add("G6801", "quantity", "Quantity ordered").
		add("G6803", "unit_price", "Item list cost").
		add("G6804", "upc_case_code", "UPC case code"),
	"880": table{}.
		add("G0101", "invoice_date", "Invoice date").
		add("G0102", "invoice_number", "Invoice number").
		add("G1701", "quantity", "Quantity invoiced").
		add("G1703", "unit_price", "Item list cost").
		add("G3101", "total_quantity", "Total quantity invoiced").
		add("G3301", "total_amount", "Total invoice amount (two implied decimals)"),
	"997": table{}.
		add("AK101", "functional_id", "Functional identifier code").
		add("AK102", "group_control_number", "Group control number").
		add("AK201", "set_code", "Transaction set identifier").
		add("AK202", "set_control_number", "Transaction set control number").
		add("AK501", "status", "Transaction set acknowledgment code").
		add("AK901", "status", "Functional group acknowledgment code"),
}

// Describe returns the entry for locator in the given transaction type.
// Locators are matched case-insensitively.
func Describe(txType, locator string) (Entry, bool) {
	locator = strings.ToUpper(strings.TrimSpace(locator))

	t, ok := byType[txType]
	if !ok {
		return Entry{}, false
	}
	if e, ok := t[locator]; ok {
		return e, true
	}
	e, ok := shared[locator]
	return e, ok
}

// Entries returns every entry known for txType ordered by locator. Type
// specific entries override shared ones.
func Entries(txType string) []Entry {
	t, ok := byType[txType]
	if !ok {
		return nil
	}

	merged := make(map[string]Entry, len(shared)+len(t))
	for k, e := range shared {
		merged[k] = e
	}
	for k, e := range t {
		merged[k] = e
	}

	out := make([]Entry, 0, len(merged))
	for _, e := range merged {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Locator < out[j].Locator })
	return out
}
