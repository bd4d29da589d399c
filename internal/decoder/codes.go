package decoder

// Code tables used by the decoders. Every table is read through lookup,
// which returns the raw code for anything not listed here.

// entityRoles describes N101 entity identifier codes.
var entityRoles = map[string]string{
	"BT": "Bill-to-Party",
	"BY": "Buying Party (Purchaser)",
	"CA": "Carrier",
	"CN": "Consignee",
	"DA": "Delivery Address",
	"II": "Issuer of Invoice",
	"MF": "Manufacturer of Goods",
	"OB": "Ordered By",
	"PE": "Payee",
	"PR": "Payer",
	"RE": "Party to Receive Commercial Invoice Remittance",
	"RI": "Remit To",
	"SE": "Selling Party",
	"SF": "Ship From",
	"SO": "Sold To If Different From Bill To",
	"ST": "Ship To",
	"SU": "Supplier/Manufacturer",
	"VN": "Vendor",
	"WH": "Warehouse",
	"Z7": "Mark-for Party",
	"40": "Receiver",
	"41": "Submitter",
}

// partyKeys maps N101 codes to the short header key prefix under which a
// party is flattened.
var partyKeys = map[string]string{
	"BT": "bill_to",
	"BY": "buyer",
	"CA": "carrier",
	"CN": "consignee",
	"OB": "ordered_by",
	"PE": "payee",
	"PR": "payer",
	"RE": "remittance_receiver",
	"RI": "remit_to",
	"SE": "seller",
	"SF": "ship_from",
	"SO": "sold_to",
	"ST": "ship_to",
	"SU": "supplier",
	"VN": "vendor",
	"WH": "warehouse",
	"Z7": "mark_for",
}

var idQualifiers = map[string]string{
	"1":  "D-U-N-S Number",
	"9":  "D-U-N-S+4",
	"91": "Assigned by Seller",
	"92": "Assigned by Buyer",
	"UL": "Global Location Number",
	"ZZ": "Mutually Defined",
}

var contactFunctions = map[string]string{
	"BD": "Buyer Name or Department",
	"CR": "Customer Relations",
	"IC": "Information Contact",
	"OC": "Order Contact",
	"SR": "Sales Representative",
}

// dateQualifiers describes DTM01 date/time qualifiers.
var dateQualifiers = map[string]string{
	"002": "Delivery Requested",
	"003": "Invoice",
	"004": "Purchase Order",
	"010": "Requested Ship",
	"011": "Shipped",
	"017": "Estimated Delivery",
	"037": "Ship Not Before",
	"038": "Ship No Later",
	"050": "Received",
	"063": "Do Not Deliver After",
	"064": "Do Not Deliver Before",
	"067": "Current Schedule Delivery",
	"068": "Current Schedule Ship",
	"069": "Promised for Delivery",
	"097": "Transaction Creation",
	"371": "Estimated Arrival",
}

// dateKeys names the header key a DTM date is flattened to.
var dateKeys = map[string]string{
	"002": "delivery_requested_date",
	"003": "invoice_date",
	"004": "po_date",
	"010": "requested_ship_date",
	"011": "ship_date",
	"017": "estimated_delivery_date",
	"037": "ship_not_before_date",
	"038": "ship_no_later_date",
	"050": "received_date",
	"063": "do_not_deliver_after_date",
	"064": "do_not_deliver_before_date",
	"067": "scheduled_delivery_date",
	"068": "scheduled_ship_date",
	"069": "promised_delivery_date",
	"097": "created_date",
	"371": "estimated_arrival_date",
}

// referenceQualifiers describes REF01 reference identification qualifiers.
var referenceQualifiers = map[string]string{
	"AN": "Associated Purchase Orders",
	"BM": "Bill of Lading Number",
	"CN": "Carrier's Reference Number (PRO/Invoice)",
	"CO": "Customer Order Number",
	"CR": "Customer Reference Number",
	"DP": "Department Number",
	"IA": "Internal Vendor Number",
	"IV": "Seller's Invoice Number",
	"IT": "Internal Customer Number",
	"MR": "Merchandise Type Code",
	"PK": "Packing List Number",
	"PO": "Purchase Order Number",
	"VN": "Vendor Order Number",
	"VR": "Vendor ID Number",
	"ZZ": "Mutually Defined",
	"TN": "Transaction Reference Number",
	"OI": "Original Invoice Number",
	"R7": "Credit Memo Number",
}

// units describes unit of measure codes.
var units = map[string]string{
	"BX": "Box",
	"CA": "Case",
	"CT": "Carton",
	"DZ": "Dozen",
	"EA": "Each",
	"FT": "Foot",
	"GA": "Gallon",
	"KG": "Kilogram",
	"LB": "Pound",
	"PK": "Package",
	"PL": "Pallet/Unit Load",
	"PR": "Pair",
	"RL": "Roll",
	"ST": "Set",
	"UN": "Unit",
}

// productQualifiers describes product/service id qualifiers.
var productQualifiers = map[string]string{
	"BP": "Buyer's Part Number",
	"CB": "Buyer's Catalog Number",
	"EN": "European Article Number (EAN)",
	"IN": "Buyer's Item Number",
	"MG": "Manufacturer's Part Number",
	"SK": "Stock Keeping Unit (SKU)",
	"UK": "GTIN-14",
	"UP": "UCC-12 (UPC)",
	"VA": "Vendor's Style Number",
	"VN": "Vendor's Item Number",
	"VP": "Vendor's Part Number",
}

// productKeys names the item key a product id is flattened to.
var productKeys = map[string]string{
	"BP": "buyer_part_number",
	"CB": "buyer_catalog_number",
	"EN": "ean",
	"IN": "buyer_item_number",
	"MG": "manufacturer_part_number",
	"SK": "sku",
	"UK": "gtin",
	"UP": "upc",
	"VA": "vendor_style_number",
	"VN": "vendor_item_number",
	"VP": "vendor_part_number",
}

// purposeCodes describes transaction set purpose codes (BEG01, BAK01, ...).
var purposeCodes = map[string]string{
	"00": "Original",
	"01": "Cancellation",
	"04": "Change",
	"05": "Replace",
	"06": "Confirmation",
	"07": "Duplicate",
	"13": "Request",
	"18": "Reissue",
	"22": "Information Copy",
	"25": "Incremental",
}

// poTypes describes purchase order type codes (BEG02, BCH02).
var poTypes = map[string]string{
	"BK": "Blanket Order",
	"CN": "Consigned Order",
	"DS": "Dropship",
	"KN": "Purchase Order",
	"NE": "New Order",
	"RE": "Reorder",
	"RL": "Release or Delivery Order",
	"SA": "Stand-alone Order",
}

// ackTypes describes BAK02 acknowledgment types.
var ackTypes = map[string]string{
	"AC": "Acknowledge - With Detail and Change",
	"AD": "Acknowledge - With Detail, No Change",
	"AE": "Acknowledge - With Exception Detail Only",
	"AK": "Acknowledge - No Detail or Change",
	"AP": "Acknowledge - Product Replenishment",
	"RD": "Reject with Detail",
	"RJ": "Rejected - No Detail",
}

// lineAckStatuses describes ACK01 line item status codes.
var lineAckStatuses = map[string]string{
	"AC": "Item Accepted and Shipped",
	"AR": "Item Accepted and Released for Shipment",
	"BP": "Item Accepted - Partial Shipment, Balance Backordered",
	"DR": "Item Accepted - Date Rescheduled",
	"IA": "Item Accepted",
	"IB": "Item Backordered",
	"IC": "Item Accepted - Changes Made",
	"ID": "Item Deleted",
	"IP": "Item Accepted - Price Changed",
	"IQ": "Item Accepted - Quantity Changed",
	"IR": "Item Rejected",
	"IS": "Item Accepted - Substitution Made",
	"R2": "Item Rejected, Invalid Item Product Number",
}

// changeTypes describes POC02 line change types.
var changeTypes = map[string]string{
	"AI": "Add Additional Item(s)",
	"CA": "Changes To Line Items",
	"CT": "Change of Dates",
	"DI": "Delete Item(s)",
	"NC": "Concurrent Item (No Change)",
	"PC": "Price Change",
	"PQ": "Unit Price/Quantity Change",
	"QD": "Quantity Decrease",
	"QI": "Quantity Increase",
	"RZ": "Replace All Values",
}

// adjustmentReasons describes CDD01 and ADX02 adjustment reason codes.
var adjustmentReasons = map[string]string{
	"01": "Pricing Error",
	"02": "Extension Error",
	"03": "Damaged Merchandise",
	"04": "Quantity Contested",
	"05": "Incorrect Product",
	"06": "Returns - Damage",
	"07": "Returns - Quality",
	"10": "Freight Deducted",
	"11": "Returns - Quantity",
	"12": "Not Ordered",
	"22": "Payment Adjustment",
	"AV": "Allowance Variance",
	"CS": "Adjustment",
	"H1": "Short Shipment",
	"L2": "Late Delivery",
	"WO": "Write Off",
}

// creditDebitFlags describes credit/debit flag codes.
var creditDebitFlags = map[string]string{
	"C": "Credit",
	"D": "Debit",
}

// handlingCodes describes BCD03 and BPR01 transaction handling codes.
var handlingCodes = map[string]string{
	"C": "Payment Accompanies Remittance Advice",
	"D": "Make Payment Only",
	"H": "Notification Only",
	"I": "Remittance Information Only",
	"P": "Prenotification of Future Transfers",
	"U": "Split Payment and Remittance",
	"X": "Handling Party's Option to Split Payment and Remittance",
}

// paymentMethods describes BPR04 payment method codes.
var paymentMethods = map[string]string{
	"ACH": "Automated Clearing House",
	"BOP": "Financial Institution Option",
	"CHK": "Check",
	"FWT": "Federal Reserve Funds/Wire Transfer",
	"NON": "Non-Payment Data",
	"SWT": "Society for Worldwide Interbank Financial Telecommunications",
}

// paymentFormats describes BPR05 payment format codes.
var paymentFormats = map[string]string{
	"CCP": "Cash Concentration/Disbursement plus Addenda",
	"CTX": "Corporate Trade Exchange",
	"PPD": "Prearranged Payment and Deposit",
}

// hlLevels describes HL03 hierarchical level codes.
var hlLevels = map[string]string{
	"1": "Organization",
	"2": "Department",
	"3": "Division",
	"4": "Store",
	"5": "Region",
	"I": "Item",
	"O": "Order",
	"P": "Pack",
	"S": "Shipment",
	"T": "Shipping Tare",
	"V": "Vendor",
	"X": "Manufacturer",
}

// forecastQualifiers describes FST02 forecast qualifiers.
var forecastQualifiers = map[string]string{
	"A": "Immediate",
	"B": "Pilot/Prototype",
	"C": "Firm",
	"D": "Planning",
	"Z": "Mutually Defined",
}

// forecastTimings describes FST03 timing qualifiers.
var forecastTimings = map[string]string{
	"C": "Daily",
	"D": "Discrete",
	"F": "Flexible Interval",
	"M": "Monthly Bucket",
	"Q": "Quarterly",
	"W": "Weekly Bucket",
	"Z": "Mutually Defined",
}

// scheduleTypes describes BFR04 and BSS04 schedule type qualifiers.
var scheduleTypes = map[string]string{
	"BB": "Customer Production (Consumption) Based",
	"DL": "Delivery Based",
	"KB": "Kanban Signal",
	"PD": "Planned Shipment Based",
	"SH": "Shipment Based",
}

// resourceAuthorizations describes ATH01 codes.
var resourceAuthorizations = map[string]string{
	"FI": "Finished (Labor, Material, and Overhead/Burden)",
	"MT": "Material",
	"PQ": "Cumulative Quantity Required Prior to First Schedule Period",
}

// shippedQuantityQualifiers describes SHP01 codes.
var shippedQuantityQualifiers = map[string]string{
	"01": "Discrete Quantity",
	"02": "Cumulative Quantity",
}

// inventoryReportTypes describes BIA02 report type codes.
var inventoryReportTypes = map[string]string{
	"DD": "Distributor Inventory Report",
	"MB": "Manufacturer/Distributor Inventory Report",
	"MM": "Manufacturer Inventory Report",
	"SI": "Seller Inventory Report",
}

// inventoryQuantities describes QTY01 qualifiers used in inventory advice.
var inventoryQuantities = map[string]string{
	"02": "Cumulative Quantity",
	"17": "Quantity on Hand",
	"29": "Quantity Available",
	"33": "Quantity Available for Sale",
	"37": "Work in Process",
	"38": "Original Quantity",
	"63": "On Order Quantity",
	"QH": "Quantity on Hold",
}

// receivingAdviceTypes describes BRA04 codes.
var receivingAdviceTypes = map[string]string{
	"1": "Receiving Dock Advice",
	"2": "Acceptance Certificate",
	"3": "Receiving and Acceptance Certificate",
	"4": "Rejection",
	"5": "Transfer",
}

// receivingConditions describes RCD08 receiving condition codes.
var receivingConditions = map[string]string{
	"01": "Damaged Product or Container",
	"02": "Improper Shipping Documents",
	"03": "Missing Materials or Documents",
	"04": "Overshipped",
	"05": "Undershipped",
	"06": "Late Shipment",
	"07": "Not Ordered",
	"08": "Wrong Part",
}

// orderStatusCodes describes ISR01 item status codes.
var orderStatusCodes = map[string]string{
	"BP": "Shipment Partial, Balance Backordered",
	"CC": "Shipment Complete on (Date)",
	"CP": "Partial Shipment on (Date), Considered No Backorder",
	"DE": "Deleted Order",
	"IA": "Item Accepted",
	"IB": "Item Backordered",
	"IN": "In Process",
	"PR": "Promised for (Date)",
	"SH": "Shipped",
	"SP": "Scheduled for Production",
}

// statusReportCodes describes BSR01 codes.
var statusReportCodes = map[string]string{
	"1": "Order Status Report",
	"2": "Promised Date Report",
	"3": "Shipped Order Report",
	"4": "Backorder Report",
}

// orderItemCodes describes BSR02 codes.
var orderItemCodes = map[string]string{
	"PP": "Purchase Order",
	"PQ": "Purchase Order by Line Item",
	"PS": "Purchase Order by Selected Line Items",
}

// transportMethods describes TD504 transportation method codes.
var transportMethods = map[string]string{
	"A":  "Air",
	"AE": "Air Express",
	"D":  "Parcel Post",
	"H":  "Customer Pickup",
	"LT": "Less Than Trailer Load (LTL)",
	"M":  "Motor (Common Carrier)",
	"P":  "Private Carrier",
	"R":  "Rail",
	"U":  "Private Parcel Service",
}

// termsTypes describes ITD01 terms type codes.
var termsTypes = map[string]string{
	"01": "Basic",
	"02": "End of Month (EOM)",
	"05": "Discount Not Applicable",
	"08": "Basic Discount Offered",
	"12": "10 Days After End of Month",
}

// invoiceTypes describes BIG07 transaction type codes.
var invoiceTypes = map[string]string{
	"CN": "Credit Invoice",
	"CR": "Credit Memo",
	"DI": "Debit Invoice",
	"DR": "Debit Memo",
	"PR": "Product (or Service)",
}

// allowanceCharges describes SAC02 and G7201 allowance/charge codes.
var allowanceCharges = map[string]string{
	"A260": "Advertising Allowance",
	"B720": "Cooperative Advertising/Merchandising Allowance",
	"C310": "Discount",
	"D240": "Freight",
	"D500": "Handling",
	"F800": "Promotional Allowance",
	"H850": "Tax",
	"I170": "Trade Discount",
	"ZZZZ": "Mutually Defined",
	"001":  "Advertising",
	"010":  "Freight",
	"020":  "Promotional Allowance",
}

// allowanceIndicators describes SAC01.
var allowanceIndicators = map[string]string{
	"A": "Allowance",
	"C": "Charge",
	"N": "No Allowance or Charge",
}

// groceryOrderStatus describes G5001 order status codes.
var groceryOrderStatus = map[string]string{
	"A": "Add",
	"C": "Change",
	"D": "Delete",
	"N": "New Order",
	"R": "Replace",
}

// textMessagePurposes describes BMG01 codes.
var textMessagePurposes = purposeCodes

// ackStatuses describes AK501 and AK901 acknowledgment codes.
var ackStatuses = map[string]string{
	"A": "Accepted",
	"E": "Accepted But Errors Were Noted",
	"M": "Rejected, Message Authentication Code (MAC) Failed",
	"P": "Partially Accepted, At Least One Transaction Set Was Rejected",
	"R": "Rejected",
	"W": "Rejected, Assurance Failed Validity Tests",
	"X": "Rejected, Content After Decryption Could Not Be Analyzed",
}

// setSyntaxErrors describes AK502 transaction set syntax error codes.
var setSyntaxErrors = map[string]string{
	"1":  "Transaction Set Not Supported",
	"2":  "Transaction Set Trailer Missing",
	"3":  "Transaction Set Control Number in Header and Trailer Do Not Match",
	"4":  "Number of Included Segments Does Not Match Actual Count",
	"5":  "One or More Segments in Error",
	"6":  "Missing or Invalid Transaction Set Identifier",
	"7":  "Missing or Invalid Transaction Set Control Number",
	"23": "Transaction Set Control Number Not Unique within the Functional Group",
}

// segmentSyntaxErrors describes AK304 codes.
var segmentSyntaxErrors = map[string]string{
	"1": "Unrecognized Segment ID",
	"2": "Unexpected Segment",
	"3": "Mandatory Segment Missing",
	"4": "Loop Occurs Over Maximum Times",
	"5": "Segment Exceeds Maximum Use",
	"6": "Segment Not in Defined Transaction Set",
	"7": "Segment Not in Proper Sequence",
	"8": "Segment Has Data Element Errors",
}

// elementSyntaxErrors describes AK403 codes.
var elementSyntaxErrors = map[string]string{
	"1":  "Mandatory Data Element Missing",
	"2":  "Conditional Required Data Element Missing",
	"3":  "Too Many Data Elements",
	"4":  "Data Element Too Short",
	"5":  "Data Element Too Long",
	"6":  "Invalid Character in Data Element",
	"7":  "Invalid Code Value",
	"8":  "Invalid Date",
	"9":  "Invalid Time",
	"10": "Exclusion Condition Violated",
}

// groupSyntaxErrors describes AK905 functional group syntax error codes.
var groupSyntaxErrors = map[string]string{
	"1": "Functional Group Not Supported",
	"2": "Functional Group Version Not Supported",
	"3": "Functional Group Trailer Missing",
	"4": "Group Control Number in the Functional Group Header and Trailer Do Not Agree",
	"5": "Number of Included Transaction Sets Does Not Match Actual Count",
	"6": "Group Control Number Violates Syntax",
}
