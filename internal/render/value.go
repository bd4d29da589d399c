package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ginjaninja78/edi-document-renderer/internal/document"
	"github.com/ginjaninja78/edi-document-renderer/internal/layout"
)

// DefaultCurrencySymbol is used when a document names no currency.
const DefaultCurrencySymbol = "$"

var grouping = message.NewPrinter(language.English)

// FormatValue renders v according to a layout value kind. Values that do
// not parse as the kind asks are shown as they are.
func FormatValue(v document.Value, kind, symbol string) string {
	if v == nil {
		return ""
	}

	switch layout.NormalizeKind(kind) {
	case layout.KindCurrency:
		return formatCurrency(v, symbol)
	case layout.KindDate:
		return formatDate(v)
	case layout.KindNumber:
		return strings.TrimSpace(v.String())
	case layout.KindStatus:
		return strings.ToUpper(v.String())
	default:
		return v.String()
	}
}

func formatCurrency(v document.Value, symbol string) string {
	var d decimal.Decimal
	switch x := v.(type) {
	case document.Number:
		d = x.Decimal
	default:
		parsed, err := decimal.NewFromString(strings.TrimSpace(v.String()))
		if err != nil {
			return v.String()
		}
		d = parsed
	}
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + symbol + groupDigits(d.Abs().StringFixed(2))
}

// groupDigits inserts thousands separators into a non-negative fixed-point
// string such as "1234.50".
func groupDigits(fixed string) string {
	whole, frac, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return fixed
	}
	out := grouping.Sprintf("%d", n)
	if frac != "" {
		out += "." + frac
	}
	return out
}

func formatDate(v document.Value) string {
	switch x := v.(type) {
	case document.Date:
		return x.ISO()
	case document.Text:
		if d, ok := document.DateOf(string(x)).(document.Date); ok {
			return d.ISO()
		}
	}
	return v.String()
}

// CurrencySymbol returns the display symbol for an ISO 4217 code. Unknown
// codes are shown as the code itself followed by a space.
func CurrencySymbol(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultCurrencySymbol
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code + " "
	}
	return fmt.Sprint(currency.NarrowSymbol(unit))
}

func documentSymbol(doc *document.Document) string {
	return CurrencySymbol(doc.Header.GetString("currency"))
}
