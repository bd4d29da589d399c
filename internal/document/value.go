package document

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Value is a closed union of the shapes a document field can hold:
// Text, Number, Date, List and *Map. Nothing outside this package can
// implement it, so a type switch over those five cases is exhaustive.
type Value interface {
	String() string
	isValue()
}

// Text is a plain string value.
type Text string

func (t Text) String() string { return string(t) }
func (Text) isValue()         {}

// Number is a numeric value that remembers how it was written.
type Number struct {
	// Raw is the text as it appeared in the input (or as normalized for
	// implied-decimal amounts).
	Raw string

	Decimal decimal.Decimal
}

func (n Number) String() string { return n.Raw }
func (Number) isValue()         {}

// Date is a calendar date parsed from CCYYMMDD or YYMMDD.
type Date struct {
	Raw  string
	Time time.Time
}

func (d Date) String() string { return d.Raw }
func (Date) isValue()         {}

// ISO returns the date as YYYY-MM-DD.
func (d Date) ISO() string {
	return d.Time.Format("2006-01-02")
}

// List is an ordered list of nested maps (line items, parties, ...).
type List []*Map

func (l List) String() string {
	parts := make([]string, 0, len(l))
	for _, m := range l {
		parts = append(parts, m.String())
	}
	return strings.Join(parts, "; ")
}

func (List) isValue() {}

// =============================================================================
// CONSTRUCTORS
// =============================================================================

// NumberOf parses s as a decimal. When s is not numeric the original text
// is kept as a Text value.
func NumberOf(s string) Value {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Text(s)
	}
	return Number{Raw: s, Decimal: d}
}

// DateOf parses CCYYMMDD or YYMMDD. Anything else is kept as Text.
func DateOf(s string) Value {
	s = strings.TrimSpace(s)

	var layout string
	switch len(s) {
	case 8:
		layout = "20060102"
	case 6:
		layout = "060102"
	default:
		return Text(s)
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return Text(s)
	}
	if len(s) == 6 {
		// Two-digit years are read as 20YY.
		t = time.Date(2000+t.Year()%100, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return Date{Raw: s, Time: t}
}
