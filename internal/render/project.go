// Package render turns normalized documents into PDF, XLSX and HTML.
//
// Rendering happens in two steps. Project walks a document with a layout
// and produces a View: the labelled, formatted strings that will appear on
// the page. The writers only serialize Views, so the three formats always
// show the same content.
package render

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/ginjaninja78/edi-document-renderer/internal/document"
	"github.com/ginjaninja78/edi-document-renderer/internal/layout"
)

// GridPlaceholder is shown in place of grid sections.
const GridPlaceholder = "Grid view is not available for this document."

// DefaultThemeColor is used when a layout has no usable theme color.
const DefaultThemeColor = "#1F4E79"

// DefaultTitleFormat is used when a layout has no title format.
const DefaultTitleFormat = "{name} {ref_number}"

// refKeys are the header keys tried, in order, for {ref_number}.
var refKeys = []string{
	"po_number",
	"invoice_number",
	"shipment_id",
	"adjustment_number",
	"reference_number",
	"trace_number",
	"control_number",
}

// View is a document ready to be written.
type View struct {
	Title           string
	ThemeColor      string
	TransactionType string
	TransactionName string
	ControlNumber   string
	Sections        []SectionView
	Warnings        []string
}

// SectionView is one projected section.
type SectionView struct {
	ID    string
	Title string
	Kind  string

	// fields
	Pairs []Pair

	// table
	Columns []ColumnView
	Rows    [][]string

	// grid
	Placeholder string
}

// Pair is a labelled value.
type Pair struct {
	Label string
	Value string
	Style string
}

// ColumnView is a table column header.
type ColumnView struct {
	Key   string
	Label string
	Width float64
}

// Project builds the View of doc under cfg. A nil cfg uses the legacy
// layout derived from the document itself.
func Project(doc *document.Document, cfg *layout.Config) View {
	if cfg == nil {
		cfg = LegacyLayout(doc)
	}

	view := View{
		Title:           Title(doc, cfg.TitleFormat),
		ThemeColor:      themeColor(cfg.ThemeColor),
		TransactionType: doc.TransactionType,
		TransactionName: doc.TransactionName,
		ControlNumber:   doc.ControlNumber,
		Warnings:        append([]string(nil), doc.Warnings...),
	}
	symbol := documentSymbol(doc)

	for _, s := range cfg.Sections {
		if !s.IsVisible() {
			continue
		}
		sv := SectionView{ID: s.ID, Title: s.Title, Kind: s.Kind()}

		switch sv.Kind {
		case layout.SectionTable:
			for _, c := range s.VisibleColumns() {
				sv.Columns = append(sv.Columns, ColumnView{Key: c.Key, Label: labelOf(c.Label, c.Key), Width: c.Width})
			}
			for _, row := range tableRows(doc, s.DataSourceKey) {
				cells := make([]string, 0, len(sv.Columns))
				for _, c := range s.VisibleColumns() {
					v, _ := row.Get(c.Key)
					cells = append(cells, FormatValue(v, c.Type, symbol))
				}
				sv.Rows = append(sv.Rows, cells)
			}

		case layout.SectionGrid:
			sv.Placeholder = GridPlaceholder

		default:
			sv.Kind = layout.SectionFields
			for _, f := range s.VisibleFields() {
				v, _ := doc.Header.Get(f.Key)
				sv.Pairs = append(sv.Pairs, Pair{
					Label: labelOf(f.Label, f.Key),
					Value: FormatValue(v, f.Type, symbol),
					Style: f.Style,
				})
			}
		}

		view.Sections = append(view.Sections, sv)
	}

	return view
}

// tableRows finds the rows of a table section: a document attribute first,
// then a header entry. Anything that is not a list or map gives no rows.
func tableRows(doc *document.Document, key string) []*document.Map {
	v, ok := doc.Attribute(key)
	if !ok {
		v, ok = doc.Header.Get(key)
	}
	if !ok {
		return nil
	}

	switch x := v.(type) {
	case document.List:
		return x
	case *document.Map:
		return []*document.Map{x}
	default:
		return nil
	}
}

func labelOf(label, key string) string {
	if strings.TrimSpace(label) != "" {
		return label
	}
	return key
}

var placeholder = regexp.MustCompile(`\{([^{}]*)\}`)

// Title expands a title format for doc. {name} is the transaction name,
// {ref_number} the document's main reference, and any header key expands
// to its value. A format that cannot be fully expanded, because a
// placeholder is unknown or a brace is unmatched, gives the transaction
// name alone.
func Title(doc *document.Document, format string) string {
	if strings.TrimSpace(format) == "" {
		format = DefaultTitleFormat
	}

	failed := false
	out := placeholder.ReplaceAllStringFunc(format, func(m string) string {
		key := strings.TrimSpace(m[1 : len(m)-1])
		switch key {
		case "name":
			return doc.TransactionName
		case "ref_number":
			return RefNumber(doc)
		}
		if v, ok := doc.Header.Get(key); ok {
			return v.String()
		}
		failed = true
		return ""
	})
	if failed || strings.ContainsAny(placeholder.ReplaceAllString(format, ""), "{}") {
		return doc.TransactionName
	}
	return strings.Join(strings.Fields(out), " ")
}

// RefNumber returns the first reference found in the document header,
// falling back to the interchange control number.
func RefNumber(doc *document.Document) string {
	for _, key := range refKeys {
		if s := doc.Header.GetString(key); s != "" {
			return s
		}
	}
	return doc.ControlNumber
}

func themeColor(c string) string {
	if r, g, b, ok := parseHex(strings.TrimSpace(c)); ok {
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
	return DefaultThemeColor
}

// parseHex reads #RGB or #RRGGBB, with or without the hash.
func parseHex(c string) (r, g, b int, ok bool) {
	c = strings.TrimPrefix(c, "#")
	if len(c) == 3 {
		c = string([]byte{c[0], c[0], c[1], c[1], c[2], c[2]})
	}
	rgb, err := hex.DecodeString(c)
	if err != nil || len(rgb) != 3 {
		return 0, 0, 0, false
	}
	return int(rgb[0]), int(rgb[1]), int(rgb[2]), true
}
