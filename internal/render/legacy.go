package render

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ginjaninja78/edi-document-renderer/internal/document"
	"github.com/ginjaninja78/edi-document-renderer/internal/layout"
)

// LegacyLayout builds the fixed presentation used when no layout version is
// available: every header entry as a field, the line items as a table with
// one column per key seen, and the summary as a one-row table.
func LegacyLayout(doc *document.Document) *layout.Config {
	cfg := &layout.Config{TitleFormat: DefaultTitleFormat}

	header := layout.Section{ID: "header", Title: doc.TransactionName, Type: layout.SectionFields}
	for _, key := range doc.Header.Keys() {
		v, _ := doc.Header.Get(key)
		header.Fields = append(header.Fields, layout.Field{Key: key, Label: Humanize(key), Type: kindOf(key, v)})
	}
	cfg.Sections = append(cfg.Sections, header)

	if len(doc.LineItems) > 0 {
		cfg.Sections = append(cfg.Sections, layout.Section{
			ID:            "line_items",
			Title:         "Line Items",
			Type:          layout.SectionTable,
			DataSourceKey: "line_items",
			Columns:       columnsOf(doc.LineItems),
		})
	}

	if doc.Summary.Len() > 0 {
		cfg.Sections = append(cfg.Sections, layout.Section{
			ID:            "summary",
			Title:         "Summary",
			Type:          layout.SectionTable,
			DataSourceKey: "summary",
			Columns:       columnsOf(document.List{doc.Summary}),
		})
	}

	return cfg
}

// columnsOf returns one column per key in first-seen order.
func columnsOf(rows document.List) []layout.Column {
	seen := make(map[string]bool)
	var cols []layout.Column
	for _, row := range rows {
		for _, key := range row.Keys() {
			if seen[key] {
				continue
			}
			seen[key] = true
			v, _ := row.Get(key)
			cols = append(cols, layout.Column{Key: key, Label: Humanize(key), Type: kindOf(key, v)})
		}
	}
	return cols
}

func kindOf(key string, v document.Value) string {
	switch {
	case key == "amount", strings.HasSuffix(key, "_amount"), strings.HasSuffix(key, "_price"), strings.HasSuffix(key, "_total"):
		if _, ok := v.(document.Number); ok {
			return layout.KindCurrency
		}
	}
	switch v.(type) {
	case document.Date:
		return layout.KindDate
	case document.Number:
		return layout.KindNumber
	}
	return layout.KindText
}

// Humanize turns a document key into a label: "po_number" becomes
// "Po Number".
func Humanize(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
