// Package layout holds the declarative presentation configuration used to
// render normalized documents, together with its loaders, validation and
// the version resolver collaborator.
//
// A layout is an ordered list of sections. Each section is either a block
// of label/value fields taken from the document header, a table whose rows
// come from a list attribute of the document, or a grid placeholder.
package layout

import "strings"

// ============================================================================
// Kinds
// ============================================================================

// Value kinds control how a single value is formatted.
const (
	KindText     = "text"
	KindDate     = "date"
	KindCurrency = "currency"
	KindNumber   = "number"
	KindStatus   = "status"
)

// Section kinds.
const (
	SectionFields = "fields"
	SectionTable  = "table"
	SectionGrid   = "grid"
)

// ============================================================================
// Schema
// ============================================================================

// Config is a complete layout for one transaction type.
type Config struct {
	// Title template, e.g. "Purchase Order {ref_number}"
	TitleFormat string `yaml:"title_format" json:"title_format" toml:"title_format"`

	// Hex color used for headings, e.g. "#1F4E79"
	ThemeColor string `yaml:"theme_color" json:"theme_color" toml:"theme_color"`

	Sections []Section `yaml:"sections" json:"sections" toml:"sections"`
}

// Section is one block of the rendered document.
type Section struct {
	ID      string `yaml:"id" json:"id" toml:"id"`
	Title   string `yaml:"title" json:"title" toml:"title"`
	Type    string `yaml:"type" json:"type" toml:"type"`
	Visible *bool  `yaml:"visible,omitempty" json:"visible,omitempty" toml:"visible,omitempty"`

	// Used when Type is "fields"
	Fields []Field `yaml:"fields,omitempty" json:"fields,omitempty" toml:"fields,omitempty"`

	// Used when Type is "table"
	Columns       []Column `yaml:"columns,omitempty" json:"columns,omitempty" toml:"columns,omitempty"`
	DataSourceKey string   `yaml:"data_source_key,omitempty" json:"data_source_key,omitempty" toml:"data_source_key,omitempty"`
}

// Field maps a header key to a labelled value.
type Field struct {
	Key     string `yaml:"key" json:"key" toml:"key"`
	Label   string `yaml:"label" json:"label" toml:"label"`
	Type    string `yaml:"type,omitempty" json:"type,omitempty" toml:"type,omitempty"`
	Style   string `yaml:"style,omitempty" json:"style,omitempty" toml:"style,omitempty"`
	Visible *bool  `yaml:"visible,omitempty" json:"visible,omitempty" toml:"visible,omitempty"`
}

// Column is one table column.
type Column struct {
	Key     string  `yaml:"key" json:"key" toml:"key"`
	Label   string  `yaml:"label" json:"label" toml:"label"`
	Type    string  `yaml:"type,omitempty" json:"type,omitempty" toml:"type,omitempty"`
	Style   string  `yaml:"style,omitempty" json:"style,omitempty" toml:"style,omitempty"`
	Visible *bool   `yaml:"visible,omitempty" json:"visible,omitempty" toml:"visible,omitempty"`
	Width   float64 `yaml:"width,omitempty" json:"width,omitempty" toml:"width,omitempty"`
}

// IsVisible reports whether the section is shown. Omitted means shown.
func (s Section) IsVisible() bool { return isVisible(s.Visible) }

// IsVisible reports whether the field is shown. Omitted means shown.
func (f Field) IsVisible() bool { return isVisible(f.Visible) }

// IsVisible reports whether the column is shown. Omitted means shown.
func (c Column) IsVisible() bool { return isVisible(c.Visible) }

// Kind returns the normalized section kind, "fields" when empty.
func (s Section) Kind() string { return normalizeSectionKind(s.Type) }

// Kind returns the normalized value kind.
func (f Field) Kind() string { return NormalizeKind(f.Type) }

// Kind returns the normalized value kind.
func (c Column) Kind() string { return NormalizeKind(c.Type) }

// VisibleFields returns the fields that are shown, in order.
func (s Section) VisibleFields() []Field {
	out := make([]Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.IsVisible() {
			out = append(out, f)
		}
	}
	return out
}

// VisibleColumns returns the columns that are shown, in order.
func (s Section) VisibleColumns() []Column {
	out := make([]Column, 0, len(s.Columns))
	for _, c := range s.Columns {
		if c.IsVisible() {
			out = append(out, c)
		}
	}
	return out
}

// Bool returns a pointer to b, for building layouts in code.
func Bool(b bool) *bool { return &b }

func isVisible(v *bool) bool {
	return v == nil || *v
}

// NormalizeKind maps the spellings accepted from hand-edited files onto the
// five value kinds. Unknown spellings are returned lower-cased so that
// validation can report them.
func NormalizeKind(kind string) string {
	k := strings.ToLower(strings.TrimSpace(kind))
	switch k {
	case "", "text", "string", "str":
		return KindText
	case "date", "datetime":
		return KindDate
	case "currency", "money", "amount":
		return KindCurrency
	case "number", "numeric", "int", "integer", "decimal", "quantity":
		return KindNumber
	case "status", "code":
		return KindStatus
	default:
		return k
	}
}

func normalizeSectionKind(kind string) string {
	switch k := strings.ToLower(strings.TrimSpace(kind)); k {
	case "", "fields", "field", "header":
		return SectionFields
	case "table", "list", "lines":
		return SectionTable
	case "grid", "matrix":
		return SectionGrid
	default:
		return k
	}
}
