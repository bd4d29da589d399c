package layout_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/edi-document-renderer/internal/layout"
)

const yamlLayout = `
title_format: "Purchase Order {ref_number}"
theme_color: "#1F4E79"
sections:
  - id: header
    title: Order
    type: fields
    fields:
      - key: po_number
        label: PO Number
      - key: po_date
        label: Order Date
        type: date
  - id: lines
    title: Line Items
    type: table
    data_source_key: line_items
    columns:
      - key: product_id
        label: Item
        width: 40
      - key: internal_note
        label: Note
        visible: false
`

const jsonLayout = `{
  "title_format": "Purchase Order {ref_number}",
  "theme_color": "#1F4E79",
  "sections": [
    {"id": "header", "title": "Order", "type": "fields", "fields": [
      {"key": "po_number", "label": "PO Number"},
      {"key": "po_date", "label": "Order Date", "type": "date"}
    ]},
    {"id": "lines", "title": "Line Items", "type": "table", "data_source_key": "line_items", "columns": [
      {"key": "product_id", "label": "Item", "width": 40},
      {"key": "internal_note", "label": "Note", "visible": false}
    ]}
  ]
}`

const tomlLayout = `
title_format = "Purchase Order {ref_number}"
theme_color = "#1F4E79"

[[sections]]
id = "header"
title = "Order"
type = "fields"

  [[sections.fields]]
  key = "po_number"
  label = "PO Number"

  [[sections.fields]]
  key = "po_date"
  label = "Order Date"
  type = "date"

[[sections]]
id = "lines"
title = "Line Items"
type = "table"
data_source_key = "line_items"

  [[sections.columns]]
  key = "product_id"
  label = "Item"
  width = 40.0

  [[sections.columns]]
  key = "internal_note"
  label = "Note"
  visible = false
`

func TestParse_FormatsAgree(t *testing.T) {
	fromYAML, err := layout.Parse([]byte(yamlLayout), layout.FormatYAML)
	require.NoError(t, err)
	fromJSON, err := layout.Parse([]byte(jsonLayout), layout.FormatJSON)
	require.NoError(t, err)
	fromTOML, err := layout.Parse([]byte(tomlLayout), layout.FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromJSON)
	assert.Equal(t, fromYAML, fromTOML)

	require.Len(t, fromYAML.Sections, 2)
	lines := fromYAML.Sections[1]
	assert.Equal(t, layout.SectionTable, lines.Kind())
	assert.Equal(t, 40.0, lines.Columns[0].Width)
	assert.True(t, lines.Columns[0].IsVisible())
	assert.False(t, lines.Columns[1].IsVisible())
	assert.Len(t, lines.VisibleColumns(), 1)
}

func TestLoad_ByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "po.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlLayout), 0o644))

	cfg, err := layout.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Purchase Order {ref_number}", cfg.TitleFormat)

	_, err = layout.Load(filepath.Join(dir, "po.ini"))
	assert.ErrorContains(t, err, "unsupported layout file extension")

	_, err = layout.Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg, err := layout.Parse([]byte(yamlLayout), layout.FormatYAML)
	require.NoError(t, err)

	for _, format := range []string{layout.FormatYAML, layout.FormatJSON, layout.FormatTOML} {
		t.Run(format, func(t *testing.T) {
			data, err := layout.Marshal(cfg, format)
			require.NoError(t, err)

			back, err := layout.Parse(data, format)
			require.NoError(t, err)
			assert.Equal(t, cfg, back)
		})
	}
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, layout.FormatYAML, layout.FormatOf("a.YAML"))
	assert.Equal(t, layout.FormatXLSX, layout.FormatOf("dir/a.xlsx"))
	assert.Empty(t, layout.FormatOf("a.txt"))
}

func TestNormalizeKind(t *testing.T) {
	tests := map[string]string{
		"":         layout.KindText,
		"String":   layout.KindText,
		"money":    layout.KindCurrency,
		"DECIMAL":  layout.KindNumber,
		"datetime": layout.KindDate,
		"code":     layout.KindStatus,
		"sparkle":  "sparkle",
	}
	for in, want := range tests {
		assert.Equal(t, want, layout.NormalizeKind(in), in)
	}
}

func TestSection_Defaults(t *testing.T) {
	s := layout.Section{}
	assert.True(t, s.IsVisible())
	assert.Equal(t, layout.SectionFields, s.Kind())

	s.Visible = layout.Bool(false)
	s.Type = "Lines"
	assert.False(t, s.IsVisible())
	assert.Equal(t, layout.SectionTable, s.Kind())
}
