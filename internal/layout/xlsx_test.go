package layout_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/edi-document-renderer/internal/layout"
)

// workbook builds a layout workbook from literal rows of the layout sheet.
func workbook(t *testing.T, settings [][]any, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if settings != nil {
		require.NoError(t, f.SetSheetName("Sheet1", layout.SettingsSheet))
		for i, row := range settings {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, f.SetSheetRow(layout.SettingsSheet, cell, &row))
		}
	}
	if rows != nil {
		_, err := f.NewSheet(layout.LayoutSheet)
		require.NoError(t, err)
		for i, row := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, f.SetSheetRow(layout.LayoutSheet, cell, &row))
		}
	}

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return &buf
}

var layoutHeader = []any{"Section ID", "Section Title", "Type", "Data Source", "Key", "Label", "Kind", "Style", "Visible", "Width"}

func TestParseXLSX(t *testing.T) {
	buf := workbook(t,
		[][]any{{"Setting", "Value"}, {"title_format", "Order {ref_number}"}, {"theme_color", "#336699"}},
		[][]any{
			layoutHeader,
			{"header", "Order", "fields", "", "po_number", "PO Number", "text", "bold"},
			{"header", "", "", "", "po_date", "Order Date", "date"},
			{},
			{"lines", "Line Items", "table", "line_items", "product_id", "Item", "", "", "", "40"},
			{"lines", "", "", "", "unit_price", "Price", "currency", "", "no"},
			{"notes", "Notes", "grid", "", "", "", "", "", "no"},
		})

	cfg, err := layout.ParseXLSX(buf)
	require.NoError(t, err)

	assert.Equal(t, "Order {ref_number}", cfg.TitleFormat)
	assert.Equal(t, "#336699", cfg.ThemeColor)
	require.Len(t, cfg.Sections, 3)

	header := cfg.Sections[0]
	assert.Equal(t, "Order", header.Title)
	require.Len(t, header.Fields, 2)
	assert.Equal(t, "bold", header.Fields[0].Style)
	assert.Equal(t, layout.KindDate, header.Fields[1].Kind())

	lines := cfg.Sections[1]
	assert.Equal(t, "line_items", lines.DataSourceKey)
	assert.Empty(t, lines.Fields)
	require.Len(t, lines.Columns, 2)
	assert.Equal(t, 40.0, lines.Columns[0].Width)
	assert.False(t, lines.Columns[1].IsVisible())

	notes := cfg.Sections[2]
	assert.Equal(t, layout.SectionGrid, notes.Kind())
	assert.False(t, notes.IsVisible())
}

func TestParseXLSX_Errors(t *testing.T) {
	_, err := layout.ParseXLSX(workbook(t, [][]any{{"Setting", "Value"}}, nil))
	assert.ErrorContains(t, err, `no "layout" sheet`)

	_, err = layout.ParseXLSX(workbook(t, nil, [][]any{layoutHeader, {"", "x", "fields", "", "k"}}))
	assert.ErrorContains(t, err, "row 2")

	_, err = layout.ParseXLSX(workbook(t, nil, [][]any{layoutHeader, {"s", "", "fields", "", "k", "K", "", "", "maybe"}}))
	assert.ErrorContains(t, err, "invalid visible value")

	_, err = layout.ParseXLSX(workbook(t, nil, [][]any{layoutHeader, {"s", "", "table", "line_items", "k", "K", "", "", "", "wide"}}))
	assert.ErrorContains(t, err, "invalid width")

	_, err = layout.ParseXLSX(bytes.NewBufferString("not a workbook"))
	assert.Error(t, err)
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	cfg, err := layout.Parse([]byte(yamlLayout), layout.FormatYAML)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, layout.WriteXLSX(&buf, cfg))

	back, err := layout.ParseXLSX(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestLoad_XLSXFile(t *testing.T) {
	cfg, err := layout.Parse([]byte(yamlLayout), layout.FormatYAML)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, layout.WriteXLSX(&buf, cfg))

	path := filepath.Join(t.TempDir(), "po.xlsx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	loaded, err := layout.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
