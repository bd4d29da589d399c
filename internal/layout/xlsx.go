// =============================================================================
// EDI Document Renderer - XLSX Layout Loader
// =============================================================================
//
// Layouts can be authored in a spreadsheet so that people who never touch
// YAML can still change what a rendered document shows. A workbook has two
// sheets:
//
//   "settings" - one key/value pair per row (title_format, theme_color).
//
//   "layout"   - one row per field or table column:
//
//   | A          | B             | C       | D           | E          | F             | G        | H     | I       | J     |
//   |------------|---------------|---------|-------------|------------|---------------|----------|-------|---------|-------|
//   | Section ID | Section Title | Type    | Data Source | Key        | Label         | Kind     | Style | Visible | Width |
//   | header     | Order         | fields  |             | po_number  | PO Number     | text     | bold  |         |       |
//   | header     |               |         |             | po_date    | Order Date    | date     |       |         |       |
//   | lines      | Line Items    | table   | line_items  | product_id | Item          |          |       |         | 40    |
//   | notes      | Notes         | grid    |             |            |               |          |       | no      |       |
//
//   Rows sharing a Section ID belong to the same section; sections keep the
//   order in which their ID first appears. Section title, type and data
//   source are taken from the first row that fills them in. A row with no
//   Key only declares the section, and its Visible cell applies to the
//   section itself.
//
// The first row of each sheet is a header and is skipped.
//
// =============================================================================

package layout

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet names read from a layout workbook.
const (
	SettingsSheet = "settings"
	LayoutSheet   = "layout"
)

// =============================================================================
// COLUMN CONFIGURATION
// =============================================================================

// SheetColumns defines the column positions (0-based) of the layout sheet.
type SheetColumns struct {
	SectionIDColumn    int
	SectionTitleColumn int
	SectionTypeColumn  int
	DataSourceColumn   int
	KeyColumn          int
	LabelColumn        int
	KindColumn         int
	StyleColumn        int
	VisibleColumn      int
	WidthColumn        int

	// DataStartRow is the row number where data begins (0-based).
	DataStartRow int
}

// DefaultSheetColumns returns the column configuration shown above.
func DefaultSheetColumns() SheetColumns {
	return SheetColumns{
		SectionIDColumn:    0, // Column A
		SectionTitleColumn: 1, // Column B
		SectionTypeColumn:  2, // Column C
		DataSourceColumn:   3, // Column D
		KeyColumn:          4, // Column E
		LabelColumn:        5, // Column F
		KindColumn:         6, // Column G
		StyleColumn:        7, // Column H
		VisibleColumn:      8, // Column I
		WidthColumn:        9, // Column J
		DataStartRow:       1, // Row 2
	}
}

// =============================================================================
// LOADER FUNCTIONS
// =============================================================================

// LoadXLSX reads a layout workbook from disk.
func LoadXLSX(path string) (*Config, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout workbook: %w", err)
	}
	defer f.Close()

	return readWorkbook(f, DefaultSheetColumns())
}

// ParseXLSX reads a layout workbook from r.
func ParseXLSX(r io.Reader) (*Config, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout workbook: %w", err)
	}
	defer f.Close()

	return readWorkbook(f, DefaultSheetColumns())
}

func readWorkbook(f *excelize.File, columns SheetColumns) (*Config, error) {
	cfg := &Config{}

	// =========================================================================
	// Settings (optional)
	// =========================================================================
	if idx, _ := f.GetSheetIndex(SettingsSheet); idx >= 0 {
		rows, err := f.GetRows(SettingsSheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s sheet: %w", SettingsSheet, err)
		}
		for i := 1; i < len(rows); i++ {
			if isRowEmpty(rows[i]) {
				continue
			}
			key := strings.ToLower(cell(rows[i], 0))
			value := cell(rows[i], 1)
			switch key {
			case "title_format", "title":
				cfg.TitleFormat = value
			case "theme_color", "color":
				cfg.ThemeColor = value
			}
		}
	}

	// =========================================================================
	// Sections
	// =========================================================================
	if idx, _ := f.GetSheetIndex(LayoutSheet); idx < 0 {
		return nil, fmt.Errorf("layout workbook has no %q sheet", LayoutSheet)
	}
	rows, err := f.GetRows(LayoutSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s sheet: %w", LayoutSheet, err)
	}

	index := make(map[string]int)
	for i := columns.DataStartRow; i < len(rows); i++ {
		row := rows[i]
		if isRowEmpty(row) {
			continue
		}
		if err := applyRow(cfg, index, row, columns); err != nil {
			return nil, fmt.Errorf("error parsing row %d: %w", i+1, err)
		}
	}

	return cfg, nil
}

// applyRow merges one layout row into cfg. index maps section IDs to their
// position in cfg.Sections.
func applyRow(cfg *Config, index map[string]int, row []string, columns SheetColumns) error {
	getCell := func(i int) string { return cell(row, i) }

	id := getCell(columns.SectionIDColumn)
	if id == "" {
		return fmt.Errorf("missing section id")
	}

	pos, ok := index[id]
	if !ok {
		cfg.Sections = append(cfg.Sections, Section{ID: id})
		pos = len(cfg.Sections) - 1
		index[id] = pos
	}
	section := &cfg.Sections[pos]

	if section.Title == "" {
		section.Title = getCell(columns.SectionTitleColumn)
	}
	if section.Type == "" {
		section.Type = getCell(columns.SectionTypeColumn)
	}
	if section.DataSourceKey == "" {
		section.DataSourceKey = getCell(columns.DataSourceColumn)
	}

	visible, err := parseVisible(getCell(columns.VisibleColumn))
	if err != nil {
		return err
	}

	key := getCell(columns.KeyColumn)
	if key == "" {
		if visible != nil {
			section.Visible = visible
		}
		return nil
	}

	label := getCell(columns.LabelColumn)
	kind := getCell(columns.KindColumn)
	style := getCell(columns.StyleColumn)

	if normalizeSectionKind(section.Type) == SectionTable {
		col := Column{Key: key, Label: label, Type: kind, Style: style, Visible: visible}
		if w := getCell(columns.WidthColumn); w != "" {
			width, err := strconv.ParseFloat(w, 64)
			if err != nil {
				return fmt.Errorf("invalid width %q: %w", w, err)
			}
			col.Width = width
		}
		section.Columns = append(section.Columns, col)
		return nil
	}

	section.Fields = append(section.Fields, Field{Key: key, Label: label, Type: kind, Style: style, Visible: visible})
	return nil
}

// parseVisible accepts the usual spreadsheet spellings of yes and no. An
// empty cell returns nil, which means visible.
func parseVisible(s string) (*bool, error) {
	switch strings.ToLower(s) {
	case "":
		return nil, nil
	case "yes", "y", "true", "1", "x", "show":
		return Bool(true), nil
	case "no", "n", "false", "0", "hide", "hidden":
		return Bool(false), nil
	default:
		return nil, fmt.Errorf("invalid visible value %q", s)
	}
}

// WriteXLSX writes cfg as a layout workbook, the inverse of ParseXLSX.
func WriteXLSX(w io.Writer, cfg *Config) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SettingsSheet); err != nil {
		return err
	}
	settings := [][]any{
		{"Setting", "Value"},
		{"title_format", cfg.TitleFormat},
		{"theme_color", cfg.ThemeColor},
	}
	for i, row := range settings {
		if err := f.SetSheetRow(SettingsSheet, cellName(0, i), &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(LayoutSheet); err != nil {
		return err
	}
	rows := [][]any{{"Section ID", "Section Title", "Type", "Data Source", "Key", "Label", "Kind", "Style", "Visible", "Width"}}
	for _, s := range cfg.Sections {
		rows = append(rows, []any{s.ID, s.Title, s.Type, s.DataSourceKey, "", "", "", "", visibleCell(s.Visible), ""})
		for _, fd := range s.Fields {
			rows = append(rows, []any{s.ID, "", "", "", fd.Key, fd.Label, fd.Type, fd.Style, visibleCell(fd.Visible), ""})
		}
		for _, c := range s.Columns {
			width := ""
			if c.Width > 0 {
				width = strconv.FormatFloat(c.Width, 'f', -1, 64)
			}
			rows = append(rows, []any{s.ID, "", "", "", c.Key, c.Label, c.Type, c.Style, visibleCell(c.Visible), width})
		}
	}
	for i, row := range rows {
		if err := f.SetSheetRow(LayoutSheet, cellName(0, i), &row); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func visibleCell(v *bool) string {
	switch {
	case v == nil:
		return ""
	case *v:
		return "yes"
	default:
		return "no"
	}
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row+1)
	return name
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// isRowEmpty checks if all cells in a row are empty.
func isRowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
