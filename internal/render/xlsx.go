package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/edi-document-renderer/internal/layout"
)

const maxSheetName = 31

// xlsxStyles holds the style IDs registered for one view.
type xlsxStyles struct {
	title, heading, label, header, note, bold int
}

func (r *Renderer) writeXLSX(buf *bytes.Buffer, views []View) error {
	f := excelize.NewFile()
	defer f.Close()

	if len(views) == 0 {
		_, err := f.WriteTo(buf)
		return err
	}

	for i, v := range views {
		name := SheetName(v, i)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}

		styles, err := newXLSXStyles(f, strings.TrimPrefix(v.ThemeColor, "#"))
		if err != nil {
			return err
		}
		if err := writeSheet(f, name, v, styles); err != nil {
			return fmt.Errorf("sheet %s: %w", name, err)
		}
	}

	f.SetActiveSheet(0)
	_, err := f.WriteTo(buf)
	return err
}

func newXLSXStyles(f *excelize.File, color string) (xlsxStyles, error) {
	var s xlsxStyles
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16, Color: color}}},
		{&s.heading, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 12, Color: color}}},
		{&s.label, &excelize.Style{Font: &excelize.Font{Bold: true}}},
		{&s.header, &excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		}},
		{&s.note, &excelize.Style{Font: &excelize.Font{Italic: true, Color: "777777"}}},
		{&s.bold, &excelize.Style{Font: &excelize.Font{Bold: true}}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return s, err
		}
		*d.dst = id
	}
	return s, nil
}

func writeSheet(f *excelize.File, sheet string, v View, st xlsxStyles) error {
	row := 1
	put := func(style int, values ...any) error {
		if len(values) == 0 {
			row++
			return nil
		}
		start := cellName(0, row-1)
		if err := f.SetSheetRow(sheet, start, &values); err != nil {
			return err
		}
		if style != 0 {
			end := cellName(len(values)-1, row-1)
			if err := f.SetCellStyle(sheet, start, end, style); err != nil {
				return err
			}
		}
		row++
		return nil
	}

	if err := put(st.title, v.Title); err != nil {
		return err
	}
	for _, w := range v.Warnings {
		if err := put(st.note, "Warning", w); err != nil {
			return err
		}
	}

	for _, s := range v.Sections {
		row++
		if s.Title != "" {
			if err := put(st.heading, s.Title); err != nil {
				return err
			}
		}

		switch s.Kind {
		case layout.SectionGrid:
			if err := put(st.note, s.Placeholder); err != nil {
				return err
			}

		case layout.SectionTable:
			header := make([]any, len(s.Columns))
			for i, c := range s.Columns {
				header[i] = c.Label
			}
			if err := put(st.header, header...); err != nil {
				return err
			}
			if len(s.Rows) == 0 {
				if err := put(st.note, "No entries"); err != nil {
					return err
				}
			}
			for _, cells := range s.Rows {
				values := make([]any, len(cells))
				for i, c := range cells {
					values[i] = c
				}
				if err := put(0, values...); err != nil {
					return err
				}
			}

		default:
			for _, p := range s.Pairs {
				if err := put(0, p.Label, p.Value); err != nil {
					return err
				}
				if err := f.SetCellStyle(sheet, cellName(0, row-2), cellName(0, row-2), st.label); err != nil {
					return err
				}
				if p.Style == "bold" {
					if err := f.SetCellStyle(sheet, cellName(1, row-2), cellName(1, row-2), st.bold); err != nil {
						return err
					}
				}
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 36); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "C", "Z", 18)
}

// SheetName returns the worksheet name used for the i-th view: the
// transaction type and position, stripped of characters Excel rejects.
func SheetName(v View, i int) string {
	name := fmt.Sprintf("%s %d", v.TransactionType, i+1)
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return -1
		}
		return r
	}, name)
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return strings.TrimSpace(name)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row+1)
	return name
}
