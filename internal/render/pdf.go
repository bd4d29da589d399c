package render

import (
	"bytes"
	_ "embed"
	"strings"
	"unicode"

	"github.com/go-pdf/fpdf"

	"github.com/ginjaninja78/edi-document-renderer/internal/layout"
)

// Page geometry in millimetres.
const (
	pdfMargin     = 15.0
	pdfLineHeight = 6.0
	pdfCellHeight = 5.0
	pdfLabelWidth = 55.0
)

// pdfFont is a Unicode font, so every value prints as it reads in the
// HTML and XLSX renditions.
const pdfFont = "DejaVu"

var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	fontRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	fontBold []byte
	//go:embed fonts/DejaVuSansCondensed-Oblique.ttf
	fontItalic []byte
)

func (r *Renderer) writePDF(buf *bytes.Buffer, views []View) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(!r.opts.PDFUncompressed)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetCreator("edirender", true)
	pdf.AddUTF8FontFromBytes(pdfFont, "", fontRegular)
	pdf.AddUTF8FontFromBytes(pdfFont, "B", fontBold)
	pdf.AddUTF8FontFromBytes(pdfFont, "I", fontItalic)
	if len(views) == 1 {
		pdf.SetTitle(views[0].Title, true)
	}

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pdfMargin

	for _, v := range views {
		cr, cg, cb, _ := parseHex(v.ThemeColor)

		pdf.AddPage()
		pdf.SetFont(pdfFont, "B", 16)
		pdf.SetTextColor(cr, cg, cb)
		pdf.MultiCell(contentWidth, 9, pdfText(v.Title), "", "L", false)
		pdf.Ln(2)

		pdf.SetTextColor(0, 0, 0)
		for _, w := range v.Warnings {
			pdf.SetFont(pdfFont, "I", 9)
			pdf.SetTextColor(156, 42, 0)
			pdf.MultiCell(contentWidth, 5, pdfText(w), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		}

		for _, s := range v.Sections {
			if s.Title != "" {
				pdf.Ln(3)
				pdf.SetFont(pdfFont, "B", 12)
				pdf.SetTextColor(cr, cg, cb)
				pdf.MultiCell(contentWidth, 8, pdfText(s.Title), "B", "L", false)
				pdf.SetTextColor(0, 0, 0)
				pdf.Ln(1)
			}

			switch s.Kind {
			case layout.SectionGrid:
				pdf.SetFont(pdfFont, "I", 10)
				pdf.MultiCell(contentWidth, pdfLineHeight, pdfText(s.Placeholder), "", "L", false)

			case layout.SectionTable:
				pdfTable(pdf, s, contentWidth, cr, cg, cb)

			default:
				for _, p := range s.Pairs {
					pdfPair(pdf, p, contentWidth)
				}
			}
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(buf)
}

// pdfPair prints a label beside its value. Both wrap, and the next pair
// starts below the taller of the two.
func pdfPair(pdf *fpdf.Fpdf, p Pair, width float64) {
	valueStyle := ""
	if p.Style == "bold" {
		valueStyle = "B"
	}
	pdf.SetFont(pdfFont, "B", 10)
	labelLines := wrapCell(pdf, pdfText(p.Label), pdfLabelWidth)
	pdf.SetFont(pdfFont, valueStyle, 10)
	valueLines := wrapCell(pdf, pdfText(p.Value), width-pdfLabelWidth)

	height := float64(max(len(labelLines), len(valueLines))) * pdfLineHeight
	ensureSpace(pdf, height)

	x, y := pdf.GetX(), pdf.GetY()
	pdf.SetFont(pdfFont, "B", 10)
	drawLines(pdf, labelLines, x, y, pdfLabelWidth, pdfLineHeight)
	pdf.SetFont(pdfFont, valueStyle, 10)
	drawLines(pdf, valueLines, x+pdfLabelWidth, y, width-pdfLabelWidth, pdfLineHeight)
	pdf.SetXY(x, y+height)
}

// pdfTable draws a bordered table whose cells wrap rather than clip. Each
// row is as tall as its tallest cell, and the header is repeated when a
// row moves to a new page.
func pdfTable(pdf *fpdf.Fpdf, s SectionView, width float64, cr, cg, cb int) {
	widths := columnWidths(s.Columns, width)

	labels := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		labels[i] = c.Label
	}
	header := func() {
		pdf.SetFont(pdfFont, "B", 9)
		pdf.SetFillColor(cr, cg, cb)
		pdf.SetTextColor(255, 255, 255)
		pdfRow(pdf, labels, widths, true)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont(pdfFont, "", 9)
	}

	header()
	if len(s.Rows) == 0 {
		pdf.CellFormat(width, 7, "No entries", "1", 1, "L", false, 0, "")
		return
	}
	for _, row := range s.Rows {
		if pdfRowHeight(pdf, row, widths) > spaceLeft(pdf) {
			pdf.AddPage()
			header()
		}
		pdfRow(pdf, row, widths, false)
	}
}

func pdfRowHeight(pdf *fpdf.Fpdf, cells []string, widths []float64) float64 {
	lines := 1
	for i, cell := range cells {
		lines = max(lines, len(wrapCell(pdf, pdfText(cell), widths[i])))
	}
	return float64(lines) * pdfCellHeight
}

func pdfRow(pdf *fpdf.Fpdf, cells []string, widths []float64, fill bool) {
	height := pdfRowHeight(pdf, cells, widths)
	ensureSpace(pdf, height)

	style := "D"
	if fill {
		style = "FD"
	}
	x, y := pdf.GetX(), pdf.GetY()
	for i, cell := range cells {
		pdf.Rect(x, y, widths[i], height, style)
		drawLines(pdf, wrapCell(pdf, pdfText(cell), widths[i]), x, y, widths[i], pdfCellHeight)
		x += widths[i]
	}
	pdf.SetXY(pdfMargin, y+height)
}

// wrapCell splits s into the lines that fit width in the current font. An
// empty value still takes one line.
func wrapCell(pdf *fpdf.Fpdf, s string, width float64) []string {
	lines := pdf.SplitText(s, width)
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

func drawLines(pdf *fpdf.Fpdf, lines []string, x, y, width, lineHeight float64) {
	for i, line := range lines {
		pdf.SetXY(x, y+float64(i)*lineHeight)
		pdf.CellFormat(width, lineHeight, line, "", 0, "L", false, 0, "")
	}
}

func spaceLeft(pdf *fpdf.Fpdf) float64 {
	_, pageHeight := pdf.GetPageSize()
	return pageHeight - pdfMargin - pdf.GetY()
}

// ensureSpace starts a new page when height does not fit on this one.
// Rows drawn cell by cell must not be split by the automatic page break.
func ensureSpace(pdf *fpdf.Fpdf, height float64) {
	if height > spaceLeft(pdf) {
		pdf.AddPage()
	}
}

// pdfText replaces what the PDF font tables cannot index: characters
// outside the Basic Multilingual Plane and control characters other than
// newline.
func pdfText(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r > 0xFFFF:
			return unicode.ReplacementChar
		case r == '\n':
			return r
		case unicode.IsControl(r):
			return ' '
		}
		return r
	}, s)
}

// columnWidths honours explicit widths and shares what is left equally
// among the other columns. When explicit widths overflow the page every
// column is scaled down.
func columnWidths(cols []ColumnView, total float64) []float64 {
	widths := make([]float64, len(cols))
	fixed, free := 0.0, 0
	for i, c := range cols {
		if c.Width > 0 {
			widths[i] = c.Width
			fixed += c.Width
		} else {
			free++
		}
	}

	remaining := total - fixed
	if free > 0 {
		share := remaining / float64(free)
		if share < 15 {
			share = 15
		}
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}

	sum := 0.0
	for _, w := range widths {
		sum += w
	}
	if sum > total {
		for i := range widths {
			widths[i] *= total / sum
		}
	}
	return widths
}
