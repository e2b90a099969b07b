package document

import (
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	apperrors "condogest/internal/errors"
	"condogest/internal/money"
)

const (
	pageWidth  = 210.0
	marginLeft = 10.0
	contentW   = pageWidth - 2*marginLeft

	fontFamily = "Helvetica"
)

// Painter renders a laid-out Document to PDF. CreationDate is embedded in
// the PDF metadata; leaving it zero uses the current time. Painting the
// same document with the same creation date is byte-deterministic.
type Painter struct {
	CreationDate time.Time
}

// Paint writes the document as a PDF to w.
func (p Painter) Paint(doc *Document, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	if !p.CreationDate.IsZero() {
		pdf.SetCreationDate(p.CreationDate)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, page := range doc.Pages {
		pdf.AddPage()
		y := marginTop

		if i == 0 {
			y = paintBanner(pdf, tr, doc.Context, y)
			y = paintTitleBlock(pdf, tr, doc.Context, y)
			if doc.Summary != nil {
				y = paintSummary(pdf, tr, *doc.Summary, y)
			}
		}

		if doc.Empty {
			paintPlaceholder(pdf, tr, y)
		} else {
			paintTable(pdf, tr, doc.Columns, page.Rows, y)
		}

		paintFooter(pdf, tr, page.Footer)
	}

	if err := pdf.Output(w); err != nil {
		return apperrors.Wrap(apperrors.ErrRenderFailed, err)
	}
	return nil
}

// paintBanner draws the brand-colored banner with the organization name,
// subtitle, and generation timestamp.
func paintBanner(pdf *gofpdf.Fpdf, tr func(string) string, c Context, y float64) float64 {
	pdf.SetFillColor(BrandColor[0], BrandColor[1], BrandColor[2])
	pdf.Rect(marginLeft, y, contentW, bannerHeight, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(fontFamily, "B", 15)
	pdf.SetXY(marginLeft+4, y+4)
	pdf.CellFormat(contentW-8, 7, tr(c.Organization()), "", 0, "L", false, 0, "")

	pdf.SetFont(fontFamily, "", 9)
	pdf.SetXY(marginLeft+4, y+12)
	pdf.CellFormat(contentW-8, 5, tr(c.Subtitle()), "", 0, "L", false, 0, "")

	pdf.SetXY(marginLeft+4, y+18)
	generated := "Gerado em " + c.GeneratedAt.Format("02/01/2006 15:04")
	pdf.CellFormat(contentW-8, 5, tr(generated), "", 0, "L", false, 0, "")

	return y + bannerHeight + 4
}

// paintTitleBlock draws the title and requester lines.
func paintTitleBlock(pdf *gofpdf.Fpdf, tr func(string) string, c Context, y float64) float64 {
	pdf.SetTextColor(30, 30, 30)
	pdf.SetFont(fontFamily, "B", 13)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(contentW, 7, tr(c.TitleLine()), "", 0, "L", false, 0, "")

	pdf.SetFont(fontFamily, "", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetXY(marginLeft, y+titleHeight-2)
	pdf.CellFormat(contentW, 5, tr(c.RequesterLine()), "", 0, "L", false, 0, "")

	return y + titleHeight + requesterHeight - 4
}

// paintSummary draws the three rounded summary panels: income, expense,
// and balance.
func paintSummary(pdf *gofpdf.Fpdf, tr func(string) string, s money.Summary, y float64) float64 {
	const gap = 5.0
	boxW := (contentW - 2*gap) / 3
	boxH := summaryHeight - 6

	panels := []struct {
		label string
		value string
		color [3]int
	}{
		{"Receitas", s.Income.BRL(), IncomeColor},
		{"Despesas", s.Expense.BRL(), ExpenseColor},
		{"Saldo", s.Balance.BRL(), BrandColor},
	}

	x := marginLeft
	for _, panel := range panels {
		pdf.SetFillColor(245, 246, 250)
		pdf.RoundedRect(x, y, boxW, boxH, 2.5, "1234", "F")

		pdf.SetTextColor(90, 90, 90)
		pdf.SetFont(fontFamily, "", 9)
		pdf.SetXY(x, y+3)
		pdf.CellFormat(boxW, 5, tr(panel.label), "", 0, "C", false, 0, "")

		pdf.SetTextColor(panel.color[0], panel.color[1], panel.color[2])
		pdf.SetFont(fontFamily, "B", 12)
		pdf.SetXY(x, y+9)
		pdf.CellFormat(boxW, 7, tr(panel.value), "", 0, "C", false, 0, "")

		x += boxW + gap
	}

	return y + summaryHeight
}

// paintTable draws the column headers and body rows starting at y.
func paintTable(pdf *gofpdf.Fpdf, tr func(string) string, columns []Column, rows []Row, y float64) {
	pdf.SetXY(marginLeft, y)
	pdf.SetFillColor(BrandColor[0], BrandColor[1], BrandColor[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(fontFamily, "B", 9)
	for _, col := range columns {
		pdf.CellFormat(col.Width, headerRowHeight, tr(col.Header), "", 0, col.Align, true, 0, "")
	}
	y += headerRowHeight

	pdf.SetFont(fontFamily, "", 9)
	pdf.SetTextColor(40, 40, 40)
	for i, row := range rows {
		fill := i%2 == 1
		pdf.SetFillColor(240, 242, 247)
		pdf.SetXY(marginLeft, y)
		for j, col := range columns {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			pdf.CellFormat(col.Width, rowHeight, tr(cell), "", 0, col.Align, fill, 0, "")
		}
		y += rowHeight
	}
}

// paintPlaceholder draws the centered empty-state message.
func paintPlaceholder(pdf *gofpdf.Fpdf, tr func(string) string, y float64) {
	pdf.SetTextColor(120, 120, 120)
	pdf.SetFont(fontFamily, "I", 11)
	pdf.SetXY(marginLeft, y+20)
	pdf.CellFormat(contentW, 8, tr(EmptyMessage), "", 0, "C", false, 0, "")
}

// paintFooter stamps the precomputed footer, centered at the bottom.
func paintFooter(pdf *gofpdf.Fpdf, tr func(string) string, footer string) {
	pdf.SetTextColor(130, 130, 130)
	pdf.SetFont(fontFamily, "", 8)
	pdf.SetXY(marginLeft, pageHeight-marginBottom-6)
	pdf.CellFormat(contentW, 5, tr(footer), "", 0, "C", false, 0, "")
}
