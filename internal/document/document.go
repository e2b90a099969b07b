// Package document turns filtered report data into a paginated tabular
// document. Layout is a pure measure-then-paginate pass producing a
// Document value; footers are stamped only after the final page count is
// known. Painting the laid-out document to PDF lives in pdf.go.
package document

import (
	"fmt"
	"time"

	"condogest/internal/format"
	"condogest/internal/money"
)

// Branding constants shared by every generated document.
const (
	ProductName     = "CondoGest"
	DefaultSubtitle = "Gestão de Condomínios"

	// Placeholder shown instead of an empty table.
	EmptyMessage = "Nenhum registro encontrado para o período selecionado."
)

// Brand palette (RGB).
var (
	BrandColor   = [3]int{37, 99, 235}
	IncomeColor  = [3]int{22, 163, 74}
	ExpenseColor = [3]int{220, 38, 38}
)

// Page geometry in millimeters (A4 portrait).
const (
	pageHeight      = 297.0
	marginTop       = 10.0
	marginBottom    = 10.0
	bannerHeight    = 26.0
	titleHeight     = 10.0
	requesterHeight = 8.0
	summaryHeight   = 24.0
	headerRowHeight = 8.0
	rowHeight       = 7.0
	footerHeight    = 12.0
)

// Column describes one table column: its header label, width in
// millimeters, and horizontal alignment ("L", "C", or "R").
type Column struct {
	Header string
	Width  float64
	Align  string
}

// Row is one rendered table row, one cell per column.
type Row []string

// Context carries the branding and provenance of a document. Zero-value
// fields fall back to product defaults at layout time.
type Context struct {
	Title            string
	OrganizationName string
	Address          string
	RequestedBy      string
	Month            int
	Year             int
	GeneratedAt      time.Time
}

// Page is one laid-out page: its body rows and its stamped footer.
type Page struct {
	Rows   []Row
	Footer string
}

// Document is a fully laid-out report, ready to paint.
type Document struct {
	Context  Context
	Columns  []Column
	Summary  *money.Summary
	Pages    []Page
	Filename string

	// Empty is set when the record set was empty and the single page
	// carries the placeholder message instead of table rows.
	Empty bool
}

// Spec is the input to Layout.
type Spec struct {
	Context Context
	Columns []Column
	Rows    []Row
	Summary *money.Summary
	Slug    string
}

// TitleLine renders the document title line, e.g.
// "Relatório Financeiro - Dezembro/2025".
func (c Context) TitleLine() string {
	return fmt.Sprintf("%s - %s/%d", c.Title, format.MonthName(c.Month), c.Year)
}

// RequesterLine renders the "requested by" line below the title.
func (c Context) RequesterLine() string {
	name := c.RequestedBy
	if name == "" {
		name = "Administrador"
	}
	return "Solicitado por: " + name
}

// Organization returns the organization name, defaulting to the product
// name when the context has none.
func (c Context) Organization() string {
	if c.OrganizationName == "" {
		return ProductName
	}
	return c.OrganizationName
}

// Subtitle returns the banner subtitle: the organization address, or the
// product's default subtitle when absent.
func (c Context) Subtitle() string {
	if c.Address == "" {
		return DefaultSubtitle
	}
	return c.Address
}

// Layout paginates the spec into a Document. The first pass distributes
// rows across pages using the measured per-page capacity; the second pass
// stamps every footer with the now-final page count.
func Layout(spec Spec) *Document {
	doc := &Document{
		Context:  spec.Context,
		Columns:  spec.Columns,
		Summary:  spec.Summary,
		Filename: Filename(spec.Slug, spec.Context.Month, spec.Context.Year),
	}

	if len(spec.Rows) == 0 {
		doc.Empty = true
		doc.Pages = []Page{{}}
	} else {
		first := rowCapacity(true, spec.Summary != nil)
		rest := rowCapacity(false, false)

		remaining := spec.Rows
		pageIndex := 0
		for len(remaining) > 0 {
			capacity := rest
			if pageIndex == 0 {
				capacity = first
			}
			n := capacity
			if n > len(remaining) {
				n = len(remaining)
			}
			doc.Pages = append(doc.Pages, Page{Rows: remaining[:n]})
			remaining = remaining[n:]
			pageIndex++
		}
	}

	total := len(doc.Pages)
	for i := range doc.Pages {
		doc.Pages[i].Footer = footerText(spec.Context, i+1, total)
	}
	return doc
}

// Filename builds the artifact name from the fixed slug vocabulary:
// "{slug}-{month}-{year}.pdf".
func Filename(slug string, month, year int) string {
	return fmt.Sprintf("%s-%d-%d.pdf", slug, month, year)
}

// rowCapacity measures how many table rows fit on a page. The first page
// loses height to the banner, title block, and (for financial reports)
// the summary panel.
func rowCapacity(firstPage, hasSummary bool) int {
	available := pageHeight - marginTop - marginBottom - footerHeight - headerRowHeight
	if firstPage {
		available -= bannerHeight + titleHeight + requesterHeight
		if hasSummary {
			available -= summaryHeight
		}
	}
	return int(available / rowHeight)
}

// footerText renders the page footer:
// "{product} - {organization} | Página {i} de {N}".
func footerText(c Context, page, total int) string {
	return fmt.Sprintf("%s - %s | Página %d de %d", ProductName, c.Organization(), page, total)
}
