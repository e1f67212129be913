package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"sales_tracker/internal/sales"
)

// Builder accumulates typed report sections on a single PDF page flow and
// serializes them in one pass. Sections render in the order they are added.
type Builder struct {
	pdf *fpdf.Fpdf
}

// NewBuilder starts an empty A4 portrait document.
func NewBuilder() *Builder {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	return &Builder{pdf: pdf}
}

// AddTitle writes a centered title block.
func (b *Builder) AddTitle(title string) *Builder {
	b.pdf.SetFont("Arial", "B", 20)
	b.pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	b.pdf.Ln(10)
	return b
}

// AddDetailTable writes one bordered row per record, in ledger order, with
// fixed-width cells and a filled header. Dates render as YYYY-MM-DD or the
// literal "Invalid Date" placeholder when they do not parse.
func (b *Builder) AddDetailTable(records []sales.SaleRecord) *Builder {
	b.pdf.SetFillColor(200, 220, 255)
	b.pdf.SetFont("Arial", "B", 12)
	for _, h := range sales.Header {
		b.pdf.CellFormat(50, 10, h, "1", 0, "C", true, 0, "")
	}
	b.pdf.Ln(-1)

	b.pdf.SetFont("Arial", "", 12)
	for _, r := range records {
		b.pdf.CellFormat(50, 10, r.ProductName, "1", 0, "", false, 0, "")
		b.pdf.CellFormat(50, 10, r.SalesAmount, "1", 0, "", false, 0, "")
		b.pdf.CellFormat(50, 10, r.DateLabel(), "1", 0, "", false, 0, "")
		b.pdf.CellFormat(50, 10, r.Customer, "1", 0, "", false, 0, "")
		b.pdf.Ln(-1)
	}
	return b
}

// AddSummary writes the total sales amount and the total entry count,
// non-numeric amounts coerced to zero.
func (b *Builder) AddSummary(records []sales.SaleRecord) *Builder {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount())
	}

	b.heading("Summary")
	b.line(fmt.Sprintf("Total Sales Amount: %s", total))
	b.line(fmt.Sprintf("Total Number of Entries: %d", len(records)))
	return b
}

// AddProductTotals writes one line per product with its summed amount.
func (b *Builder) AddProductTotals(totals []sales.ProductTotal) *Builder {
	b.heading("Total Sales Per Product")
	for _, t := range totals {
		b.line(fmt.Sprintf("%s: %s", t.Product, t.Total))
	}
	return b
}

// AddTopSellers writes the top-selling ranking, best first.
func (b *Builder) AddTopSellers(ranked []sales.ProductTotal) *Builder {
	b.heading("Top Selling Items")
	for _, t := range ranked {
		b.line(fmt.Sprintf("%s: %s", t.Product, t.Total))
	}
	return b
}

// Output serializes the accumulated sections to w.
func (b *Builder) Output(w io.Writer) error {
	if err := b.pdf.Output(w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (b *Builder) heading(text string) {
	b.pdf.Ln(10)
	b.pdf.SetFont("Arial", "B", 14)
	b.pdf.CellFormat(0, 10, text, "", 1, "", false, 0, "")
	b.pdf.SetFont("Arial", "", 12)
}

func (b *Builder) line(text string) {
	b.pdf.CellFormat(0, 10, text, "", 1, "", false, 0, "")
}

// DetailReport renders the full sales data report: title, the per-record
// table, then the summary sections in fixed order.
func DetailReport(records []sales.SaleRecord, w io.Writer) error {
	totals := sales.TotalsByProduct(records)
	return NewBuilder().
		AddTitle("Sales Data Report").
		AddDetailTable(records).
		AddSummary(records).
		AddProductTotals(totals).
		AddTopSellers(sales.TopN(totals, sales.TopSellerCount)).
		Output(w)
}

// SummaryReport renders the summary document without the per-record table:
// title, totals, per-product totals, top-selling ranking.
func SummaryReport(records []sales.SaleRecord, w io.Writer) error {
	totals := sales.TotalsByProduct(records)
	return NewBuilder().
		AddTitle("Sales Summary Report").
		AddSummary(records).
		AddProductTotals(totals).
		AddTopSellers(sales.TopN(totals, sales.TopSellerCount)).
		Output(w)
}
