// Package report lays out a period summary as a fixed-width table and
// renders it as a paginated A4 PDF.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"pembukuan/internal/models"
)

// MediaType is the content type of rendered reports.
const MediaType = "application/pdf"

const (
	fontFamily   = "Arial"
	marginSide   = 10.0
	marginTop    = 15.0
	marginBottom = 18.0
	headerHeight = 8.0
	rowHeight    = 7.0
	cellPadding  = 2.0
)

// Options configures a Renderer.
type Options struct {
	CurrencyPrefix string
	Locale         string
	// ShowOwner adds the Owner column and names the owner in title and
	// filename.
	ShowOwner bool
	// Now stamps the document creation date. Defaults to time.Now.
	Now func() time.Time
}

// Document is a rendered report ready to be sent to a client.
type Document struct {
	Bytes     []byte
	Filename  string
	MediaType string
	Pages     int
}

// Renderer turns report inputs into PDF documents. It holds no per-report
// state and is safe for concurrent use.
type Renderer struct {
	money     *MoneyFormatter
	showOwner bool
	now       func() time.Time
}

// NewRenderer creates a Renderer.
func NewRenderer(opts Options) *Renderer {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Renderer{
		money:     NewMoneyFormatter(opts.CurrencyPrefix, opts.Locale),
		showOwner: opts.ShowOwner,
		now:       now,
	}
}

// Money returns the formatter used for amounts.
func (r *Renderer) Money() *MoneyFormatter {
	return r.money
}

// Title returns the report heading for in.
func (r *Renderer) Title(in Input) string {
	if !r.showOwner {
		return fmt.Sprintf("Financial Report - %02d/%d", in.Month, in.Year)
	}
	return fmt.Sprintf("Financial Report %s - %02d/%d", models.OwnerLabel(in.Owner), in.Month, in.Year)
}

// Filename returns the suggested download name for in, for example
// report_Me_2024-03.pdf or report_2024-03.pdf.
func (r *Renderer) Filename(in Input) string {
	if r.showOwner && in.Owner != nil {
		return fmt.Sprintf("report_%s_%04d-%02d.pdf", slug(string(*in.Owner)), in.Year, in.Month)
	}
	return fmt.Sprintf("report_%04d-%02d.pdf", in.Year, in.Month)
}

// Render lays out and renders in.
func (r *Renderer) Render(in Input) (*Document, error) {
	table, err := BuildTable(in, r.money, r.showOwner)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginSide, marginTop, marginSide)
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AliasNbPages("")
	pdf.SetCreationDate(r.now())
	pdf.SetCreator("pembukuan", true)
	title := r.Title(in)
	pdf.SetTitle(title, true)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, AlignCenter, false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 14)
	pdf.CellFormat(0, 10, tr(title), "", 1, AlignCenter, false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(fontFamily, "", 11)
	for _, line := range [][2]string{
		{"Total Income", r.money.Format(in.TotalIncome)},
		{"Total Expense", r.money.Format(in.TotalExpense)},
		{"Balance", r.money.Format(in.Balance())},
	} {
		pdf.CellFormat(40, 7, tr(line[0]), "", 0, AlignLeft, false, 0, "")
		pdf.CellFormat(0, 7, tr(": "+line[1]), "", 1, AlignLeft, false, 0, "")
	}
	pdf.Ln(4)

	header := func() {
		pdf.SetFont(fontFamily, "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for _, c := range table.Columns {
			pdf.CellFormat(c.Width, headerHeight, tr(c.Title), "1", 0, AlignCenter, true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(fontFamily, "", 9)
	}

	_, pageHeight := pdf.GetPageSize()
	limit := pageHeight - marginBottom

	header()
	for _, row := range table.Rows {
		if pdf.GetY()+rowHeight > limit {
			pdf.AddPage()
			header()
		}
		for i, c := range table.Columns {
			text := fit(pdf, tr, row[i], c.Width-cellPadding)
			pdf.CellFormat(c.Width, rowHeight, text, "1", 0, c.Align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if pdf.GetY()+rowHeight > limit {
		pdf.AddPage()
		header()
	}
	income, expense := table.AmountColumns()
	pdf.SetFont(fontFamily, "B", 9)
	pdf.SetFillColor(245, 245, 245)
	pdf.CellFormat(table.LabelWidth(), rowHeight, tr(table.Totals[0]), "1", 0, AlignRight, true, 0, "")
	pdf.CellFormat(income.Width, rowHeight, tr(r.money.Format(table.IncomeSum)), "1", 0, AlignRight, true, 0, "")
	pdf.CellFormat(expense.Width, rowHeight, tr(r.money.Format(table.ExpenseSum)), "1", 1, AlignRight, true, 0, "")

	pages := pdf.PageNo()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: render pdf: %w", err)
	}

	return &Document{
		Bytes:     buf.Bytes(),
		Filename:  r.Filename(in),
		MediaType: MediaType,
		Pages:     pages,
	}, nil
}

// fit translates s for the core fonts and truncates it with an ellipsis
// until it is at most width wide. Truncation works on the UTF-8 input so
// multi-byte characters are never split.
func fit(pdf *fpdf.Fpdf, tr func(string) string, s string, width float64) string {
	out := tr(s)
	if pdf.GetStringWidth(out) <= width {
		return out
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		out = tr(strings.TrimRight(string(runes), " ") + "...")
		if pdf.GetStringWidth(out) <= width {
			return out
		}
	}
	return ""
}

// slug keeps filenames free of spaces and separators.
func slug(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return '_'
	}, s)
}
