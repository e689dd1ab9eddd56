package report

import (
	"bytes"
	"testing"
	"time"

	"pembukuan/internal/models"
)

func newTestRenderer(showOwner bool) *Renderer {
	return NewRenderer(Options{
		CurrencyPrefix: "Rp",
		Locale:         "id",
		ShowOwner:      showOwner,
		Now:            func() time.Time { return time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC) },
	})
}

func TestRenderer_Render(t *testing.T) {
	doc, err := newTestRenderer(true).Render(sampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(doc.Bytes, []byte("%PDF-")) {
		t.Errorf("expected PDF header, got %q", doc.Bytes[:8])
	}
	if doc.MediaType != "application/pdf" {
		t.Errorf("expected application/pdf, got %q", doc.MediaType)
	}
	if doc.Filename != "report_Me_2024-03.pdf" {
		t.Errorf("unexpected filename %q", doc.Filename)
	}
	if doc.Pages != 1 {
		t.Errorf("expected 1 page, got %d", doc.Pages)
	}
}

func TestRenderer_Paginates(t *testing.T) {
	in := Input{Month: 1, Year: 2024}
	for i := 0; i < 120; i++ {
		note := "a fairly long note that will not fit inside the note column of the table"
		in.Transactions = append(in.Transactions, models.Transaction{
			Date:     time.Date(2024, 1, 1+i%28, 0, 0, 0, 0, time.UTC),
			Kind:     models.KindExpense,
			Amount:   1000,
			Category: models.CategoryShopping,
			Note:     &note,
		})
		in.TotalExpense += 1000
	}

	doc, err := newTestRenderer(true).Render(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Pages < 3 {
		t.Errorf("expected at least 3 pages for 120 rows, got %d", doc.Pages)
	}
}

func TestRenderer_RejectsMismatchedTotals(t *testing.T) {
	in := sampleInput()
	in.TotalIncome++
	if _, err := newTestRenderer(true).Render(in); err == nil {
		t.Fatal("expected error for mismatched totals")
	}
}

func TestRenderer_TitleAndFilename(t *testing.T) {
	all := Input{Month: 3, Year: 2024}
	withOwner := Input{Month: 3, Year: 2024, Owner: ownerPtr(models.OwnerFather)}

	scoped := newTestRenderer(true)
	if got := scoped.Title(all); got != "Financial Report All - 03/2024" {
		t.Errorf("unexpected title %q", got)
	}
	if got := scoped.Title(withOwner); got != "Financial Report Father - 03/2024" {
		t.Errorf("unexpected title %q", got)
	}
	if got := scoped.Filename(all); got != "report_2024-03.pdf" {
		t.Errorf("unexpected filename %q", got)
	}

	unscoped := newTestRenderer(false)
	if got := unscoped.Title(withOwner); got != "Financial Report - 03/2024" {
		t.Errorf("unexpected title %q", got)
	}
	if got := unscoped.Filename(withOwner); got != "report_2024-03.pdf" {
		t.Errorf("unexpected filename %q", got)
	}
}

func TestSlug(t *testing.T) {
	if got := slug("Food & Drink"); got != "Food___Drink" {
		t.Errorf("unexpected slug %q", got)
	}
}
