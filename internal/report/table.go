package report

import (
	"errors"
	"fmt"

	"pembukuan/internal/models"
)

// ErrTotalsMismatch is returned when the summed table columns disagree with
// the totals of the period summary.
var ErrTotalsMismatch = errors.New("report: column totals do not match summary totals")

// Input is everything the export pipeline needs to lay out one report.
type Input struct {
	Month int
	Year  int
	// Owner is nil when the report covers every owner.
	Owner *models.Owner
	// Transactions must already be in chronological order.
	Transactions []models.Transaction
	TotalIncome  int64
	TotalExpense int64
}

// Balance is income minus expense.
func (in Input) Balance() int64 {
	return in.TotalIncome - in.TotalExpense
}

// Alignment of a cell, in fpdf notation.
const (
	AlignLeft   = "L"
	AlignCenter = "C"
	AlignRight  = "R"
)

// Column describes one fixed-width table column. Widths are millimetres.
type Column struct {
	Title string
	Width float64
	Align string
}

// Table is the laid-out content of the report table before rendering.
type Table struct {
	Columns []Column
	Rows    [][]string
	// Totals is the formatted bottom row.
	Totals []string

	IncomeSum  int64
	ExpenseSum int64

	// amountFrom is the index of the Income column; Expense follows it.
	amountFrom int
}

var (
	columnsWithOwner = []Column{
		{Title: "Date", Width: 24, Align: AlignCenter},
		{Title: "Category", Width: 32, Align: AlignLeft},
		{Title: "Owner", Width: 24, Align: AlignLeft},
		{Title: "Note", Width: 50, Align: AlignLeft},
		{Title: "Income", Width: 30, Align: AlignRight},
		{Title: "Expense", Width: 30, Align: AlignRight},
	}
	columnsWithoutOwner = []Column{
		{Title: "Date", Width: 24, Align: AlignCenter},
		{Title: "Category", Width: 36, Align: AlignLeft},
		{Title: "Note", Width: 70, Align: AlignLeft},
		{Title: "Income", Width: 30, Align: AlignRight},
		{Title: "Expense", Width: 30, Align: AlignRight},
	}
)

// BuildTable lays out one row per transaction and the totals row. The
// amount goes into the Income or Expense column according to its kind. The
// column sums are checked against in.TotalIncome and in.TotalExpense.
func BuildTable(in Input, money *MoneyFormatter, showOwner bool) (*Table, error) {
	t := &Table{Columns: columnsWithoutOwner}
	if showOwner {
		t.Columns = columnsWithOwner
	}
	t.amountFrom = len(t.Columns) - 2

	for i := range in.Transactions {
		tx := &in.Transactions[i]

		row := []string{FormatDate(tx.Date), string(tx.Category)}
		if showOwner {
			owner := "-"
			if tx.Owner != nil {
				owner = string(*tx.Owner)
			}
			row = append(row, owner)
		}
		note := ""
		if tx.Note != nil {
			note = *tx.Note
		}
		row = append(row, note)

		switch tx.Kind {
		case models.KindIncome:
			t.IncomeSum += tx.Amount
			row = append(row, money.Format(tx.Amount), "")
		case models.KindExpense:
			t.ExpenseSum += tx.Amount
			row = append(row, "", money.Format(tx.Amount))
		default:
			return nil, fmt.Errorf("report: transaction %s has unknown kind %q", tx.ID, tx.Kind)
		}
		t.Rows = append(t.Rows, row)
	}

	if t.IncomeSum != in.TotalIncome || t.ExpenseSum != in.TotalExpense {
		return nil, fmt.Errorf("%w: income %d/%d, expense %d/%d", ErrTotalsMismatch,
			t.IncomeSum, in.TotalIncome, t.ExpenseSum, in.TotalExpense)
	}

	t.Totals = make([]string, len(t.Columns))
	t.Totals[0] = "Total"
	t.Totals[t.amountFrom] = money.Format(t.IncomeSum)
	t.Totals[t.amountFrom+1] = money.Format(t.ExpenseSum)

	return t, nil
}

// LabelWidth is the combined width of the columns left of Income, used for
// the merged "Total" cell.
func (t *Table) LabelWidth() float64 {
	var w float64
	for _, c := range t.Columns[:t.amountFrom] {
		w += c.Width
	}
	return w
}

// AmountColumns returns the Income and Expense columns.
func (t *Table) AmountColumns() (income, expense Column) {
	return t.Columns[t.amountFrom], t.Columns[t.amountFrom+1]
}
