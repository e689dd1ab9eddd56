package services

import (
	"time"

	"pembukuan/internal/models"
	"pembukuan/internal/pagination"
	"pembukuan/internal/report"
)

// TransactionInput holds the fields of a new transaction.
type TransactionInput struct {
	Date     time.Time
	Category string
	Amount   int64
	Kind     models.Kind
	Note     string
	Owner    string
}

// TransactionUpdateFields holds the fields of an edit. Nil fields are left
// unchanged. An empty Note or Owner clears the stored value.
type TransactionUpdateFields struct {
	Date     *time.Time
	Category *string
	Amount   *int64
	Kind     *models.Kind
	Note     *string
	Owner    *string
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Kind     *models.Kind
	Category *models.Category
	Owner    *models.Owner
}

// TransactionServicer defines the contract for transaction bookkeeping.
type TransactionServicer interface {
	CreateTransaction(input TransactionInput) (*models.Transaction, error)
	GetTransactionByID(id string) (*models.Transaction, error)
	UpdateTransaction(id string, fields TransactionUpdateFields) (*models.Transaction, error)
	DeleteTransaction(id string) error
	ListTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
}

// SortOrder selects the date direction of a period listing.
type SortOrder int

const (
	// NewestFirst is used by the dashboard.
	NewestFirst SortOrder = iota
	// OldestFirst is used by printed reports.
	OldestFirst
)

// PeriodQuery selects the transactions of one period.
type PeriodQuery struct {
	Period Period
	// Owner restricts the query to one owner. Nil means every owner.
	Owner *models.Owner
	Order SortOrder
}

// Totals are the period rollups.
type Totals struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`
}

// PeriodSummary is the read-only result handed to the presentation layer.
type PeriodSummary struct {
	Period       Period                    `json:"period"`
	Owner        *models.Owner             `json:"owner"`
	Transactions []models.Transaction      `json:"transactions"`
	Totals       Totals                    `json:"totals"`
	Breakdown    map[models.Category]int64 `json:"breakdown"`
}

// SummaryServicer defines the contract of the period query and aggregation
// engine.
type SummaryServicer interface {
	Summarize(query PeriodQuery) (*PeriodSummary, error)
	// ParseOwnerFilter turns a request value into an owner predicate.
	ParseOwnerFilter(value string) (*models.Owner, error)
}

// ExportRequest selects the period and owner of a report.
type ExportRequest struct {
	Period Period
	Owner  *models.Owner
}

// ReportServicer defines the contract of the export pipeline.
type ReportServicer interface {
	Preview(req ExportRequest) (*ReportPreview, error)
	Export(req ExportRequest) (*report.Document, error)
}

// ReportPreview is the JSON rendition of a report: the chronological summary
// plus the strings the PDF prints.
type ReportPreview struct {
	Title     string          `json:"title"`
	Filename  string          `json:"filename"`
	Summary   *PeriodSummary  `json:"summary"`
	Formatted FormattedTotals `json:"formatted"`
}

// FormattedTotals are Totals rendered as money strings.
type FormattedTotals struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
}
