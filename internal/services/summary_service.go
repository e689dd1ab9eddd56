package services

import (
	"fmt"

	"gorm.io/gorm"

	apperrors "pembukuan/internal/errors"
	"pembukuan/internal/models"
)

// summaryService filters transactions by period and owner and rolls them up.
// It keeps no state between calls.
type summaryService struct {
	db           *gorm.DB
	ownerScoping bool
}

// NewSummaryService creates a new SummaryServicer. When ownerScoping is
// false owner filters are ignored.
func NewSummaryService(db *gorm.DB, ownerScoping bool) SummaryServicer {
	return &summaryService{db: db, ownerScoping: ownerScoping}
}

// Summarize lists the transactions of the query period and computes the
// income/expense totals and the per-category expense breakdown. Totals and
// breakdown are rolled up from the listed rows, so one response is always
// consistent with itself.
func (s *summaryService) Summarize(query PeriodQuery) (*PeriodSummary, error) {
	if err := query.Period.Validate(); err != nil {
		return nil, err
	}

	owner := query.Owner
	if !s.ownerScoping {
		owner = nil
	}

	direction := "DESC"
	if query.Order == OldestFirst {
		direction = "ASC"
	}

	var transactions []models.Transaction
	if err := s.db.Model(&models.Transaction{}).
		Scopes(inPeriod(query.Period, owner)).
		Order("date " + direction).Order("id " + direction).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &PeriodSummary{
		Period:       query.Period,
		Owner:        owner,
		Transactions: transactions,
		Breakdown:    make(map[models.Category]int64),
	}
	if summary.Transactions == nil {
		summary.Transactions = []models.Transaction{}
	}

	for i := range transactions {
		tx := &transactions[i]
		switch tx.Kind {
		case models.KindIncome:
			summary.Totals.Income += tx.Amount
		case models.KindExpense:
			summary.Totals.Expense += tx.Amount
			summary.Breakdown[tx.Category] += tx.Amount
		}
		summary.Totals.Balance += tx.SignedAmount()
	}

	return summary, nil
}

// ParseOwnerFilter resolves an owner filter value. "All" and its aliases, or
// an empty value, disable the filter; unknown owners are rejected.
func (s *summaryService) ParseOwnerFilter(value string) (*models.Owner, error) {
	if !s.ownerScoping || models.IsAllOwners(value) {
		return nil, nil
	}
	owner, ok := models.LookupOwner(value)
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidOwner, fmt.Sprintf("unknown owner %q", value))
	}
	return &owner, nil
}

// inPeriod returns a GORM scope restricting rows to the period and, when
// owner is set, to that owner.
func inPeriod(p Period, owner *models.Owner) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("date >= ? AND date < ?", p.Start(), p.End())
		if owner != nil {
			db = db.Where("owner = ?", *owner)
		}
		return db
	}
}
