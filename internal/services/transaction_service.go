package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "pembukuan/internal/errors"
	"pembukuan/internal/logger"
	"pembukuan/internal/models"
	"pembukuan/internal/pagination"
)

// transactionService handles transaction bookkeeping.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction validates input and inserts a new transaction
func (s *transactionService) CreateTransaction(input TransactionInput) (*models.Transaction, error) {
	if input.Amount < 0 {
		return nil, apperrors.ErrNegativeAmount
	}
	if !input.Kind.Valid() {
		return nil, apperrors.ErrInvalidTransactionKind
	}
	if input.Date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}

	transaction := &models.Transaction{
		Date:     models.NormalizeDate(input.Date),
		Category: models.ParseCategory(input.Category),
		Amount:   input.Amount,
		Kind:     input.Kind,
		Note:     optionalText(input.Note),
		Owner:    models.ParseOwner(input.Owner),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(transaction).Error
	})
	if err != nil {
		logger.Get().Errorw("failed to create transaction", "error", err, "kind", input.Kind, "amount", input.Amount)
		return nil, apperrors.Wrap(apperrors.ErrTransactionSaveFailed, err)
	}
	return transaction, nil
}

// GetTransactionByID retrieves a transaction by ID
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	return findTransaction(s.db, id)
}

func findTransaction(db *gorm.DB, id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction replaces the supplied fields of a transaction. The row
// is read and written inside one database transaction.
func (s *transactionService) UpdateTransaction(id string, fields TransactionUpdateFields) (*models.Transaction, error) {
	if fields.Amount != nil && *fields.Amount < 0 {
		return nil, apperrors.ErrNegativeAmount
	}
	if fields.Kind != nil && !fields.Kind.Valid() {
		return nil, apperrors.ErrInvalidTransactionKind
	}
	if fields.Date != nil && fields.Date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must not be empty")
	}

	var result *models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		transaction, err := findTransaction(tx, id)
		if err != nil {
			return err
		}

		if fields.Date != nil {
			transaction.Date = models.NormalizeDate(*fields.Date)
		}
		if fields.Category != nil {
			transaction.Category = models.ParseCategory(*fields.Category)
		}
		if fields.Amount != nil {
			transaction.Amount = *fields.Amount
		}
		if fields.Kind != nil {
			transaction.Kind = *fields.Kind
		}
		if fields.Note != nil {
			transaction.Note = optionalText(*fields.Note)
		}
		if fields.Owner != nil {
			transaction.Owner = models.ParseOwner(*fields.Owner)
		}

		if err := tx.Save(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrTransactionSaveFailed, err)
		}
		result = transaction
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Internal != nil {
			logger.Get().Errorw("failed to update transaction", "error", appErr.Internal, "id", id)
		}
		return nil, err
	}
	return result, nil
}

// DeleteTransaction removes a transaction. A missing row is reported as
// TRANSACTION_NOT_FOUND and a store failure as TRANSACTION_DELETE_FAILED;
// neither is swallowed.
func (s *transactionService) DeleteTransaction(id string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&models.Transaction{})
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrTransactionDeleteFailed, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrTransactionNotFound
		}
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Internal != nil {
			logger.Get().Errorw("failed to delete transaction", "error", appErr.Internal, "id", id)
		}
		return err
	}
	return nil
}

// ListTransactions retrieves a paginated, filtered list of transactions, newest first.
func (s *transactionService) ListTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := applyTransactionFilters(s.db.Model(&models.Transaction{}), filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").Order("id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", models.NormalizeDate(*f.FromDate))
	}
	if f.ToDate != nil {
		// inclusive of the whole ToDate day
		q = q.Where("date < ?", models.NormalizeDate(*f.ToDate).AddDate(0, 0, 1))
	}
	if f.Kind != nil {
		q = q.Where("kind = ?", *f.Kind)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.Owner != nil {
		q = q.Where("owner = ?", *f.Owner)
	}
	return q
}

func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
