package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pembukuan/internal/errors"
	"pembukuan/internal/models"
	"pembukuan/internal/pagination"
	"pembukuan/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Date     string `json:"date" binding:"required,iso_date" example:"2024-03-05"`
	Category string `json:"category" binding:"max=50" example:"Salary"`
	Amount   *int64 `json:"amount" binding:"required,min=0" example:"5000000"`
	Kind     string `json:"kind" binding:"required,transaction_kind" example:"income"`
	Note     string `json:"note" binding:"max=500"`
	Owner    string `json:"owner" binding:"max=50" example:"Me"`
}

// TransactionResponse wraps a single transaction
type TransactionResponse struct {
	Transaction models.Transaction `json:"transaction"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an income or expense. Unknown categories and owners fall back to Other.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}
	kind, ok := models.ParseKind(req.Kind)
	if !ok {
		respondWithError(c, apperrors.ErrInvalidTransactionKind)
		return
	}
	if req.Amount == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount is required"))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(services.TransactionInput{
		Date:     date,
		Category: req.Category,
		Amount:   *req.Amount,
		Kind:     kind,
		Note:     req.Note,
		Owner:    req.Owner,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// ListTransactions handles the retrieval of the ledger
// @Summary     List transactions
// @Description Get a paginated list of transactions, newest first, with optional filters
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       from_date query string false "Filter by start date (YYYY-MM-DD)"
// @Param       to_date   query string false "Filter by end date, inclusive (YYYY-MM-DD)"
// @Param       kind      query string false "Filter by kind (income, expense)"
// @Param       category  query string false "Filter by category"
// @Param       owner     query string false "Filter by owner (All for every owner)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.ListTransactions(page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	if v := c.Query("from_date"); v != "" {
		t, err := parseDate("from_date", v)
		if err != nil {
			return filter, err
		}
		filter.FromDate = &t
	}

	if v := c.Query("to_date"); v != "" {
		t, err := parseDate("to_date", v)
		if err != nil {
			return filter, err
		}
		filter.ToDate = &t
	}

	if v := c.Query("kind"); v != "" {
		kind, ok := models.ParseKind(v)
		if !ok {
			return filter, apperrors.ErrInvalidTransactionKind
		}
		filter.Kind = &kind
	}

	if v := c.Query("category"); v != "" {
		category, ok := models.LookupCategory(v)
		if !ok {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown category "+v)
		}
		filter.Category = &category
	}

	if v := c.Query("owner"); !models.IsAllOwners(v) {
		owner, ok := models.LookupOwner(v)
		if !ok {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidOwner, "unknown owner "+v)
		}
		filter.Owner = &owner
	}

	return filter, nil
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Description Get a specific transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} TransactionResponse "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransactionRequest represents the request payload for updating a transaction.
// Omitted fields are left unchanged; an empty note or owner clears it.
type UpdateTransactionRequest struct {
	Date     *string `json:"date" binding:"omitempty,iso_date"`
	Category *string `json:"category" binding:"omitempty,max=50"`
	Amount   *int64  `json:"amount" binding:"omitempty,min=0"`
	Kind     *string `json:"kind" binding:"omitempty,transaction_kind"`
	Note     *string `json:"note" binding:"omitempty,max=500"`
	Owner    *string `json:"owner" binding:"omitempty,max=50"`
}

// UpdateTransaction handles updating an existing transaction
// @Summary     Update transaction
// @Description Replace any subset of date, category, amount, kind, note and owner. The id never changes.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} TransactionResponse "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	txID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	updateFields := services.TransactionUpdateFields{
		Category: req.Category,
		Amount:   req.Amount,
		Note:     req.Note,
		Owner:    req.Owner,
	}

	if req.Date != nil {
		parsed, parseErr := parseDate("date", *req.Date)
		if parseErr != nil {
			respondWithError(c, parseErr)
			return
		}
		updateFields.Date = &parsed
	}

	if req.Kind != nil {
		kind, ok := models.ParseKind(*req.Kind)
		if !ok {
			respondWithError(c, apperrors.ErrInvalidTransactionKind)
			return
		}
		updateFields.Kind = &kind
	}

	transaction, err := h.transactionService.UpdateTransaction(txID, updateFields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Description Permanently delete a transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
