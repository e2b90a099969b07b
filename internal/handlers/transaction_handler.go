package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "condogest/internal/errors"
	"condogest/internal/format"
	"condogest/internal/middleware"
	"condogest/internal/models"
	"condogest/internal/recordstore"
	"condogest/internal/report"
)

// TransactionHandler proxies the financial transaction CRUD surface of
// the condominium API. Validation runs here, before any upstream call,
// so an invalid payload never leaves the service.
type TransactionHandler struct {
	store recordstore.Client
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(store recordstore.Client) *TransactionHandler {
	return &TransactionHandler{store: store}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
type CreateTransactionRequest struct {
	Direction   string `json:"type" binding:"required,transaction_direction"`
	Description string `json:"description" binding:"required,max=500"`
	Amount      string `json:"amount" binding:"required"`
	Category    string `json:"category" binding:"required,max=100"`
	Date        string `json:"date" binding:"required"`
	Status      string `json:"status" binding:"omitempty,transaction_status"`
	Observation string `json:"observation" binding:"max=1000"`
}

// validateAmount parses a decimal amount string and rejects negatives.
// Direction is an explicit field; amounts are always stored unsigned.
func validateAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid amount, expected a decimal value")
	}
	if amount.IsNegative() {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	return amount, nil
}

// CreateTransaction creates a new financial transaction
// @Summary     Create a transaction
// @Description Create a new income or expense movement for the condominium
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Record store unavailable"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	amount, err := validateAmount(req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if _, err := format.ParseDate(req.Date); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date, expected YYYY-MM-DD"))
		return
	}

	status := models.TransactionStatus(req.Status)
	if status == "" {
		status = models.TransactionPending
	}

	payload := recordstore.TransactionPayload{
		Direction:   models.TransactionDirection(req.Direction),
		Description: req.Description,
		Amount:      amount.StringFixed(2),
		Category:    req.Category,
		Date:        req.Date,
		Status:      status,
		Observation: req.Observation,
	}

	bearer := c.GetString(middleware.ContextBearerToken)
	transaction, err := h.store.CreateTransaction(c.Request.Context(), bearer, payload)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// ListTransactions lists transactions, optionally narrowed to a period
// @Summary     List transactions
// @Description List the condominium's transactions. When month and year are given, the list is narrowed to that period client-side, with an optional category filter.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       month    query int    false "Month (1-12, requires year)"
// @Param       year     query int    false "Year"
// @Param       category query string false "Category filter ('all' disables it)"
// @Success     200 {array} models.Transaction "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Record store unavailable"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var query struct {
		Month    int    `form:"month" binding:"omitempty,report_month"`
		Year     int    `form:"year" binding:"omitempty,report_year"`
		Category string `form:"category"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bearer := c.GetString(middleware.ContextBearerToken)
	transactions, err := h.store.ListTransactions(c.Request.Context(), bearer)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if query.Month != 0 && query.Year != 0 {
		period := report.Period{Month: query.Month, Year: query.Year, Category: query.Category}
		transactions = report.FilterTransactions(transactions, period)
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// UpdateTransactionRequest represents the partial payload for editing a transaction.
type UpdateTransactionRequest struct {
	Direction   *string `json:"type" binding:"omitempty,transaction_direction"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Amount      *string `json:"amount"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
	Date        *string `json:"date"`
	Status      *string `json:"status" binding:"omitempty,transaction_status"`
	Observation *string `json:"observation" binding:"omitempty,max=1000"`
}

// UpdateTransaction edits an existing transaction
// @Summary     Update a transaction
// @Description Update fields of an existing transaction. Omitted fields are left unchanged.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     502 {object} ErrorResponse "Record store unavailable"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := recordstore.TransactionUpdate{
		Description: req.Description,
		Category:    req.Category,
		Observation: req.Observation,
	}

	if req.Direction != nil {
		direction := models.TransactionDirection(*req.Direction)
		update.Direction = &direction
	}
	if req.Status != nil {
		status := models.TransactionStatus(*req.Status)
		update.Status = &status
	}
	if req.Amount != nil {
		amount, err := validateAmount(*req.Amount)
		if err != nil {
			respondWithError(c, err)
			return
		}
		fixed := amount.StringFixed(2)
		update.Amount = &fixed
	}
	if req.Date != nil {
		if _, err := format.ParseDate(*req.Date); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date, expected YYYY-MM-DD"))
			return
		}
		update.Date = req.Date
	}

	bearer := c.GetString(middleware.ContextBearerToken)
	transaction, err := h.store.UpdateTransaction(c.Request.Context(), bearer, c.Param("id"), update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// ToggleStatusRequest is the body for the status toggle endpoint.
type ToggleStatusRequest struct {
	Status string `json:"status" binding:"required,transaction_status"`
}

// ToggleStatus switches a transaction between paid and pending
// @Summary     Toggle transaction status
// @Description Set a transaction's status to paid or pending
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Transaction ID"
// @Param       request body ToggleStatusRequest true "New status"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     502 {object} ErrorResponse "Record store unavailable"
// @Router      /transactions/{id}/status [patch]
func (h *TransactionHandler) ToggleStatus(c *gin.Context) {
	var req ToggleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	status := models.TransactionStatus(req.Status)
	update := recordstore.TransactionUpdate{Status: &status}

	bearer := c.GetString(middleware.ContextBearerToken)
	transaction, err := h.store.UpdateTransaction(c.Request.Context(), bearer, c.Param("id"), update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction removes a transaction
// @Summary     Delete a transaction
// @Description Delete a transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     502 {object} ErrorResponse "Record store unavailable"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	bearer := c.GetString(middleware.ContextBearerToken)
	if err := h.store.DeleteTransaction(c.Request.Context(), bearer, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
