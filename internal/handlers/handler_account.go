package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bank_account_app/internal/apperrors"
	portssvc "github.com/SscSPs/bank_account_app/internal/core/ports/services"
	"github.com/SscSPs/bank_account_app/internal/dto"
	"github.com/SscSPs/bank_account_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// RegisterAccountRoutes registers routes related to accounts.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.openAccount)
		accounts.POST("/:id/credit", h.credit)
		accounts.POST("/:id/debit", h.debit)
		accounts.GET("/:id/balance", h.getBalance)
	}
}

// openAccount godoc
// @Summary Open a new account
// @Description Opens a zero-balance account in the requested currency
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.OpenAccountRequest true "Account currency"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or unsupported currency"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to open account"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) openAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for openAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to open account", slog.String("currency_code", req.CurrencyCode))

	account, err := h.accountService.OpenAccount(c.Request.Context(), req)
	if err != nil {
		respondWithDomainError(c, logger, err, "Failed to open account")
		return
	}

	logger.Info("Account opened successfully", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, account)
}

// credit godoc
// @Summary Credit an account
// @Description Adds funds to the account; the amount is in minor units
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   transaction body dto.TransactionRequest true "Amount and currency"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid input or currency mismatch"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to credit account"
// @Security BearerAuth
// @Router /accounts/{id}/credit [post]
func (h *accountHandler) credit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for credit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("account_id", accountID))
	logger.Info("Received request to credit account", slog.Int64("amount", req.Amount))

	balance, err := h.accountService.Credit(c.Request.Context(), accountID, req)
	if err != nil {
		respondWithDomainError(c, logger, err, "Failed to credit account")
		return
	}

	logger.Info("Account credited successfully")
	c.JSON(http.StatusOK, balance)
}

// debit godoc
// @Summary Debit an account
// @Description Withdraws funds plus a 0.5% transaction fee, limited to 3 debits per calendar day
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   transaction body dto.TransactionRequest true "Amount, currency and transaction date"
// @Success 200 {object} dto.DebitResponse
// @Failure 400 {object} map[string]string "Invalid input or currency mismatch"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Daily debit limit reached"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Failure 500 {object} map[string]string "Failed to debit account"
// @Security BearerAuth
// @Router /accounts/{id}/debit [post]
func (h *accountHandler) debit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for debit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("account_id", accountID))
	logger.Info("Received request to debit account", slog.Int64("amount", req.Amount))

	result, err := h.accountService.Debit(c.Request.Context(), accountID, req)
	if err != nil {
		respondWithDomainError(c, logger, err, "Failed to debit account")
		return
	}

	logger.Info("Account debited successfully", slog.Int64("fee", result.Fee))
	c.JSON(http.StatusOK, result)
}

// getBalance godoc
// @Summary Get account balance
// @Description Returns the current balance of the account in minor units
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Security BearerAuth
// @Router /accounts/{id}/balance [get]
func (h *accountHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	logger = logger.With(slog.String("account_id", accountID))
	logger.Info("Received request to get balance")

	balance, err := h.accountService.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		respondWithDomainError(c, logger, err, "Failed to retrieve balance")
		return
	}

	c.JSON(http.StatusOK, balance)
}

// respondWithDomainError maps domain errors to HTTP responses. Domain errors
// reach this boundary unchanged; anything unrecognized is a 500.
func respondWithDomainError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Account not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
	case errors.Is(err, apperrors.ErrInvalidCurrencyCode),
		errors.Is(err, apperrors.ErrNegativeAmount),
		errors.Is(err, apperrors.ErrCurrencyMismatch),
		errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		logger.Warn("Insufficient funds", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDailyDebitLimitReached):
		logger.Warn("Daily debit limit reached", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAmountOverflow):
		logger.Warn("Amount overflow", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
