package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
	"github.com/summer-project-team/crossbridge/internal/utils"
	"github.com/summer-project-team/crossbridge/services/settlement"
)

// SettlementHandler handles transaction HTTP requests
type SettlementHandler struct {
	settlementUC settlement.SettlementUC
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(settlementUC settlement.SettlementUC) *SettlementHandler {
	return &SettlementHandler{settlementUC: settlementUC}
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

type retryRequest struct {
	Reason string `json:"reason"`
}

// CreateTransaction creates a transaction in the initiated state
func (h *SettlementHandler) CreateTransaction(c echo.Context) error {
	var spec models.TransactionSpec
	if err := c.Bind(&spec); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	txn, err := h.settlementUC.Create(c.Request().Context(), spec)
	if err != nil {
		return settlementError(c, err, "Failed to create transaction")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created", txn)
}

// CreateOptimistic creates a transaction and settles it through the
// optimistic pre-commit path.
func (h *SettlementHandler) CreateOptimistic(c echo.Context) error {
	var spec models.TransactionSpec
	if err := c.Bind(&spec); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	txn, err := h.settlementUC.ProcessWithPreCommit(c.Request().Context(), spec)
	if err != nil && txn == nil {
		return settlementError(c, err, "Failed to process transaction")
	}
	// A failed validation still produced a terminal transaction record;
	// return it with the failure visible in its status.
	return utils.SuccessResponse(c, http.StatusCreated, "Transaction processed", txn)
}

// GetTransaction returns a transaction by id
func (h *SettlementHandler) GetTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	txn, err := h.settlementUC.GetTransaction(c.Request().Context(), id)
	if err != nil {
		return settlementError(c, err, "Failed to get transaction")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved", txn)
}

// GetByReference returns a transaction by its human-readable reference
func (h *SettlementHandler) GetByReference(c echo.Context) error {
	reference := c.Param("reference")
	if reference == "" {
		return utils.BadRequestResponse(c, "Reference is required")
	}

	txn, err := h.settlementUC.GetByReference(c.Request().Context(), reference)
	if err != nil {
		return settlementError(c, err, "Failed to get transaction")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved", txn)
}

// GetLedger returns the full event history for a transaction
func (h *SettlementHandler) GetLedger(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	events, err := h.settlementUC.ListLedger(c.Request().Context(), id)
	if err != nil {
		return settlementError(c, err, "Failed to get ledger events")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ledger events retrieved", events)
}

// ListByWallet returns a wallet's transaction history
func (h *SettlementHandler) ListByWallet(c echo.Context) error {
	walletID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid wallet ID")
	}

	limit := intQueryParam(c, "limit", 50)
	offset := intQueryParam(c, "offset", 0)

	txns, err := h.settlementUC.ListByWallet(c.Request().Context(), walletID, limit, offset)
	if err != nil {
		return settlementError(c, err, "Failed to list transactions")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved", txns)
}

// ProcessTransaction moves a transaction to processing
func (h *SettlementHandler) ProcessTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	txn, err := h.settlementUC.Process(c.Request().Context(), id)
	if err != nil {
		return settlementError(c, err, "Failed to process transaction")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transaction processing", txn)
}

// CompleteTransaction performs the money movement and finalizes the
// transaction. Completing an already-completed transaction is a no-op.
func (h *SettlementHandler) CompleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	txn, err := h.settlementUC.Complete(c.Request().Context(), id)
	if err != nil {
		return settlementError(c, err, "Failed to complete transaction")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transaction completed", txn)
}

// CancelTransaction aborts a transaction still in initiated or processing
func (h *SettlementHandler) CancelTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req cancelRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.Reason == "" {
		req.Reason = "cancelled by caller"
	}

	txn, err := h.settlementUC.Cancel(c.Request().Context(), id, req.Reason)
	if err != nil {
		return settlementError(c, err, "Failed to cancel transaction")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transaction cancelled", txn)
}

// RetryTransaction schedules a manual re-drive of a failed transaction.
// The usual attempt budget still applies.
func (h *SettlementHandler) RetryTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req retryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.Reason == "" {
		req.Reason = "manual re-drive requested"
	}

	if err := h.settlementUC.ScheduleRetry(c.Request().Context(), id, req.Reason, models.TriggerManual); err != nil {
		return settlementError(c, err, "Failed to schedule retry")
	}
	return utils.SuccessResponse(c, http.StatusAccepted, "Retry scheduled", nil)
}

// GetRetryState returns the retry record for a transaction
func (h *SettlementHandler) GetRetryState(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	record, err := h.settlementUC.GetRetryRecord(c.Request().Context(), id)
	if err != nil {
		return settlementError(c, err, "Failed to get retry record")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Retry record retrieved", record)
}

// GetDailyVolume returns today's settled volume for a wallet
func (h *SettlementHandler) GetDailyVolume(c echo.Context) error {
	walletID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid wallet ID")
	}

	volume, err := h.settlementUC.GetDailyVolume(c.Request().Context(), walletID)
	if err != nil {
		return settlementError(c, err, "Failed to get daily volume")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Daily volume retrieved", map[string]interface{}{
		"wallet_id": walletID,
		"volume":    volume,
	})
}

// RefundTransaction reverses a completed transaction
func (h *SettlementHandler) RefundTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	refund, err := h.settlementUC.Refund(c.Request().Context(), id)
	if err != nil {
		return settlementError(c, err, "Failed to refund transaction")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transaction refunded", refund)
}

// settlementError maps engine errors onto HTTP statuses: spec problems are
// 400, missing records 404, business rule violations 422, transition races
// 409, everything else 500.
func settlementError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, models.ErrInvalidSpec):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrTransactionNotFound),
		errors.Is(err, models.ErrWalletNotFound),
		errors.Is(err, models.ErrPoolNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, models.ErrInsufficientFunds),
		errors.Is(err, models.ErrPoolInsufficient),
		errors.Is(err, models.ErrValidationFailed),
		errors.Is(err, models.ErrMaxRetriesExceeded),
		errors.Is(err, models.ErrExternalSettlementFailed):
		return utils.UnprocessableResponse(c, err.Error())
	case models.IsIllegalTransition(err):
		return utils.ConflictResponse(c, err.Error())
	}
	return utils.InternalServerErrorResponse(c, fallback)
}

func intQueryParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
