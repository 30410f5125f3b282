package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/summer-project-team/crossbridge/internal/pkg/models"
	"github.com/summer-project-team/crossbridge/internal/utils"
	"github.com/summer-project-team/crossbridge/services/wallet"
)

// WalletHandler handles wallet HTTP requests
type WalletHandler struct {
	walletUC wallet.WalletUC
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUC wallet.WalletUC) *WalletHandler {
	return &WalletHandler{walletUC: walletUC}
}

type createWalletRequest struct {
	UserID string `json:"user_id"`
}

// CreateWallet provisions a wallet for a user
func (h *WalletHandler) CreateWallet(c echo.Context) error {
	var req createWalletRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	w, err := h.walletUC.CreateWallet(c.Request().Context(), userID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to create wallet")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Wallet created", w)
}

// GetWallet returns a wallet with all its balances
func (h *WalletHandler) GetWallet(c echo.Context) error {
	walletID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid wallet ID")
	}

	w, err := h.walletUC.GetWallet(c.Request().Context(), walletID)
	if err != nil {
		if errors.Is(err, models.ErrWalletNotFound) {
			return utils.NotFoundResponse(c, "Wallet not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get wallet")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Wallet retrieved", w)
}

// GetBalance returns one currency balance for a wallet
func (h *WalletHandler) GetBalance(c echo.Context) error {
	walletID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid wallet ID")
	}
	currency := c.Param("currency")
	if currency == "" {
		return utils.BadRequestResponse(c, "Currency is required")
	}

	balance, err := h.walletUC.GetBalance(c.Request().Context(), walletID, currency)
	if err != nil {
		if errors.Is(err, models.ErrWalletNotFound) {
			return utils.NotFoundResponse(c, "Wallet not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get balance")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Balance retrieved", map[string]interface{}{
		"wallet_id": walletID,
		"currency":  currency,
		"balance":   balance,
	})
}

// RetireWallet soft-retires a wallet
func (h *WalletHandler) RetireWallet(c echo.Context) error {
	walletID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid wallet ID")
	}

	if err := h.walletUC.RetireWallet(c.Request().Context(), walletID); err != nil {
		if errors.Is(err, models.ErrWalletNotFound) {
			return utils.NotFoundResponse(c, "Wallet not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to retire wallet")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Wallet retired", nil)
}

// GetPool returns a liquidity pool
func (h *WalletHandler) GetPool(c echo.Context) error {
	currency := c.Param("currency")
	if currency == "" {
		return utils.BadRequestResponse(c, "Currency is required")
	}

	pool, err := h.walletUC.GetPool(c.Request().Context(), currency)
	if err != nil {
		if errors.Is(err, models.ErrPoolNotFound) {
			return utils.NotFoundResponse(c, "Pool not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get pool")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pool retrieved", pool)
}

// RebalancePool tops a pool back to its target balance
func (h *WalletHandler) RebalancePool(c echo.Context) error {
	currency := c.Param("currency")
	if currency == "" {
		return utils.BadRequestResponse(c, "Currency is required")
	}

	pool, err := h.walletUC.RebalancePool(c.Request().Context(), currency)
	if err != nil {
		if errors.Is(err, models.ErrPoolNotFound) {
			return utils.NotFoundResponse(c, "Pool not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to rebalance pool")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pool rebalanced", pool)
}
