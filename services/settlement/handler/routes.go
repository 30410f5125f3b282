package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/summer-project-team/crossbridge/internal/pkg/middleware"
)

// RegisterRoutes wires the settlement endpoints onto the Echo instance.
// All endpoints require the internal API key.
func (h *SettlementHandler) RegisterRoutes(e *echo.Echo, apiKeys ...string) {
	g := e.Group("/api/v1", middleware.ValidateAPIKey(apiKeys...))

	g.POST("/transactions", h.CreateTransaction)
	g.POST("/transactions/optimistic", h.CreateOptimistic)
	g.GET("/transactions/:id", h.GetTransaction)
	g.GET("/transactions/reference/:reference", h.GetByReference)
	g.GET("/transactions/:id/ledger", h.GetLedger)

	g.POST("/transactions/:id/process", h.ProcessTransaction)
	g.POST("/transactions/:id/complete", h.CompleteTransaction)
	g.POST("/transactions/:id/cancel", h.CancelTransaction)
	g.POST("/transactions/:id/refund", h.RefundTransaction)
	g.POST("/transactions/:id/retry", h.RetryTransaction)
	g.GET("/transactions/:id/retry", h.GetRetryState)

	g.GET("/wallets/:id/transactions", h.ListByWallet)
	g.GET("/wallets/:id/volume/daily", h.GetDailyVolume)
}
