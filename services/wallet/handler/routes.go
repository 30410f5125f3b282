package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/summer-project-team/crossbridge/internal/pkg/middleware"
)

// RegisterRoutes wires the wallet endpoints onto the Echo instance.
// All endpoints require the internal API key.
func (h *WalletHandler) RegisterRoutes(e *echo.Echo, apiKeys ...string) {
	g := e.Group("/api/v1", middleware.ValidateAPIKey(apiKeys...))

	g.POST("/wallets", h.CreateWallet)
	g.GET("/wallets/:id", h.GetWallet)
	g.GET("/wallets/:id/balances/:currency", h.GetBalance)
	g.DELETE("/wallets/:id", h.RetireWallet)

	g.GET("/pools/:currency", h.GetPool)
	g.POST("/pools/:currency/rebalance", h.RebalancePool)
}
