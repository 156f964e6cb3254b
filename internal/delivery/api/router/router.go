// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agritoken/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FarmerHandler     *handler.FarmerHandler
	AssetHandler      *handler.AssetHandler
	InvestmentHandler *handler.InvestmentHandler
	LedgerHandler     *handler.LedgerHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	farmerHandler     *handler.FarmerHandler
	assetHandler      *handler.AssetHandler
	investmentHandler *handler.InvestmentHandler
	ledgerHandler     *handler.LedgerHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		farmerHandler:     params.FarmerHandler,
		assetHandler:      params.AssetHandler,
		investmentHandler: params.InvestmentHandler,
		ledgerHandler:     params.LedgerHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", r.ledgerHandler.Health)

	// Accounts and ratings
	api.POST("/farmers", r.farmerHandler.RegisterFarmer)
	api.GET("/users/:accountId", r.farmerHandler.GetUser)
	api.GET("/farmer-assets/:farmerId", r.farmerHandler.ListFarmerAssets)
	api.POST("/rate-farm", r.farmerHandler.RateFarm)

	// Assets
	api.POST("/tokenize", r.assetHandler.Tokenize)
	api.GET("/assets", r.assetHandler.ListAssets)
	api.GET("/assets/:assetId/qr", r.assetHandler.AssetShareQR)
	api.POST("/distribute", r.assetHandler.Distribute)

	// Investments
	api.POST("/invest", r.investmentHandler.Invest)
	api.GET("/investments/:accountId", r.investmentHandler.ListInvestments)

	// Ledger passthroughs
	api.GET("/balance/:accountId", r.ledgerHandler.GetBalance)
	api.POST("/associate", r.ledgerHandler.Associate)
}
