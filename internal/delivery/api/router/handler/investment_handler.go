package handler

import (
	"net/http"

	"agritoken/internal/delivery/api/response"
	"agritoken/internal/domain/entity"
	"agritoken/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InvestmentHandlerParams holds dependencies for InvestmentHandler, injected by Fx.
type InvestmentHandlerParams struct {
	fx.In

	PlatformUC usecase.PlatformUsecase
	QueryUC    usecase.QueryUsecase
}

// InvestmentHandler serves purchases of asset units and investment listings.
type InvestmentHandler struct {
	platformUC usecase.PlatformUsecase
	queryUC    usecase.QueryUsecase
}

// NewInvestmentHandler is the constructor for InvestmentHandler
func NewInvestmentHandler(params InvestmentHandlerParams) *InvestmentHandler {
	return &InvestmentHandler{
		platformUC: params.PlatformUC,
		queryUC:    params.QueryUC,
	}
}

// InvestRequest represents the request body for buying asset units
type InvestRequest struct {
	AssetID           string `json:"assetId" validate:"required"`
	InvestorAccountID string `json:"investorAccountId" validate:"required"`
	Amount            int64  `json:"amount" validate:"gt=0"`
}

// InvestResponse is returned for a recorded investment
type InvestResponse struct {
	Message    string             `json:"message"`
	Investment *entity.Investment `json:"investment"`
	NewBalance int64              `json:"newBalance"`
}

// Invest handles POST /api/invest
func (h *InvestmentHandler) Invest(c echo.Context) error {
	var req InvestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid investment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	out, err := h.platformUC.Invest(c.Request().Context(), usecase.InvestInput{
		AssetID:           req.AssetID,
		InvestorAccountID: req.InvestorAccountID,
		Amount:            req.Amount,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, InvestResponse{
		Message:    "Investment successful",
		Investment: out.Investment,
		NewBalance: out.NewBalance,
	})
}

// ListInvestments handles GET /api/investments/:accountId
func (h *InvestmentHandler) ListInvestments(c echo.Context) error {
	investments, err := h.queryUC.ListInvestments(c.Request().Context(), c.Param("accountId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, investments)
}
