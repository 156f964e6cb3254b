package handler

import (
	"net/http"

	"agritoken/internal/delivery/api/response"
	"agritoken/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LedgerHandlerParams holds dependencies for LedgerHandler, injected by Fx.
type LedgerHandlerParams struct {
	fx.In

	PlatformUC usecase.PlatformUsecase
	QueryUC    usecase.QueryUsecase
}

// LedgerHandler exposes ledger passthroughs and the health report.
type LedgerHandler struct {
	platformUC usecase.PlatformUsecase
	queryUC    usecase.QueryUsecase
}

// NewLedgerHandler is the constructor for LedgerHandler
func NewLedgerHandler(params LedgerHandlerParams) *LedgerHandler {
	return &LedgerHandler{
		platformUC: params.PlatformUC,
		queryUC:    params.QueryUC,
	}
}

// AssociateRequest represents the request body for a token association
type AssociateRequest struct {
	AccountID string `json:"accountId" validate:"required"`
	TokenID   string `json:"tokenId" validate:"required"`
}

// AssociateResponse carries the association transaction id
type AssociateResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
}

// GetBalance handles GET /api/balance/:accountId
func (h *LedgerHandler) GetBalance(c echo.Context) error {
	balance, err := h.queryUC.GetBalance(c.Request().Context(), c.Param("accountId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, balance)
}

// Associate handles POST /api/associate
func (h *LedgerHandler) Associate(c echo.Context) error {
	var req AssociateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid association input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	txID, err := h.platformUC.AssociateAccount(c.Request().Context(), req.AccountID, req.TokenID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AssociateResponse{Status: "success", TransactionID: txID})
}

// Health handles GET /api/health
func (h *LedgerHandler) Health(c echo.Context) error {
	report, err := h.queryUC.Health(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
