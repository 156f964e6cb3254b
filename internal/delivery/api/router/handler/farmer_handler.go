package handler

import (
	"log/slog"
	"net/http"

	"agritoken/internal/delivery/api/response"
	"agritoken/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FarmerHandlerParams holds dependencies for FarmerHandler, injected by Fx.
type FarmerHandlerParams struct {
	fx.In

	PlatformUC usecase.PlatformUsecase
	QueryUC    usecase.QueryUsecase
	Logger     *slog.Logger
}

// FarmerHandler serves account registration, ratings and account lookups.
type FarmerHandler struct {
	platformUC usecase.PlatformUsecase
	queryUC    usecase.QueryUsecase
	logger     *slog.Logger
}

// NewFarmerHandler is the constructor for FarmerHandler
func NewFarmerHandler(params FarmerHandlerParams) *FarmerHandler {
	return &FarmerHandler{
		platformUC: params.PlatformUC,
		queryUC:    params.QueryUC,
		logger:     params.Logger,
	}
}

// RegisterFarmerRequest represents the request body for registering an account
type RegisterFarmerRequest struct {
	AccountID string `json:"accountId" validate:"required"`
	Name      string `json:"name"`
	NIN       string `json:"nin"`
	Location  string `json:"location"`
	Phone     string `json:"phone"`
	Role      string `json:"role" validate:"omitempty,oneof=farmer investor"`
}

// RateFarmRequest represents the request body for rating a farmer
type RateFarmRequest struct {
	FarmerID   string `json:"farmerId" validate:"required"`
	InvestorID string `json:"investorId"`
	Rating     int64  `json:"rating" validate:"min=1,max=5"`
}

// RateFarmResponse is returned after a rating was recorded
type RateFarmResponse struct {
	Message       string  `json:"message"`
	AverageRating float64 `json:"averageRating"`
	RatingCount   int64   `json:"ratingCount"`
}

// RegisterFarmer handles POST /api/farmers
func (h *FarmerHandler) RegisterFarmer(c echo.Context) error {
	var req RegisterFarmerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	farmer, err := h.platformUC.RegisterFarmer(c.Request().Context(), usecase.RegisterFarmerInput{
		AccountID: req.AccountID,
		Name:      req.Name,
		NIN:       req.NIN,
		Location:  req.Location,
		Phone:     req.Phone,
		Role:      req.Role,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, farmer)
}

// RateFarm handles POST /api/rate-farm
func (h *FarmerHandler) RateFarm(c echo.Context) error {
	var req RateFarmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	out, err := h.platformUC.RateFarm(c.Request().Context(), usecase.RateFarmInput{
		FarmerID:   req.FarmerID,
		InvestorID: req.InvestorID,
		Rating:     req.Rating,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RateFarmResponse{
		Message:       "Rating submitted",
		AverageRating: out.AverageRating,
		RatingCount:   out.RatingCount,
	})
}

// GetUser handles GET /api/users/:accountId
func (h *FarmerHandler) GetUser(c echo.Context) error {
	user, err := h.queryUC.GetUser(c.Request().Context(), c.Param("accountId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// ListFarmerAssets handles GET /api/farmer-assets/:farmerId
func (h *FarmerHandler) ListFarmerAssets(c echo.Context) error {
	assets, err := h.queryUC.ListFarmerAssets(c.Request().Context(), c.Param("farmerId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, assets)
}
