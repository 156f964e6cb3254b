package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"agritoken/internal/delivery/api/response"
	deliverycontext "agritoken/internal/delivery/context"
	"agritoken/internal/domain/entity"
	domainerrors "agritoken/internal/domain/errors"
	"agritoken/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// AssetHandlerParams holds dependencies for AssetHandler, injected by Fx.
type AssetHandlerParams struct {
	fx.In

	PlatformUC usecase.PlatformUsecase
	QueryUC    usecase.QueryUsecase
	Logger     *slog.Logger
}

// AssetHandler serves tokenization, asset listings and profit distribution.
type AssetHandler struct {
	platformUC usecase.PlatformUsecase
	queryUC    usecase.QueryUsecase
	logger     *slog.Logger
}

// NewAssetHandler is the constructor for AssetHandler
func NewAssetHandler(params AssetHandlerParams) *AssetHandler {
	return &AssetHandler{
		platformUC: params.PlatformUC,
		queryUC:    params.QueryUC,
		logger:     params.Logger,
	}
}

// TokenizeRequest represents the request body for tokenizing a yield.
// Prices accept JSON numbers or numeric strings.
type TokenizeRequest struct {
	FarmerID    string          `json:"farmerId" validate:"required"`
	CropType    string          `json:"cropType" validate:"required"`
	YieldAmount int64           `json:"yieldAmount" validate:"gt=0"`
	HarvestDate string          `json:"harvestDate"`
	TokenPrice  decimal.Decimal `json:"tokenPrice"`
	ROI         decimal.Decimal `json:"roi"`
	FarmerShare int64           `json:"farmerShare" validate:"min=0,max=100"`
}

// TokenizeResponse is returned for a created asset
type TokenizeResponse struct {
	Message string                 `json:"message"`
	Asset   *entity.TokenizedAsset `json:"asset"`
	TokenID string                 `json:"tokenId"`
}

// DistributeRequest represents the request body for a profit distribution
type DistributeRequest struct {
	AssetID     string          `json:"assetId" validate:"required"`
	MarketPrice decimal.Decimal `json:"marketPrice"`
}

// DistributeResponse summarizes a distribution run
type DistributeResponse struct {
	Status        string           `json:"status"`
	Message       string           `json:"message"`
	AssetID       string           `json:"assetId"`
	ProfitPerUnit decimal.Decimal  `json:"profitPerUnit"`
	TotalProfit   decimal.Decimal  `json:"totalProfit"`
	Payouts       []usecase.Payout `json:"payouts"`
}

// Tokenize handles POST /api/tokenize
func (h *AssetHandler) Tokenize(c echo.Context) error {
	var req TokenizeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid tokenization input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	out, err := h.platformUC.TokenizeAsset(c.Request().Context(), usecase.TokenizeAssetInput{
		FarmerID:    req.FarmerID,
		CropType:    req.CropType,
		YieldAmount: req.YieldAmount,
		HarvestDate: req.HarvestDate,
		TokenPrice:  req.TokenPrice,
		ROI:         req.ROI,
		FarmerShare: req.FarmerShare,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, TokenizeResponse{
		Message: "Asset tokenized successfully",
		Asset:   out.Asset,
		TokenID: out.TokenID,
	})
}

// ListAssets handles GET /api/assets
func (h *AssetHandler) ListAssets(c echo.Context) error {
	assets, err := h.queryUC.ListAssets(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, assets)
}

// AssetShareQR handles GET /api/assets/:assetId/qr and writes a PNG.
func (h *AssetHandler) AssetShareQR(c echo.Context) error {
	png, err := h.queryUC.AssetShareQR(c.Request().Context(), c.Param("assetId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Distribute handles POST /api/distribute. A partially failed run answers with
// the error and the payouts that did go through.
func (h *AssetHandler) Distribute(c echo.Context) error {
	var req DistributeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid distribution input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	out, err := h.platformUC.DistributeProfits(c.Request().Context(), usecase.DistributeInput{
		AssetID:     req.AssetID,
		MarketPrice: req.MarketPrice,
	})

	var distErr *domainerrors.DistributionError
	if errors.As(err, &distErr) {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Profit distribution incomplete",
			slog.String("asset_id", distErr.AssetID),
			slog.Int("paid", distErr.Paid),
			slog.Int("failed", distErr.Failed),
			slog.Any("error", distErr),
		)

		return response.PartialFailure(c, distErr, newDistributeResponse("partial", out))
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDistributeResponse("success", out))
}

func newDistributeResponse(status string, out *usecase.DistributeOutput) DistributeResponse {
	return DistributeResponse{
		Status:        status,
		Message:       fmt.Sprintf("Distributed %s HBAR in profits to investors", out.TotalProfit.String()),
		AssetID:       out.AssetID,
		ProfitPerUnit: out.ProfitPerUnit,
		TotalProfit:   out.TotalProfit,
		Payouts:       out.Payouts,
	}
}
