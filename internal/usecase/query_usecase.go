package usecase

import (
	"context"

	"agritoken/internal/domain/entity"
	"agritoken/internal/domain/service"
	"agritoken/internal/domain/store"
)

// NotRated marks an asset whose farmer has no ratings yet.
const NotRated = "Not rated"

// AssetListing is an asset enriched with its farmer's rating.
type AssetListing struct {
	*entity.TokenizedAsset
	Rating      string `json:"rating"`
	RatingCount int64  `json:"ratingCount"`
}

// InvestmentAsset is the asset context attached to an investment listing.
type InvestmentAsset struct {
	CropType   string `json:"cropType"`
	FarmerName string `json:"farmerName"`
	TokenID    string `json:"tokenId,omitempty"`
	Status     string `json:"status,omitempty"`
}

// InvestmentListing is an investment enriched with its asset.
type InvestmentListing struct {
	*entity.Investment
	Asset      InvestmentAsset `json:"asset"`
	FarmerName string          `json:"farmerName"`
}

// HealthReport describes the running instance.
type HealthReport struct {
	Status   string       `json:"status"`
	Network  string       `json:"network"`
	Operator string       `json:"operator"`
	TopicID  string       `json:"topicId"`
	Stats    store.Counts `json:"stats"`
}

// QueryUsecase defines the read-only projections over the domain store.
type QueryUsecase interface {
	ListAssets(ctx context.Context) ([]AssetListing, error)
	ListFarmerAssets(ctx context.Context, farmerID string) ([]*entity.TokenizedAsset, error)
	ListInvestments(ctx context.Context, accountID string) ([]InvestmentListing, error)
	GetUser(ctx context.Context, accountID string) (*entity.Farmer, error)
	GetBalance(ctx context.Context, accountID string) (*service.Balance, error)
	Health(ctx context.Context) (*HealthReport, error)

	// AssetShareQR renders a PNG QR code pointing investors at the asset.
	AssetShareQR(ctx context.Context, assetID string) ([]byte, error)
}
