// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"agritoken/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// RegisterFarmerInput defines the data required to register an account.
type RegisterFarmerInput struct {
	AccountID string
	Name      string
	NIN       string
	Location  string
	Phone     string
	Role      string
}

// TokenizeAssetInput defines a crop yield to be issued as a fungible asset.
type TokenizeAssetInput struct {
	FarmerID    string
	CropType    string
	YieldAmount int64
	HarvestDate string
	TokenPrice  decimal.Decimal
	ROI         decimal.Decimal
	FarmerShare int64
}

// InvestInput defines a purchase of asset units.
type InvestInput struct {
	AssetID           string
	InvestorAccountID string
	Amount            int64
}

// RateFarmInput defines a rating submission.
type RateFarmInput struct {
	FarmerID   string
	InvestorID string
	Rating     int64
}

// DistributeInput defines a post-harvest profit distribution.
type DistributeInput struct {
	AssetID     string
	MarketPrice decimal.Decimal
}

// --- Output DTOs ---

// TokenizeAssetOutput returns the created asset and the ledger asset id.
type TokenizeAssetOutput struct {
	Asset   *entity.TokenizedAsset
	TokenID string
}

// InvestOutput returns the recorded investment and the units still available.
type InvestOutput struct {
	Investment *entity.Investment
	NewBalance int64
}

// RateFarmOutput returns the farmer's updated rating aggregate.
type RateFarmOutput struct {
	AverageRating float64
	RatingCount   int64
}

// Payout is one profit transfer made during a distribution.
type Payout struct {
	InvestmentID string          `json:"investmentId"`
	InvestorID   string          `json:"investorId"`
	TokenAmount  int64           `json:"tokenAmount"`
	Profit       decimal.Decimal `json:"profit"`
}

// DistributeOutput summarizes a completed distribution.
type DistributeOutput struct {
	AssetID       string
	ProfitPerUnit decimal.Decimal
	TotalProfit   decimal.Decimal
	Payouts       []Payout
}

// PlatformUsecase defines the state-changing operations of the platform. Each one
// validates against the store, moves value on the ledger, folds an event into the
// store and mirrors it to the event log.
type PlatformUsecase interface {
	RegisterFarmer(ctx context.Context, input RegisterFarmerInput) (*entity.Farmer, error)
	TokenizeAsset(ctx context.Context, input TokenizeAssetInput) (*TokenizeAssetOutput, error)
	Invest(ctx context.Context, input InvestInput) (*InvestOutput, error)
	RateFarm(ctx context.Context, input RateFarmInput) (*RateFarmOutput, error)

	// DistributeProfits pays every investor of the asset. When some payouts fail the
	// returned output still lists the successful ones alongside the error.
	DistributeProfits(ctx context.Context, input DistributeInput) (*DistributeOutput, error)

	// AssociateAccount enables accountID to receive units of the ledger asset tokenID.
	AssociateAccount(ctx context.Context, accountID, tokenID string) (string, error)
}
