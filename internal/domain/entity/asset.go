package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetStatus is the lifecycle state of a tokenized asset.
type AssetStatus string

const (
	AssetStatusOpen          AssetStatus = "open"
	AssetStatusFullyInvested AssetStatus = "fully_invested"
	AssetStatusDistributed   AssetStatus = "distributed"
)

// rank orders statuses so transitions can be checked for monotonicity.
func (s AssetStatus) rank() int {
	switch s {
	case AssetStatusOpen:
		return 0
	case AssetStatusFullyInvested:
		return 1
	case AssetStatusDistributed:
		return 2
	default:
		return -1
	}
}

// IsValid checks if the status is a known lifecycle state.
func (s AssetStatus) IsValid() bool {
	return s.rank() >= 0
}

// CanTransitionTo reports whether moving from s to next keeps the lifecycle monotonic.
// Staying in the same state is allowed.
func (s AssetStatus) CanTransitionTo(next AssetStatus) bool {
	return next.IsValid() && next.rank() >= s.rank()
}

// TokenizedAsset is a crop yield issued as a fungible ledger asset.
type TokenizedAsset struct {
	ID              string          `json:"id"`
	TokenID         string          `json:"tokenId"` // Backing ledger asset id.
	FarmerID        string          `json:"farmerId"`
	FarmerName      string          `json:"farmerName"`
	CropType        string          `json:"cropType"`
	YieldAmount     int64           `json:"yieldAmount"`
	TokenizedAmount int64           `json:"tokenizedAmount"`
	FarmerTokens    int64           `json:"farmerTokens"` // Units retained by the farmer.
	RemainingAmount int64           `json:"remainingAmount"`
	HarvestDate     string          `json:"harvestDate"`
	TokenPrice      decimal.Decimal `json:"tokenPrice"`
	ROI             decimal.Decimal `json:"roi"`
	FarmerShare     int64           `json:"farmerShare"`
	Status          AssetStatus     `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	TokenSymbol     string          `json:"tokenSymbol"`
}

// Clone returns a copy of the asset.
func (a *TokenizedAsset) Clone() *TokenizedAsset {
	if a == nil {
		return nil
	}
	c := *a

	return &c
}
