package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment records a single purchase of asset units. Repeat purchases by the
// same investor produce separate records.
type Investment struct {
	ID                string          `json:"id"`
	AssetID           string          `json:"assetId"`
	InvestorAccountID string          `json:"investorAccountId"`
	TokenAmount       int64           `json:"tokenAmount"`
	TotalCostUSD      decimal.Decimal `json:"totalCostUSD"`
	Timestamp         time.Time       `json:"timestamp"`
}

// Clone returns a copy of the investment.
func (i *Investment) Clone() *Investment {
	if i == nil {
		return nil
	}
	c := *i

	return &c
}
