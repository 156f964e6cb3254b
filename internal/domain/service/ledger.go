package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// FungibleAssetSpec describes a fungible asset to be issued on the ledger.
type FungibleAssetSpec struct {
	Name          string
	Symbol        string
	Decimals      uint32
	InitialSupply int64
	Treasury      string
}

// Balance is an account balance as reported by the ledger.
type Balance struct {
	AccountID string            `json:"accountId"`
	Native    string            `json:"hbars"`
	Tokens    map[string]uint64 `json:"tokens"`
}

// Ledger is the external value-movement capability. Implementations return raw
// transport or validation errors; callers wrap them for presentation.
type Ledger interface {
	// CreateFungibleAsset issues a new fungible asset and returns its ledger id.
	CreateFungibleAsset(ctx context.Context, spec FungibleAssetSpec) (string, error)

	// TransferAssetUnits moves quantity units of assetID between two accounts.
	TransferAssetUnits(ctx context.Context, assetID, from, to string, quantity int64) error

	// TransferNativeCurrency moves amount of the native currency. A negative amount
	// moves value from to back to from.
	TransferNativeCurrency(ctx context.Context, from, to string, amount decimal.Decimal) error

	// QueryBalance returns the native and per-asset balances of accountID.
	QueryBalance(ctx context.Context, accountID string) (*Balance, error)

	// AssociateAccountWithAsset enables accountID to hold assetID and returns the transaction id.
	AssociateAccountWithAsset(ctx context.Context, accountID, assetID string) (string, error)

	// TreasuryAccount is the platform account that issues assets and pays profits.
	TreasuryAccount() string

	// Network names the ledger network in use.
	Network() string
}
