package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"agritoken/internal/domain/entity"
	"agritoken/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	simulatedNetwork       = "simulated"
	simulatedTreasury      = "0.0.1001"
	simulatedFirstAssetNum = 5001
)

var (
	ErrInsufficientTokenBalance = errors.New("INSUFFICIENT_TOKEN_BALANCE")
	ErrInsufficientPayerBalance = errors.New("INSUFFICIENT_PAYER_BALANCE")
	ErrInvalidTokenID           = errors.New("INVALID_TOKEN_ID")
	ErrInvalidAccountID         = errors.New("INVALID_ACCOUNT_ID")
)

type simulatedAccount struct {
	native decimal.Decimal
	units  map[string]int64
}

// memoryLedger simulates a ledger in process memory. Accounts are opened lazily
// with a fixed native balance and are associated with assets on first receipt.
type memoryLedger struct {
	mu             sync.RWMutex
	treasury       string
	initialBalance decimal.Decimal
	nextAssetNum   int
	assets         map[string]service.FungibleAssetSpec
	accounts       map[string]*simulatedAccount
	logger         *slog.Logger
}

// NewMemoryLedger creates a simulated ledger whose treasury is treasury, or a
// fixed platform account when empty.
func NewMemoryLedger(treasury string, initialBalance decimal.Decimal, logger *slog.Logger) service.Ledger {
	if treasury == "" {
		treasury = simulatedTreasury
	}

	return &memoryLedger{
		treasury:       entity.NormalizeAccountID(treasury),
		initialBalance: initialBalance,
		nextAssetNum:   simulatedFirstAssetNum,
		assets:         make(map[string]service.FungibleAssetSpec),
		accounts:       make(map[string]*simulatedAccount),
		logger:         logger,
	}
}

func (l *memoryLedger) account(id string) (*simulatedAccount, error) {
	id = entity.NormalizeAccountID(id)
	if id == "" {
		return nil, ErrInvalidAccountID
	}

	acc, ok := l.accounts[id]
	if !ok {
		acc = &simulatedAccount{native: l.initialBalance, units: make(map[string]int64)}
		l.accounts[id] = acc
	}

	return acc, nil
}

func (l *memoryLedger) CreateFungibleAsset(_ context.Context, spec service.FungibleAssetSpec) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if spec.InitialSupply < 0 {
		return "", errors.New("INVALID_TOKEN_INITIAL_SUPPLY")
	}
	treasury, err := l.account(spec.Treasury)
	if err != nil {
		return "", err
	}

	assetID := fmt.Sprintf("0.0.%d", l.nextAssetNum)
	l.nextAssetNum++
	l.assets[assetID] = spec
	treasury.units[assetID] = spec.InitialSupply

	l.logger.Info("[MemoryLedger] Asset created",
		slog.String("asset_id", assetID),
		slog.String("symbol", spec.Symbol),
		slog.Int64("supply", spec.InitialSupply),
	)

	return assetID, nil
}

func (l *memoryLedger) TransferAssetUnits(_ context.Context, assetID, from, to string, quantity int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.assets[assetID]; !ok {
		return ErrInvalidTokenID
	}
	src, err := l.account(from)
	if err != nil {
		return err
	}
	dst, err := l.account(to)
	if err != nil {
		return err
	}
	if quantity < 0 || src.units[assetID] < quantity {
		return ErrInsufficientTokenBalance
	}

	src.units[assetID] -= quantity
	dst.units[assetID] += quantity

	return nil
}

func (l *memoryLedger) TransferNativeCurrency(_ context.Context, from, to string, amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount.IsNegative() {
		from, to = to, from
		amount = amount.Neg()
	}

	src, err := l.account(from)
	if err != nil {
		return err
	}
	dst, err := l.account(to)
	if err != nil {
		return err
	}
	if src.native.LessThan(amount) {
		return ErrInsufficientPayerBalance
	}

	src.native = src.native.Sub(amount)
	dst.native = dst.native.Add(amount)

	return nil
}

// QueryBalance reports an account that was never opened with its opening balance
// and no tokens, without opening it.
func (l *memoryLedger) QueryBalance(_ context.Context, accountID string) (*service.Balance, error) {
	id := entity.NormalizeAccountID(accountID)
	if id == "" {
		return nil, ErrInvalidAccountID
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	balance := &service.Balance{
		AccountID: id,
		Native:    l.initialBalance.String() + " ℏ",
		Tokens:    map[string]uint64{},
	}

	acc, ok := l.accounts[id]
	if !ok {
		return balance, nil
	}

	balance.Native = acc.native.String() + " ℏ"
	for assetID, n := range acc.units {
		balance.Tokens[assetID] = uint64(n)
	}

	return balance, nil
}

func (l *memoryLedger) AssociateAccountWithAsset(_ context.Context, accountID, assetID string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.assets[assetID]; !ok {
		return "", ErrInvalidTokenID
	}
	acc, err := l.account(accountID)
	if err != nil {
		return "", err
	}
	if _, ok := acc.units[assetID]; !ok {
		acc.units[assetID] = 0
	}

	return fmt.Sprintf("%s@sim-%s", l.treasury, uuid.NewString()[:8]), nil
}

func (l *memoryLedger) TreasuryAccount() string {
	return l.treasury
}

func (l *memoryLedger) Network() string {
	return simulatedNetwork
}
