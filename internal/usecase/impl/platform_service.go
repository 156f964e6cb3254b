package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"agritoken/internal/domain/entity"
	domainerrors "agritoken/internal/domain/errors"
	"agritoken/internal/domain/lifecycle"
	"agritoken/internal/domain/service"
	"agritoken/internal/domain/store"
	"agritoken/internal/errors"
	"agritoken/internal/usecase"
	"agritoken/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	assetIDPrefix      = "asset_"
	investmentIDPrefix = "inv_"
	maxFarmerShare     = 100
	minRating          = 1
	maxRating          = 5
)

type platformService struct {
	store    *store.Store
	ledger   service.Ledger
	eventLog service.EventLog
	logger   *slog.Logger

	// assetLocks serializes invest and distribute per asset so the remaining
	// check, the ledger call and the fold happen as one unit.
	assetLocks  util.KeyedMutex
	farmerLocks util.KeyedMutex

	now func() time.Time
}

// PlatformServiceParams holds dependencies for PlatformService, injected by Fx.
type PlatformServiceParams struct {
	fx.In

	Store    *store.Store
	Ledger   service.Ledger
	EventLog service.EventLog
	Logger   *slog.Logger
}

// NewPlatformService creates a new platform service instance
func NewPlatformService(params PlatformServiceParams) usecase.PlatformUsecase {
	return &platformService{
		store:    params.Store,
		ledger:   params.Ledger,
		eventLog: params.EventLog,
		logger:   params.Logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func validationError(details string) error {
	return domainerrors.ErrValidationFailed.WithDetails(details)
}

// RegisterFarmer records a new account. Re-registering an existing id is rejected.
func (s *platformService) RegisterFarmer(ctx context.Context, input usecase.RegisterFarmerInput) (*entity.Farmer, error) {
	id := entity.NormalizeAccountID(input.AccountID)
	if id == "" {
		return nil, validationError("accountId is required")
	}

	role := entity.Role(strings.ToLower(strings.TrimSpace(input.Role)))
	if role == "" {
		role = entity.RoleFarmer
	}
	if !role.IsValid() {
		return nil, validationError(fmt.Sprintf("unknown role %q", input.Role))
	}

	unlock := s.farmerLocks.Lock(id)
	defer unlock()

	if _, ok := s.store.Farmer(id); ok {
		return nil, domainerrors.ErrFarmerAlreadyExists.WithDetails(id)
	}

	farmer := entity.Farmer{
		ID:        id,
		Name:      strings.TrimSpace(input.Name),
		NIN:       strings.TrimSpace(input.NIN),
		Location:  strings.TrimSpace(input.Location),
		Phone:     strings.TrimSpace(input.Phone),
		Assets:    []string{},
		Role:      role,
		CreatedAt: s.now(),
	}

	if err := s.commit(ctx, entity.EventFarmerRegistered, farmer); err != nil {
		return nil, err
	}

	registered, _ := s.store.Farmer(id)

	return registered, nil
}

// TokenizeAsset issues the yield as a fungible ledger asset and hands the
// farmer's retained share over from the treasury.
func (s *platformService) TokenizeAsset(ctx context.Context, input usecase.TokenizeAssetInput) (*usecase.TokenizeAssetOutput, error) {
	if err := validateTokenization(input); err != nil {
		return nil, err
	}

	farmer, ok := s.store.Farmer(input.FarmerID)
	if !ok {
		return nil, domainerrors.ErrFarmerNotRegistered
	}

	cropType := strings.TrimSpace(input.CropType)
	farmerTokens := retainedTokens(input.YieldAmount, input.FarmerShare)
	createdAt := s.now()
	symbol := tokenSymbol(cropType, createdAt)
	treasury := s.ledger.TreasuryAccount()

	tokenID, err := s.ledger.CreateFungibleAsset(ctx, service.FungibleAssetSpec{
		Name:          cropType + " - " + farmer.Name,
		Symbol:        symbol,
		Decimals:      0,
		InitialSupply: input.YieldAmount,
		Treasury:      treasury,
	})
	if err != nil {
		return nil, domainerrors.NewLedgerError(err, "create fungible asset")
	}

	if farmerTokens > 0 {
		if err := s.ledger.TransferAssetUnits(ctx, tokenID, treasury, farmer.ID, farmerTokens); err != nil {
			return nil, domainerrors.NewLedgerError(err, "transfer retained units")
		}
	}

	asset := entity.TokenizedAsset{
		ID:              assetIDPrefix + uuid.NewString(),
		TokenID:         tokenID,
		FarmerID:        farmer.ID,
		FarmerName:      farmer.Name,
		CropType:        cropType,
		YieldAmount:     input.YieldAmount,
		TokenizedAmount: input.YieldAmount,
		FarmerTokens:    farmerTokens,
		RemainingAmount: input.YieldAmount - farmerTokens,
		HarvestDate:     input.HarvestDate,
		TokenPrice:      input.TokenPrice,
		ROI:             input.ROI,
		FarmerShare:     input.FarmerShare,
		Status:          entity.AssetStatusOpen,
		CreatedAt:       createdAt,
		TokenSymbol:     symbol,
	}

	if err := s.commit(ctx, entity.EventAssetTokenized, asset); err != nil {
		return nil, err
	}

	created, _ := s.store.Asset(asset.ID)

	return &usecase.TokenizeAssetOutput{Asset: created, TokenID: tokenID}, nil
}

func validateTokenization(input usecase.TokenizeAssetInput) error {
	switch {
	case entity.NormalizeAccountID(input.FarmerID) == "":
		return validationError("farmerId is required")
	case strings.TrimSpace(input.CropType) == "":
		return validationError("cropType is required")
	case input.YieldAmount <= 0:
		return validationError("yieldAmount must be positive")
	case !input.TokenPrice.IsPositive():
		return validationError("tokenPrice must be positive")
	case input.FarmerShare < 0 || input.FarmerShare > maxFarmerShare:
		return validationError("farmerShare must be between 0 and 100")
	}

	return nil
}

// tokenSymbol is the first three letters of the crop followed by the last four
// digits of the creation time in unix milliseconds.
func tokenSymbol(cropType string, at time.Time) string {
	prefix := []rune(strings.ToUpper(strings.ReplaceAll(cropType, " ", "")))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	return fmt.Sprintf("%s%04d", string(prefix), at.UnixMilli()%10000)
}

// retainedTokens is floor(yield * share / 100) without overflowing for yields near MaxInt64.
func retainedTokens(yield, share int64) int64 {
	return yield/maxFarmerShare*share + yield%maxFarmerShare*share/maxFarmerShare
}

// Invest buys units of an open asset from the treasury.
func (s *platformService) Invest(ctx context.Context, input usecase.InvestInput) (*usecase.InvestOutput, error) {
	investor := entity.NormalizeAccountID(input.InvestorAccountID)
	switch {
	case input.AssetID == "":
		return nil, validationError("assetId is required")
	case investor == "":
		return nil, validationError("investorAccountId is required")
	case input.Amount <= 0:
		return nil, validationError("amount must be positive")
	}

	unlock := s.assetLocks.Lock(input.AssetID)
	defer unlock()

	asset, ok := s.store.Asset(input.AssetID)
	if !ok || asset.Status != entity.AssetStatusOpen {
		return nil, domainerrors.ErrAssetNotOpen
	}
	if input.Amount > asset.RemainingAmount {
		return nil, domainerrors.ErrInsufficientTokens.WithDetails(
			fmt.Sprintf("requested %d, available %d", input.Amount, asset.RemainingAmount))
	}

	if err := s.ledger.TransferAssetUnits(ctx, asset.TokenID, s.ledger.TreasuryAccount(), investor, input.Amount); err != nil {
		return nil, domainerrors.NewLedgerError(err, "transfer asset units")
	}

	investment := entity.Investment{
		ID:                investmentIDPrefix + uuid.NewString(),
		AssetID:           asset.ID,
		InvestorAccountID: investor,
		TokenAmount:       input.Amount,
		TotalCostUSD:      decimal.NewFromInt(input.Amount).Mul(asset.TokenPrice),
		Timestamp:         s.now(),
	}

	err := s.commit(ctx, entity.EventInvestmentMade, entity.InvestmentMade{
		Investment: investment,
		Asset: entity.InvestmentAssetRef{
			CropType:   asset.CropType,
			FarmerName: asset.FarmerName,
		},
	})
	if err != nil {
		return nil, err
	}

	updated, _ := s.store.Asset(asset.ID)

	return &usecase.InvestOutput{Investment: &investment, NewBalance: updated.RemainingAmount}, nil
}

// RateFarm adds a rating to the farmer's aggregate. The same investor may rate
// a farmer any number of times.
func (s *platformService) RateFarm(ctx context.Context, input usecase.RateFarmInput) (*usecase.RateFarmOutput, error) {
	if input.Rating < minRating || input.Rating > maxRating {
		return nil, validationError("rating must be between 1 and 5")
	}

	farmerID := entity.NormalizeAccountID(input.FarmerID)

	unlock := s.farmerLocks.Lock(farmerID)
	defer unlock()

	if _, ok := s.store.Farmer(farmerID); !ok {
		return nil, domainerrors.ErrFarmerNotFound
	}

	current := s.store.Rating(farmerID)
	projected := entity.FarmRating{
		FarmerID:    farmerID,
		TotalRating: current.TotalRating + input.Rating,
		RatingCount: current.RatingCount + 1,
	}

	err := s.commit(ctx, entity.EventFarmRated, entity.FarmRated{
		FarmerID:      farmerID,
		InvestorID:    entity.NormalizeAccountID(input.InvestorID),
		Rating:        input.Rating,
		AverageRating: projected.Average(),
	})
	if err != nil {
		return nil, err
	}

	rating := s.store.Rating(farmerID)

	return &usecase.RateFarmOutput{AverageRating: rating.Average(), RatingCount: rating.RatingCount}, nil
}

// DistributeProfits pays (marketPrice - tokenPrice) per unit to every investment
// of the asset. Failed payouts do not stop the run and are never compensated;
// the asset is marked distributed only when every payout succeeded. Calling it
// again after a DistributionError pays the investments listed in
// PaidInvestments a second time.
func (s *platformService) DistributeProfits(ctx context.Context, input usecase.DistributeInput) (*usecase.DistributeOutput, error) {
	if input.AssetID == "" {
		return nil, validationError("assetId is required")
	}
	if input.MarketPrice.IsNegative() {
		return nil, validationError("marketPrice must not be negative")
	}

	unlock := s.assetLocks.Lock(input.AssetID)
	defer unlock()

	asset, ok := s.store.Asset(input.AssetID)
	if !ok {
		return nil, domainerrors.ErrAssetNotFound
	}
	if asset.Status == entity.AssetStatusDistributed {
		return nil, domainerrors.ErrAssetAlreadyDistributed
	}

	profitPerUnit := input.MarketPrice.Sub(asset.TokenPrice)
	treasury := s.ledger.TreasuryAccount()
	out := &usecase.DistributeOutput{
		AssetID:       asset.ID,
		ProfitPerUnit: profitPerUnit,
		TotalProfit:   decimal.Zero,
		Payouts:       []usecase.Payout{},
	}

	var failures []error
	for _, inv := range s.store.InvestmentsByAsset(asset.ID) {
		profit := profitPerUnit.Mul(decimal.NewFromInt(inv.TokenAmount))

		if !profit.IsZero() {
			if err := s.ledger.TransferNativeCurrency(ctx, treasury, inv.InvestorAccountID, profit); err != nil {
				s.logger.Error("Profit payout failed",
					slog.String("asset_id", asset.ID),
					slog.String("investment_id", inv.ID),
					slog.String("investor_id", inv.InvestorAccountID),
					slog.Any("error", err),
				)
				failures = append(failures, domainerrors.NewLedgerError(err, "pay "+inv.InvestorAccountID))

				continue
			}
		}

		err := s.commit(ctx, entity.EventProfitDistributed, entity.ProfitDistributed{
			AssetID:       asset.ID,
			InvestmentID:  inv.ID,
			InvestorID:    inv.InvestorAccountID,
			TokenAmount:   inv.TokenAmount,
			ProfitPerUnit: profitPerUnit,
			Profit:        profit,
			Timestamp:     s.now(),
		})
		if err != nil {
			failures = append(failures, err)

			continue
		}

		out.TotalProfit = out.TotalProfit.Add(profit)
		out.Payouts = append(out.Payouts, usecase.Payout{
			InvestmentID: inv.ID,
			InvestorID:   inv.InvestorAccountID,
			TokenAmount:  inv.TokenAmount,
			Profit:       profit,
		})
	}

	if len(failures) > 0 {
		paid := make([]string, 0, len(out.Payouts))
		for _, payout := range out.Payouts {
			paid = append(paid, payout.InvestmentID)
		}

		return out, domainerrors.NewDistributionError(asset.ID, len(out.Payouts), len(failures), errors.Join(failures...)).
			WithPaidInvestments(paid...)
	}

	err := s.commit(ctx, entity.EventAssetStatusChanged, entity.AssetStatusChanged{
		AssetID: asset.ID,
		Status:  entity.AssetStatusDistributed,
	})
	if err != nil {
		return out, err
	}

	return out, nil
}

// AssociateAccount passes an association request through to the ledger.
func (s *platformService) AssociateAccount(ctx context.Context, accountID, tokenID string) (string, error) {
	accountID = strings.TrimSpace(accountID)
	tokenID = strings.TrimSpace(tokenID)
	if accountID == "" || tokenID == "" {
		return "", validationError("accountId and tokenId are required")
	}

	txID, err := s.ledger.AssociateAccountWithAsset(ctx, accountID, tokenID)
	if err != nil {
		return "", domainerrors.NewLedgerError(err, "associate account with asset")
	}

	return txID, nil
}

// commit folds the event into the store and mirrors it to the event log. A log
// failure is logged and does not undo the store mutation.
func (s *platformService) commit(ctx context.Context, eventType entity.EventType, payload any) error {
	ev, err := entity.NewEvent(eventType, payload)
	if err != nil {
		return errors.Wrap(err, "build event")
	}

	if _, err := s.store.Apply(ev); err != nil {
		return errors.Wrapf(err, "apply %s", eventType)
	}

	s.appendToLog(ctx, ev)

	return nil
}

func (s *platformService) appendToLog(ctx context.Context, ev *entity.Event) {
	// The store already holds the event; a cancelled request must not drop it from the log.
	appendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := s.eventLog.Append(appendCtx, ev); err != nil {
		s.logger.Error("Failed to append event to log",
			slog.String("event_id", ev.ID),
			slog.String("event_type", string(ev.Type)),
			slog.Any("error", domainerrors.ErrLogUnavailable.WithDetails(err.Error())),
		)
	}
}
