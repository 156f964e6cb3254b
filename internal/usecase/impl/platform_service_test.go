package impl

import (
	"context"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"agritoken/internal/domain/entity"
	domainerrors "agritoken/internal/domain/errors"
	"agritoken/internal/domain/service"
	"agritoken/internal/domain/store"
	"agritoken/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func eventOfType(eventType entity.EventType) any {
	return mock.MatchedBy(func(ev *entity.Event) bool {
		return ev.Type == eventType
	})
}

func TestPlatformService_RegisterFarmer(t *testing.T) {
	t.Parallel()

	fx := createTestPlatformService(t)
	fx.eventLog.EXPECT().Append(mock.Anything, eventOfType(entity.EventFarmerRegistered)).Return(nil).Once()

	farmer, err := fx.service.RegisterFarmer(context.Background(), usecase.RegisterFarmerInput{
		AccountID: "  0xABC ",
		Name:      " Ada ",
		Location:  "Kaduna",
	})
	require.NoError(t, err)

	assert.Equal(t, "0xabc", farmer.ID)
	assert.Equal(t, "Ada", farmer.Name)
	assert.Equal(t, entity.RoleFarmer, farmer.Role)
	assert.Empty(t, farmer.Assets)

	stored, ok := fx.store.Farmer("0xAbC")
	require.True(t, ok)
	assert.Equal(t, farmer, stored)
}

func TestPlatformService_RegisterFarmer_Errors(t *testing.T) {
	t.Parallel()

	t.Run("duplicate account", func(t *testing.T) {
		t.Parallel()

		fx := createTestPlatformService(t)
		fx.eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

		_, err := fx.service.RegisterFarmer(context.Background(), usecase.RegisterFarmerInput{AccountID: "0xabc", Name: "Ada"})
		require.NoError(t, err)

		_, err = fx.service.RegisterFarmer(context.Background(), usecase.RegisterFarmerInput{AccountID: "0xABC", Name: "Eve"})
		require.ErrorIs(t, err, domainerrors.ErrFarmerAlreadyExists)

		stored, _ := fx.store.Farmer("0xabc")
		assert.Equal(t, "Ada", stored.Name)
	})

	t.Run("missing account id", func(t *testing.T) {
		t.Parallel()

		fx := createTestPlatformService(t)

		_, err := fx.service.RegisterFarmer(context.Background(), usecase.RegisterFarmerInput{AccountID: "  ", Name: "Ada"})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown role", func(t *testing.T) {
		t.Parallel()

		fx := createTestPlatformService(t)

		_, err := fx.service.RegisterFarmer(context.Background(), usecase.RegisterFarmerInput{AccountID: "0xabc", Role: "admin"})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Zero(t, fx.store.Counts().Farmers)
	})
}

func TestPlatformService_AppendFailureKeepsState(t *testing.T) {
	t.Parallel()

	fx := createTestPlatformService(t)
	fx.eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("topic gone")).Once()

	farmer, err := fx.service.RegisterFarmer(context.Background(), usecase.RegisterFarmerInput{AccountID: "0xabc", Name: "Ada"})
	require.NoError(t, err)
	require.NotNil(t, farmer)

	_, ok := fx.store.Farmer("0xabc")
	assert.True(t, ok)
}

func TestPlatformService_TokenizeAsset(t *testing.T) {
	t.Parallel()

	fx := createTestPlatformService(t)
	mustApply(t, fx.store, entity.EventFarmerRegistered, entity.Farmer{ID: "0xabc", Name: "Ada", Role: entity.RoleFarmer})

	fx.ledger.EXPECT().
		CreateFungibleAsset(mock.Anything, mock.MatchedBy(func(spec service.FungibleAssetSpec) bool {
			return spec.Name == "maize - Ada" &&
				strings.HasPrefix(spec.Symbol, "MAI") &&
				spec.Decimals == 0 &&
				spec.InitialSupply == 1000 &&
				spec.Treasury == testTreasury
		})).
		Return("0.0.5001", nil).Once()
	fx.ledger.EXPECT().TransferAssetUnits(mock.Anything, "0.0.5001", testTreasury, "0xabc", int64(100)).Return(nil).Once()
	fx.eventLog.EXPECT().Append(mock.Anything, eventOfType(entity.EventAssetTokenized)).Return(nil).Once()

	out, err := fx.service.TokenizeAsset(context.Background(), usecase.TokenizeAssetInput{
		FarmerID:    "0xABC",
		CropType:    "maize",
		YieldAmount: 1000,
		HarvestDate: "2025-09-01",
		TokenPrice:  decimal.RequireFromString("2.00"),
		ROI:         decimal.NewFromInt(15),
		FarmerShare: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, "0.0.5001", out.TokenID)
	assert.True(t, strings.HasPrefix(out.Asset.ID, assetIDPrefix))
	assert.Equal(t, int64(1000), out.Asset.TokenizedAmount)
	assert.Equal(t, int64(100), out.Asset.FarmerTokens)
	assert.Equal(t, int64(900), out.Asset.RemainingAmount)
	assert.Equal(t, entity.AssetStatusOpen, out.Asset.Status)

	farmer, _ := fx.store.Farmer("0xabc")
	assert.Equal(t, []string{out.Asset.ID}, farmer.Assets)
	assert.Equal(t, int64(1000), farmer.TotalTokens)
}

func TestPlatformService_TokenizeAsset_ZeroShareSkipsTransfer(t *testing.T) {
	t.Parallel()

	fx := createTestPlatformService(t)
	mustApply(t, fx.store, entity.EventFarmerRegistered, entity.Farmer{ID: "0xabc", Name: "Ada", Role: entity.RoleFarmer})

	fx.ledger.EXPECT().CreateFungibleAsset(mock.Anything, mock.Anything).Return("0.0.5001", nil).Once()
	fx.eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

	out, err := fx.service.TokenizeAsset(context.Background(), usecase.TokenizeAssetInput{
		FarmerID:    "0xabc",
		CropType:    "rice",
		YieldAmount: 50,
		TokenPrice:  decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), out.Asset.RemainingAmount)
}

func TestPlatformService_TokenizeAsset_Errors(t *testing.T) {
	t.Parallel()

	valid := usecase.TokenizeAssetInput{
		FarmerID:    "0xabc",
		CropType:    "maize",
		YieldAmount: 1000,
		TokenPrice:  decimal.NewFromInt(2),
		FarmerShare: 10,
	}

	t.Run("unregistered farmer", func(t *testing.T) {
		t.Parallel()

		fx := createTestPlatformService(t)

		_, err := fx.service.TokenizeAsset(context.Background(), valid)
		require.ErrorIs(t, err, domainerrors.ErrFarmerNotRegistered)
		assert.Empty(t, fx.store.Assets())
	})

	t.Run("ledger rejects creation", func(t *testing.T) {
		t.Parallel()

		fx := createTestPlatformService(t)
		mustApply(t, fx.store, entity.EventFarmerRegistered, entity.Farmer{ID: "0xabc", Name: "Ada"})
		fx.ledger.EXPECT().CreateFungibleAsset(mock.Anything, mock.Anything).Return("", errors.New("INSUFFICIENT_PAYER_BALANCE")).Once()

		_, err := fx.service.TokenizeAsset(context.Background(), valid)
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "LEDGER_ERROR", appErr.ErrorCode())
		assert.Equal(t, "INSUFFICIENT_PAYER_BALANCE", appErr.Message())
		assert.Empty(t, fx.store.Assets())
	})

	invalid := []struct {
		name   string
		mutate func(*usecase.TokenizeAssetInput)
	}{
		{name: "empty crop", mutate: func(in *usecase.TokenizeAssetInput) { in.CropType = " " }},
		{name: "zero yield", mutate: func(in *usecase.TokenizeAssetInput) { in.YieldAmount = 0 }},
		{name: "zero price", mutate: func(in *usecase.TokenizeAssetInput) { in.TokenPrice = decimal.Zero }},
		{name: "share above 100", mutate: func(in *usecase.TokenizeAssetInput) { in.FarmerShare = 101 }},
		{name: "negative share", mutate: func(in *usecase.TokenizeAssetInput) { in.FarmerShare = -1 }},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestPlatformService(t)
			input := valid
			tt.mutate(&input)

			_, err := fx.service.TokenizeAsset(context.Background(), input)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestTokenSymbol(t *testing.T) {
	t.Parallel()

	at := time.UnixMilli(1_700_000_012_345)

	assert.Equal(t, "SWE2345", tokenSymbol("sweet potato", at))
	assert.Equal(t, "SWE2345", tokenSymbol("Swe et", at))
	assert.Equal(t, "YA2345", tokenSymbol("ya", at))
	assert.Equal(t, "MAI0007", tokenSymbol("maize", time.UnixMilli(1_700_000_000_007)))
}

func TestRetainedTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		yield    int64
		share    int64
		expected int64
	}{
		{name: "scenario yield", yield: 1000, share: 10, expected: 100},
		{name: "rounds down", yield: 999, share: 33, expected: 329},
		{name: "zero share", yield: 1000, share: 0, expected: 0},
		{name: "whole yield", yield: math.MaxInt64, share: 100, expected: math.MaxInt64},
		{name: "large yield half share", yield: math.MaxInt64 / 10, share: 50, expected: 461168601842738790},
		{name: "just above overflow bound", yield: math.MaxInt64/100 + 1, share: 99, expected: 91311383164862281},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, retainedTokens(tt.yield, tt.share))
		})
	}
}

func TestPlatformService_TokenizeAsset_LargeYield(t *testing.T) {
	t.Parallel()

	sc := newScenario(t)
	ctx := context.Background()

	_, err := sc.service.RegisterFarmer(ctx, usecase.RegisterFarmerInput{AccountID: "0xabc", Name: "Ada"})
	require.NoError(t, err)

	yield := int64(math.MaxInt64 / 10)
	out, err := sc.service.TokenizeAsset(ctx, usecase.TokenizeAssetInput{
		FarmerID:    "0xabc",
		CropType:    "maize",
		YieldAmount: yield,
		TokenPrice:  decimal.NewFromInt(1),
		FarmerShare: 50,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(461168601842738790), out.Asset.FarmerTokens)
	assert.Equal(t, yield-461168601842738790, out.Asset.RemainingAmount)
}

func TestPlatformService_Invest(t *testing.T) {
	t.Parallel()

	sc := newScenario(t)
	asset := sc.maizeScenario(t)
	ctx := context.Background()

	t.Run("more than remaining is rejected", func(t *testing.T) {
		_, err := sc.service.Invest(ctx, usecase.InvestInput{AssetID: asset.ID, InvestorAccountID: "0xdef", Amount: 901})
		require.ErrorIs(t, err, domainerrors.ErrInsufficientTokens)

		current, _ := sc.store.Asset(asset.ID)
		assert.Equal(t, int64(900), current.RemainingAmount)
	})

	t.Run("exact remaining closes the asset", func(t *testing.T) {
		out, err := sc.service.Invest(ctx, usecase.InvestInput{AssetID: asset.ID, InvestorAccountID: "0xDEF", Amount: 900})
		require.NoError(t, err)

		assert.Equal(t, int64(0), out.NewBalance)
		assert.Equal(t, "0xdef", out.Investment.InvestorAccountID)
		assert.True(t, out.Investment.TotalCostUSD.Equal(decimal.NewFromInt(1800)))
		assert.True(t, strings.HasPrefix(out.Investment.ID, investmentIDPrefix))

		current, _ := sc.store.Asset(asset.ID)
		assert.Equal(t, entity.AssetStatusFullyInvested, current.Status)

		balance, err := sc.ledger.QueryBalance(ctx, "0xdef")
		require.NoError(t, err)
		assert.Equal(t, uint64(900), balance.Tokens[asset.TokenID])
	})

	t.Run("closed asset is not open", func(t *testing.T) {
		_, err := sc.service.Invest(ctx, usecase.InvestInput{AssetID: asset.ID, InvestorAccountID: "0xdef", Amount: 1})
		require.ErrorIs(t, err, domainerrors.ErrAssetNotOpen)
	})

	t.Run("unknown asset", func(t *testing.T) {
		_, err := sc.service.Invest(ctx, usecase.InvestInput{AssetID: "asset_missing", InvestorAccountID: "0xdef", Amount: 1})
		require.ErrorIs(t, err, domainerrors.ErrAssetNotOpen)
	})

	t.Run("non positive amount", func(t *testing.T) {
		_, err := sc.service.Invest(ctx, usecase.InvestInput{AssetID: asset.ID, InvestorAccountID: "0xdef", Amount: 0})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestPlatformService_Invest_LedgerFailureRecordsNothing(t *testing.T) {
	t.Parallel()

	fx := createTestPlatformService(t)
	mustApply(t, fx.store, entity.EventFarmerRegistered, entity.Farmer{ID: "0xabc", Name: "Ada"})
	mustApply(t, fx.store, entity.EventAssetTokenized, entity.TokenizedAsset{
		ID: "asset_1", TokenID: "0.0.5001", FarmerID: "0xabc", YieldAmount: 10,
		TokenizedAmount: 10, RemainingAmount: 10, TokenPrice: decimal.NewFromInt(1), Status: entity.AssetStatusOpen,
	})

	fx.ledger.EXPECT().TransferAssetUnits(mock.Anything, "0.0.5001", testTreasury, "0xdef", int64(5)).
		Return(errors.New("TOKEN_NOT_ASSOCIATED_TO_ACCOUNT")).Once()

	_, err := fx.service.Invest(context.Background(), usecase.InvestInput{AssetID: "asset_1", InvestorAccountID: "0xdef", Amount: 5})

	var ledgerErr *domainerrors.LedgerError
	require.ErrorAs(t, err, &ledgerErr)
	assert.Empty(t, fx.store.Investments())

	asset, _ := fx.store.Asset("asset_1")
	assert.Equal(t, int64(10), asset.RemainingAmount)
}

func TestPlatformService_Invest_ConcurrentNeverOversells(t *testing.T) {
	t.Parallel()

	sc := newScenario(t)
	asset := sc.maizeScenario(t)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for range 12 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := sc.service.Invest(context.Background(), usecase.InvestInput{
				AssetID:           asset.ID,
				InvestorAccountID: "0xdef",
				Amount:            100,
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 9, succeeded)

	current, _ := sc.store.Asset(asset.ID)
	assert.Equal(t, int64(0), current.RemainingAmount)
	assert.Equal(t, entity.AssetStatusFullyInvested, current.Status)
	assert.Len(t, sc.store.InvestmentsByAsset(asset.ID), 9)
}

func TestPlatformService_RateFarm(t *testing.T) {
	t.Parallel()

	sc := newScenario(t)
	sc.maizeScenario(t)
	ctx := context.Background()

	_, err := sc.service.RateFarm(ctx, usecase.RateFarmInput{FarmerID: "0xabc", InvestorID: "0xdef", Rating: 4})
	require.NoError(t, err)

	out, err := sc.service.RateFarm(ctx, usecase.RateFarmInput{FarmerID: "0xABC", InvestorID: "0xdef", Rating: 5})
	require.NoError(t, err)
	assert.InDelta(t, 4.5, out.AverageRating, 1e-9)
	assert.Equal(t, int64(2), out.RatingCount)

	_, err = sc.service.RateFarm(ctx, usecase.RateFarmInput{FarmerID: "0xabc", Rating: 6})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = sc.service.RateFarm(ctx, usecase.RateFarmInput{FarmerID: "0xabc", Rating: 0})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = sc.service.RateFarm(ctx, usecase.RateFarmInput{FarmerID: "0x999", Rating: 3})
	require.ErrorIs(t, err, domainerrors.ErrFarmerNotFound)

	assert.Equal(t, int64(2), sc.store.Rating("0xabc").RatingCount)
}

func TestPlatformService_DistributeProfits(t *testing.T) {
	t.Parallel()

	sc := newScenario(t)
	asset := sc.maizeScenario(t)
	ctx := context.Background()

	_, err := sc.service.Invest(ctx, usecase.InvestInput{AssetID: asset.ID, InvestorAccountID: "0xdef", Amount: 900})
	require.NoError(t, err)

	out, err := sc.service.DistributeProfits(ctx, usecase.DistributeInput{
		AssetID:     asset.ID,
		MarketPrice: decimal.RequireFromString("2.50"),
	})
	require.NoError(t, err)

	assert.True(t, out.ProfitPerUnit.Equal(decimal.RequireFromString("0.50")), out.ProfitPerUnit.String())
	assert.True(t, out.TotalProfit.Equal(decimal.NewFromInt(450)), out.TotalProfit.String())
	require.Len(t, out.Payouts, 1)
	assert.Equal(t, "0xdef", out.Payouts[0].InvestorID)

	current, _ := sc.store.Asset(asset.ID)
	assert.Equal(t, entity.AssetStatusDistributed, current.Status)

	balance, err := sc.ledger.QueryBalance(ctx, "0xdef")
	require.NoError(t, err)
	assert.Equal(t, "10450 ℏ", balance.Native)

	_, err = sc.service.DistributeProfits(ctx, usecase.DistributeInput{AssetID: asset.ID, MarketPrice: decimal.NewFromInt(3)})
	require.ErrorIs(t, err, domainerrors.ErrAssetAlreadyDistributed)
}

func TestPlatformService_DistributeProfits_NegativeProfitReversesTransfer(t *testing.T) {
	t.Parallel()

	fx := createTestPlatformService(t)
	mustApply(t, fx.store, entity.EventFarmerRegistered, entity.Farmer{ID: "0xabc", Name: "Ada"})
	mustApply(t, fx.store, entity.EventAssetTokenized, entity.TokenizedAsset{
		ID: "asset_1", TokenID: "0.0.5001", FarmerID: "0xabc", YieldAmount: 1000,
		TokenizedAmount: 1000, RemainingAmount: 900, TokenPrice: decimal.NewFromInt(2), Status: entity.AssetStatusOpen,
	})
	mustApply(t, fx.store, entity.EventInvestmentMade, entity.InvestmentMade{Investment: entity.Investment{
		ID: "inv_1", AssetID: "asset_1", InvestorAccountID: "0xdef", TokenAmount: 900,
	}})

	fx.ledger.EXPECT().
		TransferNativeCurrency(mock.Anything, testTreasury, "0xdef", mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(decimal.NewFromInt(-450))
		})).
		Return(nil).Once()
	fx.eventLog.EXPECT().Append(mock.Anything, eventOfType(entity.EventProfitDistributed)).Return(nil).Once()
	fx.eventLog.EXPECT().Append(mock.Anything, eventOfType(entity.EventAssetStatusChanged)).Return(nil).Once()

	out, err := fx.service.DistributeProfits(context.Background(), usecase.DistributeInput{
		AssetID:     "asset_1",
		MarketPrice: decimal.RequireFromString("1.50"),
	})
	require.NoError(t, err)
	assert.True(t, out.ProfitPerUnit.Equal(decimal.RequireFromString("-0.50")))
	assert.True(t, out.TotalProfit.Equal(decimal.NewFromInt(-450)))
}

func TestPlatformService_DistributeProfits_ZeroProfitSkipsLedger(t *testing.T) {
	t.Parallel()

	fx := createTestPlatformService(t)
	mustApply(t, fx.store, entity.EventAssetTokenized, entity.TokenizedAsset{
		ID: "asset_1", TokenID: "0.0.5001", FarmerID: "0xabc", YieldAmount: 10,
		TokenizedAmount: 10, RemainingAmount: 5, TokenPrice: decimal.NewFromInt(2), Status: entity.AssetStatusOpen,
	})
	mustApply(t, fx.store, entity.EventInvestmentMade, entity.InvestmentMade{Investment: entity.Investment{
		ID: "inv_1", AssetID: "asset_1", InvestorAccountID: "0xdef", TokenAmount: 5,
	}})

	fx.eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Times(2)

	out, err := fx.service.DistributeProfits(context.Background(), usecase.DistributeInput{
		AssetID:     "asset_1",
		MarketPrice: decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	require.Len(t, out.Payouts, 1)
	assert.True(t, out.Payouts[0].Profit.IsZero())
}

func TestPlatformService_DistributeProfits_PartialFailure(t *testing.T) {
	t.Parallel()

	fx := createTestPlatformService(t)
	mustApply(t, fx.store, entity.EventAssetTokenized, entity.TokenizedAsset{
		ID: "asset_1", TokenID: "0.0.5001", FarmerID: "0xabc", YieldAmount: 100,
		TokenizedAmount: 100, RemainingAmount: 100, TokenPrice: decimal.NewFromInt(1), Status: entity.AssetStatusOpen,
	})
	mustApply(t, fx.store, entity.EventInvestmentMade, entity.InvestmentMade{Investment: entity.Investment{
		ID: "inv_1", AssetID: "asset_1", InvestorAccountID: "0xaaa", TokenAmount: 10,
		Timestamp: time.Unix(1, 0).UTC(),
	}})
	mustApply(t, fx.store, entity.EventInvestmentMade, entity.InvestmentMade{Investment: entity.Investment{
		ID: "inv_2", AssetID: "asset_1", InvestorAccountID: "0xbbb", TokenAmount: 20,
		Timestamp: time.Unix(2, 0).UTC(),
	}})

	fx.ledger.EXPECT().TransferNativeCurrency(mock.Anything, testTreasury, "0xaaa", mock.Anything).
		Return(errors.New("ACCOUNT_DELETED")).Once()
	fx.ledger.EXPECT().TransferNativeCurrency(mock.Anything, testTreasury, "0xbbb", mock.Anything).
		Return(nil).Once()
	fx.eventLog.EXPECT().Append(mock.Anything, eventOfType(entity.EventProfitDistributed)).Return(nil).Once()

	out, err := fx.service.DistributeProfits(context.Background(), usecase.DistributeInput{
		AssetID:     "asset_1",
		MarketPrice: decimal.NewFromInt(2),
	})

	var distErr *domainerrors.DistributionError
	require.ErrorAs(t, err, &distErr)
	assert.Equal(t, 1, distErr.Paid)
	assert.Equal(t, 1, distErr.Failed)
	assert.Contains(t, distErr.Details(), "ACCOUNT_DELETED")
	assert.Equal(t, []string{"inv_2"}, distErr.PaidInvestments)

	require.NotNil(t, out)
	require.Len(t, out.Payouts, 1)
	assert.Equal(t, "inv_2", out.Payouts[0].InvestmentID)
	assert.True(t, out.TotalProfit.Equal(decimal.NewFromInt(20)))

	asset, _ := fx.store.Asset("asset_1")
	assert.NotEqual(t, entity.AssetStatusDistributed, asset.Status)
}

func TestPlatformService_AssociateAccount(t *testing.T) {
	t.Parallel()

	fx := createTestPlatformService(t)
	fx.ledger.EXPECT().AssociateAccountWithAsset(mock.Anything, "0.0.42", "0.0.5001").Return("0.0.42@1700000000.1", nil).Once()

	txID, err := fx.service.AssociateAccount(context.Background(), " 0.0.42 ", "0.0.5001")
	require.NoError(t, err)
	assert.Equal(t, "0.0.42@1700000000.1", txID)

	_, err = fx.service.AssociateAccount(context.Background(), "", "0.0.5001")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPlatformService_LogReplayRebuildsState(t *testing.T) {
	t.Parallel()

	sc := newScenario(t)
	asset := sc.maizeScenario(t)
	ctx := context.Background()

	_, err := sc.service.Invest(ctx, usecase.InvestInput{AssetID: asset.ID, InvestorAccountID: "0xdef", Amount: 900})
	require.NoError(t, err)
	_, err = sc.service.RateFarm(ctx, usecase.RateFarmInput{FarmerID: "0xabc", InvestorID: "0xdef", Rating: 4})
	require.NoError(t, err)
	_, err = sc.service.DistributeProfits(ctx, usecase.DistributeInput{AssetID: asset.ID, MarketPrice: decimal.RequireFromString("2.50")})
	require.NoError(t, err)

	rebuilt := store.New()
	rehydrator := NewRehydrationService(RehydrationServiceParams{
		Store:    rebuilt,
		EventLog: sc.eventLog,
		Config:   newTestConfig(2 * time.Second),
		Logger:   newDiscardLogger(),
	})

	report, err := rehydrator.Rehydrate(ctx)
	require.NoError(t, err)
	assert.True(t, report.CaughtUp)
	assert.Zero(t, report.Malformed)
	assert.Zero(t, report.Rejected)

	assert.Equal(t, sc.store.Farmers(), rebuilt.Farmers())
	assert.Equal(t, sc.store.Assets(), rebuilt.Assets())
	assert.Equal(t, sc.store.Investments(), rebuilt.Investments())
	assert.Equal(t, sc.store.Rating("0xabc"), rebuilt.Rating("0xabc"))
}
