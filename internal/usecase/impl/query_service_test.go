package impl

import (
	"context"
	"testing"

	"agritoken/internal/domain/entity"
	domainerrors "agritoken/internal/domain/errors"
	"agritoken/internal/domain/service"
	"agritoken/internal/domain/store"
	mockSvc "agritoken/internal/mocks/service"
	"agritoken/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type queryFixtures struct {
	service  usecase.QueryUsecase
	store    *store.Store
	ledger   *mockSvc.MockLedger
	eventLog *mockSvc.MockEventLog
	qrcode   *mockSvc.MockQRCodeService
}

func createTestQueryService(t *testing.T) queryFixtures {
	st := store.New()
	ledgerMock := mockSvc.NewMockLedger(t)
	eventLogMock := mockSvc.NewMockEventLog(t)
	qrcodeMock := mockSvc.NewMockQRCodeService(t)

	return queryFixtures{
		service: NewQueryService(QueryServiceParams{
			Store:         st,
			Ledger:        ledgerMock,
			EventLog:      eventLogMock,
			QRCodeService: qrcodeMock,
		}),
		store:    st,
		ledger:   ledgerMock,
		eventLog: eventLogMock,
		qrcode:   qrcodeMock,
	}
}

func seedQueryStore(t *testing.T, st *store.Store) {
	t.Helper()

	mustApply(t, st, entity.EventFarmerRegistered, entity.Farmer{ID: "0xabc", Name: "Ada", Role: entity.RoleFarmer})
	mustApply(t, st, entity.EventFarmerRegistered, entity.Farmer{ID: "0xfff", Name: "Bo", Role: entity.RoleFarmer})
	mustApply(t, st, entity.EventAssetTokenized, entity.TokenizedAsset{
		ID: "asset_1", TokenID: "0.0.5001", FarmerID: "0xabc", FarmerName: "Ada", CropType: "maize",
		YieldAmount: 1000, RemainingAmount: 900, TokenPrice: decimal.NewFromInt(2), Status: entity.AssetStatusOpen,
	})
	mustApply(t, st, entity.EventAssetTokenized, entity.TokenizedAsset{
		ID: "asset_2", TokenID: "0.0.5002", FarmerID: "0xfff", FarmerName: "Bo", CropType: "rice",
		YieldAmount: 10, RemainingAmount: 10, TokenPrice: decimal.NewFromInt(1), Status: entity.AssetStatusOpen,
	})
	mustApply(t, st, entity.EventFarmRated, entity.FarmRated{FarmerID: "0xabc", Rating: 4})
	mustApply(t, st, entity.EventFarmRated, entity.FarmRated{FarmerID: "0xabc", Rating: 5})
}

func TestQueryService_ListAssets(t *testing.T) {
	t.Parallel()

	fx := createTestQueryService(t)
	seedQueryStore(t, fx.store)

	listings, err := fx.service.ListAssets(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 2)

	byID := map[string]usecase.AssetListing{}
	for _, l := range listings {
		byID[l.ID] = l
	}

	assert.Equal(t, "4.5", byID["asset_1"].Rating)
	assert.Equal(t, int64(2), byID["asset_1"].RatingCount)
	assert.Equal(t, usecase.NotRated, byID["asset_2"].Rating)
	assert.Zero(t, byID["asset_2"].RatingCount)
}

func TestQueryService_ListFarmerAssets(t *testing.T) {
	t.Parallel()

	fx := createTestQueryService(t)
	seedQueryStore(t, fx.store)

	assets, err := fx.service.ListFarmerAssets(context.Background(), "0xABC")
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "asset_1", assets[0].ID)

	assets, err = fx.service.ListFarmerAssets(context.Background(), "0x000")
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestQueryService_ListInvestments(t *testing.T) {
	t.Parallel()

	fx := createTestQueryService(t)
	seedQueryStore(t, fx.store)
	mustApply(t, fx.store, entity.EventInvestmentMade, entity.InvestmentMade{Investment: entity.Investment{
		ID: "inv_1", AssetID: "asset_1", InvestorAccountID: "0xDEF", TokenAmount: 100,
	}})
	mustApply(t, fx.store, entity.EventInvestmentMade, entity.InvestmentMade{Investment: entity.Investment{
		ID: "inv_2", AssetID: "asset_gone", InvestorAccountID: "0xdef", TokenAmount: 1,
	}})

	listings, err := fx.service.ListInvestments(context.Background(), "0xdef")
	require.NoError(t, err)
	require.Len(t, listings, 2)

	byID := map[string]usecase.InvestmentListing{}
	for _, l := range listings {
		byID[l.ID] = l
	}

	assert.Equal(t, "maize", byID["inv_1"].Asset.CropType)
	assert.Equal(t, "Ada", byID["inv_1"].FarmerName)
	assert.Equal(t, "0.0.5001", byID["inv_1"].Asset.TokenID)
	assert.Equal(t, "Unknown", byID["inv_2"].Asset.CropType)
	assert.Equal(t, "Unknown", byID["inv_2"].FarmerName)

	none, err := fx.service.ListInvestments(context.Background(), "0x123")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestQueryService_GetUser(t *testing.T) {
	t.Parallel()

	fx := createTestQueryService(t)
	seedQueryStore(t, fx.store)

	user, err := fx.service.GetUser(context.Background(), "0xAbc")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, []string{"asset_1"}, user.Assets)

	_, err = fx.service.GetUser(context.Background(), "0x404")
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestQueryService_GetBalance(t *testing.T) {
	t.Parallel()

	t.Run("passes through the ledger balance", func(t *testing.T) {
		t.Parallel()

		fx := createTestQueryService(t)
		want := &service.Balance{AccountID: "0.0.42", Native: "12.5 ℏ", Tokens: map[string]uint64{"0.0.5001": 900}}
		fx.ledger.EXPECT().QueryBalance(mock.Anything, "0.0.42").Return(want, nil).Once()

		got, err := fx.service.GetBalance(context.Background(), "0.0.42")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("ledger failure", func(t *testing.T) {
		t.Parallel()

		fx := createTestQueryService(t)
		fx.ledger.EXPECT().QueryBalance(mock.Anything, "0.0.42").Return(nil, errors.New("INVALID_ACCOUNT_ID")).Once()

		_, err := fx.service.GetBalance(context.Background(), "0.0.42")

		var ledgerErr *domainerrors.LedgerError
		require.ErrorAs(t, err, &ledgerErr)
		assert.Equal(t, "INVALID_ACCOUNT_ID", ledgerErr.Message())
	})

	t.Run("missing account", func(t *testing.T) {
		t.Parallel()

		fx := createTestQueryService(t)

		_, err := fx.service.GetBalance(context.Background(), " ")
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestQueryService_Health(t *testing.T) {
	t.Parallel()

	t.Run("resolved topic", func(t *testing.T) {
		t.Parallel()

		fx := createTestQueryService(t)
		seedQueryStore(t, fx.store)
		fx.eventLog.EXPECT().TopicRef().Return("0.0.777").Once()
		fx.ledger.EXPECT().Network().Return("testnet").Once()
		fx.ledger.EXPECT().TreasuryAccount().Return(testTreasury).Once()

		report, err := fx.service.Health(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "OK", report.Status)
		assert.Equal(t, "testnet", report.Network)
		assert.Equal(t, testTreasury, report.Operator)
		assert.Equal(t, "0.0.777", report.TopicID)
		assert.Equal(t, store.Counts{Farmers: 2, Assets: 2, Investments: 0}, report.Stats)
	})

	t.Run("topic not resolved yet", func(t *testing.T) {
		t.Parallel()

		fx := createTestQueryService(t)
		fx.eventLog.EXPECT().TopicRef().Return("").Once()
		fx.ledger.EXPECT().Network().Return("simulated").Once()
		fx.ledger.EXPECT().TreasuryAccount().Return(testTreasury).Once()

		report, err := fx.service.Health(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Not initialized", report.TopicID)
	})
}

func TestQueryService_AssetShareQR(t *testing.T) {
	t.Parallel()

	fx := createTestQueryService(t)
	seedQueryStore(t, fx.store)
	fx.qrcode.EXPECT().GenerateAssetShareQR("asset_1", "0.0.5001").Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

	png, err := fx.service.AssetShareQR(context.Background(), "asset_1")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)

	_, err = fx.service.AssetShareQR(context.Background(), "asset_404")
	require.ErrorIs(t, err, domainerrors.ErrAssetNotFound)
}
