package store

import (
	"testing"
	"time"

	"agritoken/internal/domain/entity"
	"agritoken/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEvent(t *testing.T, eventType entity.EventType, payload any) *entity.Event {
	t.Helper()
	ev, err := entity.NewEvent(eventType, payload)
	require.NoError(t, err)

	return ev
}

// scenarioLog builds the event sequence of a farmer tokenizing a maize harvest
// that is then fully invested, rated and distributed.
func scenarioLog(t *testing.T) []*entity.Event {
	t.Helper()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	farmer := entity.Farmer{
		ID:        "0xABC",
		Name:      "Ada",
		Role:      entity.RoleFarmer,
		Assets:    []string{},
		CreatedAt: now,
	}
	asset := entity.TokenizedAsset{
		ID:              "asset_1",
		TokenID:         "0.0.5001",
		FarmerID:        "0xabc",
		FarmerName:      "Ada",
		CropType:        "maize",
		YieldAmount:     1000,
		TokenizedAmount: 1000,
		FarmerTokens:    100,
		RemainingAmount: 900,
		TokenPrice:      decimal.RequireFromString("2.00"),
		ROI:             decimal.NewFromInt(15),
		FarmerShare:     10,
		Status:          entity.AssetStatusOpen,
		CreatedAt:       now.Add(time.Minute),
		TokenSymbol:     "MAI1234",
	}
	inv := entity.InvestmentMade{
		Investment: entity.Investment{
			ID:                "inv_1",
			AssetID:           "asset_1",
			InvestorAccountID: "0xDEF",
			TokenAmount:       900,
			TotalCostUSD:      decimal.RequireFromString("1800"),
			Timestamp:         now.Add(2 * time.Minute),
		},
		Asset: entity.InvestmentAssetRef{CropType: "maize", FarmerName: "Ada"},
	}

	return []*entity.Event{
		mustEvent(t, entity.EventSystemInit, entity.SystemInit{Message: "init", TopicRef: "topic"}),
		mustEvent(t, entity.EventFarmerRegistered, farmer),
		mustEvent(t, entity.EventAssetTokenized, asset),
		mustEvent(t, entity.EventInvestmentMade, inv),
		mustEvent(t, entity.EventFarmRated, entity.FarmRated{FarmerID: "0xabc", Rating: 4}),
		mustEvent(t, entity.EventFarmRated, entity.FarmRated{FarmerID: "0xabc", Rating: 5}),
		mustEvent(t, entity.EventProfitDistributed, entity.ProfitDistributed{AssetID: "asset_1", InvestmentID: "inv_1"}),
		mustEvent(t, entity.EventAssetStatusChanged, entity.AssetStatusChanged{AssetID: "asset_1", Status: entity.AssetStatusDistributed}),
	}
}

func applyAll(t *testing.T, s *Store, events []*entity.Event) {
	t.Helper()
	for _, ev := range events {
		_, err := s.Apply(ev)
		require.NoError(t, err)
	}
}

func TestStore_ApplyScenario(t *testing.T) {
	s := New()
	applyAll(t, s, scenarioLog(t))

	farmer, ok := s.Farmer("0xabc")
	require.True(t, ok)
	assert.Equal(t, []string{"asset_1"}, farmer.Assets)
	assert.Equal(t, int64(1000), farmer.TotalTokens)

	asset, ok := s.Asset("asset_1")
	require.True(t, ok)
	assert.Zero(t, asset.RemainingAmount)
	assert.Equal(t, entity.AssetStatusDistributed, asset.Status)

	rating := s.Rating("0xABC")
	assert.Equal(t, int64(2), rating.RatingCount)
	assert.InDelta(t, 4.5, rating.Average(), 1e-9)

	invs := s.InvestmentsByInvestor("0xdef")
	require.Len(t, invs, 1)
	assert.Equal(t, "0xdef", invs[0].InvestorAccountID)

	assert.Equal(t, Counts{Farmers: 1, Assets: 1, Investments: 1}, s.Counts())
}

func TestStore_ReplayReproducesLiveState(t *testing.T) {
	events := scenarioLog(t)

	live := New()
	applyAll(t, live, events)

	replayed := New()
	applyAll(t, replayed, events)

	assert.Equal(t, live.Farmers(), replayed.Farmers())
	assert.Equal(t, live.Assets(), replayed.Assets())
	assert.Equal(t, live.Investments(), replayed.Investments())
	assert.Equal(t, live.Rating("0xabc"), replayed.Rating("0xabc"))
}

func TestStore_DoubleReplayIsNoop(t *testing.T) {
	events := scenarioLog(t)
	s := New()
	applyAll(t, s, events)

	before := s.Rating("0xabc")
	farmer, _ := s.Farmer("0xabc")

	for _, ev := range events {
		applied, err := s.Apply(ev)
		require.NoError(t, err)
		assert.False(t, applied, "event %s applied twice", ev.Type)
	}

	assert.Equal(t, before, s.Rating("0xabc"))
	again, _ := s.Farmer("0xabc")
	assert.Equal(t, farmer.TotalTokens, again.TotalTokens)
	assert.Len(t, again.Assets, 1)
}

func TestStore_InvestmentClampsAndFlipsStatus(t *testing.T) {
	s := New()
	applyAll(t, s, []*entity.Event{
		mustEvent(t, entity.EventAssetTokenized, entity.TokenizedAsset{
			ID: "asset_2", YieldAmount: 10, RemainingAmount: 10, Status: entity.AssetStatusOpen,
		}),
		mustEvent(t, entity.EventInvestmentMade, entity.InvestmentMade{
			Investment: entity.Investment{ID: "inv_a", AssetID: "asset_2", TokenAmount: 4},
		}),
	})

	asset, _ := s.Asset("asset_2")
	assert.Equal(t, int64(6), asset.RemainingAmount)
	assert.Equal(t, entity.AssetStatusOpen, asset.Status)

	_, err := s.Apply(mustEvent(t, entity.EventInvestmentMade, entity.InvestmentMade{
		Investment: entity.Investment{ID: "inv_b", AssetID: "asset_2", TokenAmount: 7},
	}))
	require.NoError(t, err)

	asset, _ = s.Asset("asset_2")
	assert.Zero(t, asset.RemainingAmount)
	assert.Equal(t, entity.AssetStatusFullyInvested, asset.Status)
	assert.Len(t, s.InvestmentsByAsset("asset_2"), 2)
}

func TestStore_StatusRegressionRejected(t *testing.T) {
	s := New()
	applyAll(t, s, []*entity.Event{
		mustEvent(t, entity.EventAssetTokenized, entity.TokenizedAsset{ID: "asset_3", Status: entity.AssetStatusDistributed}),
	})

	applied, err := s.Apply(mustEvent(t, entity.EventAssetStatusChanged, entity.AssetStatusChanged{
		AssetID: "asset_3", Status: entity.AssetStatusOpen,
	}))
	assert.False(t, applied)
	assert.True(t, errors.Is(err, ErrStatusRegression))

	asset, _ := s.Asset("asset_3")
	assert.Equal(t, entity.AssetStatusDistributed, asset.Status)
}

func TestStore_ApplyErrors(t *testing.T) {
	s := New()

	_, err := s.Apply(&entity.Event{ID: "x", Type: "MYSTERY", Data: []byte(`{}`)})
	assert.True(t, errors.Is(err, ErrUnknownEventType))
	assert.False(t, s.Applied("x"))

	_, err = s.Apply(&entity.Event{ID: "y", Type: entity.EventFarmerRegistered, Data: []byte(`{"id":`)})
	assert.Error(t, err)

	_, err = s.Apply(nil)
	assert.Error(t, err)
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := New()
	applyAll(t, s, []*entity.Event{
		mustEvent(t, entity.EventFarmerRegistered, entity.Farmer{ID: "0x1", Assets: []string{"a"}}),
	})

	f, _ := s.Farmer("0x1")
	f.Assets[0] = "mutated"

	again, _ := s.Farmer("0x1")
	assert.Equal(t, "a", again.Assets[0])
}
