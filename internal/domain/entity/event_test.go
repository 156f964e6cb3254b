package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent_RoundTrip(t *testing.T) {
	ev, err := NewEvent(EventFarmRated, FarmRated{FarmerID: "0xabc", InvestorID: "0xdef", Rating: 4})
	require.NoError(t, err)

	raw, err := json.Marshal(ev)
	require.NoError(t, err)

	parsed, err := ParseEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, ev.ID, parsed.ID)
	assert.Equal(t, EventFarmRated, parsed.Type)

	var payload FarmRated
	require.NoError(t, parsed.Decode(&payload))
	assert.Equal(t, int64(4), payload.Rating)
}

func TestParseEvent_Malformed(t *testing.T) {
	_, err := ParseEvent([]byte("not json"))
	assert.Error(t, err)

	_, err = ParseEvent([]byte(`{"type":"FARM_RATED"}`))
	assert.Error(t, err)
}

func TestAssetStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from AssetStatus
		to   AssetStatus
		want bool
	}{
		{AssetStatusOpen, AssetStatusFullyInvested, true},
		{AssetStatusOpen, AssetStatusDistributed, true},
		{AssetStatusFullyInvested, AssetStatusDistributed, true},
		{AssetStatusFullyInvested, AssetStatusOpen, false},
		{AssetStatusDistributed, AssetStatusFullyInvested, false},
		{AssetStatusOpen, AssetStatusOpen, true},
		{AssetStatusOpen, AssetStatus("burned"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestFarmRating_Average(t *testing.T) {
	assert.Zero(t, FarmRating{}.Average())
	assert.False(t, FarmRating{}.Rated())
	assert.InDelta(t, 4.5, FarmRating{TotalRating: 9, RatingCount: 2}.Average(), 1e-9)
}

func TestNormalizeAccountID(t *testing.T) {
	assert.Equal(t, "0xabc", NormalizeAccountID("  0xABC "))
	assert.Equal(t, "0.0.1234", NormalizeAccountID("0.0.1234"))
}
