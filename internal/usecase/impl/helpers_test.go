package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"agritoken/config"
	"agritoken/internal/domain/entity"
	"agritoken/internal/domain/service"
	"agritoken/internal/domain/store"
	"agritoken/internal/infra/eventlog"
	"agritoken/internal/infra/ledger"
	mockSvc "agritoken/internal/mocks/service"
	"agritoken/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testTreasury = "0.0.1001"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(window time.Duration) *config.Config {
	return &config.Config{
		EventLog: &config.EventLogConfig{ReplayWindow: window},
	}
}

// platformFixtures wires the platform service to mocked collaborators.
type platformFixtures struct {
	service  usecase.PlatformUsecase
	store    *store.Store
	ledger   *mockSvc.MockLedger
	eventLog *mockSvc.MockEventLog
}

func createTestPlatformService(t *testing.T) platformFixtures {
	st := store.New()
	ledgerMock := mockSvc.NewMockLedger(t)
	eventLogMock := mockSvc.NewMockEventLog(t)

	ledgerMock.EXPECT().TreasuryAccount().Return(testTreasury).Maybe()

	svc := NewPlatformService(PlatformServiceParams{
		Store:    st,
		Ledger:   ledgerMock,
		EventLog: eventLogMock,
		Logger:   newDiscardLogger(),
	})

	return platformFixtures{
		service:  svc,
		store:    st,
		ledger:   ledgerMock,
		eventLog: eventLogMock,
	}
}

// scenario wires the platform service to the simulated ledger and the in-memory log.
type scenario struct {
	service  usecase.PlatformUsecase
	queries  usecase.QueryUsecase
	store    *store.Store
	ledger   service.Ledger
	eventLog service.PositionedLog
}

func newScenario(t *testing.T) *scenario {
	t.Helper()

	st := store.New()
	l := ledger.NewMemoryLedger(testTreasury, decimal.NewFromInt(10000), newDiscardLogger())
	log := eventlog.NewMemoryLog("agritoken-events", true, newDiscardLogger())

	_, _, err := log.EnsureTopic(context.Background())
	require.NoError(t, err)

	return &scenario{
		service: NewPlatformService(PlatformServiceParams{
			Store:    st,
			Ledger:   l,
			EventLog: log,
			Logger:   newDiscardLogger(),
		}),
		queries:  newTestQueryService(st, l, log),
		store:    st,
		ledger:   l,
		eventLog: log,
	}
}

func newTestQueryService(st *store.Store, l service.Ledger, log service.EventLog) usecase.QueryUsecase {
	return NewQueryService(QueryServiceParams{
		Store:         st,
		Ledger:        l,
		EventLog:      log,
		QRCodeService: nil,
	})
}

// maizeScenario registers farmer 0xabc and tokenizes 1000 kg of maize at 2.00
// with a 10% retained share.
func (s *scenario) maizeScenario(t *testing.T) *entity.TokenizedAsset {
	t.Helper()
	ctx := context.Background()

	_, err := s.service.RegisterFarmer(ctx, usecase.RegisterFarmerInput{AccountID: "0xABC", Name: "Ada"})
	require.NoError(t, err)

	out, err := s.service.TokenizeAsset(ctx, usecase.TokenizeAssetInput{
		FarmerID:    "0xabc",
		CropType:    "maize",
		YieldAmount: 1000,
		HarvestDate: "2025-09-01",
		TokenPrice:  decimal.RequireFromString("2.00"),
		ROI:         decimal.NewFromInt(15),
		FarmerShare: 10,
	})
	require.NoError(t, err)

	return out.Asset
}

func mustApply(t *testing.T, st *store.Store, eventType entity.EventType, payload any) {
	t.Helper()
	ev, err := entity.NewEvent(eventType, payload)
	require.NoError(t, err)
	_, err = st.Apply(ev)
	require.NoError(t, err)
}
