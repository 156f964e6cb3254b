// Package ledger provides the value-movement ledger that backs tokenized assets.
package ledger

import (
	"log/slog"

	"agritoken/config"
	"agritoken/internal/domain/constants"
	"agritoken/internal/domain/service"

	"github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const defaultSimulatedBalance = "10000"

// LedgerParams holds dependencies for Ledger, injected by Fx
type LedgerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	HederaClient *hedera.Client `optional:"true"`
}

// NewLedger creates a Ledger based on configuration
func NewLedger(params LedgerParams) (service.Ledger, error) {
	cfg := params.Config.Ledger
	logger := params.Logger

	if cfg == nil {
		cfg = &config.LedgerConfig{Provider: constants.LedgerProviderMemory}
	}

	switch cfg.Provider {
	case "", constants.LedgerProviderMemory:
		raw := cfg.SimulatedBalance
		if raw == "" {
			raw = defaultSimulatedBalance
		}
		balance, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "parse simulated balance %q", raw)
		}

		logger.Warn("Using simulated ledger, no value moves on a real network",
			slog.String("treasury", cfg.OperatorID),
		)

		return NewMemoryLedger(cfg.OperatorID, balance, logger), nil

	case constants.LedgerProviderHedera:
		logger.Info("Using Hedera ledger", slog.String("network", cfg.Network))

		return NewHederaLedger(params.HederaClient, cfg.Network)

	default:
		return nil, errors.Errorf("unknown ledger provider: %s", cfg.Provider)
	}
}

// Module provides the ledger FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLedger),
)
