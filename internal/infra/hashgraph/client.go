// Package hashgraph builds the Hedera network client shared by the ledger and the
// consensus-topic event log.
package hashgraph

import (
	"context"
	"log/slog"

	"agritoken/config"
	"agritoken/internal/domain/constants"

	"github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrNotConfigured is returned when a Hedera-backed component is selected without an operator account.
var ErrNotConfigured = errors.New("hedera operator account is not configured")

type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewClient returns a client bound to the configured network and operator. It
// returns a nil client when neither the ledger nor the event log uses Hedera.
func NewClient(params ClientParams) (*hedera.Client, error) {
	cfg := params.Config
	if !requiresHedera(cfg) {
		return nil, nil
	}

	client, err := Dial(cfg.Ledger.Network, cfg.Ledger.OperatorID, cfg.Ledger.OperatorKey)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Hedera client initialized",
		slog.String("network", cfg.Ledger.Network),
		slog.String("operator", cfg.Ledger.OperatorID),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Hedera client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// Dial creates a client for network with the given operator credentials.
func Dial(network, operatorID, operatorKey string) (*hedera.Client, error) {
	if operatorID == "" || operatorKey == "" {
		return nil, ErrNotConfigured
	}

	accountID, err := hedera.AccountIDFromString(operatorID)
	if err != nil {
		return nil, errors.Wrapf(err, "parse operator id %q", operatorID)
	}
	privateKey, err := hedera.PrivateKeyFromString(operatorKey)
	if err != nil {
		return nil, errors.Wrap(err, "parse operator key")
	}

	var client *hedera.Client
	switch network {
	case "", "testnet":
		client = hedera.ClientForTestnet()
	case "previewnet":
		client = hedera.ClientForPreviewnet()
	case "mainnet":
		client = hedera.ClientForMainnet()
	default:
		return nil, errors.Errorf("unknown hedera network: %s", network)
	}
	client.SetOperator(accountID, privateKey)

	return client, nil
}

func requiresHedera(cfg *config.Config) bool {
	return (cfg.Ledger != nil && cfg.Ledger.Provider == constants.LedgerProviderHedera) ||
		(cfg.EventLog != nil && cfg.EventLog.Provider == constants.EventLogProviderHCS)
}
