package ledger

import (
	"context"
	"strings"

	"agritoken/internal/domain/service"

	"github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// tinybarsPerHbar is the native currency's smallest unit exponent.
const tinybarsPerHbar = 8

// hederaLedger implements Ledger on the Hedera network. The client operator is
// the treasury of every asset it creates and pays every profit transfer.
type hederaLedger struct {
	client   *hedera.Client
	network  string
	treasury hedera.AccountID
}

// NewHederaLedger wraps an operator-bound client.
func NewHederaLedger(client *hedera.Client, network string) (service.Ledger, error) {
	if client == nil {
		return nil, errors.New("hedera client is required for hedera ledger")
	}

	return &hederaLedger{
		client:   client,
		network:  network,
		treasury: client.GetOperatorAccountID(),
	}, nil
}

// parseAccount accepts shard.realm.num ids and 0x-prefixed EVM addresses.
func parseAccount(id string) (hedera.AccountID, error) {
	id = strings.TrimSpace(id)
	if hex, ok := strings.CutPrefix(strings.ToLower(id), "0x"); ok {
		acc, err := hedera.AccountIDFromEvmAddress(0, 0, hex)

		return acc, errors.Wrapf(err, "parse evm address %q", id)
	}

	acc, err := hedera.AccountIDFromString(id)

	return acc, errors.Wrapf(err, "parse account id %q", id)
}

func (l *hederaLedger) CreateFungibleAsset(_ context.Context, spec service.FungibleAssetSpec) (string, error) {
	treasury, err := parseAccount(spec.Treasury)
	if err != nil {
		return "", err
	}

	operatorKey := l.client.GetOperatorPublicKey()
	resp, err := hedera.NewTokenCreateTransaction().
		SetTokenName(spec.Name).
		SetTokenSymbol(spec.Symbol).
		SetTokenType(hedera.TokenTypeFungibleCommon).
		SetDecimals(uint(spec.Decimals)).
		SetInitialSupply(uint64(spec.InitialSupply)).
		SetTreasuryAccountID(treasury).
		SetAdminKey(operatorKey).
		SetSupplyKey(operatorKey).
		Execute(l.client)
	if err != nil {
		return "", errors.WithStack(err)
	}

	receipt, err := resp.GetReceipt(l.client)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if receipt.TokenID == nil {
		return "", errors.New("token create receipt has no token id")
	}

	return receipt.TokenID.String(), nil
}

func (l *hederaLedger) TransferAssetUnits(_ context.Context, assetID, from, to string, quantity int64) error {
	tokenID, err := hedera.TokenIDFromString(assetID)
	if err != nil {
		return errors.Wrapf(err, "parse token id %q", assetID)
	}
	src, err := parseAccount(from)
	if err != nil {
		return err
	}
	dst, err := parseAccount(to)
	if err != nil {
		return err
	}

	resp, err := hedera.NewTransferTransaction().
		AddTokenTransfer(tokenID, src, -quantity).
		AddTokenTransfer(tokenID, dst, quantity).
		Execute(l.client)
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = resp.GetReceipt(l.client)

	return errors.WithStack(err)
}

func (l *hederaLedger) TransferNativeCurrency(_ context.Context, from, to string, amount decimal.Decimal) error {
	src, err := parseAccount(from)
	if err != nil {
		return err
	}
	dst, err := parseAccount(to)
	if err != nil {
		return err
	}

	// Negative amounts flow from dst to src through the signs of the two legs.
	tinybars := amount.Shift(tinybarsPerHbar).Round(0).IntPart()
	resp, err := hedera.NewTransferTransaction().
		AddHbarTransfer(src, hedera.HbarFromTinybar(-tinybars)).
		AddHbarTransfer(dst, hedera.HbarFromTinybar(tinybars)).
		Execute(l.client)
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = resp.GetReceipt(l.client)

	return errors.WithStack(err)
}

func (l *hederaLedger) QueryBalance(_ context.Context, accountID string) (*service.Balance, error) {
	acc, err := parseAccount(accountID)
	if err != nil {
		return nil, err
	}

	balance, err := hedera.NewAccountBalanceQuery().
		SetAccountID(acc).
		Execute(l.client)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tokens := make(map[string]uint64, len(balance.Token))
	//nolint:staticcheck // the token map is the only iterable view of token balances
	for id, units := range balance.Token {
		tokens[id.String()] = units
	}

	return &service.Balance{
		AccountID: accountID,
		Native:    balance.Hbars.String(),
		Tokens:    tokens,
	}, nil
}

// AssociateAccountWithAsset signs with the operator key only, so it succeeds for
// accounts the operator controls.
func (l *hederaLedger) AssociateAccountWithAsset(_ context.Context, accountID, assetID string) (string, error) {
	acc, err := parseAccount(accountID)
	if err != nil {
		return "", err
	}
	tokenID, err := hedera.TokenIDFromString(assetID)
	if err != nil {
		return "", errors.Wrapf(err, "parse token id %q", assetID)
	}

	tx, err := hedera.NewTokenAssociateTransaction().
		SetAccountID(acc).
		SetTokenIDs(tokenID).
		FreezeWith(l.client)
	if err != nil {
		return "", errors.WithStack(err)
	}

	resp, err := tx.Execute(l.client)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if _, err := resp.GetReceipt(l.client); err != nil {
		return "", errors.WithStack(err)
	}

	return resp.TransactionID.String(), nil
}

func (l *hederaLedger) TreasuryAccount() string {
	return l.treasury.String()
}

func (l *hederaLedger) Network() string {
	return l.network
}
