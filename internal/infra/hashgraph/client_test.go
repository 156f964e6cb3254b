package hashgraph

import (
	"testing"

	"agritoken/config"
	"agritoken/internal/domain/constants"

	"github.com/stretchr/testify/assert"
)

func TestDial_RequiresOperator(t *testing.T) {
	_, err := Dial("testnet", "", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestDial_RejectsBadAccount(t *testing.T) {
	_, err := Dial("testnet", "not-an-account", "302e020100300506032b657004220420")
	assert.Error(t, err)
}

func TestRequiresHedera(t *testing.T) {
	cfg := &config.Config{
		Ledger:   &config.LedgerConfig{Provider: constants.LedgerProviderMemory},
		EventLog: &config.EventLogConfig{Provider: constants.EventLogProviderMemory},
	}
	assert.False(t, requiresHedera(cfg))

	cfg.EventLog.Provider = constants.EventLogProviderHCS
	assert.True(t, requiresHedera(cfg))

	cfg.EventLog.Provider = constants.EventLogProviderMemory
	cfg.Ledger.Provider = constants.LedgerProviderHedera
	assert.True(t, requiresHedera(cfg))
}
