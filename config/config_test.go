package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"agritoken/internal/domain/constants"
	"agritoken/internal/domain/lifecycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
env:
  env: develop
  serviceName: agritoken
eventLog:
  provider: memory
  replayWindow: 5s
  kafka:
    brokers: []
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlBody), 0o600))

	t.Setenv("EVENTLOG_REPLAYWINDOW", "2s")
	t.Setenv("EVENTLOG_KAFKA_BROKERS", "b1:9092,b2:9092")

	cfg, err := LoadWithEnv[Config]("test", relPath(t, dir))
	require.NoError(t, err)

	assert.Equal(t, "agritoken", cfg.Env.ServiceName)
	require.NotNil(t, cfg.EventLog)
	assert.Equal(t, 2*time.Second, cfg.EventLog.ReplayWindow)
	assert.Equal(t, []string{"b1:9092", "b2:9092"}, cfg.EventLog.Kafka.Brokers)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	t.Setenv("MY_ACCOUNT_ID", "0.0.1001")
	t.Setenv("AGRITOKEN_TOPIC_ID", "")

	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.LedgerProviderMemory, cfg.Ledger.Provider)
	assert.Equal(t, "0.0.1001", cfg.Ledger.OperatorID)
	assert.Equal(t, constants.EventLogProviderMemory, cfg.EventLog.Provider)
	assert.Equal(t, defaultTopic, cfg.EventLog.Topic)
	assert.Equal(t, lifecycle.DefaultReplayWindow, cfg.EventLog.ReplayWindow)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
}

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func relPath(t *testing.T, dir string) string {
	t.Helper()
	pwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(pwd, dir)
	require.NoError(t, err)

	return rel
}
