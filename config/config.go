package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"agritoken/internal/domain/constants"
	"agritoken/internal/domain/lifecycle"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultDotEnvFile         = ".env"
	defaultTopic              = "agritoken-events"
	defaultQRCodeSize         = 256
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Ledger configuration for the distributed ledger backing asset tokens
	Ledger *LedgerConfig `json:"ledger" yaml:"ledger"`

	// EventLog configuration for the ordered log every domain event is mirrored to
	EventLog *EventLogConfig `json:"eventLog" yaml:"eventLog"`

	// QRCode configuration for asset share QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LedgerConfig defines the ledger provider and the platform operator account.
type LedgerConfig struct {
	// Provider type: "memory" for the simulated ledger or "hedera"
	Provider string `json:"provider" yaml:"provider"`

	// Network name: testnet, previewnet or mainnet
	Network string `json:"network" yaml:"network"`

	// Operator account id; also the treasury of every created asset
	OperatorID string `json:"operatorId" yaml:"operatorId"`

	// Operator private key in DER or raw hex
	OperatorKey string `json:"operatorKey" yaml:"operatorKey"`

	// Initial native balance of accounts on the simulated ledger
	SimulatedBalance string `json:"simulatedBalance" yaml:"simulatedBalance"`
}

// EventLogConfig defines the event log provider and replay behavior.
type EventLogConfig struct {
	// Provider type: memory, redis, kafka, google or hcs
	Provider string `json:"provider" yaml:"provider"`

	// Topic name, stream key or consensus topic id depending on provider
	Topic string `json:"topic" yaml:"topic"`

	// CreateTopic creates a fresh topic on startup, falling back to Topic on failure
	CreateTopic bool `json:"createTopic" yaml:"createTopic"`

	// ReplayWindow bounds how long startup waits for the log to be replayed
	ReplayWindow time.Duration `json:"replayWindow" yaml:"replayWindow"`

	Redis  RedisConfig  `json:"redis" yaml:"redis"`
	Kafka  KafkaConfig  `json:"kafka" yaml:"kafka"`
	Google GoogleConfig `json:"google" yaml:"google"`
	HCS    HCSConfig    `json:"hcs" yaml:"hcs"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

type KafkaConfig struct {
	Brokers []string `json:"brokers" yaml:"brokers"`
}

type GoogleConfig struct {
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Retention applied to created topics; replay cannot see older messages
	Retention time.Duration `json:"retention" yaml:"retention"`
}

type HCSConfig struct {
	Memo string `json:"memo" yaml:"memo"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// EVENTLOG_REPLAYWINDOW -> eventLog.replayWindow
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	if err := loadDotEnv(defaultDotEnvFile); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// loadDotEnv exports a local .env file into the process environment when present.
// Variables already set in the environment take precedence.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return errors.Wrapf(err, "load %s", path)
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Ledger == nil {
		cfg.Ledger = &LedgerConfig{}
	}
	if cfg.Ledger.Provider == "" {
		cfg.Ledger.Provider = constants.LedgerProviderMemory
	}
	if cfg.Ledger.Network == "" {
		cfg.Ledger.Network = "testnet"
	}
	// Account variables used by the original node deployment.
	if cfg.Ledger.OperatorID == "" {
		cfg.Ledger.OperatorID = os.Getenv("MY_ACCOUNT_ID")
	}
	if cfg.Ledger.OperatorKey == "" {
		cfg.Ledger.OperatorKey = os.Getenv("MY_PRIVATE_KEY")
	}

	if cfg.EventLog == nil {
		cfg.EventLog = &EventLogConfig{}
	}
	if cfg.EventLog.Provider == "" {
		cfg.EventLog.Provider = constants.EventLogProviderMemory
	}
	if cfg.EventLog.Topic == "" {
		cfg.EventLog.Topic = os.Getenv("AGRITOKEN_TOPIC_ID")
	}
	if cfg.EventLog.Topic == "" && cfg.EventLog.Provider != constants.EventLogProviderHCS {
		cfg.EventLog.Topic = defaultTopic
	}
	if cfg.EventLog.ReplayWindow <= 0 {
		cfg.EventLog.ReplayWindow = lifecycle.DefaultReplayWindow
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
