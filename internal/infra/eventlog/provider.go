// Package eventlog provides the ordered append-only log that every domain event
// is mirrored to and replayed from on startup.
package eventlog

import (
	"context"
	"log/slog"

	"agritoken/config"
	"agritoken/internal/domain/constants"
	"agritoken/internal/domain/service"

	"github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// EventLogParams holds dependencies for EventLog, injected by Fx
type EventLogParams struct {
	fx.In

	Lc           fx.Lifecycle
	Ctx          context.Context
	Config       *config.Config
	Logger       *slog.Logger
	HederaClient *hedera.Client `optional:"true"`
}

// NewEventLog creates an EventLog based on configuration
func NewEventLog(params EventLogParams) (service.EventLog, error) {
	cfg := params.Config.EventLog
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Event log not configured, using in-memory log")

		return NewMemoryLog(constants.EventLogProviderMemory, false, logger), nil
	}

	var eventLog service.EventLog
	var err error

	switch cfg.Provider {
	case constants.EventLogProviderMemory:
		logger.Warn("Using in-memory event log, state will not survive a restart",
			slog.String("topic", cfg.Topic),
		)

		eventLog = NewMemoryLog(cfg.Topic, cfg.CreateTopic, logger)

	case constants.EventLogProviderRedis:
		eventLog, err = NewRedisStreamLog(cfg.Redis, cfg.Topic, cfg.CreateTopic, logger)

	case constants.EventLogProviderKafka:
		eventLog, err = NewKafkaLog(cfg.Kafka.Brokers, cfg.Topic, cfg.CreateTopic, logger)

	case constants.EventLogProviderGoogle:
		if cfg.Google.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.Topic == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		eventLog, err = NewGooglePubSubLog(params.Ctx, cfg.Google.ProjectID, cfg.Topic, cfg.Google.Retention, cfg.CreateTopic, logger)

	case constants.EventLogProviderHCS:
		eventLog, err = NewHCSLog(params.HederaClient, cfg.Topic, cfg.CreateTopic, cfg.HCS.Memo, logger)

	default:
		return nil, errors.Errorf("unknown event log provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventLog")

			return eventLog.Close()
		},
	})

	return eventLog, nil
}

// Module provides the event log FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventLog),
)
