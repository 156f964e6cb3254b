package eventlog

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"agritoken/internal/domain/entity"
	"agritoken/internal/domain/service"

	"github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/pkg/errors"
	grpcstatus "google.golang.org/grpc/status"
)

// hcsLog implements PositionedLog on a Hedera Consensus Service topic. Message
// sequence numbers start at 1, so a record's position is its sequence number minus one.
type hcsLog struct {
	client      *hedera.Client
	configured  string
	createTopic bool
	memo        string

	mu      sync.RWMutex
	topicID *hedera.TopicID

	logger *slog.Logger
}

// NewHCSLog creates a consensus-topic event log over an operator-bound client.
func NewHCSLog(client *hedera.Client, topic string, createTopic bool, memo string, logger *slog.Logger) (service.PositionedLog, error) {
	if client == nil {
		return nil, errors.New("hedera client is required for hcs provider")
	}

	return &hcsLog{
		client:      client,
		configured:  topic,
		createTopic: createTopic,
		memo:        memo,
		logger:      logger,
	}, nil
}

// EnsureTopic creates a new consensus topic when topic creation is enabled and
// falls back to the configured topic id when creation fails.
func (l *hcsLog) EnsureTopic(_ context.Context) (string, bool, error) {
	if l.createTopic {
		topicID, err := l.newTopic()
		if err == nil {
			l.setTopic(topicID)
			l.logger.Info("Consensus topic created", slog.String("topic_id", topicID.String()))

			return topicID.String(), true, nil
		}
		l.logger.Error("Failed to create consensus topic", slog.Any("error", err))
	}

	if l.configured == "" {
		return "", false, errors.New("no consensus topic id configured")
	}

	topicID, err := hedera.TopicIDFromString(l.configured)
	if err != nil {
		return "", false, errors.Wrapf(err, "parse topic id %q", l.configured)
	}
	l.setTopic(topicID)
	l.logger.Info("Using configured consensus topic", slog.String("topic_id", topicID.String()))

	return topicID.String(), false, nil
}

func (l *hcsLog) newTopic() (hedera.TopicID, error) {
	resp, err := hedera.NewTopicCreateTransaction().
		SetTopicMemo(l.memo).
		SetSubmitKey(l.client.GetOperatorPublicKey()).
		Execute(l.client)
	if err != nil {
		return hedera.TopicID{}, errors.WithStack(err)
	}

	receipt, err := resp.GetReceipt(l.client)
	if err != nil {
		return hedera.TopicID{}, errors.WithStack(err)
	}
	if receipt.TopicID == nil {
		return hedera.TopicID{}, errors.New("topic create receipt has no topic id")
	}

	return *receipt.TopicID, nil
}

func (l *hcsLog) setTopic(id hedera.TopicID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.topicID = &id
}

func (l *hcsLog) topic() (hedera.TopicID, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.topicID == nil {
		return hedera.TopicID{}, errors.New("consensus topic is not resolved")
	}

	return *l.topicID, nil
}

func (l *hcsLog) TopicRef() string {
	id, err := l.topic()
	if err != nil {
		return ""
	}

	return id.String()
}

func (l *hcsLog) Append(_ context.Context, ev *entity.Event) error {
	topicID, err := l.topic()
	if err != nil {
		return err
	}

	data, err := json.Marshal(ev)
	if err != nil {
		return errors.WithStack(err)
	}

	resp, err := hedera.NewTopicMessageSubmitTransaction().
		SetTopicID(topicID).
		SetMessage(data).
		Execute(l.client)
	if err != nil {
		return errors.Wrapf(err, "submit to %s", topicID)
	}
	if _, err := resp.GetReceipt(l.client); err != nil {
		return errors.Wrapf(err, "receipt for %s", topicID)
	}

	l.logger.Debug("[HCS] Event appended",
		slog.String("event_id", ev.ID),
		slog.String("event_type", string(ev.Type)),
		slog.String("transaction_id", resp.TransactionID.String()),
	)

	return nil
}

func (l *hcsLog) Head(_ context.Context) (int64, error) {
	topicID, err := l.topic()
	if err != nil {
		return 0, err
	}

	info, err := hedera.NewTopicInfoQuery().SetTopicID(topicID).Execute(l.client)
	if err != nil {
		return 0, errors.Wrapf(err, "topic info for %s", topicID)
	}

	return int64(info.SequenceNumber), nil
}

func (l *hcsLog) Subscribe(_ context.Context, onRecord func(service.Record), onError func(error)) (service.Subscription, error) {
	topicID, err := l.topic()
	if err != nil {
		return nil, err
	}

	handle, err := hedera.NewTopicMessageQuery().
		SetTopicID(topicID).
		SetStartTime(time.Unix(0, 0)).
		SetErrorHandler(subscriptionErrorHandler(topicID.String(), onError)).
		Subscribe(l.client, func(message hedera.TopicMessage) {
			onRecord(service.Record{
				Payload:  message.Contents,
				Position: int64(message.SequenceNumber) - 1,
			})
		})
	if err != nil {
		return nil, errors.Wrapf(err, "subscribe to %s", topicID)
	}

	return &handleSubscription{stop: handle.Unsubscribe}, nil
}

// subscriptionErrorHandler reports a failed mirror node stream to onError.
func subscriptionErrorHandler(topic string, onError func(error)) func(grpcstatus.Status) {
	return func(stat grpcstatus.Status) {
		onError(errors.Errorf("consensus subscription to %s failed: %s: %s", topic, stat.Code().String(), stat.Message()))
	}
}

// Close is a no-op; the shared client is closed by its own lifecycle hook.
func (l *hcsLog) Close() error {
	return nil
}
