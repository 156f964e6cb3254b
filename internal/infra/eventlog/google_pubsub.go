package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"agritoken/internal/domain/constants"
	"agritoken/internal/domain/entity"
	"agritoken/internal/domain/lifecycle"
	"agritoken/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	defaultPubSubRetention = 7 * 24 * time.Hour
	replayAckDeadline      = 60
	replaySubscriptionTTL  = 24 * time.Hour
)

// googlePubSubLog implements EventLog using Google Cloud Pub/Sub. Appends share a
// single ordering key. Replay uses a throwaway ordered subscription seeked to the
// epoch, which relies on topic-level message retention.
type googlePubSubLog struct {
	client      *pubsub.Client
	publisher   *pubsub.Publisher
	projectID   string
	topicID     string
	retention   time.Duration
	createTopic bool
	ref         string
	logger      *slog.Logger
}

// NewGooglePubSubLog creates a new Google Pub/Sub event log
func NewGooglePubSubLog(ctx context.Context, projectID, topicID string, retention time.Duration, createTopic bool, logger *slog.Logger) (service.EventLog, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if retention <= 0 {
		retention = defaultPubSubRetention
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub event log initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubLog{
		client:      client,
		publisher:   publisher,
		projectID:   projectID,
		topicID:     topicID,
		retention:   retention,
		createTopic: createTopic,
		logger:      logger,
	}, nil
}

func (l *googlePubSubLog) topicPath() string {
	return fmt.Sprintf("projects/%s/topics/%s", l.projectID, l.topicID)
}

// EnsureTopic checks the topic exists and creates it with message retention when
// topic creation is enabled.
func (l *googlePubSubLog) EnsureTopic(ctx context.Context) (string, bool, error) {
	_, err := l.client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: l.topicPath(),
	})
	if err == nil {
		l.ref = l.topicPath()

		return l.ref, false, nil
	}
	if status.Code(err) != codes.NotFound || !l.createTopic {
		return "", false, errors.Wrapf(err, "failed to get topic %s", l.topicID)
	}

	_, err = l.client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
		Name:                     l.topicPath(),
		MessageRetentionDuration: durationpb.New(l.retention),
	})
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to create topic %s", l.topicID)
	}

	l.logger.Info("Google Pub/Sub topic created", slog.String("topic_id", l.topicID))
	l.ref = l.topicPath()

	return l.ref, true, nil
}

func (l *googlePubSubLog) TopicRef() string {
	return l.ref
}

// Append publishes an event to Google Pub/Sub
func (l *googlePubSubLog) Append(ctx context.Context, ev *entity.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data:        data,
		OrderingKey: constants.EventOrderingKey,
		Attributes: map[string]string{
			"event_id":   ev.ID,
			"event_type": string(ev.Type),
		},
	}

	serverID, err := l.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		// A failed publish pauses the ordering key until resumed.
		l.publisher.ResumePublish(constants.EventOrderingKey)

		return errors.WithStack(err)
	}

	l.logger.Debug("[GooglePubSub] Event appended",
		slog.String("event_id", ev.ID),
		slog.String("event_type", string(ev.Type)),
		slog.String("server_id", serverID),
	)

	return nil
}

func (l *googlePubSubLog) Subscribe(ctx context.Context, onRecord func(service.Record), onError func(error)) (service.Subscription, error) {
	subName := fmt.Sprintf("projects/%s/subscriptions/%s-replay-%s", l.projectID, l.topicID, uuid.NewString()[:8])

	_, err := l.client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:                  subName,
		Topic:                 l.topicPath(),
		EnableMessageOrdering: true,
		AckDeadlineSeconds:    replayAckDeadline,
		ExpirationPolicy:      &pubsubpb.ExpirationPolicy{Ttl: durationpb.New(replaySubscriptionTTL)},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "create replay subscription for %s", l.topicID)
	}

	_, err = l.client.SubscriptionAdminClient.Seek(ctx, &pubsubpb.SeekRequest{
		Subscription: subName,
		Target:       &pubsubpb.SeekRequest_Time{Time: timestamppb.New(time.Unix(0, 0))},
	})
	if err != nil {
		l.deleteSubscription(subName)

		return nil, errors.Wrapf(err, "seek replay subscription %s", subName)
	}

	subscriber := l.client.Subscriber(subName)
	subscriber.ReceiveSettings.NumGoroutines = 1
	subscriber.ReceiveSettings.MaxOutstandingMessages = 1

	ctx, cancel := context.WithCancel(ctx)
	sub := newSubscription(cancel)
	sub.onStop = func() { l.deleteSubscription(subName) }

	go func() {
		defer sub.finish()

		err := subscriber.Receive(ctx, func(_ context.Context, msg *pubsub.Message) {
			onRecord(service.Record{Payload: msg.Data, Position: -1})
			msg.Ack()
		})
		if err != nil && ctx.Err() == nil {
			onError(errors.Wrapf(err, "receive from %s", subName))
		}
	}()

	return sub, nil
}

func (l *googlePubSubLog) deleteSubscription(name string) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	err := l.client.SubscriptionAdminClient.DeleteSubscription(ctx, &pubsubpb.DeleteSubscriptionRequest{
		Subscription: name,
	})
	if err != nil {
		l.logger.Warn("Failed to delete replay subscription",
			slog.String("subscription", name),
			slog.Any("error", err),
		)
	}
}

// Close releases Pub/Sub client resources
func (l *googlePubSubLog) Close() error {
	if l.publisher != nil {
		l.publisher.Stop()
	}
	if l.client != nil {
		return errors.WithStack(l.client.Close())
	}

	return nil
}
