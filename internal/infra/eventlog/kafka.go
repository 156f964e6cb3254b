package eventlog

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"strconv"

	"agritoken/internal/domain/constants"
	"agritoken/internal/domain/entity"
	"agritoken/internal/domain/service"

	"github.com/pkg/errors"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Events live on one partition so the log has a single total order.
const kafkaPartition = 0

// kafkaLog implements PositionedLog on a single-partition Kafka topic. Positions
// are partition offsets.
type kafkaLog struct {
	brokers     []string
	topic       string
	createTopic bool
	ref         string
	writer      *kafkaGo.Writer
	logger      *slog.Logger
}

// NewKafkaLog creates a Kafka-backed log. No connection is made until EnsureTopic.
func NewKafkaLog(brokers []string, topic string, createTopic bool, logger *slog.Logger) (service.PositionedLog, error) {
	if len(brokers) == 0 {
		return nil, errors.New("at least one broker is required for kafka provider")
	}

	logger.Info("Kafka log initialized",
		slog.Any("brokers", brokers),
		slog.String("topic", topic),
	)

	return &kafkaLog{
		brokers:     brokers,
		topic:       topic,
		createTopic: createTopic,
		writer: &kafkaGo.Writer{
			Addr:         kafkaGo.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafkaGo.LeastBytes{},
			RequiredAcks: kafkaGo.RequireAll,
		},
		logger: logger,
	}, nil
}

// EnsureTopic verifies the topic exists, creating it with a single partition when
// topic creation is enabled.
func (l *kafkaLog) EnsureTopic(ctx context.Context) (string, bool, error) {
	conn, err := (&kafkaGo.Dialer{}).DialContext(ctx, "tcp", l.brokers[0])
	if err != nil {
		return "", false, errors.Wrapf(err, "dial kafka %s", l.brokers[0])
	}
	defer conn.Close()

	created := false
	if l.createTopic {
		created, err = l.createSinglePartitionTopic(ctx, conn)
		if err != nil {
			return "", false, err
		}
	}

	partitions, err := conn.ReadPartitions(l.topic)
	if err != nil {
		return "", false, errors.Wrapf(err, "read partitions of %s", l.topic)
	}
	if len(partitions) == 0 {
		return "", false, errors.Errorf("kafka topic %s does not exist", l.topic)
	}
	if len(partitions) > 1 {
		l.logger.Warn("Kafka topic has more than one partition, only partition 0 is used",
			slog.String("topic", l.topic),
			slog.Int("partitions", len(partitions)),
		)
	}

	l.ref = l.topic

	return l.ref, created, nil
}

func (l *kafkaLog) createSinglePartitionTopic(ctx context.Context, conn *kafkaGo.Conn) (bool, error) {
	controller, err := conn.Controller()
	if err != nil {
		return false, errors.Wrap(err, "find kafka controller")
	}

	address := net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port))
	controllerConn, err := (&kafkaGo.Dialer{}).DialContext(ctx, "tcp", address)
	if err != nil {
		return false, errors.Wrapf(err, "dial kafka controller %s", address)
	}
	defer controllerConn.Close()

	err = controllerConn.CreateTopics(kafkaGo.TopicConfig{
		Topic:             l.topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if errors.Is(err, kafkaGo.TopicAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "create topic %s", l.topic)
	}

	l.logger.Info("Kafka topic created", slog.String("topic", l.topic))

	return true, nil
}

func (l *kafkaLog) TopicRef() string {
	return l.ref
}

func (l *kafkaLog) Append(ctx context.Context, ev *entity.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return errors.WithStack(err)
	}

	err = l.writer.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(constants.EventOrderingKey),
		Value: data,
	})
	if err != nil {
		return errors.Wrapf(err, "write to %s", l.topic)
	}

	l.logger.Debug("[KafkaLog] Event appended",
		slog.String("event_id", ev.ID),
		slog.String("event_type", string(ev.Type)),
	)

	return nil
}

func (l *kafkaLog) Head(ctx context.Context) (int64, error) {
	conn, err := kafkaGo.DialLeader(ctx, "tcp", l.brokers[0], l.topic, kafkaPartition)
	if err != nil {
		return 0, errors.Wrapf(err, "dial leader of %s", l.topic)
	}
	defer conn.Close()

	offset, err := conn.ReadLastOffset()

	return offset, errors.WithStack(err)
}

func (l *kafkaLog) Subscribe(ctx context.Context, onRecord func(service.Record), onError func(error)) (service.Subscription, error) {
	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:   l.brokers,
		Topic:     l.topic,
		Partition: kafkaPartition,
		MinBytes:  1,
		MaxBytes:  10e6,
	})
	if err := reader.SetOffset(kafkaGo.FirstOffset); err != nil {
		reader.Close()

		return nil, errors.Wrap(err, "seek to first offset")
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := newSubscription(cancel)
	sub.onStop = func() {
		if err := reader.Close(); err != nil {
			l.logger.Warn("Failed to close kafka reader", slog.Any("error", err))
		}
	}

	go func() {
		defer sub.finish()

		for {
			msg, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				onError(errors.Wrapf(err, "read %s", l.topic))

				return
			}

			onRecord(service.Record{Payload: msg.Value, Position: msg.Offset})
		}
	}()

	return sub, nil
}

func (l *kafkaLog) Close() error {
	return errors.WithStack(l.writer.Close())
}
