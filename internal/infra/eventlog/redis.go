package eventlog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"agritoken/config"
	"agritoken/internal/domain/entity"
	"agritoken/internal/domain/service"

	"github.com/pkg/errors"
	goRedis "github.com/redis/go-redis/v9"
)

const (
	redisEventField  = "event"
	redisReadBlock   = time.Second
	redisReadCount   = 100
	redisDialTimeout = 5 * time.Second
)

// redisStreamLog implements PositionedLog on a Redis stream. Stream entries are
// ordered by id, so position is the zero-based index of the entry in the stream.
type redisStreamLog struct {
	client      *goRedis.Client
	stream      string
	createTopic bool
	ref         string
	logger      *slog.Logger
}

// NewRedisStreamLog connects to Redis and performs a health check.
func NewRedisStreamLog(cfg config.RedisConfig, stream string, createTopic bool, logger *slog.Logger) (service.PositionedLog, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis address is required for redis provider")
	}

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "ping redis %s", cfg.Addr)
	}

	logger.Info("Redis stream log initialized",
		slog.String("addr", cfg.Addr),
		slog.String("stream", stream),
	)

	return &redisStreamLog{
		client:      client,
		stream:      stream,
		createTopic: createTopic,
		logger:      logger,
	}, nil
}

// EnsureTopic resolves the stream key. Streams are created by their first entry,
// so an empty stream counts as newly created when topic creation is enabled.
func (l *redisStreamLog) EnsureTopic(ctx context.Context) (string, bool, error) {
	n, err := l.client.XLen(ctx, l.stream).Result()
	if err != nil {
		return "", false, errors.Wrapf(err, "inspect stream %s", l.stream)
	}
	l.ref = l.stream

	return l.ref, l.createTopic && n == 0, nil
}

func (l *redisStreamLog) TopicRef() string {
	return l.ref
}

func (l *redisStreamLog) Append(ctx context.Context, ev *entity.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := l.client.XAdd(ctx, &goRedis.XAddArgs{
		Stream: l.stream,
		Values: map[string]any{redisEventField: data},
	}).Result()
	if err != nil {
		return errors.Wrapf(err, "xadd %s", l.stream)
	}

	l.logger.Debug("[RedisStreamLog] Event appended",
		slog.String("event_id", ev.ID),
		slog.String("event_type", string(ev.Type)),
		slog.String("entry_id", id),
	)

	return nil
}

func (l *redisStreamLog) Head(ctx context.Context) (int64, error) {
	n, err := l.client.XLen(ctx, l.stream).Result()

	return n, errors.WithStack(err)
}

func (l *redisStreamLog) Subscribe(ctx context.Context, onRecord func(service.Record), onError func(error)) (service.Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)
	sub := newSubscription(cancel)

	go func() {
		defer sub.finish()

		lastID := "0"
		var pos int64
		for {
			streams, err := l.client.XRead(ctx, &goRedis.XReadArgs{
				Streams: []string{l.stream, lastID},
				Count:   redisReadCount,
				Block:   redisReadBlock,
			}).Result()
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, goRedis.Nil) {
				continue
			}
			if err != nil {
				onError(errors.Wrapf(err, "xread %s", l.stream))

				return
			}

			for _, stream := range streams {
				for _, msg := range stream.Messages {
					lastID = msg.ID
					onRecord(service.Record{Payload: streamPayload(msg.Values), Position: pos})
					pos++
				}
			}
		}
	}()

	return sub, nil
}

func (l *redisStreamLog) Close() error {
	return errors.WithStack(l.client.Close())
}

// streamPayload extracts the event field; a missing field yields an empty payload
// that replay drops as malformed.
func streamPayload(values map[string]any) []byte {
	switch v := values[redisEventField].(type) {
	case string:
		return []byte(v)
	case []byte:
		return v
	default:
		return nil
	}
}
