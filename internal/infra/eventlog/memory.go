package eventlog

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"agritoken/internal/domain/entity"
	domainerrors "agritoken/internal/domain/errors"
	"agritoken/internal/domain/service"

	"github.com/pkg/errors"
)

// memoryLog implements PositionedLog in process memory. History does not survive
// a restart; it backs development runs and tests.
type memoryLog struct {
	mu          sync.Mutex
	topic       string
	createTopic bool
	ensured     bool
	closed      bool
	records     [][]byte
	appended    chan struct{} // closed and replaced on every append
	logger      *slog.Logger
}

// NewMemoryLog creates an empty in-process log.
func NewMemoryLog(topic string, createTopic bool, logger *slog.Logger) service.PositionedLog {
	return &memoryLog{
		topic:       topic,
		createTopic: createTopic,
		appended:    make(chan struct{}),
		logger:      logger,
	}
}

func (l *memoryLog) EnsureTopic(_ context.Context) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return "", false, domainerrors.ErrTopicUnavailable
	}

	created := !l.ensured && l.createTopic && len(l.records) == 0
	l.ensured = true

	return l.topic, created, nil
}

func (l *memoryLog) TopicRef() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.ensured {
		return ""
	}

	return l.topic
}

func (l *memoryLog) Append(_ context.Context, ev *entity.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return errors.WithStack(err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return domainerrors.ErrLogUnavailable
	}

	l.records = append(l.records, data)
	close(l.appended)
	l.appended = make(chan struct{})

	l.logger.Debug("[MemoryLog] Event appended",
		slog.String("event_id", ev.ID),
		slog.String("event_type", string(ev.Type)),
		slog.Int("position", len(l.records)-1),
	)

	return nil
}

func (l *memoryLog) Head(_ context.Context) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return int64(len(l.records)), nil
}

// next returns the record at pos, or a channel that is closed once more records arrive.
func (l *memoryLog) next(pos int) ([]byte, <-chan struct{}, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, nil, false
	}
	if pos < len(l.records) {
		return l.records[pos], nil, true
	}

	return nil, l.appended, true
}

func (l *memoryLog) Subscribe(ctx context.Context, onRecord func(service.Record), _ func(error)) (service.Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)
	sub := newSubscription(cancel)

	go func() {
		defer sub.finish()

		for pos := 0; ; {
			payload, wait, ok := l.next(pos)
			if !ok {
				return
			}
			if wait != nil {
				select {
				case <-ctx.Done():
					return
				case <-wait:
					continue
				}
			}

			onRecord(service.Record{Payload: payload, Position: int64(pos)})
			pos++
		}
	}()

	return sub, nil
}

func (l *memoryLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.closed {
		l.closed = true
		close(l.appended)
	}

	return nil
}
