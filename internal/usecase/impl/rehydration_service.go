package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"agritoken/config"
	"agritoken/internal/domain/entity"
	domainerrors "agritoken/internal/domain/errors"
	"agritoken/internal/domain/lifecycle"
	"agritoken/internal/domain/service"
	"agritoken/internal/domain/store"
	"agritoken/internal/usecase"
	"agritoken/internal/util"

	"go.uber.org/fx"
)

const systemInitMessage = "AgriToken Platform Initialized"

type rehydrationService struct {
	store    *store.Store
	eventLog service.EventLog
	window   time.Duration
	logger   *slog.Logger
}

// RehydrationServiceParams holds dependencies for RehydrationService, injected by Fx.
type RehydrationServiceParams struct {
	fx.In

	Store    *store.Store
	EventLog service.EventLog
	Config   *config.Config
	Logger   *slog.Logger
}

// NewRehydrationService creates a new rehydration service instance
func NewRehydrationService(params RehydrationServiceParams) usecase.RehydrationUsecase {
	window := lifecycle.DefaultReplayWindow
	if cfg := params.Config.EventLog; cfg != nil && cfg.ReplayWindow > 0 {
		window = cfg.ReplayWindow
	}

	return &rehydrationService{
		store:    params.Store,
		eventLog: params.EventLog,
		window:   window,
		logger:   params.Logger,
	}
}

// Rehydrate resolves the topic, replays the log into a buffer and folds the
// buffer into the store in log order. Replay ends when the log head is reached,
// when the replay window elapses, or with an error when the subscription fails.
// Logs without positions always wait for the full window, and history that has
// not arrived by then is missing from the rebuilt state.
func (s *rehydrationService) Rehydrate(ctx context.Context) (*usecase.RehydrationReport, error) {
	start := time.Now()

	ref, created, err := s.eventLog.EnsureTopic(ctx)
	if err != nil {
		return nil, domainerrors.ErrTopicUnavailable.WithDetails(err.Error())
	}

	report := &usecase.RehydrationReport{TopicRef: ref, TopicCreated: created}
	if created {
		s.initTopic(ctx, ref)
	}

	payloads, caughtUp, err := s.replay(ctx)
	if err != nil {
		return nil, domainerrors.ErrRehydrationFailed.WithDetails(err.Error())
	}
	report.CaughtUp = caughtUp
	report.Received = len(payloads)

	s.fold(payloads, report)
	report.Duration = time.Since(start)

	s.logger.Info("Rehydrated state from event log",
		slog.String("topic", ref),
		slog.Bool("caught_up", report.CaughtUp),
		slog.Int("received", report.Received),
		slog.Int("applied", report.Applied),
		slog.Int("duplicates", report.Duplicates),
		slog.Int("malformed", report.Malformed),
		slog.Int("rejected", report.Rejected),
		slog.Any("counts", s.store.Counts()),
		slog.String("took", util.FormatDuration(report.Duration)),
	)

	return report, nil
}

// initTopic marks a newly created topic with a SYSTEM_INIT event.
func (s *rehydrationService) initTopic(ctx context.Context, ref string) {
	ev, err := entity.NewEvent(entity.EventSystemInit, entity.SystemInit{
		Message:  systemInitMessage,
		TopicRef: ref,
	})
	if err != nil {
		s.logger.Error("Failed to build system init event", slog.Any("error", err))

		return
	}

	if _, err := s.store.Apply(ev); err != nil {
		s.logger.Error("Failed to apply system init event", slog.Any("error", err))
	}
	if err := s.eventLog.Append(ctx, ev); err != nil {
		s.logger.Error("Failed to append system init event",
			slog.String("topic", ref),
			slog.Any("error", err),
		)
	}
}

// replayBuffer collects records delivered by a subscription callback.
type replayBuffer struct {
	mu       sync.Mutex
	payloads [][]byte
	head     int64
	stopped  bool
	caughtUp chan struct{}
	failed   chan error
	once     sync.Once
}

func (b *replayBuffer) onRecord(r service.Record) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return
	}
	b.payloads = append(b.payloads, r.Payload)

	if b.head > 0 && r.Position >= b.head-1 {
		b.once.Do(func() { close(b.caughtUp) })
	}
}

func (b *replayBuffer) onError(err error) {
	select {
	case b.failed <- err:
	default:
	}
}

// drain stops accepting records and returns what was buffered.
func (b *replayBuffer) drain() [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopped = true

	return b.payloads
}

func (s *rehydrationService) replay(ctx context.Context) ([][]byte, bool, error) {
	buf := &replayBuffer{
		head:     -1,
		caughtUp: make(chan struct{}),
		failed:   make(chan error, 1),
	}

	if positioned, ok := s.eventLog.(service.PositionedLog); ok {
		head, err := positioned.Head(ctx)
		switch {
		case err != nil:
			s.logger.Warn("Failed to read log head, replaying for the full window", slog.Any("error", err))
		case head == 0:
			return nil, true, nil
		default:
			buf.head = head
		}
	}

	sub, err := s.eventLog.Subscribe(ctx, buf.onRecord, buf.onError)
	if err != nil {
		return nil, false, err
	}

	timer := time.NewTimer(s.window)
	defer timer.Stop()

	caughtUp := false
	select {
	case <-buf.caughtUp:
		caughtUp = true
	case <-timer.C:
		if buf.head > 0 {
			s.logger.Warn("Replay window elapsed before the log head was reached, state may be incomplete",
				slog.Int64("head", buf.head),
				slog.Duration("window", s.window),
			)
		}
	case err := <-buf.failed:
		sub.Stop()

		return nil, false, err
	case <-ctx.Done():
		sub.Stop()

		return nil, false, ctx.Err()
	}

	sub.Stop()

	return buf.drain(), caughtUp, nil
}

// fold applies the buffered payloads in order. Malformed payloads and events the
// store rejects are logged and skipped.
func (s *rehydrationService) fold(payloads [][]byte, report *usecase.RehydrationReport) {
	for i, payload := range payloads {
		ev, err := entity.ParseEvent(payload)
		if err != nil {
			report.Malformed++
			s.logger.Warn("Skipping malformed log record", slog.Int("index", i), slog.Any("error", err))

			continue
		}

		applied, err := s.store.Apply(ev)
		switch {
		case err != nil:
			report.Rejected++
			s.logger.Warn("Skipping log event",
				slog.String("event_id", ev.ID),
				slog.String("event_type", string(ev.Type)),
				slog.Any("error", err),
			)
		case !applied:
			report.Duplicates++
		default:
			report.Applied++
		}
	}
}
