package eventlog

import (
	"context"
	"sync"
)

// subscription stops a background receive loop and waits for it to exit.
type subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
	onStop func()
}

func newSubscription(cancel context.CancelFunc) *subscription {
	return &subscription{cancel: cancel, done: make(chan struct{})}
}

// finish is called by the receive loop when it returns.
func (s *subscription) finish() {
	close(s.done)
}

func (s *subscription) Stop() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
		if s.onStop != nil {
			s.onStop()
		}
	})
}

// handleSubscription wraps a subscription whose delivery loop is owned by a client library.
type handleSubscription struct {
	once sync.Once
	stop func()
}

func (s *handleSubscription) Stop() {
	s.once.Do(s.stop)
}
