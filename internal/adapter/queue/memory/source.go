// Package memory is an in-process event source for hosts that embed the
// consumer and publish paid invoices directly.
package memory

import (
	"context"
	"errors"
	"sync"

	"lnurlp-webhook/internal/core/domain"
	"lnurlp-webhook/internal/core/ports"
	"lnurlp-webhook/pkg/apperror"
)

// EventSource fans published events out to the subscriptions of a topic.
type EventSource struct {
	mu     sync.Mutex
	subs   map[string]map[*subscription]struct{}
	buffer int
}

// New creates an event source whose subscriptions buffer up to buffer events.
func New(buffer int) *EventSource {
	if buffer < 0 {
		buffer = 0
	}
	return &EventSource{
		subs:   make(map[string]map[*subscription]struct{}),
		buffer: buffer,
	}
}

// Subscribe registers a listener for topic. The subscription closes when
// ctx is cancelled.
func (s *EventSource) Subscribe(ctx context.Context, topic string) (ports.Subscription, error) {
	if topic == "" {
		return nil, errors.New("empty topic")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sub := &subscription{
		source: s,
		topic:  topic,
		events: make(chan domain.PaymentEvent, s.buffer),
		done:   make(chan struct{}),
	}

	s.mu.Lock()
	if s.subs[topic] == nil {
		s.subs[topic] = make(map[*subscription]struct{})
	}
	s.subs[topic][sub] = struct{}{}
	s.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			_ = sub.Close()
		case <-sub.done:
		}
	}()

	return sub, nil
}

// Publish hands event to every subscription of topic, blocking while a
// subscriber's buffer is full. Subscriptions that close meanwhile are skipped.
func (s *EventSource) Publish(ctx context.Context, topic string, event domain.PaymentEvent) error {
	s.mu.Lock()
	targets := make([]*subscription, 0, len(s.subs[topic]))
	for sub := range s.subs[topic] {
		targets = append(targets, sub)
	}
	s.mu.Unlock()

	for _, sub := range targets {
		if err := sub.send(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// Listeners returns the number of open subscriptions for topic.
func (s *EventSource) Listeners(topic string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs[topic])
}

func (s *EventSource) remove(sub *subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs[sub.topic], sub)
	if len(s.subs[sub.topic]) == 0 {
		delete(s.subs, sub.topic)
	}
}

type subscription struct {
	source *EventSource
	topic  string
	events chan domain.PaymentEvent
	done   chan struct{}

	sendMu sync.RWMutex
	once   sync.Once
}

func (s *subscription) Events() <-chan domain.PaymentEvent {
	return s.events
}

func (s *subscription) send(ctx context.Context, event domain.PaymentEvent) error {
	s.sendMu.RLock()
	defer s.sendMu.RUnlock()

	select {
	case <-s.done:
		return nil
	default:
	}

	select {
	case s.events <- event:
		return nil
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close unregisters the subscription and closes its channel.
func (s *subscription) Close() error {
	closed := false
	s.once.Do(func() {
		closed = true
		close(s.done)
		s.source.remove(s)
		s.sendMu.Lock()
		close(s.events)
		s.sendMu.Unlock()
	})
	if !closed {
		return apperror.ErrSubscriptionClosed()
	}
	return nil
}
