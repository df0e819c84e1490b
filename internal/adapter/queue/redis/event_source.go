package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"lnurlp-webhook/internal/core/domain"
	"lnurlp-webhook/internal/core/ports"
	"lnurlp-webhook/pkg/apperror"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	// ListenersKey is the set of topics the host routes paid invoices to.
	ListenersKey = "invoice_listeners"
	queuePrefix  = "invoices:"

	defaultBlockTimeout = time.Second
	retryDelay          = 200 * time.Millisecond
)

// QueueKey returns the list the host pushes a topic's paid invoices onto.
func QueueKey(topic string) string {
	return queuePrefix + topic
}

// EventSource reads paid invoices from per-topic Redis lists.
type EventSource struct {
	client       goredis.UniversalClient
	blockTimeout time.Duration
	log          zerolog.Logger
}

// NewEventSource creates a Redis-backed event source. blockTimeout bounds each
// BLPOP and therefore how long shutdown may wait; go-redis rounds it up to 1s.
func NewEventSource(client goredis.UniversalClient, blockTimeout time.Duration, log zerolog.Logger) *EventSource {
	if blockTimeout <= 0 {
		blockTimeout = defaultBlockTimeout
	}
	return &EventSource{
		client:       client,
		blockTimeout: blockTimeout,
		log:          log,
	}
}

// Subscribe registers topic in the listener set and starts draining its queue.
func (s *EventSource) Subscribe(ctx context.Context, topic string) (ports.Subscription, error) {
	if topic == "" {
		return nil, errors.New("empty topic")
	}
	if err := s.client.SAdd(ctx, ListenersKey, topic).Err(); err != nil {
		return nil, fmt.Errorf("register listener %q: %w", topic, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &subscription{
		events: make(chan domain.PaymentEvent),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go s.drain(ctx, topic, sub)

	s.log.Info().Str("topic", topic).Str("queue", QueueKey(topic)).Msg("redis: invoice listener registered")
	return sub, nil
}

// Publish appends an event to topic's queue.
func (s *EventSource) Publish(ctx context.Context, topic string, event domain.PaymentEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal payment event: %w", err)
	}
	if err := s.client.RPush(ctx, QueueKey(topic), b).Err(); err != nil {
		return fmt.Errorf("redis rpush: %w", err)
	}
	return nil
}

func (s *EventSource) drain(ctx context.Context, topic string, sub *subscription) {
	defer close(sub.done)
	defer close(sub.events)

	key := QueueKey(topic)
	for {
		if ctx.Err() != nil {
			return
		}

		res, err := s.client.BLPop(ctx, s.blockTimeout, key).Result()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, goredis.Nil) {
				continue
			}
			s.log.Error().Err(err).Str("queue", key).Msg("redis: blpop failed")
			select {
			case <-ctx.Done():
				return
			case <-time.After(retryDelay):
			}
			continue
		}
		if len(res) != 2 {
			continue
		}

		var event domain.PaymentEvent
		if err := json.Unmarshal([]byte(res[1]), &event); err != nil {
			s.log.Error().Err(apperror.ErrMalformedEvent(err)).Str("queue", key).Msg("redis: dropping event")
			continue
		}

		select {
		case sub.events <- event:
		case <-ctx.Done():
			// Put it back so the next consumer sees it first.
			if err := s.client.LPush(context.WithoutCancel(ctx), key, res[1]).Err(); err != nil {
				s.log.Error().Err(err).Str("payment_hash", event.PaymentHash).Msg("redis: failed to requeue event")
			}
			return
		}
	}
}

type subscription struct {
	events chan domain.PaymentEvent
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func (s *subscription) Events() <-chan domain.PaymentEvent {
	return s.events
}

// Close stops the drain loop and waits for it to exit.
func (s *subscription) Close() error {
	s.once.Do(s.cancel)
	<-s.done
	return nil
}
