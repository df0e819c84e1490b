package kafka

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

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// Config configures the Kafka reader.
type Config struct {
	Brokers  []string
	Topic    string        // paid-invoice stream
	MinBytes int           // default 1B
	MaxBytes int           // default 10MB
	MaxWait  time.Duration // default 500ms
}

// messageReader is the part of *kafka.Reader the drain loop uses.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventSource consumes paid invoices from a Kafka topic. The subscription
// topic label becomes the consumer group, so each listener has its own offsets.
type EventSource struct {
	cfg Config
	log zerolog.Logger

	// dial checks broker reachability before a reader is created.
	dial func(ctx context.Context, network, address string) (*kafka.Conn, error)
}

// NewEventSource creates a Kafka-backed event source.
func NewEventSource(cfg Config, log zerolog.Logger) *EventSource {
	if cfg.MinBytes <= 0 {
		cfg.MinBytes = 1
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 10 << 20 // 10MB
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = 500 * time.Millisecond
	}
	return &EventSource{cfg: cfg, log: log, dial: kafka.DialContext}
}

// ReaderConfig returns the reader configuration used for a listener label.
func (s *EventSource) ReaderConfig(groupID string) kafka.ReaderConfig {
	return kafka.ReaderConfig{
		Brokers:  s.cfg.Brokers,
		GroupID:  groupID,
		Topic:    s.cfg.Topic,
		MinBytes: s.cfg.MinBytes,
		MaxBytes: s.cfg.MaxBytes,
		MaxWait:  s.cfg.MaxWait,
	}
}

// Subscribe joins the consumer group named topic and starts fetching.
func (s *EventSource) Subscribe(ctx context.Context, topic string) (ports.Subscription, error) {
	if topic == "" {
		return nil, errors.New("empty topic")
	}
	rc := s.ReaderConfig(topic)
	if err := rc.Validate(); err != nil {
		return nil, fmt.Errorf("kafka reader config: %w", err)
	}

	conn, err := s.dial(ctx, "tcp", s.cfg.Brokers[0])
	if err != nil {
		return nil, fmt.Errorf("dial kafka broker %s: %w", s.cfg.Brokers[0], err)
	}
	_ = conn.Close()

	sub := s.start(ctx, kafka.NewReader(rc))
	s.log.Info().Str("topic", s.cfg.Topic).Str("group_id", topic).Msg("kafka: invoice listener registered")
	return sub, nil
}

func (s *EventSource) start(ctx context.Context, r messageReader) *subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &subscription{
		events: make(chan domain.PaymentEvent),
		cancel: cancel,
		done:   make(chan struct{}),
		reader: r,
	}
	go s.drain(ctx, sub)
	return sub
}

// drain hands messages to the consumer one at a time. A message is committed
// once the consumer comes back for the next one, i.e. after it was processed.
// Undecodable messages fetched while one is in flight wait for that commit,
// so offsets only move forward.
func (s *EventSource) drain(ctx context.Context, sub *subscription) {
	defer close(sub.done)
	defer close(sub.events)

	var pending []kafka.Message
	for {
		m, err := sub.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.log.Error().Err(err).Msg("kafka: fetch failed")
			select {
			case <-ctx.Done():
				return
			case <-time.After(200 * time.Millisecond):
			}
			continue
		}

		var event domain.PaymentEvent
		if err := json.Unmarshal(m.Value, &event); err != nil {
			s.log.Error().Err(apperror.ErrMalformedEvent(err)).Int64("offset", m.Offset).Msg("kafka: dropping event")
			if len(pending) == 0 {
				s.commit(ctx, sub.reader, m)
			} else {
				pending = append(pending, m)
			}
			continue
		}

		select {
		case sub.events <- event:
		case <-ctx.Done():
			// Uncommitted: redelivered to the group after restart.
			return
		}
		if len(pending) > 0 {
			s.commit(ctx, sub.reader, pending...)
		}
		pending = []kafka.Message{m}
	}
}

func (s *EventSource) commit(ctx context.Context, r messageReader, msgs ...kafka.Message) {
	if err := r.CommitMessages(ctx, msgs...); err != nil && ctx.Err() == nil {
		s.log.Warn().Err(err).Int64("offset", msgs[len(msgs)-1].Offset).Msg("kafka: commit failed")
	}
}

type subscription struct {
	events chan domain.PaymentEvent
	cancel context.CancelFunc
	done   chan struct{}
	reader messageReader
	once   sync.Once
	err    error
}

func (s *subscription) Events() <-chan domain.PaymentEvent {
	return s.events
}

// Close stops fetching and closes the reader.
func (s *subscription) Close() error {
	s.once.Do(func() {
		s.cancel()
		<-s.done
		s.err = s.reader.Close()
	})
	return s.err
}
