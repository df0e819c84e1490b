package service

import (
	"context"

	"lnurlp-webhook/internal/core/domain"
	"lnurlp-webhook/internal/core/ports"
	"lnurlp-webhook/internal/metrics"
	"lnurlp-webhook/pkg/apperror"

	"github.com/rs/zerolog"
)

// ConsumerDeps holds everything the consumption loop drives.
type ConsumerDeps struct {
	Source    ports.EventSource
	Topic     string
	Payments  ports.PaymentRepository // nil = filter on the event as received
	Links     ports.PayLinkRepository
	Deliverer ports.WebhookDeliverer
	Recorder  ports.OutcomeRecorder
	Notifier  ports.ZapNotifier // nil = zap receipts disabled
	Logger    zerolog.Logger
}

// Consumer drains paid invoices one at a time: filter, deliver, record.
type Consumer struct {
	source    ports.EventSource
	topic     string
	payments  ports.PaymentRepository
	links     ports.PayLinkRepository
	deliverer ports.WebhookDeliverer
	recorder  ports.OutcomeRecorder
	notifier  ports.ZapNotifier
	log       zerolog.Logger
}

// NewConsumer creates a new consumer.
func NewConsumer(deps ConsumerDeps) *Consumer {
	return &Consumer{
		source:    deps.Source,
		topic:     deps.Topic,
		payments:  deps.Payments,
		links:     deps.Links,
		deliverer: deps.Deliverer,
		recorder:  deps.Recorder,
		notifier:  deps.Notifier,
		log:       deps.Logger,
	}
}

// Run subscribes and processes events until ctx is cancelled or the
// subscription closes. Only a failed subscription is returned as an error.
// An event already being processed when ctx is cancelled is finished.
func (c *Consumer) Run(ctx context.Context) error {
	sub, err := c.source.Subscribe(ctx, c.topic)
	if err != nil {
		return apperror.ErrSubscribe(err)
	}
	defer func() {
		if err := sub.Close(); err != nil {
			c.log.Warn().Err(err).Msg("consumer: failed to close subscription")
		}
	}()

	c.log.Info().Str("topic", c.topic).Msg("consumer: waiting for paid invoices")

	events := sub.Events()
	for {
		select {
		case <-ctx.Done():
			c.log.Info().Msg("consumer: stopped")
			return nil
		case event, ok := <-events:
			if !ok {
				c.log.Info().Msg("consumer: subscription closed")
				return nil
			}
			c.process(context.WithoutCancel(ctx), &event)
		}
	}
}

// process isolates one event: nothing it does may end the loop.
func (c *Consumer) process(ctx context.Context, event *domain.PaymentEvent) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panic", r).Str("payment_hash", event.PaymentHash).Msg("consumer: panic recovered")
		}
	}()
	c.HandlePayment(ctx, event)
}

// HandlePayment runs the pipeline for a single paid invoice.
func (c *Consumer) HandlePayment(ctx context.Context, event *domain.PaymentEvent) {
	if !c.refresh(ctx, event) {
		return
	}

	if !IsEligible(event) {
		metrics.EventsTotal.WithLabelValues(metrics.ResultIneligible).Inc()
		c.log.Debug().
			Str("payment_hash", event.PaymentHash).
			Str("tag", event.Extra.Tag).
			Bool("webhook_sent", event.WebhookSent()).
			Msg("consumer: skipping payment")
		return
	}

	c.sendWebhook(ctx, event)

	if c.notifier != nil {
		c.notifier.Notify(event)
	}
}

// refresh replaces the event's metadata with the stored copy so a replayed
// event sees a marker recorded after it was emitted. It returns false when
// the store cannot be read.
func (c *Consumer) refresh(ctx context.Context, event *domain.PaymentEvent) bool {
	if c.payments == nil || !event.IsPayLink() {
		return true
	}
	stored, err := c.payments.GetByHash(ctx, event.PaymentHash)
	if err != nil {
		metrics.EventsTotal.WithLabelValues(metrics.ResultLookupError).Inc()
		c.log.Error().Err(err).Str("payment_hash", event.PaymentHash).Msg("consumer: failed to load payment")
		return false
	}
	if stored != nil {
		event.Extra = stored.Extra
	}
	return true
}

func (c *Consumer) sendWebhook(ctx context.Context, event *domain.PaymentEvent) {
	linkID := event.Extra.LinkIDOrDefault()

	link, err := c.links.GetByID(ctx, linkID)
	if err != nil {
		metrics.EventsTotal.WithLabelValues(metrics.ResultLookupError).Inc()
		c.log.Error().Err(err).
			Str("payment_hash", event.PaymentHash).
			Str("link_id", linkID.String()).
			Msg("consumer: failed to load pay link")
		return
	}
	if !link.HasWebhook() {
		metrics.EventsTotal.WithLabelValues(metrics.ResultNoTarget).Inc()
		c.log.Debug().
			Str("payment_hash", event.PaymentHash).
			Str("link_id", linkID.String()).
			Msg("consumer: no webhook configured")
		return
	}

	outcome := c.deliverer.Deliver(ctx, event, link)
	metrics.EventsTotal.WithLabelValues(outcomeResult(outcome)).Inc()

	// Recorder logs its own failures.
	if err := c.recorder.Record(ctx, event.PaymentHash, outcome); err == nil {
		event.Extra.Apply(outcome)
	}
}

func outcomeResult(o domain.DeliveryOutcome) string {
	switch {
	case o.Status == domain.TransportFailureStatus:
		return metrics.ResultError
	case o.Success:
		return metrics.ResultSuccess
	default:
		return metrics.ResultRejected
	}
}
