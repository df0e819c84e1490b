package ports

import (
	"context"

	"lnurlp-webhook/internal/core/domain"
)

// --- Event source ---

// EventSource registers the consumer with the host's paid-invoice stream.
type EventSource interface {
	// Subscribe registers interest under topic. A failed registration is
	// returned as an error and the consumer must not start.
	Subscribe(ctx context.Context, topic string) (Subscription, error)
}

// Subscription yields events in emission order. The channel is closed when
// the subscription's context is cancelled or Close is called.
type Subscription interface {
	Events() <-chan domain.PaymentEvent
	Close() error
}

// --- Pipeline services ---

// WebhookDeliverer performs one webhook attempt and never returns an error:
// every failure is folded into the outcome.
type WebhookDeliverer interface {
	Deliver(ctx context.Context, event *domain.PaymentEvent, link *domain.PayLink) domain.DeliveryOutcome
}

// OutcomeRecorder persists a delivery outcome, setting the idempotency marker.
type OutcomeRecorder interface {
	Record(ctx context.Context, paymentHash string, outcome domain.DeliveryOutcome) error
}

// ZapNotifier publishes a zap receipt for payments carrying a zap request.
// Notify must not block on network I/O.
type ZapNotifier interface {
	Notify(event *domain.PaymentEvent)
}

// --- Side channel ---

// ReceiptSigner fills in PubKey, ID and Sig of a receipt.
type ReceiptSigner interface {
	Sign(receipt *domain.ZapReceipt) error
	PublicKey() string
}

// RelayPublisher sends one frame to the relay over a fresh connection.
type RelayPublisher interface {
	Publish(ctx context.Context, message []byte) error
}
