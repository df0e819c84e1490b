package ports

import (
	"context"

	"lnurlp-webhook/internal/core/domain"
)

// PaymentRepository is the ledger's metadata store, keyed by payment hash.
type PaymentRepository interface {
	// UpdateExtra merges fields into the payment's extra map. Existing keys
	// not present in fields are preserved.
	UpdateExtra(ctx context.Context, paymentHash string, fields map[string]any) error
	// GetByHash returns nil, nil if the payment does not exist.
	GetByHash(ctx context.Context, paymentHash string) (*domain.PaymentEvent, error)
}

// PayLinkRepository resolves the webhook target of a pay link.
type PayLinkRepository interface {
	// GetByID returns nil, nil if no link has the id.
	GetByID(ctx context.Context, id domain.LinkID) (*domain.PayLink, error)
}
