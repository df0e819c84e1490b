package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"lnurlp-webhook/internal/core/domain"
	"lnurlp-webhook/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// PaymentRepo implements ports.PaymentRepository over the ledger's
// apipayments table, whose extra column is JSONB.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// UpdateExtra merges fields into extra with the JSONB || operator, which
// keeps keys that fields does not mention.
func (r *PaymentRepo) UpdateExtra(ctx context.Context, paymentHash string, fields map[string]any) error {
	patch, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal extra patch: %w", err)
	}

	query := `UPDATE apipayments
		SET extra = COALESCE(extra, '{}'::jsonb) || $2::jsonb
		WHERE payment_hash = $1`

	tag, err := r.pool.Exec(ctx, query, paymentHash, string(patch))
	if err != nil {
		return apperror.ErrStore(fmt.Errorf("update payment extra: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrPaymentNotFound(paymentHash)
	}
	return nil
}

// GetByHash fetches a payment by its hash.
func (r *PaymentRepo) GetByHash(ctx context.Context, paymentHash string) (*domain.PaymentEvent, error) {
	query := `SELECT payment_hash, bolt11, amount, extra FROM apipayments WHERE payment_hash = $1`

	p := &domain.PaymentEvent{}
	var extra []byte
	err := r.pool.QueryRow(ctx, query, paymentHash).Scan(&p.PaymentHash, &p.Bolt11, &p.Amount, &extra)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.ErrStore(fmt.Errorf("get payment by hash: %w", err))
	}

	if len(extra) > 0 {
		if err := json.Unmarshal(extra, &p.Extra); err != nil {
			return nil, fmt.Errorf("decode payment extra: %w", err)
		}
	}
	return p, nil
}
