package postgres

import (
	"context"
	"errors"
	"fmt"

	"lnurlp-webhook/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PayLinkRepo implements ports.PayLinkRepository.
type PayLinkRepo struct {
	pool Pool
}

// NewPayLinkRepo creates a new PayLinkRepo.
func NewPayLinkRepo(pool Pool) *PayLinkRepo {
	return &PayLinkRepo{pool: pool}
}

// GetByID fetches the webhook configuration of a pay link.
func (r *PayLinkRepo) GetByID(ctx context.Context, id domain.LinkID) (*domain.PayLink, error) {
	query := `SELECT id, webhook_url, webhook_body, webhook_headers FROM pay_links WHERE id = $1`

	var linkID string
	l := &domain.PayLink{}
	err := r.pool.QueryRow(ctx, query, id.String()).Scan(&linkID, &l.WebhookURL, &l.WebhookBody, &l.WebhookHeaders)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pay link by id: %w", err)
	}
	l.ID = domain.LinkID(linkID)
	return l, nil
}
