package service

import (
	"context"
	"fmt"

	"lnurlp-webhook/internal/core/domain"
	"lnurlp-webhook/internal/core/ports"
	"lnurlp-webhook/internal/metrics"

	"github.com/rs/zerolog"
)

// Recorder writes delivery outcomes into the payment's extra map. A recorded
// wh_status is what makes later copies of the event ineligible.
type Recorder struct {
	payments ports.PaymentRepository
	log      zerolog.Logger
}

// NewRecorder creates a new outcome recorder.
func NewRecorder(payments ports.PaymentRepository, log zerolog.Logger) *Recorder {
	return &Recorder{payments: payments, log: log}
}

// Record merges the outcome into the payment's metadata. Failures are logged
// here and returned; the caller does not retry.
func (r *Recorder) Record(ctx context.Context, paymentHash string, outcome domain.DeliveryOutcome) error {
	if err := r.payments.UpdateExtra(ctx, paymentHash, outcome.Fields()); err != nil {
		metrics.RecordErrorsTotal.Inc()
		r.log.Error().Err(err).
			Str("payment_hash", paymentHash).
			Int("status", outcome.Status).
			Msg("webhook: failed to record outcome")
		return fmt.Errorf("record webhook outcome: %w", err)
	}

	r.log.Debug().
		Str("payment_hash", paymentHash).
		Int("status", outcome.Status).
		Bool("success", outcome.Success).
		Msg("webhook: outcome recorded")
	return nil
}
