package service

import (
	"context"
	"sync"
	"time"

	"lnurlp-webhook/internal/core/domain"
	"lnurlp-webhook/internal/core/ports"
	"lnurlp-webhook/internal/metrics"
	"lnurlp-webhook/pkg/apperror"

	"github.com/rs/zerolog"
)

// ZapNotifierService publishes zap receipts for paid zap requests. Each
// receipt is built, signed and sent on its own goroutine.
type ZapNotifierService struct {
	signer ports.ReceiptSigner
	relay  ports.RelayPublisher
	now    func() time.Time
	log    zerolog.Logger
	wg     sync.WaitGroup
}

// NewZapNotifier creates a notifier signing with signer and sending through relay.
func NewZapNotifier(signer ports.ReceiptSigner, relay ports.RelayPublisher, log zerolog.Logger) *ZapNotifierService {
	return &ZapNotifierService{
		signer: signer,
		relay:  relay,
		now:    time.Now,
		log:    log,
	}
}

// Notify returns immediately. Payments without a zap request are ignored.
func (n *ZapNotifierService) Notify(event *domain.PaymentEvent) {
	if event == nil || event.Extra.Nostr == "" {
		return
	}
	paymentHash, bolt11, request := event.PaymentHash, event.Bolt11, event.Extra.Nostr

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				metrics.ZapReceiptsTotal.WithLabelValues("failed").Inc()
				n.log.Error().Interface("panic", r).Str("payment_hash", paymentHash).Msg("zap: panic recovered")
			}
		}()

		receipt, err := n.publish(request, bolt11)
		if err != nil {
			metrics.ZapReceiptsTotal.WithLabelValues("failed").Inc()
			n.log.Warn().Err(err).Str("payment_hash", paymentHash).Msg("zap: receipt not published")
			return
		}
		metrics.ZapReceiptsTotal.WithLabelValues("sent").Inc()
		n.log.Info().Str("payment_hash", paymentHash).Str("receipt_id", receipt.ID).Msg("zap: receipt published")
	}()
}

func (n *ZapNotifierService) publish(request, bolt11 string) (*domain.ZapReceipt, error) {
	req, err := domain.ParseZapRequest(request)
	if err != nil {
		return nil, err
	}

	receipt := domain.NewZapReceipt(req, bolt11, n.now().Unix())
	if err := n.signer.Sign(receipt); err != nil {
		return nil, apperror.ErrSigning(err)
	}

	msg, err := receipt.Message()
	if err != nil {
		return nil, err
	}
	if err := n.relay.Publish(context.Background(), msg); err != nil {
		return nil, apperror.ErrRelay(err)
	}
	return receipt, nil
}

// Wait blocks until every spawned publish has finished. The consumer never
// calls it; it exists for shutdown hooks and tests.
func (n *ZapNotifierService) Wait() {
	n.wg.Wait()
}
