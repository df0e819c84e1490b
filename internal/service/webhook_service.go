package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"lnurlp-webhook/internal/core/domain"
	"lnurlp-webhook/internal/metrics"
	"lnurlp-webhook/pkg/apperror"

	"github.com/rs/zerolog"
)

// DefaultWebhookTimeout bounds one webhook attempt.
const DefaultWebhookTimeout = 40 * time.Second

// WebhookPayload is the JSON structure posted to the pay link's webhook_url.
type WebhookPayload struct {
	PaymentHash    string          `json:"payment_hash"`
	PaymentRequest string          `json:"payment_request"`
	Amount         int64           `json:"amount"`
	Comment        *string         `json:"comment"`
	LNURLp         domain.LinkID   `json:"lnurlp"`
	Body           json.RawMessage `json:"body"`
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewWebhookHTTPClient returns a client that does not follow redirects, so
// a 3xx from the merchant is recorded as-is.
func NewWebhookHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// WebhookService performs single webhook attempts.
type WebhookService struct {
	httpClient       HTTPClient
	timeout          time.Duration
	maxResponseBytes int64
	log              zerolog.Logger
}

// NewWebhookService creates a new webhook delivery client.
// A non-positive timeout falls back to DefaultWebhookTimeout. A non-positive
// maxResponseBytes stores response bodies in full.
func NewWebhookService(httpClient HTTPClient, timeout time.Duration, maxResponseBytes int64, log zerolog.Logger) *WebhookService {
	if timeout <= 0 {
		timeout = DefaultWebhookTimeout
	}
	if maxResponseBytes < 0 {
		maxResponseBytes = 0
	}
	return &WebhookService{
		httpClient:       httpClient,
		timeout:          timeout,
		maxResponseBytes: maxResponseBytes,
		log:              log,
	}
}

// Deliver posts the payment to link's webhook once. Any failure before a
// response is read becomes a TransportFailure outcome; a completed exchange
// is returned verbatim whatever its status code.
func (s *WebhookService) Deliver(ctx context.Context, event *domain.PaymentEvent, link *domain.PayLink) domain.DeliveryOutcome {
	start := time.Now()
	outcome, err := s.post(ctx, event, link)
	metrics.WebhookDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		s.log.Error().Err(err).
			Str("payment_hash", event.PaymentHash).
			Str("link_id", link.ID.String()).
			Msg("webhook: delivery failed")
		return domain.TransportFailure(err)
	}

	evt := s.log.Info()
	if !outcome.Success {
		evt = s.log.Warn()
	}
	evt.Str("payment_hash", event.PaymentHash).
		Str("link_id", link.ID.String()).
		Int("status", outcome.Status).
		Dur("latency", time.Since(start)).
		Msg("webhook: delivered")

	return outcome
}

func (s *WebhookService) post(ctx context.Context, event *domain.PaymentEvent, link *domain.PayLink) (domain.DeliveryOutcome, error) {
	if !link.HasWebhook() {
		return domain.DeliveryOutcome{}, fmt.Errorf("pay link %s has no webhook url", link.ID)
	}

	payload, err := BuildWebhookPayload(event, link)
	if err != nil {
		return domain.DeliveryOutcome{}, err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.DeliveryOutcome{}, fmt.Errorf("marshal webhook payload: %w", err)
	}

	headers, err := parseHeaders(link.WebhookHeaders)
	if err != nil {
		return domain.DeliveryOutcome{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, *link.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return domain.DeliveryOutcome{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.DeliveryOutcome{}, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			s.log.Warn().Err(closeErr).Str("payment_hash", event.PaymentHash).Msg("webhook: failed to close response body")
		}
	}()

	text, err := s.readBody(resp.Body)
	if err != nil {
		return domain.DeliveryOutcome{}, fmt.Errorf("read response body: %w", err)
	}
	if s.maxResponseBytes > 0 && int64(len(text)) > s.maxResponseBytes {
		text = text[:s.maxResponseBytes]
		s.log.Warn().
			Str("payment_hash", event.PaymentHash).
			Int64("max_response_bytes", s.maxResponseBytes).
			Msg("webhook: response body truncated")
	}

	return domain.DeliveryOutcome{
		Status:   resp.StatusCode,
		Success:  resp.StatusCode >= 200 && resp.StatusCode < 300,
		Reason:   reasonPhrase(resp),
		Response: string(text),
	}, nil
}

// readBody reads one byte past the cap so truncation can be detected.
func (s *WebhookService) readBody(body io.Reader) ([]byte, error) {
	if s.maxResponseBytes <= 0 {
		return io.ReadAll(body)
	}
	return io.ReadAll(io.LimitReader(body, s.maxResponseBytes+1))
}

// BuildWebhookPayload assembles the request body. The link's body template
// must be valid JSON; an absent or empty template becomes "".
func BuildWebhookPayload(event *domain.PaymentEvent, link *domain.PayLink) (*WebhookPayload, error) {
	custom := json.RawMessage(`""`)
	if link.WebhookBody != nil && *link.WebhookBody != "" {
		if !json.Valid([]byte(*link.WebhookBody)) {
			return nil, apperror.ErrInvalidTemplate("webhook_body", fmt.Errorf("not valid JSON"))
		}
		custom = json.RawMessage(*link.WebhookBody)
	}

	return &WebhookPayload{
		PaymentHash:    event.PaymentHash,
		PaymentRequest: event.Bolt11,
		Amount:         event.Amount,
		Comment:        event.Extra.Comment,
		LNURLp:         link.ID,
		Body:           custom,
	}, nil
}

func parseHeaders(tmpl *string) (map[string]string, error) {
	if tmpl == nil || *tmpl == "" {
		return nil, nil
	}
	var headers map[string]string
	if err := json.Unmarshal([]byte(*tmpl), &headers); err != nil {
		return nil, apperror.ErrInvalidTemplate("webhook_headers", err)
	}
	return headers, nil
}

// reasonPhrase extracts "OK" from a status line like "200 OK".
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
