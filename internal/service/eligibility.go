package service

import "lnurlp-webhook/internal/core/domain"

// IsEligible reports whether a paid invoice should trigger a webhook.
// Only pay-link payments qualify, and only until an outcome is recorded.
func IsEligible(event *domain.PaymentEvent) bool {
	if event == nil || !event.IsPayLink() {
		return false
	}
	if event.WebhookSent() {
		return false
	}
	return true
}
