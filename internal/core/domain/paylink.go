package domain

// PayLink is the merchant-configured webhook target of a pay link.
// WebhookBody and WebhookHeaders hold JSON templates.
type PayLink struct {
	ID             LinkID  `json:"id"`
	WebhookURL     *string `json:"webhook_url,omitempty"`
	WebhookBody    *string `json:"webhook_body,omitempty"`
	WebhookHeaders *string `json:"webhook_headers,omitempty"`
}

// HasWebhook returns true if the link has a non-empty destination URL.
func (l *PayLink) HasWebhook() bool {
	return l != nil && l.WebhookURL != nil && *l.WebhookURL != ""
}
