package domain

// TagPayLink is the extra["tag"] value marking payments made through a pay link.
const TagPayLink = "lnurlp"

// PaymentEvent is a settled incoming payment as emitted by the ledger.
type PaymentEvent struct {
	PaymentHash string `json:"payment_hash"`
	Bolt11      string `json:"bolt11"`
	Amount      int64  `json:"amount"` // millisatoshis
	Extra       Extra  `json:"extra"`
}

// IsPayLink reports whether the payment was made through a pay link.
func (p *PaymentEvent) IsPayLink() bool {
	return p.Extra.Tag == TagPayLink
}

// WebhookSent reports whether a delivery outcome was already recorded.
func (p *PaymentEvent) WebhookSent() bool {
	return p.Extra.WebhookStatus != nil
}
