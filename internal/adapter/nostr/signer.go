// Package nostr signs zap receipts with a hex-encoded secp256k1 key.
package nostr

import (
	"encoding/hex"
	"fmt"

	"lnurlp-webhook/internal/core/domain"

	gonostr "github.com/nbd-wtf/go-nostr"
)

// Signer implements ports.ReceiptSigner.
type Signer struct {
	secretKey string
	publicKey string
}

// NewSigner validates secretKey and derives its public key.
func NewSigner(secretKey string) (*Signer, error) {
	if b, err := hex.DecodeString(secretKey); err != nil || len(b) != 32 {
		return nil, fmt.Errorf("nostr: private key must be 32 bytes of hex")
	}
	pk, err := gonostr.GetPublicKey(secretKey)
	if err != nil {
		return nil, fmt.Errorf("nostr: derive public key: %w", err)
	}
	return &Signer{secretKey: secretKey, publicKey: pk}, nil
}

// PublicKey returns the hex x-only public key receipts are signed with.
func (s *Signer) PublicKey() string {
	return s.publicKey
}

// Sign computes the receipt's id and schnorr signature in place.
func (s *Signer) Sign(r *domain.ZapReceipt) error {
	evt := gonostr.Event{
		CreatedAt: gonostr.Timestamp(r.CreatedAt),
		Kind:      r.Kind,
		Tags:      make(gonostr.Tags, 0, len(r.Tags)),
		Content:   r.Content,
	}
	for _, t := range r.Tags {
		evt.Tags = append(evt.Tags, gonostr.Tag(t))
	}

	if err := evt.Sign(s.secretKey); err != nil {
		return fmt.Errorf("nostr: sign receipt: %w", err)
	}

	r.ID = evt.ID
	r.PubKey = evt.PubKey
	r.Sig = evt.Sig
	return nil
}
