package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// KindZapReceipt is the nostr event kind of a zap receipt.
const KindZapReceipt = 9735

// ZapRequest is the subset of a nostr zap request the receipt refers to.
type ZapRequest struct {
	Tags [][]string `json:"tags"`

	raw []byte
}

// ParseZapRequest decodes the serialized zap request stored in extra["nostr"].
func ParseZapRequest(s string) (*ZapRequest, error) {
	var req ZapRequest
	if err := json.Unmarshal([]byte(s), &req); err != nil {
		return nil, fmt.Errorf("parse zap request: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(s)); err != nil {
		return nil, fmt.Errorf("compact zap request: %w", err)
	}
	req.raw = buf.Bytes()
	return &req, nil
}

// Tag returns the value of the first tag named name.
func (z *ZapRequest) Tag(name string) (string, bool) {
	for _, t := range z.Tags {
		if len(t) >= 2 && t[0] == name {
			return t[1], true
		}
	}
	return "", false
}

// Description is the zap request serialized for the receipt's description tag.
func (z *ZapRequest) Description() string {
	return string(z.raw)
}

// ZapReceipt is an unsigned or signed kind 9735 event.
type ZapReceipt struct {
	ID        string     `json:"id"`
	PubKey    string     `json:"pubkey"`
	CreatedAt int64      `json:"created_at"`
	Kind      int        `json:"kind"`
	Tags      [][]string `json:"tags"`
	Content   string     `json:"content"`
	Sig       string     `json:"sig"`
}

// NewZapReceipt builds the receipt for a paid invoice. p and e tags are copied
// from the request when present.
func NewZapReceipt(req *ZapRequest, bolt11 string, createdAt int64) *ZapReceipt {
	tags := make([][]string, 0, 4)
	for _, name := range []string{"p", "e"} {
		if v, ok := req.Tag(name); ok && v != "" {
			tags = append(tags, []string{name, v})
		}
	}
	tags = append(tags,
		[]string{"bolt11", bolt11},
		[]string{"description", req.Description()},
	)
	return &ZapReceipt{
		CreatedAt: createdAt,
		Kind:      KindZapReceipt,
		Tags:      tags,
	}
}

// Message wraps the receipt in a relay EVENT frame.
func (r *ZapReceipt) Message() ([]byte, error) {
	return json.Marshal([]any{"EVENT", r})
}
