package domain

import (
	"encoding/json"
	"fmt"
)

// Keys of the extra map read or written by the webhook pipeline.
const (
	ExtraTag             = "tag"
	ExtraLink            = "link"
	ExtraComment         = "comment"
	ExtraNostr           = "nostr"
	ExtraWebhookStatus   = "wh_status"
	ExtraWebhookSuccess  = "wh_success"
	ExtraWebhookMessage  = "wh_message"
	ExtraWebhookResponse = "wh_response"
)

// DefaultLinkID is used when a payment carries no link reference.
const DefaultLinkID LinkID = "-1"

// LinkID identifies a pay link. Hosts encode it either as a JSON number or
// as a string.
type LinkID string

func (l *LinkID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*l = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = LinkID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("link id: %w", err)
	}
	*l = LinkID(n.String())
	return nil
}

// MarshalJSON always writes a JSON string. Extra keeps the wire type of the
// link it was decoded from.
func (l LinkID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(l))
}

func (l LinkID) String() string { return string(l) }

// Extra is the open-ended metadata attached to a payment. The keys the
// pipeline depends on are typed; everything else is kept verbatim in Fields
// and written back unchanged.
type Extra struct {
	Tag     string
	Link    LinkID
	Comment *string
	Nostr   string // serialized zap request, if any

	WebhookStatus   *int
	WebhookSuccess  *bool
	WebhookMessage  *string
	WebhookResponse *string

	Fields map[string]json.RawMessage

	linkNumeric bool // link arrived as a JSON number
}

// LinkIDOrDefault returns the referenced link id or DefaultLinkID.
func (e Extra) LinkIDOrDefault() LinkID {
	if e.Link == "" {
		return DefaultLinkID
	}
	return e.Link
}

func (e *Extra) UnmarshalJSON(b []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		raw = map[string]json.RawMessage{}
	}

	*e = Extra{}
	targets := map[string]any{
		ExtraTag:             &e.Tag,
		ExtraLink:            &e.Link,
		ExtraComment:         &e.Comment,
		ExtraNostr:           &e.Nostr,
		ExtraWebhookStatus:   &e.WebhookStatus,
		ExtraWebhookSuccess:  &e.WebhookSuccess,
		ExtraWebhookMessage:  &e.WebhookMessage,
		ExtraWebhookResponse: &e.WebhookResponse,
	}
	if v, ok := raw[ExtraLink]; ok && len(v) > 0 {
		e.linkNumeric = v[0] != '"' && string(v) != "null"
	}
	for key, dst := range targets {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("extra %q: %w", key, err)
		}
		delete(raw, key)
	}
	if len(raw) > 0 {
		e.Fields = raw
	}
	return nil
}

func (e Extra) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Fields)+8)
	for k, v := range e.Fields {
		out[k] = v
	}
	if e.Tag != "" {
		out[ExtraTag] = e.Tag
	}
	if e.Link != "" {
		if e.linkNumeric && json.Valid([]byte(e.Link)) {
			out[ExtraLink] = json.RawMessage(e.Link)
		} else {
			out[ExtraLink] = string(e.Link)
		}
	}
	if e.Comment != nil {
		out[ExtraComment] = *e.Comment
	}
	if e.Nostr != "" {
		out[ExtraNostr] = e.Nostr
	}
	if e.WebhookStatus != nil {
		out[ExtraWebhookStatus] = *e.WebhookStatus
	}
	if e.WebhookSuccess != nil {
		out[ExtraWebhookSuccess] = *e.WebhookSuccess
	}
	if e.WebhookMessage != nil {
		out[ExtraWebhookMessage] = *e.WebhookMessage
	}
	if e.WebhookResponse != nil {
		out[ExtraWebhookResponse] = *e.WebhookResponse
	}
	return json.Marshal(out)
}

// Apply merges an outcome into the extra, mirroring what the store does
// with a recorded delivery.
func (e *Extra) Apply(o DeliveryOutcome) {
	status, success, message, response := o.Status, o.Success, o.Reason, o.Response
	e.WebhookStatus = &status
	e.WebhookSuccess = &success
	e.WebhookMessage = &message
	e.WebhookResponse = &response
}
