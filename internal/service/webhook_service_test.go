package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"lnurlp-webhook/internal/core/domain"
	"lnurlp-webhook/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockHTTPClient implements HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func strPtr(s string) *string { return &s }

type capturedRequest struct {
	header http.Header
	body   map[string]any
}

func capture(r *http.Request) capturedRequest {
	c := capturedRequest{header: r.Header.Clone()}
	_ = json.NewDecoder(r.Body).Decode(&c.body)
	return c
}

func newPaidEvent() *domain.PaymentEvent {
	return &domain.PaymentEvent{
		PaymentHash: "ab12",
		Bolt11:      "lnbc10u1pjexample",
		Amount:      1000,
		Extra:       domain.Extra{Tag: domain.TagPayLink, Link: "7"},
	}
}

func newLink(url string) *domain.PayLink {
	return &domain.PayLink{ID: "7", WebhookURL: strPtr(url)}
}

func TestWebhookService_Deliver_Success(t *testing.T) {
	reqs := make(chan capturedRequest, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqs <- capture(r)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	svc := NewWebhookService(NewWebhookHTTPClient(time.Second), time.Second, 0, newTestLogger())
	outcome := svc.Deliver(context.Background(), newPaidEvent(), newLink(srv.URL))

	assert.Equal(t, domain.DeliveryOutcome{Status: 200, Success: true, Reason: "OK", Response: `{"ok":true}`}, outcome)

	req := <-reqs
	got := req.body
	assert.Equal(t, "application/json", req.header.Get("Content-Type"))

	assert.Equal(t, "ab12", got["payment_hash"])
	assert.Equal(t, "lnbc10u1pjexample", got["payment_request"])
	assert.Equal(t, float64(1000), got["amount"])
	assert.Equal(t, "7", got["lnurlp"])
	assert.Equal(t, "", got["body"])
	comment, ok := got["comment"]
	assert.True(t, ok)
	assert.Nil(t, comment)
}

func TestWebhookService_Deliver_CustomBodyAndHeaders(t *testing.T) {
	reqs := make(chan capturedRequest, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqs <- capture(r)
	}))
	defer srv.Close()

	event := newPaidEvent()
	event.Extra.Comment = strPtr("thanks!")
	link := newLink(srv.URL)
	link.WebhookBody = strPtr(`{"order":42}`)
	link.WebhookHeaders = strPtr(`{"Authorization":"Bearer t0k3n","Content-Type":"application/vnd.shop+json"}`)

	svc := NewWebhookService(NewWebhookHTTPClient(time.Second), time.Second, 0, newTestLogger())
	outcome := svc.Deliver(context.Background(), event, link)

	assert.True(t, outcome.Success)
	req := <-reqs
	assert.Equal(t, "Bearer t0k3n", req.header.Get("Authorization"))
	assert.Equal(t, "application/vnd.shop+json", req.header.Get("Content-Type"))
	assert.Equal(t, "thanks!", req.body["comment"])
	assert.Equal(t, map[string]any{"order": float64(42)}, req.body["body"])
}

func TestWebhookService_Deliver_Non2xxRecordedAsIs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	svc := NewWebhookService(NewWebhookHTTPClient(time.Second), time.Second, 0, newTestLogger())
	outcome := svc.Deliver(context.Background(), newPaidEvent(), newLink(srv.URL))

	assert.Equal(t, 500, outcome.Status)
	assert.False(t, outcome.Success)
	assert.Equal(t, "Internal Server Error", outcome.Reason)
	assert.Equal(t, "boom", outcome.Response)
}

func TestWebhookService_Deliver_DoesNotFollowRedirects(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	defer srv.Close()

	svc := NewWebhookService(NewWebhookHTTPClient(time.Second), time.Second, 0, newTestLogger())
	outcome := svc.Deliver(context.Background(), newPaidEvent(), newLink(srv.URL))

	assert.Equal(t, http.StatusFound, outcome.Status)
	assert.False(t, outcome.Success)
	assert.Equal(t, int32(1), hits.Load())
}

func TestWebhookService_Deliver_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	svc := NewWebhookService(NewWebhookHTTPClient(0), 50*time.Millisecond, 0, newTestLogger())
	outcome := svc.Deliver(context.Background(), newPaidEvent(), newLink(srv.URL))

	assert.Equal(t, domain.TransportFailureStatus, outcome.Status)
	assert.False(t, outcome.Success)
	assert.Equal(t, domain.TransportFailureReason, outcome.Reason)
	assert.NotEmpty(t, outcome.Response)
}

func TestWebhookService_Deliver_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	svc := NewWebhookService(NewWebhookHTTPClient(time.Second), time.Second, 0, newTestLogger())
	outcome := svc.Deliver(context.Background(), newPaidEvent(), newLink(url))

	assert.Equal(t, -1, outcome.Status)
	assert.Equal(t, "Unexpected Error", outcome.Reason)
}

func TestWebhookService_Deliver_InvalidTemplates(t *testing.T) {
	called := false
	client := &mockHTTPClient{doFunc: func(*http.Request) (*http.Response, error) {
		called = true
		return nil, errors.New("unreachable")
	}}
	svc := NewWebhookService(client, time.Second, 0, newTestLogger())

	link := newLink("https://shop.example/hook")
	link.WebhookBody = strPtr(`{not json`)
	outcome := svc.Deliver(context.Background(), newPaidEvent(), link)
	assert.Equal(t, domain.TransportFailureStatus, outcome.Status)
	assert.Contains(t, outcome.Response, "webhook_body")

	link = newLink("https://shop.example/hook")
	link.WebhookHeaders = strPtr(`["X-Foo"]`)
	outcome = svc.Deliver(context.Background(), newPaidEvent(), link)
	assert.Equal(t, domain.TransportFailureStatus, outcome.Status)
	assert.Contains(t, outcome.Response, "webhook_headers")

	assert.False(t, called)
}

func TestWebhookService_Deliver_ReasonFallback(t *testing.T) {
	client := &mockHTTPClient{doFunc: func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusAccepted,
			Body:       io.NopCloser(strings.NewReader("queued")),
		}, nil
	}}
	svc := NewWebhookService(client, time.Second, 0, newTestLogger())

	outcome := svc.Deliver(context.Background(), newPaidEvent(), newLink("https://shop.example/hook"))
	assert.Equal(t, domain.DeliveryOutcome{Status: 202, Success: true, Reason: "Accepted", Response: "queued"}, outcome)
}

func TestWebhookService_Deliver_TruncatesResponse(t *testing.T) {
	client := &mockHTTPClient{doFunc: func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: 200,
			Status:     "200 OK",
			Body:       io.NopCloser(strings.NewReader(strings.Repeat("x", 64))),
		}, nil
	}}
	svc := NewWebhookService(client, time.Second, 16, newTestLogger())

	outcome := svc.Deliver(context.Background(), newPaidEvent(), newLink("https://shop.example/hook"))
	assert.Len(t, outcome.Response, 16)
}

func TestWebhookService_Deliver_StoresLargeResponseInFull(t *testing.T) {
	large := strings.Repeat("y", 3<<20)
	client := &mockHTTPClient{doFunc: func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: 200,
			Status:     "200 OK",
			Body:       io.NopCloser(strings.NewReader(large)),
		}, nil
	}}
	svc := NewWebhookService(client, time.Second, 0, newTestLogger())

	outcome := svc.Deliver(context.Background(), newPaidEvent(), newLink("https://shop.example/hook"))
	assert.True(t, outcome.Success)
	assert.Equal(t, len(large), len(outcome.Response))
}

func TestWebhookService_Deliver_ResponseAtCapNotTruncated(t *testing.T) {
	client := &mockHTTPClient{doFunc: func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: 200,
			Status:     "200 OK",
			Body:       io.NopCloser(strings.NewReader(strings.Repeat("x", 16))),
		}, nil
	}}
	svc := NewWebhookService(client, time.Second, 16, newTestLogger())

	outcome := svc.Deliver(context.Background(), newPaidEvent(), newLink("https://shop.example/hook"))
	assert.Equal(t, strings.Repeat("x", 16), outcome.Response)
}

func TestWebhookService_Deliver_NumericLookingLinkIDs(t *testing.T) {
	for _, id := range []domain.LinkID{"007", "+5", "123"} {
		reqs := make(chan capturedRequest, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqs <- capture(r)
		}))

		link := newLink(srv.URL)
		link.ID = id
		svc := NewWebhookService(NewWebhookHTTPClient(time.Second), time.Second, 0, newTestLogger())
		outcome := svc.Deliver(context.Background(), newPaidEvent(), link)

		assert.Equal(t, 200, outcome.Status, id)
		assert.True(t, outcome.Success, id)
		assert.Equal(t, string(id), (<-reqs).body["lnurlp"], id)
		srv.Close()
	}
}

func TestBuildWebhookPayload(t *testing.T) {
	event := newPaidEvent()
	link := &domain.PayLink{ID: "abc", WebhookURL: strPtr("https://x"), WebhookBody: strPtr(`[1,2]`)}

	p, err := BuildWebhookPayload(event, link)
	require.NoError(t, err)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"payment_hash":"ab12","payment_request":"lnbc10u1pjexample","amount":1000,"comment":null,"lnurlp":"abc","body":[1,2]}`,
		string(b))

	link.WebhookBody = strPtr("nope")
	_, err = BuildWebhookPayload(event, link)
	assert.True(t, errors.Is(err, apperror.ErrInvalidTemplate("", nil)))
}

func TestNewWebhookService_Defaults(t *testing.T) {
	svc := NewWebhookService(&mockHTTPClient{}, 0, 0, newTestLogger())
	assert.Equal(t, DefaultWebhookTimeout, svc.timeout)
	assert.Zero(t, svc.maxResponseBytes)
}
