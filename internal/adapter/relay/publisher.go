// Package relay sends frames to a nostr relay over websocket.
package relay

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Config configures the relay connection.
type Config struct {
	URL                string
	InsecureSkipVerify bool
	DialTimeout        time.Duration
}

// Publisher implements ports.RelayPublisher with one connection per frame.
type Publisher struct {
	url    string
	dialer *websocket.Dialer
	log    zerolog.Logger
}

// NewPublisher creates a publisher for cfg.URL.
func NewPublisher(cfg Config, log zerolog.Logger) *Publisher {
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Publisher{
		url: cfg.URL,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: timeout,
			TLSClientConfig:  &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}, //nolint:gosec // local relay with a self-signed cert
		},
		log: log,
	}
}

// Publish dials the relay, writes message as a text frame and closes.
func (p *Publisher) Publish(ctx context.Context, message []byte) error {
	conn, resp, err := p.dialer.DialContext(ctx, p.url, nil)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("dial relay %s: %w (status %d)", p.url, err, resp.StatusCode)
		}
		return fmt.Errorf("dial relay %s: %w", p.url, err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			p.log.Debug().Err(err).Msg("relay: close connection")
		}
	}()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	}
	if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
		return fmt.Errorf("write to relay: %w", err)
	}

	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(time.Second)); err != nil {
		p.log.Debug().Err(err).Msg("relay: close handshake")
	}
	return nil
}
