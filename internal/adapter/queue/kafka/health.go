package kafka

import (
	"context"
	"errors"

	"github.com/segmentio/kafka-go"
)

// HealthCheck implements ports.HealthChecker by dialing the first broker.
type HealthCheck struct {
	brokers []string
	dial    func(ctx context.Context, network, address string) (*kafka.Conn, error)
}

// NewHealthCheck creates a Kafka health checker.
func NewHealthCheck(brokers []string) *HealthCheck {
	return &HealthCheck{brokers: brokers, dial: kafka.DialContext}
}

// Ping checks that a broker accepts connections.
func (h *HealthCheck) Ping(ctx context.Context) error {
	if len(h.brokers) == 0 {
		return errors.New("no kafka brokers configured")
	}
	conn, err := h.dial(ctx, "tcp", h.brokers[0])
	if err != nil {
		return err
	}
	return conn.Close()
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "kafka"
}
