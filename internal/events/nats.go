package events

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"twitch_casino/internal/logger"
)

// NATSPublisher emits round events to a NATS subject. Publish failures are
// logged and dropped.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
}

func NewNATSPublisher(url, subject string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn, subject: subject}, nil
}

func (p *NATSPublisher) PublishRound(ev RoundEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		logger.Error("marshal round event", "err", err)
		return
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		logger.Warn("publish round event", "subject", p.subject, "err", err)
	}
}

func (p *NATSPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
