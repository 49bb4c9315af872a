package nats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/kurobe2240/NFT-EC/internal/platform/logger"
	"github.com/kurobe2240/NFT-EC/internal/service"
	"github.com/nats-io/nats.go"
)

// NotificationEvent is the wire shape published for every user notification.
type NotificationEvent struct {
	ID       string    `json:"id"`
	Message  string    `json:"message"`
	Severity string    `json:"severity"`
	At       time.Time `json:"at"`
}

type natsNotifier struct {
	conn    *nats.Conn
	subject string
	log     logger.Logger
}

// NewNotifier returns a service.Notifier that publishes notification events
// to a NATS subject. Publish failures are logged and dropped; the contract is
// fire-and-forget.
func NewNotifier(conn *nats.Conn, subject string, log logger.Logger) service.Notifier {
	return &natsNotifier{conn: conn, subject: subject, log: log}
}

func (n *natsNotifier) Notify(_ context.Context, message string, severity service.Severity) {
	event := NotificationEvent{
		ID:       uuid.NewString(),
		Message:  message,
		Severity: string(severity),
		At:       time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		n.log.Errorf("Failed to marshal notification event: %v", err)
		return
	}
	if err := n.conn.Publish(n.subject, data); err != nil {
		n.log.Errorf("Failed to publish notification to subject %s: %v", n.subject, err)
	}
}
