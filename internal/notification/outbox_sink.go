package notification

import (
	"context"
	"encoding/json"
	"time"

	"go-hrportal/internal/events"
	"go-hrportal/internal/messaging/kafka"
	"go-hrportal/internal/shared/contextutil"

	"github.com/google/uuid"
)

// OutboxSink records the notification as a pending outbox event; the
// outbox worker publishes it to Kafka and the consumer delivers the
// mail. The API process never talks SMTP directly.
type OutboxSink struct {
	outbox kafka.OutboxRepository
}

func NewOutboxSink(outbox kafka.OutboxRepository) *OutboxSink {
	return &OutboxSink{outbox: outbox}
}

func (s *OutboxSink) Send(ctx context.Context, subject, body, to string) error {
	event := events.NotificationRequestedEvent{
		EventType:  "notification_requested",
		RequestID:  contextutil.GetRequestID(ctx),
		Recipient:  to,
		Subject:    subject,
		Body:       body,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     event.RequestID,
		AggregateType: "notification",
		AggregateID:   to,
		EventType:     event.EventType,
		Topic:         events.NotificationTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
