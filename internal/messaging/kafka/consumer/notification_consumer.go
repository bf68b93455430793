package consumer

import (
	"context"
	"encoding/json"

	"go-hrportal/internal/events"
	"go-hrportal/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeNotifications drains the notification topic and hands each
// message to the sink. Malformed messages are committed and dropped;
// delivery failures are retried on the next fetch.
func ConsumeNotifications(
	ctx context.Context,
	reader *kafkago.Reader,
	sink notification.Sink,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notifications")
	log.Info("notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification consumer stopped")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err))
			continue
		}

		var event events.NotificationRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode notification_requested event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := sink.Send(ctx, event.Subject, event.Body, event.Recipient); err != nil {
			log.Error("deliver notification failed",
				zap.String("recipient", event.Recipient),
				zap.String("request_id", event.RequestID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit notification message failed", zap.Error(err))
			continue
		}

		log.Info("notification delivered",
			zap.String("recipient", event.Recipient),
			zap.String("request_id", event.RequestID),
		)
	}
}
