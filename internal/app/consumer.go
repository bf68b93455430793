package app

import (
	"context"
	"os/signal"
	"syscall"

	"go-hrportal/internal/events"
	"go-hrportal/internal/messaging/kafka/consumer"
	"go-hrportal/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer delivers queued notifications over SMTP. It blocks until
// SIGINT/SIGTERM.
func RunConsumer() error {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: kafkaBrokers(),
		GroupID: "hrportal-notifications",
		Topic:   events.NotificationTopic,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeNotifications(ctx, reader, notification.NewSMTPSink(), zap.L())

	return nil
}
