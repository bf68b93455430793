package app

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go-hrportal/internal/messaging/kafka"
	"go-hrportal/internal/messaging/kafka/producer"
	"go-hrportal/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunWorker drives the outbox poller that pushes pending events to
// Kafka. It blocks until SIGINT/SIGTERM.
func RunWorker() error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	writer := &kafkago.Writer{
		Addr:     kafkago.TCP(kafkaBrokers()...),
		Balancer: &kafkago.LeastBytes{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	outboxRepo := kafka.NewOutboxRepository(db)
	producer.ProcessOutboxEvents(ctx, outboxRepo, writer, zap.L(), 0)

	return nil
}

func kafkaBrokers() []string {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}
	return strings.Split(brokers, ",")
}
