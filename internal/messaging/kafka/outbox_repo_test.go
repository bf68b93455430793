package kafka_test

import (
	"context"
	"testing"
	"time"

	"go-hrportal/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func pendingEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     uuid.New().String(),
		AggregateType: "account",
		AggregateID:   uuid.New().String(),
		EventType:     "account_registered",
		Topic:         "hrportal.accounts",
		Payload:       []byte(`{"email":"jane.doe@example.com"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestOutboxRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		event := pendingEvent()
		mock.ExpectExec("INSERT INTO outbox_events").
			WithArgs(
				event.ID, event.RequestID, event.AggregateType,
				event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
			).
			WillReturnResult(sqlmock.NewResult(1, 1))

		repo := kafka.NewOutboxRepository(db)
		err := repo.Create(ctx, event)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - inside a caller transaction", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		event := pendingEvent()
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO outbox_events").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		tx, err := db.BeginTx(ctx, nil)
		assert.NoError(t, err)

		repo := kafka.NewOutboxRepository(db)
		assert.NoError(t, repo.WithTx(tx).Create(ctx, event))
		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - invalid event rejected before touching the database", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		event := pendingEvent()
		event.Topic = ""

		repo := kafka.NewOutboxRepository(db)
		err := repo.Create(ctx, event)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOutboxRepository_ListPending(t *testing.T) {
	ctx := context.Background()

	db, mock, _ := sqlmock.New()
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow(
		uuid.New().String(), "account", uuid.New().String(), "account_registered",
		"hrportal.accounts", []byte(`{}`), kafka.OutboxStatusPending, 0, now,
	)
	mock.ExpectQuery("SELECT(.|\n)*FROM outbox_events").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(rows)

	repo := kafka.NewOutboxRepository(db)
	events, err := repo.ListPending(ctx, 50)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "account_registered", events[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSentAndFailed(t *testing.T) {
	ctx := context.Background()

	db, mock, _ := sqlmock.New()
	defer db.Close()

	id := uuid.New().String()
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(id, kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(id, kafka.OutboxStatusFailed, "broker unreachable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := kafka.NewOutboxRepository(db)
	assert.NoError(t, repo.MarkSent(ctx, id))
	assert.NoError(t, repo.MarkFailed(ctx, id, "broker unreachable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.NoError(t, kafka.ValidateOutboxEvent(pendingEvent()))

	missingID := pendingEvent()
	missingID.ID = ""
	assert.Error(t, kafka.ValidateOutboxEvent(missingID))

	emptyPayload := pendingEvent()
	emptyPayload.Payload = nil
	assert.Error(t, kafka.ValidateOutboxEvent(emptyPayload))

	badStatus := pendingEvent()
	badStatus.Status = "queued"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}
