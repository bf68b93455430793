package events

import "time"

const AccountTopic = "hrportal.accounts"

type AccountRegisteredEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	AccountID  string    `json:"account_id"`
	NIK        string    `json:"nik"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}
