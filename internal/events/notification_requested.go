package events

import "time"

const NotificationTopic = "hrportal.notifications"

// NotificationRequestedEvent asks the delivery side to send a message to
// an address. Dispatch is best-effort and decoupled from the workflow
// that raised it.
type NotificationRequestedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	Recipient  string    `json:"recipient"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	OccurredAt time.Time `json:"occurred_at"`
}
