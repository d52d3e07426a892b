package sqlite

import "time"

// Reminder statuses stored in the ledger
const (
	StatusScheduled  = "scheduled"
	StatusDelivered  = "delivered"
	StatusSuppressed = "suppressed"
)

// Reminder is one one-shot notification handed to the local scheduler
type Reminder struct {
	ID          int64
	Title       string
	Body        string
	Status      string
	ScheduledAt time.Time
	FireAt      time.Time
	DeliveredAt *time.Time // nil until the timer fires
}
