package entities

import "time"

// Reminder is a one-shot scheduled email notification tied to a client and
// addressed to the owning user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//   - due_date is stored as a unix timestamp so the due-set scan can compare
//     numerically; is_sent flips false -> true exactly once after a
//     successful delivery.
type Reminder struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	IsSent      bool      `json:"is_sent"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReminderDefaultHour is the local time-of-day applied when a reminder is
// scheduled from a date-only value, keeping it safe for a daily sweep.
const ReminderDefaultHour = 9
