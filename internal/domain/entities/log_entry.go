package entities

import "time"

// LogType classifies an activity-log entry.

type LogType string

const (
	LogTypeInfo   LogType = "info"
	LogTypeBudget LogType = "budget"
	LogTypeCall   LogType = "call"
)

func (t LogType) Valid() bool {
	switch t {
	case LogTypeInfo, LogTypeBudget, LogTypeCall:
		return true
	}
	return false
}

// LogEntry is an immutable, append-only activity note attached to a client.
// Entries are written as a side effect of almost every mutation and are never
// updated or deleted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
type LogEntry struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Type        LogType   `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
