package interfaces

import (
	"context"

	"crm_senior/internal/domain/entities"
)

// ILogEntryRepository abstracts DynamoDB persistence for LogEntry.
//
// Log entries are append-only: no update operation exists and
// DeleteByClientID is only reached through the client cascade.

type ILogEntryRepository interface {
	Create(ctx context.Context, e entities.LogEntry) (entities.LogEntry, error)
	ListByClientID(ctx context.Context, clientID string, limit int) ([]entities.LogEntry, error)
	ListByClientIDs(ctx context.Context, clientIDs []string, limit int) ([]entities.LogEntry, error)
	DeleteByClientID(ctx context.Context, clientID string) error
}
