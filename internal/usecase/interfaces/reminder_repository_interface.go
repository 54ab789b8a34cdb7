package interfaces

import (
	"context"
	"time"

	"crm_senior/internal/domain/entities"
)

// IReminderRepository abstracts DynamoDB persistence for Reminder.
//
// ClaimUnsent performs the conditional is_sent false -> true flip and reports
// whether this caller won the claim; a lost claim means a concurrent sweep
// already owns the reminder. ReleaseClaim undoes the flip after a failed
// delivery so the reminder stays eligible for the next sweep.

type IReminderRepository interface {
	Create(ctx context.Context, r entities.Reminder) (entities.Reminder, error)
	ListDue(ctx context.Context, now time.Time) ([]entities.Reminder, error)
	ClaimUnsent(ctx context.Context, id string) (bool, error)
	ReleaseClaim(ctx context.Context, id string) error
	DeleteByClientID(ctx context.Context, clientID string) error
}
