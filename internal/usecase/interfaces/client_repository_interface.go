package interfaces

import (
	"context"

	"crm_senior/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
//
// Delete must cascade to the client's budgets, log entries and reminders so
// no dangling references survive a client removal.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Client, error)
	UpdateStatus(ctx context.Context, id string, status entities.ClientStatus) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}
