package interfaces

import (
	"context"

	"crm_senior/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Budgets are never deleted individually; DeleteByClientID exists only for
// the client cascade.

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Budget, error)
	ListByClientIDs(ctx context.Context, clientIDs []string) ([]entities.Budget, error)
	UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error)
	DeleteByClientID(ctx context.Context, clientID string) error
}
