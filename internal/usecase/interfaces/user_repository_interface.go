package interfaces

import (
	"context"

	"crm_senior/internal/domain/entities"
)

// IUserRepository reads users managed by the upstream identity provider.
// The CRM core only needs recipient lookups, never writes.

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
}
