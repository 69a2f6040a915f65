// Package accounts provides owner-scoped persistence for accounts. Every
// read and mutation is filtered by the owning user; a row owned by someone
// else is indistinguishable from a missing one.
package accounts

import (
	"context"

	"finbook/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, userID string) ([]*models.Account, error)
	Get(ctx context.Context, id, userID string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) (*models.Account, error)
	Delete(ctx context.Context, id, userID string) error
}
