// Package budgets provides owner-scoped persistence for budget records.
package budgets

import (
	"context"

	"finbook/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, userID string) ([]*models.Budget, error)
	Get(ctx context.Context, id, userID string) (*models.Budget, error)
	Create(ctx context.Context, budget *models.Budget) (*models.Budget, error)
	Update(ctx context.Context, budget *models.Budget) (*models.Budget, error)
	Delete(ctx context.Context, id, userID string) error
}
