// Package transactions provides owner-scoped persistence for transactions,
// plus the account-deletion helpers: cascade of primary-account rows and
// nullify of transfer references.
package transactions

import (
	"context"

	"finbook/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, userID string) ([]*models.Transaction, error)
	Get(ctx context.Context, id, userID string) (*models.Transaction, error)
	Create(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
	Update(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
	Delete(ctx context.Context, id, userID string) error

	// DeleteByAccount removes all transactions whose primary account is
	// accountID. Used when that account is deleted.
	DeleteByAccount(ctx context.Context, accountID, userID string) error

	// NullifyTransferAccount clears transfer_account_id on transactions that
	// referenced accountID as the transfer target. Those rows survive as
	// non-transfers.
	NullifyTransferAccount(ctx context.Context, accountID, userID string) error
}
