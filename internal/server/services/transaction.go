package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"finbook/internal/common"
	"finbook/internal/config"
	"finbook/internal/server/models"
	"finbook/internal/server/repositories/accounts"
	"finbook/internal/server/repositories/repomanager"

	"github.com/shopspring/decimal"
)

// TransactionService provides owner-scoped CRUD for transactions and
// enforces the referential rules: the primary account and, when present,
// the transfer account must belong to the same owner. A Transfer-typed
// transaction is not required to carry a transfer account, and no mirrored
// opposite-sign row is ever created.
type TransactionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTransactionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *TransactionService {
	return &TransactionService{db: db, repomanager: m}
}

// TransactionCreate carries the fields of a creation request. A nil Date
// defaults to the current time.
type TransactionCreate struct {
	AccountID         string
	Date              *time.Time
	Amount            decimal.Decimal
	Description       *string
	TransactionType   string
	TransferAccountID *string
}

// TransactionPatch carries the optional fields of an update. A nil field
// keeps the stored value.
type TransactionPatch struct {
	AccountID         *string
	Date              *time.Time
	Amount            *decimal.Decimal
	Description       *string
	TransactionType   *string
	TransferAccountID *string
}

// checkAccountRefs verifies that accountID (and transferAccountID, when
// set) resolve through the owner-scoped accounts repository. A miss is a
// referential error, never a bare database error, and a foreign user's
// account fails the same way as a nonexistent one.
func (s *TransactionService) checkAccountRefs(ctx context.Context, repo accounts.Repository, userID, accountID string, transferAccountID *string) error {
	if _, err := repo.Get(ctx, accountID, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrAccountNotFound
		}
		return err
	}

	if transferAccountID != nil {
		if _, err := repo.Get(ctx, *transferAccountID, userID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrTransferAccountNotFound
			}
			return err
		}
	}

	return nil
}

func (s *TransactionService) List(ctx context.Context, userID string) ([]*models.Transaction, error) {
	repo := s.repomanager.Transactions(s.db)
	return repo.List(ctx, userID)
}

func (s *TransactionService) Get(ctx context.Context, id, userID string) (*models.Transaction, error) {
	repo := s.repomanager.Transactions(s.db)
	return repo.Get(ctx, id, userID)
}

func (s *TransactionService) Create(ctx context.Context, userID string, in *TransactionCreate) (*models.Transaction, error) {
	transactionType, err := models.ParseTransactionType(in.TransactionType)
	if err != nil {
		return nil, err
	}

	accountsRepo := s.repomanager.Accounts(s.db)
	if err := s.checkAccountRefs(ctx, accountsRepo, userID, in.AccountID, in.TransferAccountID); err != nil {
		return nil, err
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	transaction := &models.Transaction{
		UserID:            userID,
		AccountID:         in.AccountID,
		Date:              date,
		Amount:            in.Amount,
		Description:       in.Description,
		TransactionType:   transactionType,
		TransferAccountID: in.TransferAccountID,
	}

	repo := s.repomanager.Transactions(s.db)
	return repo.Create(ctx, transaction)
}

// Update re-reads the transaction (enforcing ownership), applies only the
// present fields, re-checks the account references, and writes back.
func (s *TransactionService) Update(ctx context.Context, id, userID string, patch *TransactionPatch) (*models.Transaction, error) {
	repo := s.repomanager.Transactions(s.db)

	transaction, err := repo.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if patch.AccountID != nil {
		transaction.AccountID = *patch.AccountID
	}
	if patch.Date != nil {
		transaction.Date = *patch.Date
	}
	if patch.Amount != nil {
		transaction.Amount = *patch.Amount
	}
	if patch.Description != nil {
		transaction.Description = patch.Description
	}
	if patch.TransactionType != nil {
		transactionType, err := models.ParseTransactionType(*patch.TransactionType)
		if err != nil {
			return nil, err
		}
		transaction.TransactionType = transactionType
	}
	if patch.TransferAccountID != nil {
		transaction.TransferAccountID = patch.TransferAccountID
	}

	accountsRepo := s.repomanager.Accounts(s.db)
	if err := s.checkAccountRefs(ctx, accountsRepo, userID, transaction.AccountID, transaction.TransferAccountID); err != nil {
		return nil, err
	}

	return repo.Update(ctx, transaction)
}

func (s *TransactionService) Delete(ctx context.Context, id, userID string) error {
	repo := s.repomanager.Transactions(s.db)
	return repo.Delete(ctx, id, userID)
}
