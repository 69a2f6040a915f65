package services

import (
	"context"
	"database/sql"

	"finbook/internal/config"
	"finbook/internal/dbx"
	"finbook/internal/server/models"
	"finbook/internal/server/repositories/repomanager"

	"github.com/shopspring/decimal"
)

// AccountService provides owner-scoped CRUD for accounts. The owner always
// comes from the authenticated identity, never from the payload.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AccountService {
	return &AccountService{db: db, repomanager: m}
}

// AccountCreate carries the fields of an account creation request.
type AccountCreate struct {
	Name        string
	AccountType string
	Balance     decimal.Decimal
	Description *string
}

// AccountPatch carries the optional fields of an account update. A nil
// field keeps the stored value.
type AccountPatch struct {
	Name        *string
	AccountType *string
	Balance     *decimal.Decimal
	Description *string
}

func (s *AccountService) List(ctx context.Context, userID string) ([]*models.Account, error) {
	repo := s.repomanager.Accounts(s.db)
	return repo.List(ctx, userID)
}

func (s *AccountService) Get(ctx context.Context, id, userID string) (*models.Account, error) {
	repo := s.repomanager.Accounts(s.db)
	return repo.Get(ctx, id, userID)
}

func (s *AccountService) Create(ctx context.Context, userID string, in *AccountCreate) (*models.Account, error) {
	accountType, err := models.ParseAccountType(in.AccountType)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		UserID:      userID,
		Name:        in.Name,
		AccountType: accountType,
		Balance:     in.Balance,
		Description: in.Description,
	}

	repo := s.repomanager.Accounts(s.db)
	return repo.Create(ctx, account)
}

// Update re-reads the account (enforcing ownership), applies only the
// present fields, and writes the record back.
func (s *AccountService) Update(ctx context.Context, id, userID string, patch *AccountPatch) (*models.Account, error) {
	repo := s.repomanager.Accounts(s.db)

	account, err := repo.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		account.Name = *patch.Name
	}
	if patch.AccountType != nil {
		accountType, err := models.ParseAccountType(*patch.AccountType)
		if err != nil {
			return nil, err
		}
		account.AccountType = accountType
	}
	if patch.Balance != nil {
		account.Balance = *patch.Balance
	}
	if patch.Description != nil {
		account.Description = patch.Description
	}

	return repo.Update(ctx, account)
}

// Delete removes the account and reconciles its transactions in a single
// transaction: rows where the account is primary are deleted, rows that
// referenced it as transfer target survive with the reference nulled out.
func (s *AccountService) Delete(ctx context.Context, id, userID string) error {
	repo := s.repomanager.Accounts(s.db)

	if _, err := repo.Get(ctx, id, userID); err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		txRepo := s.repomanager.Transactions(tx)
		if err := txRepo.NullifyTransferAccount(ctx, id, userID); err != nil {
			return err
		}
		if err := txRepo.DeleteByAccount(ctx, id, userID); err != nil {
			return err
		}
		return s.repomanager.Accounts(tx).Delete(ctx, id, userID)
	})
}
