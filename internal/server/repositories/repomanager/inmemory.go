package repomanager

import (
	"context"
	"database/sql"

	"finbook/internal/dbx"
	"finbook/internal/server/repositories/accounts"
	"finbook/internal/server/repositories/budgets"
	"finbook/internal/server/repositories/transactions"
	"finbook/internal/server/repositories/users"
)

// InMemoryRepositoryManager vends map-backed repositories. The DBTX
// argument is ignored; the same repository instances serve both pooled and
// transactional callers, which is adequate for tests and local runs.
type InMemoryRepositoryManager struct {
	users        *users.MemoryRepository
	accounts     *accounts.MemoryRepository
	transactions *transactions.MemoryRepository
	budgets      *budgets.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:        users.NewMemoryRepository(),
		accounts:     accounts.NewMemoryRepository(),
		transactions: transactions.NewMemoryRepository(),
		budgets:      budgets.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return m.accounts
}

func (m *InMemoryRepositoryManager) Transactions(db dbx.DBTX) transactions.Repository {
	return m.transactions
}

func (m *InMemoryRepositoryManager) Budgets(db dbx.DBTX) budgets.Repository {
	return m.budgets
}
