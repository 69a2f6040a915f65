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

// RepositoryManager vends repositories bound to a DBTX, so services can run
// the same repository code against the pooled connection or inside a
// transaction started with dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Accounts(db dbx.DBTX) accounts.Repository
	Transactions(db dbx.DBTX) transactions.Repository
	Budgets(db dbx.DBTX) budgets.Repository
}
