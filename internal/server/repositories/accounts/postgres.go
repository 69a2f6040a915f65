package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"finbook/internal/common"
	"finbook/internal/dbx"
	"finbook/internal/server/models"

	"github.com/google/uuid"
)

// PostgresRepository implements account storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all accounts owned by userID, fully materialized.
func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*models.Account, error) {
	query :=
		`SELECT id, user_id, name, account_type, balance, description, created_at, last_modified
		 FROM accounts
		 WHERE user_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Account{}
	for rows.Next() {
		var item models.Account
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Name, &item.AccountType, &item.Balance,
			&item.Description, &item.CreatedAt, &item.LastModified,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns the account only when it exists AND belongs to userID.
func (r *PostgresRepository) Get(ctx context.Context, id, userID string) (*models.Account, error) {
	query :=
		`SELECT id, user_id, name, account_type, balance, description, created_at, last_modified
		 FROM accounts
		 WHERE id = $1 AND user_id = $2
		 `

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&account.ID, &account.UserID, &account.Name, &account.AccountType, &account.Balance,
		&account.Description, &account.CreatedAt, &account.LastModified)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query :=
		`INSERT INTO accounts (id, user_id, name, account_type, balance, description)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, last_modified
		 `

	account.ID = uuid.New().String()

	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.UserID, account.Name, account.AccountType,
		account.Balance, account.Description).Scan(&account.CreatedAt, &account.LastModified)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

// Update writes the full record back, guarded by owner.
func (r *PostgresRepository) Update(ctx context.Context, account *models.Account) (*models.Account, error) {
	query :=
		`UPDATE accounts
		 SET name = $3, account_type = $4, balance = $5, description = $6, last_modified = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING last_modified
		 `

	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.UserID, account.Name, account.AccountType,
		account.Balance, account.Description).Scan(&account.LastModified)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

// Delete removes the account row, guarded by owner. Transaction cleanup
// (cascade/nullify) is the account service's responsibility, inside one
// transaction.
func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM accounts WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
