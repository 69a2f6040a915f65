package transactions

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

// PostgresRepository implements transaction storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*models.Transaction, error) {
	query :=
		`SELECT id, user_id, account_id, date, amount, description, transaction_type,
		        transfer_account_id, created_at, last_modified
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY date, created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Transaction{}
	for rows.Next() {
		var item models.Transaction
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.AccountID, &item.Date, &item.Amount,
			&item.Description, &item.TransactionType, &item.TransferAccountID,
			&item.CreatedAt, &item.LastModified,
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

func (r *PostgresRepository) Get(ctx context.Context, id, userID string) (*models.Transaction, error) {
	query :=
		`SELECT id, user_id, account_id, date, amount, description, transaction_type,
		        transfer_account_id, created_at, last_modified
		 FROM transactions
		 WHERE id = $1 AND user_id = $2
		 `

	t := &models.Transaction{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&t.ID, &t.UserID, &t.AccountID, &t.Date, &t.Amount,
		&t.Description, &t.TransactionType, &t.TransferAccountID,
		&t.CreatedAt, &t.LastModified)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

func (r *PostgresRepository) Create(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	query :=
		`INSERT INTO transactions (id, user_id, account_id, date, amount, description,
		                           transaction_type, transfer_account_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, last_modified
		 `

	transaction.ID = uuid.New().String()

	err := r.db.QueryRowContext(ctx, query,
		transaction.ID, transaction.UserID, transaction.AccountID, transaction.Date,
		transaction.Amount, transaction.Description, transaction.TransactionType,
		transaction.TransferAccountID).Scan(&transaction.CreatedAt, &transaction.LastModified)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return transaction, nil
}

func (r *PostgresRepository) Update(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	query :=
		`UPDATE transactions
		 SET account_id = $3, date = $4, amount = $5, description = $6,
		     transaction_type = $7, transfer_account_id = $8, last_modified = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING last_modified
		 `

	err := r.db.QueryRowContext(ctx, query,
		transaction.ID, transaction.UserID, transaction.AccountID, transaction.Date,
		transaction.Amount, transaction.Description, transaction.TransactionType,
		transaction.TransferAccountID).Scan(&transaction.LastModified)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return transaction, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`

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

func (r *PostgresRepository) DeleteByAccount(ctx context.Context, accountID, userID string) error {
	query := `DELETE FROM transactions WHERE account_id = $1 AND user_id = $2`

	if _, err := r.db.ExecContext(ctx, query, accountID, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) NullifyTransferAccount(ctx context.Context, accountID, userID string) error {
	query :=
		`UPDATE transactions SET transfer_account_id = NULL, last_modified = now()
		 WHERE transfer_account_id = $1 AND user_id = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, accountID, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
