package budgets

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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*models.Budget, error) {
	query :=
		`SELECT id, user_id, start_date, end_date, amount, description, created_at, last_modified
		 FROM budgets
		 WHERE user_id = $1
		 ORDER BY start_date, created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Budget{}
	for rows.Next() {
		var item models.Budget
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.StartDate, &item.EndDate, &item.Amount,
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

func (r *PostgresRepository) Get(ctx context.Context, id, userID string) (*models.Budget, error) {
	query :=
		`SELECT id, user_id, start_date, end_date, amount, description, created_at, last_modified
		 FROM budgets
		 WHERE id = $1 AND user_id = $2
		 `

	b := &models.Budget{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&b.ID, &b.UserID, &b.StartDate, &b.EndDate, &b.Amount,
		&b.Description, &b.CreatedAt, &b.LastModified)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return b, nil
}

func (r *PostgresRepository) Create(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	query :=
		`INSERT INTO budgets (id, user_id, start_date, end_date, amount, description)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, last_modified
		 `

	budget.ID = uuid.New().String()

	err := r.db.QueryRowContext(ctx, query,
		budget.ID, budget.UserID, budget.StartDate, budget.EndDate,
		budget.Amount, budget.Description).Scan(&budget.CreatedAt, &budget.LastModified)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return budget, nil
}

func (r *PostgresRepository) Update(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	query :=
		`UPDATE budgets
		 SET start_date = $3, end_date = $4, amount = $5, description = $6, last_modified = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING last_modified
		 `

	err := r.db.QueryRowContext(ctx, query,
		budget.ID, budget.UserID, budget.StartDate, budget.EndDate,
		budget.Amount, budget.Description).Scan(&budget.LastModified)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return budget, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM budgets WHERE id = $1 AND user_id = $2`

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
