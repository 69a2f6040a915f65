package services

import (
	"context"
	"database/sql"
	"time"

	"finbook/internal/common"
	"finbook/internal/config"
	"finbook/internal/server/models"
	"finbook/internal/server/repositories/repomanager"

	"github.com/shopspring/decimal"
)

// BudgetService provides owner-scoped CRUD for budgets. A budget is a
// standalone ceiling record; nothing ties it to accounts or transactions
// beyond ownership.
type BudgetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewBudgetService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *BudgetService {
	return &BudgetService{db: db, repomanager: m}
}

type BudgetCreate struct {
	StartDate   time.Time
	EndDate     time.Time
	Amount      decimal.Decimal
	Description *string
}

// BudgetPatch carries the optional fields of an update. A nil field keeps
// the stored value.
type BudgetPatch struct {
	StartDate   *time.Time
	EndDate     *time.Time
	Amount      *decimal.Decimal
	Description *string
}

func validateBudgetDates(start, end time.Time) error {
	if end.Before(start) {
		return common.NewValidationError("end_date", "End date must not be before start date.")
	}
	return nil
}

func (s *BudgetService) List(ctx context.Context, userID string) ([]*models.Budget, error) {
	repo := s.repomanager.Budgets(s.db)
	return repo.List(ctx, userID)
}

func (s *BudgetService) Get(ctx context.Context, id, userID string) (*models.Budget, error) {
	repo := s.repomanager.Budgets(s.db)
	return repo.Get(ctx, id, userID)
}

func (s *BudgetService) Create(ctx context.Context, userID string, in *BudgetCreate) (*models.Budget, error) {
	if err := validateBudgetDates(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	budget := &models.Budget{
		UserID:      userID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Amount:      in.Amount,
		Description: in.Description,
	}

	repo := s.repomanager.Budgets(s.db)
	return repo.Create(ctx, budget)
}

func (s *BudgetService) Update(ctx context.Context, id, userID string, patch *BudgetPatch) (*models.Budget, error) {
	repo := s.repomanager.Budgets(s.db)

	budget, err := repo.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if patch.StartDate != nil {
		budget.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		budget.EndDate = *patch.EndDate
	}
	if patch.Amount != nil {
		budget.Amount = *patch.Amount
	}
	if patch.Description != nil {
		budget.Description = patch.Description
	}

	if err := validateBudgetDates(budget.StartDate, budget.EndDate); err != nil {
		return nil, err
	}

	return repo.Update(ctx, budget)
}

func (s *BudgetService) Delete(ctx context.Context, id, userID string) error {
	repo := s.repomanager.Budgets(s.db)
	return repo.Delete(ctx, id, userID)
}
