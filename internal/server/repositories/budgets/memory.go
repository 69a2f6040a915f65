package budgets

import (
	"context"
	"sort"
	"sync"
	"time"

	"finbook/internal/common"
	"finbook/internal/server/models"

	"github.com/google/uuid"
)

// MemoryRepository is a map-backed Repository used by tests and local runs
// without a database.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*models.Budget
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*models.Budget)}
}

func (r *MemoryRepository) List(ctx context.Context, userID string) ([]*models.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*models.Budget{}
	for _, b := range r.items {
		if b.UserID == userID {
			copy := *b
			result = append(result, &copy)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartDate.Before(result[j].StartDate) })
	return result, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id, userID string) (*models.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.items[id]
	if !ok || b.UserID != userID {
		return nil, common.ErrorNotFound
	}
	copy := *b
	return &copy, nil
}

func (r *MemoryRepository) Create(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	budget.ID = uuid.New().String()
	budget.CreatedAt = time.Now()
	budget.LastModified = budget.CreatedAt

	stored := *budget
	r.items[budget.ID] = &stored
	return budget, nil
}

func (r *MemoryRepository) Update(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[budget.ID]
	if !ok || existing.UserID != budget.UserID {
		return nil, common.ErrorNotFound
	}

	budget.LastModified = time.Now()
	stored := *budget
	r.items[budget.ID] = &stored
	return budget, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.items[id]
	if !ok || b.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.items, id)
	return nil
}
