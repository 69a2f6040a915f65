package accounts

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
// without a database. Same owner-scoping rules as the Postgres version.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*models.Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*models.Account)}
}

func (r *MemoryRepository) List(ctx context.Context, userID string) ([]*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*models.Account{}
	for _, a := range r.items {
		if a.UserID == userID {
			copy := *a
			result = append(result, &copy)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id, userID string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[id]
	if !ok || a.UserID != userID {
		return nil, common.ErrorNotFound
	}
	copy := *a
	return &copy, nil
}

func (r *MemoryRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account.ID = uuid.New().String()
	account.CreatedAt = time.Now()
	account.LastModified = account.CreatedAt

	stored := *account
	r.items[account.ID] = &stored
	return account, nil
}

func (r *MemoryRepository) Update(ctx context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[account.ID]
	if !ok || existing.UserID != account.UserID {
		return nil, common.ErrorNotFound
	}

	account.LastModified = time.Now()
	stored := *account
	r.items[account.ID] = &stored
	return account, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.items[id]
	if !ok || a.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.items, id)
	return nil
}
