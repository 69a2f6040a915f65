package transactions

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
	items map[string]*models.Transaction
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*models.Transaction)}
}

func (r *MemoryRepository) List(ctx context.Context, userID string) ([]*models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*models.Transaction{}
	for _, t := range r.items {
		if t.UserID == userID {
			copy := *t
			result = append(result, &copy)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id, userID string) (*models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrorNotFound
	}
	copy := *t
	return &copy, nil
}

func (r *MemoryRepository) Create(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	transaction.ID = uuid.New().String()
	transaction.CreatedAt = time.Now()
	transaction.LastModified = transaction.CreatedAt

	stored := *transaction
	r.items[transaction.ID] = &stored
	return transaction, nil
}

func (r *MemoryRepository) Update(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[transaction.ID]
	if !ok || existing.UserID != transaction.UserID {
		return nil, common.ErrorNotFound
	}

	transaction.LastModified = time.Now()
	stored := *transaction
	r.items[transaction.ID] = &stored
	return transaction, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[id]
	if !ok || t.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *MemoryRepository) DeleteByAccount(ctx context.Context, accountID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, t := range r.items {
		if t.UserID == userID && t.AccountID == accountID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *MemoryRepository) NullifyTransferAccount(ctx context.Context, accountID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.items {
		if t.UserID == userID && t.TransferAccountID != nil && *t.TransferAccountID == accountID {
			t.TransferAccountID = nil
			t.LastModified = time.Now()
		}
	}
	return nil
}
