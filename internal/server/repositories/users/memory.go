package users

import (
	"context"
	"sync"
	"time"

	"finbook/internal/common"
	"finbook/internal/server/models"

	"github.com/google/uuid"
)

// MemoryRepository is a map-backed Repository used by tests and local runs
// without a database. It mirrors the Postgres behavior, including the
// unique-email rule. Owner cascade on user deletion is schema-level and is
// not reproduced here.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*models.User)}
}

func (r *MemoryRepository) emailTaken(email, exceptID string) bool {
	for _, u := range r.items {
		if u.Email == email && u.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(user.Email, "") {
		return nil, common.ErrorConflict
	}

	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.LastModified = user.CreatedAt

	stored := *user
	r.items[user.ID] = &stored
	return user, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copy := *u
	return &copy, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[user.ID]; !ok {
		return nil, common.ErrorNotFound
	}
	if r.emailTaken(user.Email, user.ID) {
		return nil, common.ErrorConflict
	}

	user.LastModified = time.Now()
	stored := *user
	r.items[user.ID] = &stored
	return user, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.items, id)
	return nil
}
