package users

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/homeseed/internal/common"
	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in a map with the same uniqueness rules as the
// users table. It backs dry runs and generator tests.
type MemoryRepository struct {
	mu      sync.Mutex
	byID    map[string]models.User
	byEmail map[string]string
	order   []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, fmt.Errorf("email %s: %w", user.Email, common.ErrAlreadyExists)
	}

	user.ID = uuid.NewString()
	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	r.order = append(r.order, user.ID)

	return user, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := r.byID[id]
	return &u, nil
}

// List returns all users in insertion order.
func (r *MemoryRepository) List() []models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}
