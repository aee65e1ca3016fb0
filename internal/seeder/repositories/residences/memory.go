package residences

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/homeseed/internal/common"
	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu    sync.Mutex
	byID  map[string]models.Residence
	order []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]models.Residence)}
}

func (r *MemoryRepository) Create(ctx context.Context, residence *models.Residence) (*models.Residence, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	residence.ID = uuid.NewString()
	r.byID[residence.ID] = *residence
	r.order = append(r.order, residence.ID)

	return residence, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Residence, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &res, nil
}

// List returns all residences in insertion order.
func (r *MemoryRepository) List() []models.Residence {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Residence, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}
