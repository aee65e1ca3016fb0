package objects

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/homeseed/internal/common"
	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
	"github.com/google/uuid"
)

type hashKey struct {
	residenceID string
	visionHash  string
}

// MemoryRepository mirrors the objects table, including
// UNIQUE(vision_hash, residence_id). Stored values are copies.
type MemoryRepository struct {
	mu     sync.Mutex
	byID   map[string]*models.Object
	byHash map[hashKey]string
	order  []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:   make(map[string]*models.Object),
		byHash: make(map[hashKey]string),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, obj *models.Object) (*models.Object, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := hashKey{residenceID: obj.ResidenceID, visionHash: obj.VisionHash}
	if _, ok := r.byHash[key]; ok {
		return nil, fmt.Errorf("vision hash %s: %w", obj.VisionHash, common.ErrAlreadyExists)
	}

	obj.ID = uuid.NewString()
	r.byID[obj.ID] = obj.Clone()
	r.byHash[key] = obj.ID
	r.order = append(r.order, obj.ID)

	return obj, nil
}

func (r *MemoryRepository) FindByVisionHash(ctx context.Context, residenceID, visionHash string) (*models.Object, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byHash[hashKey{residenceID: residenceID, visionHash: visionHash}]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r.byID[id].Clone(), nil
}

func (r *MemoryRepository) Update(ctx context.Context, obj *models.Object) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[obj.ID]
	if !ok {
		return common.ErrorNotFound
	}

	next := obj.Clone()
	next.ResidenceID = stored.ResidenceID
	next.Type = stored.Type
	next.VisionHash = stored.VisionHash
	next.FirstSeen = stored.FirstSeen
	r.byID[obj.ID] = next

	return nil
}

// List returns copies of all objects in insertion order.
func (r *MemoryRepository) List() []models.Object {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Object, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id].Clone())
	}
	return out
}
