package scans

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/homeseed/internal/common"
	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
	"github.com/google/uuid"
)

type slotKey struct {
	residenceID string
	micros      int64
}

// MemoryRepository mirrors the scans table, including UNIQUE(residence_id,
// timestamp) at microsecond precision.
type MemoryRepository struct {
	mu    sync.Mutex
	byID  map[string]models.Scan
	slots map[slotKey]string
	order []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:  make(map[string]models.Scan),
		slots: make(map[slotKey]string),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, scan *models.Scan) (*models.Scan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey{residenceID: scan.ResidenceID, micros: scan.Timestamp.UnixMicro()}
	if _, ok := r.slots[key]; ok {
		return nil, fmt.Errorf("scan at %s: %w", scan.Timestamp.Format(time.RFC3339), common.ErrAlreadyExists)
	}

	scan.ID = uuid.NewString()
	r.byID[scan.ID] = *scan
	r.slots[key] = scan.ID
	r.order = append(r.order, scan.ID)

	return scan, nil
}

func (r *MemoryRepository) SetObjectsDetectedCount(ctx context.Context, id string, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	s.ObjectsDetectedCount = count
	r.byID[id] = s
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Scan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &s, nil
}

// List returns all scans in insertion order.
func (r *MemoryRepository) List() []models.Scan {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Scan, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}
