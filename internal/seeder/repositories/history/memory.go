package history

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu      sync.Mutex
	entries []models.HistoryEntry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, entry *models.HistoryEntry) (*models.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = uuid.NewString()
	r.entries = append(r.entries, *entry)

	return entry, nil
}

func (r *MemoryRepository) ListByObject(ctx context.Context, objectID string) ([]models.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.HistoryEntry
	for _, e := range r.entries {
		if e.ObjectID == objectID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })

	return out, nil
}

// List returns all entries in insertion order.
func (r *MemoryRepository) List() []models.HistoryEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.HistoryEntry(nil), r.entries...)
}
