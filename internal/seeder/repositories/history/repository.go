package history

import (
	"context"

	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
)

// Repository is the append-only history log.
type Repository interface {
	Create(ctx context.Context, entry *models.HistoryEntry) (*models.HistoryEntry, error)
	ListByObject(ctx context.Context, objectID string) ([]models.HistoryEntry, error)
}
