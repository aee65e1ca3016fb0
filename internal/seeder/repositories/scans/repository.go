package scans

import (
	"context"

	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
)

// Repository persists scans. Create returns common.ErrAlreadyExists when the
// residence already has a scan at the same timestamp.
type Repository interface {
	Create(ctx context.Context, scan *models.Scan) (*models.Scan, error)
	SetObjectsDetectedCount(ctx context.Context, id string, count int) error
	GetByID(ctx context.Context, id string) (*models.Scan, error)
}
