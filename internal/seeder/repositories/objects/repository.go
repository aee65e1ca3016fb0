package objects

import (
	"context"

	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
)

// Repository persists detected objects. Create returns common.ErrAlreadyExists
// when (vision_hash, residence_id) is already taken.
type Repository interface {
	Create(ctx context.Context, obj *models.Object) (*models.Object, error)
	FindByVisionHash(ctx context.Context, residenceID, visionHash string) (*models.Object, error)
	Update(ctx context.Context, obj *models.Object) error
}
