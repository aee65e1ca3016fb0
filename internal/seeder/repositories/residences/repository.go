package residences

import (
	"context"

	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
)

type Repository interface {
	Create(ctx context.Context, residence *models.Residence) (*models.Residence, error)
	GetByID(ctx context.Context, id string) (*models.Residence, error)
}
