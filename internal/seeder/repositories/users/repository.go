package users

import (
	"context"

	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
)

// Repository persists users. Create returns common.ErrAlreadyExists when the
// email is taken.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
