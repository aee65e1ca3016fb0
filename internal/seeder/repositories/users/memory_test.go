package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/homeseed/internal/common"
	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	u, err := r.Create(ctx, &models.User{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)

	got, err := r.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Len(t, r.List(), 1)
}

func TestMemoryRepository_DuplicateEmail(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	_, err := r.Create(ctx, &models.User{Email: "ana@example.com"})
	require.NoError(t, err)

	_, err = r.Create(ctx, &models.User{Email: "ana@example.com"})
	require.ErrorIs(t, err, common.ErrAlreadyExists)
	assert.Len(t, r.List(), 1)
}

func TestMemoryRepository_NotFound(t *testing.T) {
	_, err := NewMemoryRepository().GetByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
