package residences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/homeseed/internal/common"
	"github.com/dmitrijs2005/homeseed/internal/dbx"
	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, residence *models.Residence) (*models.Residence, error) {
	meta, err := dbx.JSON(&residence.Metadata)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}

	query :=
		`INSERT INTO residences (user_id, name, address, description, created_at, metadata)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err = r.db.QueryRowContext(ctx, query,
		residence.UserID, residence.Name, residence.Address, residence.Description,
		residence.CreatedAt, meta).Scan(&residence.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return residence, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Residence, error) {
	query :=
		`SELECT id, user_id, name, address, description, created_at, metadata FROM residences
		 WHERE id = $1
		 `

	res := &models.Residence{}
	var meta []byte
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&res.ID, &res.UserID, &res.Name, &res.Address, &res.Description, &res.CreatedAt, &meta)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	m, err := dbx.ScanJSON[models.ResidenceMetadata](meta)
	if err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	if m != nil {
		res.Metadata = *m
	}

	return res, nil
}
