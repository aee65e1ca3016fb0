package objects

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

func (r *PostgresRepository) Create(ctx context.Context, obj *models.Object) (*models.Object, error) {
	coords, err := dbx.JSON(&obj.Coordinates)
	if err != nil {
		return nil, fmt.Errorf("encode coordinates: %w", err)
	}

	query :=
		`INSERT INTO objects (residence_id, name, type, color, coordinates, scan_id,
		                      first_seen, last_seen, status, confidence, vision_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id
		 `

	err = r.db.QueryRowContext(ctx, query,
		obj.ResidenceID, obj.Name, obj.Type, obj.Color, coords, obj.ScanID,
		obj.FirstSeen, obj.LastSeen, string(obj.Status), obj.Confidence, obj.VisionHash).Scan(&obj.ID)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, fmt.Errorf("vision hash %s: %w", obj.VisionHash, common.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return obj, nil
}

func (r *PostgresRepository) FindByVisionHash(ctx context.Context, residenceID, visionHash string) (*models.Object, error) {
	query :=
		`SELECT id, residence_id, name, type, color, coordinates, scan_id,
		        first_seen, last_seen, status, confidence, vision_hash
		 FROM objects
		 WHERE residence_id = $1 AND vision_hash = $2
		 `

	obj := &models.Object{}
	var (
		coords []byte
		scanID sql.NullString
		status string
	)
	err := r.db.QueryRowContext(ctx, query, residenceID, visionHash).Scan(
		&obj.ID, &obj.ResidenceID, &obj.Name, &obj.Type, &obj.Color, &coords, &scanID,
		&obj.FirstSeen, &obj.LastSeen, &status, &obj.Confidence, &obj.VisionHash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	c, err := dbx.ScanJSON[models.Coordinates](coords)
	if err != nil {
		return nil, fmt.Errorf("decode coordinates: %w", err)
	}
	if c != nil {
		obj.Coordinates = *c
	}
	if scanID.Valid {
		obj.ScanID = &scanID.String
	}
	obj.Status = models.ObjectStatus(status)

	return obj, nil
}

// Update writes the mutable fields of obj. Type, residence and vision hash
// never change after insert.
func (r *PostgresRepository) Update(ctx context.Context, obj *models.Object) error {
	coords, err := dbx.JSON(&obj.Coordinates)
	if err != nil {
		return fmt.Errorf("encode coordinates: %w", err)
	}

	query :=
		`UPDATE objects
		 SET name = $2, color = $3, coordinates = $4, scan_id = $5,
		     last_seen = $6, status = $7, confidence = $8
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		obj.ID, obj.Name, obj.Color, coords, obj.ScanID, obj.LastSeen, string(obj.Status), obj.Confidence)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
