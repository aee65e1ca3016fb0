package scans

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

func (r *PostgresRepository) Create(ctx context.Context, scan *models.Scan) (*models.Scan, error) {
	meta, err := dbx.JSON(&scan.CameraMeta)
	if err != nil {
		return nil, fmt.Errorf("encode camera_meta: %w", err)
	}

	query :=
		`INSERT INTO scans (residence_id, user_id, "timestamp", camera_meta, objects_detected_count)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err = r.db.QueryRowContext(ctx, query,
		scan.ResidenceID, scan.UserID, scan.Timestamp, meta, scan.ObjectsDetectedCount).Scan(&scan.ID)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, fmt.Errorf("scan at %s: %w", scan.Timestamp.Format(time.RFC3339), common.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return scan, nil
}

func (r *PostgresRepository) SetObjectsDetectedCount(ctx context.Context, id string, count int) error {
	query :=
		`UPDATE scans SET objects_detected_count = $2
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id, count)
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

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Scan, error) {
	query :=
		`SELECT id, residence_id, user_id, "timestamp", camera_meta, objects_detected_count FROM scans
		 WHERE id = $1
		 `

	scan := &models.Scan{}
	var meta []byte
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&scan.ID, &scan.ResidenceID, &scan.UserID, &scan.Timestamp, &meta, &scan.ObjectsDetectedCount)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	m, err := dbx.ScanJSON[models.CameraMeta](meta)
	if err != nil {
		return nil, fmt.Errorf("decode camera_meta: %w", err)
	}
	if m != nil {
		scan.CameraMeta = *m
	}

	return scan, nil
}
