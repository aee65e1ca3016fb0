package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/homeseed/internal/dbx"
	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, entry *models.HistoryEntry) (*models.HistoryEntry, error) {
	oldCoords, err := dbx.JSON(entry.OldCoordinates)
	if err != nil {
		return nil, fmt.Errorf("encode old_coordinates: %w", err)
	}
	newCoords, err := dbx.JSON(entry.NewCoordinates)
	if err != nil {
		return nil, fmt.Errorf("encode new_coordinates: %w", err)
	}

	query :=
		`INSERT INTO history (object_id, action_type, performed_by, "timestamp", notes,
		                      old_coordinates, new_coordinates, old_color, new_color, old_name, new_name)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id
		 `

	err = r.db.QueryRowContext(ctx, query,
		entry.ObjectID, string(entry.ActionType), entry.PerformedBy, entry.Timestamp, entry.Notes,
		oldCoords, newCoords, entry.OldColor, entry.NewColor, entry.OldName, entry.NewName).Scan(&entry.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return entry, nil
}

func (r *PostgresRepository) ListByObject(ctx context.Context, objectID string) ([]models.HistoryEntry, error) {
	query :=
		`SELECT id, object_id, action_type, performed_by, "timestamp", notes,
		        old_coordinates, new_coordinates, old_color, new_color, old_name, new_name
		 FROM history
		 WHERE object_id = $1
		 ORDER BY "timestamp"
		 `

	rows, err := r.db.QueryContext(ctx, query, objectID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.HistoryEntry
	for rows.Next() {
		var (
			e                    models.HistoryEntry
			action               string
			oldCoords, newCoords []byte
			oldColor, newColor   sql.NullString
			oldName, newName     sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.ObjectID, &action, &e.PerformedBy, &e.Timestamp, &e.Notes,
			&oldCoords, &newCoords, &oldColor, &newColor, &oldName, &newName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		e.ActionType = models.ActionType(action)

		if e.OldCoordinates, err = dbx.ScanJSON[models.Coordinates](oldCoords); err != nil {
			return nil, fmt.Errorf("decode old_coordinates: %w", err)
		}
		if e.NewCoordinates, err = dbx.ScanJSON[models.Coordinates](newCoords); err != nil {
			return nil, fmt.Errorf("decode new_coordinates: %w", err)
		}
		e.OldColor = nullable(oldColor)
		e.NewColor = nullable(newColor)
		e.OldName = nullable(oldName)
		e.NewName = nullable(newName)

		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
