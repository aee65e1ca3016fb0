package users

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

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	prefs, err := dbx.JSON(&user.Preferences)
	if err != nil {
		return nil, fmt.Errorf("encode preferences: %w", err)
	}

	query :=
		`INSERT INTO users (name, email, password_hash, created_at, preferences)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err = r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.CreatedAt, prefs).Scan(&user.ID)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, fmt.Errorf("email %s: %w", user.Email, common.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, name, email, password_hash, created_at, preferences FROM users
		 WHERE email = $1
		 `

	user := &models.User{}
	var prefs []byte
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &prefs)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	p, err := dbx.ScanJSON[models.Preferences](prefs)
	if err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	if p != nil {
		user.Preferences = *p
	}

	return user, nil
}
