// Package repomanager wires the collection repositories together: a
// PostgreSQL manager with goose migrations and reset, and an in-memory store
// used for dry runs and tests.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/homeseed/internal/dbx"
	"github.com/dmitrijs2005/homeseed/internal/seeder/migrations"
	"github.com/dmitrijs2005/homeseed/internal/seeder/repositories/history"
	"github.com/dmitrijs2005/homeseed/internal/seeder/repositories/objects"
	"github.com/dmitrijs2005/homeseed/internal/seeder/repositories/residences"
	"github.com/dmitrijs2005/homeseed/internal/seeder/repositories/scans"
	"github.com/dmitrijs2005/homeseed/internal/seeder/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// resetOrder lists tables children first so foreign keys never block a delete.
var resetOrder = []string{"history", "objects", "scans", "residences", "users"}

// PostgresRepositoryManager vends PostgreSQL-backed repositories.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Residences(db dbx.DBTX) residences.Repository {
	return residences.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Scans(db dbx.DBTX) scans.Repository {
	return scans.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Objects(db dbx.DBTX) objects.Repository {
	return objects.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) History(db dbx.DBTX) history.Repository {
	return history.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// Reset empties every seeded table in one transaction.
func (m *PostgresRepositoryManager) Reset(ctx context.Context, db *sql.DB) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, table := range resetOrder {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("reset %s: %w", table, err)
			}
		}
		return nil
	})
}

func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
