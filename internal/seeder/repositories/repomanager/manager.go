package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/homeseed/internal/dbx"
	"github.com/dmitrijs2005/homeseed/internal/seeder/repositories/history"
	"github.com/dmitrijs2005/homeseed/internal/seeder/repositories/objects"
	"github.com/dmitrijs2005/homeseed/internal/seeder/repositories/residences"
	"github.com/dmitrijs2005/homeseed/internal/seeder/repositories/scans"
	"github.com/dmitrijs2005/homeseed/internal/seeder/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Reset(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Residences(db dbx.DBTX) residences.Repository
	Scans(db dbx.DBTX) scans.Repository
	Objects(db dbx.DBTX) objects.Repository
	History(db dbx.DBTX) history.Repository
}

// Repositories is the set of collections the generator writes to.
type Repositories struct {
	Users      users.Repository
	Residences residences.Repository
	Scans      scans.Repository
	Objects    objects.Repository
	History    history.Repository
}

// Bind returns every repository of m bound to db.
func Bind(m RepositoryManager, db dbx.DBTX) Repositories {
	return Repositories{
		Users:      m.Users(db),
		Residences: m.Residences(db),
		Scans:      m.Scans(db),
		Objects:    m.Objects(db),
		History:    m.History(db),
	}
}
