package repomanager

import (
	"github.com/dmitrijs2005/homeseed/internal/seeder/repositories/history"
	"github.com/dmitrijs2005/homeseed/internal/seeder/repositories/objects"
	"github.com/dmitrijs2005/homeseed/internal/seeder/repositories/residences"
	"github.com/dmitrijs2005/homeseed/internal/seeder/repositories/scans"
	"github.com/dmitrijs2005/homeseed/internal/seeder/repositories/users"
)

// InMemoryStore holds concrete in-memory repositories so callers can inspect
// what was written.
type InMemoryStore struct {
	Users      *users.MemoryRepository
	Residences *residences.MemoryRepository
	Scans      *scans.MemoryRepository
	Objects    *objects.MemoryRepository
	History    *history.MemoryRepository
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		Users:      users.NewMemoryRepository(),
		Residences: residences.NewMemoryRepository(),
		Scans:      scans.NewMemoryRepository(),
		Objects:    objects.NewMemoryRepository(),
		History:    history.NewMemoryRepository(),
	}
}

func (s *InMemoryStore) Repositories() Repositories {
	return Repositories{
		Users:      s.Users,
		Residences: s.Residences,
		Scans:      s.Scans,
		Objects:    s.Objects,
		History:    s.History,
	}
}
