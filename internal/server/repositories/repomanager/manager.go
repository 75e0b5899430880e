// Package repomanager picks the storage backend for the reference server and
// hands out repositories bound to it.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/animalspotter/internal/server/models"
	"github.com/dmitrijs2005/animalspotter/internal/server/repositories/sightings"
	"github.com/dmitrijs2005/animalspotter/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Seed(ctx context.Context, items []models.Sighting) error
	Users() users.Repository
	Sightings() sightings.Repository
	Close() error
}

// New returns a PostgreSQL-backed manager for a non-empty dsn and an
// in-memory one otherwise.
func New(ctx context.Context, dsn string) (RepositoryManager, error) {
	if dsn == "" {
		return NewMemoryRepositoryManager(), nil
	}
	return OpenPostgres(ctx, dsn)
}
