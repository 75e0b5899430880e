package repomanager

import (
	"context"

	"github.com/dmitrijs2005/animalspotter/internal/server/models"
	"github.com/dmitrijs2005/animalspotter/internal/server/repositories/sightings"
	"github.com/dmitrijs2005/animalspotter/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps everything in process memory. Migrations are
// a no-op.
type MemoryRepositoryManager struct {
	users     *users.MemoryRepository
	sightings *sightings.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:     users.NewMemoryRepository(),
		sightings: sightings.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Seed(ctx context.Context, items []models.Sighting) error {
	for i := range items {
		if err := m.sightings.Add(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryRepositoryManager) Users() users.Repository { return m.users }

func (m *MemoryRepositoryManager) Sightings() sightings.Repository { return m.sightings }

func (m *MemoryRepositoryManager) Close() error { return nil }
