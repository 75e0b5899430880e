package sightings

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/animalspotter/internal/common"
	"github.com/dmitrijs2005/animalspotter/internal/server/models"
)

// MemoryRepository keeps sightings in insertion order. It is safe for
// concurrent use.
type MemoryRepository struct {
	mu     sync.RWMutex
	items  []models.Sighting
	byName map[string]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byName: make(map[string]int)}
}

func (r *MemoryRepository) ListNames(context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.items))
	for i, s := range r.items {
		names[i] = s.Name
	}
	return names, nil
}

func (r *MemoryRepository) GetByName(_ context.Context, name string) (*models.Sighting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byName[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	s := r.items[i]
	return &s, nil
}

func (r *MemoryRepository) Add(_ context.Context, s *models.Sighting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[s.Name]; ok {
		return nil
	}

	item := *s
	item.ID = int64(len(r.items) + 1)
	r.byName[item.Name] = len(r.items)
	r.items = append(r.items, item)
	return nil
}
