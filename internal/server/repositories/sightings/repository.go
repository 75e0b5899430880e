// Package sightings stores animal sightings for the reference server.
package sightings

import (
	"context"

	"github.com/dmitrijs2005/animalspotter/internal/server/models"
)

// Repository persists sightings. Names are unique.
//
//   - ListNames returns every name in insertion order.
//   - GetByName returns common.ErrorNotFound for an unknown name.
//   - Add inserts s; an existing name is left untouched and not reported.
type Repository interface {
	ListNames(ctx context.Context) ([]string, error)
	GetByName(ctx context.Context, name string) (*models.Sighting, error)
	Add(ctx context.Context, s *models.Sighting) error
}
