package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/animalspotter/internal/server/models"
	"github.com/dmitrijs2005/animalspotter/internal/server/photos"
	"github.com/dmitrijs2005/animalspotter/internal/server/repositories/sightings"
)

// SightingView is a sighting ready to be served: its photo key has been
// resolved to a downloadable URL.
type SightingView struct {
	models.Sighting
	ImageURL string
}

type SightingService struct {
	repo     sightings.Repository
	resolver photos.Resolver
}

func NewSightingService(repo sightings.Repository, resolver photos.Resolver) *SightingService {
	return &SightingService{repo: repo, resolver: resolver}
}

// ListNames returns every sighting name in storage order.
func (s *SightingService) ListNames(ctx context.Context) ([]string, error) {
	return s.repo.ListNames(ctx)
}

// Get returns the sighting called name; common.ErrorNotFound if there is
// none.
func (s *SightingService) Get(ctx context.Context, name string) (*SightingView, error) {
	sighting, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.resolver.URL(ctx, sighting.PhotoKey)
	if err != nil {
		return nil, fmt.Errorf("resolving photo %q: %w", sighting.PhotoKey, err)
	}

	return &SightingView{Sighting: *sighting, ImageURL: imageURL}, nil
}
