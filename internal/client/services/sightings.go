package services

import (
	"context"

	"github.com/dmitrijs2005/animalspotter/internal/client/client"
	"github.com/dmitrijs2005/animalspotter/internal/client/models"
)

// SightingService loads the sighting list and single sightings.
type SightingService interface {
	List(ctx context.Context) ([]string, error)

	// Show loads the detail for name and then starts fetching its photo in
	// the background. The photo channel delivers exactly one result. When
	// the detail cannot be loaded the channel is nil.
	Show(ctx context.Context, name string) (*models.SightingDetail, <-chan client.Result[*models.Image], error)
}

type sightingService struct {
	client client.Client
}

func NewSightingService(c client.Client) SightingService {
	return &sightingService{client: c}
}

func (s *sightingService) List(ctx context.Context) ([]string, error) {
	return s.client.ListSightingNames(ctx)
}

func (s *sightingService) Show(ctx context.Context, name string) (*models.SightingDetail, <-chan client.Result[*models.Image], error) {
	detail, err := s.client.FetchSightingDetail(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	photo := client.Go(ctx, func(ctx context.Context) (*models.Image, error) {
		return s.client.FetchImage(ctx, detail.ImageURL)
	})

	return detail, photo, nil
}
