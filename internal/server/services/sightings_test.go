package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/animalspotter/internal/common"
	"github.com/dmitrijs2005/animalspotter/internal/server/models"
	"github.com/dmitrijs2005/animalspotter/internal/server/photos"
	"github.com/dmitrijs2005/animalspotter/internal/server/repositories/sightings"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	url string
	err error

	LastKey string
}

func (f *fakeResolver) URL(_ context.Context, key string) (string, error) {
	f.LastKey = key
	return f.url, f.err
}

var _ photos.Resolver = (*fakeResolver)(nil)

func seededRepo(t *testing.T) *sightings.MemoryRepository {
	t.Helper()
	repo := sightings.NewMemoryRepository()
	require.NoError(t, repo.Add(context.Background(), &models.Sighting{Name: "fox", PhotoKey: "fox.jpg"}))
	require.NoError(t, repo.Add(context.Background(), &models.Sighting{Name: "owl", PhotoKey: "owl.jpg"}))
	return repo
}

func TestSightingService_ListNames(t *testing.T) {
	svc := NewSightingService(seededRepo(t), &fakeResolver{})

	names, err := svc.ListNames(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"fox", "owl"}, names)
}

func TestSightingService_GetResolvesPhoto(t *testing.T) {
	res := &fakeResolver{url: "http://localhost/photos/owl.jpg"}
	svc := NewSightingService(seededRepo(t), res)

	v, err := svc.Get(context.Background(), "owl")
	require.NoError(t, err)
	require.Equal(t, "owl", v.Name)
	require.Equal(t, "http://localhost/photos/owl.jpg", v.ImageURL)
	require.Equal(t, "owl.jpg", res.LastKey)
}

func TestSightingService_GetErrors(t *testing.T) {
	svc := NewSightingService(seededRepo(t), &fakeResolver{})
	_, err := svc.Get(context.Background(), "dodo")
	require.ErrorIs(t, err, common.ErrorNotFound)

	svc = NewSightingService(seededRepo(t), &fakeResolver{err: errors.New("presign-fail")})
	_, err = svc.Get(context.Background(), "fox")
	require.ErrorContains(t, err, "presign-fail")
}
