package client

import (
	"context"

	"github.com/dmitrijs2005/animalspotter/internal/client/models"
)

// Client is the contract of the sighting API. Implementations hold at most
// one session token, obtained by SignIn, and attach it to authenticated
// calls.
type Client interface {
	SignUp(ctx context.Context, creds models.Credentials) error
	SignIn(ctx context.Context, creds models.Credentials) error
	ListSightingNames(ctx context.Context) ([]string, error)
	FetchSightingDetail(ctx context.Context, name string) (*models.SightingDetail, error)
	FetchImage(ctx context.Context, url string) (*models.Image, error)
	IsAuthenticated() bool
}

var _ Client = (*HTTPClient)(nil)
