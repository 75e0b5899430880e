// Package users stores accounts for the reference server.
package users

import (
	"context"

	"github.com/dmitrijs2005/animalspotter/internal/server/models"
)

// Repository persists users. Create returns common.ErrorAlreadyExists for a
// taken username and GetByUserName returns common.ErrorNotFound for an
// unknown one.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUserName(ctx context.Context, userName string) (*models.User, error)
}
