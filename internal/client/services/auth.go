// Package services contains the application services the CLI drives. They
// validate user input and delegate to the sighting API client.
package services

import (
	"context"

	"github.com/dmitrijs2005/animalspotter/internal/client/client"
	"github.com/dmitrijs2005/animalspotter/internal/client/models"
	"github.com/dmitrijs2005/animalspotter/internal/logging"
)

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Register: create an account; does not sign in.
//   - Login: sign in and keep the session token inside the client.
//   - IsAuthenticated: whether a session token is held.
//
// Blank usernames or passwords are rejected with models.ErrEmptyCredentials
// before any request is made.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	IsAuthenticated() bool
}

type authService struct {
	client client.Client
	logger logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(c client.Client, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &authService{client: c, logger: logger.With("module", "auth_service")}
}

func credentials(username string, password []byte) (models.Credentials, error) {
	creds := models.Credentials{Username: username, Password: password}
	return creds, creds.Validate()
}

func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	creds, err := credentials(username, password)
	if err != nil {
		return err
	}
	if err := a.client.SignUp(ctx, creds); err != nil {
		a.logger.Warn(ctx, "sign-up failed", "username", username, "error", err)
		return err
	}
	return nil
}

func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	creds, err := credentials(username, password)
	if err != nil {
		return err
	}
	if err := a.client.SignIn(ctx, creds); err != nil {
		a.logger.Warn(ctx, "sign-in failed", "username", username, "error", err)
		return err
	}
	return nil
}

func (a *authService) IsAuthenticated() bool {
	return a.client.IsAuthenticated()
}
