// Package services contains server-side business logic: account
// registration and login, and read access to sightings.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/animalspotter/internal/common"
	"github.com/dmitrijs2005/animalspotter/internal/cryptox"
	"github.com/dmitrijs2005/animalspotter/internal/server/auth"
	"github.com/dmitrijs2005/animalspotter/internal/server/models"
	"github.com/dmitrijs2005/animalspotter/internal/server/repositories/users"
)

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint a session token
type UserService struct {
	repo                  users.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService.
func NewUserService(repo users.Repository, secretKey string, tokenValidity time.Duration) *UserService {
	return &UserService{
		repo:                  repo,
		jwtSecret:             []byte(secretKey),
		tokenValidityDuration: tokenValidity,
	}
}

// Register stores a new user. Blank input yields common.ErrorValidation and
// a taken username common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrorValidation)
	}

	salt, verifier := cryptox.NewVerifier([]byte(password))
	u, err := s.repo.Create(ctx, &models.User{UserName: username, Salt: salt, Verifier: verifier})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login checks the password and returns a fresh session token. Unknown users
// and wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password are required", common.ErrorValidation)
	}

	user, err := s.repo.GetByUserName(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// equal work to a wrong password
			cryptox.CheckPassword([]byte(password), s.getRandomSalt(), nil)
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !cryptox.CheckPassword([]byte(password), user.Salt, user.Verifier) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Authenticate resolves a session token to a user id.
func (s *UserService) Authenticate(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

func (s *UserService) getRandomSalt() []byte { return common.GenerateRandByteArray(cryptox.SaltSize) }
