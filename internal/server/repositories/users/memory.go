package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/animalspotter/internal/common"
	"github.com/dmitrijs2005/animalspotter/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in a map keyed by username. It is safe for
// concurrent use and forgets everything on restart.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]models.User)}
}

func (r *MemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	user.ID = uuid.NewString()
	r.users[user.UserName] = *user

	return user, nil
}

func (r *MemoryRepository) GetByUserName(_ context.Context, userName string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}
