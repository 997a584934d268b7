package repository

import (
	"sync"

	"github.com/raptortest/qa-automation/internal/models"
)

// MemoryUserRepository keeps users in process memory. It is the default
// store of the fixture application and safe for concurrent use.
type MemoryUserRepository struct {
	mu         sync.RWMutex
	byID       map[string]*models.User
	byUsername map[string]*models.User
}

// NewMemoryUserRepository creates an empty in-memory user store
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:       make(map[string]*models.User),
		byUsername: make(map[string]*models.User),
	}
}

// CreateUser stores a copy of user
func (r *MemoryUserRepository) CreateUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[user.Username]; ok {
		return ErrUsernameTaken
	}
	stored := *user
	r.byID[user.ID] = &stored
	r.byUsername[user.Username] = &stored
	return nil
}

// GetUserByUsername retrieves a user by username
func (r *MemoryUserRepository) GetUserByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byUsername[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

// GetUserByID retrieves a user by id
func (r *MemoryUserRepository) GetUserByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}
