package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/raptortest/qa-automation/internal/models"
	"github.com/raptortest/qa-automation/internal/repository"
)

// ErrInvalidCredentials is returned for an unknown user or a wrong password
var ErrInvalidCredentials = errors.New("Invalid username or password")

// ErrNoSession is returned for a missing or expired session token
var ErrNoSession = errors.New("no active session")

// UserRepository defines the interface for user persistence
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
}

// AuthService handles registration, login and browser sessions
type AuthService interface {
	Register(reg models.Registration) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	StartSession(userID string) (string, error)
	SessionUser(token string) (*models.User, error)
	EndSession(token string)
}

// AuthServiceImpl implements AuthService with sessions kept in memory
type AuthServiceImpl struct {
	userRepo UserRepository

	mu       sync.RWMutex
	sessions map[string]string // token -> user id
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo: userRepo,
		sessions: make(map[string]string),
	}
}

// Register validates and stores a new account
func (s *AuthServiceImpl) Register(reg models.Registration) (*models.User, error) {
	user, err := models.NewUser(reg)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return user, nil
}

// Authenticate checks a username and password pair
func (s *AuthServiceImpl) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// StartSession issues a new session token for userID
func (s *AuthServiceImpl) StartSession(userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("user ID is required")
	}
	token := uuid.New().String()

	s.mu.Lock()
	s.sessions[token] = userID
	s.mu.Unlock()

	return token, nil
}

// SessionUser resolves a session token to its user
func (s *AuthServiceImpl) SessionUser(token string) (*models.User, error) {
	s.mu.RLock()
	userID, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNoSession
	}

	user, err := s.userRepo.GetUserByID(userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		s.EndSession(token)
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	return user, nil
}

// EndSession forgets token. Unknown tokens are ignored.
func (s *AuthServiceImpl) EndSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// SeedUser registers reg unless its username already exists
func SeedUser(auth AuthService, reg models.Registration) error {
	_, err := auth.Register(reg)
	if err == nil || errors.Is(err, repository.ErrUsernameTaken) {
		return nil
	}
	return fmt.Errorf("failed to seed user %s: %w", reg.Username, err)
}
