package services

import (
	"errors"
	"testing"

	"github.com/raptortest/qa-automation/internal/models"
	"github.com/raptortest/qa-automation/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository for testing
type MockUserRepository struct {
	CreateUserFunc        func(*models.User) error
	GetUserByUsernameFunc func(string) (*models.User, error)
	GetUserByIDFunc       func(string) (*models.User, error)
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(user)
	}
	return nil
}

func (m *MockUserRepository) GetUserByUsername(username string) (*models.User, error) {
	if m.GetUserByUsernameFunc != nil {
		return m.GetUserByUsernameFunc(username)
	}
	return nil, repository.ErrUserNotFound
}

func (m *MockUserRepository) GetUserByID(id string) (*models.User, error) {
	if m.GetUserByIDFunc != nil {
		return m.GetUserByIDFunc(id)
	}
	return nil, repository.ErrUserNotFound
}

func registration(username string) models.Registration {
	return models.Registration{
		Username:        username,
		Email:           username + "@example.com",
		Name:            "John Doe",
		Password:        "Password1234",
		ConfirmPassword: "Password1234",
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		reg       models.Registration
		mockError error
		wantErr   error
	}{
		{
			name: "successful registration",
			reg:  registration("john"),
		},
		{
			name:    "validation error",
			reg:     models.Registration{Username: "john", Email: "john@example.com", Password: "Password1234", ConfirmPassword: "nope-nope"},
			wantErr: models.ErrPasswordMismatch,
		},
		{
			name:      "username taken",
			reg:       registration("john"),
			mockError: repository.ErrUsernameTaken,
			wantErr:   repository.ErrUsernameTaken,
		},
		{
			name:      "repository error",
			reg:       registration("john"),
			mockError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			mockRepo := &MockUserRepository{
				CreateUserFunc: func(user *models.User) error {
					called = true
					if user.Username != tt.reg.Username {
						t.Errorf("expected username %s, got %s", tt.reg.Username, user.Username)
					}
					return tt.mockError
				},
			}
			service := NewAuthService(mockRepo)

			user, err := service.Register(tt.reg)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
			case tt.mockError != nil:
				if err == nil {
					t.Error("expected error but got none")
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if user == nil || user.ID == "" {
					t.Error("expected a stored user with an ID")
				}
			}
			if errors.Is(tt.wantErr, models.ErrPasswordMismatch) && called {
				t.Error("repository must not be called for invalid registrations")
			}
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	service := NewAuthService(repo)
	if _, err := service.Register(registration("valid_user")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid credentials", username: "valid_user", password: "Password1234"},
		{name: "wrong password", username: "valid_user", password: "wrongPassword", wantErr: ErrInvalidCredentials},
		{name: "unknown user", username: "invalid_user", password: "Password1234", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := service.Authenticate(tt.username, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && user.Username != tt.username {
				t.Errorf("expected user %s, got %s", tt.username, user.Username)
			}
		})
	}
}

func TestAuthService_Authenticate_RepositoryError(t *testing.T) {
	service := NewAuthService(&MockUserRepository{
		GetUserByUsernameFunc: func(string) (*models.User, error) {
			return nil, errors.New("connection refused")
		},
	})

	_, err := service.Authenticate("john", "Password1234")
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected infrastructure error, got %v", err)
	}
}

func TestAuthService_SessionLifecycle(t *testing.T) {
	// GIVEN
	service := NewAuthService(repository.NewMemoryUserRepository())
	user, err := service.Register(registration("john"))
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// WHEN
	token, err := service.StartSession(user.ID)
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}

	// THEN
	got, err := service.SessionUser(token)
	if err != nil {
		t.Fatalf("SessionUser() error = %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("expected user %s, got %s", user.ID, got.ID)
	}

	service.EndSession(token)
	service.EndSession(token)
	if _, err := service.SessionUser(token); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession after logout, got %v", err)
	}
}

func TestAuthService_StartSession_RequiresUser(t *testing.T) {
	service := NewAuthService(&MockUserRepository{})
	if _, err := service.StartSession(""); err == nil {
		t.Error("expected error for empty user ID")
	}
}

func TestAuthService_SessionUser_DeletedUser(t *testing.T) {
	service := NewAuthService(&MockUserRepository{})
	token, err := service.StartSession("gone")
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}

	if _, err := service.SessionUser(token); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestSeedUser(t *testing.T) {
	service := NewAuthService(repository.NewMemoryUserRepository())

	if err := SeedUser(service, registration("valid_user")); err != nil {
		t.Fatalf("first SeedUser() error = %v", err)
	}
	if err := SeedUser(service, registration("valid_user")); err != nil {
		t.Errorf("seeding an existing user should be a no-op, got %v", err)
	}

	bad := registration("short")
	bad.Password, bad.ConfirmPassword = "x", "x"
	if err := SeedUser(service, bad); err == nil {
		t.Error("expected invalid seed user to fail")
	}
}
