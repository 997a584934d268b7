//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"

	"github.com/raptortest/qa-automation/internal/models"
	"github.com/raptortest/qa-automation/internal/repository/testutil"
)

func newRegisteredUser(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := models.NewUser(models.Registration{
		Username:        username,
		Email:           username + "@example.com",
		Name:            "Integration " + username,
		Password:        "Password1234",
		ConfirmPassword: "Password1234",
	})
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}
	return user
}

func TestUserRepository_CreateAndGet_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewUserRepository(testDB.DB)
	user := newRegisteredUser(t, "john")

	if err := repo.CreateUser(user); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	byName, err := repo.GetUserByUsername("john")
	if err != nil {
		t.Fatalf("GetUserByUsername() error = %v", err)
	}
	if byName.ID != user.ID {
		t.Errorf("ID = %v, want %v", byName.ID, user.ID)
	}
	if !byName.CheckPassword("Password1234") {
		t.Error("stored password hash does not verify")
	}

	byID, err := repo.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("GetUserByID() error = %v", err)
	}
	if byID.Username != "john" {
		t.Errorf("Username = %v, want john", byID.Username)
	}
}

func TestUserRepository_DuplicateUsername_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewUserRepository(testDB.DB)
	if err := repo.CreateUser(newRegisteredUser(t, "john")); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	err := repo.CreateUser(newRegisteredUser(t, "john"))
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserRepository_NotFound_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewUserRepository(testDB.DB)

	if _, err := repo.GetUserByUsername("ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.GetUserByID("00000000-0000-0000-0000-000000000000"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
