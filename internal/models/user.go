package models

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password registration accepts
const MinPasswordLength = 8

// User is a registered account of the application under test
type User struct {
	ID           string
	Username     string
	Email        string
	Name         string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Domain errors. Their text is shown to the user as is.
var (
	ErrUsernameRequired = errors.New("Username is required")
	ErrInvalidEmail     = errors.New("Please enter a valid email address")
	ErrPasswordTooShort = errors.New("Password must be at least 8 characters")
	ErrPasswordMismatch = errors.New("Passwords do not match")
)

// Registration is the data submitted by the signup form
type Registration struct {
	Username        string
	Email           string
	Name            string
	Password        string
	ConfirmPassword string
}

// Normalize trims surrounding whitespace from everything but the passwords
func (r Registration) Normalize() Registration {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)
	return r
}

// Validate checks the registration the way the signup form does
func (r Registration) Validate() error {
	if r.Username == "" {
		return ErrUsernameRequired
	}
	if _, err := mail.ParseAddress(r.Email); err != nil || !strings.Contains(r.Email, "@") {
		return ErrInvalidEmail
	}
	if len(r.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if r.Password != r.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// NewUser validates r and creates a user with a hashed password
func NewUser(r Registration) (*User, error) {
	r = r.Normalize()
	if err := r.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:           uuid.New().String(),
		Username:     r.Username,
		Email:        r.Email,
		Name:         r.Name,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}, nil
}

// CheckPassword reports whether password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) == nil
}

// DisplayName is the name used in greetings
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
