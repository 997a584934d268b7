package repository

import "errors"

// Repository errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("Username already exists")
)
