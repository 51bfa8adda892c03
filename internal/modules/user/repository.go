package user

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no account has the requested username.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned when the username or email is already taken.
	ErrDuplicate = errors.New("username or email already exists")
)

// Repository defines account storage.
type Repository interface {
	// Create inserts user and fills in ID and CreatedAt.
	Create(ctx context.Context, user *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
}
