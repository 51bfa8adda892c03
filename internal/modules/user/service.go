package user

import "context"

// Service defines the interface for user-related business logic.
type Service interface {
	// Register hashes password and stores a new account. Input must already
	// have passed validation.
	Register(ctx context.Context, username, email, password string) (*User, error)
}
