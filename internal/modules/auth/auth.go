package auth

import "context"

// Authentication codes. Both map to 401; they are distinguished only in
// logs and in the response message.
const (
	CodeUnknownUser      = "unknown_user"
	CodePasswordMismatch = "password_mismatch"
	CodeStoreFailure     = "store_failure"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login returns nil when password matches the stored hash for username.
	// No session or token is issued.
	Login(ctx context.Context, username, password string) error
}
