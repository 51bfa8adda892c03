package auth

import (
	"context"
	"errors"

	"github.com/georgemunganga/stockroom-api/internal/apperr"
	"github.com/georgemunganga/stockroom-api/internal/credential"
	"github.com/georgemunganga/stockroom-api/internal/modules/user"
)

type service struct {
	userRepo user.Repository
	hasher   *credential.Hasher
}

// NewService creates a new auth service.
func NewService(userRepo user.Repository, hasher *credential.Hasher) Service {
	return &service{userRepo: userRepo, hasher: hasher}
}

func (s *service) Login(ctx context.Context, username, password string) error {
	u, err := s.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, user.ErrNotFound) {
		// Spend the same bcrypt time as a real check.
		if _, err := s.hasher.Verify(password, s.hasher.Dummy()); err != nil {
			return err
		}
		return apperr.Auth(CodeUnknownUser)
	}
	if err != nil {
		return apperr.Internal(CodeStoreFailure, err)
	}

	ok, err := s.hasher.Verify(password, u.PasswordHash)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Auth(CodePasswordMismatch)
	}
	return nil
}
