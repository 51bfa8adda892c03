package user

import (
	"context"
	"errors"

	"github.com/georgemunganga/stockroom-api/internal/apperr"
	"github.com/georgemunganga/stockroom-api/internal/credential"
)

const (
	CodeExists       = "user_exists"
	CodeStoreFailure = "store_failure"
)

type service struct {
	repo   Repository
	hasher *credential.Hasher
}

// NewService creates a new user service.
func NewService(repo Repository, hasher *credential.Hasher) Service {
	return &service{repo: repo, hasher: hasher}
}

func (s *service) Register(ctx context.Context, username, email, password string) (*User, error) {
	hashedPassword, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, apperr.Conflict(CodeExists, err)
		}
		return nil, apperr.Internal(CodeStoreFailure, err)
	}

	return user, nil
}
