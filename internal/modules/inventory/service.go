package inventory

import (
	"context"
	"errors"

	"github.com/georgemunganga/stockroom-api/internal/apperr"
)

// Error codes reported by the inventory service.
const (
	CodeNotFound     = "product_not_found"
	CodeStoreFailure = "store_failure"
)

// Service defines inventory lookups.
type Service interface {
	ListItems(ctx context.Context) ([]*Item, error)
	GetItem(ctx context.Context, id int64) (*ItemDetail, error)
	ListItemsByIDs(ctx context.Context, ids []int64) ([]*ItemDetail, error)
}

type service struct{ repo Repository }

// NewService creates a new inventory service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListItems(ctx context.Context) ([]*Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(CodeStoreFailure, err)
	}
	return items, nil
}

func (s *service) GetItem(ctx context.Context, id int64) (*ItemDetail, error) {
	it, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound(CodeNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(CodeStoreFailure, err)
	}
	return it, nil
}

func (s *service) ListItemsByIDs(ctx context.Context, ids []int64) ([]*ItemDetail, error) {
	if len(ids) == 0 {
		return []*ItemDetail{}, nil
	}
	items, err := s.repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, apperr.Internal(CodeStoreFailure, err)
	}
	return items, nil
}
