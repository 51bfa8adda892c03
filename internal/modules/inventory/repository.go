package inventory

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no item has the requested id.
var ErrNotFound = errors.New("inventory item not found")

// Repository defines read access to inventory items. Items are created and
// removed outside this service.
type Repository interface {
	List(ctx context.Context) ([]*Item, error)
	GetByID(ctx context.Context, id int64) (*ItemDetail, error)
	// ListByIDs returns the items whose id is in ids. Unknown ids are
	// skipped and the result order is unspecified.
	ListByIDs(ctx context.Context, ids []int64) ([]*ItemDetail, error)
}
