package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/georgemunganga/stockroom-api/internal/database"
)

type postgresRepo struct {
	db      *sql.DB
	timeout time.Duration
}

// NewPostgresRepository creates a PostgreSQL inventory repository. Every
// statement is bounded by timeout.
func NewPostgresRepository(db *sql.DB, timeout time.Duration) Repository {
	return &postgresRepo{db: db, timeout: timeout}
}

func (r *postgresRepo) List(ctx context.Context) ([]*Item, error) {
	ctx, cancel := database.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_name, category, price, sku, dimensions, status
		FROM inventory`)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	items := []*Item{}
	for rows.Next() {
		it := &Item{}
		if err := rows.Scan(&it.ID, &it.ProductName, &it.Category, &it.Price,
			&it.SKU, &it.Dimensions, &it.Status); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return items, nil
}

func scanDetail(scan func(...any) error) (*ItemDetail, error) {
	it := &ItemDetail{}
	var supplier sql.NullString
	if err := scan(&it.ID, &it.ProductName, &it.Category, &it.Price,
		&it.SKU, &supplier, &it.Dimensions, &it.Status); err != nil {
		return nil, err
	}
	if supplier.Valid {
		it.Supplier = &supplier.String
	}
	return it, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*ItemDetail, error) {
	ctx, cancel := database.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		SELECT id, product_name, category, price, sku, supplier, dimensions, status
		FROM inventory WHERE id = $1`, id)
	it, err := scanDetail(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get inventory item %d: %w", id, err)
	}
	return it, nil
}

func (r *postgresRepo) ListByIDs(ctx context.Context, ids []int64) ([]*ItemDetail, error) {
	items := []*ItemDetail{}
	if len(ids) == 0 {
		return items, nil
	}

	ctx, cancel := database.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_name, category, price, sku, supplier, dimensions, status
		FROM inventory WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list inventory by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		it, err := scanDetail(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inventory by ids: %w", err)
	}
	return items, nil
}
