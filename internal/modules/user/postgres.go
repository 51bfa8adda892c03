package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/georgemunganga/stockroom-api/internal/database"
)

type postgresRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(db *sql.DB, timeout time.Duration) Repository {
	return &postgresRepository{db: db, timeout: timeout}
}

func (r *postgresRepository) Create(ctx context.Context, user *User) error {
	ctx, cancel := database.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO usersdb (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	ctx, cancel := database.WithTimeout(ctx, r.timeout)
	defer cancel()

	user := &User{}
	query := `
		SELECT id, username, email, password, created_at
		FROM usersdb
		WHERE username = $1
	`
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
