package readstore

import (
	"context"
	"errors"

	"havenstay/internal/infra"
	"havenstay/internal/pkg/errs"
	"havenstay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

// FindByEmail returns the user view together with the stored password hash.
// The hash never leaves the auth usecase.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	query := `SELECT id, email, role, is_active, last_login, created_at, password_hash
		FROM users WHERE email = $1`

	var view queries.UserView
	var hash string
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&view.ID, &view.Email, &view.Role, &view.IsActive, &view.LastLogin, &view.CreatedAt, &hash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, hash, nil
}

func (r *UserReadStore) GetCurrentUser(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	query := `SELECT id, email, role, is_active, last_login, created_at
		FROM users WHERE id = $1`

	var view queries.UserView
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.IsActive, &view.LastLogin, &view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(infra.WrapRepoErr("user not found", err, infra.KindNotFound), errs.ErrUserNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}
