package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"resort-booking/internal/infra"
	"resort-booking/internal/usecase/queries"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, name, role, is_active
		FROM users
		WHERE id = $1`

	var view queries.AuthorizedUserView
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Email, &view.Name, &view.Role, &view.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &view, nil
}

// FindByEmail also returns the stored password hash so the login flow can
// verify credentials in one round trip.
func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, name, role, is_active, password_hash
		FROM users
		WHERE email = $1`

	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := s.pool.QueryRow(ctx, query, email).Scan(
		&view.ID, &view.Email, &view.Name, &view.Role, &view.IsActive, &hash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user", err)
	}
	return &view, hash, nil
}

func (s *UserReadStore) FindAll(ctx context.Context) ([]*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, name, role, is_active
		FROM users
		ORDER BY name`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var views []*queries.AuthorizedUserView
	for rows.Next() {
		var view queries.AuthorizedUserView
		if err := rows.Scan(&view.ID, &view.Email, &view.Name, &view.Role, &view.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate users", err)
	}
	return views, nil
}
