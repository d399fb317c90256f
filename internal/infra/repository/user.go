package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"resort-booking/internal/domain/user"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	const query = `
		INSERT INTO users (id, email, password_hash, name, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())`

	_, err := tx.Exec(ctx, query,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Name(), u.Role().String(), u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err, classifyPgErr(err))
	}
	return nil
}

func (r *UserRepository) DomainByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	const query = `
		SELECT id, email, password_hash, name, role, last_login, is_active, created_at, updated_at
		FROM users
		WHERE id = $1`

	var (
		rowID        uuid.UUID
		email        string
		passwordHash string
		name         string
		role         string
		lastLogin    *time.Time
		isActive     bool
		createdAt    time.Time
		updatedAt    time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rowID, &email, &passwordHash, &name, &role, &lastLogin, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err)
	}
	roleVO, err := user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("stored role is invalid", err)
	}

	return user.ReconstructUser(rowID, emailVO, passwordHash, name, roleVO, lastLogin, isActive, createdAt, updatedAt), nil
}

func (r *UserRepository) SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) error {
	const query = `UPDATE users SET is_active = $2, updated_at = now() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, active)
	if err != nil {
		return infra.WrapRepoErr("failed to update user active flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

	if _, err := tx.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

// classifyPgErr maps Postgres error codes onto repository error kinds.
func classifyPgErr(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return infra.KindDBFailure
	}
	switch pgErr.Code {
	case "23505": // unique_violation
		return infra.KindDuplicateKey
	case "23503": // foreign_key_violation
		return infra.KindForeignKeyViolated
	case "23P01": // exclusion_violation
		return infra.KindConflict
	default:
		return infra.KindDBFailure
	}
}
