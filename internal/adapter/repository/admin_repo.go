package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"portfolio-cms/internal/domain"
	"portfolio-cms/internal/usecase"
)

// AdminRepo reads editor accounts for the auth gate.
type AdminRepo struct {
	pool *pgxpool.Pool
}

func NewAdminRepo(pool *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{pool: pool}
}

func (r *AdminRepo) FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	if r.pool == nil {
		return nil, usecase.ErrStoreUnavailable
	}
	var u domain.AdminUser
	err := r.pool.QueryRow(ctx, `SELECT id, email, password_hash, created_at
		FROM admin_users WHERE email = $1`, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrStoreUnavailable, err)
	}
	return &u, nil
}

// Save upserts an editor account. Used by the seed tool.
func (r *AdminRepo) Save(ctx context.Context, u *domain.AdminUser) error {
	if r.pool == nil {
		return usecase.ErrStoreUnavailable
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO admin_users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash`,
		u.ID, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrStoreUnavailable, err)
	}
	return nil
}
