package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{
			Name: "create_site_content_table",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return createSiteContentTable(ctx, pool)
			},
		},
		{
			Name: "create_admin_users_table",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return createAdminUsersTable(ctx, pool)
			},
		},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// createSiteContentTable creates the single-document content table. The site
// keeps one row; version counts successful saves.
func createSiteContentTable(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS site_content (
			id UUID PRIMARY KEY,
			doc JSONB NOT NULL,
			version INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		return err
	}

	slog.Info("Ensured site_content table exists")
	return nil
}

// createAdminUsersTable creates the admin credentials table.
func createAdminUsersTable(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS admin_users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		return err
	}

	slog.Info("Ensured admin_users table exists")
	return nil
}
