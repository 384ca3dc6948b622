package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"

	repo "portfolio-cms/internal/adapter/repository"
	"portfolio-cms/internal/auth"
	"portfolio-cms/internal/domain"
	"portfolio-cms/internal/infrastructure/migration"
	infra "portfolio-cms/pkg/infrastructure"
)

// Seeds the admin account from ADMIN_EMAIL / ADMIN_PASSWORD and, with
// -content, the starter site document. Safe to re-run: both writes upsert.
func main() {
	seedContent := flag.Bool("content", false, "also seed the starter site document")
	flag.Parse()

	ctx := context.Background()

	pool, err := infra.NewContentPool(ctx)
	if err != nil {
		log.Fatalf("content DB not available: %v", err)
	}
	defer pool.Close()

	if err := migration.RunMigrations(ctx, pool); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	admins := repo.NewAdminRepo(pool)
	user := &domain.AdminUser{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := admins.Save(ctx, user); err != nil {
		log.Fatalf("save admin: %v", err)
	}
	log.Printf("admin account ready: %s", email)

	if *seedContent {
		store := repo.NewContentRepo(pool)
		rec, err := store.Get(ctx)
		if err != nil {
			log.Fatalf("seed content: %v", err)
		}
		log.Printf("site document ready: version %d", rec.Version)
	}
}
