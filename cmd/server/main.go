package main

import (
	"context"
	"log"
	"os"

	httpadapter "portfolio-cms/internal/adapter/http"
	repo "portfolio-cms/internal/adapter/repository"
	"portfolio-cms/internal/auth"
	"portfolio-cms/internal/infrastructure/migration"
	"portfolio-cms/internal/usecase"
	infra "portfolio-cms/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	// infra setup
	pool, err := infra.NewContentPool(ctx)
	if err != nil {
		log.Fatalf("content DB not available: %v", err)
	}
	defer pool.Close()

	if err := migration.RunMigrations(ctx, pool); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	secret := os.Getenv("ADMIN_SECRET")
	if secret == "" {
		log.Fatal("ADMIN_SECRET is required")
	}

	contentRepo := repo.NewContentRepo(pool)
	adminRepo := repo.NewAdminRepo(pool)
	authSvc := auth.NewService([]byte(secret), adminRepo)

	renderer := infra.NewChromedpRenderer()
	resume, err := usecase.NewResumeBuilder(renderer, "templates")
	if err != nil {
		log.Fatalf("resume templates: %v", err)
	}

	app := fiber.New()

	h := httpadapter.NewHandler(contentRepo, authSvc, resume, os.Getenv("APP_ENV") == "production")
	h.Register(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
