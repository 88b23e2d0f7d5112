package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpadapter "prosjektbank/internal/adapter/http"
	repo "prosjektbank/internal/adapter/repository"
	"prosjektbank/internal/config"
	"prosjektbank/internal/infrastructure/migration"
	"prosjektbank/internal/usecase"
	"prosjektbank/pkg/ai"
	infra "prosjektbank/pkg/infrastructure"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()

	pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Printf("warning: database not available: %v", err)
	} else if err := migration.RunMigrations(ctx, pool); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	renderer := infra.NewChromedpRenderer(cfg.ChromePath)
	gen := usecase.NewGenerator(renderer, cfg.AssetBaseURL)
	hub := usecase.NewHub(gen)

	projects := repo.NewProjectsRepo(pool)
	employees := repo.NewEmployeesRepo(pool)
	parser := ai.NewClient(cfg.ParserServiceURL)

	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024,
	})
	app.Use(recover.New())

	h := httpadapter.NewHandler(projects, employees, parser, gen, hub, cfg.StaticDir)
	h.Register(app)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
