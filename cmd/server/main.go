package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/maya-portal/internal/config"
	"github.com/example/maya-portal/internal/database"
	"github.com/example/maya-portal/internal/ledger"
	"github.com/example/maya-portal/internal/routes"
	"github.com/example/maya-portal/internal/store"
)

func main() {
	cfg := config.Load()

	var st store.Store
	if cfg.DatabaseURL != "" {
		db := database.Connect(cfg.DatabaseURL)
		st = store.NewPostgres(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory store with demo catalog")
		st = store.NewMemory()
	}

	app := fiber.New(fiber.Config{
		AppName: "Maya Portal Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	routes.Register(app, st, ledger.New(), cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
