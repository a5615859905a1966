package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/lunora-app/lunora/internal/api"
	"github.com/lunora-app/lunora/internal/config"
	"github.com/lunora-app/lunora/internal/db"
)

func main() {
	cfg, err := config.Load(os.Getenv("LUNORA_CONFIG"))
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	location := cfg.Location()
	time.Local = location

	database, err := db.OpenSQLite(cfg.Database.Path)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, cfg.Auth.SecretKey, cfg.Auth.TokenTTL, cfg.Server.CookieSecure, location)

	app := fiber.New(fiber.Config{
		AppName:               "Lunora",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Lunora listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Server.Port, cfg.Database.Path, location.String())
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
