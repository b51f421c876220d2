package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"edilians-parkinfo/internal/adapters/http/middleware"
	"edilians-parkinfo/internal/adapters/http/routes"
	"edilians-parkinfo/internal/adapters/persistence/models"
	"edilians-parkinfo/internal/config"

	"github.com/gofiber/fiber/v2"

	_ "edilians-parkinfo/docs" // Swagger docs
)

// @title ParkInfo API
// @version 1.0
// @description IT-asset and personnel directory console API

// @host localhost:3000
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Open the durable store; without it neither collection can be
	// displayed or mutated, so this is fatal
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed sample data (only when a collection is empty, exactly once)
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Fatalf("❌ Failed to seed database: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ParkInfo API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (loads the collection mirrors)
	reportService, err := routes.Setup(app, db, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to setup routes: %v", err)
	}

	// Daily inventory summary
	reportService.Start()
	defer reportService.Stop()

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
