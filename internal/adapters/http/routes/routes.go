package routes

import (
	"context"
	"fmt"

	"edilians-parkinfo/internal/adapters/http/handlers"
	"edilians-parkinfo/internal/adapters/http/middleware"
	"edilians-parkinfo/internal/adapters/persistence/repositories"
	"edilians-parkinfo/internal/config"
	"edilians-parkinfo/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup wires stores, services and handlers and registers every
// route. The collection mirrors are loaded here; a load failure
// means the store is unavailable and the app must not start.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) (*services.ReportService, error) {
	// Initialize stores
	assetStore := repositories.NewAssetStore(db)
	userStore := repositories.NewUserStore(db)

	// Initialize services
	assetService := services.NewAssetService(assetStore)
	userService := services.NewUserService(userStore)

	ctx := context.Background()
	if err := assetService.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load asset collection: %w", err)
	}
	if err := userService.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load user collection: %w", err)
	}

	authService, err := services.NewAuthService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to init auth service: %w", err)
	}
	dashboardService := services.NewDashboardService(assetService, userService)
	reportService := services.NewReportService(assetService, userService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	assetHandler := handlers.NewAssetHandler(assetService)
	userHandler := handlers.NewUserHandler(userService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 routes
	api := app.Group("/api/v1")

	// Auth routes (public, stricter rate limit on login)
	auth := api.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)

	// Everything below requires an authenticated session
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	// Asset collection
	assets := protected.Group("/assets")
	assets.Get("/", assetHandler.ListAssets)
	assets.Get("/next-id", assetHandler.NextID)
	assets.Post("/", assetHandler.CreateAsset)
	assets.Put("/:id", assetHandler.UpdateAsset)
	assets.Patch("/:id/deleted", assetHandler.ToggleDeleted)
	assets.Delete("/:id", middleware.AdminOnly(), assetHandler.DeleteAsset)

	// Personnel directory
	users := protected.Group("/users")
	users.Get("/", userHandler.ListUsers)
	users.Get("/next-id", userHandler.NextID)
	users.Get("/password", userHandler.GeneratePassword)
	users.Post("/", userHandler.CreateUser)
	users.Put("/:id", userHandler.UpdateUser)
	users.Patch("/:id/deleted", userHandler.ToggleDeleted)
	users.Delete("/:id", middleware.AdminOnly(), userHandler.DeleteUser)

	// Dashboard
	protected.Get("/dashboard", dashboardHandler.Overview)

	return reportService, nil
}
