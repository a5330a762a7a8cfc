package routes

import (
	"nobateasy/internal/adapters/http/handlers"
	"nobateasy/internal/adapters/http/middleware"
	"nobateasy/internal/adapters/persistence/repositories"
	"nobateasy/internal/config"
	"nobateasy/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	appointmentRepo := repositories.NewAppointmentRepository(db)

	// Initialize services
	appointmentService := services.NewAppointmentService(appointmentRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAppointmentRoutes(apiV1.Group("/appointments"), appointmentHandler)
}

// setupAppointmentRoutes configures the public appointment routes.
// The search route must be registered before /:code so "search" is not
// swallowed as a tracking code.
func setupAppointmentRoutes(router fiber.Router, handler *handlers.AppointmentHandler) {
	router.Get("/", handler.List)
	router.Get("/search/:field/:query", handler.Search)
	router.Get("/:code", handler.GetByCode)
	router.Post("/", middleware.CreateRateLimiter(), handler.Create)
	router.Put("/:code", handler.Update)
}
