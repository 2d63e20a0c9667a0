package routes

import (
	"github.com/gofiber/fiber/v2"

	"salonbook/config"
	"salonbook/controllers"
	"salonbook/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, ac *controllers.AuthController, cfg *config.Config) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", ac.Register)
	auth.Post("/login", ac.Login)
	auth.Post("/refresh", ac.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(cfg.JWTSecret), ac.Me)
}
