package routes

import (
	"github.com/gofiber/fiber/v2"

	"salonbook/config"
	"salonbook/controllers"
	"salonbook/middleware"
	"salonbook/models"
)

// SetupUserRoutes configures admin user management routes
func SetupUserRoutes(app *fiber.App, uc *controllers.UserController, cfg *config.Config) {
	user := app.Group("/users", middleware.Protected(cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin))
	user.Get("/", uc.GetAllUsers)
	user.Get("/:id", uc.GetUser)
	user.Get("/:id/appointments", uc.GetUserAppointments)
	user.Patch("/:id", uc.UpdateUser)
	user.Delete("/:id", uc.DeleteUser)
}
