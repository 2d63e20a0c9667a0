package routes

import (
	"github.com/gofiber/fiber/v2"

	"salonbook/config"
	"salonbook/controllers"
	"salonbook/middleware"
	"salonbook/models"
)

func SetupServiceRoutes(app *fiber.App, sc *controllers.ServiceController, cfg *config.Config) {
	service := app.Group("/services")
	service.Get("/", sc.GetAllServices)
	service.Get("/:id", sc.GetService)
	service.Post("/", middleware.Protected(cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin), sc.CreateService)
	service.Patch("/:id", middleware.Protected(cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin), sc.UpdateService)
	service.Delete("/:id", middleware.Protected(cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin), sc.DeleteService)
}
