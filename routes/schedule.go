package routes

import (
	"github.com/gofiber/fiber/v2"

	"salonbook/config"
	"salonbook/controllers"
	"salonbook/middleware"
	"salonbook/models"
)

// SetupScheduleRoutes configures all work schedule related routes
func SetupScheduleRoutes(app *fiber.App, wc *controllers.ScheduleController, cfg *config.Config) {
	schedule := app.Group("/schedules")
	schedule.Get("/:id", wc.GetSchedule)
	schedule.Post("/", middleware.Protected(cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin), wc.CreateSchedule)
	schedule.Patch("/:id", middleware.Protected(cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin), wc.UpdateSchedule)
	schedule.Delete("/:id", middleware.Protected(cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin), wc.DeleteSchedule)
}
