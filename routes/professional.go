package routes

import (
	"github.com/gofiber/fiber/v2"

	"salonbook/config"
	"salonbook/controllers"
	"salonbook/middleware"
	"salonbook/models"
)

// SetupProfessionalRoutes configures professional and qualification
// routes. Browsing is public; management is admin only.
func SetupProfessionalRoutes(app *fiber.App, pc *controllers.ProfessionalController,
	wc *controllers.ScheduleController, apc *controllers.AppointmentController, cfg *config.Config) {

	professional := app.Group("/professionals")
	professional.Get("/", pc.GetAllProfessionals)
	professional.Get("/:id", pc.GetProfessional)
	professional.Get("/:id/services", pc.GetProfessionalServices)
	professional.Get("/:id/schedules", wc.GetProfessionalSchedules)
	professional.Get("/:id/available-slots", apc.GetAvailableSlots)

	professional.Post("/", middleware.Protected(cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin), pc.CreateProfessional)
	professional.Patch("/:id", middleware.Protected(cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin), pc.UpdateProfessional)
	professional.Delete("/:id", middleware.Protected(cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin), pc.DeleteProfessional)
	professional.Post("/:id/services", middleware.Protected(cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin), pc.LinkService)
	professional.Delete("/:id/services/:serviceId", middleware.Protected(cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin), pc.UnlinkService)
}
