package routes

import (
	"github.com/gofiber/fiber/v2"

	"salonbook/config"
	"salonbook/controllers"
	"salonbook/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App, ac *controllers.AppointmentController, cfg *config.Config) {
	appointment := app.Group("/appointments", middleware.Protected(cfg.JWTSecret))
	appointment.Get("/", ac.GetAllAppointments)
	appointment.Get("/:id", ac.GetAppointment)
	appointment.Post("/", ac.CreateAppointment)
	appointment.Patch("/:id", ac.UpdateAppointment)
	appointment.Patch("/:id/status", ac.UpdateAppointmentStatus)
	appointment.Post("/:id/cancel", ac.CancelAppointment)
	appointment.Delete("/:id", ac.DeleteAppointment)
}
