package controllers

import (
	"github.com/gofiber/fiber/v2"

	"salonbook/booking"
	"salonbook/models"
	"salonbook/store"
)

type AppointmentController struct {
	Store  *store.Store
	Engine *booking.Engine
}

func NewAppointmentController(st *store.Store, engine *booking.Engine) *AppointmentController {
	return &AppointmentController{Store: st, Engine: engine}
}

// GetAllAppointments godoc
// @Summary List appointments
// @Description List appointments, filterable by user_id, professional_id, date or status
// @Tags appointments
// @Accept json
// @Produce json
// @Success 200 {array} models.Appointment
// @Router /appointments [get]
func (ac *AppointmentController) GetAllAppointments(c *fiber.Ctx) error {
	if userID := c.QueryInt("user_id"); userID > 0 {
		return c.JSON(ac.Store.AppointmentsByUser(uint(userID)))
	}
	if professionalID := c.QueryInt("professional_id"); professionalID > 0 {
		return c.JSON(ac.Store.AppointmentsByProfessional(uint(professionalID)))
	}
	if date := c.Query("date"); date != "" {
		return c.JSON(ac.Store.AppointmentsByDate(date))
	}
	if status := c.Query("status"); status != "" {
		if !models.AppointmentStatus(status).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown status " + status,
			})
		}
		return c.JSON(ac.Store.AppointmentsByStatus(models.AppointmentStatus(status)))
	}
	return c.JSON(ac.Store.AppointmentsWhere(func(models.Appointment) bool { return true }))
}

// GetAppointment godoc
// @Summary Get an appointment by ID
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/{id} [get]
func (ac *AppointmentController) GetAppointment(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	appointment, found := ac.Store.GetAppointment(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}
	return c.JSON(appointment)
}

// GetAvailableSlots godoc
// @Summary List open start times for a professional, service and date
// @Tags appointments
// @Produce json
// @Param id path int true "Professional ID"
// @Param service_id query int true "Service ID"
// @Param date query string true "Date YYYY-MM-DD"
// @Success 200 {object} fiber.Map
// @Router /professionals/{id}/available-slots [get]
func (ac *AppointmentController) GetAvailableSlots(c *fiber.Ctx) error {
	professionalID, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	serviceID := c.QueryInt("service_id")
	date := c.Query("date")
	if serviceID <= 0 || date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "service_id and date are required",
		})
	}

	slots, err := ac.Engine.AvailableSlots(professionalID, uint(serviceID), date)
	if err != nil {
		return fail(c, "Failed to compute available slots", err)
	}
	return c.JSON(fiber.Map{
		"professional_id": professionalID,
		"service_id":      serviceID,
		"date":            date,
		"slots":           slots,
	})
}

// CreateAppointment godoc
// @Summary Book an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body booking.BookingRequest true "Booking"
// @Success 201 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /appointments [post]
func (ac *AppointmentController) CreateAppointment(c *fiber.Ctx) error {
	req := new(booking.BookingRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if req.UserID == 0 {
		if userID, ok := c.Locals("userID").(uint); ok {
			req.UserID = userID
		}
	}

	appointment, err := ac.Engine.Book(*req)
	if err != nil {
		return fail(c, "Failed to book appointment", err)
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// UpdateAppointmentStatus godoc
// @Summary Move an appointment along its state machine
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /appointments/{id}/status [patch]
func (ac *AppointmentController) UpdateAppointmentStatus(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	type statusInput struct {
		Status models.AppointmentStatus `json:"status"`
	}
	input := new(statusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	appointment, err := ac.Engine.UpdateStatus(id, input.Status)
	if err != nil {
		return fail(c, "Failed to update appointment status", err)
	}
	return c.JSON(appointment)
}

// UpdateAppointment patches the free-text fields only; times and
// participants change by cancelling and rebooking.
func (ac *AppointmentController) UpdateAppointment(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	patch := new(models.AppointmentPatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	appointment, err := ac.Store.UpdateAppointmentNotes(id, *patch)
	if err != nil {
		return fail(c, "Failed to update appointment", err)
	}
	return c.JSON(appointment)
}

// CancelAppointment marks the appointment cancelled, freeing its slot.
func (ac *AppointmentController) CancelAppointment(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	appointment, err := ac.Engine.Cancel(id)
	if err != nil {
		return fail(c, "Failed to cancel appointment", err)
	}
	return c.JSON(appointment)
}

// DeleteAppointment godoc
// @Summary Delete an appointment by ID
// @Tags appointments
// @Param id path int true "Appointment ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/{id} [delete]
func (ac *AppointmentController) DeleteAppointment(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := ac.Engine.Delete(id); err != nil {
		return fail(c, "Failed to delete appointment", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
