package controllers

import (
	"github.com/gofiber/fiber/v2"

	"salonbook/models"
	"salonbook/store"
)

type ScheduleController struct {
	Store *store.Store
}

func NewScheduleController(st *store.Store) *ScheduleController {
	return &ScheduleController{Store: st}
}

// GetProfessionalSchedules lists the weekly windows for one professional
func (wc *ScheduleController) GetProfessionalSchedules(c *fiber.Ctx) error {
	professionalID, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if _, found := wc.Store.GetProfessional(professionalID); !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional not found",
		})
	}
	return c.JSON(wc.Store.ListSchedules(professionalID))
}

func (wc *ScheduleController) GetSchedule(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	schedule, found := wc.Store.GetSchedule(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Work schedule not found",
		})
	}
	return c.JSON(schedule)
}

// CreateSchedule adds one weekly window; a second window on the same day
// for the same professional is rejected.
func (wc *ScheduleController) CreateSchedule(c *fiber.Ctx) error {
	schedule := new(models.WorkSchedule)
	if err := c.BodyParser(schedule); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	created, err := wc.Store.CreateSchedule(*schedule)
	if err != nil {
		return fail(c, "Failed to create work schedule", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (wc *ScheduleController) UpdateSchedule(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	patch := new(models.WorkSchedulePatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	updated, err := wc.Store.UpdateSchedule(id, *patch)
	if err != nil {
		return fail(c, "Failed to update work schedule", err)
	}
	return c.JSON(updated)
}

func (wc *ScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := wc.Store.DeleteSchedule(id); err != nil {
		return fail(c, "Failed to delete work schedule", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
