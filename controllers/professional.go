package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"salonbook/models"
	"salonbook/store"
)

type ProfessionalController struct {
	Store *store.Store
}

func NewProfessionalController(st *store.Store) *ProfessionalController {
	return &ProfessionalController{Store: st}
}

// GetAllProfessionals returns all professionals
func (pc *ProfessionalController) GetAllProfessionals(c *fiber.Ctx) error {
	return c.JSON(pc.Store.ListProfessionals())
}

func (pc *ProfessionalController) GetProfessional(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	professional, ok := pc.Store.GetProfessional(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional not found",
		})
	}
	return c.JSON(professional)
}

// CreateProfessional creates a new professional
func (pc *ProfessionalController) CreateProfessional(c *fiber.Ctx) error {
	professional := new(models.Professional)
	if err := c.BodyParser(professional); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if professional.Name == "" || professional.Document == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and document are required",
		})
	}

	professional.Active = true
	created, err := pc.Store.CreateProfessional(*professional)
	if err != nil {
		return fail(c, "Failed to create professional", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateProfessional applies a partial update; omitted fields keep their
// prior value.
func (pc *ProfessionalController) UpdateProfessional(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	patch := new(models.ProfessionalPatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	updated, err := pc.Store.UpdateProfessional(id, *patch)
	if err != nil {
		return fail(c, "Failed to update professional", err)
	}
	return c.JSON(updated)
}

// DeleteProfessional removes a professional; the store rejects the delete
// while service links, schedules or scheduled appointments remain.
func (pc *ProfessionalController) DeleteProfessional(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := pc.Store.DeleteProfessional(id); err != nil {
		return fail(c, "Failed to delete professional", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetProfessionalServices returns the services the professional is
// qualified to perform.
func (pc *ProfessionalController) GetProfessionalServices(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	services, err := pc.Store.ServicesForProfessional(id)
	if err != nil {
		return fail(c, "Failed to fetch professional services", err)
	}
	return c.JSON(services)
}

// LinkService qualifies the professional for a service
func (pc *ProfessionalController) LinkService(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	type linkInput struct {
		ServiceID uint `json:"service_id"`
	}
	input := new(linkInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	link, err := pc.Store.LinkProfessionalService(id, input.ServiceID)
	if err != nil {
		return fail(c, "Failed to link service", err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

func (pc *ProfessionalController) UnlinkService(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	serviceID, ok := paramID(c, "serviceId")
	if !ok {
		return nil
	}
	if err := pc.Store.UnlinkProfessionalService(id, serviceID); err != nil {
		return fail(c, "Failed to unlink service", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// paramID parses a numeric path parameter. On a malformed id it writes
// the 400 response itself and reports false.
func paramID(c *fiber.Ctx, name string) (uint, bool) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id " + raw,
		})
		return 0, false
	}
	return uint(id), true
}
