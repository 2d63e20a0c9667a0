package controllers

import (
	"github.com/gofiber/fiber/v2"

	"salonbook/models"
	"salonbook/store"
)

type ServiceController struct {
	Store *store.Store
}

func NewServiceController(st *store.Store) *ServiceController {
	return &ServiceController{Store: st}
}

// GetAllServices returns all services
func (sc *ServiceController) GetAllServices(c *fiber.Ctx) error {
	return c.JSON(sc.Store.ListServices())
}

func (sc *ServiceController) GetService(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	service, found := sc.Store.GetService(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	return c.JSON(service)
}

// CreateService creates a new service
func (sc *ServiceController) CreateService(c *fiber.Ctx) error {
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	service.Active = true
	created, err := sc.Store.CreateService(*service)
	if err != nil {
		return fail(c, "Failed to create service", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateService applies a partial update to a service
func (sc *ServiceController) UpdateService(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	patch := new(models.ServicePatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	updated, err := sc.Store.UpdateService(id, *patch)
	if err != nil {
		return fail(c, "Failed to update service", err)
	}
	return c.JSON(updated)
}

// DeleteService removes a service; rejected while links or scheduled
// appointments still reference it.
func (sc *ServiceController) DeleteService(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := sc.Store.DeleteService(id); err != nil {
		return fail(c, "Failed to delete service", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
