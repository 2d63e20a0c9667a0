package controllers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"salonbook/models"
	"salonbook/store"
)

type UserController struct {
	Store *store.Store
}

func NewUserController(st *store.Store) *UserController {
	return &UserController{Store: st}
}

func (uc *UserController) GetAllUsers(c *fiber.Ctx) error {
	users := uc.Store.ListUsers()
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	user, found := uc.Store.GetUser(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	user.Password = ""
	return c.JSON(user)
}

// UpdateUser applies a partial update. A new password is re-hashed before
// it reaches the store.
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	patch := new(models.UserPatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to hash password",
			})
		}
		hashedStr := string(hashed)
		patch.Password = &hashedStr
	}

	updated, err := uc.Store.UpdateUser(id, *patch)
	if err != nil {
		return fail(c, "Failed to update user", err)
	}
	updated.Password = ""
	return c.JSON(updated)
}

func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if !uc.Store.DeleteUser(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetUserAppointments lists the appointments booked by one user.
func (uc *UserController) GetUserAppointments(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if _, found := uc.Store.GetUser(id); !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	return c.JSON(uc.Store.AppointmentsByUser(id))
}
