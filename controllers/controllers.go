package controllers

import (
	"github.com/gofiber/fiber/v2"

	"salonbook/apperrors"
	"salonbook/utils"
)

// fail translates a domain error into the HTTP response the taxonomy
// suggests for it.
func fail(c *fiber.Ctx, message string, err error) error {
	status, category, detail := apperrors.MapToHTTPStatus(err)
	return c.Status(status).JSON(utils.ErrorResponse{
		Message:  message,
		Category: category,
		Error:    detail,
	})
}
