package api

import (
	"errors"
	"strings"

	"github.com/fieldopshq/fieldops/internal/services"
	"github.com/gofiber/fiber/v2"
)

func acceptsJSON(c *fiber.Ctx) bool {
	return strings.Contains(strings.ToLower(c.Get("Accept")), "application/json")
}

func redirectToDashboard(c *fiber.Ctx) error {
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func apiError(c *fiber.Ctx, status int, message string) error {
	if acceptsJSON(c) {
		return c.Status(status).JSON(fiber.Map{"error": message})
	}
	return c.Status(status).SendString(message)
}

// respondServiceError maps service sentinels onto the error taxonomy:
// validation failures are 400 with the message, tenant misses are 404.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrNameAndPhoneRequired),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrAllFieldsRequired):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	return apiError(c, fiber.StatusInternalServerError, "internal error")
}

// entityID parses a positive integer path parameter. A non-numeric id
// can never name an entity, so it reads as not-found.
func entityID(c *fiber.Ctx, name string) (uint, error) {
	value, err := c.ParamsInt(name)
	if err != nil || value <= 0 {
		return 0, services.ErrNotFound
	}
	return uint(value), nil
}

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals("csrf").(string)
	return token
}

func sessionCompanyID(c *fiber.Ctx) (uint, bool) {
	user, ok := currentUser(c)
	if !ok {
		return 0, false
	}
	return user.CompanyID, true
}
