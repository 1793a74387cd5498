package api

import (
	"github.com/fieldopshq/fieldops/internal/models"
	"github.com/gofiber/fiber/v2"
)

// SuperAdminRequired gates the cross-tenant owner views. Role failures
// are 403; tenant-scoped data misses elsewhere stay 404 so existence
// never leaks.
func (handler *Handler) SuperAdminRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	if user.Role != models.RoleSuperAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "super admin access required"})
	}
	return c.Next()
}
