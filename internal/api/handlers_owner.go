package api

import "github.com/gofiber/fiber/v2"

// OwnerCompanies lists every company with its user count; the only
// authenticated cross-tenant view.
func (handler *Handler) OwnerCompanies(c *fiber.Ctx) error {
	handler.ensureDependencies()
	companies, err := handler.ownerService.Companies()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load companies")
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"companies": companies})
	}
	return handler.render(c, "owner_companies", fiber.Map{
		"Title":     "Companies",
		"Companies": companies,
	})
}
