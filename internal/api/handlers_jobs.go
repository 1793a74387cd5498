package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) UpdateJobStatus(c *fiber.Ctx) error {
	companyID, ok := sessionCompanyID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	jobID, err := entityID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	handler.ensureDependencies()
	if err := handler.jobService.UpdateStatus(companyID, jobID, c.FormValue("status")); err != nil {
		return respondServiceError(c, err)
	}
	return redirectToDashboard(c)
}
