package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) AddTask(c *fiber.Ctx) error {
	companyID, ok := sessionCompanyID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	jobID, err := entityID(c, "jobId")
	if err != nil {
		return respondServiceError(c, err)
	}

	handler.ensureDependencies()
	_, err = handler.taskService.Add(
		companyID,
		jobID,
		c.FormValue("title"),
		c.FormValue("due_date"),
		c.FormValue("assigned_to"),
	)
	if err != nil {
		return respondServiceError(c, err)
	}
	return redirectToDashboard(c)
}

func (handler *Handler) ToggleTask(c *fiber.Ctx) error {
	companyID, ok := sessionCompanyID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	taskID, err := entityID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	handler.ensureDependencies()
	if _, err := handler.taskService.Toggle(companyID, taskID); err != nil {
		return respondServiceError(c, err)
	}
	return redirectToDashboard(c)
}
