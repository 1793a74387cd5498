package api

import (
	"github.com/fieldopshq/fieldops/internal/services"
	"github.com/gofiber/fiber/v2"
)

type leadIntakeInput struct {
	Name        string `form:"name"`
	Phone       string `form:"phone"`
	ServiceType string `form:"service_type"`
	Source      string `form:"source"`
	Address     string `form:"address"`
	Notes       string `form:"notes"`
}

func (handler *Handler) AddLead(c *fiber.Ctx) error {
	companyID, ok := sessionCompanyID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	input := leadIntakeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	intake := services.LeadIntake{
		Name:        input.Name,
		Phone:       input.Phone,
		ServiceType: input.ServiceType,
		Source:      input.Source,
		Address:     input.Address,
		Notes:       input.Notes,
	}
	if _, err := handler.leadService.AddLead(companyID, intake); err != nil {
		return respondServiceError(c, err)
	}
	return redirectToDashboard(c)
}

func (handler *Handler) UpdateLeadStatus(c *fiber.Ctx) error {
	companyID, ok := sessionCompanyID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	leadID, err := entityID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	handler.ensureDependencies()
	if err := handler.leadService.UpdateStatus(companyID, leadID, c.FormValue("status")); err != nil {
		return respondServiceError(c, err)
	}
	return redirectToDashboard(c)
}

func (handler *Handler) ConvertLead(c *fiber.Ctx) error {
	companyID, ok := sessionCompanyID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	leadID, err := entityID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	handler.ensureDependencies()
	if _, err := handler.leadService.Convert(companyID, leadID, c.FormValue("scheduled_date"), c.FormValue("technician")); err != nil {
		return respondServiceError(c, err)
	}
	return redirectToDashboard(c)
}
