package api

import (
	"errors"

	"github.com/fieldopshq/fieldops/internal/services"
	"github.com/gofiber/fiber/v2"
)

type setupInput struct {
	CompanyName string `form:"company_name"`
	Username    string `form:"username"`
	Password    string `form:"password"`
}

// setupAvailable reports whether first-run setup is still open; once
// any user exists the route redirects to login forever.
func (handler *Handler) setupAvailable(c *fiber.Ctx) (bool, error) {
	handler.ensureDependencies()
	needsSetup, err := handler.setupService.RequiresInitialSetup()
	if err != nil {
		return false, apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	if !needsSetup {
		return false, c.Redirect("/login", fiber.StatusSeeOther)
	}
	return true, nil
}

func (handler *Handler) ShowSetupPage(c *fiber.Ctx) error {
	open, err := handler.setupAvailable(c)
	if !open {
		return err
	}
	return handler.render(c, "setup", fiber.Map{"Title": "First-time setup"})
}

func (handler *Handler) Setup(c *fiber.Ctx) error {
	open, err := handler.setupAvailable(c)
	if !open {
		return err
	}

	input := setupInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.render(c, "setup", fiber.Map{"Title": "First-time setup", "Error": "invalid input"})
	}

	if _, err := handler.setupService.CreateFirstTenant(input.CompanyName, input.Username, input.Password); err != nil {
		if errors.Is(err, services.ErrAllFieldsRequired) {
			return handler.render(c, "setup", fiber.Map{
				"Title":       "First-time setup",
				"Error":       "All fields are required.",
				"CompanyName": input.CompanyName,
				"Username":    input.Username,
			})
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to complete setup")
	}

	return c.Redirect("/login", fiber.StatusSeeOther)
}
