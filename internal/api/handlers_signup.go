package api

import (
	"errors"

	"github.com/fieldopshq/fieldops/internal/services"
	"github.com/gofiber/fiber/v2"
)

type signupInput struct {
	CompanyName string `form:"company_name"`
	Username    string `form:"username"`
	Password    string `form:"password"`
}

func (handler *Handler) ShowSignupPage(c *fiber.Ctx) error {
	return handler.render(c, "signup", fiber.Map{"Title": "Sign up"})
}

// Signup creates a new company with its first admin user and logs the
// user straight in.
func (handler *Handler) Signup(c *fiber.Ctx) error {
	input := signupInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.renderSignupError(c, input, "invalid input")
	}

	handler.ensureDependencies()
	user, err := handler.authService.Signup(input.CompanyName, input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAllFieldsRequired):
			return handler.renderSignupError(c, input, "All fields are required.")
		case errors.Is(err, services.ErrUsernameReserved):
			return handler.renderSignupError(c, input, "That username is reserved. Please choose another.")
		case errors.Is(err, services.ErrUsernameTaken):
			return handler.renderSignupError(c, input, "That username is already taken. Try another.")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return redirectToDashboard(c)
}

func (handler *Handler) renderSignupError(c *fiber.Ctx, input signupInput, message string) error {
	if acceptsJSON(c) {
		return apiError(c, fiber.StatusBadRequest, message)
	}
	return handler.render(c, "signup", fiber.Map{
		"Title":       "Sign up",
		"Error":       message,
		"CompanyName": input.CompanyName,
		"Username":    input.Username,
	})
}
