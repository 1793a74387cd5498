package api

import (
	"github.com/gofiber/fiber/v2"
)

type loginInput struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	handler.ensureDependencies()

	// A fresh install has no accounts; send the visitor to first-run
	// setup instead of a login form nobody can pass.
	needsSetup, err := handler.setupService.RequiresInitialSetup()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	if needsSetup {
		return c.Redirect("/setup", fiber.StatusSeeOther)
	}

	if user, err := handler.authenticateRequest(c); err == nil && user != nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	return handler.render(c, "login", fiber.Map{"Title": "Log in"})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.render(c, "login", fiber.Map{"Title": "Log in", "Error": "invalid input"})
	}

	handler.ensureDependencies()
	user, err := handler.authService.Authenticate(input.Username, input.Password)
	if err != nil {
		if acceptsJSON(c) {
			return apiError(c, fiber.StatusUnauthorized, "wrong username or password")
		}
		return handler.render(c, "login", fiber.Map{
			"Title":    "Log in",
			"Error":    "Wrong username or password.",
			"Username": input.Username,
		})
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return redirectToDashboard(c)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}
