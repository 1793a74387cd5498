package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	// Public account flows.
	app.Get("/setup", handler.ShowSetupPage)
	app.Post("/setup", handler.Setup)
	app.Get("/signup", handler.ShowSignupPage)
	app.Post("/signup", handler.Signup)
	app.Get("/login", handler.ShowLoginPage)
	app.Post("/login", handler.Login)
	app.Post("/logout", handler.Logout)

	// Public payment page, keyed by token only.
	app.Get("/pay/:token", handler.PublicInvoice)

	// Company-scoped views and actions.
	app.Get("/", handler.AuthRequired, handler.ShowDashboard)
	app.Post("/add_lead", handler.AuthRequired, handler.AddLead)
	app.Post("/update_lead_status/:id", handler.AuthRequired, handler.UpdateLeadStatus)
	app.Post("/convert_lead/:id", handler.AuthRequired, handler.ConvertLead)
	app.Post("/update_job_status/:id", handler.AuthRequired, handler.UpdateJobStatus)
	app.Post("/create_invoice/:jobId", handler.AuthRequired, handler.CreateInvoice)
	app.Post("/mark_paid/:id", handler.AuthRequired, handler.MarkPaid)
	app.Post("/jobs/:jobId/tasks/add", handler.AuthRequired, handler.AddTask)
	app.Post("/tasks/:id/toggle", handler.AuthRequired, handler.ToggleTask)

	// Cross-tenant owner views.
	app.Get("/owner/companies", handler.AuthRequired, handler.SuperAdminRequired, handler.OwnerCompanies)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
