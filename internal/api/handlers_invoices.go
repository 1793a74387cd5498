package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) CreateInvoice(c *fiber.Ctx) error {
	companyID, ok := sessionCompanyID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	jobID, err := entityID(c, "jobId")
	if err != nil {
		return respondServiceError(c, err)
	}

	handler.ensureDependencies()
	_, err = handler.invoiceService.Create(
		companyID,
		jobID,
		c.FormValue("amount"),
		c.FormValue("due_date"),
		c.FormValue("customer_email"),
	)
	if err != nil {
		return respondServiceError(c, err)
	}
	return redirectToDashboard(c)
}

func (handler *Handler) MarkPaid(c *fiber.Ctx) error {
	companyID, ok := sessionCompanyID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	invoiceID, err := entityID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	handler.ensureDependencies()
	if err := handler.invoiceService.MarkPaid(companyID, invoiceID); err != nil {
		return respondServiceError(c, err)
	}
	return redirectToDashboard(c)
}

// PublicInvoice is unauthenticated: the token alone identifies the
// invoice, across all tenants.
func (handler *Handler) PublicInvoice(c *fiber.Ctx) error {
	handler.ensureDependencies()
	view, err := handler.invoiceService.PublicByToken(c.Params("token"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return handler.render(c, "public_invoice", fiber.Map{
		"Title":        "Invoice",
		"Invoice":      view.Invoice,
		"CompanyName":  view.CompanyName,
		"CustomerName": view.CustomerName,
	})
}
