package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	handler.ensureDependencies()
	today := time.Now().In(handler.location).Format("2006-01-02")
	overview, err := handler.dashboardService.Overview(user.CompanyID, today)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load dashboard")
	}

	return handler.render(c, "dashboard", fiber.Map{
		"Title":           overview.CompanyName,
		"CompanyName":     overview.CompanyName,
		"User":            user,
		"Leads":           overview.Leads,
		"Jobs":            overview.Jobs,
		"Tasks":           overview.Tasks,
		"Invoices":        overview.Invoices,
		"MissedLeads":     overview.MissedLeads,
		"OverdueInvoices": overview.OverdueInvoices,
		"UnpaidTotal":     overview.UnpaidTotal,
		"JobsToday":       overview.JobsToday,
		"LeadsToday":      overview.LeadsToday,
		"Today":           overview.Today,
	})
}
