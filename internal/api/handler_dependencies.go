package api

import (
	"github.com/fieldopshq/fieldops/internal/db"
	"github.com/fieldopshq/fieldops/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	repos := db.NewRepositories(database)
	handler.repositories = repos
	handler.authService = services.NewAuthService(repos.Users, handler.reservedUsername)
	handler.setupService = services.NewSetupService(repos.Users)
	handler.leadService = services.NewLeadService(repos.Leads)
	handler.jobService = services.NewJobService(repos.Jobs)
	handler.invoiceService = services.NewInvoiceService(repos.Invoices, repos.Jobs)
	handler.taskService = services.NewTaskService(repos.Tasks, repos.Jobs)
	handler.dashboardService = services.NewDashboardService(repos.Companies, repos.Leads, repos.Jobs, repos.Invoices, repos.Tasks)
	handler.ownerService = services.NewOwnerService(repos.Companies)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil && handler.db != nil {
		handler.withDependencies(handler.db)
	}
}
