package services

import (
	"github.com/fieldopshq/fieldops/internal/models"
)

type DashboardCompanyRepository interface {
	FindByID(companyID uint) (models.Company, error)
}

type DashboardLeadRepository interface {
	ListNewestFirst(companyID uint) ([]models.Lead, error)
	ListByStatusNewestFirst(companyID uint, status string) ([]models.Lead, error)
	CountCreatedOn(companyID uint, day string) (int64, error)
}

type DashboardJobRepository interface {
	ListNewestFirst(companyID uint) ([]models.Job, error)
	CountScheduledOn(companyID uint, day string) (int64, error)
}

type DashboardInvoiceRepository interface {
	ListNewestFirst(companyID uint) ([]models.Invoice, error)
	ListOverdue(companyID uint, today string) ([]models.Invoice, error)
	UnpaidTotal(companyID uint) (float64, error)
}

type DashboardTaskRepository interface {
	ListNewestFirst(companyID uint) ([]models.Task, error)
}

// DashboardService recomputes every aggregate per request; nothing is
// cached.
type DashboardService struct {
	companies DashboardCompanyRepository
	leads     DashboardLeadRepository
	jobs      DashboardJobRepository
	invoices  DashboardInvoiceRepository
	tasks     DashboardTaskRepository
}

func NewDashboardService(
	companies DashboardCompanyRepository,
	leads DashboardLeadRepository,
	jobs DashboardJobRepository,
	invoices DashboardInvoiceRepository,
	tasks DashboardTaskRepository,
) *DashboardService {
	return &DashboardService{
		companies: companies,
		leads:     leads,
		jobs:      jobs,
		invoices:  invoices,
		tasks:     tasks,
	}
}

type DashboardOverview struct {
	CompanyName     string
	Leads           []models.Lead
	Jobs            []models.Job
	Tasks           []models.Task
	Invoices        []models.Invoice
	MissedLeads     []models.Lead
	OverdueInvoices []models.Invoice
	UnpaidTotal     float64
	JobsToday       int64
	LeadsToday      int64
	Today           string
}

// Overview gathers the company-scoped dashboard data for the given
// YYYY-MM-DD day.
func (service *DashboardService) Overview(companyID uint, today string) (DashboardOverview, error) {
	overview := DashboardOverview{Today: today, CompanyName: "Company"}

	if company, err := service.companies.FindByID(companyID); err == nil {
		overview.CompanyName = company.Name
	}

	var err error
	if overview.Leads, err = service.leads.ListNewestFirst(companyID); err != nil {
		return DashboardOverview{}, err
	}
	if overview.Jobs, err = service.jobs.ListNewestFirst(companyID); err != nil {
		return DashboardOverview{}, err
	}
	if overview.Tasks, err = service.tasks.ListNewestFirst(companyID); err != nil {
		return DashboardOverview{}, err
	}
	if overview.Invoices, err = service.invoices.ListNewestFirst(companyID); err != nil {
		return DashboardOverview{}, err
	}
	if overview.MissedLeads, err = service.leads.ListByStatusNewestFirst(companyID, models.LeadStatusNew); err != nil {
		return DashboardOverview{}, err
	}
	if overview.OverdueInvoices, err = service.invoices.ListOverdue(companyID, today); err != nil {
		return DashboardOverview{}, err
	}
	if overview.UnpaidTotal, err = service.invoices.UnpaidTotal(companyID); err != nil {
		return DashboardOverview{}, err
	}
	if overview.JobsToday, err = service.jobs.CountScheduledOn(companyID, today); err != nil {
		return DashboardOverview{}, err
	}
	if overview.LeadsToday, err = service.leads.CountCreatedOn(companyID, today); err != nil {
		return DashboardOverview{}, err
	}

	return overview, nil
}
