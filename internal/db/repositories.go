package db

import "gorm.io/gorm"

type Repositories struct {
	Companies *CompanyRepository
	Users     *UserRepository
	Leads     *LeadRepository
	Jobs      *JobRepository
	Invoices  *InvoiceRepository
	Tasks     *TaskRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Companies: NewCompanyRepository(database),
		Users:     NewUserRepository(database),
		Leads:     NewLeadRepository(database),
		Jobs:      NewJobRepository(database),
		Invoices:  NewInvoiceRepository(database),
		Tasks:     NewTaskRepository(database),
	}
}
