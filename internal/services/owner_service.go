package services

import "github.com/fieldopshq/fieldops/internal/db"

type OwnerCompanyRepository interface {
	ListWithUserCounts() ([]db.CompanyWithUserCount, error)
}

// OwnerService serves the super-admin's cross-tenant views.
type OwnerService struct {
	companies OwnerCompanyRepository
}

func NewOwnerService(companies OwnerCompanyRepository) *OwnerService {
	return &OwnerService{companies: companies}
}

func (service *OwnerService) Companies() ([]db.CompanyWithUserCount, error) {
	return service.companies.ListWithUserCounts()
}
