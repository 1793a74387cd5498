package services

import (
	"strings"
	"time"

	"github.com/fieldopshq/fieldops/internal/models"
)

type LeadRepository interface {
	Create(lead *models.Lead) error
	FindByID(companyID uint, leadID uint) (models.Lead, error)
	UpdateStatus(companyID uint, leadID uint, status string) error
	ConvertToJob(companyID uint, leadID uint, job *models.Job) error
}

type LeadService struct {
	leads LeadRepository
}

func NewLeadService(leads LeadRepository) *LeadService {
	return &LeadService{leads: leads}
}

type LeadIntake struct {
	Name        string
	Phone       string
	ServiceType string
	Source      string
	Address     string
	Notes       string
}

func (service *LeadService) AddLead(companyID uint, intake LeadIntake) (models.Lead, error) {
	name := strings.TrimSpace(intake.Name)
	phone := strings.TrimSpace(intake.Phone)
	if name == "" || phone == "" {
		return models.Lead{}, ErrNameAndPhoneRequired
	}

	lead := models.Lead{
		CompanyID:   companyID,
		Name:        name,
		Phone:       phone,
		Status:      models.LeadStatusNew,
		ServiceType: OptionalText(intake.ServiceType),
		Source:      OptionalText(intake.Source),
		Address:     OptionalText(intake.Address),
		Notes:       OptionalText(intake.Notes),
		CreatedAt:   time.Now(),
	}
	if err := service.leads.Create(&lead); err != nil {
		return models.Lead{}, err
	}
	return lead, nil
}

func (service *LeadService) UpdateStatus(companyID uint, leadID uint, status string) error {
	status = strings.TrimSpace(status)
	if !models.ValidLeadStatus(status) {
		return ErrInvalidStatus
	}
	if _, err := service.leads.FindByID(companyID, leadID); err != nil {
		return asNotFound(err)
	}
	return service.leads.UpdateStatus(companyID, leadID, status)
}

// Convert creates a job from the lead and forces the lead's status to
// Scheduled regardless of where it was. There is no guard against
// converting the same lead again; each call produces another job.
func (service *LeadService) Convert(companyID uint, leadID uint, rawScheduledDate string, rawTechnician string) (models.Job, error) {
	lead, err := service.leads.FindByID(companyID, leadID)
	if err != nil {
		return models.Job{}, asNotFound(err)
	}

	job := models.Job{
		CompanyID:     companyID,
		LeadID:        &lead.ID,
		CustomerName:  lead.Name,
		Status:        models.JobStatusScheduled,
		ScheduledDate: ParseOptionalDate(rawScheduledDate),
		Technician:    OptionalText(rawTechnician),
		CreatedAt:     time.Now(),
	}
	if err := service.leads.ConvertToJob(companyID, leadID, &job); err != nil {
		return models.Job{}, err
	}
	return job, nil
}
