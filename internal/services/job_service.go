package services

import (
	"strings"

	"github.com/fieldopshq/fieldops/internal/models"
)

type JobRepository interface {
	FindByID(companyID uint, jobID uint) (models.Job, error)
	UpdateStatus(companyID uint, jobID uint, status string) error
}

type JobService struct {
	jobs JobRepository
}

func NewJobService(jobs JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

func (service *JobService) UpdateStatus(companyID uint, jobID uint, status string) error {
	status = strings.TrimSpace(status)
	if !models.ValidJobStatus(status) {
		return ErrInvalidStatus
	}
	if _, err := service.jobs.FindByID(companyID, jobID); err != nil {
		return asNotFound(err)
	}
	return service.jobs.UpdateStatus(companyID, jobID, status)
}
