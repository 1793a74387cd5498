package db

import (
	"github.com/fieldopshq/fieldops/internal/models"
	"gorm.io/gorm"
)

type JobRepository struct {
	database *gorm.DB
}

func NewJobRepository(database *gorm.DB) *JobRepository {
	return &JobRepository{database: database}
}

func (repo *JobRepository) FindByID(companyID uint, jobID uint) (models.Job, error) {
	var job models.Job
	if err := repo.database.Scopes(forCompany(companyID)).First(&job, jobID).Error; err != nil {
		return models.Job{}, err
	}
	return job, nil
}

func (repo *JobRepository) UpdateStatus(companyID uint, jobID uint, status string) error {
	return repo.database.Model(&models.Job{}).
		Scopes(forCompany(companyID)).
		Where("id = ?", jobID).
		Update("status", status).Error
}

func (repo *JobRepository) ListNewestFirst(companyID uint) ([]models.Job, error) {
	jobs := make([]models.Job, 0)
	if err := repo.database.Scopes(forCompany(companyID)).
		Order("id DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (repo *JobRepository) CountScheduledOn(companyID uint, day string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Job{}).
		Scopes(forCompany(companyID)).
		Where("scheduled_date = ?", day).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
