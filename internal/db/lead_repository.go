package db

import (
	"github.com/fieldopshq/fieldops/internal/models"
	"gorm.io/gorm"
)

type LeadRepository struct {
	database *gorm.DB
}

func NewLeadRepository(database *gorm.DB) *LeadRepository {
	return &LeadRepository{database: database}
}

func (repo *LeadRepository) Create(lead *models.Lead) error {
	return repo.database.Create(lead).Error
}

func (repo *LeadRepository) FindByID(companyID uint, leadID uint) (models.Lead, error) {
	var lead models.Lead
	if err := repo.database.Scopes(forCompany(companyID)).First(&lead, leadID).Error; err != nil {
		return models.Lead{}, err
	}
	return lead, nil
}

func (repo *LeadRepository) UpdateStatus(companyID uint, leadID uint, status string) error {
	return repo.database.Model(&models.Lead{}).
		Scopes(forCompany(companyID)).
		Where("id = ?", leadID).
		Update("status", status).Error
}

// ConvertToJob inserts the job and forces the lead to Scheduled in one
// transaction. The lead keeps no record of prior conversions, so
// calling this twice yields two jobs.
func (repo *LeadRepository) ConvertToJob(companyID uint, leadID uint, job *models.Job) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(job).Error; err != nil {
			return err
		}
		return tx.Model(&models.Lead{}).
			Scopes(forCompany(companyID)).
			Where("id = ?", leadID).
			Update("status", models.LeadStatusScheduled).Error
	})
}

func (repo *LeadRepository) ListNewestFirst(companyID uint) ([]models.Lead, error) {
	leads := make([]models.Lead, 0)
	if err := repo.database.Scopes(forCompany(companyID)).
		Order("id DESC").
		Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func (repo *LeadRepository) ListByStatusNewestFirst(companyID uint, status string) ([]models.Lead, error) {
	leads := make([]models.Lead, 0)
	if err := repo.database.Scopes(forCompany(companyID)).
		Where("status = ?", status).
		Order("id DESC").
		Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

// CountCreatedOn counts leads whose creation timestamp falls on the
// given YYYY-MM-DD day.
func (repo *LeadRepository) CountCreatedOn(companyID uint, day string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Lead{}).
		Scopes(forCompany(companyID)).
		Where("date(created_at) = ?", day).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
