package db

import (
	"time"

	"github.com/fieldopshq/fieldops/internal/models"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	database *gorm.DB
}

func NewCompanyRepository(database *gorm.DB) *CompanyRepository {
	return &CompanyRepository{database: database}
}

func (repo *CompanyRepository) Create(company *models.Company) error {
	return repo.database.Create(company).Error
}

func (repo *CompanyRepository) FindByID(companyID uint) (models.Company, error) {
	var company models.Company
	if err := repo.database.First(&company, companyID).Error; err != nil {
		return models.Company{}, err
	}
	return company, nil
}

func (repo *CompanyRepository) FindByName(name string) (models.Company, error) {
	var company models.Company
	if err := repo.database.Where("name = ?", name).First(&company).Error; err != nil {
		return models.Company{}, err
	}
	return company, nil
}

// CompanyWithUserCount backs the cross-tenant owner view.
type CompanyWithUserCount struct {
	ID        uint      `gorm:"column:id"`
	Name      string    `gorm:"column:name"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UserCount int64     `gorm:"column:user_count"`
}

func (repo *CompanyRepository) ListWithUserCounts() ([]CompanyWithUserCount, error) {
	rows := make([]CompanyWithUserCount, 0)
	err := repo.database.Raw(`
SELECT c.id, c.name, c.created_at, COUNT(u.id) AS user_count
FROM companies c
LEFT JOIN users u ON u.company_id = c.id
GROUP BY c.id
ORDER BY c.created_at DESC`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
