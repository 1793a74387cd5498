package db

import (
	"time"

	"github.com/fieldopshq/fieldops/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) CountUsers() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("username = ?", username).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("username = ?", username).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) SuperAdminExists() (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("role = ?", models.RoleSuperAdmin).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

// CreateTenantWithAdmin inserts a company and its first admin user in
// one transaction. When backfillOrphans is set (first-tenant setup),
// rows written before tenant scoping existed are claimed by the new
// company.
func (repo *UserRepository) CreateTenantWithAdmin(companyName string, username string, passwordHash string, backfillOrphans bool) (models.User, error) {
	now := time.Now()
	user := models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		CreatedAt:    now,
	}

	err := repo.database.Transaction(func(tx *gorm.DB) error {
		company := models.Company{Name: companyName, CreatedAt: now}
		if err := tx.Create(&company).Error; err != nil {
			return err
		}

		user.CompanyID = company.ID
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		if !backfillOrphans {
			return nil
		}
		for _, table := range []string{"leads", "jobs", "invoices"} {
			if err := tx.Exec(
				"UPDATE "+table+" SET company_id = ? WHERE company_id IS NULL",
				company.ID,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}
