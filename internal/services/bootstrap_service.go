package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/fieldopshq/fieldops/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrSuperAdminPasswordUnset aborts startup: the process must not come
// up without a super-admin and has no password to create one with.
var ErrSuperAdminPasswordUnset = errors.New("SUPER_ADMIN_PASSWORD is not set and no super admin exists")

type BootstrapCompanyRepository interface {
	FindByName(name string) (models.Company, error)
	Create(company *models.Company) error
}

type BootstrapUserRepository interface {
	SuperAdminExists() (bool, error)
	Create(user *models.User) error
}

// BootstrapService runs once per process start and makes sure the
// owner company and the single super-admin user exist.
type BootstrapService struct {
	companies BootstrapCompanyRepository
	users     BootstrapUserRepository
}

func NewBootstrapService(companies BootstrapCompanyRepository, users BootstrapUserRepository) *BootstrapService {
	return &BootstrapService{companies: companies, users: users}
}

// EnsureSuperAdmin is idempotent: an existing super-admin is never
// touched, and the owner company row is created at most once.
func (service *BootstrapService) EnsureSuperAdmin(companyName string, username string, password string) error {
	company, err := service.companies.FindByName(companyName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		company = models.Company{Name: companyName, CreatedAt: time.Now()}
		if err := service.companies.Create(&company); err != nil {
			return fmt.Errorf("create owner company: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("find owner company: %w", err)
	}

	exists, err := service.users.SuperAdminExists()
	if err != nil {
		return fmt.Errorf("check super admin: %w", err)
	}
	if exists {
		return nil
	}

	if password == "" {
		return ErrSuperAdminPasswordUnset
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash super admin password: %w", err)
	}

	user := models.User{
		CompanyID:    company.ID,
		Username:     username,
		PasswordHash: string(passwordHash),
		Role:         models.RoleSuperAdmin,
		CreatedAt:    time.Now(),
	}
	if err := service.users.Create(&user); err != nil {
		return fmt.Errorf("create super admin: %w", err)
	}
	return nil
}
